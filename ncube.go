// Package ncube models the state of an NxN twisty cube puzzle and the
// geometry needed to animate its turns.
//
// # Features
//
//   - Generalized facelet model for any cube size N >= 2
//   - Atomic quarter- and half-turn moves with correct neighbor edge cycling
//   - Face selection with adjacent-sticker highlighting for UIs
//   - Spatial cubie model with per-cubie 4x4 transforms
//   - Tick-driven turn animation with lattice snapping
//
// # Quick Start
//
// Create a cube and apply moves using the predefined constants:
//
//	cube := ncube.New(3)
//	cube.Apply(ncube.R, ncube.U, ncube.RPrime, ncube.UPrime)
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// Individual turns go through Rotate:
//
//	cube.Rotate(ncube.FaceF, ncube.CW)
//
// # Animated Turns
//
// The spatial model animates turns over discrete ticks. Call Tick once per
// rendered frame and draw each cubie with its pose transform:
//
//	sc := ncube.NewSpatial(3, ncube.WithTurnStep(6))
//	sc.StartFaceTurn(ncube.FaceR, ncube.CW)
//
//	for sc.Animating() {
//	    sc.Tick()
//	    for i := 0; i < sc.Len(); i++ {
//	        draw(sc.PoseTransform(i))
//	    }
//	}
//
// A turn requested while another is animating is dropped; sequence moves by
// waiting for Tick to report completion.
//
// # Selection
//
// Select flags a face and the border stickers its turn would drag, for
// renderers that highlight the active layer:
//
//	cube.Select(ncube.FaceF)
//	cube.Select(ncube.FaceNone) // clear
//
// Selection is not refreshed by moves; re-select after Rotate if the
// highlight should persist.
package ncube
