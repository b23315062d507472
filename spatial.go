package ncube

import (
	"math"

	"github.com/westphae/quaternion"
)

// snapLimit is the largest distance a rotated coordinate may sit from its
// nearest lattice value before it is treated as corrupted state rather than
// floating drift.
const snapLimit = 0.25

// Cubie is one of the N^3 physical pieces of the cube. Its lattice position
// tracks which slot it currently occupies; its orientation accumulates across
// completed turns. The per-face color map is fixed at construction from the
// start position; interior faces carry Inside and never change.
type Cubie struct {
	pos    Vec3
	orient quaternion.Quaternion
	colors [6]Color
}

// Position returns the cubie's current lattice position.
func (cb Cubie) Position() Vec3 {
	return cb.pos
}

// FaceColor returns the color painted on the cubie's local face. The face is
// identified in the cubie's own frame, before any orientation is applied.
func (cb Cubie) FaceColor(f Face) Color {
	checkFace(f)
	return cb.colors[f]
}

// SpatialCube is the geometric counterpart of Cube: N^3 cubies on a lattice
// whose coordinates run over N evenly spaced values on [-(N-1)/2, (N-1)/2].
// Turns are animated: StartTurn selects a slice, Tick advances it, and on
// completion the member cubies' transforms and lattice positions are
// committed. Exactly one turn can be in flight; further requests are dropped
// until it completes.
//
// The cube is not safe for concurrent use. Collaborators may read freely
// between ticks but all mutation goes through StartTurn/Tick/Reset.
type SpatialCube struct {
	size    int
	cfg     *config
	lattice []float64
	cubies  []Cubie

	animating bool
	axis      Axis
	angle     float64
	target    float64
	members   []int
}

// NewSpatial creates a solved spatial cube of the given size. It panics if
// size is less than 2.
func NewSpatial(size int, opts ...Option) *SpatialCube {
	if size < 2 {
		panic(ErrCubeSize)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	s := &SpatialCube{size: size, cfg: cfg}
	margin := float64(size-1) / 2
	s.lattice = make([]float64, size)
	for i := range s.lattice {
		s.lattice[i] = -margin + float64(i)
	}
	s.build()
	return s
}

func (s *SpatialCube) build() {
	s.cubies = s.cubies[:0]
	for _, x := range s.lattice {
		for _, y := range s.lattice {
			for _, z := range s.lattice {
				s.cubies = append(s.cubies, s.newCubie(Vec3{X: x, Y: y, Z: z}))
			}
		}
	}
	s.animating = false
	s.angle = 0
	s.target = 0
	s.members = nil
}

func (s *SpatialCube) newCubie(pos Vec3) Cubie {
	cb := Cubie{
		pos:    pos,
		orient: quaternion.Quaternion{W: 1},
	}
	margin := float64(s.size-1) / 2
	eps := s.cfg.snapTol
	for _, f := range Faces {
		cb.colors[f] = Inside
	}
	if math.Abs(pos.X-margin) < eps {
		cb.colors[FaceR] = Red
	}
	if math.Abs(pos.X+margin) < eps {
		cb.colors[FaceL] = Orange
	}
	if math.Abs(pos.Y-margin) < eps {
		cb.colors[FaceU] = White
	}
	if math.Abs(pos.Y+margin) < eps {
		cb.colors[FaceD] = Yellow
	}
	if math.Abs(pos.Z-margin) < eps {
		cb.colors[FaceF] = Green
	}
	if math.Abs(pos.Z+margin) < eps {
		cb.colors[FaceB] = Blue
	}
	return cb
}

// Size returns the cube dimension N.
func (s *SpatialCube) Size() int {
	return s.size
}

// Len returns the number of cubies, N^3.
func (s *SpatialCube) Len() int {
	return len(s.cubies)
}

// Cubie returns a copy of the cubie at the given index.
func (s *SpatialCube) Cubie(i int) Cubie {
	return s.cubies[i]
}

// Lattice returns the N valid coordinate values along any axis.
func (s *SpatialCube) Lattice() []float64 {
	out := make([]float64, len(s.lattice))
	copy(out, s.lattice)
	return out
}

// faceTurns maps each face to its rotation axis and the lattice sign of its
// outer layer. A clockwise turn viewed from outside the face rotates by
// -90 degrees about the axis when the face sits on the positive side, and
// +90 degrees on the negative side.
var faceTurns = [6]struct {
	axis Axis
	sign float64
}{
	FaceU: {AxisY, 1},
	FaceD: {AxisY, -1},
	FaceF: {AxisZ, 1},
	FaceB: {AxisZ, -1},
	FaceR: {AxisX, 1},
	FaceL: {AxisX, -1},
}

// StartFaceTurn begins an animated turn of the outer layer of a face.
// Dropped silently if a turn is already animating.
func (s *SpatialCube) StartFaceTurn(f Face, turn Turn) {
	checkFace(f)
	ft := faceTurns[f]
	margin := float64(s.size-1) / 2
	s.StartTurn(ft.axis, ft.sign*margin, -int(turn)*int(ft.sign))
}

// StartTurn begins an animated turn of the slice of cubies whose coordinate
// along axis equals layer. dir is the number of quarter turns in the
// positive (right-hand) direction about the axis: ±1 for a quarter turn,
// ±2 for a half turn. A zero or out-of-range dir yields a zero-angle turn
// that completes as a no-op on the next tick.
//
// If a turn is already animating the request is dropped; moves are not
// queued. StartTurn panics if layer is not a valid lattice coordinate.
func (s *SpatialCube) StartTurn(axis Axis, layer float64, dir int) {
	if s.animating {
		return
	}
	checkAxis(axis)
	if !s.onLattice(layer) {
		panic(ErrOffLattice)
	}

	s.axis = axis
	s.angle = 0
	if dir >= -2 && dir <= 2 {
		s.target = 90 * float64(dir)
	} else {
		s.target = 0
	}

	s.members = s.members[:0]
	for i := range s.cubies {
		if math.Abs(s.cubies[i].pos.along(axis)-layer) < s.cfg.snapTol {
			s.members = append(s.members, i)
		}
	}
	s.animating = true
}

func (s *SpatialCube) onLattice(v float64) bool {
	for _, step := range s.lattice {
		if math.Abs(v-step) < s.cfg.snapTol {
			return true
		}
	}
	return false
}

// Tick advances the in-flight turn by the configured step and returns true
// when the turn completed on this tick. Calling Tick while idle is a no-op.
func (s *SpatialCube) Tick() bool {
	if !s.animating {
		return false
	}

	switch {
	case s.target > 0:
		s.angle += s.cfg.turnStep
	case s.target < 0:
		s.angle -= s.cfg.turnStep
	}

	if math.Abs(s.angle) >= math.Abs(s.target) {
		s.angle = s.target
		s.finishTurn()
		return true
	}
	return false
}

// finishTurn commits the completed rotation: each member's orientation is
// left-composed with the target rotation, and its lattice position is rotated
// and snapped back onto the nearest valid coordinates to absorb float drift.
func (s *SpatialCube) finishTurn() {
	rot := axisRotation(s.axis, s.target)
	for _, i := range s.members {
		cb := &s.cubies[i]
		cb.orient = quaternion.Prod(rot, cb.orient).Unit()
		cb.pos = s.snapVec(cb.pos.rotate(rot))
	}
	s.animating = false
	s.angle = 0
	s.target = 0
	s.members = s.members[:0]
}

// snapVec is the single sanctioned coercion point for lattice drift.
func (s *SpatialCube) snapVec(v Vec3) Vec3 {
	return Vec3{
		X: s.snapCoord(v.X),
		Y: s.snapCoord(v.Y),
		Z: s.snapCoord(v.Z),
	}
}

func (s *SpatialCube) snapCoord(v float64) float64 {
	best := s.lattice[0]
	bestDist := math.Abs(v - best)
	for _, step := range s.lattice[1:] {
		if d := math.Abs(v - step); d < bestDist {
			best, bestDist = step, d
		}
	}
	if bestDist > snapLimit {
		panic(ErrOffLattice)
	}
	return best
}

// Animating reports whether a turn is in flight.
func (s *SpatialCube) Animating() bool {
	return s.animating
}

// Angle returns the current animation angle in degrees, zero when idle.
func (s *SpatialCube) Angle() float64 {
	return s.angle
}

// TurnAxis returns the axis of the in-flight turn; only meaningful while
// Animating reports true.
func (s *SpatialCube) TurnAxis() Axis {
	return s.axis
}

// Members returns the indices of the cubies in the turning slice. The slice
// is a copy; it is empty when idle.
func (s *SpatialCube) Members() []int {
	out := make([]int, len(s.members))
	copy(out, s.members)
	return out
}

// Transform returns the cubie's permanent transform: its accumulated
// orientation composed with the translation to its current lattice position.
func (s *SpatialCube) Transform(i int) Mat4 {
	cb := &s.cubies[i]
	return mat4(cb.orient, cb.pos)
}

// PoseTransform returns the transform to draw the cubie with right now. For
// members of an in-flight turn the temporary animation rotation is composed
// in front of the permanent transform, so the slice swings about the cube's
// center rather than each cubie's own center. Idle cubies get their
// permanent transform.
func (s *SpatialCube) PoseTransform(i int) Mat4 {
	cb := &s.cubies[i]
	if s.animating && s.isMember(i) {
		anim := axisRotation(s.axis, s.angle)
		return mat4(quaternion.Prod(anim, cb.orient), cb.pos.rotate(anim))
	}
	return mat4(cb.orient, cb.pos)
}

func (s *SpatialCube) isMember(i int) bool {
	for _, m := range s.members {
		if m == i {
			return true
		}
	}
	return false
}

// Reset rebuilds the cube to the solved state, discarding any in-flight
// turn. Configuration options are preserved.
func (s *SpatialCube) Reset() {
	s.build()
}
