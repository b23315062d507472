package ncube

// Rotate applies a single turn of the given face, permuting both the face's
// own stickers and the border strips of its four neighbors. The operation is
// atomic from the caller's perspective: no partial state is observable.
//
// Rotate does not refresh selection flags; a caller that keeps a face
// selected across moves must call Select again afterwards.
//
// It panics on an invalid face. Turn values other than CW, CCW and Double
// are ignored.
func (c *Cube) Rotate(f Face, turn Turn) {
	checkFace(f)
	switch turn {
	case CW:
		c.cycleStrips(f, CW)
		c.rotateFaceCW(f)
	case CCW:
		c.cycleStrips(f, CCW)
		c.rotateFaceCCW(f)
	case Double:
		c.Rotate(f, CW)
		c.Rotate(f, CW)
	}
}

// rotateFaceCW relocates the face's own stickers by a 90 degree clockwise
// rotation: (i, j) -> (j, n-1-i). The grid is snapshotted in full before the
// scatter write so no read ever sees a partially written cell.
func (c *Cube) rotateFaceCW(f Face) {
	n := c.size
	snap := c.snapshotFace(f)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.faces[f][j][n-1-i].Color = snap[i][j]
		}
	}
}

// rotateFaceCCW is the counter-clockwise counterpart: (i, j) -> (n-1-j, i).
func (c *Cube) rotateFaceCCW(f Face) {
	n := c.size
	snap := c.snapshotFace(f)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.faces[f][n-1-j][i].Color = snap[i][j]
		}
	}
}

func (c *Cube) snapshotFace(f Face) [][]Color {
	snap := make([][]Color, c.size)
	for i := range snap {
		snap[i] = make([]Color, c.size)
		for j := range snap[i] {
			snap[i][j] = c.faces[f][i][j].Color
		}
	}
	return snap
}
