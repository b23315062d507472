package ncube

// side identifies one border strip of a face grid.
type side int

const (
	topRow side = iota
	bottomRow
	leftCol
	rightCol
)

// strip addresses a border row or column of a face together with its
// traversal direction. Traversal index t runs 0..N-1; rev walks the strip
// from the far end so that all four strips of a ring are enumerated in the
// same geometric direction around the turning face.
type strip struct {
	face Face
	side side
	rev  bool
}

// rings lists, for each face, the four neighbor strips its turn drags, in
// clockwise receive order: a clockwise turn moves the colors of rings[f][k]
// onto rings[f][k+1]. Because each strip's traversal follows the turn's
// geometric direction, no per-pair index fixups are needed at cycle time;
// the rev flags encode them once.
//
// The table is fixed topology, valid for every N.
var rings = [6][4]strip{
	FaceU: {{FaceF, topRow, false}, {FaceL, topRow, false}, {FaceB, topRow, false}, {FaceR, topRow, false}},
	FaceD: {{FaceF, bottomRow, false}, {FaceR, bottomRow, false}, {FaceB, bottomRow, false}, {FaceL, bottomRow, false}},
	FaceF: {{FaceU, bottomRow, false}, {FaceR, leftCol, false}, {FaceD, topRow, true}, {FaceL, rightCol, true}},
	FaceB: {{FaceU, topRow, true}, {FaceL, leftCol, false}, {FaceD, bottomRow, false}, {FaceR, rightCol, true}},
	FaceR: {{FaceD, rightCol, false}, {FaceF, rightCol, false}, {FaceU, rightCol, false}, {FaceB, leftCol, true}},
	FaceL: {{FaceU, leftCol, false}, {FaceF, leftCol, false}, {FaceD, leftCol, false}, {FaceB, rightCol, true}},
}

// cell returns the (row, col) of traversal index t on the strip.
func (s strip) cell(n, t int) (int, int) {
	if s.rev {
		t = n - 1 - t
	}
	switch s.side {
	case topRow:
		return 0, t
	case bottomRow:
		return n - 1, t
	case leftCol:
		return t, 0
	default: // rightCol
		return t, n - 1
	}
}

// readStrip snapshots the strip's colors in traversal order.
func (c *Cube) readStrip(s strip) []Color {
	colors := make([]Color, c.size)
	for t := 0; t < c.size; t++ {
		row, col := s.cell(c.size, t)
		colors[t] = c.faces[s.face][row][col].Color
	}
	return colors
}

// writeStrip scatters colors onto the strip in traversal order.
func (c *Cube) writeStrip(s strip, colors []Color) {
	for t := 0; t < c.size; t++ {
		row, col := s.cell(c.size, t)
		c.faces[s.face][row][col].Color = colors[t]
	}
}

// cycleStrips permutes the four neighbor strips dragged by a quarter turn of
// the given face. All four strips are snapshotted before any write: every
// strip is both donor and receiver in the same operation.
func (c *Cube) cycleStrips(f Face, turn Turn) {
	ring := rings[f]

	var saved [4][]Color
	for k := range ring {
		saved[k] = c.readStrip(ring[k])
	}

	shift := 1 // clockwise: strip k feeds strip k+1
	if turn == CCW {
		shift = 3
	}
	for k := range ring {
		c.writeStrip(ring[(k+shift)%4], saved[k])
	}
}

// adjacentStickers visits every sticker on the four border strips a turn of
// the face would drag. Used by the selection tracker.
func (c *Cube) adjacentStickers(f Face, visit func(*Sticker)) {
	for _, s := range rings[f] {
		for t := 0; t < c.size; t++ {
			row, col := s.cell(c.size, t)
			visit(&c.faces[s.face][row][col])
		}
	}
}
