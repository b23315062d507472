package ncube

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	// Inside is the neutral color of interior cubie faces in the spatial
	// model. It never appears on a facelet grid.
	Inside Color = 6
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Inside:
		return "."
	default:
		return "?"
	}
}

// Sticker is one colored unit square on a cube face. The two UI flags are
// derived state maintained by Select and never affect puzzle logic.
type Sticker struct {
	Color    Color
	Selected bool // sticker belongs to the selected face
	Adjacent bool // sticker sits on a border strip a turn of the selected face would drag
}

// Cube represents an NxN facelet model of a twisty cube.
//
// Each face holds an NxN matrix of stickers addressed by (row, col) with
// (0, 0) in the top-left corner when looking straight at the face. Exactly
// 6*N*N stickers exist for the lifetime of the cube; turns only reassign
// colors.
type Cube struct {
	size     int
	faces    [6][][]Sticker
	selected Face
}

// New creates a solved cube of the given size with standard orientation:
// white on top, green in front. It panics if size is less than 2.
func New(size int) *Cube {
	if size < 2 {
		panic(ErrCubeSize)
	}
	c := &Cube{size: size, selected: FaceNone}
	c.build()
	return c
}

func (c *Cube) build() {
	for _, f := range Faces {
		color := faceSolvedColor(f)
		grid := make([][]Sticker, c.size)
		for i := range grid {
			grid[i] = make([]Sticker, c.size)
			for j := range grid[i] {
				grid[i][j] = Sticker{Color: color}
			}
		}
		c.faces[f] = grid
	}
}

// faceSolvedColor returns the color of a face when solved.
func faceSolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		panic(ErrInvalidFace)
	}
}

// Size returns the cube dimension N.
func (c *Cube) Size() int {
	return c.size
}

// Color returns the color of the sticker at (row, col) on the given face.
// It panics on an invalid face or out-of-range coordinate.
func (c *Cube) Color(f Face, row, col int) Color {
	return c.Sticker(f, row, col).Color
}

// Sticker returns a copy of the sticker at (row, col) on the given face,
// including its selection flags.
func (c *Cube) Sticker(f Face, row, col int) Sticker {
	checkFace(f)
	if row < 0 || row >= c.size || col < 0 || col >= c.size {
		panic(ErrStickerRange)
	}
	return c.faces[f][row][col]
}

func checkFace(f Face) {
	if f < FaceU || f > FaceL {
		panic(ErrInvalidFace)
	}
}

// IsSolved returns true if every face shows a single uniform color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		want := faceSolvedColor(f)
		for i := 0; i < c.size; i++ {
			for j := 0; j < c.size; j++ {
				if c.faces[f][i][j].Color != want {
					return false
				}
			}
		}
	}
	return true
}

// Clone creates a deep copy of the cube, including selection flags.
func (c *Cube) Clone() *Cube {
	clone := &Cube{size: c.size, selected: c.selected}
	for _, f := range Faces {
		grid := make([][]Sticker, c.size)
		for i := range grid {
			grid[i] = make([]Sticker, c.size)
			copy(grid[i], c.faces[f][i])
		}
		clone.faces[f] = grid
	}
	return clone
}

// Reset rebuilds the cube to the solved state and clears any selection.
func (c *Cube) Reset() {
	c.selected = FaceNone
	c.build()
}

// Apply applies a sequence of moves to the cube.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.Rotate(m.Face, m.Turn)
	}
}

// String returns an unfolded text representation of the cube:
//
//	      U
//	L  F  R  B
//	      D
//
// This is a debugging aid, not a stable serialization format.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.size)

	for row := 0; row < c.size; row++ {
		b.WriteString(indent)
		c.writeRow(&b, FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < c.size; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			c.writeRow(&b, f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < c.size; row++ {
		b.WriteString(indent)
		c.writeRow(&b, FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}

func (c *Cube) writeRow(b *strings.Builder, f Face, row int) {
	for col := 0; col < c.size; col++ {
		b.WriteString(c.faces[f][row][col].Color.String())
		b.WriteByte(' ')
	}
}
