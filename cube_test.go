package ncube

import (
	"testing"
)

// scramble is a fixed move sequence used to put a cube into a non-trivial
// state before checking permutation properties.
var scramble = []Move{R, U, FPrime, L2, D, BPrime, U2, F, LPrime, D2}

func sameColors(a, b *Cube) bool {
	for _, f := range Faces {
		for i := 0; i < a.Size(); i++ {
			for j := 0; j < a.Size(); j++ {
				if a.Color(f, i, j) != b.Color(f, i, j) {
					return false
				}
			}
		}
	}
	return true
}

func TestNewCubeIsSolved(t *testing.T) {
	for n := 2; n <= 5; n++ {
		c := New(n)
		if !c.IsSolved() {
			t.Errorf("new %dx%d cube should be solved", n, n)
		}
	}
}

func TestNewPanicsOnSizeBelowTwo(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) should panic", n)
				}
			}()
			New(n)
		}()
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New(3)
	c.Rotate(FaceR, CW)
	if c.IsSolved() {
		t.Error("cube should not be solved after R move")
	}
}

func TestFourQuarterTurnsAreIdentity(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for _, f := range Faces {
			for _, turn := range []Turn{CW, CCW} {
				c := New(n)
				c.Apply(scramble...)
				before := c.Clone()

				for i := 0; i < 4; i++ {
					c.Rotate(f, turn)
				}
				if !sameColors(c, before) {
					t.Errorf("n=%d face=%v turn=%d: four quarter turns should restore the grid", n, f, turn)
					t.Log(c.String())
				}
			}
		}
	}
}

func TestDoubleTurnTwiceIsIdentity(t *testing.T) {
	for n := 2; n <= 4; n++ {
		for _, f := range Faces {
			c := New(n)
			c.Apply(scramble...)
			before := c.Clone()

			c.Rotate(f, Double)
			c.Rotate(f, Double)
			if !sameColors(c, before) {
				t.Errorf("n=%d face=%v: two half turns should restore the grid", n, f)
			}
		}
	}
}

func TestInverseRestoresGrid(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for _, f := range Faces {
			c := New(n)
			c.Apply(scramble...)
			before := c.Clone()

			c.Rotate(f, CW)
			c.Rotate(f, CCW)
			if !sameColors(c, before) {
				t.Errorf("n=%d face=%v: CW then CCW should restore the grid", n, f)
				t.Log(c.String())
			}
		}
	}
}

func TestOppositeFaceTurnsCommute(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for _, f := range []Face{FaceU, FaceF, FaceR} {
			a := New(n)
			a.Apply(scramble...)
			b := a.Clone()

			a.Rotate(f, CW)
			a.Rotate(f.Opposite(), CW)
			b.Rotate(f.Opposite(), CW)
			b.Rotate(f, CW)
			if !sameColors(a, b) {
				t.Errorf("n=%d: %v and %v turns should commute", n, f, f.Opposite())
			}
		}
	}
}

func TestColorMultisetIsInvariant(t *testing.T) {
	for n := 2; n <= 5; n++ {
		c := New(n)
		c.Apply(scramble...)
		c.Apply(scramble...)

		counts := map[Color]int{}
		for _, f := range Faces {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					counts[c.Color(f, i, j)]++
				}
			}
		}
		if len(counts) != 6 {
			t.Fatalf("n=%d: expected 6 distinct colors, got %d", n, len(counts))
		}
		for color, count := range counts {
			if count != n*n {
				t.Errorf("n=%d: color %v appears %d times, want %d", n, color, count, n*n)
			}
		}
	}
}

func TestSexyMoveSixTimesIsIdentity(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New(3)
	for i := 0; i < 6; i++ {
		c.Apply(R, U, RPrime, UPrime)
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestFrontClockwiseFromSolved(t *testing.T) {
	c := New(3)
	c.Rotate(FaceF, CW)

	// The turn drags L's right column onto U's bottom row, U's bottom row
	// onto R's left column, R's left column onto D's top row, and D's top
	// row onto L's right column.
	for j := 0; j < 3; j++ {
		if got := c.Color(FaceU, 2, j); got != Orange {
			t.Errorf("U bottom row col %d = %v, want O", j, got)
		}
		if got := c.Color(FaceD, 0, j); got != Red {
			t.Errorf("D top row col %d = %v, want R", j, got)
		}
	}
	for i := 0; i < 3; i++ {
		if got := c.Color(FaceR, i, 0); got != White {
			t.Errorf("R left col row %d = %v, want W", i, got)
		}
		if got := c.Color(FaceL, i, 2); got != Yellow {
			t.Errorf("L right col row %d = %v, want Y", i, got)
		}
	}

	// F's own face and every untouched sticker keep their colors.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := c.Color(FaceF, i, j); got != Green {
				t.Errorf("F(%d,%d) = %v, want G", i, j, got)
			}
			if got := c.Color(FaceB, i, j); got != Blue {
				t.Errorf("B(%d,%d) = %v, want B", i, j, got)
			}
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got := c.Color(FaceU, i, j); got != White {
				t.Errorf("U(%d,%d) = %v, want W", i, j, got)
			}
		}
	}
}

func TestFrontClockwiseStripOrientation(t *testing.T) {
	// D first paints L's bottom row blue and R's bottom row green, making
	// the columns adjacent to F asymmetric. F CW must then read L's right
	// column bottom-to-top into U's bottom row, and R's left column
	// top-to-bottom into D's top row right-to-left.
	c := New(3)
	c.Apply(D, F)

	wantU := []Color{Blue, Orange, Orange}
	for j, want := range wantU {
		if got := c.Color(FaceU, 2, j); got != want {
			t.Errorf("U(2,%d) = %v, want %v", j, got, want)
		}
	}
	wantD := []Color{Green, Red, Red}
	for j, want := range wantD {
		if got := c.Color(FaceD, 0, j); got != want {
			t.Errorf("D(0,%d) = %v, want %v", j, got, want)
		}
	}
}

func TestRotateInvalidFacePanics(t *testing.T) {
	c := New(3)
	defer func() {
		if recover() == nil {
			t.Error("Rotate with invalid face should panic")
		}
	}()
	c.Rotate(Face(7), CW)
}

func TestColorOutOfRangePanics(t *testing.T) {
	c := New(3)
	defer func() {
		if recover() == nil {
			t.Error("Color with out-of-range coordinate should panic")
		}
	}()
	c.Color(FaceU, 3, 0)
}

func TestResetRestoresSolvedAndClearsSelection(t *testing.T) {
	c := New(4)
	c.Apply(scramble...)
	c.Select(FaceF)

	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset should restore the solved state")
	}
	if c.Selected() != FaceNone {
		t.Errorf("Reset should clear selection, got %v", c.Selected())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := New(3)
	clone := c.Clone()
	c.Rotate(FaceU, CW)
	if !clone.IsSolved() {
		t.Error("mutating the original should not affect the clone")
	}
}

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{R, "R"},
		{RPrime, "R'"},
		{R2, "R2"},
		{UPrime, "U'"},
		{F2, "F2"},
		{B, "B"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 should be its own inverse")
	}
}
