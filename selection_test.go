package ncube

import "testing"

// flagCounts tallies selection flags across the whole cube.
func flagCounts(c *Cube) (selected, adjacent int) {
	for _, f := range Faces {
		for i := 0; i < c.Size(); i++ {
			for j := 0; j < c.Size(); j++ {
				s := c.Sticker(f, i, j)
				if s.Selected {
					selected++
				}
				if s.Adjacent {
					adjacent++
				}
			}
		}
	}
	return
}

func TestSelectFlagsFaceAndBorders(t *testing.T) {
	for n := 2; n <= 4; n++ {
		c := New(n)
		c.Select(FaceF)

		selected, adjacent := flagCounts(c)
		if selected != n*n {
			t.Errorf("n=%d: %d stickers selected, want %d", n, selected, n*n)
		}
		if adjacent != 4*n {
			t.Errorf("n=%d: %d stickers adjacent, want %d", n, adjacent, 4*n)
		}

		// The dragged strips of F: U bottom row, R left column, D top row,
		// L right column.
		for k := 0; k < n; k++ {
			if !c.Sticker(FaceU, n-1, k).Adjacent {
				t.Errorf("n=%d: U(%d,%d) should be adjacent", n, n-1, k)
			}
			if !c.Sticker(FaceR, k, 0).Adjacent {
				t.Errorf("n=%d: R(%d,0) should be adjacent", n, k)
			}
			if !c.Sticker(FaceD, 0, k).Adjacent {
				t.Errorf("n=%d: D(0,%d) should be adjacent", n, k)
			}
			if !c.Sticker(FaceL, k, n-1).Adjacent {
				t.Errorf("n=%d: L(%d,%d) should be adjacent", n, k, n-1)
			}
		}
	}
}

func TestSelectNoneClearsEveryFlag(t *testing.T) {
	c := New(3)
	c.Select(FaceF)
	c.Select(FaceNone)

	selected, adjacent := flagCounts(c)
	if selected != 0 || adjacent != 0 {
		t.Errorf("after clearing: %d selected, %d adjacent flags remain", selected, adjacent)
	}
	if c.Selected() != FaceNone {
		t.Errorf("Selected() = %v, want FaceNone", c.Selected())
	}
}

func TestReselectLeavesNoStaleFlags(t *testing.T) {
	c := New(3)
	c.Select(FaceF)
	c.Select(FaceB)

	if c.Selected() != FaceB {
		t.Fatalf("Selected() = %v, want B", c.Selected())
	}

	n := c.Size()
	selected, adjacent := flagCounts(c)
	if selected != n*n {
		t.Errorf("%d stickers selected, want %d", selected, n*n)
	}
	if adjacent != 4*n {
		t.Errorf("%d stickers adjacent, want %d", adjacent, 4*n)
	}

	// Nothing from the F selection may survive: F's own face is clean and
	// no sticker carries both flags.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if s := c.Sticker(FaceF, i, j); s.Selected || s.Adjacent {
				t.Errorf("F(%d,%d) retains stale flags %+v", i, j, s)
			}
		}
	}
	for _, f := range Faces {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if s := c.Sticker(f, i, j); s.Selected && s.Adjacent {
					t.Errorf("%v(%d,%d) carries both flags", f, i, j)
				}
			}
		}
	}
}

func TestSelectionDoesNotAffectColors(t *testing.T) {
	c := New(3)
	before := c.Clone()
	c.Select(FaceR)
	c.Select(FaceNone)
	if !sameColors(c, before) {
		t.Error("selection must never change sticker colors")
	}
}

func TestSelectInvalidFacePanics(t *testing.T) {
	c := New(3)
	defer func() {
		if recover() == nil {
			t.Error("Select with invalid face should panic")
		}
	}()
	c.Select(Face(42))
}
