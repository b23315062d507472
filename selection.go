package ncube

// Select marks a face as selected for UI highlighting: every sticker of the
// face gets Selected=true, and the border strips of the four neighbors that a
// turn of the face would drag get Adjacent=true. Any previous selection is
// cleared first; at most one face is selected at a time.
//
// Pass FaceNone to clear the selection entirely. Selection is purely derived
// state and never affects puzzle logic.
func (c *Cube) Select(f Face) {
	if f != FaceNone {
		checkFace(f)
	}

	if c.selected != FaceNone {
		c.clearSelection(c.selected)
	}

	c.selected = f
	if f == FaceNone {
		return
	}

	for i := 0; i < c.size; i++ {
		for j := 0; j < c.size; j++ {
			c.faces[f][i][j].Selected = true
			c.faces[f][i][j].Adjacent = false
		}
	}
	c.adjacentStickers(f, func(s *Sticker) {
		s.Adjacent = true
	})
}

// Selected returns the currently selected face, or FaceNone.
func (c *Cube) Selected() Face {
	return c.selected
}

func (c *Cube) clearSelection(f Face) {
	for i := 0; i < c.size; i++ {
		for j := 0; j < c.size; j++ {
			c.faces[f][i][j].Selected = false
			c.faces[f][i][j].Adjacent = false
		}
	}
	c.adjacentStickers(f, func(s *Sticker) {
		s.Selected = false
		s.Adjacent = false
	})
}
