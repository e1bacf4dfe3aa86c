package render

import (
	"image/color"

	"eca-density/internal/core"
)

type rgba [4]uint8

func toRGBA(c color.Color) rgba {
	r, g, b, a := c.RGBA()
	return rgba{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillHistoryRGBA converts a space-time history into RGBA pixels in buf,
// newest generation on the top row. Rows that have not been recorded yet
// are painted with empty.
func fillHistoryRGBA(buf []byte, st *core.SpaceTime, on, off, empty color.Color) {
	pOn, pOff, pEmpty := toRGBA(on), toRGBA(off), toRGBA(empty)
	cells := st.Cells()
	recorded := st.Len() * st.W
	for i, c := range cells {
		px := pOff
		switch {
		case i >= recorded:
			px = pEmpty
		case c != 0:
			px = pOn
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
