//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"eca-density/internal/core"
)

// HistoryPainter uploads a space-time history into a single image.
type HistoryPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewHistoryPainter allocates a painter for a history of w cells by h rows.
func NewHistoryPainter(w, h int) *HistoryPainter {
	hp := &HistoryPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	hp.img = ebiten.NewImage(w, h)
	return hp
}

// Blit uploads the history and draws it scaled onto dst.
func (hp *HistoryPainter) Blit(dst *ebiten.Image, st *core.SpaceTime, on, off, empty color.Color, scale int) {
	if st.W != hp.w || st.H != hp.h {
		return
	}
	fillHistoryRGBA(hp.buf, st, on, off, empty)
	hp.img.WritePixels(hp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(hp.img, op)
}

// Size returns the dimensions of the underlying image.
func (hp *HistoryPainter) Size() (int, int) { return hp.w, hp.h }
