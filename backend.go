package dgl

import "github.com/BeatGlow/dgl/pixel"

// Backend is an alternate compositing implementation for area copies and fills. Coordinates
// passed to a backend already include the context y offsets. Blit must produce correct results
// when src and dst are the same buffer and the rectangles overlap.
type Backend interface {
	// Blit copies a w x h rectangle at (sx, sy) in src to (dx, dy) in dst.
	Blit(src, dst *pixel.Buffer, sx, sy, dx, dy, w, h int) error

	// Fill writes v to every pixel of the w x h rectangle at (x, y) in dst.
	Fill(dst *pixel.Buffer, x, y, w, h int, v uint32) error
}
