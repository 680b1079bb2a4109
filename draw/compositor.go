package draw

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"golang.org/x/image/draw"

	"github.com/BeatGlow/dgl"
	"github.com/BeatGlow/dgl/pixel"
)

// ErrReleased is returned when compositing into or from a released buffer.
var ErrReleased = errors.New("draw: buffer is released")

// Compositor is a [dgl.Backend] running block transfers and fills through [draw.Draw].
//
// Buffers are viewed as *image.RGBA (32-bit formats) or *image.Gray16 (16-bit formats) sharing
// the buffer memory, so pixel values are moved unchanged. Copies within one buffer use the same
// view for source and destination, which lets draw pick a safe direction for overlapping areas.
type Compositor struct{}

var _ dgl.Backend = Compositor{}

// Blit copies a w x h rectangle at (sx, sy) in src to (dx, dy) in dst.
func (Compositor) Blit(src, dst *pixel.Buffer, sx, sy, dx, dy, w, h int) error {
	if src.BytesPerPixel() != dst.BytesPerPixel() {
		return fmt.Errorf("%w: %s to %s", dgl.ErrIncompatibleFormat, src.Format, dst.Format)
	}
	d, err := view(dst)
	if err != nil {
		return err
	}
	s := d
	if src != dst {
		if s, err = view(src); err != nil {
			return err
		}
	}
	draw.Draw(d, image.Rect(dx, dy, dx+w, dy+h), s, image.Pt(sx, sy), draw.Src)
	return nil
}

// Fill writes v to every pixel of the w x h rectangle at (x, y) in dst.
func (Compositor) Fill(dst *pixel.Buffer, x, y, w, h int, v uint32) error {
	d, err := view(dst)
	if err != nil {
		return err
	}
	var c color.Color
	if dst.BytesPerPixel() == 4 {
		// Bytes in memory order.
		c = color.RGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: uint8(v >> 24)}
	} else {
		// Gray16 stores big endian.
		c = color.Gray16{Y: bits.ReverseBytes16(uint16(v))}
	}
	draw.Draw(d, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// view returns an image sharing the memory of p, covering every row of its storage.
func view(p *pixel.Buffer) (draw.Image, error) {
	if p.Released() {
		return nil, ErrReleased
	}
	r := image.Rect(0, 0, p.Width, p.Rows())
	if p.BytesPerPixel() == 4 {
		return &image.RGBA{Pix: p.Pix, Stride: p.Stride, Rect: r}, nil
	}
	return &image.Gray16{Pix: p.Pix, Stride: p.Stride, Rect: r}, nil
}
