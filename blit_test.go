package dgl

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/BeatGlow/dgl/pixel"
)

// ramp gives every pixel of p a distinct value.
func ramp(p *pixel.Buffer) {
	for y := 0; y < p.Rows(); y++ {
		for x := 0; x < p.Width; x++ {
			p.SetPixelAt(x, y, uint32(y*p.Width+x+1))
		}
	}
}

// referenceCopy returns the memory of dst after copying a rectangle of src into it as if the
// whole source rectangle was read before anything was written.
func referenceCopy(src, dst *pixel.Buffer, sx, sy, dx, dy, w, h int) []byte {
	out := *dst
	out.Pix = append([]byte(nil), dst.Pix...)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetPixelAt(dx+x, dy+y, src.PixelAt(sx+x, sy+y))
		}
	}
	return out.Pix
}

type copyCase struct {
	name                 string
	sx, sy, dx, dy, w, h int
	overlapping          bool
}

var sameBufferCases = []copyCase{
	{"disjoint", 0, 0, 8, 6, 4, 4, false},
	{"contiguous", 0, 0, 0, 8, 16, 4, false},
	{"rows below", 2, 0, 5, 5, 6, 4, false},
	{"columns right", 0, 2, 9, 3, 6, 5, false},
	{"full rows down", 0, 0, 0, 2, 16, 6, true},
	{"full rows up", 0, 4, 0, 1, 16, 6, true},
	{"shift right", 2, 3, 5, 3, 8, 4, true},
	{"shift left", 5, 3, 2, 3, 8, 4, true},
	{"down right", 1, 1, 3, 2, 6, 5, true},
	{"up left", 4, 4, 2, 2, 6, 5, true},
	{"up right", 2, 4, 4, 2, 6, 5, true},
	{"self", 3, 3, 3, 3, 5, 5, true},
}

func TestCopyAreaSameBuffer(t *testing.T) {
	for _, f := range []pixel.Format{pixel.RGB565, pixel.XRGB8888} {
		for _, test := range sameBufferCases {
			t.Run(fmt.Sprintf("%s/%s", f, test.name), func(t *testing.T) {
				p, err := pixel.NewPixmap(f, 16, 12)
				if err != nil {
					t.Fatal(err)
				}
				ramp(p)
				want := referenceCopy(p, p, test.sx, test.sy, test.dx, test.dy, test.w, test.h)

				ctx := NewContext(p, p, nil)
				ctx.CopyArea(test.sx, test.sy, test.dx, test.dy, test.w, test.h)
				if !bytes.Equal(p.Pix, want) {
					t.Errorf("copy (%d,%d)->(%d,%d) %dx%d differs from reference",
						test.sx, test.sy, test.dx, test.dy, test.w, test.h)
				}
			})
		}
	}
}

func TestCopyAreaScratchRow(t *testing.T) {
	// A single ramp row moved right over itself, compared against a plain memmove.
	p, _ := pixel.NewPixmap(pixel.XRGB8888, 32, 1)
	ramp(p)
	want := append([]byte(nil), p.Pix...)
	copy(want[3*4:], want[:20*4])

	ctx := NewContext(p, p, nil)
	ctx.CopyArea(0, 0, 3, 0, 20, 1)
	if !bytes.Equal(p.Pix, want) {
		t.Errorf("expected %x, got %x", want, p.Pix)
	}
	if len(ctx.scratch) < 20*4 {
		t.Errorf("expected scratch row of %d bytes, got %d", 20*4, len(ctx.scratch))
	}
}

func TestCopyAreaHardware(t *testing.T) {
	for _, test := range sameBufferCases {
		if test.overlapping {
			continue
		}
		t.Run(test.name, func(t *testing.T) {
			var results [2][]byte
			for i, caps := range []Capability{0, CapCopyArea} {
				s, a := newTestSurface(t, pixel.RGB565, 16, 12, 1, caps)
				ramp(s.PixelBuffer())
				ctx := NewContext(s, s, nil)
				ctx.CopyArea(test.sx, test.sy, test.dx, test.dy, test.w, test.h)
				if want := int(caps & CapCopyArea); a.copies != want {
					t.Errorf("caps %s: expected %d accelerated copies, got %d", caps, want, a.copies)
				}
				results[i] = s.Pix
			}
			if !bytes.Equal(results[0], results[1]) {
				t.Error("software and accelerated copies differ")
			}
		})
	}
}

func TestCopyAreaAcross(t *testing.T) {
	t.Run("row wise", func(t *testing.T) {
		src, _ := pixel.NewPixmap(pixel.RGB565, 10, 8)
		dst, _ := pixel.NewPixmap(pixel.RGB565, 16, 12)
		ramp(src)
		want := referenceCopy(src, dst, 2, 1, 7, 6, 5, 4)

		NewContext(src, dst, nil).CopyArea(2, 1, 7, 6, 5, 4)
		if !bytes.Equal(dst.Pix, want) {
			t.Error("cross buffer copy differs from reference")
		}
	})

	t.Run("contiguous", func(t *testing.T) {
		src, _ := pixel.NewPixmap(pixel.XRGB8888, 8, 8)
		dst, _ := pixel.NewPixmap(pixel.XBGR8888, 8, 8)
		ramp(src)
		want := referenceCopy(src, dst, 0, 2, 0, 1, 8, 5)

		NewContext(src, dst, nil).CopyArea(0, 2, 0, 1, 8, 5)
		if !bytes.Equal(dst.Pix, want) {
			t.Error("cross buffer copy differs from reference")
		}
	})

	t.Run("incompatible", func(t *testing.T) {
		src, _ := pixel.NewPixmap(pixel.XRGB8888, 8, 8)
		dst, _ := pixel.NewPixmap(pixel.RGB565, 8, 8)
		ramp(src)

		NewContext(src, dst, nil).CopyArea(0, 0, 0, 0, 8, 8)
		if !bytes.Equal(dst.Pix, make([]byte, len(dst.Pix))) {
			t.Error("incompatible copy modified the draw buffer")
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		src, _ := pixel.NewPixmap(pixel.RGB565, 8, 8)
		dst, _ := pixel.NewPixmap(pixel.RGB565, 8, 8)
		ramp(src)

		ctx := NewContext(src, dst, nil)
		ctx.CopyArea(0, 0, 0, 0, 0, 8)
		ctx.CopyArea(0, 0, 0, 0, 8, -1)
		if !bytes.Equal(dst.Pix, make([]byte, len(dst.Pix))) {
			t.Error("degenerate copy modified the draw buffer")
		}
	})
}

func TestPutImage(t *testing.T) {
	s, _ := newTestSurface(t, pixel.XRGB8888, 16, 8, 2, 0)
	img, _ := pixel.NewImage(pixel.XRGB8888, 4, 3)
	ramp(img)

	ctx := NewContext(s, s, nil)
	ctx.SetDrawPage(1)
	ctx.PutImage(5, 2, img)
	ctx.PutPartialImage(1, 1, 0, 0, 2, 2, img)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if v, want := s.PixelAt(5+x, 8+2+y), img.PixelAt(x, y); v != want {
				t.Errorf("(%d,%d): expected %#x, got %#x", x, y, want, v)
			}
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if v, want := s.PixelAt(x, 8+y), img.PixelAt(1+x, 1+y); v != want {
				t.Errorf("partial (%d,%d): expected %#x, got %#x", x, y, want, v)
			}
		}
	}
	if v := s.PixelAt(5, 2); v != 0 {
		t.Errorf("page 0 was written: %#x", v)
	}
}

func TestPageOffset(t *testing.T) {
	draw := func(ctx *Context, yOffset int) {
		ctx.PutPixel(1, 1+yOffset, 0x1234)
		ctx.Fill(2, 3+yOffset, 5, 2, 0xbeef)
		ctx.CopyArea(0, 0, 8, 4+yOffset, 4, 4)
	}

	for _, f := range []pixel.Format{pixel.RGB565, pixel.ARGB8888} {
		t.Run(f.String(), func(t *testing.T) {
			paged, _ := newTestSurface(t, f, 16, 8, 3, 0)
			plain, _ := newTestSurface(t, f, 16, 8, 3, 0)
			ramp(paged.PixelBuffer())
			ramp(plain.PixelBuffer())

			ctx := NewContext(paged, paged, nil)
			ctx.SetDrawPage(2)
			draw(ctx, 0)

			draw(NewContext(plain, plain, nil), 2*8)

			if !bytes.Equal(paged.Pix, plain.Pix) {
				t.Error("page addressed drawing differs from offset coordinates")
			}
		})
	}
}

func TestContextConvertColor(t *testing.T) {
	p, _ := pixel.NewPixmap(pixel.XRGB8888, 1, 1)
	ctx := NewContext(nil, p, nil)
	if v := ctx.ConvertColor(1, 0, 0); v != 0xff0000 {
		t.Errorf("expected 0xff0000, got %#x", v)
	}

	p.Format = pixel.Alpha | pixel.Depth16
	if v := ctx.ConvertColor(1, 1, 1); v != 0 {
		t.Errorf("invalid format: expected 0, got %#x", v)
	}

	ctx.SetDrawFramebuffer(nil)
	if v := ctx.ConvertColor(1, 1, 1); v != 0 {
		t.Errorf("no framebuffer: expected 0, got %#x", v)
	}
}

func TestClipRectangle(t *testing.T) {
	p, _ := pixel.NewPixmap(pixel.RGB565, 10, 5)
	cr := ClipFramebuffer(p)
	tests := []struct {
		x, y, wantX, wantY int
	}{
		{3, 2, 3, 2},
		{-1, -7, 0, 0},
		{10, 5, 9, 4},
		{42, 1, 9, 1},
	}
	for _, test := range tests {
		if x, y := cr.Clip(test.x, test.y); x != test.wantX || y != test.wantY {
			t.Errorf("clip (%d,%d): expected (%d,%d), got (%d,%d)", test.x, test.y, test.wantX, test.wantY, x, y)
		}
	}
}
