package dgl

import (
	"encoding/binary"
	"testing"

	"github.com/BeatGlow/dgl/pixel"
)

func TestFill(t *testing.T) {
	t.Run("argb8888", func(t *testing.T) {
		p, err := pixel.NewPixmap(pixel.ARGB8888, 4, 4)
		if err != nil {
			t.Fatal(err)
		}
		NewContext(nil, p, nil).Fill(0, 0, 4, 4, 0x11223344)
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				if v := p.PixelAt(x, y); v != 0x11223344 {
					t.Errorf("(%d,%d): expected 0x11223344, got %#x", x, y, v)
				}
			}
		}
	})

	for _, f := range []pixel.Format{pixel.RGB565, pixel.BGR565, pixel.XRGB8888} {
		t.Run(f.String(), func(t *testing.T) {
			// Every start column and width, so 16-bit rows start at both alignments.
			for x := 0; x < 4; x++ {
				for w := 1; w <= 9; w++ {
					p, _ := pixel.NewPixmap(f, 16, 4)
					NewContext(nil, p, nil).Fill(x, 1, w, 2, 0xa5c3)
					for py := 0; py < 4; py++ {
						for px := 0; px < 16; px++ {
							want := uint32(0)
							if px >= x && px < x+w && py >= 1 && py < 3 {
								want = 0xa5c3
							}
							if v := p.PixelAt(px, py); v != want {
								t.Fatalf("fill x=%d w=%d: (%d,%d) expected %#x, got %#x", x, w, px, py, want, v)
							}
						}
					}
				}
			}
		})
	}

	t.Run("degenerate", func(t *testing.T) {
		p, _ := pixel.NewPixmap(pixel.RGB565, 4, 4)
		ctx := NewContext(nil, p, nil)
		ctx.Fill(0, 0, 0, 4, 0xffff)
		ctx.Fill(0, 0, 4, -2, 0xffff)
		for i, v := range p.Pix {
			if v != 0 {
				t.Fatalf("byte %d written by degenerate fill", i)
			}
		}
	})
}

func TestFill16(t *testing.T) {
	// Start two bytes into a word aligned slice to force the leading store.
	b := make([]byte, 20)
	fill16(b[2:16], 0xf00d1234)
	for i := 2; i < 16; i += 2 {
		if v := binary.LittleEndian.Uint16(b[i:]); v != 0x1234 {
			t.Errorf("offset %d: expected 0x1234, got %#x", i, v)
		}
	}
	if b[0] != 0 || b[1] != 0 || b[16] != 0 || b[17] != 0 {
		t.Errorf("fill wrote outside its slice: %x", b)
	}
}

func TestFill32(t *testing.T) {
	b := make([]byte, 4*7)
	fill32(b, 0xdeadbeef)
	for i := 0; i < len(b); i += 4 {
		if v := binary.LittleEndian.Uint32(b[i:]); v != 0xdeadbeef {
			t.Errorf("offset %d: expected 0xdeadbeef, got %#x", i, v)
		}
	}
}
