package pixel

import (
	"errors"
	"testing"
)

func TestFormatBytesPerPixel(t *testing.T) {
	tests := []struct {
		Format Format
		Want   int
	}{
		{XRGB8888, 4},
		{XBGR8888, 4},
		{ARGB8888, 4},
		{ABGR8888, 4},
		{RGB565, 2},
		{BGR565, 2},
	}
	for _, test := range tests {
		t.Run(test.Format.String(), func(it *testing.T) {
			if v := test.Format.BytesPerPixel(); v != test.Want {
				it.Errorf("expected %d bytes per pixel, got %d", test.Want, v)
			}
			if !test.Format.Valid() {
				it.Error("expected format to be valid")
			}
		})
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range []Format{Alpha | Depth16, Alpha | Depth16 | LSBOrderRGB, 0x10, 0x80000000} {
		if f.Valid() {
			t.Errorf("expected %s to be invalid", f)
		}
	}
}

func TestClassify(t *testing.T) {
	var (
		r8  = BitField{16, 8}
		g8  = BitField{8, 8}
		b8  = BitField{0, 8}
		r5  = BitField{11, 5}
		g6  = BitField{5, 6}
		b5  = BitField{0, 5}
		lo8 = BitField{0, 8}
		hi8 = BitField{16, 8}
		lo5 = BitField{0, 5}
		hi5 = BitField{11, 5}
	)
	tests := []struct {
		Name   string
		Layout Layout
		Want   Format
		Err    bool
	}{
		{"xrgb8888", Layout{32, r8, g8, b8, BitField{}}, XRGB8888, false},
		{"argb8888", Layout{32, r8, g8, b8, BitField{24, 8}}, ARGB8888, false},
		{"xbgr8888", Layout{32, lo8, g8, hi8, BitField{}}, XBGR8888, false},
		{"abgr8888", Layout{32, lo8, g8, hi8, BitField{24, 8}}, ABGR8888, false},
		{"rgb565", Layout{16, r5, g6, b5, BitField{}}, RGB565, false},
		{"bgr565", Layout{16, lo5, g6, hi5, BitField{}}, BGR565, false},
		{"alpha4", Layout{32, r8, g8, b8, BitField{24, 4}}, 0, true},
		{"alpha16", Layout{16, r5, g6, b5, BitField{15, 1}}, 0, true},
		{"rgb555", Layout{16, BitField{10, 5}, BitField{5, 5}, b5, BitField{}}, 0, true},
		{"24bpp", Layout{24, r8, g8, b8, BitField{}}, 0, true},
		{"8bpp", Layout{8, BitField{0, 8}, BitField{0, 8}, BitField{0, 8}, BitField{}}, 0, true},
		{"32bpp-odd", Layout{32, BitField{20, 10}, BitField{10, 10}, BitField{0, 10}, BitField{}}, 0, true},
	}
	for _, test := range tests {
		t.Run(test.Name, func(it *testing.T) {
			f, err := Classify(test.Layout)
			if test.Err {
				if !errors.Is(err, ErrUnsupportedLayout) {
					it.Fatalf("expected ErrUnsupportedLayout, got %v (%s)", err, f)
				}
				return
			}
			if err != nil {
				it.Fatalf("unexpected error: %v", err)
			}
			if f != test.Want {
				it.Errorf("expected %s, got %s", test.Want, f)
			}
		})
	}
}
