package pixel

import (
	"fmt"
	"math"
)

// scale255 maps a normalized channel onto [0,255], rounding to nearest.
func scale255(v float32) uint32 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	}
	return uint32(math.Floor(float64(v) * 255.5))
}

// narrow truncates an 8-bit channel to bits, adding bias first and clamping to 255.
func narrow(v uint32, bits uint, bias uint32) uint32 {
	v += bias
	if v > 255 {
		v = 255
	}
	return v >> (8 - bits)
}

// ConvertColor maps normalized r, g, b in [0,1] to a packed pixel value in format f.
func ConvertColor(f Format, r, g, b float32) (uint32, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	r8, g8, b8 := scale255(r), scale255(g), scale255(b)
	if f&LSBOrderRGB != 0 {
		r8, b8 = b8, r8
	}

	if f&Depth16 == 0 {
		return r8<<16 | g8<<8 | b8, nil
	}
	return narrow(r8, 5, 4)<<11 | narrow(g8, 6, 2)<<5 | narrow(b8, 5, 4), nil
}
