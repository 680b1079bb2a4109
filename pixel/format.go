package pixel

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrUnsupportedFormat = errors.New("pixel: unsupported pixel format")
	ErrUnsupportedLayout = errors.New("pixel: unsupported channel layout")
)

// Format is a bit set describing the channel order, alpha presence and depth class of a pixel.
type Format uint32

// Format bits.
const (
	// LSBOrderRGB is set when the red channel occupies the least significant bits,
	// clear when blue does.
	LSBOrderRGB Format = 1 << iota

	// Alpha is set when the 32-bit class carries an 8-bit alpha channel.
	Alpha

	// Depth16 selects the 16-bit packed class, clear for the 32-bit class.
	Depth16

	formatMask = LSBOrderRGB | Alpha | Depth16
)

// Supported formats.
const (
	XRGB8888 = Format(0)
	XBGR8888 = LSBOrderRGB
	ARGB8888 = Alpha
	ABGR8888 = LSBOrderRGB | Alpha
	RGB565   = Depth16
	BGR565   = LSBOrderRGB | Depth16
)

// BytesPerPixel returns 2 for the 16-bit class and 4 otherwise.
func (f Format) BytesPerPixel() int {
	if f&Depth16 != 0 {
		return 2
	}
	return 4
}

// Valid reports if f only uses known bits and carries no alpha in the 16-bit class.
func (f Format) Valid() bool {
	return f&^formatMask == 0 && f&(Alpha|Depth16) != Alpha|Depth16
}

func (f Format) String() string {
	switch f {
	case XRGB8888:
		return "XRGB8888"
	case XBGR8888:
		return "XBGR8888"
	case ARGB8888:
		return "ARGB8888"
	case ABGR8888:
		return "ABGR8888"
	case RGB565:
		return "RGB565"
	case BGR565:
		return "BGR565"
	default:
		return fmt.Sprintf("Format(%#04x)", uint32(f))
	}
}

// BitField describes the position of one channel inside a pixel value, as reported by a display device.
type BitField struct {
	Offset uint32 // Beginning of bitfield
	Length uint32 // Length of bitfield
}

// Layout is the raw channel description of a display device.
type Layout struct {
	BitsPerPixel            uint32
	Red, Green, Blue, Alpha BitField
}

func (l Layout) is(red, green, blue BitField) bool {
	return l.Red == red && l.Green == green && l.Blue == blue
}

// Classify maps a raw channel layout onto one of the supported formats.
func Classify(l Layout) (Format, error) {
	switch l.BitsPerPixel {
	case 32:
		var f Format
		switch {
		case l.is(BitField{16, 8}, BitField{8, 8}, BitField{0, 8}):
		case l.is(BitField{0, 8}, BitField{8, 8}, BitField{16, 8}):
			f |= LSBOrderRGB
		default:
			return 0, fmt.Errorf("%w: 32 bpp %+v", ErrUnsupportedLayout, l)
		}
		switch l.Alpha.Length {
		case 0:
		case 8:
			f |= Alpha
		default:
			return 0, fmt.Errorf("%w: %d bit alpha channel", ErrUnsupportedLayout, l.Alpha.Length)
		}
		return f, nil

	case 16:
		if l.Alpha.Length != 0 {
			return 0, fmt.Errorf("%w: %d bit alpha channel at 16 bpp", ErrUnsupportedLayout, l.Alpha.Length)
		}
		switch {
		case l.is(BitField{11, 5}, BitField{5, 6}, BitField{0, 5}):
			return RGB565, nil
		case l.is(BitField{0, 5}, BitField{5, 6}, BitField{11, 5}):
			return BGR565, nil
		}
		return 0, fmt.Errorf("%w: 16 bpp %+v", ErrUnsupportedLayout, l)
	}

	return 0, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedLayout, l.BitsPerPixel)
}
