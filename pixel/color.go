package pixel

import "image/color"

// Models for the supported pixel formats.
var (
	RGB565Model   color.Model = color.ModelFunc(rgb565Model)
	BGR565Model   color.Model = color.ModelFunc(bgr565Model)
	XRGB8888Model color.Model = color.ModelFunc(xrgb8888Model)
	XBGR8888Model color.Model = color.ModelFunc(xbgr8888Model)
	ARGB8888Model color.Model = color.ModelFunc(argb8888Model)
	ABGR8888Model color.Model = color.ModelFunc(abgr8888Model)
)

// Model returns the color model matching the format, or nil for an invalid format.
func (f Format) Model() color.Model {
	switch f {
	case RGB565:
		return RGB565Model
	case BGR565:
		return BGR565Model
	case XRGB8888:
		return XRGB8888Model
	case XBGR8888:
		return XBGR8888Model
	case ARGB8888:
		return ARGB8888Model
	case ABGR8888:
		return ABGR8888Model
	default:
		return nil
	}
}

// Color returns the color of a raw pixel value in format f.
func (f Format) Color(v uint32) color.Color {
	switch f {
	case RGB565:
		return CRGB565{uint16(v)}
	case BGR565:
		return CBGR565{uint16(v)}
	case XRGB8888:
		return CXRGB8888{v & 0xffffff}
	case XBGR8888:
		return CXBGR8888{v & 0xffffff}
	case ARGB8888:
		return CARGB8888{v}
	case ABGR8888:
		return CABGR8888{v}
	default:
		return color.Transparent
	}
}

// Value returns the raw pixel value of c in format f.
func (f Format) Value(c color.Color) uint32 {
	switch f {
	case RGB565:
		return uint32(rgb565Model(c).(CRGB565).V)
	case BGR565:
		return uint32(bgr565Model(c).(CBGR565).V)
	case XRGB8888:
		return xrgb8888Model(c).(CXRGB8888).V
	case XBGR8888:
		return xbgr8888Model(c).(CXBGR8888).V
	case ARGB8888:
		return argb8888Model(c).(CARGB8888).V
	case ABGR8888:
		return abgr8888Model(c).(CABGR8888).V
	default:
		return 0
	}
}

// expand565 widens 5-6-5 channels to 16 bits by duplicating the high bits in the low bits.
func expand565(hi, mid, lo uint16) (uint32, uint32, uint32) {
	// Build a 5- or 6-bit value at the top of the low byte of each component.
	a := hi << 3
	b := mid << 2
	c := lo << 3
	// Duplicate the high bits in the low bits.
	a |= a >> 5
	b |= b >> 6
	c |= c >> 5
	// Duplicate the whole value in the high byte.
	a |= a << 8
	b |= b << 8
	c |= c << 8
	return uint32(a), uint32(b), uint32(c)
}

// CRGB565 is a 16-bit 5-6-5 color with red in the most significant bits.
type CRGB565 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c CRGB565) RGBA() (r, g, b, a uint32) {
	r, g, b = expand565(c.V>>11, c.V>>5&0x3f, c.V&0x1f)
	return r, g, b, 0xffff
}

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(CRGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return CRGB565{uint16(r&0xF800 | (g&0xFC00)>>5 | (b&0xF800)>>11)}
}

// CBGR565 is a 16-bit 5-6-5 color with blue in the most significant bits.
type CBGR565 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c CBGR565) RGBA() (r, g, b, a uint32) {
	b, g, r = expand565(c.V>>11, c.V>>5&0x3f, c.V&0x1f)
	return r, g, b, 0xffff
}

func bgr565Model(c color.Color) color.Color {
	if _, ok := c.(CBGR565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return CBGR565{uint16(b&0xF800 | (g&0xFC00)>>5 | (r&0xF800)>>11)}
}

// CXRGB8888 is a 32-bit color with red in bits 16-23 and an unused top byte.
type CXRGB8888 struct {
	V uint32
}

func (c CXRGB8888) RGBA() (r, g, b, a uint32) {
	r = c.V >> 16 & 0xff
	g = c.V >> 8 & 0xff
	b = c.V & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func xrgb8888Model(c color.Color) color.Color {
	if _, ok := c.(CXRGB8888); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return CXRGB8888{(r>>8)<<16 | (g>>8)<<8 | b>>8}
}

// CXBGR8888 is a 32-bit color with blue in bits 16-23 and an unused top byte.
type CXBGR8888 struct {
	V uint32
}

func (c CXBGR8888) RGBA() (r, g, b, a uint32) {
	b = c.V >> 16 & 0xff
	g = c.V >> 8 & 0xff
	r = c.V & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func xbgr8888Model(c color.Color) color.Color {
	if _, ok := c.(CXBGR8888); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return CXBGR8888{(b>>8)<<16 | (g>>8)<<8 | r>>8}
}

// CARGB8888 is a 32-bit non-alpha-premultiplied color with alpha in the top byte and red in bits 16-23.
type CARGB8888 struct {
	V uint32
}

func (c CARGB8888) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(c.V >> 16),
		G: uint8(c.V >> 8),
		B: uint8(c.V),
		A: uint8(c.V >> 24),
	}.RGBA()
}

func argb8888Model(c color.Color) color.Color {
	if _, ok := c.(CARGB8888); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return CARGB8888{uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)}
}

// CABGR8888 is a 32-bit non-alpha-premultiplied color with alpha in the top byte and blue in bits 16-23.
type CABGR8888 struct {
	V uint32
}

func (c CABGR8888) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(c.V),
		G: uint8(c.V >> 8),
		B: uint8(c.V >> 16),
		A: uint8(c.V >> 24),
	}.RGBA()
}

func abgr8888Model(c color.Color) color.Color {
	if _, ok := c.(CABGR8888); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return CABGR8888{uint32(n.A)<<24 | uint32(n.B)<<16 | uint32(n.G)<<8 | uint32(n.R)}
}
