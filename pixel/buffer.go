package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrGeometry is returned for buffer dimensions that do not fit the backing storage.
var ErrGeometry = errors.New("pixel: invalid buffer geometry")

// Kind is the type of a pixel buffer.
type Kind uint8

// Buffer kinds.
const (
	KindPixmap Kind = iota
	KindImage
	KindScreen
)

func (k Kind) String() string {
	switch k {
	case KindPixmap:
		return "pixmap"
	case KindImage:
		return "image"
	case KindScreen:
		return "screen"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Buffer is a rectangular array of pixels with a stride. Pixel values are stored little-endian.
type Buffer struct {
	// Pix are the buffer pixels, starting at the top-left pixel.
	Pix []byte

	// Format of the pixels.
	Format Format

	// Width and Height of the visible area in pixels.
	Width, Height int

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Kind of buffer.
	Kind Kind

	owned bool
}

func makeBuffer(f Format, w, h, stride int, pix []byte, kind Kind, owned bool) (*Buffer, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if w < 0 || h < 0 || stride < w*f.BytesPerPixel() {
		return nil, fmt.Errorf("%w: %dx%d stride %d", ErrGeometry, w, h, stride)
	}
	if pix == nil {
		pix = make([]byte, stride*h)
		owned = true
	} else if len(pix) < stride*h {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d stride %d", ErrGeometry, len(pix), w, h, stride)
	}
	return &Buffer{
		Pix:    pix,
		Format: f,
		Width:  w,
		Height: h,
		Stride: stride,
		Kind:   kind,
		owned:  owned,
	}, nil
}

// NewPixmap allocates an off-screen pixmap that exclusively owns its storage.
func NewPixmap(f Format, w, h int) (*Buffer, error) {
	return makeBuffer(f, w, h, w*f.BytesPerPixel(), nil, KindPixmap, true)
}

// NewImage allocates an image that exclusively owns its storage.
func NewImage(f Format, w, h int) (*Buffer, error) {
	return makeBuffer(f, w, h, w*f.BytesPerPixel(), nil, KindImage, true)
}

// NewImageFromBuffer wraps caller supplied storage as an image. The storage is borrowed:
// the caller keeps managing its lifetime and Release does not free it.
func NewImageFromBuffer(f Format, w, h int, pix []byte) (*Buffer, error) {
	if pix == nil {
		return nil, fmt.Errorf("%w: no storage", ErrGeometry)
	}
	return makeBuffer(f, w, h, w*f.BytesPerPixel(), pix, KindImage, false)
}

// NewScreen wraps device memory as a screen buffer. The memory is owned by the device binding;
// all of pix is addressable, which may cover more rows than the visible height.
func NewScreen(f Format, w, h, stride int, pix []byte) (*Buffer, error) {
	if pix == nil {
		return nil, fmt.Errorf("%w: no storage", ErrGeometry)
	}
	return makeBuffer(f, w, h, stride, pix, KindScreen, false)
}

// PixelBuffer returns p itself.
func (p *Buffer) PixelBuffer() *Buffer {
	return p
}

// BytesPerPixel of the buffer format.
func (p *Buffer) BytesPerPixel() int {
	return p.Format.BytesPerPixel()
}

// Size is the total size of the backing storage in bytes.
func (p *Buffer) Size() int {
	return len(p.Pix)
}

// Rows is the number of addressable rows in the backing storage.
func (p *Buffer) Rows() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Owned reports if the buffer owns its backing storage.
func (p *Buffer) Owned() bool {
	return p.owned
}

// Released reports if Release has been called.
func (p *Buffer) Released() bool {
	return p.Pix == nil
}

// Release drops the backing storage. Owned storage is given up exactly once; borrowed storage
// is left to its owner. Any context still referencing the buffer must be rebound first.
func (p *Buffer) Release() {
	if p.Pix == nil {
		return
	}
	p.Pix, p.owned = nil, false
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (p *Buffer) PixOffset(x, y int) int {
	return y*p.Stride + x*p.Format.BytesPerPixel()
}

// PixelAt returns the raw pixel value at (x, y). There is no bounds checking beyond the storage size.
func (p *Buffer) PixelAt(x, y int) uint32 {
	i := p.PixOffset(x, y)
	if p.Format&Depth16 != 0 {
		return uint32(binary.LittleEndian.Uint16(p.Pix[i:]))
	}
	return binary.LittleEndian.Uint32(p.Pix[i:])
}

// SetPixelAt stores a raw pixel value at (x, y). There is no bounds checking beyond the storage size.
func (p *Buffer) SetPixelAt(x, y int, v uint32) {
	i := p.PixOffset(x, y)
	if p.Format&Depth16 != 0 {
		binary.LittleEndian.PutUint16(p.Pix[i:], uint16(v))
	} else {
		binary.LittleEndian.PutUint32(p.Pix[i:], v)
	}
}

// Bounds is the visible area.
func (p *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

func (p *Buffer) ColorModel() color.Model {
	return p.Format.Model()
}

func (p *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Bounds()) {
		return color.Transparent
	}
	return p.Format.Color(p.PixelAt(x, y))
}

func (p *Buffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Bounds()) {
		return
	}
	p.SetPixelAt(x, y, p.Format.Value(c))
}

// Clear the buffer.
func (p *Buffer) Clear() {
	clear(p.Pix)
}
