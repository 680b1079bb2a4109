package dgl

import (
	"encoding/binary"
	"unsafe"
)

// Fill writes v to every pixel of the w x h rectangle at (x, y) in the draw framebuffer.
func (ctx *Context) Fill(x, y, w, h int, v uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	if ctx.draw == nil {
		ctx.log.Warning("fill without draw framebuffer")
		return
	}
	y += ctx.drawYOffset

	p := ctx.draw.PixelBuffer()
	if ctx.backend != nil {
		if err := ctx.backend.Fill(p, x, y, w, h, v); err != nil {
			ctx.log.Warning("backend fill failed", "error", err)
		}
		return
	}

	var (
		n = w * p.BytesPerPixel()
		d = p.PixOffset(x, y)
	)
	if p.BytesPerPixel() == 4 {
		for ; h > 0; h-- {
			fill32(p.Pix[d:d+n], v)
			d += p.Stride
		}
	} else {
		for ; h > 0; h-- {
			fill16(p.Pix[d:d+n], v)
			d += p.Stride
		}
	}
}

// fill32 stores v in every 4-byte word of b, four words per iteration.
func fill32(b []byte, v uint32) {
	for len(b) >= 16 {
		binary.LittleEndian.PutUint32(b[0:], v)
		binary.LittleEndian.PutUint32(b[4:], v)
		binary.LittleEndian.PutUint32(b[8:], v)
		binary.LittleEndian.PutUint32(b[12:], v)
		b = b[16:]
	}
	for len(b) >= 4 {
		binary.LittleEndian.PutUint32(b, v)
		b = b[4:]
	}
}

// fill16 stores v in every 2-byte word of b, two pixels per aligned 4-byte store.
func fill16(b []byte, v uint32) {
	if len(b) >= 2 && uintptr(unsafe.Pointer(&b[0]))&2 != 0 {
		binary.LittleEndian.PutUint16(b, uint16(v))
		b = b[2:]
	}
	v &= 0xffff
	v32 := v | v<<16
	for len(b) >= 4 {
		binary.LittleEndian.PutUint32(b, v32)
		b = b[4:]
	}
	if len(b) >= 2 {
		binary.LittleEndian.PutUint16(b, uint16(v))
	}
}
