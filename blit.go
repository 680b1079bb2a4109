package dgl

import (
	"errors"

	"github.com/BeatGlow/dgl/pixel"
)

// ErrIncompatibleFormat is reported when copying between framebuffers of different pixel widths.
var ErrIncompatibleFormat = errors.New("dgl: read and draw framebuffers differ in format")

// PutPixel writes one pixel at (x, y) in the draw framebuffer. There is no bounds checking.
func (ctx *Context) PutPixel(x, y int, v uint32) {
	ctx.draw.PixelBuffer().SetPixelAt(x, y+ctx.drawYOffset, v)
}

// CopyArea copies the w x h rectangle at (sx, sy) in the read framebuffer to (dx, dy) in the
// draw framebuffer. Copies within one framebuffer may overlap arbitrarily.
func (ctx *Context) CopyArea(sx, sy, dx, dy, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if ctx.read == nil || ctx.draw == nil {
		ctx.log.Warning("copy area without read or draw framebuffer")
		return
	}
	sy += ctx.readYOffset
	dy += ctx.drawYOffset

	src, dst := ctx.read.PixelBuffer(), ctx.draw.PixelBuffer()
	if src == dst {
		// Hardware is trusted with overlapping regions.
		if s, ok := AsSurface(ctx.draw); ok && s.copyArea(sx, sy, dx, dy, w, h) {
			return
		}
	}
	ctx.blit(src, dst, sx, sy, dx, dy, w, h)
}

// PutImage copies all of img to (x, y) in the draw framebuffer.
func (ctx *Context) PutImage(x, y int, img *pixel.Buffer) {
	ctx.PutPartialImage(0, 0, x, y, img.Width, img.Height, img)
}

// PutPartialImage copies the w x h rectangle at (sx, sy) in img to (dx, dy) in the draw framebuffer.
func (ctx *Context) PutPartialImage(sx, sy, dx, dy, w, h int, img *pixel.Buffer) {
	if w <= 0 || h <= 0 {
		return
	}
	if ctx.draw == nil {
		ctx.log.Warning("put image without draw framebuffer")
		return
	}
	ctx.blit(img, ctx.draw.PixelBuffer(), sx, sy, dx, dy+ctx.drawYOffset, w, h)
}

// blit copies in software or through the backend; y offsets have been applied.
func (ctx *Context) blit(src, dst *pixel.Buffer, sx, sy, dx, dy, w, h int) {
	if src.BytesPerPixel() != dst.BytesPerPixel() {
		ctx.log.Warning(ErrIncompatibleFormat.Error(), "read", src.Format, "draw", dst.Format)
		return
	}

	if ctx.backend != nil {
		if err := ctx.backend.Blit(src, dst, sx, sy, dx, dy, w, h); err != nil {
			ctx.log.Warning("backend blit failed", "error", err)
		}
		return
	}

	if src != dst {
		copyAreaAcross(src, dst, sx, sy, dx, dy, w, h)
		return
	}

	// Check whether either a top-to-bottom or bottom-to-top blit is sufficient.
	simple := dy < sy || dy >= sy+h || dx < sx || dx >= sx+w
	if simple {
		copyAreaSimple(dst, sx, sy, dx, dy, w, h)
		return
	}
	if ctx.log.Enabled(LevelVerboseLog) {
		ctx.log.Verbose("copy area through scratch row", "sx", sx, "sy", sy, "dx", dx, "dy", dy, "w", w, "h", h)
	}
	ctx.copyAreaDifficult(dst, sx, sy, dx, dy, w, h)
}

// copyAreaSimple copies within one buffer where whole rows can be copied in a safe vertical order.
func copyAreaSimple(p *pixel.Buffer, sx, sy, dx, dy, w, h int) {
	var (
		n      = w * p.BytesPerPixel()
		stride = p.Stride
		s      = p.PixOffset(sx, sy)
		d      = p.PixOffset(dx, dy)
	)
	if n == p.Stride && (dy < sy || dy >= sy+h) {
		// Contiguous area.
		copy(p.Pix[d:d+h*stride], p.Pix[s:s+h*stride])
		return
	}
	if dy > sy {
		// Blit from bottom to top.
		s += (h - 1) * stride
		d += (h - 1) * stride
		stride = -stride
	}
	for ; h > 0; h-- {
		copy(p.Pix[d:d+n], p.Pix[s:s+n])
		s += stride
		d += stride
	}
}

// copyAreaDifficult copies within one buffer where source and destination overlap in both rows
// and columns, moving each row through a scratch row.
func (ctx *Context) copyAreaDifficult(p *pixel.Buffer, sx, sy, dx, dy, w, h int) {
	var (
		n      = w * p.BytesPerPixel()
		stride = p.Stride
		s      = p.PixOffset(sx, sy)
		d      = p.PixOffset(dx, dy)
	)
	if cap(ctx.scratch) < n {
		ctx.scratch = make([]byte, n)
	}
	scratch := ctx.scratch[:n]

	if dy > sy {
		// Blit from bottom to top.
		s += (h - 1) * stride
		d += (h - 1) * stride
		stride = -stride
	}
	for ; h > 0; h-- {
		copy(scratch, p.Pix[s:s+n])
		copy(p.Pix[d:d+n], scratch)
		s += stride
		d += stride
	}
}

// copyAreaAcross copies between two buffers with the same pixel width.
func copyAreaAcross(src, dst *pixel.Buffer, sx, sy, dx, dy, w, h int) {
	var (
		n = w * dst.BytesPerPixel()
		s = src.PixOffset(sx, sy)
		d = dst.PixOffset(dx, dy)
	)
	if n == src.Stride && src.Stride == dst.Stride {
		// Contiguous area.
		copy(dst.Pix[d:d+h*n], src.Pix[s:s+h*n])
		return
	}
	for ; h > 0; h-- {
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
		s += src.Stride
		d += dst.Stride
	}
}
