package dgl

import "github.com/BeatGlow/dgl/pixel"

// Context binds a read framebuffer and a draw framebuffer, each with a vertical offset.
// It does not own the framebuffers: they may be rebound at any time, and must be rebound
// before a buffer they reference is released.
type Context struct {
	read, draw  Framebuffer
	readYOffset int
	drawYOffset int
	backend     Backend
	scratch     []byte
	log         *Logger
}

// NewContext returns a context bound to read and draw, either of which may be nil.
func NewContext(read, draw Framebuffer, log *Logger) *Context {
	return &Context{
		read: read,
		draw: draw,
		log:  log.orDiscard(),
	}
}

// ReadFramebuffer returns the framebuffer CopyArea reads from.
func (ctx *Context) ReadFramebuffer() Framebuffer {
	return ctx.read
}

// DrawFramebuffer returns the framebuffer drawing operations write to.
func (ctx *Context) DrawFramebuffer() Framebuffer {
	return ctx.draw
}

// SetReadFramebuffer rebinds the read framebuffer.
func (ctx *Context) SetReadFramebuffer(fb Framebuffer) {
	ctx.read = fb
}

// SetDrawFramebuffer rebinds the draw framebuffer.
func (ctx *Context) SetDrawFramebuffer(fb Framebuffer) {
	ctx.draw = fb
}

// ReadYOffset is added to all source y coordinates.
func (ctx *Context) ReadYOffset() int {
	return ctx.readYOffset
}

// DrawYOffset is added to all destination y coordinates.
func (ctx *Context) DrawYOffset() int {
	return ctx.drawYOffset
}

// SetReadYOffset sets the source y offset. It is not validated against the virtual surface.
func (ctx *Context) SetReadYOffset(y int) {
	ctx.readYOffset = y
}

// SetDrawYOffset sets the destination y offset. It is not validated against the virtual surface.
func (ctx *Context) SetDrawYOffset(y int) {
	ctx.drawYOffset = y
}

// SetReadPage addresses page n of the read framebuffer.
func (ctx *Context) SetReadPage(n int) {
	if ctx.read == nil {
		ctx.log.Warning("set read page without read framebuffer", "page", n)
		return
	}
	ctx.readYOffset = n * ctx.read.PixelBuffer().Height
}

// SetDrawPage addresses page n of the draw framebuffer.
func (ctx *Context) SetDrawPage(n int) {
	if ctx.draw == nil {
		ctx.log.Warning("set draw page without draw framebuffer", "page", n)
		return
	}
	ctx.drawYOffset = n * ctx.draw.PixelBuffer().Height
}

// SetBackend selects an alternate compositing backend for area copies and fills, nil selects
// the built-in software paths.
func (ctx *Context) SetBackend(b Backend) {
	ctx.backend = b
}

// Logger used by the context.
func (ctx *Context) Logger() *Logger {
	return ctx.log
}

// ConvertColor maps normalized r, g, b to a pixel value in the draw framebuffer format.
// Conversion failures are reported and yield 0.
func (ctx *Context) ConvertColor(r, g, b float32) uint32 {
	if ctx.draw == nil {
		ctx.log.Warning("convert color without draw framebuffer")
		return 0
	}
	f := ctx.draw.PixelBuffer().Format
	v, err := pixel.ConvertColor(f, r, g, b)
	if err != nil {
		ctx.log.Warning("convert color failed", "format", f, "error", err)
		return 0
	}
	return v
}
