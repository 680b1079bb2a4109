package dgl

// ClipRectangle is a permitted drawing region [X1,X2) x [Y1,Y2).
type ClipRectangle struct {
	X1, Y1, X2, Y2 int
}

// ClipFramebuffer returns the clip rectangle covering the visible area of fb.
func ClipFramebuffer(fb Framebuffer) ClipRectangle {
	p := fb.PixelBuffer()
	return ClipRectangle{0, 0, p.Width, p.Height}
}

// Clip clamps (x, y) into the rectangle.
func (cr ClipRectangle) Clip(x, y int) (int, int) {
	if x < cr.X1 {
		x = cr.X1
	}
	if y < cr.Y1 {
		y = cr.Y1
	}
	if x >= cr.X2 {
		x = cr.X2 - 1
	}
	if y >= cr.Y2 {
		y = cr.Y2 - 1
	}
	return x, y
}
