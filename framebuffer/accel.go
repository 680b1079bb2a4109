package framebuffer

import (
	"unsafe"

	"github.com/BeatGlow/dgl"
)

// accelerator issues the fbdev control operations of a surface.
type accelerator struct {
	dev           device
	width, height int

	virtualWidth, virtualHeight int
}

var _ dgl.Accelerator = (*accelerator)(nil)

// PanDisplay moves the visible window, clamped to stay within the virtual screen.
func (a *accelerator) PanDisplay(x, y int) error {
	var info varScreenInfo
	if err := a.dev.do(fbioGetVScreenInfo, unsafe.Pointer(&info)); err != nil {
		return err
	}
	x = max(0, min(x, a.virtualWidth-a.width))
	y = max(0, min(y, a.virtualHeight-a.height))
	info.Xoffset = uint32(x)
	info.Yoffset = uint32(y)
	return a.dev.do(fbioPutVScreenInfo, unsafe.Pointer(&info))
}

// WaitVSync blocks until the next vertical blank of the first CRTC.
func (a *accelerator) WaitVSync() error {
	var crtc uint32
	return a.dev.do(fbioWaitForVSync, unsafe.Pointer(&crtc))
}

// CopyArea runs the accelerated copy of the driver.
func (a *accelerator) CopyArea(sx, sy, dx, dy, w, h int) error {
	area := copyArea{
		Sx:     uint32(sx),
		Sy:     uint32(sy),
		Dx:     uint32(dx),
		Dy:     uint32(dy),
		Width:  uint32(w),
		Height: uint32(h),
	}
	return a.dev.do(fbioCopyArea, unsafe.Pointer(&area))
}
