package dgl

import (
	"fmt"

	"github.com/BeatGlow/dgl/pixel"
)

// Capability flags of a display surface.
type Capability uint32

// Capabilities.
const (
	CapCopyArea Capability = 1 << iota
	CapPanDisplay
	CapWaitVSync
)

func (c Capability) String() string {
	return fmt.Sprintf("PanDisplay %s, WaitVSync %s, CopyArea %s",
		enabled(c&CapPanDisplay != 0),
		enabled(c&CapWaitVSync != 0),
		enabled(c&CapCopyArea != 0))
}

func enabled(v bool) string {
	if v {
		return "enabled"
	}
	return "disabled"
}

// Accelerator is the hardware side of a display surface.
type Accelerator interface {
	// PanDisplay moves the visible window origin to (x, y) in the virtual surface.
	PanDisplay(x, y int) error

	// WaitVSync blocks until the next vertical blank.
	WaitVSync() error

	// CopyArea copies a rectangle within the surface; overlapping regions must be handled.
	CopyArea(sx, sy, dx, dy, w, h int) error
}

// Framebuffer is anything drawing operations can target: pixmaps, images and display surfaces.
type Framebuffer interface {
	PixelBuffer() *pixel.Buffer
}

// SurfaceConfig describes a display surface to [NewSurface].
type SurfaceConfig struct {
	// VirtualWidth and VirtualHeight of the addressable surface, defaulting to the visible size.
	VirtualWidth, VirtualHeight int

	// Capabilities probed on the device.
	Capabilities Capability

	// Accelerator implementing the probed capabilities, may be nil if there are none.
	Accelerator Accelerator

	// Log receives diagnostics, nil discards them.
	Log *Logger
}

// dispatch holds the accelerated operations, each bound once to the accelerator or to a no-op.
type dispatch struct {
	pan      func(x, y int) error
	vsync    func() error
	copyArea func(sx, sy, dx, dy, w, h int) error
}

func noPan(int, int) error                          { return nil }
func noVSync() error                                { return nil }
func noCopyArea(int, int, int, int, int, int) error { return nil }

// Surface is a pixel buffer bound to a physical or virtual display.
type Surface struct {
	pixel.Buffer

	// VirtualWidth and VirtualHeight of the addressable surface.
	VirtualWidth, VirtualHeight int

	caps  Capability
	bound Capability
	ops   dispatch
	log   *Logger
}

// NewSurface binds buf to a display. Operations of capabilities missing from config are bound to no-ops.
func NewSurface(buf pixel.Buffer, config SurfaceConfig) *Surface {
	s := &Surface{
		Buffer:        buf,
		VirtualWidth:  config.VirtualWidth,
		VirtualHeight: config.VirtualHeight,
		caps:          config.Capabilities,
		log:           config.Log.orDiscard(),
		ops: dispatch{
			pan:      noPan,
			vsync:    noVSync,
			copyArea: noCopyArea,
		},
	}
	if s.VirtualWidth <= 0 {
		s.VirtualWidth = buf.Width
	}
	if s.VirtualHeight <= 0 {
		s.VirtualHeight = buf.Height
	}

	if a := config.Accelerator; a != nil {
		s.bound = config.Capabilities
		if s.caps&CapPanDisplay != 0 {
			s.ops.pan = a.PanDisplay
		}
		if s.caps&CapWaitVSync != 0 {
			s.ops.vsync = a.WaitVSync
		}
		if s.caps&CapCopyArea != 0 {
			s.ops.copyArea = a.CopyArea
		}
	}
	s.caps = s.bound
	return s
}

func (s *Surface) surface() *Surface {
	return s
}

// AsSurface returns the display surface behind fb, if any.
func AsSurface(fb Framebuffer) (*Surface, bool) {
	if v, ok := fb.(interface{ surface() *Surface }); ok {
		return v.surface(), true
	}
	return nil, false
}

// Pages is the number of visible-height pages in the virtual surface.
func (s *Surface) Pages() int {
	if s.Height == 0 {
		return 0
	}
	return s.VirtualHeight / s.Height
}

// Capabilities returns the currently advertised capabilities.
func (s *Surface) Capabilities() Capability {
	return s.caps
}

// Has reports if all of c are advertised.
func (s *Surface) Has(c Capability) bool {
	return s.caps&c == c
}

// SetCapabilities replaces the advertised capabilities, typically to mask hardware operations
// temporarily. The dispatch bound at creation is unchanged: capabilities that were not
// available at creation stay disabled.
func (s *Surface) SetCapabilities(c Capability) {
	s.caps = c & s.bound
}

// Logger used by the surface.
func (s *Surface) Logger() *Logger {
	return s.log
}

// PanDisplay moves the visible window origin to (x, y).
func (s *Surface) PanDisplay(x, y int) {
	if s.caps&CapPanDisplay == 0 {
		return
	}
	if err := s.ops.pan(x, y); err != nil {
		s.log.Warning("pan display failed", "x", x, "y", y, "error", err)
	}
}

// SetDisplayPage shows page n.
func (s *Surface) SetDisplayPage(n int) {
	s.PanDisplay(0, n*s.Height)
}

// WaitVSync blocks until the next vertical blank, or returns immediately if unsupported.
func (s *Surface) WaitVSync() {
	if s.caps&CapWaitVSync == 0 {
		return
	}
	if err := s.ops.vsync(); err != nil {
		s.log.Warning("wait for vsync failed", "error", err)
	}
}

// copyArea runs the accelerated copy, reporting false if it is not advertised.
func (s *Surface) copyArea(sx, sy, dx, dy, w, h int) bool {
	if s.caps&CapCopyArea == 0 {
		return false
	}
	if err := s.ops.copyArea(sx, sy, dx, dy, w, h); err != nil {
		s.log.Warning("accelerated copy area failed", "sx", sx, "sy", sy, "dx", dx, "dy", dy, "w", w, "h", h, "error", err)
	}
	return true
}

func (s *Surface) String() string {
	return fmt.Sprintf("Resolution %dx%d, %d bytes per pixel, screen framebuffer size %d, "+
		"total framebuffer size %d, stride %d, virtual resolution %dx%d, %d pages, %s",
		s.Width, s.Height, s.BytesPerPixel(), s.Stride*s.Height,
		s.Size(), s.Stride, s.VirtualWidth, s.VirtualHeight, s.Pages(), s.caps)
}
