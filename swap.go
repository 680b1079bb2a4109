package dgl

import (
	"errors"
	"fmt"
	"image"

	"github.com/BeatGlow/dgl/pixel"
)

// Buffering selects how a [Swapper] presents frames.
type Buffering int

// Buffering strategies.
const (
	// PageFlip draws into a hidden page and pans the display to it.
	PageFlip Buffering = iota

	// DMACopy draws into page 1 and copies the frame to page 0 with CopyArea, which uses the
	// accelerated copy when the surface advertises it.
	DMACopy

	// MemoryCopy draws into an off-screen pixmap and copies the frame to the visible page.
	MemoryCopy
)

func (b Buffering) String() string {
	switch b {
	case PageFlip:
		return "page flip"
	case DMACopy:
		return "dma copy"
	case MemoryCopy:
		return "memory copy"
	default:
		return fmt.Sprintf("Buffering(%d)", int(b))
	}
}

// ErrNoPageFlip is returned when a buffering strategy needs more pages than the surface has.
var ErrNoPageFlip = errors.New("dgl: not enough pages for buffering")

// SwapConfig configures a [Swapper].
type SwapConfig struct {
	Buffering Buffering

	// MaxPages limits the pages cycled by PageFlip. Zero uses every page.
	MaxPages int

	// VSync waits for the vertical blank before presenting a frame.
	VSync bool

	// Window is the presented area of the visible page. The empty rectangle selects the whole screen.
	Window image.Rectangle
}

// Swapper implements double buffering on a screen surface through a [Context].
type Swapper struct {
	ctx    *Context
	screen *Surface
	config SwapConfig
	window image.Rectangle
	pages  int
	page   int
	pixmap *pixel.Buffer
}

// NewSwapper binds ctx to the first back buffer of screen. Read and draw framebuffers of the
// context both address the back buffer between swaps.
func NewSwapper(ctx *Context, screen *Surface, config SwapConfig) (*Swapper, error) {
	s := &Swapper{
		ctx:    ctx,
		screen: screen,
		config: config,
		window: config.Window.Intersect(screen.Bounds()),
	}
	if config.Window.Empty() {
		s.window = screen.Bounds()
	}
	if s.window.Empty() {
		return nil, fmt.Errorf("dgl: swap window %v outside screen %v", config.Window, screen.Bounds())
	}

	ctx.SetReadFramebuffer(screen)
	ctx.SetDrawFramebuffer(screen)
	ctx.SetReadYOffset(0)
	ctx.SetDrawYOffset(0)

	switch config.Buffering {
	case PageFlip:
		s.pages = screen.Pages()
		if config.MaxPages > 0 && config.MaxPages < s.pages {
			s.pages = config.MaxPages
		}
		if s.pages < 2 || !screen.Has(CapPanDisplay) {
			return nil, fmt.Errorf("%w: page flip on %d pages, %s", ErrNoPageFlip, s.pages, screen.Capabilities())
		}
		for i := 0; i < s.pages; i++ {
			ctx.SetDrawPage(i)
			ctx.Fill(0, 0, screen.Width, screen.Height, 0)
		}
		screen.SetDisplayPage(0)
		s.page = 1
		ctx.SetReadPage(s.page)
		ctx.SetDrawPage(s.page)

	case DMACopy:
		if screen.Pages() < 2 {
			return nil, fmt.Errorf("%w: dma copy on %d pages", ErrNoPageFlip, screen.Pages())
		}
		ctx.SetReadPage(1)
		ctx.SetDrawPage(1)

	case MemoryCopy:
		pixmap, err := pixel.NewPixmap(screen.Format, s.window.Dx(), s.window.Dy())
		if err != nil {
			return nil, err
		}
		s.pixmap = pixmap
		ctx.SetReadFramebuffer(pixmap)
		ctx.SetDrawFramebuffer(pixmap)

	default:
		return nil, fmt.Errorf("dgl: unknown buffering %s", config.Buffering)
	}

	screen.Logger().Log("swapper ready", "buffering", config.Buffering, "pages", s.pages, "window", s.window)
	return s, nil
}

// Origin is where the top-left corner of the presented window lies in draw coordinates.
func (s *Swapper) Origin() image.Point {
	if s.pixmap != nil {
		return image.Point{}
	}
	return s.window.Min
}

// Window is the drawable frame area in draw coordinates.
func (s *Swapper) Window() image.Rectangle {
	return s.window.Sub(s.window.Min).Add(s.Origin())
}

// Swap presents the current frame and rebinds the context to the next back buffer.
func (s *Swapper) Swap() {
	var (
		ctx = s.ctx
		w   = s.window
	)
	switch s.config.Buffering {
	case PageFlip:
		if s.config.VSync {
			s.screen.WaitVSync()
		}
		s.screen.SetDisplayPage(s.page)
		s.page = (s.page + 1) % s.pages
		ctx.SetReadPage(s.page)
		ctx.SetDrawPage(s.page)

	case DMACopy:
		ctx.SetReadPage(1)
		ctx.SetDrawPage(0)
		if s.config.VSync {
			s.screen.WaitVSync()
		}
		ctx.CopyArea(w.Min.X, w.Min.Y, w.Min.X, w.Min.Y, w.Dx(), w.Dy())
		ctx.SetDrawPage(1)

	case MemoryCopy:
		ctx.SetDrawFramebuffer(s.screen)
		ctx.SetDrawYOffset(0)
		if s.config.VSync {
			s.screen.WaitVSync()
		}
		ctx.CopyArea(0, 0, w.Min.X, w.Min.Y, w.Dx(), w.Dy())
		ctx.SetDrawFramebuffer(s.pixmap)
	}
}

// Close shows page 0 again, rebinds the context to the screen and releases the pixmap.
func (s *Swapper) Close() {
	s.ctx.SetReadFramebuffer(s.screen)
	s.ctx.SetDrawFramebuffer(s.screen)
	s.ctx.SetReadYOffset(0)
	s.ctx.SetDrawYOffset(0)
	if s.config.Buffering == PageFlip {
		s.screen.SetDisplayPage(0)
	}
	if s.pixmap != nil {
		s.pixmap.Release()
		s.pixmap = nil
	}
}
