// Package framebuffer provides access to the Linux framebuffer device (fbdev) as a
// [dgl.Surface].
//
// [Open] maps the device memory, probes the optional accelerated operations (area copy,
// vertical sync and display panning) and switches the console to graphics mode. The
// console is switched back to text mode on [Device.Close], and also when the process
// is terminated by a signal while the device is open.
package framebuffer

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/dgl"
	"github.com/BeatGlow/dgl/internal/ioctl"
	"github.com/BeatGlow/dgl/pixel"
)

// Errors.
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrMap          = errors.New("framebuffer: memory map failed")
	ErrGeometry     = errors.New("framebuffer: invalid screen geometry")
)

// Config for the framebuffer device.
type Config struct {
	// Device is the framebuffer device node.
	Device string

	// Console is the console device used to switch between text and graphics mode.
	Console string

	// NoConsole leaves the console mode alone, for framebuffers not bound to a console.
	NoConsole bool

	// Backlight pin (optional), driven high while the device is open.
	Backlight gpio.PinOut

	// Log receives diagnostics; nil discards them.
	Log *dgl.Logger
}

// DefaultConfig is used when no configuration is passed to [Open].
var DefaultConfig = Config{
	Device:  "/dev/fb0",
	Console: "/dev/tty0",
}

// device is an open device node.
type device interface {
	do(cmd ioctl.Command, arg unsafe.Pointer) error
	call(cmd ioctl.Command, arg uintptr) error
	Close() error
}

// memoryDevice is a device node that can be mapped.
type memoryDevice interface {
	device
	mmap(length int) ([]byte, error)
	munmap(b []byte) error
}

// system is the operating system side of opening a framebuffer.
type system struct {
	openDevice  func(name string) (memoryDevice, error)
	openConsole func(name string) (device, error)

	// notify calls restore when the process receives a termination signal, until stop is called.
	notify func(restore func()) (stop func())

	sleep func(time.Duration)
}

// Device is an open framebuffer device.
type Device struct {
	*dgl.Surface

	dev       memoryDevice
	mem       []byte
	console   *consoleMode
	backlight gpio.PinOut
	log       *dgl.Logger
	closeOnce sync.Once
	closeErr  error
}

func open(config *Config, sys system) (*Device, error) {
	if config == nil {
		config = &DefaultConfig
	}
	log := config.Log
	if log == nil {
		log = dgl.Discard()
	}

	fb, err := openDevice(config, sys, log)
	if err != nil {
		log.Warning("cannot create console framebuffer", "device", config.Device, "error", err)
		return nil, err
	}
	log.Info("successfully created console framebuffer", "device", config.Device)
	log.Log(fb.String())
	return fb, nil
}

func openDevice(config *Config, sys system, log *dgl.Logger) (*Device, error) {
	dev, err := sys.openDevice(config.Device)
	if err != nil {
		return nil, err
	}

	var caps dgl.Capability
	if probeCopyArea(dev) {
		caps |= dgl.CapCopyArea
	}

	var (
		vinfo varScreenInfo
		finfo fixScreenInfo
	)
	if err = dev.do(fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err == nil {
		err = dev.do(fbioGetFScreenInfo, unsafe.Pointer(&finfo))
	}
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("framebuffer: could not get screen info: %w", err)
	}

	var crtc uint32
	if dev.do(fbioWaitForVSync, unsafe.Pointer(&crtc)) == nil {
		caps |= dgl.CapWaitVSync
	}

	format, err := pixel.Classify(vinfo.layout())
	if err != nil {
		_ = dev.Close()
		return nil, err
	}

	var (
		width  = int(vinfo.Xres)
		height = int(vinfo.Yres)
		stride = int(finfo.LineLength)
		size   = int(finfo.SmemLen)
	)
	if width <= 0 || height <= 0 || stride < width*format.BytesPerPixel() || size < stride*height {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: %dx%d, stride %d, memory size %d", ErrGeometry, width, height, stride, size)
	}

	mem, err := dev.mmap(size)
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("%w: %w", ErrMap, err)
	}

	fb := &Device{
		dev:       dev,
		mem:       mem,
		backlight: config.Backlight,
		log:       log,
	}

	graphics := true
	if !config.NoConsole {
		fb.console = &consoleMode{name: config.Console, sys: sys, log: log}
		if graphics = fb.console.acquire(); !graphics {
			log.Warning("could not set graphics mode, superuser privileges required?", "console", config.Console)
		}
	}

	buf, err := pixel.NewScreen(format, width, height, stride, mem)
	if err != nil {
		_ = fb.Close()
		return nil, err
	}
	virtualHeight := size / stride
	if graphics && virtualHeight > height {
		// Panning is assumed available when the memory holds more than one screen.
		caps |= dgl.CapPanDisplay
	}

	fb.Surface = dgl.NewSurface(*buf, dgl.SurfaceConfig{
		VirtualWidth:  width,
		VirtualHeight: virtualHeight,
		Capabilities:  caps,
		Accelerator: &accelerator{
			dev:           dev,
			width:         width,
			height:        height,
			virtualWidth:  width,
			virtualHeight: virtualHeight,
		},
		Log: log,
	})

	if fb.backlight != nil {
		if err = fb.backlight.Out(gpio.High); err != nil {
			log.Warning("could not switch on backlight", "pin", fb.backlight, "error", err)
		}
	}
	return fb, nil
}

// probeCopyArea checks that the driver rejects an unassigned ioctl and then accepts a 1x1 self copy.
func probeCopyArea(dev device) bool {
	var area copyArea
	if dev.do(fbioUnsupported, unsafe.Pointer(&area)) == nil {
		return false
	}
	area = copyArea{Width: 1, Height: 1}
	return dev.do(fbioCopyArea, unsafe.Pointer(&area)) == nil
}

// Close restores the console text mode, switches off the backlight and unmaps the device memory.
// The surface must not be used after Close.
func (fb *Device) Close() error {
	fb.closeOnce.Do(func() {
		var errs []error
		if fb.console != nil {
			if err := fb.console.release(); err != nil {
				fb.log.Warning("error setting text mode", "console", fb.console.name, "error", err)
				errs = append(errs, err)
			}
		}
		if fb.backlight != nil {
			errs = append(errs, fb.backlight.Out(gpio.Low))
		}
		if fb.Surface != nil {
			fb.Surface.Release()
		}
		errs = append(errs, fb.dev.munmap(fb.mem), fb.dev.Close())
		fb.mem = nil
		fb.closeErr = errors.Join(errs...)
	})
	return fb.closeErr
}
