package framebuffer

import (
	"github.com/BeatGlow/dgl/internal/ioctl"
	"github.com/BeatGlow/dgl/pixel"
)

// From <linux/fb.h>, <linux/kd.h> and <linux/vt.h>.
const (
	fbioGetVScreenInfo ioctl.Command = 0x4600
	fbioPutVScreenInfo ioctl.Command = 0x4601
	fbioGetFScreenInfo ioctl.Command = 0x4602

	kdSetMode ioctl.Command = 0x4B3A
	kdGetMode ioctl.Command = 0x4B3B

	vtGetState   ioctl.Command = 0x5603
	vtActivate   ioctl.Command = 0x5606
	vtWaitActive ioctl.Command = 0x5607
)

// Console modes.
const (
	kdText     = 0x00
	kdGraphics = 0x01
)

var (
	fbioWaitForVSync = ioctl.Pointer(ioctl.Write, new(uint32), ioctl.Code('F', 0x20))

	// Non-standard ioctl giving access to the fb_copyarea accelerated function of the kernel.
	fbioCopyArea = ioctl.Pointer(ioctl.Write, new(copyArea), ioctl.Code('z', 0x21))

	// Unassigned ioctl, used to check if the driver returns errors on unsupported ioctls.
	fbioUnsupported = ioctl.Pointer(ioctl.Write, new(copyArea), ioctl.Code('z', 0x22))
)

// fixScreenInfo is struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Capability uint16    // FB_CAP_
	Reserved   [2]uint16 // Reserved for future compatibility
}

// bitField is struct fb_bitfield.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo is struct fb_var_screeninfo.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// layout of the pixel channels.
func (v *varScreenInfo) layout() pixel.Layout {
	field := func(f bitField) pixel.BitField {
		return pixel.BitField{Offset: f.Offset, Length: f.Length}
	}
	return pixel.Layout{
		BitsPerPixel: v.BitsPerPixel,
		Red:          field(v.Red),
		Green:        field(v.Green),
		Blue:         field(v.Blue),
		Alpha:        field(v.Alpha),
	}
}

// copyArea is struct fb_copyarea.
type copyArea struct {
	Dx, Dy        uint32
	Width, Height uint32
	Sx, Sy        uint32
}

// vtStat is struct vt_stat.
type vtStat struct {
	Active uint16
	Signal uint16
	State  uint16
}
