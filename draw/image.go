package draw

import (
	"image"

	"github.com/BeatGlow/dgl/pixel"
)

// NewImageFrom returns a new w x h image buffer of format f holding src scaled to fit.
// A nil scaler selects ApproxBiLinear.
func NewImageFrom(f pixel.Format, src image.Image, w, h int, s Scaler) (*pixel.Buffer, error) {
	img, err := pixel.NewImage(f, w, h)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = ApproxBiLinear
	}
	s.Scale(img, img.Bounds(), src, src.Bounds(), Src, nil)
	return img, nil
}
