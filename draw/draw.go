// Package draw connects pixel buffers to golang.org/x/image/draw: an alternate compositing
// backend for [dgl.Context] and helpers to bring decoded images into pixel buffers.
package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// Drawer is an alias for [draw.Drawer].
type Drawer = draw.Drawer

// Image is an alias for [draw.Image].
type Image = draw.Image

// Scaler is an alias for [draw.Scaler].
type Scaler = draw.Scaler

// Op is an alias for [draw.Op].
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over = draw.Over

	// Src specifies ``src in mask''.
	Src = draw.Src
)

// Scalers, from fastest to best quality.
var (
	NearestNeighbor = draw.NearestNeighbor
	ApproxBiLinear  = draw.ApproxBiLinear
	BiLinear        = draw.BiLinear
	CatmullRom      = draw.CatmullRom
)

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}
