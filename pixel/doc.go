// Package pixel implements the pixel formats and pixel buffers used by the dgl graphics library.
//
// A [Buffer] is a rectangular array of pixels with a stride, either owning or borrowing its
// backing storage. Buffers are compatible with Go's native [image.Image] / [draw.Image]
// interfaces through the color models in this package.
package pixel
