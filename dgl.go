// Package dgl is a small graphics layer over memory mapped pixel buffers.
//
// A [Context] binds a read and a draw [Framebuffer], each with its own vertical offset,
// and issues the drawing operations: PutPixel, Fill, CopyArea and PutImage. Display
// surfaces ([Surface]) carry the optional hardware operations of the device they are
// mapped from, and the [Swapper] builds page flip and double buffering on top of them.
package dgl
