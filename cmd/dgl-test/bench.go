package main

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"time"

	"github.com/BeatGlow/dgl"
	"github.com/BeatGlow/dgl/draw"
	"github.com/BeatGlow/dgl/pixel"
)

const (
	// Number of pixel rows used during the CopyArea and Fill benchmarks.
	copyHeight = 256
	fillHeight = 256

	// Size of the image used during the PutImage benchmark.
	putImageWidth  = 256
	putImageHeight = 256

	// Fill pattern parameters.
	patternWidth  = 32
	patternHeight = 32
)

type tester struct {
	ctx *dgl.Context
	fb  *dgl.Surface
	rng *rand.Rand
}

type result struct {
	pixels  uint64
	elapsed time.Duration
}

func (r result) format(label string, bytesPerPixel int) string {
	throughput := float64(r.pixels) / r.elapsed.Seconds()
	return fmt.Sprintf("%s: %.5G Mpix/s (%.5G MB/s)", label,
		throughput/1e6, throughput*float64(bytesPerPixel)/(1<<20))
}

// intN returns a random number in [0,n), or 0 when n is not positive.
func (t *tester) intN(n int) int {
	if n <= 0 {
		return 0
	}
	return t.rng.IntN(n)
}

func (t *tester) randomColor() uint32 {
	return t.ctx.ConvertColor(t.rng.Float32(), t.rng.Float32(), t.rng.Float32())
}

// bench runs f until the benchmark duration has passed, f returns the number of pixels it drew.
func bench(f func() int) result {
	var (
		pixels uint64
		start  = time.Now()
	)
	for time.Since(start) < benchmarkDuration {
		pixels += uint64(f())
	}
	return result{pixels: pixels, elapsed: time.Since(start)}
}

func (t *tester) drawPattern() {
	w, h := t.fb.Width, t.fb.Height
	for i := 0; i < patternHeight; i++ {
		y := h * i / patternHeight
		ph := h*(i+1)/patternHeight - y
		for j := 0; j < patternWidth; j++ {
			x := w * j / patternWidth
			pw := w*(j+1)/patternWidth - x
			t.ctx.Fill(x, y, pw, ph, t.randomColor())
		}
	}
}

func (t *tester) fillTest() result {
	h := min(fillHeight, t.fb.Height)
	return bench(func() int {
		y := t.intN(t.fb.Height - h)
		t.ctx.Fill(0, y, t.fb.Width, h, t.randomColor())
		return t.fb.Width * h
	})
}

// copyTest copies from the bottom half of the screen to the top half.
func (t *tester) copyTest() result {
	var (
		half = t.fb.Height / 2
		h    = min(copyHeight, half)
	)
	return bench(func() int {
		y1 := half + t.intN(half-h)
		y2 := t.intN(half - h)
		t.ctx.CopyArea(0, y1, 0, y2, t.fb.Width, h)
		return t.fb.Width * h
	})
}

func (t *tester) putImageTest(picture image.Image) (result, error) {
	img, err := t.createImage(picture)
	if err != nil {
		return result{}, err
	}
	defer img.Release()

	return bench(func() int {
		x := t.intN(t.fb.Width - img.Width)
		y := t.intN(t.fb.Height - img.Height)
		t.ctx.PutImage(x, y, img)
		return img.Width * img.Height
	}), nil
}

// createImage scales picture into an image buffer, or draws a radial gradient without picture.
func (t *tester) createImage(picture image.Image) (*pixel.Buffer, error) {
	f := t.fb.Format
	if picture != nil {
		return draw.NewImageFrom(f, picture, putImageWidth, putImageHeight, draw.ApproxBiLinear)
	}

	img, err := pixel.NewImage(f, putImageWidth, putImageHeight)
	if err != nil {
		return nil, err
	}
	ctx := dgl.NewContext(nil, img, t.ctx.Logger())
	var (
		xCenter = float64(img.Width)/2 - 0.5
		yCenter = float64(img.Height)/2 - 0.5
		maxDist = math.Hypot(float64(img.Width)/2, float64(img.Height)/2)
	)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			dist := math.Hypot(float64(x)-xCenter, float64(y)-yCenter) / maxDist
			r := 1 - dist
			g := math.Mod(dist, 0.2) / 0.3
			b := 0.5 - dist*0.5
			ctx.PutPixel(x, y, ctx.ConvertColor(float32(r), float32(g), float32(b)))
		}
	}
	return img, nil
}

// pageFlipTest shows red, green and blue pages in turn.
func (t *tester) pageFlipTest(maxPages int) {
	pages := min(t.fb.Pages(), maxPages)
	for i := 0; i < pages; i++ {
		var r, g, b float32
		switch i {
		case 0:
			r = 1
		case 1:
			g = 1
		default:
			b = 1
		}
		t.ctx.SetDrawPage(i)
		t.ctx.Fill(0, 0, t.fb.Width, t.fb.Height, t.ctx.ConvertColor(r, g, b))
	}
	for i := 0; i < 10; i++ {
		t.fb.SetDisplayPage(i % pages)
		time.Sleep(time.Second)
	}
	t.fb.SetDisplayPage(0)
	t.ctx.SetDrawPage(0)
}
