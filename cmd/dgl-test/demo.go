package main

import (
	"image"
	"math"
	"time"

	"github.com/BeatGlow/dgl"
)

const (
	demoDuration        = 10 * time.Second
	numObjects          = 64
	maxVelocity         = 100.0
	maxObjectRadius     = 35.0
	minObjectBrightness = 0.3
)

// movingObject is a square moving with a varying heading.
type movingObject struct {
	x, y     float64
	velocity float64
	heading  float64
	turn     float64
	size     float64
	rgb      [3]float32
}

func (t *tester) newObjects(window image.Rectangle) []movingObject {
	objects := make([]movingObject, numObjects)
	for i := range objects {
		scale := 1.0
		if i >= numObjects/4 {
			scale = 0.3
		} else if i >= numObjects/6 {
			scale = 0.7
		}
		o := &objects[i]
		o.x = t.rng.Float64() * float64(window.Dx())
		o.y = t.rng.Float64() * float64(window.Dy())
		o.velocity = t.rng.Float64() * maxVelocity / scale
		o.heading = t.rng.Float64() * 2 * math.Pi
		o.turn = float64(t.intN(3))*0.1*math.Pi - 0.1*math.Pi
		o.size = maxObjectRadius * scale
		for o.rgb[0]+o.rgb[1]+o.rgb[2] < minObjectBrightness {
			o.rgb = [3]float32{t.rng.Float32(), t.rng.Float32(), t.rng.Float32()}
		}
	}
	return objects
}

// animatedDemo draws squares of different sizes moving with different velocities and returns
// the frame rate.
func (t *tester) animatedDemo(buffering dgl.Buffering, opts *options) (float64, error) {
	window := t.fb.Bounds()
	if opts.halfSize {
		w, h := t.fb.Width/2, t.fb.Height/2
		window = image.Rect(0, 0, w, h).Add(image.Pt((t.fb.Width-w)/2, (t.fb.Height-h)/2))
	}
	sw, err := dgl.NewSwapper(t.ctx, t.fb, dgl.SwapConfig{
		Buffering: buffering,
		MaxPages:  opts.maxPages,
		VSync:     opts.vsync,
		Window:    window,
	})
	if err != nil {
		return 0, err
	}
	defer sw.Close()

	var (
		objects = t.newObjects(window)
		frame   = sw.Window()
		origin  = sw.Origin()
		clip    = dgl.ClipRectangle{X1: frame.Min.X, Y1: frame.Min.Y, X2: frame.Max.X, Y2: frame.Max.Y}
		frames  int
		start   = time.Now()
		last    = start
	)
	for {
		t.ctx.Fill(frame.Min.X, frame.Min.Y, frame.Dx(), frame.Dy(), 0)
		for i := range objects {
			o := &objects[i]
			x1, y1 := clip.Clip(origin.X+int(o.x-o.size), origin.Y+int(o.y-o.size))
			x2, y2 := clip.Clip(origin.X+int(o.x+o.size), origin.Y+int(o.y+o.size))
			t.ctx.Fill(x1, y1, x2-x1, y2-y1, t.ctx.ConvertColor(o.rgb[0], o.rgb[1], o.rgb[2]))
		}
		sw.Swap()
		frames++

		now := time.Now()
		if now.Sub(start) >= demoDuration {
			break
		}
		dt := now.Sub(last).Seconds()
		last = now
		for i := range objects {
			o := &objects[i]
			o.heading += dt * o.turn
			o.x += dt * o.velocity * math.Cos(o.heading)
			o.y += dt * o.velocity * math.Sin(o.heading)
			// Change turn direction on average once every 10 seconds.
			if t.rng.Float64() < 0.1*dt {
				o.turn = float64(t.intN(3))*0.2*math.Pi - 0.1*math.Pi
			}
		}
	}
	return float64(frames) / time.Since(start).Seconds(), nil
}
