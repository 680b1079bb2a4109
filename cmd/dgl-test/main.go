// Command dgl-test benchmarks the drawing primitives on the console framebuffer and runs an
// animated demo of the buffering strategies.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/dgl"
	"github.com/BeatGlow/dgl/draw"
	"github.com/BeatGlow/dgl/framebuffer"
)

const usage = `dgl-test: Test the console framebuffer.
Syntax: dgl-test [flags] [commands/options]

Commands:

copyarea-dma      Benchmark CopyArea performance using the accelerated copy.
copyarea-memcpy   Benchmark CopyArea performance using the software copy.
fill              Benchmark Fill performance.
putimage          Benchmark PutImage performance.
test-pageflip     Page-flipping test (should show red, green, and possibly blue).
demo-dma          Perform animated demo copying from an offscreen page.
demo-pageflip     Perform animated demo using page-flipping.
demo-memcpy       Perform animated demo copying from an offscreen pixmap.

Options:

double-buffer     Use double-buffering instead of triple-buffering when using
                  page flipping.
vsync             Force wait for vsync after drawing each frame.
half-size         Use half the display resolution for the animated demo window.

Flags:

`

// Duration of each benchmark.
const benchmarkDuration = 2 * time.Second

type options struct {
	copyAreaDMA    bool
	copyAreaMemcpy bool
	fill           bool
	putImage       bool
	testPageFlip   bool
	demoDMA        bool
	demoPageFlip   bool
	demoMemcpy     bool
	maxPages       int
	vsync          bool
	halfSize       bool
}

func (o *options) any() bool {
	return o.copyAreaDMA || o.copyAreaMemcpy || o.fill || o.putImage ||
		o.testPageFlip || o.demoDMA || o.demoPageFlip || o.demoMemcpy
}

func parseArgs(args []string) (*options, error) {
	o := &options{maxPages: 3}
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "copyarea-dma":
			o.copyAreaDMA = true
		case "copyarea-memcpy":
			o.copyAreaMemcpy = true
		case "fill":
			o.fill = true
		case "putimage":
			o.putImage = true
		case "test-pageflip":
			o.testPageFlip = true
		case "demo-dma":
			o.demoDMA = true
		case "demo-pageflip":
			o.demoPageFlip = true
		case "demo-memcpy":
			o.demoMemcpy = true
		case "double-buffer":
			o.maxPages = 2
		case "vsync":
			o.vsync = true
		case "half-size":
			o.halfSize = true
		default:
			return nil, fmt.Errorf("unrecognized option %q", arg)
		}
	}
	return o, nil
}

func main() {
	deviceFlag := flag.String("device", framebuffer.DefaultConfig.Device, "Framebuffer device")
	consoleFlag := flag.String("console", framebuffer.DefaultConfig.Console, "Console device")
	noConsoleFlag := flag.Bool("no-console", false, "Do not switch the console to graphics mode")
	blPinFlag := flag.String("bl", "", "Backlight GPIO pin")
	compositorFlag := flag.Bool("compositor", false, "Copy and fill through golang.org/x/image/draw")
	imageFlag := flag.String("image", "", "Picture used by the putimage benchmark")
	verboseFlag := flag.Int("v", 0, "Verbosity, 1 for log messages and 2 for verbose log messages")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}
	opts, err := parseArgs(flag.Args())
	if err != nil {
		fatal(err)
	}

	verbosity := *verboseFlag
	if env := os.Getenv("DGL_DEBUG"); env != "" {
		if verbosity, err = strconv.Atoi(env); err != nil {
			fatal(fmt.Errorf("invalid DGL_DEBUG value %q", env))
		}
	}
	level := dgl.LevelWarning
	switch {
	case verbosity >= 2:
		level = dgl.LevelVerboseLog
	case verbosity == 1:
		level = dgl.LevelLog
	}
	log := dgl.NewLogger(os.Stderr, level)

	config := &framebuffer.Config{
		Device:    *deviceFlag,
		Console:   *consoleFlag,
		NoConsole: *noConsoleFlag,
		Log:       log,
	}
	if *blPinFlag != "" {
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		if config.Backlight = gpioreg.ByName(*blPinFlag); config.Backlight == nil {
			fatal(fmt.Errorf("unknown backlight pin %q", *blPinFlag))
		}
	}

	var picture image.Image
	if *imageFlag != "" {
		if picture, err = loadImage(*imageFlag); err != nil {
			fatal(err)
		}
	}

	fb, err := framebuffer.Open(config)
	if err != nil {
		fatal(fmt.Errorf("initialization error: %w", err))
	}

	ctx := dgl.NewContext(fb, fb, log)
	if *compositorFlag {
		ctx.SetBackend(draw.Compositor{})
	}

	if opts.testPageFlip && !fb.Has(dgl.CapPanDisplay) {
		opts.testPageFlip = false
		fmt.Println("Page-flipping test (test-pageflip): PanDisplay not available.")
	}
	if opts.copyAreaDMA && !fb.Has(dgl.CapCopyArea) {
		opts.copyAreaDMA = false
		fmt.Println("CopyArea benchmark (copyarea-dma): accelerated CopyArea not available.")
	}
	if opts.demoDMA && !fb.Has(dgl.CapCopyArea) {
		opts.demoDMA = false
		fmt.Println("Animated demo (demo-dma): accelerated CopyArea not available.")
	}
	if opts.demoDMA && fb.Pages() < 2 {
		opts.demoDMA = false
		fmt.Println("Animated demo (demo-dma): Need more than one framebuffer page.")
	}
	if opts.demoPageFlip && !fb.Has(dgl.CapPanDisplay) {
		opts.demoPageFlip = false
		fmt.Println("Animated demo (demo-pageflip): PanDisplay not available.")
	}

	var (
		t       = &tester{ctx: ctx, fb: fb.Surface, rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))}
		results []string
	)
	if opts.fill {
		r := t.fillTest()
		results = append(results, r.format("Fill pixel throughput (software fill)", fb.BytesPerPixel()))
	}
	if opts.putImage {
		r, err := t.putImageTest(picture)
		if err != nil {
			fatal(err)
		}
		results = append(results, r.format(fmt.Sprintf("PutImage (%dx%d) pixel throughput", putImageWidth, putImageHeight), fb.BytesPerPixel()))
	}
	if opts.copyAreaMemcpy {
		// Mask the accelerated copy to measure the software path.
		caps := fb.Capabilities()
		fb.SetCapabilities(caps &^ dgl.CapCopyArea)
		t.drawPattern()
		r := t.copyTest()
		fb.SetCapabilities(caps)
		results = append(results, r.format("CopyArea pixel throughput (software blit)", fb.BytesPerPixel()))
	}
	if opts.copyAreaDMA {
		t.drawPattern()
		r := t.copyTest()
		results = append(results, r.format("CopyArea pixel throughput (accelerated)", fb.BytesPerPixel()))
	}
	if opts.testPageFlip {
		t.pageFlipTest(opts.maxPages)
	}

	for _, demo := range []struct {
		enabled   bool
		buffering dgl.Buffering
		name      string
	}{
		{opts.demoPageFlip, dgl.PageFlip, "page flip"},
		{opts.demoDMA, dgl.DMACopy, "DMA"},
		{opts.demoMemcpy, dgl.MemoryCopy, "memcpy"},
	} {
		if !demo.enabled {
			continue
		}
		fps, err := t.animatedDemo(demo.buffering, opts)
		if err != nil {
			log.Warning("animated demo failed", "buffering", demo.buffering, "error", err)
			continue
		}
		results = append(results, fmt.Sprintf("Demo (%s) fps: %f", demo.name, fps))
	}

	if opts.any() {
		// Clear the screen if any tests were performed.
		ctx.SetDrawPage(0)
		ctx.Fill(0, 0, fb.Width, fb.Height, 0)
	}

	info := fb.String()
	if err = fb.Close(); err != nil {
		log.Warning("error closing framebuffer", "error", err)
	}
	fmt.Println(info)
	for _, line := range results {
		fmt.Println(line)
	}
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
