// Command imdemo opens a gogpu window and draws an immediate-mode scene with
// imdraw.
//
// A rectangle sweeps across the window and grows while Space is held. A
// triangle flashes on the frame Space is released, and a circle changes
// color on every Space press.
//
// Usage:
//
//	imdemo -width 1024 -height 768 -segments 48 -debug
//	imdemo -config imdemo.toml
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imdraw"
	"github.com/gogpu/imdraw/input"
	"github.com/gogpu/imdraw/integration/gpuinput"
)

// surfaceFormatter is implemented by providers that report the surface
// format chosen by the host.
type surfaceFormatter interface {
	SurfaceFormat() gputypes.TextureFormat
}

func main() {
	cfg := defaultConfig()
	var (
		configPath  = flag.String("config", "", "TOML config file")
		width       = flag.Int("width", cfg.Width, "window width")
		height      = flag.Int("height", cfg.Height, "window height")
		maxVertices = flag.Int("max-vertices", cfg.MaxVertices, "per-frame vertex capacity")
		segments    = flag.Int("segments", cfg.Segments, "circle segments")
		background  = flag.String("background", cfg.Background, "clear color (hex)")
		debug       = flag.Bool("debug", cfg.Debug, "enable debug logging")
	)
	flag.Parse()

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			log.Fatal(err)
		}
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "max-vertices":
			cfg.MaxVertices = *maxVertices
		case "segments":
			cfg.Segments = *segments
		case "background":
			cfg.Background = *background
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	imdraw.SetLogger(newLogger(cfg.Debug))

	clearColor, err := imdraw.Hex(cfg.Background)
	if err != nil {
		log.Fatalf("Invalid background: %v", err)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("imdraw demo").
		WithSize(cfg.Width, cfg.Height))

	in := input.NewManager()
	if !gpuinput.Bind(app.EventSource(), in) {
		log.Printf("Event source has no key release events; Space will stay held")
	}

	s := newScene(cfg.Segments)
	var (
		renderer *imdraw.Renderer
		driver   *imdraw.FrameDriver
	)

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if renderer == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			device, queue, err := imdraw.DeviceFromProvider(provider)
			if err != nil {
				log.Fatalf("Failed to get GPU device: %v", err)
			}

			format := gputypes.TextureFormatBGRA8Unorm
			if sf, ok := any(provider).(surfaceFormatter); ok {
				format = sf.SurfaceFormat()
			}

			renderer, err = imdraw.NewRenderer(device, queue, format, uint32(w), uint32(h), //nolint:gosec // checked positive
				imdraw.WithMaxVertices(cfg.MaxVertices),
				imdraw.WithClearColor(clearColor),
				imdraw.WithLabel("imdemo"))
			if err != nil {
				log.Fatalf("Failed to create renderer: %v", err)
			}
			driver, err = imdraw.NewFrameDriver(device, queue, renderer, in)
			if err != nil {
				log.Fatalf("Failed to create frame driver: %v", err)
			}
			log.Printf("Renderer created: %dx%d, %d vertices", w, h, cfg.MaxVertices)
		}

		if rw, rh := renderer.Size(); int(rw) != w || int(rh) != h {
			renderer.Resize(uint32(w), uint32(h)) //nolint:gosec // checked positive
		}

		view, ok := any(dc.SurfaceView()).(hal.TextureView)
		if !ok || view == nil {
			return
		}
		if err := driver.Frame(view, s.draw); err != nil {
			if imdraw.IsDropped(err) {
				log.Printf("Frame %d dropped: %v", driver.Frames(), err)
				return
			}
			log.Printf("Frame error: %v", err)
		}
	})

	app.OnClose(func() {
		if driver != nil {
			if err := driver.Close(); err != nil {
				log.Printf("Close: %v", err)
			}
		}
		if renderer != nil {
			renderer.Destroy()
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// newLogger returns the library logger: charm's handler on stderr, at
// debug level when requested.
func newLogger(debug bool) *slog.Logger {
	h := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "imdemo",
	})
	if debug {
		h.SetLevel(charmlog.DebugLevel)
	}
	return slog.New(h)
}

// scene holds the demo's state between frames.
type scene struct {
	segments int
	x        float32
	size     float32
	palette  []imdraw.Color
	current  int
}

func newScene(segments int) *scene {
	return &scene{
		segments: segments,
		size:     80,
		palette:  []imdraw.Color{imdraw.Orange, imdraw.Cyan, imdraw.Magenta, imdraw.Yellow},
	}
}

var space = gpuinput.KeyFromGPU(gpucontext.KeySpace)

func (s *scene) draw(fc *imdraw.FrameContext) error {
	r := fc.Renderer
	in := fc.Input
	w, h := r.Size()
	fw, fh := float32(w), float32(h)
	dt := float32(fc.Delta.Seconds())

	if in.IsPressed(space) {
		s.current = (s.current + 1) % len(s.palette)
	}
	if in.IsDown(space) {
		s.size = min(s.size+120*dt, fh/2)
	} else {
		s.size = max(s.size-60*dt, 80)
	}

	s.x += 200 * dt
	if s.x > fw {
		s.x = -s.size
	}

	if err := r.DrawRectangle(imdraw.V2(s.x, fh/4-s.size/2), s.size, s.size, imdraw.Green); err != nil {
		return err
	}

	triColor := imdraw.Purple
	if in.IsReleased(space) {
		triColor = imdraw.White
	}
	cx, cy := fw/2, fh*3/4
	if err := r.DrawTriangle(
		imdraw.V2(cx, cy-60),
		imdraw.V2(cx-70, cy+50),
		imdraw.V2(cx+70, cy+50),
		triColor,
	); err != nil {
		return err
	}

	radius := min(fw, fh) / 8
	return r.DrawCircle(imdraw.V2(fw*3/4, fh/2), radius, s.segments, s.palette[s.current])
}
