// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Command ocean renders an adaptive, tessellated sea surface.
//
// Controls:
//
//	W/A/S/D  move
//	C        toggle mouse look
//	P        toggle perspective/orthographic projection
//	G        toggle wireframe
//	T        freeze/unfreeze the quadtree
//	1/2/3    toggle directional/point/spot light
//	+/-      increase/decrease wave size (also Y/U)
//	I        toggle per-second frame statistics
//	J        dump the current leaves as JSON
//	Q/Esc    quit
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"

	"github.com/gviegas/ocean"
	"github.com/gviegas/ocean/driver"
	_ "github.com/gviegas/ocean/driver/gl"
	"github.com/gviegas/ocean/light"
	"github.com/gviegas/ocean/linear"
	"github.com/gviegas/ocean/terrain"
)

var (
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "ocean_info",
		Help:        "Ocean information.",
		ConstLabels: prometheus.Labels{"version": version},
	})

	frameSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ocean_frame_seconds",
		Help:    "The time spent per frame.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	})
)

// GLFW and OpenGL calls must be made from the main thread.
func init() { runtime.LockOSThread() }

var _ = reflect.TypeOf(config{})

type config struct {
	Width     int    `cli:""        env:"OCEAN_WIDTH"      help:"Window width."`
	Height    int    `cli:""        env:"OCEAN_HEIGHT"     help:"Window height."`
	Driver    string `cli:""        env:"OCEAN_DRIVER"     help:"Graphics driver name (substring match)."`
	VSync     bool   `cli:""        env:"OCEAN_VSYNC"      help:"Wait for vertical sync."`
	Domain    int    `cli:""        env:"OCEAN_DOMAIN"     help:"Width of the sea surface."`
	Cutoff    int    `cli:""        env:"OCEAN_CUTOFF"     help:"Minimum patch width."`
	MaxNodes  int    `cli:",hidden" env:"OCEAN_MAX_NODES"  help:"Maximum number of quadtree nodes."`
	Speed     int    `cli:""        env:"OCEAN_SPEED"      help:"Camera speed, in units per second."`
	WaveSize  int    `cli:""        env:"OCEAN_WAVE_SIZE"  help:"Initial wave size."`
	Wireframe bool   `cli:""        env:"OCEAN_WIREFRAME"  help:"Start in wireframe mode."`
	DumpFile  string `cli:""        env:"OCEAN_DUMP_FILE"  help:"File the leaves are dumped to (default stdout)."`
	AdminAddr string `cli:""        env:"OCEAN_ADMIN_ADDR" help:"Admin listening address (metrics). Disabled when empty."`
	LogLevel  string `cli:""        env:"OCEAN_LOG_LEVEL"  help:"Log level (debug|info|warning|error)."`
	LogIndent bool   `cli:""        env:"OCEAN_LOG_INDENT" help:"Indent logs."`
	Version   bool   `cli:""        env:"-"                help:"Show version."`
	Help      bool   `cli:""        env:"-"                help:"Show help."`
}

func main() {
	conf := config{
		Width:    1280,
		Height:   720,
		VSync:    true,
		Domain:   1000,
		Cutoff:   terrain.DefaultCutoff,
		MaxNodes: terrain.DefaultMaxNodes,
		Speed:    50,
		WaveSize: 2,
		LogLevel: logs.InfoLevel.String(),
	}

	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Renders an adaptive, tessellated sea surface.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	ocean.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(conf.LogLevel),
	})))

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	if conf.AdminAddr != "" {
		admin := startAdmin(conf.AdminAddr)
		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), time.Second)
			defer scancel()
			if err := admin.Shutdown(sctx); err != nil {
				logs.Warn(errors.New("shutting down the admin server failed").Wrap(err))
			}
		}()
	}

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("domain", conf.Domain).
		WithTag("cutoff", conf.Cutoff).
		Info("starting ocean")

	if err := run(ctx, conf); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	switch {
	case conf.Width <= 0 || conf.Height <= 0:
		return errors.New("invalid window size").
			WithTag("width", conf.Width).
			WithTag("height", conf.Height)
	case conf.Domain <= 0:
		return errors.New("invalid domain width").WithTag("domain", conf.Domain)
	case conf.Cutoff <= 0:
		return errors.New("invalid cutoff").WithTag("cutoff", conf.Cutoff)
	case conf.MaxNodes <= 0:
		return errors.New("invalid max nodes").WithTag("max_nodes", conf.MaxNodes)
	case conf.WaveSize < 0:
		return errors.New("invalid wave size").WithTag("wave_size", conf.WaveSize)
	}
	return nil
}

// slogLevel maps a go-tooling level name to a slog.Level.
func slogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func startAdmin(addr string) *http.Server {
	var mux http.ServeMux
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: &mux}
	go func() {
		logs.WithTag("addr", addr).Info("starting admin server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Warn(errors.New("admin server stopped").
				WithTag("addr", addr).
				Wrap(err))
		}
	}()
	return srv
}

func run(ctx context.Context, conf config) error {
	win, err := newWindow(conf.Width, conf.Height, conf.VSync)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer win.Destroy()

	drv, gpu, err := driver.Open(conf.Driver)
	if err != nil {
		return errors.New("opening graphics driver failed").
			WithTag("driver", conf.Driver).
			Wrap(err)
	}
	defer drv.Close()
	if lim := gpu.Limits(); lim.MaxPatchVertices < terrain.PatchVertices {
		return errors.New("tessellation not supported").
			WithTag("max_patch_vertices", lim.MaxPatchVertices)
	}

	stages, err := seaStagesSource()
	if err != nil {
		return errors.New("loading shaders failed").Wrap(err)
	}
	prog, err := gpu.NewProgram(stages)
	if err != nil {
		return errors.New("building sea program failed").Wrap(err)
	}
	defer prog.Destroy()

	cfg := terrain.DefaultConfig()
	cfg.Cutoff = float32(conf.Cutoff)
	cfg.MaxNodes = conf.MaxNodes
	cfg.MaxPatches = conf.MaxNodes
	surface, err := terrain.NewSurface(cfg)
	if err != nil {
		return errors.New("creating surface failed").Wrap(err)
	}
	if err := surface.Init(gpu); err != nil {
		return errors.New("initializing surface failed").Wrap(err)
	}
	defer surface.Shutdown()

	cam := newCamera(float32(conf.Speed))
	ctl := &controls{
		wireframe: conf.Wireframe,
		mouse:     true,
		waveSize:  uint32(conf.WaveSize),
		lights:    light.DefaultSet(),
		cam:       cam,
	}
	material := light.SeaMaterial()

	var dump bool
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, act glfw.Action, _ glfw.ModifierKey) {
		if act != glfw.Press {
			return
		}
		switch ctl.key(key) {
		case actQuit:
			w.SetShouldClose(true)
		case actMouse:
			setMouse(w, ctl.mouse)
		case actDump:
			dump = true
		}
	})
	fbw, fbh := win.GetFramebufferSize()
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		fbw, fbh = w, h
		gl.Viewport(0, 0, int32(w), int32(h))
	})
	setMouse(win, ctl.mouse)

	gl.ClearColor(0, 0, 0, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	var (
		fc       terrain.FrameContext
		origin   linear.V3
		domain   = float32(conf.Domain)
		last     = glfw.GetTime()
		lastInfo = last
		frames   int
	)
	for !win.ShouldClose() && ctx.Err() == nil {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := now - last
		last = now

		if ctl.mouse {
			cx, cy := center(win)
			x, y := win.GetCursorPos()
			cam.look(cx-x, cy-y, dt)
			win.SetCursorPos(cx, cy)
		}
		fwd, strafe := motion(func(k glfw.Key) bool { return win.GetKey(k) == glfw.Press })
		cam.move(fwd, strafe, dt)

		fc.Camera = cam.pos
		cam.view(&fc.View)
		if fbh > 0 {
			cam.proj(&fc.Proj, float32(fbw)/float32(fbh))
		}
		fc.Time = float32(now)
		fc.WaveSize = ctl.waveSize
		fc.Wireframe = ctl.wireframe

		if !ctl.frozen {
			if _, err := surface.Rebuild(origin, domain, domain, &fc); err != nil {
				return errors.New("rebuilding surface failed").Wrap(err)
			}
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		prog.Use()
		ctl.lights.Apply(prog, &fc.View)
		material.Apply(prog)
		if err := surface.RenderAll(prog, &fc); err != nil {
			return errors.New("rendering surface failed").Wrap(err)
		}
		win.SwapBuffers()
		frameSeconds.Observe(glfw.GetTime() - now)

		if dump {
			dump = false
			if err := dumpLeaves(surface, conf.DumpFile); err != nil {
				logs.Warn(errors.New("dumping leaves failed").Wrap(err))
			}
		}

		frames++
		if now-lastInfo >= 1 {
			if ctl.info {
				st := surface.Stats()
				logs.WithTag("ms_per_frame", 1000*(now-lastInfo)/float64(frames)).
					WithTag("position", cam.pos).
					WithTag("generation", st.Generation).
					WithTag("nodes", st.Nodes).
					WithTag("leaves", st.Leaves).
					WithTag("draws", st.Draws).
					WithTag("forced", st.Forced).
					WithTag("skipped", st.Skipped).
					WithTag("frozen", ctl.frozen).
					Info("frame statistics")
			}
			frames = 0
			lastInfo = now
		}
	}
	return nil
}

// dumpLeaves writes the current leaves of surface as
// JSON to the named file, or to stdout if name is empty.
func dumpLeaves(surface *terrain.Surface, name string) error {
	var w io.Writer = os.Stdout
	if name != "" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	snap := surface.Snapshot()
	if err := snap.WriteJSON(w); err != nil {
		return err
	}
	logs.WithTag("leaves", len(snap.Leaves)).
		WithTag("file", name).
		Info("leaves dumped")
	return nil
}
