// Command ggapp runs an animated gg demo in a window or headless.
//
// Usage:
//
//	ggapp [-config app.toml] [-headless] [-manual] [-frames 120] [-fps 30]
//	      [-capture out] [-format png] [-v]
//
// Headless runs with -frames stop by themselves; with -capture each frame
// is written to the directory. Interrupt with Ctrl-C to exit early.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/gogpu/ggapp"
	"github.com/gogpu/ggapp/app"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("ggapp: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ggapp", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML or YAML configuration file")
		headless   = fs.Bool("headless", false, "render offscreen")
		manual     = fs.Bool("manual", false, "use MANUAL presentation mode")
		frames     = fs.Uint64("frames", 0, "stop after this many frames (headless)")
		fps        = fs.Float64("fps", -1, "headless frame rate, 0 for unpaced")
		captureDir = fs.String("capture", "", "write frames to this directory (headless)")
		format     = fs.String("format", "", "capture format: png, bmp or tiff")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ggapp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := ggapp.DefaultConfig().WithTitle("ggapp demo")
	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Only flags that were given override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg = cfg.WithHeadless(*headless)
		case "manual":
			if *manual {
				cfg = cfg.WithPresentationMode(ggapp.PresentationModeManual)
			}
		case "frames":
			cfg = cfg.WithMaxFrames(*frames)
		case "fps":
			cfg = cfg.WithFrameRate(*fps)
		case "capture":
			cfg.Capture.Dir = *captureDir
		case "format":
			cfg.Capture.Format = *format
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	d := newDemo()
	if cfg.Headless && cfg.MaxFrames > 0 && term.IsTerminal(int(os.Stderr.Fd())) {
		d.progress = progressbar.Default(int64(cfg.MaxFrames), "rendering")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	task, err := ggapp.RunAsync(d, cfg)
	if errors.Is(err, ggapp.ErrBackendUnavailable) {
		return fmt.Errorf("%w (rebuild without -tags nogpu or pass -headless)", err)
	}
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(task.Wait)
	g.Go(func() error {
		select {
		case <-gctx.Done():
			task.Cancel()
		case <-task.Done():
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if d.progress != nil {
		_ = d.progress.Finish()
	}
	return nil
}
