package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agiangrant/flexbind"
	"github.com/agiangrant/flexbind/retained"
	"github.com/agiangrant/flexbind/scene"
	"github.com/agiangrant/flexbind/tw"
)

// defaultMetricsAddr is used when the config enables metrics but no
// --metrics-addr is given.
const defaultMetricsAddr = "localhost:9464"

// Render implements the 'flexbind render' command
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", flexbind.DefaultConfigFile, "Engine config file")
	width := fs.Float64("width", 0, "Viewport width (default: from scene)")
	height := fs.Float64("height", 0, "Viewport height (default: from scene)")
	pngPath := fs.String("png", "", "Write a PNG snapshot of the frames")
	watch := fs.Bool("watch", false, "Re-render when the scene file changes")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	traceSpans := fs.Bool("trace", false, "Export render spans to stdout (default: from config)")
	themePath := fs.String("theme", "", "theme.toml with custom breakpoints")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: flexbind render [options] <scene.toml|scene.yaml>")
	}

	config, err := flexbind.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := flexbind.NewLogger(os.Stderr, config.Level())

	breakpoints := tw.DefaultBreakpoints()
	if *themePath != "" {
		if breakpoints, err = tw.LoadTheme(*themePath); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []flexbind.Option{flexbind.WithLogger(logger)}

	if *traceSpans || config.Trace {
		tp, err := newTracerProvider()
		if err != nil {
			return err
		}
		defer tp.Shutdown(context.Background())
		opts = append(opts, flexbind.WithTracerProvider(tp))
	}

	if config.Metrics && *metricsAddr == "" {
		*metricsAddr = defaultMetricsAddr
	}
	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, flexbind.WithMetrics(reg))
		srv := serveMetrics(*metricsAddr, reg, logger)
		defer srv.Shutdown(context.Background())
	}

	engine, err := flexbind.NewEngine(config, opts...)
	if err != nil {
		return err
	}
	defer engine.Shutdown()

	r := &sceneRenderer{
		engine:   engine,
		resolver: tw.NewResolver(breakpoints),
		logger:   logger,
		path:     fs.Arg(0),
		width:    *width,
		height:   *height,
		pngPath:  *pngPath,
		out:      os.Stdout,
	}

	if err := r.render(); err != nil {
		if !*watch {
			return err
		}
		logger.Error("render failed", "path", r.path, "error", err)
	}
	if !*watch {
		return nil
	}
	return r.watch(ctx)
}

// sceneRenderer loads, lays out and reports on one scene file.
type sceneRenderer struct {
	engine   *flexbind.Engine
	resolver *tw.Resolver
	logger   *slog.Logger
	path     string
	width    float64
	height   float64
	pngPath  string
	out      io.Writer

	root *retained.Widget
}

// render (re)loads the scene and runs one pass. The previous tree is
// destroyed, which releases its layout nodes.
func (r *sceneRenderer) render() error {
	s, err := scene.Load(r.path)
	if err != nil {
		return err
	}
	if r.width > 0 {
		s.Viewport.Width = r.width
	}
	if r.height > 0 {
		s.Viewport.Height = r.height
	}

	root, err := s.MountWith(r.engine, r.resolver)
	if err != nil {
		return err
	}
	if r.root != nil {
		r.root.Destroy()
	}
	r.root = root

	stats := r.engine.Render(root, s.Bounds())
	fmt.Fprintf(r.out, "%s: %d nodes in %s\n", r.path, stats.Nodes, stats.Elapsed)
	printFrames(r.out, root, 0)

	if r.pngPath != "" {
		if err := writeSnapshot(r.pngPath, root); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "  ✓ Wrote %s\n", r.pngPath)
	}
	return nil
}

// printFrames writes one line per widget, indented by depth.
func printFrames(out io.Writer, w *retained.Widget, depth int) {
	f := w.Frame()
	label := string(w.Kind())
	if name := w.Name(); name != "" {
		label += " " + name
	}
	if text := w.Text(); text != "" {
		label += fmt.Sprintf(" %q", text)
	}
	fmt.Fprintf(out, "%s%s (%g, %g) %gx%g\n",
		strings.Repeat("  ", depth+1), label, f.X, f.Y, f.Width, f.Height)

	for _, c := range w.Children() {
		if rw, ok := c.(*retained.Widget); ok {
			printFrames(out, rw, depth+1)
		}
	}
}
