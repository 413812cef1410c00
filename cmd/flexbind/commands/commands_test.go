package commands

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"

	"github.com/agiangrant/flexbind"
	"github.com/agiangrant/flexbind/tw"
)

const testScene = `
[viewport]
width = 200
height = 80

[root]
kind = "container"
name = "bar"
classes = "flex-row w-full h-full"

[[root.children]]
kind = "view"
name = "left"
classes = "w-[50px]"

[[root.children]]
kind = "view"
name = "right"
classes = "grow"
width = 10
height = 10
`

func newRenderer(t *testing.T, scenePath string) (*sceneRenderer, *bytes.Buffer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e, err := flexbind.NewEngine(flexbind.DefaultEngineConfig(), flexbind.WithLogger(logger))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(e.Shutdown)

	var out bytes.Buffer
	return &sceneRenderer{
		engine:   e,
		resolver: tw.NewResolver(tw.DefaultBreakpoints()),
		logger:   logger,
		path:     scenePath,
		out:      &out,
	}, &out
}

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(testScene), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSceneRendererPrintsFrames(t *testing.T) {
	r, out := newRenderer(t, writeScene(t))

	if err := r.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	for _, want := range []string{
		"  container bar (0, 0) 200x80",
		"    view left (0, 0) 50x80",
		"    view right (50, 0) 150x80",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSceneRendererViewportOverride(t *testing.T) {
	r, _ := newRenderer(t, writeScene(t))
	r.width = 400

	if err := r.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	if got := r.root.Frame().Width; got != 400 {
		t.Errorf("root width = %v, want 400", got)
	}
}

func TestSceneRendererReleasesPreviousTree(t *testing.T) {
	r, _ := newRenderer(t, writeScene(t))

	if err := r.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	first := r.root
	if err := r.render(); err != nil {
		t.Fatalf("second render() error = %v", err)
	}

	if !first.Destroyed() {
		t.Error("previous tree was not destroyed")
	}
	if r.engine.HasNode(first) {
		t.Error("previous root still has a node")
	}
	if got := r.engine.Associations(); got != 3 {
		t.Errorf("Associations() = %d, want 3", got)
	}
}

func TestSceneRendererWritesPNG(t *testing.T) {
	r, _ := newRenderer(t, writeScene(t))
	r.pngPath = filepath.Join(t.TempDir(), "out.png")

	if err := r.render(); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	f, err := os.Open(r.pngPath)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 80 {
		t.Errorf("snapshot size = %dx%d, want 200x80", b.Dx(), b.Dy())
	}
}

func TestSceneRendererMissingScene(t *testing.T) {
	r, _ := newRenderer(t, filepath.Join(t.TempDir(), "missing.toml"))

	if err := r.render(); err == nil {
		t.Error("render() of a missing scene should fail")
	}
}

func TestIsSceneChange(t *testing.T) {
	target := filepath.Join(t.TempDir(), "scene.toml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"chmod", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: target + ".swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSceneChange(tt.event, target); got != tt.want {
				t.Errorf("isSceneChange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flexbind.toml")
	var out bytes.Buffer

	if err := configInit([]string{"--path", path}, &out); err != nil {
		t.Fatalf("configInit() error = %v", err)
	}
	if err := configInit([]string{"--path", path}, &out); err == nil {
		t.Error("configInit() over an existing file should fail without --force")
	}
	if err := configInit([]string{"--path", path, "--force"}, &out); err != nil {
		t.Errorf("configInit(--force) error = %v", err)
	}

	out.Reset()
	if err := configShow([]string{"--path", path}, &out); err != nil {
		t.Fatalf("configShow() error = %v", err)
	}
	if !strings.Contains(out.String(), "frame_budget_ms = 16") {
		t.Errorf("configShow() output missing frame budget:\n%s", out.String())
	}
}
