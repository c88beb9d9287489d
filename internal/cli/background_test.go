package cli

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBackgroundNamesStable(t *testing.T) {
	names := backgroundNames()
	if len(names) != len(backgroundSpecs) {
		t.Fatalf("backgroundNames() returned %d names, want %d", len(names), len(backgroundSpecs))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestBackgroundSpecsGenerate(t *testing.T) {
	// Small canvases keep this fast; geometry constants scale with w/h.
	for name, spec := range backgroundSpecs {
		t.Run(name, func(t *testing.T) {
			img := spec.generate(64, 64, 42)
			if img == nil {
				t.Fatal("generator returned nil")
			}
			if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
				t.Errorf("bounds = %v, want 64x64", img.Bounds())
			}
		})
	}
}

func TestBackgroundCommandWritesFile(t *testing.T) {
	dir := t.TempDir()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"background", "grid", "--dir", dir, "--seed", "7"})

	if err := root.Execute(); err != nil {
		t.Fatalf("background command error: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "grid.png"))
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Errorf("bounds = %v, want 512x512", img.Bounds())
	}
}

func TestBackgroundCommandUnknownName(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"background", "plaid"})

	if err := root.Execute(); err == nil {
		t.Error("unknown background name should error")
	}
}
