package cli

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/render/sink"
)

func TestResolveEncodingDefaults(t *testing.T) {
	cfg := defaultConfig()
	opts := &renderOpts{}

	format, quality, err := resolveEncoding(cfg, opts)
	if err != nil {
		t.Fatalf("resolveEncoding() error: %v", err)
	}
	if format != sink.PNG {
		t.Errorf("format = %q, want %q", format, sink.PNG)
	}
	if quality != 90 {
		t.Errorf("quality = %d, want 90", quality)
	}
}

func TestResolveEncodingFlagsWin(t *testing.T) {
	cfg := defaultConfig()
	opts := &renderOpts{format: "jpg", quality: 50}

	format, quality, err := resolveEncoding(cfg, opts)
	if err != nil {
		t.Fatalf("resolveEncoding() error: %v", err)
	}
	if format != sink.JPEG {
		t.Errorf("format = %q, want %q", format, sink.JPEG)
	}
	if quality != 50 {
		t.Errorf("quality = %d, want 50", quality)
	}
}

func TestResolveEncodingInvalidFormat(t *testing.T) {
	cfg := defaultConfig()
	opts := &renderOpts{format: "webp"}

	_, _, err := resolveEncoding(cfg, opts)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestWriteCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	cfg := defaultConfig()
	opts := &renderOpts{output: path}

	if err := writeCard(cfg, opts, img, "ignored"); err != nil {
		t.Fatalf("writeCard() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 10 || decoded.Bounds().Dy() != 10 {
		t.Errorf("decoded bounds = %v, want 10x10", decoded.Bounds())
	}
}

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.json")
	content := `{"user": {"username": "tester", "xp": 1234.5}, "league": null}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var fixture profileFixture
	if err := loadFixture(path, &fixture); err != nil {
		t.Fatalf("loadFixture() error: %v", err)
	}
	if fixture.User.Username != "tester" {
		t.Errorf("Username = %q, want %q", fixture.User.Username, "tester")
	}
	if fixture.League != nil {
		t.Error("League should be nil")
	}
}

func TestLoadFixtureMissing(t *testing.T) {
	var fixture profileFixture
	if err := loadFixture(filepath.Join(t.TempDir(), "nope.json"), &fixture); err == nil {
		t.Error("missing fixture should error")
	}
}

func TestLoadFixtureInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var fixture profileFixture
	if err := loadFixture(path, &fixture); err == nil {
		t.Error("invalid fixture should error")
	}
}
