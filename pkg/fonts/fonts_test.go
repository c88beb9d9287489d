package fonts

import (
	"testing"
	"time"

	"golang.org/x/image/font/basicfont"

	"github.com/kanau/tetracard/pkg/observability"
)

func TestFaceNeverNil(t *testing.T) {
	var s Source
	for _, w := range []Weight{Regular, Bold} {
		if s.Face(w, 20) == nil {
			t.Fatalf("weight %d: Face returned nil", w)
		}
	}
}

func TestFaceCached(t *testing.T) {
	var s Source
	a := s.Face(Regular, 20)
	b := s.Face(Regular, 20)
	if a != b {
		t.Error("same weight and size should return the cached face")
	}

	if s.Face(Regular, 36) == a {
		t.Error("different sizes should produce distinct faces")
	}
}

func TestBadExplicitPathFallsThrough(t *testing.T) {
	s := NewSource("/nonexistent/font.ttf", "/nonexistent/bold.ttf")
	face := s.Face(Regular, 14)
	if face == nil {
		t.Fatal("broken explicit path should fall through, not fail")
	}
}

type fallbackRecorder struct {
	weights []string
}

func (r *fallbackRecorder) OnFontFallback(weight string) {
	r.weights = append(r.weights, weight)
}

func (*fallbackRecorder) OnRenderStart(string)                          {}
func (*fallbackRecorder) OnRenderComplete(string, time.Duration, error) {}

func TestFallbackEventOnBadExplicitPath(t *testing.T) {
	rec := &fallbackRecorder{}
	observability.SetRenderHooks(rec)
	defer observability.Reset()

	s := NewSource("/nonexistent/font.ttf", "")
	if s.Face(Regular, 14) == nil {
		t.Fatal("Face returned nil")
	}

	if len(rec.weights) == 0 || rec.weights[0] != "regular" {
		t.Errorf("broken explicit path should emit a fallback event, got %v", rec.weights)
	}
}

func TestEmbeddedFallbackIsScalable(t *testing.T) {
	// The embedded Go fonts parse, so the bitmap face is only reachable
	// when every candidate is corrupt.
	var s Source
	if s.Face(Bold, 32) == basicfont.Face7x13 {
		t.Error("embedded bold font should be preferred over the bitmap face")
	}
}
