package sink

import (
	"bytes"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/render"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{"PNG", PNG, false},
		{".png", PNG, false},
		{"jpeg", JPEG, false},
		{"jpg", JPEG, false},
		{".JPG", JPEG, false},
		{"webp", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			} else if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
				t.Errorf("ParseFormat(%q): code = %s, want INVALID_FORMAT", tt.in, errors.GetCode(err))
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	src := render.Solid(8, 8, color.NRGBA{10, 200, 30, 255})

	var buf bytes.Buffer
	if err := Encode(&buf, src); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := decoded.At(4, 4).RGBA()
	if r>>8 != 10 || g>>8 != 200 || b>>8 != 30 {
		t.Errorf("round trip pixel = (%d,%d,%d), want (10,200,30)", r>>8, g>>8, b>>8)
	}
}

func TestEncodeJPEG(t *testing.T) {
	src := render.Solid(8, 8, color.NRGBA{128, 128, 128, 255})

	var buf bytes.Buffer
	if err := Encode(&buf, src, WithFormat(JPEG), WithQuality(85)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := jpeg.Decode(&buf); err != nil {
		t.Fatalf("output is not valid jpeg: %v", err)
	}
}

func TestEncodeJPEGQualityValidation(t *testing.T) {
	src := render.Solid(4, 4, color.NRGBA{0, 0, 0, 255})
	for _, q := range []int{0, -1, 101} {
		err := Encode(&bytes.Buffer{}, src, WithFormat(JPEG), WithQuality(q))
		if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
			t.Errorf("quality %d: code = %s, want INVALID_FORMAT", q, errors.GetCode(err))
		}
	}

	// Quality bounds only apply to lossy output.
	if err := Encode(&bytes.Buffer{}, src, WithQuality(0)); err != nil {
		t.Errorf("png should ignore quality: %v", err)
	}
}

func TestEncodeFileInfersFormat(t *testing.T) {
	src := render.Solid(4, 4, color.NRGBA{255, 0, 0, 255})
	path := t.TempDir() + "/card.jpg"

	if err := EncodeFile(path, src); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf(".jpg output should be jpeg encoded: %v", err)
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(PNG); got != "image/png" {
		t.Errorf("ContentType(PNG) = %q", got)
	}
	if got := ContentType(JPEG); got != "image/jpeg" {
		t.Errorf("ContentType(JPEG) = %q", got)
	}
}
