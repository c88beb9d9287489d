// Package sink encodes finished card images into transportable formats.
//
// A sink is the last stage of the render pipeline: it takes a composited
// image.Image and writes encoded bytes to an io.Writer. Two formats are
// supported:
//
//   - PNG: lossless, the default, quality is ignored
//   - JPEG: lossy, quality 1-100 (default 90)
//
// Basic usage:
//
//	err := sink.Encode(w, img, sink.WithFormat(sink.JPEG), sink.WithQuality(85))
//
// Use [EncodeFile] to write directly to a path; the format is inferred from
// the file extension when no explicit option overrides it.
package sink

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/kanau/tetracard/pkg/errors"
)

// Format identifies an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
)

// ParseFormat maps a user-supplied format name (or file extension) to a
// Format. "jpg" is accepted as an alias for "jpeg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported image format %q", s)
	}
}

// Option configures encoding.
type Option func(*encoder)

type encoder struct {
	format  Format
	quality int
}

// WithFormat sets the output format (default PNG).
func WithFormat(f Format) Option {
	return func(e *encoder) { e.format = f }
}

// WithQuality sets the JPEG quality, 1-100 (default 90). Ignored for PNG.
func WithQuality(q int) Option {
	return func(e *encoder) { e.quality = q }
}

// Encode writes img to w in the configured format.
func Encode(w io.Writer, img image.Image, opts ...Option) error {
	e := encoder{format: PNG, quality: 90}
	for _, opt := range opts {
		opt(&e)
	}

	switch e.format {
	case PNG:
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode png")
		}
	case JPEG:
		if e.quality < 1 || e.quality > 100 {
			return errors.New(errors.ErrCodeInvalidFormat, "jpeg quality %d out of range 1-100", e.quality)
		}
		if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(e.quality)); err != nil {
			return errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode jpeg")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported image format %q", e.format)
	}
	return nil
}

// EncodeFile encodes img to the file at path. When no WithFormat option is
// given the format is inferred from the path's extension, falling back to
// PNG for unknown extensions.
func EncodeFile(path string, img image.Image, opts ...Option) error {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil {
		opts = append([]Option{WithFormat(f)}, opts...)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeEncodeFailed, err, "create %s", path)
	}
	defer file.Close()
	return Encode(file, img, opts...)
}

// ContentType returns the MIME type for a format, for HTTP responses.
func ContentType(f Format) string {
	if f == JPEG {
		return "image/jpeg"
	}
	return "image/png"
}
