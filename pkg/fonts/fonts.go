// Package fonts resolves and caches the typefaces used on rendered cards.
//
// Font bytes are resolved once per [Source] through a fallback chain:
// an explicit font file, then system font discovery, then the Go fonts
// embedded in the binary. Face construction can still fail on corrupt
// files, in which case the chain falls through to the next candidate and
// ultimately to a bitmap face, so callers always get a usable face.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/kanau/tetracard/pkg/observability"
)

// Weight selects a font style.
type Weight int

const (
	Regular Weight = iota
	Bold
)

func (w Weight) String() string {
	if w == Bold {
		return "bold"
	}
	return "regular"
}

// Names tried against the system font catalog, in preference order.
var systemCandidates = map[Weight][]string{
	Regular: {"DejaVuSans.ttf", "Arial.ttf", "Helvetica.ttf"},
	Bold:    {"DejaVuSans-Bold.ttf", "Arial Bold.ttf", "Helvetica-Bold.ttf"},
}

type faceKey struct {
	weight Weight
	size   float64
}

// Source resolves font faces for card rendering. The zero value uses
// system fonts with the embedded Go fonts as fallback; set RegularPath
// and BoldPath to pin specific font files.
type Source struct {
	RegularPath string
	BoldPath    string

	mu    sync.Mutex
	fonts map[Weight]*truetype.Font
	faces map[faceKey]font.Face
}

// NewSource returns a Source resolving from the given font files when set.
func NewSource(regularPath, boldPath string) *Source {
	return &Source{RegularPath: regularPath, BoldPath: boldPath}
}

// Face returns a font face of the given weight and point size. Results are
// cached per size; the returned face is safe to reuse across renders but
// not across goroutines drawing concurrently with the same face.
func (s *Source) Face(w Weight, size float64) font.Face {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := faceKey{w, size}
	if s.faces == nil {
		s.faces = make(map[faceKey]font.Face)
	}
	if f, ok := s.faces[key]; ok {
		return f
	}

	f := s.newFace(w, size)
	s.faces[key] = f
	return f
}

func (s *Source) newFace(w Weight, size float64) font.Face {
	fnt := s.font(w)
	if fnt == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(fnt, &truetype.Options{Size: size})
}

// font resolves and caches the parsed font for a weight. Caller holds mu.
func (s *Source) font(w Weight) *truetype.Font {
	if s.fonts == nil {
		s.fonts = make(map[Weight]*truetype.Font)
	}
	if f, ok := s.fonts[w]; ok {
		return f
	}

	f := s.resolve(w)
	s.fonts[w] = f
	return f
}

func (s *Source) resolve(w Weight) *truetype.Font {
	path := s.RegularPath
	if w == Bold {
		path = s.BoldPath
	}
	if path != "" {
		if f := parseFile(path); f != nil {
			return f
		}
		observability.Render().OnFontFallback(w.String())
	}

	for _, name := range systemCandidates[w] {
		found, err := findfont.Find(name)
		if err != nil {
			continue
		}
		if f := parseFile(found); f != nil {
			return f
		}
	}
	observability.Render().OnFontFallback(w.String())

	embedded := goregular.TTF
	if w == Bold {
		embedded = gobold.TTF
	}
	f, err := truetype.Parse(embedded)
	if err != nil {
		return nil
	}
	return f
}

func parseFile(path string) *truetype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return f
}
