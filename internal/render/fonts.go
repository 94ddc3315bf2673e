package render

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// MinFontSize is the smallest face the cache builds; smaller text is not
// legible on any surface.
const MinFontSize = 4.0

// FontCache parses the embedded Go fonts once and hands out faces per
// family and pixel size.
type FontCache struct {
	mu    sync.Mutex
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float64
}

var fontData = map[string][]byte{
	"sans-serif": goregular.TTF,
	"monospace":  gomono.TTF,
	"bold":       gobold.TTF,
}

func NewFontCache() (*FontCache, error) {
	c := &FontCache{
		fonts: make(map[string]*truetype.Font, len(fontData)),
		faces: make(map[faceKey]font.Face),
	}
	for name, data := range fontData {
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
		}
		c.fonts[name] = f
	}
	return c, nil
}

// family maps a CSS-like family name onto one of the embedded fonts.
func family(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "mono"), strings.Contains(name, "courier"):
		return "monospace"
	case strings.Contains(name, "bold"):
		return "bold"
	}
	return "sans-serif"
}

// Face returns a face for family at size pixels, rounded to half pixels.
// Sizes below MinFontSize return nil.
func (c *FontCache) Face(name string, size float64) font.Face {
	if c == nil || size < MinFontSize {
		return nil
	}
	key := faceKey{family: family(name), size: math.Round(size*2) / 2}

	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(c.fonts[key.family], &truetype.Options{
		Size:    key.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = face
	return face
}
