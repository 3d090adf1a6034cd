// Package font rasterizes x/image font faces into a single alpha atlas that the GUI
// draws glyph quads from. The built-in atlas uses basicfont's 7x13 face; TrueType and
// OpenType files are loaded through opentype.
package font

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII is the default atlas range.
const (
	FirstRune rune = 32
	LastRune  rune = 126

	// FallbackRune is drawn for any rune outside the atlas.
	FallbackRune rune = '?'

	atlasWidth = 512
	cellPad    = 1
)

// Glyph locates one rasterized rune in the atlas.
// X and Y offset the glyph's top-left corner from the pen position, where the
// pen sits at the top of the line box (not the baseline).
type Glyph struct {
	U0, V0, U1, V1 float32
	X, Y           float32
	W, H           float32
	AdvanceX       float32
}

// Atlas is a packed alpha texture of glyphs with their metrics.
type Atlas struct {
	img      *image.Alpha
	glyphs   map[rune]Glyph
	fallback Glyph
	height   float32
	ascent   float32

	texID uint32
}

// NewAtlas rasterizes runes first..last of face (plus FallbackRune) into an atlas.
// Runes the face does not contain are skipped and later resolve to the fallback.
func NewAtlas(face xfont.Face, first, last rune) (*Atlas, error) {
	if last < first {
		return nil, fmt.Errorf("font: empty rune range %q..%q", first, last)
	}
	m := face.Metrics()
	a := &Atlas{
		glyphs: make(map[rune]Glyph, int(last-first)+2),
		height: float32(m.Height.Ceil()),
		ascent: float32(m.Ascent.Ceil()),
	}

	type placed struct {
		r      rune
		bounds image.Rectangle
		adv    fixed.Int26_6
		x, y   int
	}
	var items []placed
	x, y, rowH := cellPad, cellPad, 0
	add := func(r rune) {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			return
		}
		ib := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		w, h := ib.Dx(), ib.Dy()
		if x+w+cellPad > atlasWidth {
			x, y = cellPad, y+rowH+cellPad
			rowH = 0
		}
		items = append(items, placed{r: r, bounds: ib, adv: adv, x: x, y: y})
		x += w + cellPad
		rowH = max(rowH, h)
	}
	for r := first; r <= last; r++ {
		add(r)
	}
	if FallbackRune < first || FallbackRune > last {
		add(FallbackRune)
	}
	if len(items) == 0 {
		return nil, errors.New("font: face has no glyphs in range")
	}

	a.img = image.NewAlpha(image.Rect(0, 0, atlasWidth, nextPow2(y+rowH+cellPad)))
	size := a.img.Bounds().Size()
	for _, it := range items {
		// Position the dot so the glyph's bounds land at (it.x, it.y).
		dot := fixed.P(it.x-it.bounds.Min.X, it.y-it.bounds.Min.Y)
		dr, mask, maskp, _, _ := face.Glyph(dot, it.r)
		if mask != nil {
			draw.DrawMask(a.img, dr, image.Opaque, image.Point{}, mask, maskp, draw.Src)
		}
		g := Glyph{
			U0:       float32(dr.Min.X) / float32(size.X),
			V0:       float32(dr.Min.Y) / float32(size.Y),
			U1:       float32(dr.Max.X) / float32(size.X),
			V1:       float32(dr.Max.Y) / float32(size.Y),
			X:        float32(dr.Min.X - it.x + it.bounds.Min.X),
			Y:        float32(dr.Min.Y-it.y+it.bounds.Min.Y) + a.ascent,
			W:        float32(dr.Dx()),
			H:        float32(dr.Dy()),
			AdvanceX: float32(it.adv) / 64,
		}
		if it.r == FallbackRune {
			a.fallback = g
		}
		if it.r >= first && it.r <= last {
			a.glyphs[it.r] = g
		}
	}
	return a, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

var (
	defaultOnce  sync.Once
	defaultAtlas *Atlas
)

// Default returns the shared built-in atlas over basicfont.Face7x13.
func Default() *Atlas {
	defaultOnce.Do(func() {
		a, err := NewAtlas(basicfont.Face7x13, FirstRune, LastRune)
		if err != nil {
			// The embedded face always covers ASCII.
			panic(err)
		}
		defaultAtlas = a
	})
	return defaultAtlas
}

// Load parses a TrueType/OpenType file and rasterizes it at size points (72 DPI).
// A missing file returns an error wrapping os.ErrNotExist.
func Load(path string, size float64) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: load %s: %w", path, err)
	}
	return Parse(data, size)
}

// Parse rasterizes an in-memory TrueType/OpenType font at size points.
func Parse(data []byte, size float64) (*Atlas, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: xfont.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font: face: %w", err)
	}
	defer face.Close()
	return NewAtlas(face, FirstRune, LastRune)
}

// Glyph returns the glyph for r. Runes outside the atlas return the fallback glyph and false.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	return a.fallback, false
}

// TextWidth returns the advance width of text with spacing added between glyphs.
func (a *Atlas) TextWidth(text string, spacing float32) float32 {
	var w float32
	n := 0
	for _, r := range text {
		g, _ := a.Glyph(r)
		w += g.AdvanceX
		n++
	}
	if n > 1 {
		w += spacing * float32(n-1)
	}
	return w
}

// Height returns the line height in pixels.
func (a *Atlas) Height() float32 { return a.height }

// Ascent returns the distance from the top of the line to the baseline.
func (a *Atlas) Ascent() float32 { return a.ascent }

// Image returns the atlas pixels for texture upload.
func (a *Atlas) Image() *image.Alpha { return a.img }

// TextureID returns the id assigned by the renderer after upload, 0 before.
func (a *Atlas) TextureID() uint32 { return a.texID }

// SetTextureID records the renderer's texture for this atlas.
func (a *Atlas) SetTextureID(id uint32) { a.texID = id }
