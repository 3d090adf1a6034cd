package gui

import "github.com/LagMeester4000/LagGui-sub000/font"

// Font is what the GUI needs from a glyph atlas.
// *font.Atlas implements it; tests inject simple monospace fonts.
//
// Glyph returns false for runes outside the atlas, together with a fallback glyph
// that is still drawn so missing characters stay visible.
type Font interface {
	Glyph(r rune) (font.Glyph, bool)
	TextWidth(text string, spacing float32) float32
	Height() float32
	TextureID() uint32
}

// fontFor returns the box font, the context font, or the built-in atlas.
func (ctx *Context) fontFor(b *Box) Font {
	if b != nil && b.Font != nil {
		return b.Font
	}
	if ctx.font != nil {
		return ctx.font
	}
	return font.Default()
}

// MeasureText returns the size of text in the context font.
func (ctx *Context) MeasureText(text string) Vec2 {
	f := ctx.fontFor(nil)
	return Vec2{X: f.TextWidth(text, ctx.style.TextSpacing), Y: f.Height()}
}

// LineHeight returns the height of one line of text in the context font.
func (ctx *Context) LineHeight() float32 {
	return ctx.fontFor(nil).Height()
}

// SetFont replaces the context font. nil selects the built-in atlas.
func (ctx *Context) SetFont(f Font) {
	ctx.font = f
}
