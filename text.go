package gui

import (
	"strings"
	"unicode"
)

// TextWrapMode selects where WrapText may break a line.
type TextWrapMode int

const (
	WrapWord TextWrapMode = iota // break between words
	WrapChar                     // break between any two runes
	WrapAuto                     // WrapChar for CJK text, WrapWord otherwise
)

// WrapText splits text into lines no wider than maxWidth in the context font.
// A single word wider than maxWidth is broken between runes. Explicit newlines
// always break.
func (ctx *Context) WrapText(text string, maxWidth float32, mode TextWrapMode) []string {
	if maxWidth <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		m := mode
		if m == WrapAuto {
			m = WrapWord
			if containsCJK(para) {
				m = WrapChar
			}
		}
		if m == WrapChar {
			lines = ctx.wrapRunes(lines, para, maxWidth)
		} else {
			lines = ctx.wrapWords(lines, para, maxWidth)
		}
	}
	return lines
}

func (ctx *Context) wrapWords(lines []string, text string, maxWidth float32) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return append(lines, "")
	}
	line := ""
	for _, w := range words {
		next := w
		if line != "" {
			next = line + " " + w
		}
		if ctx.MeasureText(next).X <= maxWidth {
			line = next
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		if ctx.MeasureText(w).X > maxWidth {
			broken := ctx.wrapRunes(nil, w, maxWidth)
			lines = append(lines, broken[:len(broken)-1]...)
			line = broken[len(broken)-1]
			continue
		}
		line = w
	}
	return append(lines, line)
}

func (ctx *Context) wrapRunes(lines []string, text string, maxWidth float32) []string {
	runes := []rune(text)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i-start > 1 && ctx.MeasureText(string(runes[start:i])).X > maxWidth {
			lines = append(lines, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return append(lines, string(runes[start:]))
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul, unicode.Bopomofo, unicode.Yi) {
			return true
		}
	}
	return false
}

// Ellipsize shortens text to fit maxWidth, ending it with "..". It falls back
// to a single "." and then to "" when even that does not fit.
func (ctx *Context) Ellipsize(text string, maxWidth float32) string {
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	for _, suffix := range []string{"..", "."} {
		if s, ok := ctx.truncate(text, maxWidth, suffix); ok {
			return s
		}
	}
	return ""
}

func (ctx *Context) truncate(text string, maxWidth float32, suffix string) (string, bool) {
	target := maxWidth - ctx.MeasureText(suffix).X
	if target < 0 {
		return "", false
	}
	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		if ctx.MeasureText(string(runes[:n])).X <= target {
			return string(runes[:n]) + suffix, true
		}
	}
	return "", false
}

// TextWrapped lays out text as a column of lines wrapped at width.
//
//	ctx.TextWrapped(description, 240)
func (ctx *Context) TextWrapped(text string, width float32) *Box {
	col := ctx.LayoutVertical(AlignStart, AlignStart, Sz(Px(width), Fit()), 0)
	for _, line := range ctx.WrapText(text, width, WrapAuto) {
		ctx.Label(line)
	}
	ctx.LayoutEnd()
	return col
}
