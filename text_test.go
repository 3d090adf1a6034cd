package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapTextByWord(t *testing.T) {
	h := newHarness(t)
	ctx := h.ctx()

	// 8px per rune: "aaa bbb" is 56px wide.
	assert.Equal(t, []string{"aaa bbb", "cc"}, ctx.WrapText("aaa bbb cc", 56, WrapWord))
	assert.Equal(t, []string{"aaa", "bbb"}, ctx.WrapText("aaa\nbbb", 200, WrapWord))
	assert.Equal(t, []string{"abcdefgh"}, ctx.WrapText("abcdefgh", 0, WrapWord))
}

func TestWrapTextBreaksLongWords(t *testing.T) {
	h := newHarness(t)
	lines := h.ctx().WrapText("ab abcdefg", 24, WrapWord)
	assert.Equal(t, []string{"ab", "abc", "def", "g"}, lines)
}

func TestWrapTextByRune(t *testing.T) {
	h := newHarness(t)
	ctx := h.ctx()
	assert.Equal(t, []string{"abc", "def", "g"}, ctx.WrapText("abcdefg", 24, WrapChar))
	assert.Equal(t, []string{"漢字漢", "字"}, ctx.WrapText("漢字漢字", 24, WrapAuto))
}

func TestEllipsize(t *testing.T) {
	h := newHarness(t)
	ctx := h.ctx()

	assert.Equal(t, "short", ctx.Ellipsize("short", 40))
	assert.Equal(t, "abc..", ctx.Ellipsize("abcdefgh", 40))
	assert.Equal(t, ".", ctx.Ellipsize("abcdefgh", 10))
	assert.Equal(t, "", ctx.Ellipsize("abcdefgh", 4))
}

func TestTextWrappedBuildsOneLabelPerLine(t *testing.T) {
	h := newHarness(t)
	var col *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		col = ctx.TextWrapped("aaa bbb cc", 56)
	}))

	require.NotNil(t, col)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 56, H: 20}, col.Rect)
	var lines []string
	h.ctx().Children(col, func(b *Box) { lines = append(lines, b.Text) })
	assert.Equal(t, []string{"aaa bbb", "cc"}, lines)
}
