package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var panelRect = Rect{X: 0, Y: 0, W: 400, H: 300}

func TestLayoutRemainderConservation(t *testing.T) {
	h := newHarness(t)
	var fixed, pct, rem, row *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		row = ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Px(300), Px(50)), 0)
		fixed = ctx.MakeBox("fixed", Sz(Px(50), Pc(1)), 0)
		pct = ctx.MakeBox("pct", Sz(Pc(0.2), Pc(1)), 0)
		rem = ctx.MakeBox("rem", Sz(Rem(1), Pc(1)), 0)
		ctx.LayoutEnd()
	}))

	assert.Equal(t, float32(50), fixed.Rect.W)
	assert.Equal(t, float32(60), pct.Rect.W)
	assert.Equal(t, float32(300-50-60), rem.Rect.W)
	assert.Equal(t, float32(110), rem.Rect.X)
	assert.Equal(t, float32(50), rem.Rect.H)
	assert.Equal(t, row.Rect.X+row.Rect.W, rem.Rect.X+rem.Rect.W)
}

func TestLayoutRemainderClampsAtZero(t *testing.T) {
	h := newHarness(t)
	var rem *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Px(100), Px(20)), 0)
		ctx.MakeBox("a", Sz(Px(80), Px(20)), 0)
		ctx.MakeBox("b", Sz(Pc(0.5), Px(20)), 0)
		rem = ctx.MakeBox("rem", Sz(Rem(1), Px(20)), 0)
		ctx.LayoutEnd()
	}))
	assert.Equal(t, float32(0), rem.Rect.W)
}

func TestLayoutGapsNeverExceedWidth(t *testing.T) {
	h := newHarness(t)
	var row *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		row = ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Px(200), Px(20)), 0).WithGap(10)
		ctx.MakeBox("a", Sz(Px(40), Px(20)), 0)
		ctx.MakeBox("b", Sz(Pc(0.25), Px(20)), 0)
		ctx.MakeBox("c", Sz(Rem(1), Px(20)), 0)
		ctx.LayoutEnd()
	}))

	var sum float32
	var last Rect
	h.ctx().Children(row, func(c *Box) {
		sum += c.Rect.W
		last = c.Rect
	})
	assert.Equal(t, float32(200), sum+2*10)
	assert.Equal(t, row.Rect.X+row.Rect.W, last.X+last.W)
}

func TestLayoutRemainderWeights(t *testing.T) {
	h := newHarness(t)
	var a, b, c, lone *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Px(400), Px(20)), 0)
		a = ctx.MakeBox("a", Sz(Rem(1), Px(20)), 0)
		b = ctx.MakeBox("b", Sz(Rem(3), Px(20)), 0)
		ctx.LayoutEnd()
		ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Px(400), Px(20)), 0)
		c = ctx.MakeBox("c", Sz(Rem(1), Px(20)), 0)
		ctx.LayoutEnd()
		ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Px(400), Px(20)), 0)
		lone = ctx.MakeBox("lone", Sz(Rem(0.5), Px(20)), 0)
		ctx.LayoutEnd()
	}))
	assert.Equal(t, float32(100), a.Rect.W)
	assert.Equal(t, float32(300), b.Rect.W)
	assert.Equal(t, float32(400), c.Rect.W, "a single rem claims all remaining space")
	assert.Equal(t, float32(200), lone.Rect.W)
}

func TestLayoutFitIdempotence(t *testing.T) {
	h := newHarness(t)
	var col, row *Box
	build := inPanel("P", panelRect, func(ctx *Context) {
		col = ctx.LayoutVertical(AlignStart, AlignStart, Sz(Fit(), Fit()), 0).WithPadding(5)
		ctx.MakeBox("a", Sz(Px(10), Px(10)), 0)
		ctx.MakeBox("b", Sz(Px(40), Px(20)), 0)
		ctx.MakeBox("c", Sz(Px(20), Px(30)), 0)
		ctx.LayoutEnd()
		row = ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Fit(), Fit()), 0).WithPadding(5)
		ctx.MakeBox("d", Sz(Px(10), Px(10)), 0)
		ctx.MakeBox("e", Sz(Px(40), Px(20)), 0)
		ctx.LayoutEnd()
	})

	var sizes []Vec2
	for range 3 {
		h.frame(build)
		sizes = append(sizes, col.Rect.Size(), row.Rect.Size())
	}
	assert.Equal(t, Vec2{40 + 10, 60 + 10}, sizes[0])
	assert.Equal(t, Vec2{50 + 10, 20 + 10}, sizes[1])
	for i := 2; i < len(sizes); i += 2 {
		assert.Equal(t, sizes[0], sizes[i])
		assert.Equal(t, sizes[1], sizes[i+1])
	}
}

func TestLayoutEndToEndColumn(t *testing.T) {
	h := newHarness(t)
	var col *Box
	var leaves []*Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		col = ctx.LayoutVertical(AlignStart, AlignStart, Sz(Pc(1), Fit()), 0)
		leaves = leaves[:0]
		for range 3 {
			leaves = append(leaves, ctx.MakeBox("", Sz(Pc(1), Px(30)), 0))
		}
		ctx.LayoutEnd()
	}))

	assert.Equal(t, float32(400), col.Rect.W)
	assert.Equal(t, float32(90), col.Rect.H)
	for i, l := range leaves {
		assert.Equal(t, col.Rect.Y+float32(30*i), l.Rect.Y)
		assert.Equal(t, col.Rect.W, l.Rect.W)
		assert.Equal(t, float32(30), l.Rect.H)
	}
}

func TestLayoutAlignment(t *testing.T) {
	h := newHarness(t)
	var center, end, crossEnd *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		ctx.LayoutVertical(AlignCenter, AlignCenter, Sz(Px(100), Px(100)), 0)
		center = ctx.MakeBox("c", Sz(Px(20), Px(20)), 0)
		ctx.LayoutEnd()
		ctx.LayoutVertical(AlignEnd, AlignEnd, Sz(Px(100), Px(100)), 0)
		end = ctx.MakeBox("e", Sz(Px(20), Px(20)), 0)
		ctx.LayoutEnd()
		ctx.LayoutHorizontal(AlignStart, AlignEnd, Sz(Px(100), Px(50)), 0)
		ctx.MakeBox("spacer", Sz(Rem(1), Px(50)), 0)
		crossEnd = ctx.MakeBox("x", Sz(Px(10), Px(10)), 0)
		ctx.LayoutEnd()
	}))

	assert.Equal(t, Vec2{40, 40}, center.Rect.Min())
	assert.Equal(t, Vec2{80, 180}, end.Rect.Min())
	assert.Equal(t, float32(90), crossEnd.Rect.X)
	assert.Equal(t, float32(200+40), crossEnd.Rect.Y)
}

func TestLayoutTextFitAndPadding(t *testing.T) {
	h := newHarness(t)
	var label *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		label = ctx.MakeBox("t", Sz(Fit(), Fit()), 0).WithText("abcd", ColorWhite).WithPadding(2)
	}))
	assert.Equal(t, Vec2{4*8 + 4, 10 + 4}, label.Rect.Size())
}

func TestLayoutEmptyContainerFitsToPadding(t *testing.T) {
	h := newHarness(t)
	var empty *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		empty = ctx.PushBox("empty", Sz(Fit(), Fit()), 0).WithPadding(6)
		ctx.PopBox()
	}))
	assert.Equal(t, Vec2{12, 12}, empty.Rect.Size())
}

func TestLayoutLeafFitIsFatal(t *testing.T) {
	h := newHarness(t)
	requireUsagePanic(t, ErrLeafFit, func() {
		h.frame(inPanel("P", panelRect, func(ctx *Context) {
			ctx.MakeBox("leaf", Sz(Fit(), Px(10)), 0)
		}))
	})
}

func TestLayoutClipAndScrollOffset(t *testing.T) {
	h := newHarness(t)
	var clip, inner *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		clip = ctx.PushBox("clip", Sz(Px(100), Px(50)), BoxClip)
		clip.Scroll = Vec2{0, 15}
		inner = ctx.MakeBox("inner", Sz(Px(200), Px(200)), 0)
		ctx.PopBox()
	}))

	assert.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 50}, inner.Clip)
	assert.Equal(t, float32(-15), inner.Rect.Y)
	assert.Equal(t, Vec2{200, 200}, clip.ContentSize, "content size ignores the clip")
}

func TestLayoutPreviousFrameGeometry(t *testing.T) {
	h := newHarness(t)
	var b *Box
	build := inPanel("P", panelRect, func(ctx *Context) {
		ctx.MakeBox("spacer", Sz(Px(10), Px(25)), 0)
		b = ctx.MakeBox("b", Sz(Px(40), Px(20)), 0)
	})

	h.frame(build)
	assert.False(t, b.HasPrev)
	first := b.Rect

	h.frame(build)
	require.True(t, b.HasPrev)
	assert.Equal(t, first, b.PrevRect)
	assert.Equal(t, float32(25), b.PrevRect.Y)
}

func TestLayoutAnonymousBoxesKeepGeometryByPosition(t *testing.T) {
	h := newHarness(t)
	var anon *Box
	build := inPanel("P", panelRect, func(ctx *Context) {
		ctx.MakeBox("", Sz(Px(10), Px(10)), 0)
		anon = ctx.MakeBox("", Sz(Px(10), Px(10)), 0)
	})
	h.frame(build)
	id := anon.ID
	h.frame(build)
	assert.Equal(t, id, anon.ID)
	assert.True(t, anon.HasPrev)
}

func TestLayoutRowAndColumnClosures(t *testing.T) {
	h := newHarness(t)
	var a, b *Box
	h.frame(inPanel("P", panelRect, func(ctx *Context) {
		ctx.Row(Sz(Pc(1), Fit()))(func() {
			a = ctx.MakeBox("a", Sz(Px(30), Px(10)), 0)
			b = ctx.MakeBox("b", Sz(Px(30), Px(10)), 0)
		})
	}))
	assert.Equal(t, a.Rect.Y, b.Rect.Y)
	assert.Equal(t, a.Rect.X+30, b.Rect.X)
}

func TestBoxStackUnderflowAtRoot(t *testing.T) {
	h := newHarness(t)
	requireUsagePanic(t, ErrBoxStackUnderflow, func() {
		h.frame(inPanel("P", panelRect, func(ctx *Context) {
			ctx.PopBox()
		}))
	})
}

func TestBoxCapacity(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.MaxBoxes = 3 })
	requireUsagePanic(t, ErrBoxCapacity, func() {
		h.frame(inPanel("P", panelRect, func(ctx *Context) {
			for range 3 {
				ctx.MakeBox("", Sz(Px(1), Px(1)), 0)
			}
		}))
	})
}

func TestUnclosedBoxIsFatalAtEndPanel(t *testing.T) {
	h := newHarness(t)
	requireUsagePanic(t, ErrFrameOrder, func() {
		h.frame(inPanel("P", panelRect, func(ctx *Context) {
			ctx.PushBox("open", Sz(Px(10), Px(10)), 0)
		}))
	})
}

func TestMakeBoxOutsidePanel(t *testing.T) {
	h := newHarness(t)
	requireUsagePanic(t, ErrNoPanel, func() {
		h.frame(func(ctx *Context) {
			ctx.MakeBox("x", Sz(Px(1), Px(1)), 0)
		})
	})
}
