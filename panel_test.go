package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelOrderFollowsCreation(t *testing.T) {
	h := newHarness(t)
	submit(h, nil, "A", "B", "C")
	ctx := h.ctx()
	assert.Equal(t, []string{"A", "B", "C"}, ctx.PanelOrder())

	ctx.MovePanelToFront("A")
	assert.Equal(t, []string{"B", "C", "A"}, ctx.PanelOrder())
	ctx.MovePanelToFront("A")
	assert.Equal(t, []string{"B", "C", "A"}, ctx.PanelOrder())
	ctx.MovePanelToFront("missing")
	assert.Equal(t, []string{"B", "C", "A"}, ctx.PanelOrder())
}

func TestPanelIdentityAcrossFrames(t *testing.T) {
	h := newHarness(t)
	var first, second *Panel
	h.frame(inPanel("P", panelRect, func(ctx *Context) { first = ctx.CurrentPanel() }))
	h.frame(inPanel("P", panelRect, func(ctx *Context) { second = ctx.CurrentPanel() }))
	assert.Same(t, first, second)
	assert.Equal(t, hashString(rootSeed, "P"), first.ID)
	assert.Equal(t, "P", first.Name)
	assert.Nil(t, h.ctx().CurrentPanel())
}

func TestFixedPanelTakesRectEveryFrame(t *testing.T) {
	h := newHarness(t)
	h.frame(inPanel("P", panelRect, func(*Context) {}))
	moved := Rect{X: 10, Y: 20, W: 100, H: 50}
	h.frame(inPanel("P", moved, func(*Context) {}))
	assert.Equal(t, moved, h.ctx().PanelByName("P").Rect)
}

func TestMovablePanelKeepsItsRect(t *testing.T) {
	h := newHarness(t)
	build := func(r Rect) func(*Context) {
		return func(ctx *Context) { ctx.Panel("P", r, PanelMovable)(func() {}) }
	}
	h.frame(build(panelRect))
	h.frame(build(Rect{X: 10, Y: 20, W: 100, H: 50}))
	assert.Equal(t, panelRect, h.ctx().PanelByName("P").Rect)
}

func TestPanelChromeContentRect(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Style.PanelPadding = 5 })
	var root Rect
	h.frame(func(ctx *Context) {
		ctx.Panel("P", Rect{X: 100, Y: 100, W: 200, H: 150}, PanelTitleBar)(func() {
			root = ctx.CurrentBox().Rect
		})
	})
	th := DefaultStyle().TitleBarHeight
	assert.Equal(t, Rect{X: 105, Y: 100 + th + 5, W: 190, H: 150 - th - 10}, root)
}

func TestTitleBarDragMovesPanel(t *testing.T) {
	h := newHarness(t)
	start := Rect{X: 100, Y: 100, W: 200, H: 150}
	build := func(ctx *Context) {
		ctx.Panel("P", start, PanelTitleBar|PanelMovable)(func() {})
	}
	h.in.SetMousePos(110, 105)
	h.frames(2, build)

	h.in.SetMouseButton(MouseButtonLeft, true)
	h.frame(build)
	h.in.SetMousePos(160, 155)
	h.frame(build)

	p := h.ctx().PanelByName("P")
	assert.Equal(t, Rect{X: 150, Y: 150, W: 200, H: 150}, p.Rect)

	h.in.SetMouseButton(MouseButtonLeft, false)
	h.frame(build)
	assert.Equal(t, Rect{X: 150, Y: 150, W: 200, H: 150}, p.Rect)
}

func TestTitleBarDragSnapsToDisplayEdge(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.Snap = DefaultSnapConfig() })
	build := func(ctx *Context) {
		ctx.Panel("P", Rect{X: 100, Y: 100, W: 200, H: 150}, PanelTitleBar|PanelMovable)(func() {})
	}
	h.in.SetMousePos(110, 105)
	h.frames(2, build)
	h.in.SetMouseButton(MouseButtonLeft, true)
	h.frame(build)

	h.in.SetMousePos(14, 105)
	ctx := h.gui.Begin(h.in, Vec2{800, 600}, 1.0/60)
	build(ctx)
	guides := append([]SnapGuide(nil), ctx.SnapGuides()...)
	require.NoError(t, h.gui.End())

	assert.Equal(t, float32(0), h.ctx().PanelByName("P").Rect.X)
	require.NotEmpty(t, guides)
	assert.Equal(t, Vec2{0, 0}, guides[0].From)
	assert.False(t, guides[0].Horizontal)
}

func TestGripResizesPanel(t *testing.T) {
	h := newHarness(t)
	build := func(ctx *Context) {
		ctx.Panel("P", Rect{X: 100, Y: 100, W: 200, H: 150}, PanelResizable)(func() {})
	}
	h.in.SetMousePos(295, 245)
	h.frames(2, build)
	h.in.SetMouseButton(MouseButtonLeft, true)
	h.frame(build)
	h.in.SetMousePos(315, 255)
	h.frame(build)

	assert.Equal(t, Rect{X: 100, Y: 100, W: 220, H: 160}, h.ctx().PanelByName("P").Rect)

	h.in.SetMousePos(-500, -500)
	h.frame(build)
	assert.Equal(t, DefaultStyle().MinPanelSize, h.ctx().PanelByName("P").Rect.Size())
}

func TestGripWinsOverContentUnderIt(t *testing.T) {
	h := newHarness(t)
	clicked := false
	build := func(ctx *Context) {
		ctx.Panel("P", Rect{X: 100, Y: 100, W: 200, H: 150}, PanelResizable)(func() {
			if ctx.ButtonSized("fill", Sz(Pc(1), Pc(1))) {
				clicked = true
			}
		})
	}
	h.in.SetMousePos(295, 245)
	h.frames(3, build)
	h.in.SetMouseButton(MouseButtonLeft, true)
	h.frame(build)
	h.in.SetMousePos(315, 255)
	h.frame(build)
	h.in.SetMouseButton(MouseButtonLeft, false)
	h.frame(build)

	assert.Equal(t, Rect{X: 100, Y: 100, W: 220, H: 160}, h.ctx().PanelByName("P").Rect)
	assert.False(t, clicked)
}

func TestAutoResizePanelFitsContent(t *testing.T) {
	h := newHarness(t)
	build := func(ctx *Context) {
		ctx.Panel("P", panelRect, PanelAutoResizeX|PanelAutoResizeY)(func() {
			ctx.Label("abcd")
		})
	}
	h.frame(build)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 32, H: 10}, h.ctx().PanelByName("P").Rect)
}

func TestClosedPanelIsSkipped(t *testing.T) {
	h := newHarness(t)
	submit(h, nil, "A", "B")
	ctx := h.ctx()
	ctx.ClosePanel("A")
	ran := false
	h.frame(func(ctx *Context) {
		ctx.Panel("A", panelRect, 0)(func() { ran = true })
	})
	assert.False(t, ran)
	assert.True(t, ctx.PanelByName("A").Closed())

	ctx.OpenPanel("A")
	h.frame(func(ctx *Context) {
		ctx.Panel("A", panelRect, 0)(func() { ran = true })
	})
	assert.True(t, ran)
	assert.Equal(t, []string{"B", "A"}, ctx.PanelOrder())
}

func TestDestroyPanelFreesSlot(t *testing.T) {
	h := newHarness(t)
	submit(h, nil, "A", "B")
	ctx := h.ctx()
	used := ctx.panels.Len()

	ctx.DestroyPanel("A")
	assert.Nil(t, ctx.PanelByName("A"))
	assert.Equal(t, []string{"B"}, ctx.PanelOrder())
	ctx.DestroyPanel("A")

	submit(h, nil, "C")
	assert.Equal(t, used, ctx.panels.Len())
	assert.Equal(t, []string{"B", "C"}, ctx.PanelOrder())
}

func TestDestroyPanelDropsPointerOwnership(t *testing.T) {
	h := newHarness(t)
	h.in.SetMousePos(10, 10)
	submit(h, nil, "A")
	submit(h, nil, "A")

	h.frame(func(ctx *Context) {
		require.True(t, ctx.hoverPanel.Valid())
		ctx.DestroyPanel("A")
		assert.False(t, ctx.hoverPanel.Valid())

		// C reuses A's slot and must not see the pointer until next frame.
		ctx.Panel("C", panelRect, 0)(func() {
			ctx.HandleElementInput(Rect{W: 50, H: 50}, ctx.GetID("x"), false)
		})
		assert.Equal(t, ID(0), ctx.nextHoverID)
	})
}

func TestDestroyOpenPanelIsFatal(t *testing.T) {
	h := newHarness(t)
	requireUsagePanic(t, ErrFrameOrder, func() {
		h.frame(inPanel("P", panelRect, func(ctx *Context) {
			ctx.DestroyPanel("P")
		}))
	})
}

func TestNestedPanels(t *testing.T) {
	h := newHarness(t)
	var inner, outer *Box
	h.frame(inPanel("Outer", panelRect, func(ctx *Context) {
		outer = ctx.MakeBox("x", Sz(Px(10), Px(10)), 0)
		inPanel("Inner", Rect{X: 500, Y: 0, W: 100, H: 100}, func(ctx *Context) {
			inner = ctx.MakeBox("x", Sz(Px(10), Px(10)), 0)
		})(ctx)
		assert.Equal(t, "Outer", ctx.CurrentPanel().Name)
	}))
	assert.Equal(t, float32(500), inner.Rect.X)
	assert.Equal(t, float32(0), outer.Rect.X)
	assert.NotEqual(t, inner.ID, outer.ID)
}

func TestPanelStackLimits(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.MaxPanelDepth = 2 })
	requireUsagePanic(t, ErrPanelStackOverflow, func() {
		h.frame(func(ctx *Context) {
			ctx.BeginPanel("A", panelRect, 0)
			ctx.BeginPanel("B", panelRect, 0)
			ctx.BeginPanel("C", panelRect, 0)
		})
	})

	h = newHarness(t)
	requireUsagePanic(t, ErrPanelStackUnderflow, func() {
		h.frame(func(ctx *Context) { ctx.EndPanel() })
	})

	h = newHarness(t)
	requireUsagePanic(t, ErrFrameOrder, func() {
		h.frame(func(ctx *Context) { ctx.BeginPanel("A", panelRect, 0) })
	})
}

func TestPanelCapacity(t *testing.T) {
	h := newHarness(t, func(c *Config) { c.MaxPanels = 2 })
	requireUsagePanic(t, ErrPanelCapacity, func() {
		submit(h, nil, "A", "B", "C")
	})
}

func TestBeginPanelOutsideFrame(t *testing.T) {
	h := newHarness(t)
	requireUsagePanic(t, ErrFrameOrder, func() {
		h.ctx().BeginPanel("A", panelRect, 0)
	})
}

func TestRenderSkipsPanelsNotBuilt(t *testing.T) {
	h := newHarness(t)
	submit(h, nil, "A", "B")
	withBoth := h.r.vertices
	require.NotZero(t, withBoth)

	submit(h, nil, "A")
	assert.Less(t, h.r.vertices, withBoth)
	assert.Equal(t, 2, h.r.renders)
}
