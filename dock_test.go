package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submit builds each named panel once with the given flags and no content.
func submit(h *harness, flags map[string]PanelFlags, names ...string) {
	h.frame(func(ctx *Context) {
		for _, n := range names {
			ctx.Panel(n, panelRect, flags[n])(func() {})
		}
	})
}

func TestDockSplitsParentWidth(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable, "B": PanelDockable}
	submit(h, flags, "Main", "A", "B")
	ctx := h.ctx()

	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.25))
	require.True(t, ctx.DockPanel("B", "Main", DockRight, 0.75))
	submit(h, flags, "Main", "A", "B")

	a, b := ctx.PanelByName("A"), ctx.PanelByName("B")
	assert.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 300}, a.Rect)
	assert.Equal(t, Rect{X: 100, Y: 0, W: 300, H: 300}, b.Rect)
	assert.Equal(t, a.Rect.X+a.Rect.W, b.Rect.X, "dock children are contiguous")
	assert.Equal(t, []string{"A", "B"}, ctx.DockChildren("Main"))
	assert.Equal(t, []string{"Main"}, ctx.PanelOrder())
	assert.True(t, a.Docked())
	assert.Equal(t, "right", a.DockDir.String())
}

func TestDockRightAndDown(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable, "C": PanelDockable}
	submit(h, flags, "Main", "A", "C")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.25))
	require.True(t, ctx.DockPanel("C", "Main", DockDown, 0.5))

	var root Rect
	h.frame(func(ctx *Context) {
		inPanel("Main", panelRect, func(ctx *Context) {
			root = ctx.CurrentBox().Rect
		})(ctx)
	})
	assert.Equal(t, Rect{X: 300, Y: 0, W: 100, H: 300}, ctx.PanelByName("A").Rect)
	assert.Equal(t, Rect{X: 0, Y: 150, W: 300, H: 150}, ctx.PanelByName("C").Rect)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 300, H: 150}, root)
	assert.Equal(t, "down", DockDown.String())
}

func TestUndockRedistributesAndMovesToFront(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable, "B": PanelDockable}
	submit(h, flags, "Main", "A", "B")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.25))
	require.True(t, ctx.DockPanel("B", "Main", DockRight, 0.75))

	ctx.UndockPanel("B")
	b := ctx.PanelByName("B")
	assert.False(t, b.Docked())
	assert.Equal(t, []string{"Main", "B"}, ctx.PanelOrder())
	assert.Equal(t, []string{"A"}, ctx.DockChildren("Main"))

	a := ctx.PanelByName("A")
	assert.Equal(t, float32(1), a.DockSize)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 400, H: 300}, a.Rect)

	ctx.UndockPanel("B") // no-op on a top-level panel
	assert.Equal(t, []string{"Main", "B"}, ctx.PanelOrder())
}

func TestUndockLastChildRestoresParentArea(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable}
	submit(h, flags, "Main", "A")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.5))
	submit(h, flags, "Main", "A")
	assert.Equal(t, float32(200), ctx.PanelByName("Main").Content.W)

	ctx.UndockPanel("A")
	submit(h, flags, "Main", "A")
	assert.Equal(t, panelRect, ctx.PanelByName("Main").Content)
	assert.Nil(t, ctx.DockChildren("Main"))
}

func TestDockReplaceWhenOnePromotesSurvivor(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{
		"Split": PanelDockReplaceWhenOne,
		"A":     PanelDockable,
		"B":     PanelDockable,
		"G":     PanelDockable,
	}
	submit(h, flags, "Other", "Split", "A", "B", "G")
	ctx := h.ctx()
	split := ctx.PanelByName("Split")
	split.Rect = Rect{X: 50, Y: 60, W: 400, H: 200}
	require.True(t, ctx.DockPanel("A", "Split", DockRight, 0.5))
	require.True(t, ctx.DockPanel("B", "Split", DockRight, 0.5))
	require.True(t, ctx.DockPanel("G", "A", DockDown, 0.5))

	ctx.UndockPanel("B")

	a := ctx.PanelByName("A")
	assert.False(t, a.Docked())
	assert.Equal(t, Rect{X: 50, Y: 60, W: 400, H: 200}, a.Rect)
	assert.True(t, split.Closed())
	assert.Equal(t, []string{"Other", "A", "B"}, ctx.PanelOrder())
	assert.Equal(t, []string{"G"}, ctx.DockChildren("A"), "the survivor keeps its own dock children")
	assert.Equal(t, Rect{X: 50, Y: 160, W: 400, H: 100}, ctx.PanelByName("G").Rect)

	h.frame(func(ctx *Context) {
		assert.False(t, ctx.BeginPanel("Split", panelRect, flags["Split"]))
	})
}

func TestDockReplaceWhenOnePromotesIntoGrandparent(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{
		"E": PanelDockable,
		"B": PanelDockable | PanelDockReplaceWhenOne,
		"C": PanelDockable,
		"D": PanelDockable,
	}
	submit(h, flags, "A", "E", "B", "C", "D")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("E", "A", DockRight, 0.2))
	require.True(t, ctx.DockPanel("B", "A", DockRight, 0.5))
	require.True(t, ctx.DockPanel("C", "B", DockRight, 0.5))
	require.True(t, ctx.DockPanel("D", "B", DockDown, 0.5))

	ctx.UndockPanel("D")

	c := ctx.PanelByName("C")
	assert.Equal(t, []string{"E", "C"}, ctx.DockChildren("A"))
	assert.Empty(t, ctx.DockChildren("B"))
	assert.True(t, ctx.PanelByName("B").Closed())
	assert.Equal(t, DockRight, c.DockDir)
	assert.Equal(t, float32(0.5), c.DockSize)
	assertRectNear(t, Rect{X: 200, Y: 0, W: 200, H: 300}, c.Rect)
	assert.Equal(t, []string{"A", "D"}, ctx.PanelOrder())

	h.frame(func(ctx *Context) {
		for _, n := range []string{"A", "E", "C"} {
			ctx.Panel(n, panelRect, flags[n])(func() {})
		}
	})
	assertRectNear(t, Rect{X: 200, Y: 0, W: 200, H: 300}, c.Rect)
}

func assertRectNear(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-3, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-3, "Y")
	assert.InDelta(t, want.W, got.W, 1e-3, "W")
	assert.InDelta(t, want.H, got.H, 1e-3, "H")
}

func TestDockRefusals(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"Fixed": 0, "NoKids": PanelNoDockChildren, "A": PanelDockable}
	submit(h, flags, "Main", "Fixed", "NoKids", "A")
	ctx := h.ctx()

	assert.False(t, ctx.DockPanel("Fixed", "Main", DockRight, 0.5), "child is not dockable")
	assert.False(t, ctx.DockPanel("A", "NoKids", DockRight, 0.5), "parent refuses dock children")
	assert.False(t, ctx.DockPanel("A", "Missing", DockRight, 0.5))
	assert.False(t, ctx.DockPanel("Missing", "Main", DockRight, 0.5))
	assert.False(t, ctx.PanelByName("A").Docked())
}

func TestDockAlreadyLinked(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"Main": PanelDockable, "A": PanelDockable}
	submit(h, flags, "Main", "Other", "A")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.5))

	requireUsagePanic(t, ErrAlreadyLinked, func() {
		ctx.DockPanel("A", "Other", DockRight, 0.5)
	})
	requireUsagePanic(t, ErrAlreadyLinked, func() {
		ctx.DockPanel("Main", "A", DockDown, 0.5)
	})
}

func TestDockSizeIsClamped(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable}
	submit(h, flags, "Main", "A")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockDown, 3))
	assert.Equal(t, float32(1), ctx.PanelByName("A").DockSize)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 400, H: 300}, ctx.PanelByName("A").Rect)
}

func TestClosingDockedPanelUndocksIt(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable}
	submit(h, flags, "Main", "A")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.5))

	ctx.ClosePanel("A")
	a := ctx.PanelByName("A")
	assert.True(t, a.Closed())
	assert.False(t, a.Docked())
	assert.Nil(t, ctx.DockChildren("Main"))
}

func TestDestroyParentReleasesDockChildren(t *testing.T) {
	h := newHarness(t)
	flags := map[string]PanelFlags{"A": PanelDockable}
	submit(h, flags, "Main", "A")
	ctx := h.ctx()
	require.True(t, ctx.DockPanel("A", "Main", DockRight, 0.5))

	ctx.DestroyPanel("Main")
	assert.Nil(t, ctx.PanelByName("Main"))
	assert.False(t, ctx.PanelByName("A").Docked())
	assert.Equal(t, []string{"A"}, ctx.PanelOrder())
}
