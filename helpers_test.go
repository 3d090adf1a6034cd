package gui

import (
	"errors"
	"testing"

	"github.com/LagMeester4000/LagGui-sub000/font"
	"github.com/stretchr/testify/require"
)

// testFont is a monospace font: every rune advances 8px and lines are 10px tall.
type testFont struct{}

func (testFont) Glyph(r rune) (font.Glyph, bool) {
	return font.Glyph{W: 8, H: 10, AdvanceX: 8, U1: 1, V1: 1}, r >= 32 && r < 127
}

func (testFont) TextWidth(text string, spacing float32) float32 {
	n := float32(len([]rune(text)))
	if n == 0 {
		return 0
	}
	return n*8 + (n-1)*spacing
}

func (testFont) Height() float32   { return 10 }
func (testFont) TextureID() uint32 { return 7 }

// recordingRenderer keeps the shape of the last rendered DrawList.
type recordingRenderer struct {
	renders  int
	cmds     int
	vertices int
	textured int
}

func (r *recordingRenderer) Render(dl *DrawList) error {
	r.renders++
	r.cmds = len(dl.CmdBuffer)
	r.vertices = len(dl.VtxBuffer)
	r.textured = 0
	for _, c := range dl.CmdBuffer {
		if c.TextureID != 0 {
			r.textured++
		}
	}
	return nil
}

func (r *recordingRenderer) Resize(int, int) {}

// testStyle removes padding and spacing so expected rects are easy to compute.
func testStyle() Style {
	s := DefaultStyle()
	s.PanelPadding = 0
	s.ItemSpacing = 0
	s.ButtonPadding = 0
	return s
}

type harness struct {
	t   *testing.T
	gui *GUI
	in  *InputState
	r   *recordingRenderer
}

func newHarness(t *testing.T, opts ...func(*Config)) *harness {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Style = testStyle()
	cfg.Snap.Enabled = false
	for _, o := range opts {
		o(&cfg)
	}
	r := &recordingRenderer{}
	return &harness{
		t:   t,
		gui: New(r, WithConfig(cfg), WithFont(testFont{})),
		in:  NewInputState(),
		r:   r,
	}
}

func (h *harness) ctx() *Context { return h.gui.Context() }

// frame runs one full frame and clears the per-frame input edges afterwards.
func (h *harness) frame(build func(ctx *Context)) {
	h.t.Helper()
	ctx := h.gui.Begin(h.in, Vec2{800, 600}, 1.0/60)
	build(ctx)
	require.NoError(h.t, h.gui.End())
	h.in.Reset()
}

// frames runs build n times.
func (h *harness) frames(n int, build func(ctx *Context)) {
	h.t.Helper()
	for range n {
		h.frame(build)
	}
}

// inPanel wraps build in a chrome-less panel covering rect.
func inPanel(name string, rect Rect, build func(ctx *Context)) func(ctx *Context) {
	return func(ctx *Context) {
		ctx.Panel(name, rect, 0)(func() { build(ctx) })
	}
}

// requireUsagePanic runs fn and requires it to panic with a UsageError of kind.
func requireUsagePanic(t *testing.T, kind UsageErrorKind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		v := recover()
		require.NotNil(t, v, "expected a %s panic", kind)
		err, ok := v.(error)
		require.True(t, ok, "panic value %v is not an error", v)
		var ue *UsageError
		require.True(t, errors.As(err, &ue), "panic value %v is not a UsageError", v)
		require.Equal(t, kind, ue.Kind, ue.Error())
	}()
	fn()
}
