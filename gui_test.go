package gui_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	gui "github.com/LagMeester4000/LagGui-sub000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRenderer counts frames and can fail on demand.
type mockRenderer struct {
	renderCalls int
	commands    int
	width       int
	err         error
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	m.commands = len(dl.CmdBuffer)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) { m.width = width }

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
	require.NotNil(t, ctx)
	ctx.Panel("Hello", gui.Rect{X: 20, Y: 20, W: 300, H: 200}, gui.PanelDefault)(func() {
		ctx.Label("Hello World")
		ctx.LabelColored("Colored", gui.ColorYellow)
		ctx.Button("Click")
	})
	require.NoError(t, ui.End())

	assert.Equal(t, 1, renderer.renderCalls)
	assert.NotZero(t, renderer.commands)
	assert.Equal(t, gui.DarkStyle(), ui.Style())
}

func TestRenderErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	ui := gui.New(&mockRenderer{err: boom})
	ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	assert.ErrorIs(t, ui.End(), boom)
}

func TestNilRenderer(t *testing.T) {
	ui := gui.New(nil)
	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("P", gui.Rect{W: 100, H: 100}, 0)(func() { ctx.Label("x") })
	assert.NoError(t, ui.End())
	ui.Resize(10, 10)
}

func TestResizeReachesRenderer(t *testing.T) {
	renderer := &mockRenderer{}
	gui.New(renderer).Resize(1280, 720)
	assert.Equal(t, 1280, renderer.width)
}

func TestDoubleBeginPanics(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		var ue *gui.UsageError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, gui.ErrFrameOrder, ue.Kind)
		assert.Contains(t, ue.File, "gui_test.go", "usage errors point at the caller")
	}()
	ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
}

func TestTextfOutlivesItsFrame(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	s := ctx.Textf("frame %d", 1)
	require.NoError(t, ui.End())

	ctx = ui.Begin(input, gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Textf("frame %d", 2)
	assert.Equal(t, "frame 1", s)
	assert.NotZero(t, ctx.PrevTempArena().Used())
	require.NoError(t, ui.End())
}

func TestWithLoggerReceivesDebugLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ui := gui.New(&mockRenderer{}, gui.WithLogger(logger))

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Panel("Logged", gui.Rect{W: 100, H: 100}, 0)(func() {})
	require.NoError(t, ui.End())

	assert.Same(t, logger, ui.Context().Logger())
	assert.Contains(t, buf.String(), "panel created")
	assert.Contains(t, buf.String(), "name=Logged")
}

func TestWithConfigSetsCapacities(t *testing.T) {
	cfg := gui.DefaultConfig()
	cfg.MaxPanels = 3
	ui := gui.New(&mockRenderer{}, gui.WithConfig(cfg), gui.WithStyle(gui.LightStyle()))
	assert.Equal(t, 3, ui.Context().Config().MaxPanels)
	assert.Equal(t, gui.LightStyle(), ui.Style())
}

func TestStyleStack(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Context()
	base := ctx.Style()

	ctx.PushStyle(gui.LightStyle())
	assert.Equal(t, gui.LightStyle(), ctx.Style())
	ctx.PopStyle()
	assert.Equal(t, base, ctx.Style())
	ctx.PopStyle()
	assert.Equal(t, base, ctx.Style())
}
