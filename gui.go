package gui

import "log/slog"

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// GUI drives frames of one Context and hands the result to a Renderer.
type GUI struct {
	renderer Renderer
	cfg      Config
	logger   *slog.Logger
	font     Font
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.cfg.Style = style }
}

// WithConfig replaces the capacities and style. Apply WithStyle after it to
// override only the style.
func WithConfig(cfg Config) GUIOption {
	return func(g *GUI) { g.cfg = cfg }
}

// WithLogger routes the GUI's logs to l instead of the package logger.
func WithLogger(l *slog.Logger) GUIOption {
	return func(g *GUI) { g.logger = l }
}

// WithFont sets the font used when a box carries none.
func WithFont(f Font) GUIOption {
	return func(g *GUI) { g.font = f }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		cfg:      DefaultConfig(),
		logger:   guiLogger,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.ctx = NewContext(g.cfg)
	g.ctx.log = g.logger
	g.ctx.font = g.font
	return g
}

// Begin starts a new frame and returns the GUI context.
// input must already hold this frame's events.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	g.ctx.beginFrame(input, displaySize, deltaTime)
	return g.ctx
}

// End finishes the frame: it checks scope balance, paints every panel in
// z-order into a pooled DrawList and renders it.
func (g *GUI) End() error {
	ctx := g.ctx
	ctx.endFrame()

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	ctx.renderPanels(dl)
	dl.Finalize()

	if g.renderer == nil {
		return nil
	}
	return g.renderer.Render(dl)
}

// Context returns the GUI context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.ctx.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.ctx.SetStyle(style)
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
