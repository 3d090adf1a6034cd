package gui

import (
	"log/slog"

	"github.com/LagMeester4000/LagGui-sub000/arena"
)

// Context holds all state of one GUI: the panel registry, the per-frame box
// tree and the input routing state. It is threaded explicitly through every
// call; there is no global current context.
type Context struct {
	// Styling
	style      Style
	styleStack []Style
	font       Font

	cfg Config
	log *slog.Logger

	// Input (read-only during frame)
	Input *InputState

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32
	inFrame    bool

	// Per-frame memory
	temp     *arena.DoubleBuffer
	boxes    *arena.Pool[Box]
	boxStack []arena.Handle

	// Geometry by box ID, this frame and last frame
	prevGeom, curGeom map[ID]geom

	// IDs
	idStack []ID

	// Panel registry
	panels     *arena.Pool[Panel]
	panelFree  PanelHandle
	panelByID  map[ID]PanelHandle
	orderFirst PanelHandle // backmost
	orderLast  PanelHandle // frontmost
	panelStack []panelFrame

	// Retained entries shared by every panel's table
	retained     *arena.Pool[RetainedData]
	retainedFree arena.Handle

	// Input routing
	hoverPanel       PanelHandle
	hoverID          ID
	nextHoverID      ID
	activeID         ID
	activeFrame      uint64
	activeSeen       bool
	dragOrigin       Vec2
	mousePrev        Vec2
	mouseDelta       Vec2
	scrollTarget     ID
	nextScrollTarget ID
	wantKeyboard     bool

	snapGuides []SnapGuide

	// Input capture flags (output from GUI to application)
	WantCaptureMouse    bool // pointer is over a panel or an element holds it
	WantCaptureKeyboard bool // a widget claimed the keyboard last frame
}

// NewContext creates a context with cfg's capacities.
func NewContext(cfg Config) *Context {
	ctx := &Context{
		style:      cfg.Style,
		styleStack: make([]Style, 0, 8),
		cfg:        cfg,
		log:        guiLogger,
		temp:       arena.NewDoubleBuffer("temp", cfg.TempArenaSize),
		boxes:      arena.NewPool[Box]("boxes", cfg.MaxBoxes),
		boxStack:   make([]arena.Handle, 0, 32),
		prevGeom:   make(map[ID]geom, 256),
		curGeom:    make(map[ID]geom, 256),
		idStack:    make([]ID, 0, cfg.MaxIDDepth),
		panels:     arena.NewPool[Panel]("panels", cfg.MaxPanels),
		panelByID:  make(map[ID]PanelHandle, cfg.MaxPanels),
		panelStack: make([]panelFrame, 0, cfg.MaxPanelDepth),
		retained:   arena.NewPool[RetainedData]("retained", cfg.MaxRetained),
	}
	return ctx
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Config returns the capacities the context was built with.
func (ctx *Context) Config() Config { return ctx.cfg }

// Logger returns the context logger.
func (ctx *Context) Logger() *slog.Logger { return ctx.log }

// Textf formats into the frame's temp arena. The string stays valid for this
// frame and the next one, so it can be stored on a box and read back one frame later.
func (ctx *Context) Textf(format string, args ...any) string {
	return ctx.temp.Current().Sprintf(format, args...)
}

// TempArena returns the temp arena of the frame being built.
func (ctx *Context) TempArena() *arena.Arena { return ctx.temp.Current() }

// PrevTempArena returns last frame's temp arena, still readable this frame.
func (ctx *Context) PrevTempArena() *arena.Arena { return ctx.temp.Previous() }

// SnapGuides returns the guides of the panel drag that snapped this frame.
func (ctx *Context) SnapGuides() []SnapGuide { return ctx.snapGuides }

func (ctx *Context) requireFrame(op string) {
	if !ctx.inFrame {
		ctx.fatalf(ErrFrameOrder, "%s outside GUI.Begin/GUI.End", op)
	}
}

// beginFrame resets per-frame memory, swaps geometry and resolves input routing.
func (ctx *Context) beginFrame(input *InputState, displaySize Vec2, dt float32) {
	if ctx.inFrame {
		ctx.fatalf(ErrFrameOrder, "Begin called twice without End")
	}
	ctx.inFrame = true
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = dt

	ctx.temp.Swap()
	ctx.boxes.Reset()
	ctx.boxStack = ctx.boxStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.prevGeom, ctx.curGeom = ctx.curGeom, ctx.prevGeom
	clear(ctx.curGeom)
	ctx.snapGuides = ctx.snapGuides[:0]

	ctx.layoutDocks()
	ctx.beginInput()
}

// endFrame checks that every scope opened this frame was closed.
func (ctx *Context) endFrame() {
	if !ctx.inFrame {
		ctx.fatalf(ErrFrameOrder, "End called without Begin")
	}
	if n := len(ctx.panelStack); n > 0 {
		ctx.fatalf(ErrFrameOrder, "frame ended with %d open panels", n)
	}
	if n := len(ctx.idStack); n > 0 {
		ctx.fatalf(ErrFrameOrder, "frame ended with %d unpopped IDs", n)
	}
	ctx.inFrame = false
}
