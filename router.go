package gui

// InputResult is what the router reports for one element this frame.
// Widgets are built from it plus their RetainedData.
type InputResult struct {
	Hover    bool // pointer is over the element and nothing else owns it
	Pressed  bool // primary button went down on the element this frame
	Down     bool // element is active and the button is held
	Dragging bool // element is active, drag is enabled and the press was on an earlier frame
	Clicked  bool // released this frame with the pointer still over the element
	Changed  bool // Clicked, or Dragging by a non-zero delta

	DragDelta Vec2 // pointer movement since last frame while dragging
}

func (ctx *Context) mousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{-1e9, -1e9}
	}
	return ctx.Input.MousePos()
}

// HandleElementInput resolves hover, press, drag and click for the element id
// occupying rect. rect is clipped by the current box's clip, and the element
// only sees the pointer when its panel is the one under it.
//
// Hover lags one frame: the last element built over the pointer during frame N
// is the hovered element of frame N+1. Once pressed, the element stays active
// and keeps receiving Down and Dragging until the button is released, wherever
// the pointer goes.
func (ctx *Context) HandleElementInput(rect Rect, id ID, enableDrag bool) InputResult {
	var res InputResult
	in := ctx.Input
	if in == nil || id == 0 {
		return res
	}
	over := ctx.hoverPanel.Valid() && ctx.hoverPanel == ctx.currentPanel() &&
		rect.Intersect(ctx.currentClip()).Contains(ctx.mousePos())

	if over && (ctx.activeID == 0 || ctx.activeID == id) {
		ctx.nextHoverID = id
	}
	res.Hover = over && ctx.hoverID == id && (ctx.activeID == 0 || ctx.activeID == id)

	if res.Hover && ctx.activeID == 0 && in.MouseClicked(MouseButtonLeft) {
		ctx.activeID = id
		ctx.activeFrame = ctx.FrameCount
		ctx.dragOrigin = ctx.mousePos()
		res.Pressed = true
		if guiVerbose() {
			ctx.log.Debug("element pressed", "id", uint32(id), "rect", rect)
		}
	}

	if ctx.activeID == id {
		ctx.activeSeen = true
		switch {
		case in.MouseDown(MouseButtonLeft):
			res.Down = true
			if enableDrag && ctx.activeFrame != ctx.FrameCount {
				res.Dragging = true
				res.DragDelta = ctx.mouseDelta
			}
		default:
			res.Clicked = over
			ctx.activeID = 0
		}
	}
	res.Changed = res.Clicked || (res.Dragging && (res.DragDelta.X != 0 || res.DragDelta.Y != 0))
	return res
}

// currentClip is the clip children of the open container were drawn with last
// frame. It is unbounded while the panel's chrome is handled, and empty inside
// a container that has not been laid out yet.
func (ctx *Context) currentClip() Rect {
	n := len(ctx.panelStack)
	if n == 0 || len(ctx.boxStack) <= ctx.panelStack[n-1].boxBase {
		return infiniteRect
	}
	b := ctx.CurrentBox()
	switch {
	case !b.parent.Valid():
		return b.Clip
	case b.HasPrev:
		return b.PrevClip
	}
	return Rect{}
}

// BoxInput runs HandleElementInput on b's geometry from the previous frame.
// A box on its first frame has no geometry yet and reports nothing.
func (ctx *Context) BoxInput(b *Box, enableDrag bool) InputResult {
	if !b.HasPrev {
		return InputResult{}
	}
	return ctx.HandleElementInput(b.PrevRect.Intersect(b.PrevClip), b.ID, enableDrag)
}

// DragOffset returns the pointer movement since the active element was pressed.
func (ctx *Context) DragOffset() Vec2 {
	if ctx.activeID == 0 {
		return Vec2{}
	}
	return ctx.mousePos().Sub(ctx.dragOrigin)
}

// HoverID returns the hovered element of this frame.
func (ctx *Context) HoverID() ID { return ctx.hoverID }

// ActiveID returns the element holding the pointer, or 0.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// IsActive reports whether id holds the pointer.
func (ctx *Context) IsActive(id ID) bool { return id != 0 && ctx.activeID == id }

// RequestKeyboard claims keyboard input for this frame. The host sees it
// through WantCaptureKeyboard on the next frame.
func (ctx *Context) RequestKeyboard() {
	ctx.wantKeyboard = true
}

// beginInput resolves the frame-level routing state before any panel is built.
func (ctx *Context) beginInput() {
	mouse := ctx.mousePos()
	if ctx.FrameCount > 1 {
		ctx.mouseDelta = mouse.Sub(ctx.mousePrev)
	}
	ctx.mousePrev = mouse

	ctx.hoverID, ctx.nextHoverID = ctx.nextHoverID, 0
	ctx.scrollTarget, ctx.nextScrollTarget = ctx.nextScrollTarget, 0
	if ctx.activeID != 0 && !ctx.activeSeen {
		ctx.log.Debug("releasing active element that was not built", "id", uint32(ctx.activeID))
		ctx.activeID = 0
	}
	ctx.activeSeen = false

	ctx.hoverPanel = ctx.panelAt(mouse)
	if ctx.hoverPanel.Valid() && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.movePanelToFront(ctx.hoverPanel)
	}

	ctx.WantCaptureMouse = ctx.hoverPanel.Valid() || ctx.activeID != 0
	ctx.WantCaptureKeyboard = ctx.wantKeyboard
	ctx.wantKeyboard = false
}

// panelAt returns the frontmost visible panel under p, descending into dock
// trees to the deepest docked panel that contains it.
func (ctx *Context) panelAt(p Vec2) PanelHandle {
	for h := ctx.orderLast; h.Valid(); h = ctx.panelPtr(h).orderPrev {
		pp := ctx.panelPtr(h)
		if ctx.panelVisible(pp) && pp.Rect.Contains(p) {
			return ctx.dockedPanelAt(h, p)
		}
	}
	return 0
}

func (ctx *Context) dockedPanelAt(h PanelHandle, p Vec2) PanelHandle {
	for c := ctx.panelPtr(h).dockFirst; c.Valid(); c = ctx.panelPtr(c).dockNext {
		cp := ctx.panelPtr(c)
		if ctx.panelVisible(cp) && cp.Rect.Contains(p) {
			return ctx.dockedPanelAt(c, p)
		}
	}
	return h
}
