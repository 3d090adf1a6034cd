package gui

import "github.com/chewxy/math32"

// BeginScroll pushes a clipping container whose children are offset by a
// persisted scroll position. The wheel scrolls the innermost scroll box under
// the pointer and the scrollbar grab can be dragged. The offset is clamped
// against last frame's unclipped content size. Close it with EndScroll.
//
//	ctx.BeginScroll("log", gui.Sz(gui.Pc(1), gui.Rem(1)))
//	for _, line := range lines {
//	    ctx.Label(line)
//	}
//	ctx.EndScroll()
func (ctx *Context) BeginScroll(name string, size Size2) *Box {
	id := ctx.GetID(name)
	rd := ctx.Retained(id)
	b := ctx.PushBoxID(id, size, BoxScroll|BoxClip)

	if b.HasPrev {
		view := b.PrevRect.Intersect(b.PrevClip)
		if ctx.hoverPanel == ctx.currentPanel() && view.Contains(ctx.mousePos()) {
			ctx.nextScrollTarget = id
		}
		if ctx.scrollTarget == id && ctx.Input != nil {
			rd.Scroll.X -= ctx.Input.MouseWheelX * ctx.style.ScrollSpeed
			rd.Scroll.Y -= ctx.Input.MouseWheelY * ctx.style.ScrollSpeed
		}
		rd.Scroll = clampScroll(rd.Scroll, b.PrevRect.Size(), b.PrevContent)
	}
	b.Scroll = rd.Scroll
	return b
}

// EndScroll closes the container opened by BeginScroll. The scrollbar grab is
// routed here, after the children, so it wins over content beneath it.
func (ctx *Context) EndScroll() {
	b := ctx.CurrentBox()
	if b.Flags&BoxScroll == 0 {
		ctx.fatalf(ErrFrameOrder, "EndScroll does not close a BeginScroll")
	}
	if b.HasPrev {
		rd := ctx.Retained(b.ID)
		track, grab := scrollbarRects(b.PrevRect, b.PrevContent, rd.Scroll.Y, ctx.style.ScrollbarSize)
		if !grab.Empty() {
			res := ctx.HandleElementInput(grab, hashString(b.ID, "#grab"), true)
			if res.Dragging && track.H > grab.H {
				rd.Scroll.Y += res.DragDelta.Y * (b.PrevContent.Y - b.PrevRect.H) / (track.H - grab.H)
				rd.Scroll = clampScroll(rd.Scroll, b.PrevRect.Size(), b.PrevContent)
				b.Scroll = rd.Scroll
			}
		}
	}
	ctx.PopBox()
}

// Scroll runs contents inside BeginScroll/EndScroll.
func (ctx *Context) Scroll(name string, size Size2) func(func()) {
	return func(contents func()) {
		ctx.BeginScroll(name, size)
		contents()
		ctx.EndScroll()
	}
}

// clampScroll keeps the offset within [0, content-view] on each axis.
func clampScroll(scroll, view, content Vec2) Vec2 {
	return Vec2{
		X: clampf(scroll.X, 0, math32.Max(0, content.X-view.X)),
		Y: clampf(scroll.Y, 0, math32.Max(0, content.Y-view.Y)),
	}
}

// scrollbarRects returns the vertical track and grab for a viewport showing
// content scrolled by scrollY. Both are empty when everything fits.
func scrollbarRects(view Rect, content Vec2, scrollY, size float32) (track, grab Rect) {
	if content.Y <= view.H || view.H <= 0 {
		return Rect{}, Rect{}
	}
	track = Rect{X: view.X + view.W - size, Y: view.Y, W: size, H: view.H}
	grabH := math32.Max(2*size, view.H*view.H/content.Y)
	grabH = math32.Min(grabH, view.H)
	maxScroll := content.Y - view.H
	grabY := view.Y + (view.H-grabH)*clampf(scrollY/maxScroll, 0, 1)
	grab = Rect{X: track.X, Y: grabY, W: size, H: grabH}
	return track, grab
}
