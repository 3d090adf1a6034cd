package gui

import (
	"github.com/LagMeester4000/LagGui-sub000/arena"
	"github.com/chewxy/math32"
)

// renderPanels paints every visible top-level panel from back to front, each
// followed by its dock children, then the snap guides.
func (ctx *Context) renderPanels(dl *DrawList) {
	for h := ctx.orderFirst; h.Valid(); h = ctx.panelPtr(h).orderNext {
		ctx.renderPanel(dl, h)
	}
	for _, g := range ctx.snapGuides {
		dl.DrawLine(g.From, g.To, ctx.style.SnapGuideColor, 1)
	}
}

func (ctx *Context) renderPanel(dl *DrawList, h PanelHandle) {
	p := ctx.panelPtr(h)
	if p.closed || p.lastFrame != ctx.FrameCount {
		return
	}
	s := &ctx.style
	if p.Flags&PanelNoBackground == 0 {
		dl.DrawRect(p.Rect, s.PanelColor)
		dl.DrawRectOutline(p.Rect, s.PanelBorderColor, s.BorderSize)
	}
	if p.Flags&PanelTitleBar != 0 {
		title, _ := ctx.chromeRects(p)
		color := s.TitleBarColor
		if p.Flags&PanelAnimate != 0 {
			rd := ctx.PanelRetained(h, hashString(p.ID, "#title"))
			color = LerpColor(s.TitleBarColor, s.TitleBarHoveredColor, rd.HoverT)
		}
		dl.DrawRect(title, color)
		f := ctx.fontFor(nil)
		dl.PushClip(title)
		name := ctx.Ellipsize(p.Name, title.W-2*s.PanelPadding)
		dl.DrawText(Vec2{title.X + s.PanelPadding, title.Y + (title.H-f.Height())/2}, name, s.titleTextColor(), f, s.TextSpacing)
		dl.PopClip()
	}

	if p.root.Valid() {
		root := ctx.box(p.root)
		dl.PushClip(root.Clip)
		ctx.renderBox(dl, p.root)
		dl.PopClip()
	}

	if p.Flags&PanelResizable != 0 && !p.Docked() {
		g := ctx.gripRect(p)
		dl.DrawTriangle(Vec2{g.X + g.W, g.Y}, Vec2{g.X + g.W, g.Y + g.H}, Vec2{g.X, g.Y + g.H}, s.GripColor, s.GripColor, s.GripColor)
	}

	for c := p.dockFirst; c.Valid(); c = ctx.panelPtr(c).dockNext {
		ctx.renderPanel(dl, c)
	}
}

// renderBox paints b, then its children under b's clip when b clips.
func (ctx *Context) renderBox(dl *DrawList, h arena.Handle) {
	b := ctx.box(h)
	s := &ctx.style
	visible := b.Rect.Intersects(b.Clip)

	if visible {
		if b.Flags&BoxDrawRect != 0 {
			dl.DrawRect(b.Rect, b.Color)
		}
		if b.Flags&BoxDrawBorder != 0 {
			dl.DrawRectOutline(b.Rect, b.BorderColor, s.BorderSize)
		}
		if b.Flags&BoxDrawText != 0 && b.Text != "" {
			ctx.renderText(dl, b)
		}
		if b.Drawer != nil {
			b.Drawer.Draw(b, dl, b.Rect)
		}
	}

	clips := b.Flags&(BoxClip|BoxScroll) != 0
	if clips {
		dl.PushClip(b.Rect)
	}
	for c := b.first; c.Valid(); c = ctx.box(c).next {
		ctx.renderBox(dl, c)
	}
	if clips {
		dl.PopClip()
	}

	if b.Flags&BoxScroll != 0 && visible {
		ctx.renderScrollbar(dl, b)
	}
}

// renderText aligns the box text inside the padding by the box alignment.
func (ctx *Context) renderText(dl *DrawList, b *Box) {
	f := ctx.fontFor(b)
	content := b.Rect.Shrink(b.Padding)
	size := Vec2{f.TextWidth(b.Text, ctx.style.TextSpacing), f.Height()}
	pos := Vec2{
		X: content.X + math32.Max(0, content.W-size.X)*b.HAlign.factor(),
		Y: content.Y + math32.Max(0, content.H-size.Y)*b.VAlign.factor(),
	}
	dl.DrawText(Vec2{math32.Round(pos.X), math32.Round(pos.Y)}, b.Text, b.TextColor, f, ctx.style.TextSpacing)
}

func (ctx *Context) renderScrollbar(dl *DrawList, b *Box) {
	track, grab := scrollbarRects(b.Rect, b.ContentSize, b.Scroll.Y, ctx.style.ScrollbarSize)
	if grab.Empty() {
		return
	}
	color := ctx.style.ScrollbarGrabColor
	if gid := hashString(b.ID, "#grab"); ctx.hoverID == gid || ctx.activeID == gid {
		color = ctx.style.ScrollbarGrabHovered
	}
	dl.DrawRect(track, ctx.style.ScrollbarBgColor)
	dl.DrawRect(grab, color)
}
