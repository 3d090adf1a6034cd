package gui

import (
	"github.com/LagMeester4000/LagGui-sub000/arena"
	"github.com/chewxy/math32"
)

// Layout resolves a box tree in two passes.
//
// measure walks bottom-up and records each box's intrinsic size on every axis:
// Px boxes report their value, Fit containers report the union of their children
// plus padding, Fit text leaves report their text size, and Pc/Rem report zero
// because they depend on the parent.
//
// place walks top-down. A container subtracts Px, Pc and Fit children from its
// primary-axis content size and splits what is left between Rem children by
// weight: Rem(f) gets remaining*f/max(sum of weights, 1). Cross-axis sizes are
// resolved against the container's content size, and children are aligned on
// the cross axis by the container's alignment. When no Rem child absorbs the
// leftover space the run of children is aligned on the primary axis too.

// geom is the geometry of one box kept for the next frame.
type geom struct {
	rect    Rect
	clip    Rect
	content Vec2
}

func (ctx *Context) measure(h arena.Handle) {
	b := ctx.box(h)
	var sum, cross Vec2 // sum along each axis, max along each axis
	for c := b.first; c.Valid(); {
		child := ctx.box(c)
		ctx.measure(c)
		sum = sum.Add(child.fit)
		cross.X = math32.Max(cross.X, child.fit.X)
		cross.Y = math32.Max(cross.Y, child.fit.Y)
		c = child.next
	}
	prim := b.primary()
	gaps := b.Gap * float32(max(b.children-1, 0))

	for a := 0; a < 2; a++ {
		s := b.Size.axis(a)
		var v float32
		switch s.Kind {
		case SizePx:
			v = s.Value
		case SizeFit:
			switch {
			case b.children > 0:
				if a == prim {
					v = sum.axis(a) + gaps
				} else {
					v = cross.axis(a)
				}
				v += 2 * b.Padding
			case b.Flags&BoxDrawText != 0:
				f := ctx.fontFor(b)
				if a == 0 {
					v = f.TextWidth(b.Text, ctx.style.TextSpacing)
				} else {
					v = f.Height()
				}
				v += 2 * b.Padding
			case b.isContainer():
				v = 2 * b.Padding
			default:
				ctx.fatalf(ErrLeafFit, "box %#x has a fit size but no children or text", uint32(b.ID))
			}
		}
		b.fit.setAxis(a, v)
	}
}

// isContainer reports whether b was pushed as a container. A box pushed and
// popped without children still fits to its padding.
func (b *Box) isContainer() bool {
	return b.Flags&(BoxHorizontal|BoxScroll|BoxClip) != 0 || b.pushed
}

func (ctx *Context) place(h arena.Handle) {
	b := ctx.box(h)
	if b.children == 0 {
		b.ContentSize = Vec2{2 * b.Padding, 2 * b.Padding}
		return
	}
	content := b.Rect.Shrink(b.Padding)
	prim := b.primary()
	cross := 1 - prim
	avail := content.extent(prim)
	gaps := b.Gap * float32(b.children-1)

	var used, weights float32
	for c := b.first; c.Valid(); {
		child := ctx.box(c)
		s := child.Size.axis(prim)
		switch s.Kind {
		case SizePx:
			used += s.Value
		case SizePercent:
			used += s.Value * avail
		case SizeFit:
			used += child.fit.axis(prim)
		case SizeRem:
			weights += s.Value
		}
		c = child.next
	}
	remaining := math32.Max(0, avail-used-gaps)

	lead := float32(0)
	if weights == 0 {
		lead = remaining * b.alignOn(prim).factor()
	}
	pos := content.pos(prim) + lead - b.Scroll.axis(prim)
	crossAvail := content.extent(cross)
	crossAlign := b.alignOn(cross).factor()

	var extent, crossExtent float32
	for c := b.first; c.Valid(); {
		child := ctx.box(c)
		ps := child.Size.axis(prim)
		var size float32
		switch ps.Kind {
		case SizePx:
			size = ps.Value
		case SizePercent:
			size = ps.Value * avail
		case SizeFit:
			size = child.fit.axis(prim)
		case SizeRem:
			size = remaining * ps.Value / math32.Max(weights, 1)
		}
		cs := child.Size.axis(cross)
		var csize float32
		switch cs.Kind {
		case SizePx:
			csize = cs.Value
		case SizePercent, SizeRem:
			csize = cs.Value * crossAvail
		case SizeFit:
			csize = child.fit.axis(cross)
		}
		cpos := content.pos(cross) + math32.Max(0, crossAvail-csize)*crossAlign - b.Scroll.axis(cross)

		child.Rect.setAxis(prim, pos, size)
		child.Rect.setAxis(cross, cpos, csize)
		if child.Flags&(BoxClip|BoxScroll) != 0 {
			child.Clip = b.Clip.Intersect(child.Rect)
		} else {
			child.Clip = b.Clip
		}

		pos += size + b.Gap
		extent += size
		crossExtent = math32.Max(crossExtent, csize)
		ctx.place(c)
		c = child.next
	}
	extent += gaps
	b.ContentSize.setAxis(prim, extent+2*b.Padding)
	b.ContentSize.setAxis(cross, crossExtent+2*b.Padding)
}

func (b *Box) alignOn(axis int) Align {
	if axis == 0 {
		return b.HAlign
	}
	return b.VAlign
}

// recordGeometry stores the resolved geometry of every box under h for the next frame.
func (ctx *Context) recordGeometry(h arena.Handle) {
	for h.Valid() {
		b := ctx.box(h)
		if _, dup := ctx.curGeom[b.ID]; dup {
			ctx.log.Warn("duplicate box id in one frame", "id", uint32(b.ID), "text", b.Text)
		}
		ctx.curGeom[b.ID] = geom{rect: b.Rect, clip: b.Clip, content: b.ContentSize}
		ctx.recordGeometry(b.first)
		h = b.next
	}
}

// Row runs contents inside a horizontal container and closes it afterwards.
//
//	ctx.Row(Sz(Pc(1), Fit()))(func() {
//	    ctx.Button("OK")
//	    ctx.Button("Cancel")
//	})
func (ctx *Context) Row(size Size2) func(func()) {
	return func(contents func()) {
		ctx.LayoutHorizontal(AlignStart, AlignCenter, size, 0).WithGap(ctx.style.ItemSpacing)
		contents()
		ctx.LayoutEnd()
	}
}

// Column runs contents inside a vertical container and closes it afterwards.
func (ctx *Context) Column(size Size2) func(func()) {
	return func(contents func()) {
		ctx.LayoutVertical(AlignStart, AlignStart, size, 0).WithGap(ctx.style.ItemSpacing)
		contents()
		ctx.LayoutEnd()
	}
}
