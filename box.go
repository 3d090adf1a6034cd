package gui

import "github.com/LagMeester4000/LagGui-sub000/arena"

// SizeKind selects how one axis of a box is resolved.
type SizeKind uint8

const (
	SizePx      SizeKind = iota // fixed pixels
	SizePercent                 // fraction of the parent's content on that axis
	SizeFit                     // union of the children plus padding
	SizeRem                     // weighted share of the space left along the parent's primary axis
)

// Size is one axis of a box size request.
type Size struct {
	Kind  SizeKind
	Value float32
}

// Px is a fixed size in pixels.
func Px(v float32) Size { return Size{Kind: SizePx, Value: v} }

// Pc is a fraction (0..1) of the parent's content size.
func Pc(f float32) Size { return Size{Kind: SizePercent, Value: f} }

// Fit sizes a container to its children, or a text box to its text.
func Fit() Size { return Size{Kind: SizeFit} }

// Rem claims weight f of the remaining primary-axis space.
// Across the parent's primary axis it behaves like Pc(f).
func Rem(f float32) Size { return Size{Kind: SizeRem, Value: f} }

// Size2 is a width and height request.
type Size2 struct {
	W, H Size
}

// Sz builds a Size2.
func Sz(w, h Size) Size2 { return Size2{W: w, H: h} }

func (s Size2) axis(a int) Size {
	if a == 0 {
		return s.W
	}
	return s.H
}

// BoxFlags control layout and drawing of a box.
type BoxFlags uint16

const (
	BoxHorizontal BoxFlags = 1 << iota // lay children out left to right instead of top to bottom
	BoxClip                            // clip children to the box rect
	BoxScroll                          // offset children by the retained scroll and clip
	BoxDrawRect                        // fill the rect with Color
	BoxDrawBorder                      // outline the rect with BorderColor
	BoxDrawText                        // draw Text inside the padding
)

// Align places a child on an axis: AlignStart, AlignCenter or AlignEnd.
type Align int8

const (
	AlignStart  Align = -1
	AlignCenter Align = 0
	AlignEnd    Align = 1
)

func (a Align) factor() float32 { return (float32(a) + 1) / 2 }

// Drawer is a custom draw hook. Draw runs when the box is painted, with the
// box's resolved rect, before its children.
type Drawer interface {
	Draw(b *Box, p Painter, r Rect)
}

// DrawerFunc adapts a function to Drawer.
type DrawerFunc func(b *Box, p Painter, r Rect)

// Draw calls f.
func (f DrawerFunc) Draw(b *Box, p Painter, r Rect) { f(b, p, r) }

// Box is one node of a panel's per-frame layout tree.
// Boxes live in the frame pool and are rebuilt every frame; geometry from the
// previous frame is carried over by ID in PrevRect and PrevClip for hit testing.
type Box struct {
	ID     ID
	Size   Size2
	Flags  BoxFlags
	HAlign Align // placement of children on X
	VAlign Align // placement of children on Y

	Padding     float32
	Gap         float32
	Color       uint32
	BorderColor uint32
	Text        string
	TextColor   uint32
	Font        Font
	Drawer      Drawer

	// Resolved this frame by EndPanel.
	Rect        Rect
	Clip        Rect
	ContentSize Vec2 // unclipped extent of the children plus padding

	// Resolved last frame. HasPrev is false on a box's first frame.
	PrevRect    Rect
	PrevClip    Rect
	PrevContent Vec2
	HasPrev     bool

	// Scroll offsets the children of a BoxScroll box.
	Scroll Vec2

	parent, first, last, next, prev arena.Handle
	children                        int
	pushed                          bool
	panel                           PanelHandle
	fit                             Vec2
}

// WithColor fills the box with c.
func (b *Box) WithColor(c uint32) *Box {
	b.Color = c
	b.Flags |= BoxDrawRect
	return b
}

// WithBorder outlines the box with c.
func (b *Box) WithBorder(c uint32) *Box {
	b.BorderColor = c
	b.Flags |= BoxDrawBorder
	return b
}

// WithText draws text inside the box padding.
func (b *Box) WithText(text string, color uint32) *Box {
	b.Text = text
	b.TextColor = color
	b.Flags |= BoxDrawText
	return b
}

// WithDrawer installs a draw hook.
func (b *Box) WithDrawer(d Drawer) *Box {
	b.Drawer = d
	return b
}

// WithPadding insets children and text by p on every side.
func (b *Box) WithPadding(p float32) *Box {
	b.Padding = p
	return b
}

// WithGap spaces children by g along the primary axis.
func (b *Box) WithGap(g float32) *Box {
	b.Gap = g
	return b
}

// WithAlign places children (or text) on each axis.
func (b *Box) WithAlign(h, v Align) *Box {
	b.HAlign, b.VAlign = h, v
	return b
}

// Horizontal reports whether children flow left to right.
func (b *Box) Horizontal() bool { return b.Flags&BoxHorizontal != 0 }

func (b *Box) primary() int {
	if b.Horizontal() {
		return 0
	}
	return 1
}

// ChildCount returns the number of children made so far this frame.
func (b *Box) ChildCount() int { return b.children }

// box returns the frame box for h.
func (ctx *Context) box(h arena.Handle) *Box { return ctx.boxes.Get(h) }

func (ctx *Context) topBoxHandle() arena.Handle {
	n := len(ctx.boxStack)
	if n == 0 {
		ctx.fatalf(ErrNoPanel, "box made outside BeginPanel/EndPanel")
	}
	return ctx.boxStack[n-1]
}

// CurrentBox returns the container new boxes are appended to.
func (ctx *Context) CurrentBox() *Box {
	return ctx.box(ctx.topBoxHandle())
}

func (ctx *Context) newBox(parent arena.Handle, id ID, size Size2, flags BoxFlags) (arena.Handle, *Box) {
	if ctx.boxes.Len() >= ctx.boxes.Cap() {
		ctx.fatalf(ErrBoxCapacity, "more than MaxBoxes (%d) boxes this frame", ctx.boxes.Cap())
	}
	h, b := ctx.boxes.Alloc()
	b.ID = id
	b.Size = size
	b.Flags = flags
	b.HAlign, b.VAlign = AlignStart, AlignStart
	b.TextColor = ctx.style.TextColor

	if p := ctx.box(parent); p != nil {
		if b.ID == 0 {
			// Anonymous boxes are keyed by position so their geometry still carries
			// over. The inverted seed keeps them apart from GetIDInt keys.
			b.ID = hashInt(^p.ID, p.children)
		}
		b.parent = parent
		b.panel = p.panel
		b.prev = p.last
		if last := ctx.box(p.last); last != nil {
			last.next = h
		} else {
			p.first = h
		}
		p.last = h
		p.children++
	}

	if g, ok := ctx.prevGeom[b.ID]; ok {
		b.PrevRect = g.rect
		b.PrevClip = g.clip
		b.PrevContent = g.content
		b.HasPrev = true
	}
	return h, b
}

// MakeBox appends a leaf box named name to the current container and returns it
// for decoration. An empty name makes an anonymous, position-keyed box.
func (ctx *Context) MakeBox(name string, size Size2, flags BoxFlags) *Box {
	var id ID
	if name != "" {
		id = ctx.GetID(name)
	}
	return ctx.MakeBoxID(id, size, flags)
}

// MakeBoxID is MakeBox with a precomputed ID.
func (ctx *Context) MakeBoxID(id ID, size Size2, flags BoxFlags) *Box {
	_, b := ctx.newBox(ctx.topBoxHandle(), id, size, flags)
	return b
}

// PushBox is MakeBox that also makes the new box the current container until PopBox.
func (ctx *Context) PushBox(name string, size Size2, flags BoxFlags) *Box {
	var id ID
	if name != "" {
		id = ctx.GetID(name)
	}
	return ctx.PushBoxID(id, size, flags)
}

// PushBoxID is PushBox with a precomputed ID.
func (ctx *Context) PushBoxID(id ID, size Size2, flags BoxFlags) *Box {
	h, b := ctx.newBox(ctx.topBoxHandle(), id, size, flags)
	b.pushed = true
	ctx.boxStack = append(ctx.boxStack, h)
	return b
}

// PopBox closes the current container. The panel root cannot be popped.
func (ctx *Context) PopBox() {
	base := 0
	if n := len(ctx.panelStack); n > 0 {
		base = ctx.panelStack[n-1].boxBase
	}
	if len(ctx.boxStack) <= base+1 {
		ctx.fatalf(ErrBoxStackUnderflow, "PopBox without a matching PushBox")
	}
	ctx.boxStack = ctx.boxStack[:len(ctx.boxStack)-1]
}

// LayoutHorizontal pushes an anonymous container whose children flow left to right.
func (ctx *Context) LayoutHorizontal(hAlign, vAlign Align, size Size2, flags BoxFlags) *Box {
	return ctx.PushBoxID(0, size, flags|BoxHorizontal).WithAlign(hAlign, vAlign)
}

// LayoutVertical pushes an anonymous container whose children flow top to bottom.
func (ctx *Context) LayoutVertical(hAlign, vAlign Align, size Size2, flags BoxFlags) *Box {
	return ctx.PushBoxID(0, size, flags&^BoxHorizontal).WithAlign(hAlign, vAlign)
}

// LayoutEnd closes a LayoutHorizontal or LayoutVertical container.
func (ctx *Context) LayoutEnd() {
	ctx.PopBox()
}

// Children calls fn for every child of b in order.
func (ctx *Context) Children(b *Box, fn func(*Box)) {
	for h := b.first; h.Valid(); {
		c := ctx.box(h)
		fn(c)
		h = c.next
	}
}

// Parent returns b's container, or nil for a panel root.
func (ctx *Context) Parent(b *Box) *Box {
	return ctx.box(b.parent)
}
