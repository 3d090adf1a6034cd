package gui

import (
	"github.com/LagMeester4000/LagGui-sub000/arena"
	"github.com/chewxy/math32"
)

// PanelHandle addresses a panel slot in the registry. The zero handle is nil.
type PanelHandle = arena.Handle

// PanelFlags control a panel's chrome and docking behavior.
type PanelFlags uint32

const (
	PanelTitleBar           PanelFlags = 1 << iota // draw a title bar with the panel name
	PanelMovable                                   // drag the title bar to move
	PanelResizable                                 // drag the bottom-right grip to resize
	PanelAutoResizeX                               // width follows the content (one frame behind)
	PanelAutoResizeY                               // height follows the content (one frame behind)
	PanelNoBackground                              // skip the background fill
	PanelNoClip                                    // do not clip content to the panel
	PanelAnimate                                   // fade title bar hover through retained data
	PanelDockable                                  // may be docked into another panel
	PanelNoDockChildren                            // refuses dock children
	PanelDockReplaceWhenOne                        // when one dock child is left it takes this panel's place

	PanelDefault = PanelTitleBar | PanelMovable | PanelResizable | PanelDockable | PanelAnimate
)

// Panel is a persistent top-level region. Panels survive across frames in the
// registry; their box tree is rebuilt between BeginPanel and EndPanel each frame.
type Panel struct {
	ID      ID
	Name    string
	Flags   PanelFlags
	Rect    Rect
	Content Rect // area the box tree was laid out in this frame

	DockDir  DockDirection
	DockSize float32 // share of the dock parent's content on DockDir's axis

	closed  bool
	inOrder bool

	orderPrev, orderNext PanelHandle

	dockParent, dockFirst, dockLast, dockPrev, dockNext PanelHandle
	ownArea                                             Rect // parent content left after docked children

	retained  retainedTable
	root      arena.Handle
	lastFrame uint64
	dragStart Vec2
	nextFree  PanelHandle
}

// Docked reports whether the panel lives inside another panel's dock tree.
func (p *Panel) Docked() bool { return p.dockParent.Valid() }

// Closed reports whether the panel is closed.
func (p *Panel) Closed() bool { return p.closed }

// RetainedCount returns the number of retained entries the panel holds.
func (p *Panel) RetainedCount() int { return p.retained.count }

// panelFrame is one entry of the panel stack.
type panelFrame struct {
	h       PanelHandle
	boxBase int
	idBase  int
}

func (ctx *Context) panelPtr(h PanelHandle) *Panel { return ctx.panels.Get(h) }

func (ctx *Context) findPanel(id ID) PanelHandle { return ctx.panelByID[id] }

// PanelByName returns the panel registered under name, or nil.
func (ctx *Context) PanelByName(name string) *Panel {
	return ctx.panelPtr(ctx.findPanel(hashString(rootSeed, name)))
}

func (ctx *Context) currentPanel() PanelHandle {
	if n := len(ctx.panelStack); n > 0 {
		return ctx.panelStack[n-1].h
	}
	return arena.Nil
}

// CurrentPanel returns the panel being built, or nil outside BeginPanel/EndPanel.
func (ctx *Context) CurrentPanel() *Panel { return ctx.panelPtr(ctx.currentPanel()) }

func (ctx *Context) createPanel(id ID, name string, rect Rect, flags PanelFlags) PanelHandle {
	var h PanelHandle
	var p *Panel
	if h = ctx.panelFree; h.Valid() {
		p = ctx.panelPtr(h)
		ctx.panelFree = p.nextFree
		*p = Panel{}
	} else {
		if ctx.panels.Len() >= ctx.panels.Cap() {
			ctx.fatalf(ErrPanelCapacity, "more than MaxPanels (%d) panels", ctx.panels.Cap())
		}
		h, p = ctx.panels.Alloc()
	}
	p.ID = id
	p.Name = name
	p.Flags = flags
	p.Rect = rect
	ctx.panelByID[id] = h
	ctx.orderAppend(h)
	ctx.log.Debug("panel created", "name", name, "id", uint32(id))
	return h
}

// orderAppend links h at the front (tail) of the z-order.
func (ctx *Context) orderAppend(h PanelHandle) {
	p := ctx.panelPtr(h)
	p.orderPrev, p.orderNext = ctx.orderLast, arena.Nil
	if last := ctx.panelPtr(ctx.orderLast); last != nil {
		last.orderNext = h
	} else {
		ctx.orderFirst = h
	}
	ctx.orderLast = h
	p.inOrder = true
}

// orderInsertAfter links h right after prev, or at the back when prev is nil.
func (ctx *Context) orderInsertAfter(prev, h PanelHandle) {
	p := ctx.panelPtr(h)
	var next PanelHandle
	if pp := ctx.panelPtr(prev); pp != nil {
		next = pp.orderNext
		pp.orderNext = h
	} else {
		next = ctx.orderFirst
		ctx.orderFirst = h
	}
	if np := ctx.panelPtr(next); np != nil {
		np.orderPrev = h
	} else {
		ctx.orderLast = h
	}
	p.orderPrev, p.orderNext = prev, next
	p.inOrder = true
}

func (ctx *Context) orderRemove(h PanelHandle) {
	p := ctx.panelPtr(h)
	if !p.inOrder {
		return
	}
	if pp := ctx.panelPtr(p.orderPrev); pp != nil {
		pp.orderNext = p.orderNext
	} else {
		ctx.orderFirst = p.orderNext
	}
	if np := ctx.panelPtr(p.orderNext); np != nil {
		np.orderPrev = p.orderPrev
	} else {
		ctx.orderLast = p.orderPrev
	}
	p.orderPrev, p.orderNext = arena.Nil, arena.Nil
	p.inOrder = false
}

// dockRoot returns the top-level ancestor of h.
func (ctx *Context) dockRoot(h PanelHandle) PanelHandle {
	for {
		p := ctx.panelPtr(h)
		if !p.dockParent.Valid() {
			return h
		}
		h = p.dockParent
	}
}

// MovePanelToFront makes the named panel (or its dock root) frontmost.
func (ctx *Context) MovePanelToFront(name string) {
	if h := ctx.findPanel(hashString(rootSeed, name)); h.Valid() {
		ctx.movePanelToFront(h)
	}
}

func (ctx *Context) movePanelToFront(h PanelHandle) {
	h = ctx.dockRoot(h)
	if ctx.orderLast == h || !ctx.panelPtr(h).inOrder {
		return
	}
	ctx.orderRemove(h)
	ctx.orderAppend(h)
}

// PanelOrder returns the names of top-level panels from back to front.
func (ctx *Context) PanelOrder() []string {
	var names []string
	for h := ctx.orderFirst; h.Valid(); h = ctx.panelPtr(h).orderNext {
		names = append(names, ctx.panelPtr(h).Name)
	}
	return names
}

// chromeRects splits a panel rect into its title bar and padded content area.
func (ctx *Context) chromeRects(p *Panel) (title, content Rect) {
	r := p.Rect
	var th float32
	if p.Flags&PanelTitleBar != 0 {
		th = math32.Min(ctx.style.TitleBarHeight, r.H)
	}
	title = Rect{X: r.X, Y: r.Y, W: r.W, H: th}
	content = Rect{X: r.X, Y: r.Y + th, W: r.W, H: r.H - th}.Shrink(ctx.style.PanelPadding)
	return title, content
}

func (ctx *Context) gripRect(p *Panel) Rect {
	s := ctx.style.GripSize
	return Rect{X: p.Rect.X + p.Rect.W - s, Y: p.Rect.Y + p.Rect.H - s, W: s, H: s}
}

// BeginPanel looks up or creates the panel named name and opens its box tree.
// rect is used on creation, and every frame for panels the user cannot move,
// resize or auto-size. Docked panels take their rect from the dock tree.
// It returns false, without opening anything, when the panel is closed.
func (ctx *Context) BeginPanel(name string, rect Rect, flags PanelFlags) bool {
	ctx.requireFrame("BeginPanel")
	if len(ctx.panelStack) >= ctx.cfg.MaxPanelDepth {
		ctx.fatalf(ErrPanelStackOverflow, "panel depth exceeds MaxPanelDepth (%d)", ctx.cfg.MaxPanelDepth)
	}
	id := hashString(rootSeed, name)
	h := ctx.findPanel(id)
	created := !h.Valid()
	if created {
		h = ctx.createPanel(id, name, rect, flags)
	}
	p := ctx.panelPtr(h)
	p.Flags = flags
	if p.closed {
		return false
	}
	if !created && !p.Docked() && flags&(PanelMovable|PanelResizable|PanelAutoResizeX|PanelAutoResizeY) == 0 {
		p.Rect = rect
	}
	p.lastFrame = ctx.FrameCount

	ctx.panelStack = append(ctx.panelStack, panelFrame{h: h, boxBase: len(ctx.boxStack), idBase: len(ctx.idStack)})
	ctx.PushIDRaw(p.ID)

	if !p.Docked() {
		ctx.panelChromeInput(h)
	}
	_, content := ctx.chromeRects(p)
	if p.dockFirst.Valid() {
		ctx.layoutDock(h)
		content = p.ownArea
	}
	p.Content = content

	rootH, root := ctx.newBox(arena.Nil, p.ID, Sz(Px(content.W), Px(content.H)), 0)
	root.pushed = true
	root.panel = h
	root.Rect = content
	if flags&PanelAutoResizeX != 0 {
		root.Size.W = Fit()
	}
	if flags&PanelAutoResizeY != 0 {
		root.Size.H = Fit()
	}
	if flags&PanelNoClip != 0 {
		root.Clip = infiniteRect
	} else {
		root.Clip = content
	}
	p.root = rootH
	ctx.boxStack = append(ctx.boxStack, rootH)
	return true
}

// EndPanel lays out the panel's box tree and closes it.
func (ctx *Context) EndPanel() {
	n := len(ctx.panelStack)
	if n == 0 {
		ctx.fatalf(ErrPanelStackUnderflow, "EndPanel without BeginPanel")
	}
	pf := ctx.panelStack[n-1]
	if open := len(ctx.boxStack) - pf.boxBase - 1; open != 0 {
		ctx.fatalf(ErrFrameOrder, "EndPanel with %d unclosed PushBox/Layout", open)
	}
	if open := len(ctx.idStack) - pf.idBase - 1; open != 0 {
		ctx.fatalf(ErrFrameOrder, "EndPanel with %d unclosed PushID", open)
	}
	p := ctx.panelPtr(pf.h)

	root := ctx.box(p.root)
	ctx.measure(p.root)
	if p.Flags&PanelAutoResizeX != 0 {
		root.Rect.W = root.fit.X
	}
	if p.Flags&PanelAutoResizeY != 0 {
		root.Rect.H = root.fit.Y
	}
	ctx.place(p.root)
	ctx.recordGeometry(p.root)

	if !p.Docked() {
		title, _ := ctx.chromeRects(p)
		pad := 2 * ctx.style.PanelPadding
		if p.Flags&PanelAutoResizeX != 0 {
			p.Rect.W = root.Rect.W + pad
		}
		if p.Flags&PanelAutoResizeY != 0 {
			p.Rect.H = root.Rect.H + pad + title.H
		}
	}

	ctx.boxStack = ctx.boxStack[:pf.boxBase]
	ctx.panelGripInput(pf.h)
	ctx.idStack = ctx.idStack[:pf.idBase]
	ctx.panelStack = ctx.panelStack[:n-1]
}

// Panel runs contents between BeginPanel and EndPanel when the panel is open.
//
//	ctx.Panel("Inspector", gui.Rect{X: 20, Y: 20, W: 240, H: 300}, gui.PanelDefault)(func() {
//	    ctx.Label("Hello")
//	})
func (ctx *Context) Panel(name string, rect Rect, flags PanelFlags) func(func()) {
	return func(contents func()) {
		if !ctx.BeginPanel(name, rect, flags) {
			return
		}
		contents()
		ctx.EndPanel()
	}
}

// panelChromeInput moves an undocked panel from its title bar.
func (ctx *Context) panelChromeInput(h PanelHandle) {
	p := ctx.panelPtr(h)
	title, _ := ctx.chromeRects(p)
	if p.Flags&(PanelTitleBar|PanelMovable) == PanelTitleBar|PanelMovable {
		res := ctx.HandleElementInput(title, hashString(p.ID, "#title"), true)
		if res.Pressed {
			p.dragStart = p.Rect.Min()
		}
		if res.Dragging {
			r := p.Rect
			target := p.dragStart.Add(ctx.DragOffset())
			r.X, r.Y = target.X, target.Y
			p.Rect, ctx.snapGuides = snapRect(r, ctx.DisplaySize, ctx.snapTargets(h), ctx.cfg.Snap)
		}
		if p.Flags&PanelAnimate != 0 {
			ctx.Animate(ctx.PanelRetained(h, hashString(p.ID, "#title")), res)
		}
	}
}

// panelGripInput resizes an undocked panel from its grip. It runs after the
// panel's contents so the grip wins the pointer over boxes underneath it.
func (ctx *Context) panelGripInput(h PanelHandle) {
	p := ctx.panelPtr(h)
	if p.Flags&PanelResizable == 0 || p.Docked() {
		return
	}
	res := ctx.HandleElementInput(ctx.gripRect(p), hashString(p.ID, "#grip"), true)
	if res.Dragging {
		min := ctx.style.MinPanelSize
		p.Rect.W = math32.Max(min.X, p.Rect.W+res.DragDelta.X)
		p.Rect.H = math32.Max(min.Y, p.Rect.H+res.DragDelta.Y)
	}
}

// snapTargets returns the rects of the other visible top-level panels.
func (ctx *Context) snapTargets(self PanelHandle) []Rect {
	var out []Rect
	for h := ctx.orderFirst; h.Valid(); {
		p := ctx.panelPtr(h)
		if h != self && ctx.panelVisible(p) {
			out = append(out, p.Rect)
		}
		h = p.orderNext
	}
	return out
}

// panelVisible reports whether p was submitted last frame or this frame.
func (ctx *Context) panelVisible(p *Panel) bool {
	return !p.closed && p.lastFrame+1 >= ctx.FrameCount && p.lastFrame > 0
}

// ClosePanel closes the named panel. A docked panel is undocked first.
func (ctx *Context) ClosePanel(name string) {
	h := ctx.findPanel(hashString(rootSeed, name))
	if !h.Valid() {
		return
	}
	if ctx.panelPtr(h).Docked() {
		ctx.undock(h)
	}
	ctx.panelPtr(h).closed = true
	ctx.log.Debug("panel closed", "name", name)
}

// OpenPanel reopens a closed panel at the front.
func (ctx *Context) OpenPanel(name string) {
	h := ctx.findPanel(hashString(rootSeed, name))
	if !h.Valid() {
		return
	}
	p := ctx.panelPtr(h)
	p.closed = false
	switch {
	case p.inOrder:
		ctx.movePanelToFront(h)
	case !p.Docked():
		ctx.orderAppend(h)
	}
}

// DestroyPanel removes the named panel from the registry, undocks it and its
// dock children, and returns its retained entries to the shared free list.
// Destroying a panel that is being built is a usage error.
func (ctx *Context) DestroyPanel(name string) {
	h := ctx.findPanel(hashString(rootSeed, name))
	if !h.Valid() {
		return
	}
	for _, pf := range ctx.panelStack {
		if pf.h == h {
			ctx.fatalf(ErrFrameOrder, "DestroyPanel(%q) between its BeginPanel and EndPanel", name)
		}
	}
	p := ctx.panelPtr(h)
	if p.Docked() {
		ctx.undock(h)
	}
	for c := p.dockFirst; c.Valid(); c = p.dockFirst {
		ctx.unlinkDock(c)
		ctx.orderAppend(c)
	}
	ctx.orderRemove(h)
	ctx.releaseRetained(&p.retained)
	delete(ctx.panelByID, p.ID)
	if ctx.hoverPanel == h {
		ctx.hoverPanel = arena.Nil
	}
	*p = Panel{nextFree: ctx.panelFree}
	ctx.panelFree = h
	ctx.log.Debug("panel destroyed", "name", name)
}
