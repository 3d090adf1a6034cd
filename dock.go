package gui

import (
	"github.com/LagMeester4000/LagGui-sub000/arena"
	"github.com/chewxy/math32"
)

// DockDirection is the side of its dock parent a docked panel occupies.
type DockDirection uint8

const (
	DockRight DockDirection = iota
	DockDown
)

func (d DockDirection) String() string {
	if d == DockDown {
		return "down"
	}
	return "right"
}

// DockPanel docks the panel named child into the panel named parent.
// size is the child's share (0..1) of the parent's content on the direction's axis.
// It returns false when either panel does not exist, the child is not
// PanelDockable or the parent refuses dock children. Docking a panel that is
// already docked, or into its own dock subtree, is a usage error.
func (ctx *Context) DockPanel(child, parent string, dir DockDirection, size float32) bool {
	ch := ctx.findPanel(hashString(rootSeed, child))
	ph := ctx.findPanel(hashString(rootSeed, parent))
	if !ch.Valid() || !ph.Valid() {
		return false
	}
	c, p := ctx.panelPtr(ch), ctx.panelPtr(ph)
	if c.Flags&PanelDockable == 0 || p.Flags&PanelNoDockChildren != 0 {
		ctx.log.Debug("dock refused", "child", child, "parent", parent)
		return false
	}
	if c.Docked() {
		ctx.fatalf(ErrAlreadyLinked, "panel %q is already docked", child)
	}
	for a := ph; a.Valid(); a = ctx.panelPtr(a).dockParent {
		if a == ch {
			ctx.fatalf(ErrAlreadyLinked, "docking %q into %q would make a cycle", child, parent)
		}
	}

	ctx.orderRemove(ch)
	ctx.linkDockAfter(ph, p.dockLast, ch)
	c.DockDir = dir
	c.DockSize = clampf(size, 0, 1)
	c.closed = false
	ctx.layoutDock(ctx.dockRoot(ph))
	ctx.log.Debug("panel docked", "child", child, "parent", parent, "dir", dir.String(), "size", c.DockSize)
	return true
}

// UndockPanel detaches the named panel from its dock parent and makes it a
// frontmost top-level panel at its current rect.
func (ctx *Context) UndockPanel(name string) {
	h := ctx.findPanel(hashString(rootSeed, name))
	if !h.Valid() || !ctx.panelPtr(h).Docked() {
		return
	}
	ctx.undock(h)
}

func (ctx *Context) undock(h PanelHandle) {
	p := ctx.panelPtr(h)
	ph := p.dockParent
	parent := ctx.panelPtr(ph)
	ctx.unlinkDock(h)

	// Hand the removed share out equally to the siblings on the same side.
	var same int
	for s := parent.dockFirst; s.Valid(); s = ctx.panelPtr(s).dockNext {
		if ctx.panelPtr(s).DockDir == p.DockDir {
			same++
		}
	}
	if same > 0 {
		share := p.DockSize / float32(same)
		for s := parent.dockFirst; s.Valid(); s = ctx.panelPtr(s).dockNext {
			if sp := ctx.panelPtr(s); sp.DockDir == p.DockDir {
				sp.DockSize = math32.Min(1, sp.DockSize+share)
			}
		}
	}

	ctx.orderAppend(h)
	ctx.log.Debug("panel undocked", "name", p.Name, "parent", parent.Name)

	if parent.Flags&PanelDockReplaceWhenOne != 0 && parent.dockFirst.Valid() && parent.dockFirst == parent.dockLast {
		ctx.promoteSoleChild(ph)
	} else {
		ctx.layoutDock(ctx.dockRoot(ph))
	}
}

// promoteSoleChild moves the only dock child of ph into ph's slot and closes ph.
// The survivor keeps its own dock children.
func (ctx *Context) promoteSoleChild(ph PanelHandle) {
	parent := ctx.panelPtr(ph)
	sh := parent.dockFirst
	s := ctx.panelPtr(sh)
	ctx.unlinkDock(sh)

	s.Rect = parent.Rect
	s.DockDir, s.DockSize = parent.DockDir, parent.DockSize
	if gh := parent.dockParent; gh.Valid() {
		ctx.linkDockAfter(gh, parent.dockPrev, sh)
		ctx.unlinkDock(ph)
	} else {
		ctx.orderInsertAfter(parent.orderPrev, sh)
		ctx.orderRemove(ph)
	}
	parent.closed = true
	ctx.layoutDock(ctx.dockRoot(sh))
	ctx.log.Debug("dock child promoted", "survivor", s.Name, "replaced", parent.Name)
}

// linkDockAfter inserts h into parent's dock list after prev (at the head when prev is nil).
func (ctx *Context) linkDockAfter(parentH, prev, h PanelHandle) {
	parent, p := ctx.panelPtr(parentH), ctx.panelPtr(h)
	var next PanelHandle
	if pp := ctx.panelPtr(prev); pp != nil {
		next = pp.dockNext
		pp.dockNext = h
	} else {
		next = parent.dockFirst
		parent.dockFirst = h
	}
	if np := ctx.panelPtr(next); np != nil {
		np.dockPrev = h
	} else {
		parent.dockLast = h
	}
	p.dockParent, p.dockPrev, p.dockNext = parentH, prev, next
}

func (ctx *Context) unlinkDock(h PanelHandle) {
	p := ctx.panelPtr(h)
	parent := ctx.panelPtr(p.dockParent)
	if parent == nil {
		return
	}
	if pp := ctx.panelPtr(p.dockPrev); pp != nil {
		pp.dockNext = p.dockNext
	} else {
		parent.dockFirst = p.dockNext
	}
	if np := ctx.panelPtr(p.dockNext); np != nil {
		np.dockPrev = p.dockPrev
	} else {
		parent.dockLast = p.dockPrev
	}
	p.dockParent, p.dockPrev, p.dockNext = arena.Nil, arena.Nil, arena.Nil
}

// DockChildren returns the names of the panels docked into the named panel.
func (ctx *Context) DockChildren(name string) []string {
	h := ctx.findPanel(hashString(rootSeed, name))
	if !h.Valid() {
		return nil
	}
	var names []string
	for c := ctx.panelPtr(h).dockFirst; c.Valid(); c = ctx.panelPtr(c).dockNext {
		names = append(names, ctx.panelPtr(c).Name)
	}
	return names
}

// layoutDock splits h's content area between its dock children and recurses.
// Right children share a strip on the right edge, left to right, each taking
// DockSize of the area's width. Down children share a strip along the bottom of
// what is left, top to bottom, each taking DockSize of the area's height. The
// parent's own box tree gets the remainder.
func (ctx *Context) layoutDock(h PanelHandle) {
	p := ctx.panelPtr(h)
	_, area := ctx.chromeRects(p)
	p.ownArea = area
	if !p.dockFirst.Valid() {
		return
	}

	var right, down float32
	for c := p.dockFirst; c.Valid(); c = ctx.panelPtr(c).dockNext {
		cp := ctx.panelPtr(c)
		if cp.DockDir == DockDown {
			down += cp.DockSize
		} else {
			right += cp.DockSize
		}
	}
	right, down = math32.Min(right, 1), math32.Min(down, 1)
	ownW := area.W * (1 - right)
	ownH := area.H * (1 - down)

	x := area.X + ownW
	y := area.Y + ownH
	for c := p.dockFirst; c.Valid(); c = ctx.panelPtr(c).dockNext {
		cp := ctx.panelPtr(c)
		if cp.DockDir == DockDown {
			hgt := cp.DockSize * area.H
			cp.Rect = Rect{X: area.X, Y: y, W: ownW, H: hgt}
			y += hgt
		} else {
			w := cp.DockSize * area.W
			cp.Rect = Rect{X: x, Y: area.Y, W: w, H: area.H}
			x += w
		}
		ctx.layoutDock(c)
	}
	p.ownArea = Rect{X: area.X, Y: area.Y, W: ownW, H: ownH}
}

// layoutDocks resolves every dock tree hanging off a top-level panel.
func (ctx *Context) layoutDocks() {
	for h := ctx.orderFirst; h.Valid(); h = ctx.panelPtr(h).orderNext {
		if ctx.panelPtr(h).dockFirst.Valid() {
			ctx.layoutDock(h)
		}
	}
}
