package gui

import "github.com/chewxy/math32"

// ListClipper computes the visible index range of a list of equal-height items
// inside a scroll box, so large lists only build the boxes that can be seen.
//
//	clip := gui.NewListClipper(len(items), rowHeight, viewHeight, scrollY)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    // build item i
//	}
type ListClipper struct {
	StartIdx   int     // first visible item (inclusive)
	EndIdx     int     // last visible item (exclusive)
	ItemHeight float32 // height of each item including its gap
	TotalItems int
}

// NewListClipper calculates the visible range for a viewport of visibleHeight
// scrolled by scrollY. One extra item is kept on each side for partial rows.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		return c
	}
	start := max(int(scrollY/itemHeight), 0)
	end := start + int(math32.Ceil(visibleHeight/itemHeight)) + 1
	c.StartIdx = min(start, totalItems)
	c.EndIdx = min(end, totalItems)
	return c
}

// ShouldRender returns true if item idx is in the visible range.
func (c ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// VisibleCount returns the number of items that should be built.
func (c ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the height of the whole list.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// ScrollToItem returns the scroll offset that brings item idx into view.
// An item already visible leaves currentScroll unchanged.
func (c ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx) * c.ItemHeight
	bottom := top + c.ItemHeight
	switch {
	case top < currentScroll:
		return top
	case bottom > currentScroll+visibleHeight:
		return bottom - visibleHeight
	}
	return currentScroll
}

// List builds a virtualized scroll box of count rows of itemHeight pixels.
// Only rows in view are passed to row; spacer boxes stand in for the rest so
// the content size, and with it the scrollbar, covers the whole list.
// Each row is a box keyed by its index and runs inside that index's ID scope.
func (ctx *Context) List(name string, size Size2, count int, itemHeight float32, row func(i int)) {
	b := ctx.BeginScroll(name, size)
	view := b.PrevRect.H
	if !b.HasPrev {
		view = ctx.DisplaySize.Y
	}
	c := NewListClipper(count, itemHeight, view, b.Scroll.Y)
	if c.StartIdx > 0 {
		ctx.MakeBoxID(0, Sz(Pc(1), Px(float32(c.StartIdx)*itemHeight)), 0)
	}
	for i := c.StartIdx; i < c.EndIdx; i++ {
		id := ctx.PushIDInt(i)
		ctx.PushBoxID(id, Sz(Pc(1), Px(itemHeight)), 0)
		row(i)
		ctx.PopBox()
		ctx.PopID()
	}
	if rest := count - c.EndIdx; rest > 0 {
		ctx.MakeBoxID(0, Sz(Pc(1), Px(float32(rest)*itemHeight)), 0)
	}
	ctx.EndScroll()
}
