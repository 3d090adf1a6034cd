package gui

import (
	"github.com/LagMeester4000/LagGui-sub000/arena"
	"github.com/chewxy/math32"
)

// RetainedTableSize is the fixed bucket count of every panel's retained table.
// Tables never resize; colliding IDs chain within a bucket.
const RetainedTableSize = 64

// RetainedData is the per-element state that survives from frame to frame.
// A fresh entry is all zeros: not hovered, not active, closed, unscrolled.
type RetainedData struct {
	HoverT, GoalHoverT   float32
	ActiveT, GoalActiveT float32
	Open                 bool
	Scroll               Vec2

	id        ID
	next      arena.Handle
	lastFrame uint64
}

// ID returns the element ID the entry belongs to.
func (r *RetainedData) ID() ID { return r.id }

// UpdateTowards eases HoverT and ActiveT toward their goals.
// rate is in 1/seconds; the ease is exponential so it is frame-rate independent.
func (r *RetainedData) UpdateTowards(targetHover, targetActive, rate, dt float32) {
	r.GoalHoverT = targetHover
	r.GoalActiveT = targetActive
	k := 1 - math32.Exp(-rate*dt)
	r.HoverT = easeStep(r.HoverT, targetHover, k)
	r.ActiveT = easeStep(r.ActiveT, targetActive, k)
}

func easeStep(cur, goal, k float32) float32 {
	cur += (goal - cur) * k
	if math32.Abs(goal-cur) < 1e-3 {
		return goal
	}
	return cur
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// retainedTable is a panel's fixed bucket array of entry chains plus its free list.
type retainedTable struct {
	buckets [RetainedTableSize]arena.Handle
	free    arena.Handle
	count   int
}

// Retained returns the entry for id in the current panel, creating it on first use.
func (ctx *Context) Retained(id ID) *RetainedData {
	h := ctx.currentPanel()
	if !h.Valid() {
		ctx.fatalf(ErrNoPanel, "retained lookup outside BeginPanel/EndPanel")
	}
	return ctx.PanelRetained(h, id)
}

// PanelRetained returns the entry for id in panel h, creating it on first use.
func (ctx *Context) PanelRetained(h PanelHandle, id ID) *RetainedData {
	p := ctx.panelPtr(h)
	t := &p.retained
	bucket := &t.buckets[id%RetainedTableSize]
	for e := *bucket; e.Valid(); {
		rd := ctx.retained.Get(e)
		if rd.id == id {
			rd.lastFrame = ctx.FrameCount
			return rd
		}
		e = rd.next
	}

	e, rd := ctx.allocRetained(t)
	*rd = RetainedData{id: id, next: *bucket, lastFrame: ctx.FrameCount}
	*bucket = e
	t.count++
	return rd
}

// allocRetained pops the panel free list, then the context free list, then the pool.
func (ctx *Context) allocRetained(t *retainedTable) (arena.Handle, *RetainedData) {
	if e := t.free; e.Valid() {
		rd := ctx.retained.Get(e)
		t.free = rd.next
		return e, rd
	}
	if e := ctx.retainedFree; e.Valid() {
		rd := ctx.retained.Get(e)
		ctx.retainedFree = rd.next
		return e, rd
	}
	if ctx.retained.Len() == ctx.retained.Cap() {
		ctx.fatalf(ErrRetainedCapacity, "retained entries exhausted at %d", ctx.retained.Cap())
	}
	return ctx.retained.Alloc()
}

// PruneRetained returns entries of panel name that were not looked up for
// idleFrames frames to the panel's free list. It never runs implicitly.
// It returns the number of entries released.
func (ctx *Context) PruneRetained(name string, idleFrames uint64) int {
	h := ctx.findPanel(hashString(rootSeed, name))
	if !h.Valid() {
		return 0
	}
	p := ctx.panelPtr(h)
	t := &p.retained
	released := 0
	for i := range t.buckets {
		link := &t.buckets[i]
		for e := *link; e.Valid(); e = *link {
			rd := ctx.retained.Get(e)
			if ctx.FrameCount-rd.lastFrame < idleFrames {
				link = &rd.next
				continue
			}
			*link = rd.next
			*rd = RetainedData{next: t.free}
			t.free = e
			t.count--
			released++
		}
	}
	if released > 0 {
		ctx.log.Debug("pruned retained data", "panel", p.Name, "released", released)
	}
	return released
}

// releaseRetained moves every entry of a dying panel to the context free list.
func (ctx *Context) releaseRetained(t *retainedTable) {
	push := func(e arena.Handle) {
		for e.Valid() {
			rd := ctx.retained.Get(e)
			next := rd.next
			*rd = RetainedData{next: ctx.retainedFree}
			ctx.retainedFree = e
			e = next
		}
	}
	for i := range t.buckets {
		push(t.buckets[i])
		t.buckets[i] = arena.Nil
	}
	push(t.free)
	t.free = arena.Nil
	t.count = 0
}

// Animate eases rd toward res and returns the smoothed hover and active amounts.
func (ctx *Context) Animate(rd *RetainedData, res InputResult) (hoverT, activeT float32) {
	rd.UpdateTowards(boolf(res.Hover), boolf(res.Down), ctx.style.AnimationRate, ctx.DeltaTime)
	return rd.HoverT, rd.ActiveT
}
