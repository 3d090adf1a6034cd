package gui

import "github.com/chewxy/math32"

// SnapConfig configures how dragged panels snap.
type SnapConfig struct {
	Enabled     bool    `toml:"enabled"`
	GridSize    float32 `toml:"grid_size"`    // snap to a grid of this size (0 = off)
	EdgeMargin  float32 `toml:"edge_margin"`  // snap to display edges and center within this distance
	PanelMargin float32 `toml:"panel_margin"` // snap to other panels' edges within this distance
}

// DefaultSnapConfig returns a sensible default snap configuration.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		Enabled:     true,
		EdgeMargin:  10,
		PanelMargin: 6,
	}
}

// SnapGuide is a line drawn while a panel is snapped to it.
type SnapGuide struct {
	From, To   Vec2
	Horizontal bool
}

// snapAxis tracks the best candidate on one axis.
type snapAxis struct {
	pos   float32 // new rect position
	dist  float32
	guide SnapGuide
	ok    bool
}

func (s *snapAxis) offer(edge, target, pos, margin float32, guide SnapGuide) {
	d := math32.Abs(edge - target)
	if d >= margin || (s.ok && d >= s.dist) {
		return
	}
	*s = snapAxis{pos: pos, dist: d, guide: guide, ok: true}
}

// snapRect moves r so its edges or center land on nearby display edges, the
// display center or the edges of others. The closest candidate wins per axis.
func snapRect(r Rect, display Vec2, others []Rect, cfg SnapConfig) (Rect, []SnapGuide) {
	if !cfg.Enabled {
		return r, nil
	}
	if cfg.GridSize > 0 {
		r.X = math32.Round(r.X/cfg.GridSize) * cfg.GridSize
		r.Y = math32.Round(r.Y/cfg.GridSize) * cfg.GridSize
	}

	var sx, sy snapAxis
	vline := func(x, y0, y1 float32) SnapGuide { return SnapGuide{From: Vec2{x, y0}, To: Vec2{x, y1}} }
	hline := func(y, x0, x1 float32) SnapGuide {
		return SnapGuide{From: Vec2{x0, y}, To: Vec2{x1, y}, Horizontal: true}
	}

	if m := cfg.EdgeMargin; m > 0 {
		sx.offer(r.X, 0, 0, m, vline(0, 0, display.Y))
		sx.offer(r.X+r.W, display.X, display.X-r.W, m, vline(display.X, 0, display.Y))
		sx.offer(r.X+r.W/2, display.X/2, display.X/2-r.W/2, m, vline(display.X/2, 0, display.Y))
		sy.offer(r.Y, 0, 0, m, hline(0, 0, display.X))
		sy.offer(r.Y+r.H, display.Y, display.Y-r.H, m, hline(display.Y, 0, display.X))
		sy.offer(r.Y+r.H/2, display.Y/2, display.Y/2-r.H/2, m, hline(display.Y/2, 0, display.X))
	}

	if m := cfg.PanelMargin; m > 0 {
		for _, o := range others {
			y0, y1 := math32.Min(r.Y, o.Y), math32.Max(r.Y+r.H, o.Y+o.H)
			x0, x1 := math32.Min(r.X, o.X), math32.Max(r.X+r.W, o.X+o.W)
			// Abut or align each of our vertical edges with each of theirs.
			sx.offer(r.X+r.W, o.X, o.X-r.W, m, vline(o.X, y0, y1))
			sx.offer(r.X, o.X, o.X, m, vline(o.X, y0, y1))
			sx.offer(r.X, o.X+o.W, o.X+o.W, m, vline(o.X+o.W, y0, y1))
			sx.offer(r.X+r.W, o.X+o.W, o.X+o.W-r.W, m, vline(o.X+o.W, y0, y1))
			sy.offer(r.Y+r.H, o.Y, o.Y-r.H, m, hline(o.Y, x0, x1))
			sy.offer(r.Y, o.Y, o.Y, m, hline(o.Y, x0, x1))
			sy.offer(r.Y, o.Y+o.H, o.Y+o.H, m, hline(o.Y+o.H, x0, x1))
			sy.offer(r.Y+r.H, o.Y+o.H, o.Y+o.H-r.H, m, hline(o.Y+o.H, x0, x1))
		}
	}

	var guides []SnapGuide
	if sx.ok {
		r.X = sx.pos
		guides = append(guides, sx.guide)
	}
	if sy.ok {
		r.Y = sy.pos
		guides = append(guides, sy.guide)
	}
	return r, guides
}
