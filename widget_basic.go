package gui

import "github.com/chewxy/math32"

// Label draws a line of text sized to fit.
func (ctx *Context) Label(text string) *Box {
	return ctx.LabelColored(text, ctx.style.TextColor)
}

// LabelColored draws text in a specific color.
func (ctx *Context) LabelColored(text string, color uint32) *Box {
	return ctx.MakeBoxID(0, Sz(Fit(), Fit()), 0).WithText(text, color)
}

// LabelDisabled draws text in the disabled color.
func (ctx *Context) LabelDisabled(text string) *Box {
	return ctx.LabelColored(text, ctx.style.TextDisabledColor)
}

// Labelf formats into the temp arena and draws the result.
func (ctx *Context) Labelf(format string, args ...any) *Box {
	return ctx.Label(ctx.Textf(format, args...))
}

// Spacer adds an empty box of the given size.
func (ctx *Context) Spacer(size Size2) *Box {
	return ctx.MakeBoxID(0, size, 0)
}

// Separator draws a one pixel line across the current container.
func (ctx *Context) Separator() *Box {
	return ctx.MakeBoxID(0, Sz(Pc(1), Px(1)), 0).WithColor(ctx.style.SeparatorColor)
}

// buttonColor blends the button colors by the eased hover and press amounts.
func (ctx *Context) buttonColor(hoverT, activeT float32) uint32 {
	s := &ctx.style
	return LerpColor(LerpColor(s.ButtonColor, s.ButtonHoveredColor, hoverT), s.ButtonActiveColor, activeT)
}

// Button draws a clickable button sized to its label and returns true when clicked.
// "Label##key" shows Label and hashes the whole string.
func (ctx *Context) Button(label string) bool {
	return ctx.ButtonSized(label, Sz(Fit(), Fit()))
}

// ButtonSized is Button with an explicit size.
func (ctx *Context) ButtonSized(label string, size Size2) bool {
	id := ctx.GetID(label)
	b := ctx.MakeBoxID(id, size, BoxDrawRect).
		WithPadding(ctx.style.ButtonPadding).
		WithText(splitLabel(label), ctx.style.TextColor).
		WithAlign(AlignCenter, AlignCenter)

	res := ctx.BoxInput(b, false)
	hoverT, activeT := ctx.Animate(ctx.Retained(id), res)
	b.Color = ctx.buttonColor(hoverT, activeT)
	if guiVerbose() && res.Clicked {
		ctx.log.Debug("button clicked", "label", label, "id", uint32(id))
	}
	return res.Clicked
}

// toggleRow pushes the row shared by Checkbox and RadioButton and returns it
// with its input. The caller builds the indicator, then calls toggleLabel.
func (ctx *Context) toggleRow(label string) (*Box, InputResult) {
	id := ctx.GetID(label)
	row := ctx.PushBoxID(id, Sz(Fit(), Fit()), BoxHorizontal).
		WithGap(ctx.style.ItemSpacing).
		WithAlign(AlignStart, AlignCenter)
	return row, ctx.BoxInput(row, false)
}

func (ctx *Context) toggleLabel(label string) {
	ctx.Label(splitLabel(label))
	ctx.PopBox()
}

// Checkbox toggles *value when clicked and returns true if it changed.
func (ctx *Context) Checkbox(label string, value *bool) bool {
	row, res := ctx.toggleRow(label)
	hoverT, activeT := ctx.Animate(ctx.Retained(row.ID), res)

	h := ctx.LineHeight()
	ctx.PushBoxID(0, Sz(Px(h), Px(h)), BoxDrawBorder).
		WithColor(ctx.buttonColor(hoverT, activeT)).
		WithBorder(ctx.style.PanelBorderColor).
		WithAlign(AlignCenter, AlignCenter)
	if *value {
		ctx.MakeBoxID(0, Sz(Pc(0.6), Pc(0.6)), 0).WithColor(ctx.style.CheckColor)
	}
	ctx.PopBox()
	ctx.toggleLabel(label)

	if res.Clicked {
		*value = !*value
	}
	return res.Clicked
}

// RadioButton draws a round indicator filled when active and returns true when clicked.
func (ctx *Context) RadioButton(label string, active bool) bool {
	row, res := ctx.toggleRow(label)
	hoverT, activeT := ctx.Animate(ctx.Retained(row.ID), res)

	h := ctx.LineHeight()
	ring := ctx.buttonColor(hoverT, activeT)
	ctx.PushBoxID(0, Sz(Px(h), Px(h)), 0).
		WithDrawer(circleDrawer(ring)).
		WithAlign(AlignCenter, AlignCenter)
	if active {
		ctx.MakeBoxID(0, Sz(Pc(0.5), Pc(0.5)), 0).WithDrawer(circleDrawer(ctx.style.CheckColor))
	}
	ctx.PopBox()
	ctx.toggleLabel(label)
	return res.Clicked
}

// circleSegments is the triangle fan resolution of drawn circles.
const circleSegments = 16

// circleDrawer fills the largest circle that fits the box.
func circleDrawer(color uint32) Drawer {
	return DrawerFunc(func(_ *Box, p Painter, r Rect) {
		c := Vec2{r.X + r.W/2, r.Y + r.H/2}
		rad := math32.Min(r.W, r.H) / 2
		prev := Vec2{c.X + rad, c.Y}
		for i := 1; i <= circleSegments; i++ {
			a := float32(i) * 2 * math32.Pi / circleSegments
			next := Vec2{c.X + rad*math32.Cos(a), c.Y + rad*math32.Sin(a)}
			p.DrawTriangle(c, prev, next, color, color, color)
			prev = next
		}
	})
}

// CollapsingHeader draws a full-width header that toggles an open flag kept in
// retained data. It returns whether the section is open.
func (ctx *Context) CollapsingHeader(label string) bool {
	id := ctx.GetID(label)
	rd := ctx.Retained(id)
	arrow := "+"
	if rd.Open {
		arrow = "-"
	}
	b := ctx.MakeBoxID(id, Sz(Pc(1), Fit()), 0).
		WithPadding(ctx.style.ButtonPadding).
		WithText(ctx.Textf("%s %s", arrow, splitLabel(label)), ctx.style.TextColor)

	res := ctx.BoxInput(b, false)
	hoverT, activeT := ctx.Animate(rd, res)
	b.WithColor(ctx.buttonColor(hoverT, activeT))
	if res.Clicked {
		rd.Open = !rd.Open
	}
	return rd.Open
}

// ProgressBar draws a full-width bar filled to fraction (0..1).
func (ctx *Context) ProgressBar(fraction float32) *Box {
	fraction = clampf(fraction, 0, 1)
	track, fill := ctx.style.SliderTrackColor, ctx.style.SliderFillColor
	return ctx.MakeBoxID(0, Sz(Pc(1), Px(ctx.LineHeight())), 0).
		WithColor(track).
		WithDrawer(DrawerFunc(func(_ *Box, p Painter, r Rect) {
			r.W *= fraction
			p.DrawRect(r, fill)
		}))
}
