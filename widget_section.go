package gui

// Section is a collapsible region: a CollapsingHeader followed, when open, by
// the contents in an indented column. Sections nest.
//
//	ctx.Section("Settings")(func() {
//	    ctx.SliderFloat("Volume", &vol, 0, 1)
//	    ctx.Section("Advanced")(func() {
//	        ctx.Label("Nested content")
//	    })
//	})
func (ctx *Context) Section(label string) func(func()) {
	return func(contents func()) {
		if !ctx.BeginSection(label) {
			return
		}
		contents()
		ctx.EndSection()
	}
}

// BeginSection draws the header and, when open, opens the indented column and
// the section's ID scope. Call EndSection only if it returned true.
func (ctx *Context) BeginSection(label string) bool {
	if !ctx.CollapsingHeader(label) {
		return false
	}
	ctx.PushID(label)
	ctx.LayoutHorizontal(AlignStart, AlignStart, Sz(Pc(1), Fit()), 0)
	ctx.Spacer(Sz(Px(ctx.style.IndentSize), Px(0)))
	ctx.LayoutVertical(AlignStart, AlignStart, Sz(Rem(1), Fit()), 0).WithGap(ctx.style.ItemSpacing)
	return true
}

// EndSection closes a section opened by BeginSection.
func (ctx *Context) EndSection() {
	ctx.LayoutEnd()
	ctx.LayoutEnd()
	ctx.PopID()
}

// SetSectionOpen opens or closes the section label in the current scope.
func (ctx *Context) SetSectionOpen(label string, open bool) {
	ctx.Retained(ctx.GetID(label)).Open = open
}
