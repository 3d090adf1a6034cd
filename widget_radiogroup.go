package gui

// RadioGroup draws one radio button per item in a column, under an optional
// label. Returns true if the selection changed.
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.RadioGroup("Quality", &selectedIndex, items) {
//	    applyQuality(selectedIndex)
//	}
func (ctx *Context) RadioGroup(label string, selectedIndex *int, items []string) bool {
	return ctx.radioGroup(label, selectedIndex, items, false)
}

// RadioGroupHorizontal is RadioGroup laid out in a row.
func (ctx *Context) RadioGroupHorizontal(label string, selectedIndex *int, items []string) bool {
	return ctx.radioGroup(label, selectedIndex, items, true)
}

func (ctx *Context) radioGroup(label string, selectedIndex *int, items []string, horizontal bool) bool {
	changed := false
	ctx.PushID(label)
	ctx.LayoutVertical(AlignStart, AlignStart, Sz(Fit(), Fit()), 0).WithGap(ctx.style.ItemSpacing)
	if text := splitLabel(label); text != "" {
		ctx.Label(text)
	}
	if horizontal {
		ctx.LayoutHorizontal(AlignStart, AlignCenter, Sz(Fit(), Fit()), 0).WithGap(2 * ctx.style.ItemSpacing)
	}
	for i, item := range items {
		ctx.PushIDInt(i)
		if ctx.RadioButton(item, i == *selectedIndex) && i != *selectedIndex {
			*selectedIndex = i
			changed = true
		}
		ctx.PopID()
	}
	if horizontal {
		ctx.LayoutEnd()
	}
	ctx.LayoutEnd()
	ctx.PopID()
	return changed
}
