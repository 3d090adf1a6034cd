package gui

import "github.com/chewxy/math32"

// sliderGrabWidth is the width of the slider handle in pixels.
const sliderGrabWidth float32 = 10

// SliderFloat draws a horizontal slider for float32 values filling the rest of
// the row, followed by its label. Returns true if the value was changed.
// Press or drag anywhere on the track to set the value. While hovered, the
// wheel and the Left/Right keys step it by 1% of the range.
//
//	if ctx.SliderFloat("Volume", &volume, 0, 1) {
//	    updateVolume(volume)
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32) bool {
	return ctx.slider(label, value, minVal, maxVal, (maxVal-minVal)/100, "%s %.3g")
}

// SliderInt is SliderFloat for integers. The value snaps to whole numbers and
// the wheel and keys step it by at least 1.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int) bool {
	step := float32(max(1, (maxVal-minVal)/100))
	if maxVal < minVal {
		step = -float32(max(1, (minVal-maxVal)/100))
	}
	f := float32(*value)
	ctx.slider(label, &f, float32(minVal), float32(maxVal), step, "%s %.0f")
	n := int(math32.Round(f))
	if n == *value {
		return false
	}
	*value = n
	return true
}

// slider builds the track and label shared by SliderFloat and SliderInt.
// step is what one wheel notch or arrow key adds to the value.
func (ctx *Context) slider(label string, value *float32, minVal, maxVal, step float32, format string) bool {
	id := ctx.GetID(label)
	changed := false
	ctx.PushBoxID(0, Sz(Pc(1), Fit()), BoxHorizontal).
		WithGap(ctx.style.ItemSpacing).
		WithAlign(AlignStart, AlignCenter)

	track := ctx.MakeBoxID(id, Sz(Rem(1), Px(ctx.LineHeight())), 0)
	res := ctx.BoxInput(track, true)
	rd := ctx.Retained(id)
	_, activeT := ctx.Animate(rd, res)

	v := *value
	if (res.Pressed || res.Dragging) && track.PrevRect.W > sliderGrabWidth {
		r := track.PrevRect
		t := clampf((ctx.mousePos().X-r.X-sliderGrabWidth/2)/(r.W-sliderGrabWidth), 0, 1)
		v = minVal + t*(maxVal-minVal)
	}
	if res.Hover && ctx.Input != nil {
		v += ctx.Input.MouseWheelY * step
		ctx.RequestKeyboard()
		if ctx.Input.KeyPressed(KeyLeft) {
			v -= step
		}
		if ctx.Input.KeyPressed(KeyRight) {
			v += step
		}
	}
	v = clampf(v, math32.Min(minVal, maxVal), math32.Max(minVal, maxVal))
	if v != *value {
		*value = v
		changed = true
	}

	t := float32(0)
	if maxVal != minVal {
		t = (*value - minVal) / (maxVal - minVal)
	}
	s := &ctx.style
	grab := LerpColor(s.SliderGrabColor, s.SliderGrabActive, activeT)
	fill, bg := s.SliderFillColor, s.SliderTrackColor
	track.WithColor(bg).WithDrawer(DrawerFunc(func(_ *Box, p Painter, r Rect) {
		x := r.X + (r.W-sliderGrabWidth)*t
		p.DrawRect(Rect{X: r.X, Y: r.Y, W: x - r.X, H: r.H}, fill)
		p.DrawRect(Rect{X: x, Y: r.Y, W: sliderGrabWidth, H: r.H}, grab)
	}))

	ctx.Labelf(format, splitLabel(label), *value)
	ctx.PopBox()
	return changed
}
