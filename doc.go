/*
Package gui provides an immediate-mode GUI library with box layout, docking
panels and a single input router, built around a dedicated Context type.

# Overview

The UI is rebuilt every frame. Widgets are plain method calls that return their
interaction result directly; there are no widget objects or callbacks to keep in
sync with application state.

Each frame builds a tree of boxes per panel. When the frame ends the tree is
laid out in two passes (measure, then place), input is resolved against last
frame's geometry, and the result is flattened into a DrawList for the backend.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1920, 1080)
	_ = renderer.UploadFont(font.Default())
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	input := opengl.NewGLFWInputAdapter(window)

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    ctx := ui.Begin(input.Update(), gui.Vec2{X: 1920, Y: 1080}, deltaTime)

	    ctx.Panel("Menu", gui.Rect{X: 20, Y: 20, W: 300, H: 200}, gui.PanelDefault)(func() {
	        ctx.Label("Hello World")
	        if ctx.Button("Click Me") {
	            // Button was clicked
	        }
	    })

	    if err := ui.End(); err != nil {
	        return err
	    }
	    input.EndFrame()
	    window.SwapBuffers()
	}

# IDs

Every interactive element is identified by an ID hashed from its label and the
enclosing ID scope. A panel opens a scope seeded by its own ID, and PushID opens
nested scopes, so the same label in two panels or two loop iterations never
collides:

	for i := range items {
	    ctx.PushIDInt(i)
	    ctx.Button("Delete")
	    ctx.PopID()
	}

The part of a label after "##" is hashed but not displayed, so "OK##confirm"
and "OK##cancel" are two buttons both labelled "OK".

# Layout

Boxes size each axis with one of four rules:

	Px(v)   a fixed number of pixels
	Pc(f)   a fraction of the parent's content size
	Rem(f)  a weighted share of what is left after Px, Pc and Fit siblings
	Fit()   the size of the children (or of the text for leaf boxes)

Containers stack their children along one axis with an optional gap and align
them with AlignStart, AlignCenter or AlignEnd on both axes:

	ctx.Row(gui.Sz(gui.Pc(1), gui.Fit()))(func() {
	    ctx.Button("Left")
	    ctx.Spacer(gui.Sz(gui.Rem(1), gui.Px(0)))
	    ctx.Button("Right")
	})

Layout runs when the frame ends, so a box's Rect holds last frame's geometry
while it is being built. Input is resolved against that geometry.

# Panels and Docking

Panels are top-level windows in a back-to-front order. Clicking a panel brings
it to the front. PanelDefault panels have a title bar to drag, a grip to
resize, and snap to the screen edges and to other panels while moved.

DockPanel attaches one panel to a side of another. Right children share a
strip on the right of the parent, down children take a band along the bottom:

	ctx.DockPanel("Outliner", "Workspace", gui.DockRight, 0.3)
	ctx.DockPanel("Console", "Workspace", gui.DockDown, 0.25)

Undocking hands the freed share back to the remaining children on the same
side. A parent with PanelDockReplaceWhenOne gives its place to its last
remaining child.

# Retained State

Immediate-mode widgets still need a little memory between frames: hover and
active animation, open/closed headers, scroll offsets. Retained returns the
per-panel entry for an ID, creating it on first use. PruneRetained releases
entries not touched for a number of frames.

# Scrolling

Scroll and BeginScroll/EndScroll build a clipping box whose children are offset
by the retained scroll position. The mouse wheel scrolls the box under the
cursor and the scrollbar grab can be dragged. List virtualizes long lists by
building only the rows in view.

# Usage Errors

Misuse of the API (unbalanced PushID/PopID, BeginPanel without EndPanel,
exceeding a configured capacity) panics with a *UsageError naming the kind and
the caller's file and line. These are programming errors; fix the call site.

# Configuration

Capacities, snapping and the style can be loaded from TOML:

	cfg, err := gui.LoadConfig("gui.toml")
	if err != nil {
	    return err
	}
	ui := gui.New(renderer, gui.WithConfig(cfg))

	# gui.toml
	max_panels = 32

	[snap]
	edge_margin = 8

	[style]
	panel_padding = 6

# Keyboard Shortcuts Reference

Sliders capture the keyboard while hovered:

	Left Arrow       Decrease by one step
	Right Arrow      Increase by one step
	Mouse Wheel      Scroll the box under the cursor, or step a hovered slider

Context.WantCaptureKeyboard and Context.WantCaptureMouse report when the GUI
claimed the keyboard or the pointer, so the host can skip its own handling.
*/
package gui
