// Example opens a window with three panels, two of them docked into the first.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config gui.toml -font DejaVuSans.ttf
//
// Drag a title bar to move a panel, the bottom-right grip to resize it.
// "Undock" in the inspector releases the panel into a floating window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/LagMeester4000/LagGui-sub000"
	"github.com/LagMeester4000/LagGui-sub000/backend/opengl"
	"github.com/LagMeester4000/LagGui-sub000/font"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "gui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "gui.toml", "optional TOML config")
	fontPath := flag.String("font", "", "optional TTF font")
	flag.Parse()

	if err := run(*configPath, *fontPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	volume    float32
	quality   int
	vsync     bool
	mode      int
	clicks    int
	items     []string
	inspector bool
}

func run(configPath, fontPath string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg, err := gui.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = gui.DefaultConfig()
		cfg.Style = gui.DarkStyle()
	} else if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	atlas := font.Default()
	if fontPath != "" {
		if atlas, err = font.Load(fontPath, 15); err != nil {
			return err
		}
	}
	if err := renderer.UploadFont(atlas); err != nil {
		return err
	}

	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithConfig(cfg), gui.WithFont(atlas), gui.WithLogger(log))
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { ui.Resize(w, h) })

	a := &app{volume: 0.5, quality: 2, vsync: true, inspector: true}
	for i := range 500 {
		a.items = append(a.items, fmt.Sprintf("Entity %03d", i))
	}

	docked := false
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.Update(), gui.Vec2{X: float32(w), Y: float32(h)}, 1.0/60.0)
		a.build(ctx)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		input.EndFrame()

		// Panels exist once they have been built, so dock after the first frame.
		if !docked {
			ctx.DockPanel("Outliner", "Workspace", gui.DockRight, 0.3)
			ctx.DockPanel("Log", "Workspace", gui.DockDown, 0.25)
			docked = true
		}

		window.SwapBuffers()
	}

	return nil
}

func (a *app) build(ctx *gui.Context) {
	ctx.Panel("Workspace", gui.Rect{X: 20, Y: 20, W: 900, H: 600}, gui.PanelDefault)(func() {
		ctx.Section("Audio")(func() {
			ctx.SliderFloat("Volume", &a.volume, 0, 1)
			ctx.ProgressBar(a.volume)
		})
		ctx.Section("Video")(func() {
			ctx.SliderInt("Quality", &a.quality, 0, 4)
			ctx.Checkbox("VSync", &a.vsync)
			ctx.RadioGroupHorizontal("Mode", &a.mode, []string{"Windowed", "Borderless", "Fullscreen"})
		})
		ctx.Separator()
		ctx.Row(gui.Sz(gui.Pc(1), gui.Fit()))(func() {
			if ctx.Button("Click me") {
				a.clicks++
			}
			ctx.Labelf("clicked %d times", a.clicks)
		})
		if ctx.Button("Toggle inspector") {
			a.inspector = !a.inspector
			if a.inspector {
				ctx.OpenPanel("Inspector")
			} else {
				ctx.ClosePanel("Inspector")
			}
		}
	})

	ctx.Panel("Outliner", gui.Rect{W: 250, H: 400}, gui.PanelDefault)(func() {
		ctx.List("entities", gui.Sz(gui.Pc(1), gui.Rem(1)), len(a.items), ctx.LineHeight(), func(i int) {
			ctx.Label(a.items[i])
		})
	})

	ctx.Panel("Log", gui.Rect{W: 400, H: 150}, gui.PanelDefault)(func() {
		ctx.Scroll("log", gui.Sz(gui.Pc(1), gui.Rem(1)))(func() {
			for i := range 40 {
				ctx.Labelf("[%02d] frame %d", i, ctx.FrameCount)
			}
		})
	})

	ctx.Panel("Inspector", gui.Rect{X: 960, Y: 40, W: 280, H: 220}, gui.PanelDefault|gui.PanelAutoResizeY)(func() {
		ctx.TextWrapped("Floating panels snap to the screen edges and to each other while dragged.", 250)
		if ctx.Button("Undock outliner") {
			ctx.UndockPanel("Outliner")
		}
	})
}
