// Command gen renders sample layouts offscreen, reads back the framebuffer,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/LagMeester4000/LagGui-sub000"
	"github.com/LagMeester4000/LagGui-sub000/backend/opengl"
	"github.com/LagMeester4000/LagGui-sub000/font"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	draw   func(ctx *gui.Context)
	setup  func(ctx *gui.Context) // runs between the first and second frame
	frames int                    // frames to render (0 = default 3)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()
	if err := renderer.UploadFont(font.Default()); err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))
	input := gui.NewInputState()

	frames := 3
	if s.frames > 0 {
		frames = s.frames
	}
	for i := range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input, gui.Vec2{X: float32(s.width), Y: float32(s.height)}, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
		if i == 0 && s.setup != nil {
			s.setup(ctx)
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows start at the bottom.
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	rowLen := s.width * 4
	for y := range s.height {
		src := (s.height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	var (
		checked  = true
		radioIdx = 1
		volume   = float32(0.65)
		quality  = 3
	)
	full := func(w, h int) gui.Rect { return gui.Rect{X: 12, Y: 12, W: float32(w - 24), H: float32(h - 24)} }

	return []screenshot{
		{
			name: "text", width: 400, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Text", full(400, 200), gui.PanelTitleBar)(func() {
					ctx.Label("Plain text")
					ctx.LabelColored("Colored text (yellow)", gui.ColorYellow)
					ctx.LabelDisabled("Disabled text")
					ctx.TextWrapped("This is wrapped text that will break across lines when it reaches the edge of the available width.", 340)
				})
			},
		},
		{
			name: "widgets", width: 400, height: 260,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Widgets", full(400, 260), gui.PanelTitleBar)(func() {
					ctx.Row(gui.Sz(gui.Pc(1), gui.Fit()))(func() {
						ctx.Button("Standard Button")
						ctx.Button("Another")
					})
					ctx.Checkbox("Enabled", &checked)
					ctx.RadioGroupHorizontal("Mode", &radioIdx, []string{"One", "Two", "Three"})
					ctx.SliderFloat("Volume", &volume, 0, 1)
					ctx.SliderInt("Quality", &quality, 0, 5)
					ctx.Separator()
					ctx.ProgressBar(volume)
				})
			},
		},
		{
			name: "section", width: 400, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Sections", full(400, 200), gui.PanelTitleBar)(func() {
					ctx.SetSectionOpen("Settings", true)
					ctx.Section("Settings")(func() {
						ctx.Label("Top level")
						ctx.SetSectionOpen("Advanced", true)
						ctx.Section("Advanced")(func() {
							ctx.Label("Nested content")
						})
					})
					ctx.Section("Closed")(func() {})
				})
			},
		},
		{
			name: "list", width: 300, height: 300,
			draw: func(ctx *gui.Context) {
				ctx.Panel("List", full(300, 300), gui.PanelTitleBar)(func() {
					ctx.List("rows", gui.Sz(gui.Pc(1), gui.Rem(1)), 10000, ctx.LineHeight(), func(i int) {
						ctx.Labelf("Row %d", i)
					})
				})
			},
		},
		{
			name: "docking", width: 800, height: 500,
			draw: func(ctx *gui.Context) {
				ctx.Panel("Workspace", full(800, 500), gui.PanelDefault)(func() {
					ctx.Label("Main content")
				})
				ctx.Panel("Outliner", gui.Rect{W: 200, H: 200}, gui.PanelDefault)(func() {
					ctx.Label("Docked right")
				})
				ctx.Panel("Console", gui.Rect{W: 200, H: 200}, gui.PanelDefault)(func() {
					ctx.Label("Docked down")
				})
			},
			setup: func(ctx *gui.Context) {
				ctx.DockPanel("Outliner", "Workspace", gui.DockRight, 0.3)
				ctx.DockPanel("Console", "Workspace", gui.DockDown, 0.3)
			},
		},
	}
}
