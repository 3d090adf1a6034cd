// Package opengl provides an OpenGL 4.1 backend for the GUI package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/LagMeester4000/LagGui-sub000"
	"github.com/LagMeester4000/LagGui-sub000/font"
)

// Renderer draws finalized DrawLists with OpenGL. Textured commands sample
// single-channel glyph atlases uploaded with UploadFont.
type Renderer struct {
	program       uint32
	vao, vbo, ebo uint32
	uProjection   int32
	uAtlas        int32
	uTextured     int32
	width, height int

	atlases map[uint32]bool
}

var _ gui.Renderer = (*Renderer)(nil)

const vertexShader = `#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
layout (location = 2) in vec4 inColor;
uniform mat4 projection;
out vec2 uv;
out vec4 color;
void main() {
    uv = inUV;
    color = inColor;
    gl_Position = projection * vec4(inPos, 0.0, 1.0);
}
` + "\x00"

// The atlas red channel is glyph coverage; untextured quads use the vertex color.
const fragmentShader = `#version 410 core
in vec2 uv;
in vec4 color;
uniform sampler2D atlas;
uniform bool textured;
out vec4 fragColor;
void main() {
    float coverage = textured ? texture(atlas, uv).r : 1.0;
    fragColor = vec4(color.rgb, color.a * coverage);
}
` + "\x00"

// NewRenderer creates the shader and vertex buffers. A GL context must be
// current. Call UploadFont for every atlas the GUI draws with.
func NewRenderer(width, height int) (*Renderer, error) {
	program, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}
	r := &Renderer{
		program: program,
		width:   width,
		height:  height,
		atlases: make(map[uint32]bool),
	}
	r.uProjection = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	r.uAtlas = gl.GetUniformLocation(program, gl.Str("atlas\x00"))
	r.uTextured = gl.GetUniformLocation(program, gl.Str("textured\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	var v gui.Vertex
	stride := int32(unsafe.Sizeof(v))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.Pos))
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(v.TexCoord))
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(v.Color))
	for i := uint32(0); i < 3; i++ {
		gl.EnableVertexAttribArray(i)
	}
	gl.BindVertexArray(0)
	return r, nil
}

// Resize sets the framebuffer size the projection and scissor rects map to.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Render draws dl and leaves the caller's GL state as it found it.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.program)
	proj := r.projection()
	gl.UniformMatrix4fv(r.uProjection, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.uAtlas, 0)

	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 || !r.scissor(cmd.ClipRect) {
			continue
		}
		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.uTextured, 1)
		} else {
			gl.Uniform1i(r.uTextured, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// scissor sets the GL scissor box for a top-left origin clip rect
// (x0, y0, x1, y1). It returns false when nothing of it is on screen.
func (r *Renderer) scissor(clip [4]float32) bool {
	x0, y0 := max(clip[0], 0), max(clip[1], 0)
	x1, y1 := min(clip[2], float32(r.width)), min(clip[3], float32(r.height))
	if x1 <= x0 || y1 <= y0 {
		return false
	}
	gl.Scissor(int32(x0), int32(float32(r.height)-y1), int32(x1-x0), int32(y1-y0))
	return true
}

// projection maps pixels, origin top-left, to clip space.
func (r *Renderer) projection() [16]float32 {
	w, h := float32(r.width), float32(r.height)
	return [16]float32{
		2 / w, 0, 0, 0,
		0, -2 / h, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// Delete releases the program, the buffers and every uploaded atlas.
func (r *Renderer) Delete() {
	for tex := range r.atlases {
		gl.DeleteTextures(1, &tex)
	}
	clear(r.atlases)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
	r.program, r.vao, r.vbo, r.ebo = 0, 0, 0, 0
}

// UploadFont uploads the atlas bitmap as a single-channel texture and stores
// the texture ID on the atlas, so glyph quads bind it when drawn.
// Uploading the same atlas again replaces its texture.
func (r *Renderer) UploadFont(a *font.Atlas) error {
	img := a.Image()
	if img == nil || img.Rect.Empty() {
		return fmt.Errorf("opengl: font atlas has no image")
	}
	if old := a.TextureID(); old != 0 {
		gl.DeleteTextures(1, &old)
		delete(r.atlases, old)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride))
	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, w, h, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	a.SetTextureID(tex)
	r.atlases[tex] = true
	return nil
}

// glState is the slice of GL state Render changes.
type glState struct {
	program         int32
	blendSrc        int32
	blendDst        int32
	scissorBox      [4]int32
	blend, depth    bool
	cull, scissorOn bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissorOn = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setEnabled(gl.BLEND, s.blend)
	setEnabled(gl.DEPTH_TEST, s.depth)
	setEnabled(gl.CULL_FACE, s.cull)
	setEnabled(gl.SCISSOR_TEST, s.scissorOn)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// linkProgram compiles both stages and links them.
func linkProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &msg[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func compileShader(kind uint32, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &msg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return shader, nil
}
