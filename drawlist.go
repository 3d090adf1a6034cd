package gui

import (
	"sync"

	"github.com/LagMeester4000/LagGui-sub000/font"
	"github.com/chewxy/math32"
)

// Painter is the drawing surface handed to Drawer hooks.
// Clip rects nest: every PushClip must be matched by a PopClip.
type Painter interface {
	DrawTriangle(p1, p2, p3 Vec2, c1, c2, c3 uint32)
	DrawRect(r Rect, color uint32)
	DrawRectColors(r Rect, topLeft, topRight, bottomRight, bottomLeft uint32)
	DrawRectUV(r Rect, uv0, uv1 Vec2, color uint32, textureID uint32)
	DrawLine(p1, p2 Vec2, color uint32, thickness float32)
	DrawText(pos Vec2, text string, color uint32, f Font, spacing float32)
	PushClip(r Rect)
	PopClip()
}

// drawListPool provides efficient reuse of DrawList buffers.
// This avoids allocations on every frame, which is critical for
// immediate-mode UI where we rebuild the entire draw list each frame.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture and clip rect to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data, relative to the command's VertexOffset

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // vertex offset of the current command
	idxCmdOffset uint32 // index offset of the current command
}

var _ Painter = (*DrawList)(nil)

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// ClipDepth returns the number of open clip rects.
func (dl *DrawList) ClipDepth() int { return len(dl.clipStack) }

// PushClip narrows the clip to r intersected with the current clip.
func (dl *DrawList) PushClip(r Rect) {
	x1 := math32.Max(r.X, dl.currentClip[0])
	y1 := math32.Max(r.Y, dl.currentClip[1])
	x2 := math32.Min(r.X+r.W, dl.currentClip[2])
	y2 := math32.Min(r.Y+r.H, dl.currentClip[3])
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, math32.Max(x1, x2), math32.Max(y1, y2)}
	dl.splitDraw()
}

// PopClip restores the clip that was current before the matching PushClip.
func (dl *DrawList) PopClip() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		if last.ElemCount == 0 {
			// Reuse an empty command instead of leaving a hole.
			dl.CmdBuffer = dl.CmdBuffer[:n-1]
		}
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > 0xFFFF {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	idx := dl.addVertices(v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// DrawRect draws a filled rectangle.
func (dl *DrawList) DrawRect(r Rect, color uint32) {
	dl.DrawRectColors(r, color, color, color, color)
}

// DrawRectColors draws a filled rectangle with a color per corner.
func (dl *DrawList) DrawRectColors(r Rect, topLeft, topRight, bottomRight, bottomLeft uint32) {
	if (topLeft|topRight|bottomRight|bottomLeft)&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	dl.addQuad(
		Vertex{Pos: [2]float32{x0, y0}, Color: topLeft},
		Vertex{Pos: [2]float32{x1, y0}, Color: topRight},
		Vertex{Pos: [2]float32{x1, y1}, Color: bottomRight},
		Vertex{Pos: [2]float32{x0, y1}, Color: bottomLeft},
	)
}

// DrawRectUV draws a textured rectangle sampling uv0..uv1, tinted by color.
func (dl *DrawList) DrawRectUV(r Rect, uv0, uv1 Vec2, color uint32, textureID uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(textureID)
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	dl.addQuad(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{uv0.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{uv1.X, uv0.Y}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{uv1.X, uv1.Y}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{uv0.X, uv1.Y}, Color: color},
	)
}

// DrawRectOutline draws a rectangle outline.
func (dl *DrawList) DrawRectOutline(r Rect, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	t := thickness
	dl.DrawRect(Rect{r.X, r.Y, r.W, t}, color)
	dl.DrawRect(Rect{r.X, r.Y + r.H - t, r.W, t}, color)
	dl.DrawRect(Rect{r.X, r.Y + t, t, r.H - 2*t}, color)
	dl.DrawRect(Rect{r.X + r.W - t, r.Y + t, t, r.H - 2*t}, color)
}

// DrawLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) DrawLine(p1, p2 Vec2, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	inv := float32(1)
	if l := math32.Sqrt(dx*dx + dy*dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(
		Vertex{Pos: [2]float32{p1.X + nx, p1.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{p2.X + nx, p2.Y + ny}, Color: color},
		Vertex{Pos: [2]float32{p2.X - nx, p2.Y - ny}, Color: color},
		Vertex{Pos: [2]float32{p1.X - nx, p1.Y - ny}, Color: color},
	)
}

// DrawTriangle draws a filled triangle with a color per vertex.
func (dl *DrawList) DrawTriangle(p1, p2, p3 Vec2, c1, c2, c3 uint32) {
	if (c1|c2|c3)&0xFF000000 == 0 {
		return
	}
	dl.SetTexture(0)
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{p1.X, p1.Y}, Color: c1},
		Vertex{Pos: [2]float32{p2.X, p2.Y}, Color: c2},
		Vertex{Pos: [2]float32{p3.X, p3.Y}, Color: c3},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// DrawText draws a run of glyphs with the pen starting at pos (top of the line).
func (dl *DrawList) DrawText(pos Vec2, text string, color uint32, f Font, spacing float32) {
	if color&0xFF000000 == 0 || text == "" || f == nil {
		return
	}
	x := pos.X
	for _, r := range text {
		g, _ := f.Glyph(r)
		if g.W > 0 && g.H > 0 {
			dl.drawGlyph(Vec2{x, pos.Y}, g, color, f.TextureID())
		}
		x += g.AdvanceX + spacing
	}
}

func (dl *DrawList) drawGlyph(pen Vec2, g font.Glyph, color, tex uint32) {
	r := Rect{X: pen.X + g.X, Y: pen.Y + g.Y, W: g.W, H: g.H}
	dl.DrawRectUV(r, Vec2{g.U0, g.V0}, Vec2{g.U1, g.V1}, color, tex)
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
