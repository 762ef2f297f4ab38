// Package renderer2d batches axis-aligned rects into as few draw calls as the
// texture slots allow. Rects are given by their top-left corner in pixels,
// Y pointing down, which is how the UI lays items out.
package renderer2d

import (
	"strconv"

	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/core"
)

// common GL limit for samplers in one fragment shader
const maxTexSlots = 16

// pos2 + color4 + uv2 + texIndex1
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4},
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4},
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4},
	},
}

// Statistics counts what one scene submitted.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }
func (s Statistics) TotalIndexCount() int  { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	r     core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture

	// slot 0 always holds white
	slots    [maxTexSlots]core.Texture
	used     int
	slotName [maxTexSlots]string

	verts    []float32
	inds     []uint32
	quads    int
	maxQuads int

	vp       [16]float32
	samplers map[string]core.Texture
	uniforms map[string]any
	stats    Statistics
}

// New compiles the quad pipeline and allocates a mesh for maxQuads rects.
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}
	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, err
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, mesh: mesh, white: white, maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.slotName {
		rd.slotName[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	return rd, nil
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.reset()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawRect fills x,y,w,h with c. Empty rects draw nothing.
func (rd *Renderer2D) DrawRect(x, y, w, h float32, c colors.Color) {
	rd.DrawShade(x, y, w, h, c, c)
}

// DrawShade fills a rect with a vertical blend from top to bottom.
func (rd *Renderer2D) DrawShade(x, y, w, h float32, top, bottom colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rd.reserve()
	rd.quad(x, y, x+w, y+h, top, bottom, 0, 0, 0, 1, 1)
}

// DrawRectUV draws the u0,v0 to u1,v1 part of tex over x,y,w,h, tinted.
func (rd *Renderer2D) DrawRectUV(x, y, w, h float32, tex core.Texture, tint colors.Color, u0, v0, u1, v1 float32) {
	if w <= 0 || h <= 0 {
		return
	}
	// both may flush; the slot must be taken after the last flush
	rd.reserve()
	slot := rd.slot(tex)
	rd.quad(x, y, x+w, y+h, tint, tint, slot, u0, v0, u1, v1)
}

func (rd *Renderer2D) DrawSub(x, y, w, h float32, sub SubTexture2D, tint colors.Color) {
	rd.DrawRectUV(x, y, w, h, sub.Texture, tint, sub.U0, sub.V0, sub.U1, sub.V1)
}

func (rd *Renderer2D) slot(t core.Texture) float32 {
	for i := 0; i < rd.used; i++ {
		if rd.slots[i] == t {
			return float32(i)
		}
	}
	if rd.used == maxTexSlots {
		rd.flush()
	}
	rd.slots[rd.used] = t
	rd.used++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.used)
	return float32(rd.used - 1)
}

func (rd *Renderer2D) reserve() {
	if rd.quads == rd.maxQuads {
		rd.flush()
	}
}

// quad appends TL, TR, BL, BR.
func (rd *Renderer2D) quad(x0, y0, x1, y1 float32, top, bottom colors.Color, slot, u0, v0, u1, v1 float32) {
	base := uint32(len(rd.verts) / vStride)
	rd.verts = append(rd.verts,
		x0, y0, top[0], top[1], top[2], top[3], u0, v0, slot,
		x1, y0, top[0], top[1], top[2], top[3], u1, v0, slot,
		x0, y1, bottom[0], bottom[1], bottom[2], bottom[3], u0, v1, slot,
		x1, y1, bottom[0], bottom[1], bottom[2], bottom[3], u1, v1, slot,
	)
	rd.inds = append(rd.inds, base, base+2, base+1, base+1, base+2, base+3)
	rd.quads++
	rd.stats.QuadCount++
}

func (rd *Renderer2D) flush() {
	if rd.quads == 0 {
		return
	}
	if err := rd.r.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		panic(err)
	}
	clear(rd.samplers)
	for i := 0; i < rd.used; i++ {
		rd.samplers[rd.slotName[i]] = rd.slots[i]
	}
	rd.uniforms["uVP"] = rd.vp
	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++
	rd.reset()
}

func (rd *Renderer2D) reset() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.quads = 0
	clear(rd.slots[:])
	rd.slots[0] = rd.white
	rd.used = 1
}
