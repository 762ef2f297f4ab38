package core

// GPU resources are opaque to the engine; backends hand out their own types.

type Texture interface {
	ID() uint32
	Size() (w, h int)
}

type Pipeline interface{ ID() uint32 }

type Mesh interface{ ID() uint32 }

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes a texture upload. Filters are "nearest" or
// "linear", wraps are "clamp" or "repeat".
type TextureDesc struct {
	Width, Height        int
	Format               TextureFormat
	Pixels               []byte // tightly packed rows, top row first
	MinFilter, MagFilter string
	WrapU, WrapV         string
}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32 // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

// MeshDesc sizes a dynamic mesh; UpdateMesh replaces its contents.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws every index of Mesh with Pipe. Uniform values may be
// float32, int32, [2]float32, [4]float32 or [16]float32; Samplers bind
// textures to the named sampler uniforms in unit order.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}
