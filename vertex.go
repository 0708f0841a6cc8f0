package imdraw

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex in the shape pipeline.
// Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0, offset 0)
//	color    (vec4<f32>) = 16 bytes (location 1, offset 8)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// Vertex is one corner of a triangle in the per-frame batch. Position is in
// normalized device coordinates; Color is non-premultiplied RGBA in [0, 1].
type Vertex struct {
	Position [2]float32
	Color    [4]float32
}

// VertexLayout returns the vertex buffer layout matching Vertex.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// AppendVertexBytes packs vs in little-endian wire layout onto dst and
// returns the extended slice.
func AppendVertexBytes(dst []byte, vs []Vertex) []byte {
	need := len(dst) + len(vs)*VertexStride
	if cap(dst) < need {
		grown := make([]byte, len(dst), need)
		copy(grown, dst)
		dst = grown
	}
	for i := range vs {
		off := len(dst)
		dst = dst[:off+VertexStride]
		writeVertex(dst[off:], &vs[i])
	}
	return dst
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v *Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Color[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.Color[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.Color[2]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.Color[3]))
}
