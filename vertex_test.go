package imdraw

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("expected 1 buffer layout, got %d", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(l.Attributes))
	}

	pos, col := l.Attributes[0], l.Attributes[1]
	if pos.Format != gputypes.VertexFormatFloat32x2 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v", pos)
	}
	if col.Format != gputypes.VertexFormatFloat32x4 || col.Offset != 8 || col.ShaderLocation != 1 {
		t.Errorf("color attribute = %+v", col)
	}
}

func TestAppendVertexBytes(t *testing.T) {
	vs := []Vertex{
		{Position: [2]float32{-1, 1}, Color: [4]float32{1, 0.5, 0.25, 1}},
		{Position: [2]float32{0.5, -0.5}, Color: [4]float32{0, 0, 0, 0}},
	}
	buf := AppendVertexBytes(nil, vs)
	if len(buf) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(buf), 2*VertexStride)
	}

	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}
	want := []float32{-1, 1, 1, 0.5, 0.25, 1, 0.5, -0.5, 0, 0, 0, 0}
	for i, w := range want {
		if got := readF32(i * 4); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestAppendVertexBytes_ReusesCapacity(t *testing.T) {
	staging := make([]byte, 0, 10*VertexStride)
	vs := make([]Vertex, 3)
	out := AppendVertexBytes(staging[:0], vs)
	if len(out) != 3*VertexStride {
		t.Fatalf("len = %d", len(out))
	}
	if &out[0] != &staging[:1][0] {
		t.Error("expected staging buffer to be reused")
	}

	prefix := []byte{0xAA}
	out = AppendVertexBytes(prefix, vs[:1])
	if len(out) != 1+VertexStride || out[0] != 0xAA {
		t.Errorf("prefix not preserved: len=%d first=%x", len(out), out[0])
	}
}
