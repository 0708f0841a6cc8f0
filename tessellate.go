package imdraw

import (
	"math"

	"github.com/gogpu/imdraw/internal/unitcircle"
)

// Tessellation helpers append triangle-list vertices in NDC to dst.
// window is the surface size in pixels.

// appendRectangle emits two triangles, (TL, BL, TR) and (TR, BL, BR),
// sharing the BL-TR diagonal.
func appendRectangle(dst []Vertex, window, pos Vector2, width, height float32, color [4]float32) []Vertex {
	tl := pos.ToNDC(window).Array()
	tr := V2(pos.X+width, pos.Y).ToNDC(window).Array()
	bl := V2(pos.X, pos.Y+height).ToNDC(window).Array()
	br := V2(pos.X+width, pos.Y+height).ToNDC(window).Array()

	return append(dst,
		Vertex{Position: tl, Color: color},
		Vertex{Position: bl, Color: color},
		Vertex{Position: tr, Color: color},

		Vertex{Position: tr, Color: color},
		Vertex{Position: bl, Color: color},
		Vertex{Position: br, Color: color},
	)
}

// appendTriangle emits a, b, c in the given order.
func appendTriangle(dst []Vertex, window, a, b, c Vector2, color [4]float32) []Vertex {
	return append(dst,
		Vertex{Position: a.ToNDC(window).Array(), Color: color},
		Vertex{Position: b.ToNDC(window).Array(), Color: color},
		Vertex{Position: c.ToNDC(window).Array(), Color: color},
	)
}

// appendCircle emits a fan of rim.Segments() triangles around center.
// Slice i spans rim[i] to rim[i+1]; the table starts at angle 0 (+X) and
// sweeps toward +Y. An empty table emits nothing.
func appendCircle(dst []Vertex, window, center Vector2, radius float32, rim unitcircle.Table, color [4]float32) []Vertex {
	if rim.Segments() == 0 {
		return dst
	}
	c := center.ToNDC(window).Array()

	prev := circlePoint(center, radius, rim[0]).ToNDC(window).Array()
	for _, d := range rim[1:] {
		next := circlePoint(center, radius, d).ToNDC(window).Array()
		dst = append(dst,
			Vertex{Position: c, Color: color},
			Vertex{Position: prev, Color: color},
			Vertex{Position: next, Color: color},
		)
		prev = next
	}
	return dst
}

func circlePoint(center Vector2, radius float32, d unitcircle.Dir) Vector2 {
	return Vector2{
		X: center.X + radius*d.Cos,
		Y: center.Y + radius*d.Sin,
	}
}

// rectangleVertexCount, triangleVertexCount and circleVertexCount give the
// number of vertices each primitive adds to the batch.
const (
	rectangleVertexCount = 6
	triangleVertexCount  = 3
)

// circleVertexCount saturates at math.MaxInt.
func circleVertexCount(segments int) int {
	if segments <= 0 {
		return 0
	}
	if segments > math.MaxInt/3 {
		return math.MaxInt
	}
	return segments * 3
}
