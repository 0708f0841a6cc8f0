package imdraw

import "math"

// Vector2 is a 2D vector in pixel space (origin top-left, Y down) unless
// stated otherwise.
type Vector2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector2 {
	return Vector2{}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2) Mul(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector2) Div(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the Euclidean length of the vector.
func (v Vector2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if v has zero length.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Distance returns the SQUARED distance between two points, dx*dx + dy*dy.
// Callers comparing against a radius must square the radius; take the square
// root of the result for the Euclidean distance.
func (v Vector2) Distance(w Vector2) float32 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	return dx*dx + dy*dy
}

// AngleBetween returns the unsigned angle between two vectors in radians,
// in [0, π]. Returns 0 if either vector has zero length.
func (v Vector2) AngleBetween(w Vector2) float32 {
	denom := float64(v.Length()) * float64(w.Length())
	if denom == 0 {
		return 0
	}
	cos := float64(v.Dot(w)) / denom
	// Rounding can push |cos| slightly past 1 for (anti)parallel vectors.
	cos = math.Max(-1, math.Min(1, cos))
	return float32(math.Acos(cos))
}

// ToNDC maps a pixel-space point to normalized device coordinates for a
// surface of the given size. Pixel (0,0) maps to (-1,1) and pixel
// (window.X, window.Y) maps to (1,-1).
func (v Vector2) ToNDC(window Vector2) Vector2 {
	return Vector2{
		X: (v.X/window.X)*2 - 1,
		Y: 1 - (v.Y/window.Y)*2,
	}
}

// Array returns the vector as a two-element array, the layout used by Vertex.
func (v Vector2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// IsZero returns true if the vector is the zero vector.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector2) Approx(w Vector2, epsilon float32) bool {
	return math.Abs(float64(v.X-w.X)) < float64(epsilon) &&
		math.Abs(float64(v.Y-w.Y)) < float64(epsilon)
}
