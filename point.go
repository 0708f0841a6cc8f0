package imdraw

// Vector2Int is an integer 2D vector, used for pixel-grid positions.
type Vector2Int struct {
	X, Y int32
}

// V2i is a convenience function to create a Vector2Int.
func V2i(x, y int32) Vector2Int {
	return Vector2Int{X: x, Y: y}
}

// ZeroInt returns the integer zero vector.
func ZeroInt() Vector2Int {
	return Vector2Int{}
}

// IsZero reports whether both components are zero.
func (p Vector2Int) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Add returns the sum of two vectors.
func (p Vector2Int) Add(q Vector2Int) Vector2Int {
	return Vector2Int{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two vectors.
func (p Vector2Int) Sub(q Vector2Int) Vector2Int {
	return Vector2Int{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector scaled by a scalar.
func (p Vector2Int) Mul(s int32) Vector2Int {
	return Vector2Int{X: p.X * s, Y: p.Y * s}
}

// Div returns the vector divided by a scalar, truncating toward zero.
// Division by zero returns the zero vector.
func (p Vector2Int) Div(s int32) Vector2Int {
	if s == 0 {
		return Vector2Int{}
	}
	return Vector2Int{X: p.X / s, Y: p.Y / s}
}

// Dot returns the dot product of two vectors.
func (p Vector2Int) Dot(q Vector2Int) int32 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the integer square root of the squared length.
func (p Vector2Int) Length() int32 {
	return isqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize divides each component by Length. Components shorter than the
// length truncate to zero. Returns the zero vector for a zero-length input.
func (p Vector2Int) Normalize() Vector2Int {
	return p.Div(p.Length())
}

// Distance returns the SQUARED distance between two points.
func (p Vector2Int) Distance(q Vector2Int) int32 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Vector2 converts to the float form.
func (p Vector2Int) Vector2() Vector2 {
	return Vector2{X: float32(p.X), Y: float32(p.Y)}
}

// isqrt returns floor(sqrt(n)) for n >= 0 by Newton iteration.
func isqrt(n int32) int32 {
	if n < 2 {
		if n < 0 {
			return 0
		}
		return n
	}
	x := int64(n)
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + int64(n)/x) / 2
	}
	return int32(x) //nolint:gosec // bounded by sqrt(MaxInt32)
}
