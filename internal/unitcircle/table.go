package unitcircle

import "math"

// Dir is a unit direction.
type Dir struct {
	Cos, Sin float32
}

// Table holds segments+1 directions at angles 2πi/segments for
// i = 0..segments. The first and last entries are the same direction.
type Table []Dir

// NewTable computes the table for segments slices. It returns nil for
// segments <= 0.
func NewTable(segments int) Table {
	if segments <= 0 {
		return nil
	}
	t := make(Table, segments+1)
	step := 2 * math.Pi / float64(segments)
	for i := range segments {
		a := step * float64(i)
		t[i] = Dir{Cos: float32(math.Cos(a)), Sin: float32(math.Sin(a))}
	}
	// Close the ring exactly; cos/sin of 2π are not bit-identical to 0.
	t[segments] = t[0]
	return t
}

// Segments returns the number of fan slices the table describes.
func (t Table) Segments() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}
