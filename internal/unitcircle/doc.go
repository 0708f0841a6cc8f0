// Package unitcircle caches unit-circle direction tables used to tessellate
// circles into triangle fans.
//
// A Table for n segments holds the n+1 directions at angles 2πi/n, so that
// consecutive entries bound one fan slice. Tables are immutable once built
// and can be shared by any number of circles with the same segment count.
//
//	rims := unitcircle.NewCache(16)
//	for _, d := range rims.Get(32) {
//		x, y := cx+r*d.Cos, cy+r*d.Sin
//		...
//	}
//
// # Thread Safety
//
// Cache is not safe for concurrent use; each renderer owns its own.
package unitcircle
