// Package physics provides distance checks and a broad-phase spatial index
// for entities on the horizontal plane.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, z1, x2, z2 float64) float64 {
	dx := x2 - x1
	dz := z2 - z1
	return math.Sqrt(dx*dx + dz*dz)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, z1, x2, z2 float64) float64 {
	dx := x2 - x1
	dz := z2 - z1
	return dx*dx + dz*dz
}

// Within reports whether two points are strictly closer than radius.
func Within(x1, z1, x2, z2, radius float64) bool {
	return DistanceSquared(x1, z1, x2, z2) < radius*radius
}

// Length returns the distance of a point from the origin.
func Length(x, z float64) float64 {
	return math.Sqrt(x*x + z*z)
}
