package pose

import "math"

// AngleAtVertex computes the interior angle (in degrees, <= 180) at the
// vertex between the rays vertex->a and vertex->b.
func AngleAtVertex(vertex, a, b Point) float64 {
	angleA := math.Atan2(a.Y-vertex.Y, a.X-vertex.X)
	angleB := math.Atan2(b.Y-vertex.Y, b.X-vertex.X)
	deg := (angleA - angleB) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}

// AngleBetween computes the angle (in degrees, <= 180) between the
// vectors from->toA and from->toB expressed as free vectors.
func AngleBetween(v1, v2 Point) float64 {
	angle1 := math.Atan2(v1.Y, v1.X)
	angle2 := math.Atan2(v2.Y, v2.X)
	deg := (angle1 - angle2) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg > 180 {
		deg = 360 - deg
	}
	return deg
}

// AngleFromVertical measures how far the vector v leans away from the
// upward vertical, in degrees, folded into [0, 180].
func AngleFromVertical(v Point) float64 {
	return AngleBetween(v, Point{X: 0, Y: 1})
}

// Vector returns the free vector from a to b.
func Vector(from, to Point) Point {
	return Point{X: to.X - from.X, Y: to.Y - from.Y}
}
