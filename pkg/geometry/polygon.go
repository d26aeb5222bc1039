package geometry

// PolygonNormal returns the unnormalized normal of a polygon loop computed
// with Newell's method. The magnitude of the result is twice the polygon
// area, so it is robust for planar and near-planar loops alike.
// The zero vector is returned for degenerate loops.
func PolygonNormal(points []Vector3) Vector3 {
	if len(points) < 3 {
		return Vector3{}
	}

	var sum Vector3
	for i := range points {
		current := points[i]
		next := points[(i+1)%len(points)]
		sum.X += (current.Y - next.Y) * (current.Z + next.Z)
		sum.Y += (current.Z - next.Z) * (current.X + next.X)
		sum.Z += (current.X - next.X) * (current.Y + next.Y)
	}
	return sum
}

// PolygonArea3D computes the area of a planar or near-planar polygon loop
// as half the magnitude of its Newell normal.
// Degenerate loops (fewer than 3 points, collapsed edges) yield 0.
func PolygonArea3D(points []Vector3) float64 {
	return PolygonNormal(points).Length() / 2.0
}

// PolygonAreaUV computes the area of a 2D polygon loop in UV space using
// the shoelace formula. Degenerate loops yield 0.
func PolygonAreaUV(points []Vector2) float64 {
	if len(points) < 3 {
		return 0
	}

	sum := 0.0
	for i := range points {
		current := points[i]
		next := points[(i+1)%len(points)]
		sum += current.U*next.V - next.U*current.V
	}

	if sum < 0 {
		sum = -sum
	}
	return sum / 2.0
}
