// Package spatial provides a uniform hash grid for near-neighbor queries
// over 3D point clouds.
package spatial

import (
	"math"
	"sort"

	"github.com/philipparndt/meshcheck/pkg/geometry"
)

type cell struct {
	x, y, z int
}

// Grid buckets points into uniform cells whose size equals the query
// tolerance, so any two points within tolerance of each other fall into the
// same cell or one of its 26 neighbors.
type Grid struct {
	points    []geometry.Vector3
	tolerance float64
	cells     map[cell][]int
}

// Build creates a grid over the given points. The cell size equals the
// tolerance; a non-positive tolerance yields a grid that reports no
// neighbors.
func Build(points []geometry.Vector3, tolerance float64) *Grid {
	g := &Grid{
		points:    points,
		tolerance: tolerance,
		cells:     make(map[cell][]int, len(points)),
	}
	if tolerance <= 0 {
		return g
	}
	for i, p := range points {
		g.cells[g.cellOf(p)] = append(g.cells[g.cellOf(p)], i)
	}
	return g
}

func (g *Grid) cellOf(p geometry.Vector3) cell {
	return cell{
		x: int(math.Floor(p.X / g.tolerance)),
		y: int(math.Floor(p.Y / g.tolerance)),
		z: int(math.Floor(p.Z / g.tolerance)),
	}
}

// Neighbors returns the indices of all points within tolerance of point i,
// excluding i itself.
func (g *Grid) Neighbors(i int) []int {
	if g.tolerance <= 0 {
		return nil
	}

	p := g.points[i]
	center := g.cellOf(p)
	tolSq := g.tolerance * g.tolerance

	var result []int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				bucket := g.cells[cell{x: center.x + dx, y: center.y + dy, z: center.z + dz}]
				for _, j := range bucket {
					if j == i {
						continue
					}
					if p.DistanceSquared(g.points[j]) <= tolSq {
						result = append(result, j)
					}
				}
			}
		}
	}
	return result
}

// OverlappingIndices returns the sorted set of point indices that are within
// tolerance of at least one other point. Reporting is pairwise: points are
// not clustered into connected components, so each member of every
// overlapping pair is flagged individually.
func (g *Grid) OverlappingIndices() []int {
	if len(g.points) < 2 || g.tolerance <= 0 {
		return nil
	}

	marked := make(map[int]bool)
	var result []int

	mark := func(i int) {
		if !marked[i] {
			marked[i] = true
			result = append(result, i)
		}
	}

	tolSq := g.tolerance * g.tolerance
	for i, p := range g.points {
		center := g.cellOf(p)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					bucket := g.cells[cell{x: center.x + dx, y: center.y + dy, z: center.z + dz}]
					for _, j := range bucket {
						// Compare forward only; marking covers both ends
						if j <= i {
							continue
						}
						if p.DistanceSquared(g.points[j]) <= tolSq {
							mark(i)
							mark(j)
						}
					}
				}
			}
		}
	}

	sort.Ints(result)
	return result
}
