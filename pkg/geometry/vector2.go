package geometry

import "math"

// Vector2 represents a 2D point or vector, typically a UV coordinate
type Vector2 struct {
	U, V float64
}

// NewVector2 creates a new 2D vector
func NewVector2(u, v float64) Vector2 {
	return Vector2{U: u, V: v}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{U: v.U + other.U, V: v.V + other.V}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{U: v.U - other.U, V: v.V - other.V}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.U*v.U + v.V*v.V)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}
