package geom

import "math"

// Vector is a point (or displacement) on the 2D playing field.
type Vector struct {
	x, y float64
}

func NewVector(x, y float64) Vector {
	return Vector{x, y}
}

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }

func (v Vector) IsZero() bool { return v.x == 0 && v.y == 0 }

func (v Vector) Sub(o Vector) Vector {
	return NewVector(v.x-o.x, v.y-o.y)
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y)
}

func Distance(from, to Vector) float64 {
	return from.Sub(to).Magnitude()
}

// Inside reports whether v lies within the rectangle spanning (0, 0) to
// (width, height).
func (v Vector) Inside(width, height float64) bool {
	return v.x >= 0 && v.y >= 0 && v.x <= width && v.y <= height
}
