// Package shapes provides basic geometry types used by the packages
// and testing examples.
package shapes

import "math"

// Circle is a circle with a radius.
type Circle struct {
	Radius float64
}

// NewCircle returns a Circle with the given radius.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the circumference of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle returns a Rectangle with the given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// NewSquare returns a Rectangle whose sides are both size.
func NewSquare(size float64) Rectangle {
	return Rectangle{Width: size, Height: size}
}

// Area returns the area of the rectangle.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the perimeter of the rectangle.
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width + r.Height)
}

// IsSquare reports whether width and height are equal within a small
// epsilon, to sidestep floating point comparison pitfalls.
func (r Rectangle) IsSquare() bool {
	return math.Abs(r.Width-r.Height) < 1e-9
}

// CanHold reports whether other fits inside r without rotation.
func (r Rectangle) CanHold(other Rectangle) bool {
	return r.Width >= other.Width && r.Height >= other.Height
}
