// Package shapes is a fixture for the Go source symbol provider.
package shapes

import "math"

// Version is a package-level constant with no associated type.
const Version = "1.0"

// Unit is the default unit of measure.
var Unit = "cm"

// Area returns the area of a circle.
//
// Parameters
// ----------
// radius : float64
//     The circle radius.
func Area(radius float64) float64 {
	return math.Pi * radius * radius
}

// Drain empties a channel.
//
// Parameters
// ----------
// ch : chan
//     Channel to drain.
func Drain(ch <-chan int) {
	for range ch {
	}
}

func Undocumented() {}

func internalHelper() {}

// Color is a primary color.
//
// Values
// ------
// Red   : The color red.
// Green : The color green.
// Blue  : The color blue.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Circle is a round shape.
//
// Attributes
// ----------
// Radius : float64
//     Distance from center to edge.
// Fill : Color
//     Interior color.
type Circle struct {
	Radius float64
	Fill   Color
}

// NewCircle constructs a Circle.
//
// Parameters
// ----------
// r : float64
//     The radius.
func NewCircle(r float64) *Circle {
	return &Circle{Radius: r}
}

// Perimeter is a method and is not listed on its own.
func (c *Circle) Perimeter() float64 {
	return 2 * math.Pi * c.Radius
}

// ShapeError reports an invalid shape.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return "invalid shape: " + e.Reason }
