// Package fabric defines the geometric and routing vocabulary shared by the
// naming layer: grid coordinates, tile sides, channel types and port
// directions.
package fabric

import (
	"strconv"

	log "github.com/sirupsen/logrus"
)

// A Point is a location on the device grid. Both components are
// non-negative. Grid bounds are not checked.
type Point struct {
	X, Y int
}

// P is a shorthand for creating a Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// MustBeValid panics if the point has a negative component.
func (p Point) MustBeValid() {
	if p.X < 0 || p.Y < 0 {
		log.Panicf("coordinate %s has a negative component", p)
	}
}

func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}
