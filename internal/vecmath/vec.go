// Package vecmath provides the 2D vector helpers used by the physics engine.
package vecmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a plain value type; the zero value is the origin.
type Vec2 = r2.Vec

// Zero is the origin.
var Zero = Vec2{}

func Magnitude(v Vec2) float64 {
	return r2.Norm(v)
}

func Distance(a, b Vec2) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Angle returns the direction from `from` to `to` in radians, in (-π, π].
func Angle(from, to Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Polar builds a vector of length r pointing along theta.
func Polar(r, theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: r * cos, Y: r * sin}
}

func IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
