package engine

import "math"

// ToRadians converts an input angle into radians when the mode is Degrees.
// Under Radians it is the identity.
func ToRadians(x float64, mode AngleMode) float64 {
	if mode == Degrees {
		return x * math.Pi / 180
	}
	return x
}

// FromRadians converts a radian result back into the mode's unit.
// Under Radians it is the identity.
func FromRadians(x float64, mode AngleMode) float64 {
	if mode == Degrees {
		return x * 180 / math.Pi
	}
	return x
}
