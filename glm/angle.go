package glm

import "math"

// Rad is an angle in radians.
type Rad float32

func DegToRad[T float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T float](rad Rad) (deg T) {
	return T(float64(rad) * (180 / math.Pi))
}

// Normalized wraps the angle into [-pi, pi).
func (r Rad) Normalized() Rad {
	const tau = 2 * math.Pi

	wrapped := frac((float64(r) + math.Pi) / tau)
	return Rad(wrapped*tau - math.Pi)
}
