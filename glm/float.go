package glm

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/mobile/exp/f32"
)

type float interface {
	constraints.Float
}

func clamp[T float](value, lo, hi T) T {
	return min(max(value, lo), hi)
}

func saturate[T float](value T) T {
	return clamp(value, 0, 1)
}

// signum returns 1 or -1 according to the sign bit, so zeros keep their sign.
func signum[T float](value T) T {
	if value != value {
		return value
	}

	return T(math.Copysign(1, float64(value)))
}

func frac[T float](value T) T {
	return value - T(math.Floor(float64(value)))
}

func smoothstep[T float](lo, hi, value T) T {
	switch {
	case value <= lo:
		return 0
	case value >= hi:
		return 1
	}

	t := (value - lo) / (hi - lo)
	return t * t * (3 - 2*t)
}

func step[T float](edge, value T) T {
	if value < edge {
		return 0
	}

	return 1
}

func rcpSafe(value float32) float32 {
	if value == 0 {
		return 0
	}

	return 1 / value
}

func rsqrt(value float32) float32 {
	if value == 0 {
		return float32(math.Inf(1))
	}

	return 1 / f32.Sqrt(value)
}

func fmod(lhs, rhs float32) float32 {
	return float32(math.Mod(float64(lhs), float64(rhs)))
}

func ldexp(value, exponent float32) float32 {
	return float32(math.Ldexp(float64(value), int(exponent)))
}

func pow(value, exponent float32) float32 {
	return float32(math.Pow(float64(value), float64(exponent)))
}

func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func nonZero(value float32) bool {
	return value != 0
}

// wide lifts a float64 function from package math to float32.
func wide(fn func(float64) float64) func(float32) float32 {
	return func(value float32) float32 {
		return float32(fn(float64(value)))
	}
}

var (
	sqrtf = f32.Sqrt
	tanf  = f32.Tan
)

var (
	absf   = wide(math.Abs)
	acosf  = wide(math.Acos)
	asinf  = wide(math.Asin)
	atanf  = wide(math.Atan)
	ceilf  = wide(math.Ceil)
	floorf = wide(math.Floor)
	roundf = wide(math.Round)
	truncf = wide(math.Trunc)
	cosf   = wide(math.Cos)
	sinf   = wide(math.Sin)
	coshf  = wide(math.Cosh)
	sinhf  = wide(math.Sinh)
	tanhf  = wide(math.Tanh)
	expf   = wide(math.Exp)
	exp2f  = wide(math.Exp2)
	logf   = wide(math.Log)
	log10f = wide(math.Log10)
	log2f  = wide(math.Log2)
)

const degPerRad = 180 / math.Pi

// matches float32(pi) / 180 evaluated in single precision
var radPerDeg = float32(math.Pi) / 180

func degrees(value float32) float32 {
	return value * degPerRad
}

func radians(value float32) float32 {
	return value * radPerDeg
}
