package glm

import (
	"golang.org/x/mobile/exp/f32"
)

// FastSincos returns table based approximations of sin and cos.
// Use Vec2.Sin and friends when exact results are needed.
func FastSincos(r Rad) (float32, float32) {
	return FastSin(r), FastCos(r)
}

func FastSin(r Rad) float32 {
	return f32.Sin(float32(r))
}

func FastCos(r Rad) float32 {
	return f32.Cos(float32(r))
}
