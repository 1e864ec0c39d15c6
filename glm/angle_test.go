package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegRad(t *testing.T) {
	assert.InDelta(t, math.Pi, float64(DegToRad[float32](180)), 1e-6)
	assert.InDelta(t, 90, RadToDeg[float64](Rad(math.Pi/2)), 1e-5)
}

func TestRadNormalized(t *testing.T) {
	assert.InDelta(t, 0, float64(Rad(2*math.Pi).Normalized()), 1e-5)
	assert.InDelta(t, -math.Pi/2, float64(Rad(3*math.Pi/2).Normalized()), 1e-5)
	assert.InDelta(t, math.Pi/4, float64(Rad(math.Pi/4).Normalized()), 1e-6)
}

func TestFastSincos(t *testing.T) {
	for _, deg := range []float32{0, 30, 45, 90, 135, 180, 270} {
		r := DegToRad(deg)
		s, c := FastSincos(r)

		assert.InDelta(t, math.Sin(float64(r)), s, 5e-2)
		assert.InDelta(t, math.Cos(float64(r)), c, 5e-2)
	}
}
