package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignum(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))

	assert.Equal(t, float32(1), signum(float32(0)))
	assert.Equal(t, float32(-1), signum(negZero))
	assert.Equal(t, float32(-1), signum(float32(math.Inf(-1))))
	assert.True(t, math.IsNaN(float64(signum(float32(math.NaN())))))

	sign := Vec2Of(0, negZero).Sign()
	assert.Equal(t, Vec2Of(1, -1), sign)
}

func TestFrac(t *testing.T) {
	tests := []struct {
		value    float32
		expected float32
	}{
		{24.5, 0.5},
		{-0.25, 0.75},
		{-3, 0},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, frac(tt.value))
	}
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), smoothstep[float32](1, 2, 0.5))
	assert.Equal(t, float32(0), smoothstep[float32](1, 2, 1))
	assert.Equal(t, float32(1), smoothstep[float32](1, 2, 2))
	assert.Equal(t, float32(0.5), smoothstep[float32](1, 2, 1.5))
	assert.InDelta(t, 0.15625, smoothstep[float32](0, 1, 0.25), 1e-7)
}

func TestRcpSafeAndRsqrt(t *testing.T) {
	assert.Equal(t, float32(0), rcpSafe(0))
	assert.Equal(t, float32(0), rcpSafe(float32(math.Copysign(0, -1))))
	assert.Equal(t, float32(-4), rcpSafe(-0.25))

	assert.True(t, math.IsInf(float64(rsqrt(0)), 1))
	assert.Equal(t, float32(0.5), rsqrt(4))

	rcp := Vec2Of(0, 2).Rcp()
	assert.True(t, math.IsInf(float64(rcp.X), 1))
	assert.Equal(t, float32(0.5), rcp.Y)
}

func TestNaNPropagates(t *testing.T) {
	nan := float32(math.NaN())
	v := Vec3Of(nan, 1, 2)

	for name, result := range map[string]Vec3{
		"Abs":      v.Abs(),
		"Floor":    v.Floor(),
		"Clamp":    v.Clamp(0, 1),
		"Saturate": v.Saturate(),
		"Sqrt":     v.Sqrt(),
		"Frac":     v.Frac(),
		"Sign":     v.Sign(),
	} {
		assert.Truef(t, math.IsNaN(float64(result.X)), "%s should keep NaN", name)
	}
}
