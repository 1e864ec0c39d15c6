package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, expected, actual Vec3, delta float32) {
	t.Helper()
	assert.Truef(t, expected.ApproxEqual(actual, delta), "expected %s, got %s", expected, actual)
}

func TestVec3Construction(t *testing.T) {
	v := Vec3Of(1.5, 2.25, 0.9)
	assert.Equal(t, Vec3{X: 1.5, Y: 2.25, Z: 0.9}, v)
	assert.Equal(t, Vec3Of(2, 2, 2), Vec3FromScalar(2))
	assert.Equal(t, v, Vec3FromArray([3]float32{1.5, 2.25, 0.9}))
	assert.Equal(t, [3]float32{1.5, 2.25, 0.9}, v.Array())

	assert.Equal(t, Vec2Of(1.5, 2.25), v.Truncate())
	assert.Equal(t, Vec4Of(1.5, 2.25, 0.9, 1), v.Extend(1))

	x, y, z := v.Split()
	assert.Equal(t, []float32{1.5, 2.25, 0.9}, []float32{x, y, z})

	assert.Equal(t, "Vec3 (1.5, 2.25, 0.9)", v.String())
}

func TestVec3Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		op       func(a, b Vec3) Vec3
		assign   func(a *Vec3, b Vec3)
		expected Vec3
	}{
		{"Add", Vec3Of(1.5, 2.25, 0.9), Vec3Of(3.1, 2.75, 0.1), Vec3.Add, (*Vec3).AddAssign, Vec3Of(4.6, 5.0, 1.0)},
		{"Sub", Vec3Of(1.5, 2.25, 2.0), Vec3Of(3.1, 2.75, 1.0), Vec3.Sub, (*Vec3).SubAssign, Vec3Of(-1.5999999, -0.5, 1.0)},
		{"Mul", Vec3Of(1.5, 2.5, 5.0), Vec3Of(3.0, 2.0, 5.0), Vec3.Mul, (*Vec3).MulAssign, Vec3Of(4.5, 5.0, 25.0)},
		{"Div", Vec3Of(1.5, 2.5, 5.0), Vec3Of(3.0, 2.0, 2.5), Vec3.Div, (*Vec3).DivAssign, Vec3Of(0.5, 1.25, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.op(tt.a, tt.b))

			result := tt.a
			tt.assign(&result, tt.b)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestVec3ScalarArithmetic(t *testing.T) {
	a := Vec3Of(1.0, 2.0, 4.0)

	assert.Equal(t, Vec3Of(1.5, 2.5, 4.5), a.AddScalar(0.5))
	assert.Equal(t, Vec3Of(0.5, 1.5, 3.5), a.SubScalar(0.5))
	assert.Equal(t, Vec3Of(0.5, 1.0, 2.0), a.MulScalar(0.5))
	assert.Equal(t, Vec3Of(2.0, 4.0, 8.0), a.DivScalar(0.5))

	result := a
	result.AddScalarAssign(0.5)
	assert.Equal(t, Vec3Of(1.5, 2.5, 4.5), result)

	result = a
	result.SubScalarAssign(0.5)
	assert.Equal(t, Vec3Of(0.5, 1.5, 3.5), result)

	result = a
	result.MulScalarAssign(0.5)
	assert.Equal(t, Vec3Of(0.5, 1.0, 2.0), result)

	result = a
	result.DivScalarAssign(0.5)
	assert.Equal(t, Vec3Of(2.0, 4.0, 8.0), result)
}

func TestVec3NegAndEquality(t *testing.T) {
	a := Vec3Of(1.5, -2.5, 0)
	assert.Equal(t, Vec3Of(-1.5, 2.5, 0), a.Neg())
	assert.True(t, a.Neg().Neg().Equal(a))

	nan := Vec3Of(1, 2, float32(math.NaN()))
	assert.False(t, nan.Equal(nan))
	assert.True(t, a.Equal(a))
}

func TestVec3Trigonometry(t *testing.T) {
	const delta = 1e-6

	assertVec3InDelta(t, Vec3Of(1.0471976, 2.0943952, 1.5707964), Vec3Of(0.5, -0.5, 0.0).Acos(), delta)
	assertVec3InDelta(t, Vec3Of(0.5235988, -0.5235988, 0.10016742), Vec3Of(0.5, -0.5, 0.1).Asin(), delta)
	assertVec3InDelta(t, Vec3Of(0.4636476, -0.4636476, 0.7853982), Vec3Of(0.5, -0.5, 1.0).Atan(), delta)
	assertVec3InDelta(t, Vec3Of(-1, 1, 1), Vec3Of(pi, pi*2, pi*4).Cos(), delta)
	assertVec3InDelta(t, Vec3Of(-8.742278e-8, 1.7484555e-7, 0.84147096), Vec3Of(pi, pi*2, 1).Sin(), delta)
	assertVec3InDelta(t, Vec3Of(1.0, 0.57735026, 8.742278e-8), Vec3Of(pi/4, pi/6, pi).Tan(), delta)
	assertVec3InDelta(t, Vec3Of(1.4330864, 1.0200667, 1.127626), Vec3Of(0.9, -0.2, 0.5).Cosh(), delta)
	assertVec3InDelta(t, Vec3Of(1.0265167, -0.20133601, 1.1752012), Vec3Of(0.9, -0.2, 1.0).Sinh(), delta)
	assertVec3InDelta(t, Vec3Of(0.65579426, 0.4804728, 0.37368476), Vec3Of(pi/4, pi/6, pi/8).Tanh(), delta)

	assert.InDelta(t, math.Atan2(2, 1), Vec3Of(1, 2, 100).Atan2(), 1e-6)
}

func TestVec3ExpLog(t *testing.T) {
	assertVec3InDelta(t, Vec3Of(7.389056, 54.59815, 2980.958), Vec3Of(2, 4, 8).Exp(), 1e-3)
	assert.Equal(t, Vec3Of(4, 16, 256), Vec3Of(2, 4, 8).Exp2())
	assertVec3InDelta(t, Vec3Of(0.0, 0.6931472, 1.3862944), Vec3Of(1, 2, 4).Log(), 1e-6)
	assertVec3InDelta(t, Vec3Of(0.0, 1.0, 1.30103), Vec3Of(1, 10, 20).Log10(), 1e-6)
	assert.Equal(t, Vec3Of(0, 1, 2), Vec3Of(1, 2, 4).Log2())
	assert.Equal(t, Vec3Of(4, 1, 25), Vec3Of(2, 1, 5).Pow(2))
}

func TestVec3ComponentFunctions(t *testing.T) {
	tests := []struct {
		name     string
		actual   Vec3
		expected Vec3
	}{
		{"Abs", Vec3Of(-pi, -pi*2, -1.5).Abs(), Vec3Of(pi, pi*2, 1.5)},
		{"Ceil", Vec3Of(0.9, -0.2, 1.2).Ceil(), Vec3Of(1, 0, 2)},
		{"Floor", Vec3Of(0.9, -0.2, 1.2).Floor(), Vec3Of(0, -1, 1)},
		{"Round", Vec3Of(0.9, -0.2, 1.2).Round(), Vec3Of(1, 0, 1)},
		{"Trunc", Vec3Of(25.2, 4.81, 1.02).Trunc(), Vec3Of(25, 4, 1)},
		{"Clamp", Vec3Of(0.9, -0.2, 0.6).Clamp(0, 0.5), Vec3Of(0.5, 0, 0.5)},
		{"Saturate", Vec3Of(2.9, -0.2, 1.2).Saturate(), Vec3Of(1, 0, 1)},
		{"Degrees", Vec3Of(pi, pi*0.5, pi*0.25).Degrees(), Vec3Of(180, 90, 45)},
		{"Fmod", Vec3Of(0.2, 2.0, 4.0).Fmod(Vec3Of(2, 4, 6)), Vec3Of(0.2, 2, 4)},
		{"Frac", Vec3Of(24.5, 8.25, 1.75).Frac(), Vec3Of(0.5, 0.25, 0.75)},
		{"Ldexp", Vec3Of(1.5, 2.5, 1.0).Ldexp(Vec3Of(2, -1, 1)), Vec3Of(6, 1.25, 2)},
		{"Rcp", Vec3Of(2, 4, 8).Rcp(), Vec3Of(0.5, 0.25, 0.125)},
		{"RcpSafe", Vec3Of(2, 0, 8).RcpSafe(), Vec3Of(0.5, 0, 0.125)},
		{"Rsqrt", Vec3Of(1, 4, 8).Rsqrt(), Vec3Of(1, 0.5, 0.35355338)},
		{"Sign", Vec3Of(2.9, -0.2, 0.3).Sign(), Vec3Of(1, -1, 1)},
		{"Sqrt", Vec3Of(4, 9, 16).Sqrt(), Vec3Of(2, 3, 4)},
		{"Mad", Vec3Of(2, 2, 5).Mad(Vec3Of(4, 5, 5), Vec3Of(0.5, 0.25, 5)), Vec3Of(8.5, 10.25, 30)},
		{"Max", Vec3Of(2, 2, 2).Max(Vec3Of(4, 1, 5)), Vec3Of(4, 2, 5)},
		{"Min", Vec3Of(2, 2, 2).Min(Vec3Of(4, 1, 5)), Vec3Of(2, 1, 2)},
		{"Smoothstep", Vec3Of(0.5, 1.5, 2.5).Smoothstep(Vec3Of(0, 0, 0), Vec3Of(1, 1, 1)), Vec3Of(0.5, 1, 1)},
		{"Step", Vec3Of(0.5, 0.8, 3.0).Step(Vec3Of(0.3, 1.0, 4.0)), Vec3Of(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.actual)
		})
	}

	assertVec3InDelta(t, Vec3Of(pi, pi*0.5, pi*0.25), Vec3Of(180, 90, 45).Radians(), 1e-6)
}

func TestVec3Rsqrt(t *testing.T) {
	result := Vec3Of(0, 4, -1).Rsqrt()
	assert.True(t, math.IsInf(float64(result.X), 1))
	assert.Equal(t, float32(0.5), result.Y)
	assert.True(t, math.IsNaN(float64(result.Z)))
}

func TestVec3AllAny(t *testing.T) {
	assert.False(t, Vec3Of(0, 0, 0).All())
	assert.False(t, Vec3Of(0, 0, 0).Any())
	assert.False(t, Vec3Of(1, 0, 1).All())
	assert.True(t, Vec3Of(1, 0, 1).Any())
	assert.True(t, Vec3Of(0.1, -0.1, 2).All())
}

func TestVec3Geometry(t *testing.T) {
	assert.Equal(t, float32(10.25), Vec3Of(1, 1, 0.5).Dot(Vec3Of(5, 5, 0.5)))
	assert.InDelta(t, 1.7320508, Vec3Of(1, 1, 1).Length(), 1e-6)
	assert.InDelta(t, 6.928203, Vec3Of(1, 1, 1).Distance(Vec3Of(5, 5, 5)), 1e-5)

	assert.Equal(t, Vec3Of(0.5345225, 0.26726124, 0.8017837), Vec3Of(2, 1, 3).Normalize())
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1.0, Vec3Of(-7, 0.5, 12).Normalize().Length(), 1e-6)

	assert.Equal(t, Vec3Of(1, 1, 1), Vec3Of(1, -1, 1).Reflect(Vec3Of(0, 1, 0)))
	assert.Equal(t, Vec3Of(0.5, -1, 0), Vec3Of(1, -1, 0).Refract(Vec3Of(0, 1, 0), 0.5))
	assert.Equal(t, Vec3{}, Vec3Of(1, -0.1, 0).Normalize().Refract(Vec3Of(0, 1, 0), 1.5))

	assert.Equal(t, Vec3Of(0, 0, 1), Vec3Of(1, 0, 0).Cross(Vec3Of(0, 1, 0)))
	assert.Equal(t, Vec3Of(0, 0, -1), Vec3Of(0, 1, 0).Cross(Vec3Of(1, 0, 0)))
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3Of(0.0, 0.1, 0.5)
	b := Vec3Of(2.0, 4.1, 1.0)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3Of(1.0, 2.1, 0.75), a.Lerp(b, 0.5))
	assert.Equal(t, Vec3Of(3.0, 6.1, 1.25), a.Lerp(b, 1.5))
}
