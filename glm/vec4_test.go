package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec4InDelta(t *testing.T, expected, actual Vec4, delta float32) {
	t.Helper()
	assert.Truef(t, expected.ApproxEqual(actual, delta), "expected %s, got %s", expected, actual)
}

func TestVec4Construction(t *testing.T) {
	v := Vec4Of(1.5, 2.25, 0.9, -4)
	assert.Equal(t, Vec4{X: 1.5, Y: 2.25, Z: 0.9, W: -4}, v)
	assert.Equal(t, Vec4Of(7, 7, 7, 7), Vec4FromScalar(7))
	assert.Equal(t, v, Vec4FromArray(v.Array()))
	assert.Equal(t, Vec3Of(1.5, 2.25, 0.9), v.Truncate())
	assert.Equal(t, "Vec4 (1.5, 2.25, 0.9, -4)", v.String())

	x, y, z, w := v.Split()
	assert.Equal(t, v, Vec4Of(x, y, z, w))
}

func TestVec4Arithmetic(t *testing.T) {
	a := Vec4Of(1.5, 2.25, 0.9, 2.0)
	b := Vec4Of(3.1, 2.75, 0.1, 0.5)

	tests := []struct {
		name     string
		op       func(a, b Vec4) Vec4
		assign   func(a *Vec4, b Vec4)
		expected Vec4
	}{
		{"Add", Vec4.Add, (*Vec4).AddAssign, Vec4Of(4.6, 5.0, 1.0, 2.5)},
		{"Sub", Vec4.Sub, (*Vec4).SubAssign, Vec4Of(-1.5999999, -0.5, 0.8, 1.5)},
		{"Mul", Vec4.Mul, (*Vec4).MulAssign, Vec4Of(1.5*3.1, 2.25*2.75, 0.9*0.1, 1.0)},
		{"Div", Vec4.Div, (*Vec4).DivAssign, Vec4Of(1.5/3.1, 2.25/2.75, 0.9/0.1, 4.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := tt.expected
			actual := tt.op(a, b)

			// per component identity against scalar float32 arithmetic
			for i, c := range []Component{ComponentX, ComponentY, ComponentZ, ComponentW} {
				lhs, rhs := a.Get(c), b.Get(c)

				var want float32
				switch tt.name {
				case "Add":
					want = lhs + rhs
				case "Sub":
					want = lhs - rhs
				case "Mul":
					want = lhs * rhs
				case "Div":
					want = lhs / rhs
				}

				assert.Equalf(t, want, actual.Array()[i], "component %s", c)
			}

			assertVec4InDelta(t, expected, actual, 1e-6)

			result := a
			tt.assign(&result, b)
			assert.Equal(t, actual, result)
		})
	}
}

func TestVec4ScalarArithmetic(t *testing.T) {
	a := Vec4Of(1, 2, 4, 8)

	assert.Equal(t, Vec4Of(1.5, 2.5, 4.5, 8.5), a.AddScalar(0.5))
	assert.Equal(t, Vec4Of(0.5, 1.5, 3.5, 7.5), a.SubScalar(0.5))
	assert.Equal(t, Vec4Of(0.5, 1, 2, 4), a.MulScalar(0.5))
	assert.Equal(t, Vec4Of(2, 4, 8, 16), a.DivScalar(0.5))

	result := a
	result.AddScalarAssign(1)
	result.SubScalarAssign(2)
	result.MulScalarAssign(2)
	result.DivScalarAssign(4)
	assert.Equal(t, Vec4Of(0, 0.5, 1.5, 3.5), result)
}

func TestVec4NegAndEquality(t *testing.T) {
	a := Vec4Of(20, 1, 5, 3)
	b := a
	a.AddAssign(b)

	assert.Equal(t, Vec4Of(40, 2, 10, 6), a)
	assert.Equal(t, Vec4Of(20, 1, 5, 3), b)
	assert.False(t, a.Equal(b))
	assert.True(t, b.Equal(Vec4Of(20, 1, 5, 3)))

	assert.Equal(t, Vec4Of(-20, -1, -5, -3), b.Neg())
	assert.Equal(t, b, b.Neg().Neg())

	inf := float32(math.Inf(1))
	withNaN := Vec4Of(inf, 0, 0, inf).Sub(Vec4Of(inf, 0, 0, 0))
	assert.False(t, withNaN.Equal(withNaN))
}

func TestVec4ComponentFunctions(t *testing.T) {
	tests := []struct {
		name     string
		actual   Vec4
		expected Vec4
	}{
		{"Abs", Vec4Of(-1, 2, -3, 0).Abs(), Vec4Of(1, 2, 3, 0)},
		{"Ceil", Vec4Of(0.9, -0.2, 1.2, 3).Ceil(), Vec4Of(1, 0, 2, 3)},
		{"Floor", Vec4Of(0.9, -0.2, 1.2, 3).Floor(), Vec4Of(0, -1, 1, 3)},
		{"Round", Vec4Of(0.9, -0.2, 1.2, 2.5).Round(), Vec4Of(1, 0, 1, 3)},
		{"Trunc", Vec4Of(25.2, 4.81, 1.02, -1.5).Trunc(), Vec4Of(25, 4, 1, -1)},
		{"Clamp", Vec4Of(0.9, -0.2, 0.6, 0.1).Clamp(0, 0.5), Vec4Of(0.5, 0, 0.5, 0.1)},
		{"Saturate", Vec4Of(2.9, -0.2, 1.2, 0.5).Saturate(), Vec4Of(1, 0, 1, 0.5)},
		{"Exp2", Vec4Of(2, 4, 8, 0).Exp2(), Vec4Of(4, 16, 256, 1)},
		{"Log2", Vec4Of(1, 2, 4, 8).Log2(), Vec4Of(0, 1, 2, 3)},
		{"Fmod", Vec4Of(0.2, 2, 4, 7).Fmod(Vec4Of(2, 4, 6, 3)), Vec4Of(0.2, 2, 4, 1)},
		{"Frac", Vec4Of(24.5, 8.25, 1.75, 3).Frac(), Vec4Of(0.5, 0.25, 0.75, 0)},
		{"Ldexp", Vec4Of(1.5, 2.5, 1.0, 0.5).Ldexp(Vec4Of(2, -1, 1, 0.5)), Vec4Of(6, 1.25, 2, 0.5)},
		{"Pow", Vec4Of(2, 1, 5, 4).Pow(2), Vec4Of(4, 1, 25, 16)},
		{"Rcp", Vec4Of(2, 4, 8, 16).Rcp(), Vec4Of(0.5, 0.25, 0.125, 0.0625)},
		{"RcpSafe", Vec4Of(2, 0, 8, 16).RcpSafe(), Vec4Of(0.5, 0, 0.125, 0.0625)},
		{"Rsqrt", Vec4Of(1, 4, 16, 64).Rsqrt(), Vec4Of(1, 0.5, 0.25, 0.125)},
		{"Sign", Vec4Of(2.9, -0.2, 0.3, -1.0).Sign(), Vec4Of(1, -1, 1, -1)},
		{"Sqrt", Vec4Of(4, 9, 16, 25).Sqrt(), Vec4Of(2, 3, 4, 5)},
		{"Mad", Vec4Of(2, 2, 5, 1).Mad(Vec4Of(4, 5, 5, 1), Vec4Of(0.5, 0.25, 5, 1)), Vec4Of(8.5, 10.25, 30, 2)},
		{"Max", Vec4Of(2, 2, 2, 2).Max(Vec4Of(4, 1, 5, -1)), Vec4Of(4, 2, 5, 2)},
		{"Min", Vec4Of(2, 2, 2, 2).Min(Vec4Of(4, 1, 5, -1)), Vec4Of(2, 1, 2, -1)},
		{"Smoothstep", Vec4Of(0.5, 1.5, 2.5, 0.5).Smoothstep(Vec4Of(0, 0, 0, 0), Vec4Of(1, 1, 1, 1)), Vec4Of(0.5, 1, 1, 0.5)},
		{"Step", Vec4Of(0.5, 0.8, 3.0, 4.0).Step(Vec4Of(0.3, 1.0, 4.0, 4.0)), Vec4Of(1, 0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.actual)
		})
	}
}

func TestVec4Transcendental(t *testing.T) {
	const delta = 1e-6

	assertVec4InDelta(t, Vec4Of(0.4636476, -0.4636476, 0.7853982, 0.09966865), Vec4Of(0.5, -0.5, 1.0, 0.1).Atan(), delta)
	assertVec4InDelta(t, Vec4Of(0, 0.6931472, 1.3862944, 2.0794415), Vec4Of(1, 2, 4, 8).Log(), delta)
	assertVec4InDelta(t, Vec4Of(0, 1, 2, 3), Vec4Of(1, 10, 100, 1000).Log10(), delta)
	assertVec4InDelta(t, Vec4Of(1, 1.5430807, 1.5430807, 1), Vec4Of(0, 1, -1, 0).Cosh(), delta)
	assertVec4InDelta(t, Vec4Of(0, 1.1752012, -1.1752012, 0), Vec4Of(0, 1, -1, 0).Sinh(), delta)
	assertVec4InDelta(t, Vec4Of(0, 0.7615942, -0.7615942, 0), Vec4Of(0, 1, -1, 0).Tanh(), delta)
	assertVec4InDelta(t, Vec4Of(0, 1, 0, -1), Vec4Of(0, pi/2, pi, pi*1.5).Sin(), delta)
	assertVec4InDelta(t, Vec4Of(1, 0, -1, 0), Vec4Of(0, pi/2, pi, pi*1.5).Cos(), delta)
	assertVec4InDelta(t, Vec4Of(0, 1, -1, 0), Vec4Of(0, pi/4, -pi/4, pi).Tan(), delta)
	assertVec4InDelta(t, Vec4Of(0, pi/2, pi, pi/2), Vec4Of(1, 0, -1, 0).Acos(), delta)
	assertVec4InDelta(t, Vec4Of(pi/2, 0, -pi/2, 0), Vec4Of(1, 0, -1, 0).Asin(), delta)
	assertVec4InDelta(t, Vec4Of(1, 2.7182817, 7.389056, 0.36787945), Vec4Of(0, 1, 2, -1).Exp(), delta)
	assertVec4InDelta(t, Vec4Of(180, 90, 45, -360), Vec4Of(pi, pi/2, pi/4, -2*pi).Degrees(), 1e-4)
	assertVec4InDelta(t, Vec4Of(pi, pi/2, pi/4, -2*pi), Vec4Of(180, 90, 45, -360).Radians(), delta)

	assert.InDelta(t, -math.Pi/2, Vec4Of(0, -3, 1, 1).Atan2(), 1e-6)
}

func TestVec4AllAny(t *testing.T) {
	tests := []struct {
		name string
		v    Vec4
		all  bool
		any  bool
	}{
		{"Zero", Vec4{}, false, false},
		{"OneSet", Vec4Of(0, 0, 0, 1), false, true},
		{"ThreeSet", Vec4Of(1, 1, 0, 1), false, true},
		{"AllSet", Vec4Of(1, -1, 0.5, 2), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.all, tt.v.All())
			assert.Equal(t, tt.any, tt.v.Any())
		})
	}
}

func TestVec4Geometry(t *testing.T) {
	assert.Equal(t, float32(2), Vec4Of(1, 1, 1, 1).Length())
	assert.Equal(t, float32(4), Vec4Of(1, 1, 1, 1).LengthSqr())
	assert.Equal(t, float32(8), Vec4Of(1, 1, 1, 1).Distance(Vec4Of(5, 5, 5, 5)))
	assert.Equal(t, float32(30), Vec4Of(1, 2, 3, 4).Dot(Vec4Of(1, 2, 3, 4)))

	assert.Equal(t, Vec4Of(0.5, 0.5, 0.5, 0.5), Vec4Of(1, 1, 1, 1).Normalize())
	assert.Equal(t, Vec4{}, Vec4{}.Normalize())
	assert.InDelta(t, 1.0, Vec4Of(1, 2, 3, 4).Normalize().Length(), 1e-6)

	assert.Equal(t, Vec4Of(1, 1, 1, 0), Vec4Of(1, -1, 1, 0).Reflect(Vec4Of(0, 1, 0, 0)))
	assert.Equal(t, Vec4Of(0.5, -1, 0, 0), Vec4Of(1, -1, 0, 0).Refract(Vec4Of(0, 1, 0, 0), 0.5))
	assert.Equal(t, Vec4{}, Vec4Of(1, -0.1, 0, 0).Normalize().Refract(Vec4Of(0, 1, 0, 0), 1.5))
}

func TestVec4Lerp(t *testing.T) {
	a := Vec4Of(0.0, 0.1, 0.5, -1)
	b := Vec4Of(2.0, 4.1, 1.0, 1)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec4Of(1.0, 2.1, 0.75, 0), a.Lerp(b, 0.5))
	assert.Equal(t, Vec4Of(3.0, 6.1, 1.25, 2), a.Lerp(b, 1.5))
}
