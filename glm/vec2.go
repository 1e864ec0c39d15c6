package glm

import "fmt"

// Vec2 is a vector of two float32 components.
type Vec2 struct {
	X, Y float32
}

func Vec2Of(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec2FromScalar broadcasts s to both components.
func Vec2FromScalar(s float32) Vec2 {
	return Vec2{X: s, Y: s}
}

func Vec2FromArray(values [2]float32) Vec2 {
	return Vec2{X: values[0], Y: values[1]}
}

// Vec2FromAngle returns the unit vector pointing at angle r,
// using the fast sin and cos approximations.
func Vec2FromAngle(r Rad) Vec2 {
	s, c := FastSincos(r)
	return Vec2{X: c, Y: s}
}

func (lhs Vec2) String() string {
	return fmt.Sprintf("Vec2 (%v, %v)", lhs.X, lhs.Y)
}

func (lhs Vec2) Array() [2]float32 {
	return [2]float32{lhs.X, lhs.Y}
}

func (lhs Vec2) Split() (x, y float32) {
	return lhs.X, lhs.Y
}

// Get returns the component c. It panics for Z and W.
func (lhs Vec2) Get(c Component) float32 {
	switch c {
	case ComponentX:
		return lhs.X
	case ComponentY:
		return lhs.Y
	}

	panic(outOfRange(c, "Vec2"))
}

func (lhs Vec2) Extend(z float32) Vec3 {
	return Vec3{X: lhs.X, Y: lhs.Y, Z: z}
}

func (lhs Vec2) apply(fn func(float32) float32) Vec2 {
	return Vec2{
		X: fn(lhs.X),
		Y: fn(lhs.Y),
	}
}

func (lhs Vec2) combine(rhs Vec2, fn func(a, b float32) float32) Vec2 {
	return Vec2{
		X: fn(lhs.X, rhs.X),
		Y: fn(lhs.Y, rhs.Y),
	}
}

// Equal reports whether all components compare equal. Like ==, a NaN
// component makes the vectors unequal.
func (lhs Vec2) Equal(rhs Vec2) bool {
	return lhs.X == rhs.X && lhs.Y == rhs.Y
}

// ApproxEqual reports whether every component differs by at most eps.
func (lhs Vec2) ApproxEqual(rhs Vec2, eps float32) bool {
	d := lhs.Sub(rhs).Abs()
	return d.X <= eps && d.Y <= eps
}

func (lhs Vec2) Add(rhs Vec2) Vec2 {
	return Vec2{
		X: lhs.X + rhs.X,
		Y: lhs.Y + rhs.Y,
	}
}

func (lhs Vec2) Sub(rhs Vec2) Vec2 {
	return Vec2{
		X: lhs.X - rhs.X,
		Y: lhs.Y - rhs.Y,
	}
}

func (lhs Vec2) Mul(rhs Vec2) Vec2 {
	return Vec2{
		X: lhs.X * rhs.X,
		Y: lhs.Y * rhs.Y,
	}
}

// Div divides component-wise. Division by zero follows IEEE-754, see RcpSafe
// for a guarded reciprocal.
func (lhs Vec2) Div(rhs Vec2) Vec2 {
	return Vec2{
		X: lhs.X / rhs.X,
		Y: lhs.Y / rhs.Y,
	}
}

func (lhs Vec2) AddScalar(s float32) Vec2 {
	return Vec2{
		X: lhs.X + s,
		Y: lhs.Y + s,
	}
}

func (lhs Vec2) SubScalar(s float32) Vec2 {
	return Vec2{
		X: lhs.X - s,
		Y: lhs.Y - s,
	}
}

func (lhs Vec2) MulScalar(s float32) Vec2 {
	return Vec2{
		X: lhs.X * s,
		Y: lhs.Y * s,
	}
}

func (lhs Vec2) DivScalar(s float32) Vec2 {
	return Vec2{
		X: lhs.X / s,
		Y: lhs.Y / s,
	}
}

func (lhs *Vec2) AddAssign(rhs Vec2) {
	lhs.X += rhs.X
	lhs.Y += rhs.Y
}

func (lhs *Vec2) SubAssign(rhs Vec2) {
	lhs.X -= rhs.X
	lhs.Y -= rhs.Y
}

func (lhs *Vec2) MulAssign(rhs Vec2) {
	lhs.X *= rhs.X
	lhs.Y *= rhs.Y
}

func (lhs *Vec2) DivAssign(rhs Vec2) {
	lhs.X /= rhs.X
	lhs.Y /= rhs.Y
}

func (lhs *Vec2) AddScalarAssign(s float32) {
	lhs.X += s
	lhs.Y += s
}

func (lhs *Vec2) SubScalarAssign(s float32) {
	lhs.X -= s
	lhs.Y -= s
}

func (lhs *Vec2) MulScalarAssign(s float32) {
	lhs.X *= s
	lhs.Y *= s
}

func (lhs *Vec2) DivScalarAssign(s float32) {
	lhs.X /= s
	lhs.Y /= s
}

func (lhs Vec2) Neg() Vec2 {
	return Vec2{X: -lhs.X, Y: -lhs.Y}
}

func (lhs Vec2) Abs() Vec2 {
	return lhs.apply(absf)
}

// Acos computes the per-component arccosine in radians. Components outside
// [-1, 1] produce NaN.
func (lhs Vec2) Acos() Vec2 {
	return lhs.apply(acosf)
}

// Asin computes the per-component arcsine in radians. Components outside
// [-1, 1] produce NaN.
func (lhs Vec2) Asin() Vec2 {
	return lhs.apply(asinf)
}

// Atan computes the per-component arctangent in the range (-pi/2, pi/2).
func (lhs Vec2) Atan() Vec2 {
	return lhs.apply(atanf)
}

// Atan2 returns the angle of the vector, atan2(y, x).
func (lhs Vec2) Atan2() float32 {
	return atan2(lhs.Y, lhs.X)
}

func (lhs Vec2) Ceil() Vec2 {
	return lhs.apply(ceilf)
}

func (lhs Vec2) Floor() Vec2 {
	return lhs.apply(floorf)
}

// Round rounds half away from zero.
func (lhs Vec2) Round() Vec2 {
	return lhs.apply(roundf)
}

func (lhs Vec2) Trunc() Vec2 {
	return lhs.apply(truncf)
}

func (lhs Vec2) Clamp(lo, hi float32) Vec2 {
	return Vec2{
		X: clamp(lhs.X, lo, hi),
		Y: clamp(lhs.Y, lo, hi),
	}
}

func (lhs Vec2) Saturate() Vec2 {
	return lhs.apply(saturate[float32])
}

func (lhs Vec2) Cos() Vec2 {
	return lhs.apply(cosf)
}

func (lhs Vec2) Sin() Vec2 {
	return lhs.apply(sinf)
}

func (lhs Vec2) Tan() Vec2 {
	return lhs.apply(tanf)
}

func (lhs Vec2) Cosh() Vec2 {
	return lhs.apply(coshf)
}

func (lhs Vec2) Sinh() Vec2 {
	return lhs.apply(sinhf)
}

func (lhs Vec2) Tanh() Vec2 {
	return lhs.apply(tanhf)
}

// Degrees converts every component from radians to degrees.
func (lhs Vec2) Degrees() Vec2 {
	return lhs.apply(degrees)
}

// Radians converts every component from degrees to radians.
func (lhs Vec2) Radians() Vec2 {
	return lhs.apply(radians)
}

func (lhs Vec2) Exp() Vec2 {
	return lhs.apply(expf)
}

func (lhs Vec2) Exp2() Vec2 {
	return lhs.apply(exp2f)
}

func (lhs Vec2) Log() Vec2 {
	return lhs.apply(logf)
}

func (lhs Vec2) Log10() Vec2 {
	return lhs.apply(log10f)
}

func (lhs Vec2) Log2() Vec2 {
	return lhs.apply(log2f)
}

// Fmod computes the floating point remainder of lhs / rhs per component.
func (lhs Vec2) Fmod(rhs Vec2) Vec2 {
	return lhs.combine(rhs, fmod)
}

// Frac returns the fractional part x - floor(x) of every component.
func (lhs Vec2) Frac() Vec2 {
	return lhs.apply(frac[float32])
}

// Ldexp computes lhs * 2^exponent per component. Exponents are truncated
// towards zero.
func (lhs Vec2) Ldexp(exponent Vec2) Vec2 {
	return lhs.combine(exponent, ldexp)
}

func (lhs Vec2) Pow(exponent float32) Vec2 {
	return Vec2{
		X: pow(lhs.X, exponent),
		Y: pow(lhs.Y, exponent),
	}
}

// Rcp computes 1/x per component. A zero component yields infinity.
func (lhs Vec2) Rcp() Vec2 {
	return Vec2{X: 1 / lhs.X, Y: 1 / lhs.Y}
}

// RcpSafe computes 1/x per component, but returns 0 for zero components.
func (lhs Vec2) RcpSafe() Vec2 {
	return lhs.apply(rcpSafe)
}

// Rsqrt computes 1/sqrt(x) per component. A zero component yields +Inf.
func (lhs Vec2) Rsqrt() Vec2 {
	return lhs.apply(rsqrt)
}

// Sign returns the signum of every component: 1 or -1 according to the sign
// bit, including for signed zeros. NaN stays NaN.
func (lhs Vec2) Sign() Vec2 {
	return lhs.apply(signum[float32])
}

func (lhs Vec2) Sqrt() Vec2 {
	return lhs.apply(sqrtf)
}

// All reports whether every component is non-zero. NaN counts as non-zero.
func (lhs Vec2) All() bool {
	return nonZero(lhs.X) && nonZero(lhs.Y)
}

// Any reports whether at least one component is non-zero.
func (lhs Vec2) Any() bool {
	return nonZero(lhs.X) || nonZero(lhs.Y)
}

func (lhs Vec2) Dot(rhs Vec2) float32 {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y)
}

func (lhs Vec2) Length() float32 {
	return sqrtf(lhs.Dot(lhs))
}

func (lhs Vec2) LengthSqr() float32 {
	return lhs.Dot(lhs)
}

func (lhs Vec2) Distance(rhs Vec2) float32 {
	return lhs.Sub(rhs).Length()
}

// Normalize scales the vector to unit length. The zero vector is returned
// unchanged.
func (lhs Vec2) Normalize() Vec2 {
	length := lhs.Length()
	if length == 0 {
		return Vec2{}
	}

	return lhs.DivScalar(length)
}

// Lerp interpolates between lhs and rhs. t is not clamped.
func (lhs Vec2) Lerp(rhs Vec2, t float32) Vec2 {
	// explicit conversions prevent fusing into an FMA
	return Vec2{
		X: lhs.X + float32(t*(rhs.X-lhs.X)),
		Y: lhs.Y + float32(t*(rhs.Y-lhs.Y)),
	}
}

// Mad computes lhs * b + c.
func (lhs Vec2) Mad(b, c Vec2) Vec2 {
	return Vec2{
		X: float32(lhs.X*b.X) + c.X,
		Y: float32(lhs.Y*b.Y) + c.Y,
	}
}

func (lhs Vec2) Max(rhs Vec2) Vec2 {
	return Vec2{
		X: max(lhs.X, rhs.X),
		Y: max(lhs.Y, rhs.Y),
	}
}

func (lhs Vec2) Min(rhs Vec2) Vec2 {
	return Vec2{
		X: min(lhs.X, rhs.X),
		Y: min(lhs.Y, rhs.Y),
	}
}

// Reflect reflects the incident vector lhs about normal,
// which is expected to be normalized.
func (lhs Vec2) Reflect(normal Vec2) Vec2 {
	return lhs.Sub(normal.MulScalar(2 * lhs.Dot(normal)))
}

// Refract computes the refraction of the incident vector lhs through a
// surface with the given normal and ratio of indices of refraction eta.
// On total internal reflection the zero vector is returned.
func (lhs Vec2) Refract(normal Vec2, eta float32) Vec2 {
	d := lhs.Dot(normal)

	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vec2{}
	}

	return lhs.MulScalar(eta).Sub(normal.MulScalar(eta*d + sqrtf(k)))
}

// Smoothstep performs hermite interpolation of every component of lhs between
// the edges lo and hi.
func (lhs Vec2) Smoothstep(lo, hi Vec2) Vec2 {
	return Vec2{
		X: smoothstep(lo.X, hi.X, lhs.X),
		Y: smoothstep(lo.Y, hi.Y, lhs.Y),
	}
}

// Step returns 0 for every component less than edge, 1 otherwise.
func (lhs Vec2) Step(edge Vec2) Vec2 {
	return Vec2{
		X: step(edge.X, lhs.X),
		Y: step(edge.Y, lhs.Y),
	}
}

// Rotate rotates the vector counter-clockwise by r using the fast sin and cos
// approximations.
func (lhs Vec2) Rotate(r Rad) Vec2 {
	s, c := FastSincos(r)

	return Vec2{
		X: lhs.X*c - lhs.Y*s,
		Y: lhs.X*s + lhs.Y*c,
	}
}

// Swizzle2 builds a Vec2 from the given components of lhs.
func (lhs Vec2) Swizzle2(a, b Component) Vec2 {
	return Vec2{X: lhs.Get(a), Y: lhs.Get(b)}
}

func (lhs Vec2) Swizzle3(a, b, c Component) Vec3 {
	return Vec3{X: lhs.Get(a), Y: lhs.Get(b), Z: lhs.Get(c)}
}

func (lhs Vec2) Swizzle4(a, b, c, d Component) Vec4 {
	return Vec4{X: lhs.Get(a), Y: lhs.Get(b), Z: lhs.Get(c), W: lhs.Get(d)}
}
