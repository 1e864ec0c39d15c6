package glm

import "fmt"

// Vec3 is a vector of three float32 components.
type Vec3 struct {
	X, Y, Z float32
}

func Vec3Of(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func Vec3FromScalar(s float32) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

func Vec3FromArray(values [3]float32) Vec3 {
	return Vec3{X: values[0], Y: values[1], Z: values[2]}
}

func (lhs Vec3) String() string {
	return fmt.Sprintf("Vec3 (%v, %v, %v)", lhs.X, lhs.Y, lhs.Z)
}

func (lhs Vec3) Array() [3]float32 {
	return [3]float32{lhs.X, lhs.Y, lhs.Z}
}

func (lhs Vec3) Split() (x, y, z float32) {
	return lhs.X, lhs.Y, lhs.Z
}

// Get returns the component c. It panics for W.
func (lhs Vec3) Get(c Component) float32 {
	switch c {
	case ComponentX:
		return lhs.X
	case ComponentY:
		return lhs.Y
	case ComponentZ:
		return lhs.Z
	}

	panic(outOfRange(c, "Vec3"))
}

func (lhs Vec3) Extend(w float32) Vec4 {
	return Vec4{X: lhs.X, Y: lhs.Y, Z: lhs.Z, W: w}
}

func (lhs Vec3) Truncate() Vec2 {
	return Vec2{X: lhs.X, Y: lhs.Y}
}

func (lhs Vec3) apply(fn func(float32) float32) Vec3 {
	return Vec3{
		X: fn(lhs.X),
		Y: fn(lhs.Y),
		Z: fn(lhs.Z),
	}
}

func (lhs Vec3) combine(rhs Vec3, fn func(a, b float32) float32) Vec3 {
	return Vec3{
		X: fn(lhs.X, rhs.X),
		Y: fn(lhs.Y, rhs.Y),
		Z: fn(lhs.Z, rhs.Z),
	}
}

func (lhs Vec3) Equal(rhs Vec3) bool {
	return lhs.X == rhs.X && lhs.Y == rhs.Y && lhs.Z == rhs.Z
}

func (lhs Vec3) ApproxEqual(rhs Vec3, eps float32) bool {
	d := lhs.Sub(rhs).Abs()
	return d.X <= eps && d.Y <= eps && d.Z <= eps
}

func (lhs Vec3) Add(rhs Vec3) Vec3 {
	return Vec3{
		X: lhs.X + rhs.X,
		Y: lhs.Y + rhs.Y,
		Z: lhs.Z + rhs.Z,
	}
}

func (lhs Vec3) Sub(rhs Vec3) Vec3 {
	return Vec3{
		X: lhs.X - rhs.X,
		Y: lhs.Y - rhs.Y,
		Z: lhs.Z - rhs.Z,
	}
}

func (lhs Vec3) Mul(rhs Vec3) Vec3 {
	return Vec3{
		X: lhs.X * rhs.X,
		Y: lhs.Y * rhs.Y,
		Z: lhs.Z * rhs.Z,
	}
}

func (lhs Vec3) Div(rhs Vec3) Vec3 {
	return Vec3{
		X: lhs.X / rhs.X,
		Y: lhs.Y / rhs.Y,
		Z: lhs.Z / rhs.Z,
	}
}

func (lhs Vec3) AddScalar(s float32) Vec3 {
	return Vec3{
		X: lhs.X + s,
		Y: lhs.Y + s,
		Z: lhs.Z + s,
	}
}

func (lhs Vec3) SubScalar(s float32) Vec3 {
	return Vec3{
		X: lhs.X - s,
		Y: lhs.Y - s,
		Z: lhs.Z - s,
	}
}

func (lhs Vec3) MulScalar(s float32) Vec3 {
	return Vec3{
		X: lhs.X * s,
		Y: lhs.Y * s,
		Z: lhs.Z * s,
	}
}

func (lhs Vec3) DivScalar(s float32) Vec3 {
	return Vec3{
		X: lhs.X / s,
		Y: lhs.Y / s,
		Z: lhs.Z / s,
	}
}

func (lhs *Vec3) AddAssign(rhs Vec3) {
	lhs.X += rhs.X
	lhs.Y += rhs.Y
	lhs.Z += rhs.Z
}

func (lhs *Vec3) SubAssign(rhs Vec3) {
	lhs.X -= rhs.X
	lhs.Y -= rhs.Y
	lhs.Z -= rhs.Z
}

func (lhs *Vec3) MulAssign(rhs Vec3) {
	lhs.X *= rhs.X
	lhs.Y *= rhs.Y
	lhs.Z *= rhs.Z
}

func (lhs *Vec3) DivAssign(rhs Vec3) {
	lhs.X /= rhs.X
	lhs.Y /= rhs.Y
	lhs.Z /= rhs.Z
}

func (lhs *Vec3) AddScalarAssign(s float32) {
	lhs.X += s
	lhs.Y += s
	lhs.Z += s
}

func (lhs *Vec3) SubScalarAssign(s float32) {
	lhs.X -= s
	lhs.Y -= s
	lhs.Z -= s
}

func (lhs *Vec3) MulScalarAssign(s float32) {
	lhs.X *= s
	lhs.Y *= s
	lhs.Z *= s
}

func (lhs *Vec3) DivScalarAssign(s float32) {
	lhs.X /= s
	lhs.Y /= s
	lhs.Z /= s
}

func (lhs Vec3) Neg() Vec3 {
	return Vec3{X: -lhs.X, Y: -lhs.Y, Z: -lhs.Z}
}

func (lhs Vec3) Abs() Vec3   { return lhs.apply(absf) }
func (lhs Vec3) Acos() Vec3  { return lhs.apply(acosf) }
func (lhs Vec3) Asin() Vec3  { return lhs.apply(asinf) }
func (lhs Vec3) Atan() Vec3  { return lhs.apply(atanf) }
func (lhs Vec3) Ceil() Vec3  { return lhs.apply(ceilf) }
func (lhs Vec3) Floor() Vec3 { return lhs.apply(floorf) }
func (lhs Vec3) Round() Vec3 { return lhs.apply(roundf) }
func (lhs Vec3) Trunc() Vec3 { return lhs.apply(truncf) }
func (lhs Vec3) Cos() Vec3   { return lhs.apply(cosf) }
func (lhs Vec3) Sin() Vec3   { return lhs.apply(sinf) }
func (lhs Vec3) Tan() Vec3   { return lhs.apply(tanf) }
func (lhs Vec3) Cosh() Vec3  { return lhs.apply(coshf) }
func (lhs Vec3) Sinh() Vec3  { return lhs.apply(sinhf) }
func (lhs Vec3) Tanh() Vec3  { return lhs.apply(tanhf) }
func (lhs Vec3) Exp() Vec3   { return lhs.apply(expf) }
func (lhs Vec3) Exp2() Vec3  { return lhs.apply(exp2f) }
func (lhs Vec3) Log() Vec3   { return lhs.apply(logf) }
func (lhs Vec3) Log10() Vec3 { return lhs.apply(log10f) }
func (lhs Vec3) Log2() Vec3  { return lhs.apply(log2f) }
func (lhs Vec3) Sqrt() Vec3  { return lhs.apply(sqrtf) }

func (lhs Vec3) Degrees() Vec3 { return lhs.apply(degrees) }
func (lhs Vec3) Radians() Vec3 { return lhs.apply(radians) }

// Atan2 returns atan2(y, x), ignoring Z.
func (lhs Vec3) Atan2() float32 {
	return atan2(lhs.Y, lhs.X)
}

func (lhs Vec3) Clamp(lo, hi float32) Vec3 {
	return Vec3{
		X: clamp(lhs.X, lo, hi),
		Y: clamp(lhs.Y, lo, hi),
		Z: clamp(lhs.Z, lo, hi),
	}
}

func (lhs Vec3) Saturate() Vec3 {
	return lhs.apply(saturate[float32])
}

func (lhs Vec3) Fmod(rhs Vec3) Vec3 {
	return lhs.combine(rhs, fmod)
}

func (lhs Vec3) Frac() Vec3 {
	return lhs.apply(frac[float32])
}

func (lhs Vec3) Ldexp(exponent Vec3) Vec3 {
	return lhs.combine(exponent, ldexp)
}

func (lhs Vec3) Pow(exponent float32) Vec3 {
	return Vec3{
		X: pow(lhs.X, exponent),
		Y: pow(lhs.Y, exponent),
		Z: pow(lhs.Z, exponent),
	}
}

func (lhs Vec3) Rcp() Vec3 {
	return Vec3{X: 1 / lhs.X, Y: 1 / lhs.Y, Z: 1 / lhs.Z}
}

func (lhs Vec3) RcpSafe() Vec3 {
	return lhs.apply(rcpSafe)
}

func (lhs Vec3) Rsqrt() Vec3 {
	return lhs.apply(rsqrt)
}

func (lhs Vec3) Sign() Vec3 {
	return lhs.apply(signum[float32])
}

func (lhs Vec3) All() bool {
	return nonZero(lhs.X) && nonZero(lhs.Y) && nonZero(lhs.Z)
}

func (lhs Vec3) Any() bool {
	return nonZero(lhs.X) || nonZero(lhs.Y) || nonZero(lhs.Z)
}

func (lhs Vec3) Dot(rhs Vec3) float32 {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y) + (lhs.Z * rhs.Z)
}

func (lhs Vec3) Cross(rhs Vec3) Vec3 {
	return Vec3{
		X: lhs.Y*rhs.Z - rhs.Y*lhs.Z,
		Y: lhs.Z*rhs.X - rhs.Z*lhs.X,
		Z: lhs.X*rhs.Y - rhs.X*lhs.Y,
	}
}

func (lhs Vec3) Length() float32 {
	return sqrtf(lhs.Dot(lhs))
}

func (lhs Vec3) LengthSqr() float32 {
	return lhs.Dot(lhs)
}

func (lhs Vec3) Distance(rhs Vec3) float32 {
	return lhs.Sub(rhs).Length()
}

func (lhs Vec3) Normalize() Vec3 {
	length := lhs.Length()
	if length == 0 {
		return Vec3{}
	}

	return lhs.DivScalar(length)
}

func (lhs Vec3) Lerp(rhs Vec3, t float32) Vec3 {
	return Vec3{
		X: lhs.X + float32(t*(rhs.X-lhs.X)),
		Y: lhs.Y + float32(t*(rhs.Y-lhs.Y)),
		Z: lhs.Z + float32(t*(rhs.Z-lhs.Z)),
	}
}

func (lhs Vec3) Mad(b, c Vec3) Vec3 {
	return Vec3{
		X: float32(lhs.X*b.X) + c.X,
		Y: float32(lhs.Y*b.Y) + c.Y,
		Z: float32(lhs.Z*b.Z) + c.Z,
	}
}

func (lhs Vec3) Max(rhs Vec3) Vec3 {
	return Vec3{
		X: max(lhs.X, rhs.X),
		Y: max(lhs.Y, rhs.Y),
		Z: max(lhs.Z, rhs.Z),
	}
}

func (lhs Vec3) Min(rhs Vec3) Vec3 {
	return Vec3{
		X: min(lhs.X, rhs.X),
		Y: min(lhs.Y, rhs.Y),
		Z: min(lhs.Z, rhs.Z),
	}
}

func (lhs Vec3) Reflect(normal Vec3) Vec3 {
	return lhs.Sub(normal.MulScalar(2 * lhs.Dot(normal)))
}

// Refract returns the zero vector on total internal reflection.
func (lhs Vec3) Refract(normal Vec3, eta float32) Vec3 {
	d := lhs.Dot(normal)

	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vec3{}
	}

	return lhs.MulScalar(eta).Sub(normal.MulScalar(eta*d + sqrtf(k)))
}

func (lhs Vec3) Smoothstep(lo, hi Vec3) Vec3 {
	return Vec3{
		X: smoothstep(lo.X, hi.X, lhs.X),
		Y: smoothstep(lo.Y, hi.Y, lhs.Y),
		Z: smoothstep(lo.Z, hi.Z, lhs.Z),
	}
}

func (lhs Vec3) Step(edge Vec3) Vec3 {
	return Vec3{
		X: step(edge.X, lhs.X),
		Y: step(edge.Y, lhs.Y),
		Z: step(edge.Z, lhs.Z),
	}
}

func (lhs Vec3) Swizzle2(a, b Component) Vec2 {
	return Vec2{X: lhs.Get(a), Y: lhs.Get(b)}
}

func (lhs Vec3) Swizzle3(a, b, c Component) Vec3 {
	return Vec3{X: lhs.Get(a), Y: lhs.Get(b), Z: lhs.Get(c)}
}

func (lhs Vec3) Swizzle4(a, b, c, d Component) Vec4 {
	return Vec4{X: lhs.Get(a), Y: lhs.Get(b), Z: lhs.Get(c), W: lhs.Get(d)}
}
