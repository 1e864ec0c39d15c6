package glm

import "fmt"

// Vec4 is a vector of four float32 components.
type Vec4 struct {
	X, Y, Z, W float32
}

func Vec4Of(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

func Vec4FromScalar(s float32) Vec4 {
	return Vec4{X: s, Y: s, Z: s, W: s}
}

func Vec4FromArray(values [4]float32) Vec4 {
	return Vec4{X: values[0], Y: values[1], Z: values[2], W: values[3]}
}

func (lhs Vec4) String() string {
	return fmt.Sprintf("Vec4 (%v, %v, %v, %v)", lhs.X, lhs.Y, lhs.Z, lhs.W)
}

func (lhs Vec4) Array() [4]float32 {
	return [4]float32{lhs.X, lhs.Y, lhs.Z, lhs.W}
}

func (lhs Vec4) Split() (x, y, z, w float32) {
	return lhs.X, lhs.Y, lhs.Z, lhs.W
}

func (lhs Vec4) Get(c Component) float32 {
	switch c {
	case ComponentX:
		return lhs.X
	case ComponentY:
		return lhs.Y
	case ComponentZ:
		return lhs.Z
	case ComponentW:
		return lhs.W
	}

	panic(outOfRange(c, "Vec4"))
}

// Truncate drops the W component.
func (lhs Vec4) Truncate() Vec3 {
	return Vec3{X: lhs.X, Y: lhs.Y, Z: lhs.Z}
}

func (lhs Vec4) apply(fn func(float32) float32) Vec4 {
	return Vec4{
		X: fn(lhs.X),
		Y: fn(lhs.Y),
		Z: fn(lhs.Z),
		W: fn(lhs.W),
	}
}

func (lhs Vec4) combine(rhs Vec4, fn func(a, b float32) float32) Vec4 {
	return Vec4{
		X: fn(lhs.X, rhs.X),
		Y: fn(lhs.Y, rhs.Y),
		Z: fn(lhs.Z, rhs.Z),
		W: fn(lhs.W, rhs.W),
	}
}

func (lhs Vec4) Equal(rhs Vec4) bool {
	return lhs.X == rhs.X && lhs.Y == rhs.Y && lhs.Z == rhs.Z && lhs.W == rhs.W
}

func (lhs Vec4) ApproxEqual(rhs Vec4, eps float32) bool {
	d := lhs.Sub(rhs).Abs()
	return d.X <= eps && d.Y <= eps && d.Z <= eps && d.W <= eps
}

func (lhs Vec4) Add(rhs Vec4) Vec4 {
	return Vec4{
		X: lhs.X + rhs.X,
		Y: lhs.Y + rhs.Y,
		Z: lhs.Z + rhs.Z,
		W: lhs.W + rhs.W,
	}
}

func (lhs Vec4) Sub(rhs Vec4) Vec4 {
	return Vec4{
		X: lhs.X - rhs.X,
		Y: lhs.Y - rhs.Y,
		Z: lhs.Z - rhs.Z,
		W: lhs.W - rhs.W,
	}
}

func (lhs Vec4) Mul(rhs Vec4) Vec4 {
	return Vec4{
		X: lhs.X * rhs.X,
		Y: lhs.Y * rhs.Y,
		Z: lhs.Z * rhs.Z,
		W: lhs.W * rhs.W,
	}
}

func (lhs Vec4) Div(rhs Vec4) Vec4 {
	return Vec4{
		X: lhs.X / rhs.X,
		Y: lhs.Y / rhs.Y,
		Z: lhs.Z / rhs.Z,
		W: lhs.W / rhs.W,
	}
}

func (lhs Vec4) AddScalar(s float32) Vec4 {
	return Vec4{
		X: lhs.X + s,
		Y: lhs.Y + s,
		Z: lhs.Z + s,
		W: lhs.W + s,
	}
}

func (lhs Vec4) SubScalar(s float32) Vec4 {
	return Vec4{
		X: lhs.X - s,
		Y: lhs.Y - s,
		Z: lhs.Z - s,
		W: lhs.W - s,
	}
}

func (lhs Vec4) MulScalar(s float32) Vec4 {
	return Vec4{
		X: lhs.X * s,
		Y: lhs.Y * s,
		Z: lhs.Z * s,
		W: lhs.W * s,
	}
}

func (lhs Vec4) DivScalar(s float32) Vec4 {
	return Vec4{
		X: lhs.X / s,
		Y: lhs.Y / s,
		Z: lhs.Z / s,
		W: lhs.W / s,
	}
}

func (lhs *Vec4) AddAssign(rhs Vec4) {
	*lhs = lhs.Add(rhs)
}

func (lhs *Vec4) SubAssign(rhs Vec4) {
	*lhs = lhs.Sub(rhs)
}

func (lhs *Vec4) MulAssign(rhs Vec4) {
	*lhs = lhs.Mul(rhs)
}

func (lhs *Vec4) DivAssign(rhs Vec4) {
	*lhs = lhs.Div(rhs)
}

func (lhs *Vec4) AddScalarAssign(s float32) {
	*lhs = lhs.AddScalar(s)
}

func (lhs *Vec4) SubScalarAssign(s float32) {
	*lhs = lhs.SubScalar(s)
}

func (lhs *Vec4) MulScalarAssign(s float32) {
	*lhs = lhs.MulScalar(s)
}

func (lhs *Vec4) DivScalarAssign(s float32) {
	*lhs = lhs.DivScalar(s)
}

func (lhs Vec4) Neg() Vec4 {
	return Vec4{X: -lhs.X, Y: -lhs.Y, Z: -lhs.Z, W: -lhs.W}
}

func (lhs Vec4) Abs() Vec4   { return lhs.apply(absf) }
func (lhs Vec4) Acos() Vec4  { return lhs.apply(acosf) }
func (lhs Vec4) Asin() Vec4  { return lhs.apply(asinf) }
func (lhs Vec4) Atan() Vec4  { return lhs.apply(atanf) }
func (lhs Vec4) Ceil() Vec4  { return lhs.apply(ceilf) }
func (lhs Vec4) Floor() Vec4 { return lhs.apply(floorf) }
func (lhs Vec4) Round() Vec4 { return lhs.apply(roundf) }
func (lhs Vec4) Trunc() Vec4 { return lhs.apply(truncf) }
func (lhs Vec4) Cos() Vec4   { return lhs.apply(cosf) }
func (lhs Vec4) Sin() Vec4   { return lhs.apply(sinf) }
func (lhs Vec4) Tan() Vec4   { return lhs.apply(tanf) }
func (lhs Vec4) Cosh() Vec4  { return lhs.apply(coshf) }
func (lhs Vec4) Sinh() Vec4  { return lhs.apply(sinhf) }
func (lhs Vec4) Tanh() Vec4  { return lhs.apply(tanhf) }
func (lhs Vec4) Exp() Vec4   { return lhs.apply(expf) }
func (lhs Vec4) Exp2() Vec4  { return lhs.apply(exp2f) }
func (lhs Vec4) Log() Vec4   { return lhs.apply(logf) }
func (lhs Vec4) Log10() Vec4 { return lhs.apply(log10f) }
func (lhs Vec4) Log2() Vec4  { return lhs.apply(log2f) }
func (lhs Vec4) Sqrt() Vec4  { return lhs.apply(sqrtf) }

func (lhs Vec4) Degrees() Vec4 { return lhs.apply(degrees) }
func (lhs Vec4) Radians() Vec4 { return lhs.apply(radians) }

// Atan2 returns atan2(y, x), ignoring Z and W.
func (lhs Vec4) Atan2() float32 {
	return atan2(lhs.Y, lhs.X)
}

func (lhs Vec4) Clamp(lo, hi float32) Vec4 {
	return Vec4{
		X: clamp(lhs.X, lo, hi),
		Y: clamp(lhs.Y, lo, hi),
		Z: clamp(lhs.Z, lo, hi),
		W: clamp(lhs.W, lo, hi),
	}
}

func (lhs Vec4) Saturate() Vec4 {
	return lhs.apply(saturate[float32])
}

func (lhs Vec4) Fmod(rhs Vec4) Vec4 {
	return lhs.combine(rhs, fmod)
}

func (lhs Vec4) Frac() Vec4 {
	return lhs.apply(frac[float32])
}

func (lhs Vec4) Ldexp(exponent Vec4) Vec4 {
	return lhs.combine(exponent, ldexp)
}

func (lhs Vec4) Pow(exponent float32) Vec4 {
	return Vec4{
		X: pow(lhs.X, exponent),
		Y: pow(lhs.Y, exponent),
		Z: pow(lhs.Z, exponent),
		W: pow(lhs.W, exponent),
	}
}

func (lhs Vec4) Rcp() Vec4 {
	return Vec4{X: 1 / lhs.X, Y: 1 / lhs.Y, Z: 1 / lhs.Z, W: 1 / lhs.W}
}

func (lhs Vec4) RcpSafe() Vec4 {
	return lhs.apply(rcpSafe)
}

func (lhs Vec4) Rsqrt() Vec4 {
	return lhs.apply(rsqrt)
}

func (lhs Vec4) Sign() Vec4 {
	return lhs.apply(signum[float32])
}

func (lhs Vec4) All() bool {
	return nonZero(lhs.X) && nonZero(lhs.Y) && nonZero(lhs.Z) && nonZero(lhs.W)
}

func (lhs Vec4) Any() bool {
	return nonZero(lhs.X) || nonZero(lhs.Y) || nonZero(lhs.Z) || nonZero(lhs.W)
}

func (lhs Vec4) Dot(rhs Vec4) float32 {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y) + (lhs.Z * rhs.Z) + (lhs.W * rhs.W)
}

func (lhs Vec4) Length() float32 {
	return sqrtf(lhs.Dot(lhs))
}

func (lhs Vec4) LengthSqr() float32 {
	return lhs.Dot(lhs)
}

func (lhs Vec4) Distance(rhs Vec4) float32 {
	return lhs.Sub(rhs).Length()
}

func (lhs Vec4) Normalize() Vec4 {
	length := lhs.Length()
	if length == 0 {
		return Vec4{}
	}

	return lhs.DivScalar(length)
}

func (lhs Vec4) Lerp(rhs Vec4, t float32) Vec4 {
	return Vec4{
		X: lhs.X + float32(t*(rhs.X-lhs.X)),
		Y: lhs.Y + float32(t*(rhs.Y-lhs.Y)),
		Z: lhs.Z + float32(t*(rhs.Z-lhs.Z)),
		W: lhs.W + float32(t*(rhs.W-lhs.W)),
	}
}

func (lhs Vec4) Mad(b, c Vec4) Vec4 {
	return Vec4{
		X: float32(lhs.X*b.X) + c.X,
		Y: float32(lhs.Y*b.Y) + c.Y,
		Z: float32(lhs.Z*b.Z) + c.Z,
		W: float32(lhs.W*b.W) + c.W,
	}
}

func (lhs Vec4) Max(rhs Vec4) Vec4 {
	return Vec4{
		X: max(lhs.X, rhs.X),
		Y: max(lhs.Y, rhs.Y),
		Z: max(lhs.Z, rhs.Z),
		W: max(lhs.W, rhs.W),
	}
}

func (lhs Vec4) Min(rhs Vec4) Vec4 {
	return Vec4{
		X: min(lhs.X, rhs.X),
		Y: min(lhs.Y, rhs.Y),
		Z: min(lhs.Z, rhs.Z),
		W: min(lhs.W, rhs.W),
	}
}

func (lhs Vec4) Reflect(normal Vec4) Vec4 {
	return lhs.Sub(normal.MulScalar(2 * lhs.Dot(normal)))
}

func (lhs Vec4) Refract(normal Vec4, eta float32) Vec4 {
	d := lhs.Dot(normal)

	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		// total internal reflection
		return Vec4{}
	}

	return lhs.MulScalar(eta).Sub(normal.MulScalar(eta*d + sqrtf(k)))
}

func (lhs Vec4) Smoothstep(lo, hi Vec4) Vec4 {
	return Vec4{
		X: smoothstep(lo.X, hi.X, lhs.X),
		Y: smoothstep(lo.Y, hi.Y, lhs.Y),
		Z: smoothstep(lo.Z, hi.Z, lhs.Z),
		W: smoothstep(lo.W, hi.W, lhs.W),
	}
}

func (lhs Vec4) Step(edge Vec4) Vec4 {
	return Vec4{
		X: step(edge.X, lhs.X),
		Y: step(edge.Y, lhs.Y),
		Z: step(edge.Z, lhs.Z),
		W: step(edge.W, lhs.W),
	}
}

func (lhs Vec4) Swizzle2(a, b Component) Vec2 {
	return Vec2{X: lhs.Get(a), Y: lhs.Get(b)}
}

func (lhs Vec4) Swizzle3(a, b, c Component) Vec3 {
	return Vec3{X: lhs.Get(a), Y: lhs.Get(b), Z: lhs.Get(c)}
}

func (lhs Vec4) Swizzle4(a, b, c, d Component) Vec4 {
	return Vec4{X: lhs.Get(a), Y: lhs.Get(b), Z: lhs.Get(c), W: lhs.Get(d)}
}
