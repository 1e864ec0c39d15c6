// Package glm provides fixed size float32 vectors with component-wise
// arithmetic, shader style math functions and swizzle accessors.
//
// All types are plain values. Operations never fail; out of domain inputs
// produce NaN or infinity following IEEE-754, except for Normalize, Refract,
// RcpSafe and Rsqrt which substitute a defined value for the degenerate case.
package glm

//go:generate go tool stringer -type=Component -trimprefix=Component
//go:generate go run ../cmd/swizzlegen -package glm -out .
