// Package path records 2D paths of lines and bezier curves and flattens
// them into polylines.
package path

import (
	"github.com/oliverbestmann/floatvec/geom"
	"github.com/oliverbestmann/floatvec/glm"
)

type operationType uint32

const (
	opMove       operationType = 1
	opLine       operationType = 2
	opQuadCurve  operationType = 3
	opCubicCurve operationType = 4
	opClose      operationType = 5
)

// subdivision stops at this depth even if a curve is not yet flat
const maxDepth = 16

type pathOp struct {
	Type    operationType
	End     glm.Vec2
	Control [2]glm.Vec2
}

type Path struct {
	ops []pathOp
}

func (p *Path) MoveTo(pos glm.Vec2) {
	p.ops = append(p.ops, pathOp{
		Type: opMove,
		End:  pos,
	})
}

func (p *Path) LineTo(pos glm.Vec2) {
	p.ops = append(p.ops, pathOp{
		Type: opLine,
		End:  pos,
	})
}

// Close connects the current point back to the point of the last MoveTo.
func (p *Path) Close() {
	p.ops = append(p.ops, pathOp{
		Type: opClose,
	})
}

func (p *Path) QuadCurveTo(control, end glm.Vec2) {
	p.ops = append(p.ops, pathOp{
		Type:    opQuadCurve,
		End:     end,
		Control: [2]glm.Vec2{control},
	})
}

func (p *Path) CubicCurveTo(control1, control2, end glm.Vec2) {
	p.ops = append(p.ops, pathOp{
		Type:    opCubicCurve,
		End:     end,
		Control: [2]glm.Vec2{control1, control2},
	})
}

// Contour flattens the path into a polyline. Curves are subdivided until
// their control points are within flatness of the chord.
func (p *Path) Contour(flatness float32) []glm.Vec2 {
	var points []glm.Vec2

	var curr, start glm.Vec2

	for _, op := range p.ops {
		switch op.Type {
		case opMove:
			points = append(points, op.End)
			start = op.End

		case opLine:
			points = append(points, op.End)

		case opQuadCurve:
			adaptiveQuadCurve(curr, op.Control[0], op.End, flatness, 0, &points)

		case opCubicCurve:
			adaptiveCubicCurve(curr, op.Control[0], op.Control[1], op.End, flatness, 0, &points)

		case opClose:
			points = append(points, start)
			op.End = start
		}

		curr = op.End
	}

	return dedup(points)
}

// Bounds returns the bounding rectangle of the flattened path.
func (p *Path) Bounds(flatness float32) geom.Rect {
	return geom.Bounds(p.Contour(flatness))
}

func dedup(points []glm.Vec2) []glm.Vec2 {
	if len(points) == 0 {
		return points
	}

	pointsClean := points[:1]

	prev := points[0]
	for _, point := range points[1:] {
		if prev == point {
			continue
		}

		pointsClean = append(pointsClean, point)
		prev = point
	}

	return pointsClean
}

// Length returns the total length of the polyline.
func Length(points []glm.Vec2) float32 {
	var length float32

	for idx := 1; idx < len(points); idx++ {
		length += points[idx-1].Distance(points[idx])
	}

	return length
}

// Triangulate fans the polyline around its first point. The result holds
// three vertices per triangle and is only correct for convex contours.
func Triangulate(points []glm.Vec2) []glm.Vec2 {
	var vertices []glm.Vec2

	for idx := 2; idx < len(points); idx++ {
		vertices = append(vertices, points[0], points[idx], points[idx-1])
	}

	return vertices
}

// SampleQuadCurve computes a point on a quadratic bezier at parameter t in [0,1].
func SampleQuadCurve(p0, p1, p2 glm.Vec2, t float32) glm.Vec2 {
	// B(t) = (1-t)^2 * p0 + 2(1-t)t * p1 + t^2 * p2
	omt := 1.0 - t

	return p0.MulScalar(omt * omt).
		Add(p1.MulScalar(2 * omt * t)).
		Add(p2.MulScalar(t * t))
}

// SampleCubicCurve computes a point on a cubic bezier at parameter t in [0,1].
func SampleCubicCurve(p0, p1, p2, p3 glm.Vec2, t float32) glm.Vec2 {
	// B(t) = (1-t)^3 * p0 +
	//        3(1-t)^2 t * p1 +
	//        3(1-t) t^2 * p2 +
	//        t^3 * p3
	omt := 1.0 - t

	return p0.MulScalar(omt * omt * omt).
		Add(p1.MulScalar(3 * omt * omt * t)).
		Add(p2.MulScalar(3 * omt * t * t)).
		Add(p3.MulScalar(t * t * t))
}

func adaptiveQuadCurve(p0, p1, p2 glm.Vec2, flatness float32, depth int, out *[]glm.Vec2) {
	if depth >= maxDepth || quadFlatEnough(p0, p1, p2, flatness) {
		*out = append(*out, p0, p2)
		return
	}

	q0 := mid(p0, p1)
	q1 := mid(p1, p2)
	m := mid(q0, q1)

	adaptiveQuadCurve(p0, q0, m, flatness, depth+1, out)
	adaptiveQuadCurve(m, q1, p2, flatness, depth+1, out)
}

func adaptiveCubicCurve(p0, p1, p2, p3 glm.Vec2, flatness float32, depth int, out *[]glm.Vec2) {
	if depth >= maxDepth || cubicFlatEnough(p0, p1, p2, p3, flatness) {
		*out = append(*out, p0, p3)
		return
	}

	q0 := mid(p0, p1)
	q1 := mid(p1, p2)
	q2 := mid(p2, p3)

	r0 := mid(q0, q1)
	r1 := mid(q1, q2)

	s := mid(r0, r1)

	adaptiveCubicCurve(p0, q0, r0, s, flatness, depth+1, out)
	adaptiveCubicCurve(s, r1, q2, p3, flatness, depth+1, out)
}

func quadFlatEnough(p0, p1, p2 glm.Vec2, threshold float32) bool {
	return pointLineDistance(p1, p0, p2) <= threshold
}

func cubicFlatEnough(p0, p1, p2, p3 glm.Vec2, threshold float32) bool {
	// Distance of p1 and p2 from the line p0-p3
	d1 := pointLineDistance(p1, p0, p3)
	d2 := pointLineDistance(p2, p0, p3)
	return d1 <= threshold && d2 <= threshold
}

func mid(a, b glm.Vec2) glm.Vec2 {
	return a.Add(b).MulScalar(0.5)
}

func pointLineDistance(p, a, b glm.Vec2) float32 {
	ab := b.Sub(a)
	ap := p.Sub(a)

	lengthSqr := ab.LengthSqr()
	if lengthSqr == 0 {
		return ap.Length()
	}

	// Project AP onto AB
	t := ap.Dot(ab) / lengthSqr

	closest := a.Add(ab.MulScalar(t))
	return p.Distance(closest)
}
