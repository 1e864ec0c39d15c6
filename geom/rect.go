// Package geom holds simple shapes built on top of the glm vectors.
package geom

import (
	"github.com/oliverbestmann/floatvec/glm"
)

// Rect is an axis aligned rectangle. Min is expected to be
// component-wise less than or equal to Max.
type Rect struct {
	Min glm.Vec2
	Max glm.Vec2
}

func RectFromSize(pos, size glm.Vec2) Rect {
	return RectFromPoints(pos, pos.Add(size))
}

func RectFromPoints(a, b glm.Vec2) Rect {
	return Rect{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

// Bounds returns the smallest rectangle containing all points,
// or the zero rectangle if there are none.
func Bounds(points []glm.Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		r = r.Extend(point)
	}

	return r
}

func (r Rect) Extend(point glm.Vec2) Rect {
	return Rect{
		Min: r.Min.Min(point),
		Max: r.Max.Max(point),
	}
}

func (r Rect) Union(other Rect) Rect {
	return r.Extend(other.Min).Extend(other.Max)
}

func (r Rect) Contains(point glm.Vec2) bool {
	return point.X >= r.Min.X && point.X <= r.Max.X &&
		point.Y >= r.Min.Y && point.Y <= r.Max.Y
}

func (r Rect) Center() glm.Vec2 {
	return r.Min.Lerp(r.Max, 0.5)
}

func (r Rect) Size() glm.Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Width() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float32 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) XYWH() (float32, float32, float32, float32) {
	x, y := r.Min.Split()
	w, h := r.Size().Split()
	return x, y, w, h
}
