package model

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D coordinate in inches.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point2D) vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = o[0]
	max = o[0]
	for _, p := range o[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// SignedArea returns the shoelace area, positive for counter-clockwise outlines.
func (o Outline) SignedArea() float64 {
	var sum float64
	for i := range o {
		sum += r2.Cross(o[i].vec(), o[(i+1)%len(o)].vec())
	}
	return sum / 2
}

// Area returns the enclosed area in square inches.
func (o Outline) Area() float64 {
	return math.Abs(o.SignedArea())
}

// Contains reports whether p lies inside the outline (even-odd rule).
func (o Outline) Contains(p Point2D) bool {
	inside := false
	for i, j := 0, len(o)-1; i < len(o); j, i = i, i+1 {
		a, b := o[i], o[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// IsSimple reports whether no two non-adjacent edges of the outline cross.
func (o Outline) IsSimple() bool {
	n := len(o)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsCross(o[i], o[(i+1)%n], o[j], o[(j+1)%n]) {
				return false
			}
		}
	}
	return true
}

func segmentsCross(a, b, c, d Point2D) bool {
	ab := r2.Sub(b.vec(), a.vec())
	cd := r2.Sub(d.vec(), c.vec())
	d1 := r2.Cross(ab, r2.Sub(c.vec(), a.vec()))
	d2 := r2.Cross(ab, r2.Sub(d.vec(), a.vec()))
	d3 := r2.Cross(cd, r2.Sub(a.vec(), c.vec()))
	d4 := r2.Cross(cd, r2.Sub(b.vec(), c.vec()))
	return d1*d2 < 0 && d3*d4 < 0
}

// PanelOutline is the schematic shape of one panel: four vertices ordered
// bottom-left, bottom-right, top-right, top-left, and the indices of the two
// vertices forming the leading (screw side) edge.
type PanelOutline struct {
	Vertices    [4]Point2D `json:"vertices"`
	LeadingEdge [2]int     `json:"leading_edge"`
}

// Vertex indices into PanelOutline.Vertices.
const (
	BottomLeft = iota
	BottomRight
	TopRight
	TopLeft
)

// Polygon returns the vertices as a closed Outline suitable for filling.
func (po PanelOutline) Polygon() Outline {
	return Outline(po.Vertices[:])
}

// LeadingEdgePoints returns the start and end of the leading edge.
func (po PanelOutline) LeadingEdgePoints() (Point2D, Point2D) {
	return po.Vertices[po.LeadingEdge[0]], po.Vertices[po.LeadingEdge[1]]
}

// Defined reports whether every vertex is a finite coordinate.
func (po PanelOutline) Defined() bool {
	for _, v := range po.Vertices {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return false
		}
	}
	return true
}
