package mapview

import (
	"math"

	"golang.org/x/image/math/f64"
)

// identityTransform is the identity affine matrix.
var identityTransform = f64.Aff3{1, 0, 0, 0, 1, 0}

// Node is the geometry of one layer in a host's display hierarchy: the
// container frame or the content it bounds. The local origin is the node's
// center, so a node of size (w, h) spans [-w/2, w/2] x [-h/2, h/2] locally.
//
// The controller only reads a node's fields, except for the content node
// whose X, Y, ScaleX, and ScaleY it owns.
type Node struct {
	// X and Y are the node's position in its parent's local space.
	X, Y float64
	// ScaleX and ScaleY scale the node around its center.
	ScaleX, ScaleY float64
	// Width and Height are the unscaled size of the node.
	Width, Height float64
	// Parent is the enclosing node. Nil means X and Y are screen coordinates.
	Parent *Node
}

// NewNode creates an unscaled node of the given size at its parent's origin.
func NewNode(width, height float64) *Node {
	return &Node{ScaleX: 1, ScaleY: 1, Width: width, Height: height}
}

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// localTransform computes Translate(X, Y) * Scale(ScaleX, ScaleY).
//
//	Matrix layout (row-major, f64.Aff3): [a, b, c, d, e, f]
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
func localTransform(n *Node) f64.Aff3 {
	return f64.Aff3{n.ScaleX, 0, n.X, 0, n.ScaleY, n.Y}
}

// WorldTransform composes the local transforms from the root of the chain
// down to this node. It is recomputed on every call so moves of any ancestor
// are always observed.
func (n *Node) WorldTransform() f64.Aff3 {
	m := localTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(localTransform(p), m)
	}
	return m
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		p[0]*c[0] + p[1]*c[3],
		p[0]*c[1] + p[1]*c[4],
		p[0]*c[2] + p[1]*c[5] + p[2],
		p[3]*c[0] + p[4]*c[3],
		p[3]*c[1] + p[4]*c[4],
		p[3]*c[2] + p[4]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m f64.Aff3) f64.Aff3 {
	det := m[0]*m[4] - m[1]*m[3]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[4] * invDet
	b := -m[1] * invDet
	d := -m[3] * invDet
	e := m[0] * invDet
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m f64.Aff3, p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[1]*p.Y + m[2], m[3]*p.X + m[4]*p.Y + m[5]}
}

// transformVector applies only the linear part of m, for deltas.
func transformVector(m f64.Aff3, v Vec2) Vec2 {
	return Vec2{m[0]*v.X + m[1]*v.Y, m[3]*v.X + m[4]*v.Y}
}

// --- Coordinate conversion ---

// WorldToLocal converts a screen-space point to this node's local space.
func (n *Node) WorldToLocal(p Vec2) Vec2 {
	return transformPoint(invertAffine(n.WorldTransform()), p)
}

// LocalToWorld converts a local-space point to screen space.
func (n *Node) LocalToWorld(p Vec2) Vec2 {
	return transformPoint(n.WorldTransform(), p)
}

// ParentToLocal converts a screen-space point to the space this node is
// positioned in (its parent's local space, or screen space without a parent).
func (n *Node) ParentToLocal(p Vec2) Vec2 {
	if n.Parent == nil {
		return p
	}
	return n.Parent.WorldToLocal(p)
}

// WorldDeltaToLocal converts a screen-space movement into this node's local
// units. Translation does not apply to deltas.
func (n *Node) WorldDeltaToLocal(d Vec2) Vec2 {
	return transformVector(invertAffine(n.WorldTransform()), d)
}

// ScreenRect returns the axis-aligned bounding rect of the node in screen
// space, using its current world transform.
func (n *Node) ScreenRect() Rect {
	m := n.WorldTransform()
	hw, hh := n.Width/2, n.Height/2

	p0 := transformPoint(m, Vec2{-hw, -hh})
	p1 := transformPoint(m, Vec2{hw, -hh})
	p2 := transformPoint(m, Vec2{hw, hh})
	p3 := transformPoint(m, Vec2{-hw, hh})

	minX := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
