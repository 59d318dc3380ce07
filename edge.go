package mapview

// Edges holds, for each side, how far the content extends past the matching
// side of the container. Zero means the two edges are flush; a positive value
// means the content still covers that side with room to spare; a negative
// value is the width of the empty strip the content would expose.
type Edges struct {
	Left, Right, Top, Bottom float64
}

// CoveredX reports whether neither horizontal side exposes empty space.
func (e Edges) CoveredX() bool { return e.Left >= 0 && e.Right >= 0 }

// CoveredY reports whether neither vertical side exposes empty space.
func (e Edges) CoveredY() bool { return e.Top >= 0 && e.Bottom >= 0 }

// CalculateEdges computes the edge overhangs of a content rectangle of
// contentSize scaled by contentScale and centered at pos, against a container
// of containerSize centered at the origin. All values are in the container's
// local space.
func CalculateEdges(contentSize, contentScale, pos, containerSize Vec2) Edges {
	// Gap between the edges when both rectangles are centered.
	hw := (containerSize.X - contentSize.X*contentScale.X) / 2
	hh := (containerSize.Y - contentSize.Y*contentScale.Y) / 2

	return Edges{
		Left:   -(hw + pos.X),
		Right:  pos.X - hw,
		Top:    -(hh + pos.Y),
		Bottom: pos.Y - hh,
	}
}

// edgesAt computes the edges of content placed at pos inside container.
func edgesAt(container, content *Node, pos Vec2) Edges {
	return CalculateEdges(
		Vec2{content.Width, content.Height},
		Vec2{content.ScaleX, content.ScaleY},
		pos,
		Vec2{container.Width, container.Height},
	)
}
