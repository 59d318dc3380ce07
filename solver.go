package mapview

import (
	"math"
	"strconv"
)

const (
	// minPinchDistance is the smallest dominant-axis distance between two
	// contacts that still yields a usable scale ratio.
	minPinchDistance = 1e-6

	// scaleEpsilon absorbs float representation error before flooring, so
	// 1.15 truncates to 1.15 rather than 1.14.
	scaleEpsilon = 1e-9
)

// TruncateScale floors s to 1/100 granularity.
func TruncateScale(s float64) float64 {
	return math.Floor(s*100+scaleEpsilon) / 100
}

// FormatScale renders s as a whole percentage, floored: 2.047 is "204%".
func FormatScale(s float64) string {
	return strconv.Itoa(int(math.Floor(s*100+scaleEpsilon))) + "%"
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// pinchScale computes the scale a pinch moves to. distance is p0-p1 and
// delta is d0-d1, both in container-local units. The dominant axis of
// distance drives the ratio. ok is false when that axis is too short.
func pinchScale(distance, delta Vec2, scaleX, scaleY float64) (scale float64, ok bool) {
	if math.Abs(distance.X) > math.Abs(distance.Y) {
		if math.Abs(distance.X) < minPinchDistance {
			return 0, false
		}
		return (distance.X + delta.X) / distance.X * scaleX, true
	}
	if math.Abs(distance.Y) < minPinchDistance {
		return 0, false
	}
	return (distance.Y + delta.Y) / distance.Y * scaleY, true
}

// pan moves the content by a screen-space delta. Each axis moves only if
// the content still covers the container on that axis at the new position.
func (c *Controller) pan(delta Vec2) {
	d := c.container.WorldDeltaToLocal(delta)
	pos := Vec2{c.content.X, c.content.Y}
	e := edgesAt(c.container, c.content, pos.Add(d))

	next := pos
	if e.CoveredX() {
		next.X += d.X
	}
	if e.CoveredY() {
		next.Y += d.Y
	}
	if next != pos {
		c.content.SetPosition(next.X, next.Y)
		c.emitTransform()
	}
}

// pinch scales the content from two tracked contacts around their midpoint.
func (c *Controller) pinch(a, b Contact) {
	p0 := c.container.WorldToLocal(a.Location)
	p1 := c.container.WorldToLocal(b.Location)
	d0 := c.container.WorldDeltaToLocal(a.Delta)
	d1 := c.container.WorldDeltaToLocal(b.Delta)

	scale, ok := pinchScale(p0.Sub(p1), d0.Sub(d1), c.content.ScaleX, c.content.ScaleY)
	if !ok {
		Logger().Debug("pinch skipped: contacts aligned", "a", a.ID, "b", b.ID)
		return
	}
	anchor := c.content.WorldToLocal(a.Location.Mid(b.Location))
	c.zoomAt(anchor, scale)
}

// zoomAt applies scale keeping the content-local anchor point fixed on
// screen. Out of range scales leave the transform untouched; the label shows
// the nearest bound instead.
func (c *Controller) zoomAt(anchor Vec2, scale float64) {
	if !isFinite(scale) {
		Logger().Debug("scale rejected: not finite")
		return
	}
	if c.cfg.MinScale <= scale && scale <= c.cfg.MaxScale {
		gap := anchor.Mul(scale - c.content.ScaleX)
		pos := Vec2{c.content.X, c.content.Y}.Sub(gap)

		scale = math.Max(TruncateScale(scale), c.cfg.MinScale)
		c.content.SetScale(scale, scale)
		pos = c.clampPosition(pos)
		c.content.SetPosition(pos.X, pos.Y)
		c.emitTransform()
	} else {
		Logger().Debug("scale out of range", "scale", scale,
			"min", c.cfg.MinScale, "max", c.cfg.MaxScale)
		scale = clampf(scale, c.cfg.MinScale, c.cfg.MaxScale)
	}
	c.emitLabel(FormatScale(scale))
}

// clampPosition moves pos so the content, at its current scale, leaves no
// empty space inside the container. At scale 1 the content is centered.
// Along an axis where the content is smaller than the container it is
// centered on that axis. Applying it twice yields the same position.
func (c *Controller) clampPosition(pos Vec2) Vec2 {
	if c.content.ScaleX == 1 && c.content.ScaleY == 1 {
		return Vec2{}
	}
	e := edgesAt(c.container, c.content, pos)

	if c.content.Width*c.content.ScaleX < c.container.Width {
		pos.X = 0
	} else {
		if e.Left < 0 {
			pos.X += e.Left
		}
		if e.Right < 0 {
			pos.X -= e.Right
		}
	}

	if c.content.Height*c.content.ScaleY < c.container.Height {
		pos.Y = 0
	} else {
		if e.Top < 0 {
			pos.Y += e.Top
		}
		if e.Bottom < 0 {
			pos.Y -= e.Bottom
		}
	}
	return pos
}
