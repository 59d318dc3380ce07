package mapview

import "math"

// classifier resolves tracked contacts into gestures for one touch session.
//
// moving latches once a pan or pinch is recognised and is cleared when the
// tracked set drops to one contact or fewer. sessionMoved stays latched until
// the tracked set empties, so the last finger of a pinch lifting without
// moving is not reported as a tap.
type classifier struct {
	moveOffset   float64
	moving       bool
	sessionMoved bool
	state        Gesture
}

// canStartMove reports whether a single contact has left the tap tolerance.
// Some devices fire move events for a stationary press, so small jitter on
// both axes is ignored.
func (g *classifier) canStartMove(c Contact) bool {
	return math.Abs(c.Location.X-c.Start.X) > g.moveOffset ||
		math.Abs(c.Location.Y-c.Start.Y) > g.moveOffset
}

// move classifies a move event given the tracked set.
func (g *classifier) move(tracked int, first Contact) Gesture {
	switch {
	case tracked >= maxContacts:
		g.moving = true
		g.sessionMoved = true
		g.state = GesturePinch
	case tracked == 1 && (g.moving || g.canStartMove(first)):
		g.moving = true
		g.sessionMoved = true
		g.state = GesturePan
	default:
		g.state = GestureNone
	}
	return g.state
}

// release classifies an end or cancel event after the released contacts
// were removed. It returns GestureTap when the session produced no movement.
func (g *classifier) release(remaining int, allowTap bool) Gesture {
	result := GestureNone
	if remaining <= 1 {
		if allowTap && !g.moving && !g.sessionMoved {
			result = GestureTap
		}
		g.moving = false
		g.state = GestureNone
	}
	if remaining == 0 {
		g.sessionMoved = false
	}
	return result
}

func (g *classifier) reset() {
	g.moving = false
	g.sessionMoved = false
	g.state = GestureNone
}
