package mapview

// Controller pans and pinch-zooms a content node inside a container node.
//
// A Controller is driven synchronously by the host's input dispatch: one
// event at a time, on one goroutine. It owns the content node's position and
// scale; the host reads them back (or uses OnTransform) to render.
type Controller struct {
	cfg       Config
	container *Node
	content   *Node

	contacts contactTracker
	gesture  classifier
	locked   bool
	label    string

	onTap       TapFunc
	onTransform func(Viewport)
	onLabel     func(string)
}

// New creates a Controller for content, which must be a child of container.
// cfg is validated first.
func New(container, content *Node, cfg Config) *Controller {
	cfg = cfg.Validate()
	if content.Parent == nil {
		content.Parent = container
	}
	return &Controller{
		cfg:       cfg,
		container: container,
		content:   content,
		gesture:   classifier{moveOffset: cfg.MoveOffset},
		label:     FormatScale(content.ScaleX),
	}
}

// Config returns the validated configuration.
func (c *Controller) Config() Config { return c.cfg }

// Container returns the container node.
func (c *Controller) Container() *Node { return c.container }

// Content returns the content node.
func (c *Controller) Content() *Node { return c.content }

// Start applies Config.DefaultScale around the content origin.
func (c *Controller) Start() {
	c.zoomAt(Vec2{}, c.cfg.DefaultScale)
}

// OnTransform registers the handler called after each accepted change of
// position or scale. The last registration wins.
func (c *Controller) OnTransform(fn func(Viewport)) {
	c.onTransform = fn
}

// OnLabel registers the handler receiving the zoom percentage text, e.g.
// "110%". It is called after every zoom attempt, accepted or not.
func (c *Controller) OnLabel(fn func(string)) {
	c.onLabel = fn
}

// Viewport returns the current content transform.
func (c *Controller) Viewport() Viewport {
	return Viewport{Position: Vec2{c.content.X, c.content.Y}, Scale: c.content.ScaleX}
}

// Label returns the last published zoom percentage.
func (c *Controller) Label() string { return c.label }

// Gesture returns the gesture state of the current touch session.
func (c *Controller) Gesture() Gesture { return c.gesture.state }

// Contacts returns the tracked contacts in insertion order.
func (c *Controller) Contacts() []Contact { return c.contacts.snapshot() }

// Locked reports whether the operation lock is engaged.
func (c *Controller) Locked() bool { return c.locked }

// SetLocked engages or clears the operation lock. While locked every event
// is ignored. Engaging it with Config.ResetOnLock also forgets the tracked
// contacts and the movement latch. Gestures already applied are kept.
func (c *Controller) SetLocked(locked bool) {
	if locked && !c.locked && c.cfg.ResetOnLock {
		if c.contacts.len() > 0 {
			Logger().Debug("lock engaged mid-gesture, contacts cleared", "contacts", c.contacts.len())
		}
		c.contacts.reset()
		c.gesture.reset()
	}
	c.locked = locked
}

// HandleMove processes a move event and returns the gesture it produced.
func (c *Controller) HandleMove(ev TouchEvent) Gesture {
	if c.locked {
		return GestureNone
	}
	c.contacts.track(ev, c.container.ScreenRect(), c.cfg.StrictContacts)

	var first Contact
	if c.contacts.len() > 0 {
		first = c.contacts.at(0)
	}
	g := c.gesture.move(c.contacts.len(), first)
	switch g {
	case GesturePinch:
		c.pinch(c.contacts.at(0), c.contacts.at(1))
	case GesturePan:
		c.pan(first.Delta)
	}
	return g
}

// HandleEnd processes an end event. It returns GestureTap when the session
// resolved to a tap.
func (c *Controller) HandleEnd(ev TouchEvent) Gesture {
	return c.release(ev, true)
}

// HandleCancel processes a cancel event. It reports taps only when
// Config.TapOnCancel is set.
func (c *Controller) HandleCancel(ev TouchEvent) Gesture {
	return c.release(ev, c.cfg.TapOnCancel)
}

func (c *Controller) release(ev TouchEvent, allowTap bool) Gesture {
	if c.locked {
		return GestureNone
	}
	c.contacts.release(ev)
	allowTap = allowTap && len(ev.Touches) > 0
	g := c.gesture.release(c.contacts.len(), allowTap)
	if g == GestureTap && !c.tap(ev.Touches[0].Location) {
		g = GestureNone
	}
	return g
}

// HandleWheel zooms around the screen location by scrollY/Config.WheelRate.
func (c *Controller) HandleWheel(location Vec2, scrollY float64) {
	if c.locked || scrollY == 0 {
		return
	}
	anchor := c.content.WorldToLocal(location)
	c.zoomAt(anchor, c.content.ScaleX+scrollY/c.cfg.WheelRate)
}

func (c *Controller) emitTransform() {
	if c.onTransform != nil {
		c.onTransform(c.Viewport())
	}
}

func (c *Controller) emitLabel(text string) {
	c.label = text
	if c.onLabel != nil {
		c.onLabel(text)
	}
}
