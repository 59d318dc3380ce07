package mapview

// TapFunc receives the content-local position of a tap.
type TapFunc func(local Vec2)

// OnTap registers the tap handler, replacing any previous one. Pass nil to
// stop receiving taps.
func (c *Controller) OnTap(fn TapFunc) {
	c.onTap = fn
}

// tap reports a release at a screen location. Releases outside the
// container are dropped when contacts are filtered strictly.
func (c *Controller) tap(screen Vec2) bool {
	if c.cfg.StrictContacts && !c.container.ScreenRect().ContainsPoint(screen) {
		return false
	}
	local := c.content.WorldToLocal(screen)
	Logger().Debug("click map", "x", local.X, "y", local.Y)
	if c.onTap != nil {
		c.onTap(local)
	}
	return true
}
