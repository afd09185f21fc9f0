package menu

// click is the two-phase confirmation state: Idle, or armed at the index
// that was hovered when the button went down.
type click struct {
	armed bool
	index int
}

// press arms at index when something is hovered, otherwise goes idle.
func (c *click) press(index int, hovered bool) {
	if !hovered {
		*c = click{}
		return
	}
	*c = click{armed: true, index: index}
}

// release returns the armed index and goes idle.
func (c *click) release() (int, bool) {
	index, armed := c.index, c.armed
	*c = click{}
	return index, armed
}
