package envmap

// Selection references the single active zone, if any.
type Selection struct {
	ZoneID string
}

// Active reports whether a zone is selected.
func (s Selection) Active() bool {
	return s.ZoneID != ""
}

// SelectionController enforces the selection invariant: at most one active
// zone id, and that id always references a zone present in the current
// state. The view layer never sees a dangling selection.
type SelectionController struct {
	current Selection
}

// Current returns the selection.
func (c *SelectionController) Current() Selection {
	return c.current
}

// Select makes the zone active. Selecting an id absent from the state is a
// no-op, not an error.
func (c *SelectionController) Select(id string, state MapState) {
	if !state.HasZone(id) {
		return
	}
	c.current = Selection{ZoneID: id}
}

// Toggle selects the zone if it is not already selected, otherwise clears
// the selection (re-tap deselects).
func (c *SelectionController) Toggle(id string, state MapState) {
	if c.current.ZoneID == id {
		c.current = Selection{}
		return
	}
	c.Select(id, state)
}

// Clear drops the selection.
func (c *SelectionController) Clear() {
	c.current = Selection{}
}

// OnStateChanged must be called after every state update; it clears the
// selection when the selected zone no longer exists.
func (c *SelectionController) OnStateChanged(state MapState) {
	if c.current.Active() && !state.HasZone(c.current.ZoneID) {
		c.current = Selection{}
	}
}
