package mapview

// maxContacts is the number of concurrent contacts a gesture can use.
// Further contacts are observed by the host but never tracked.
const maxContacts = 2

// Touch is one contact as reported by the host in a touch event. All
// locations are in screen space.
type Touch struct {
	// ID is stable for the lifetime of the physical contact.
	ID int
	// Start is where the contact first went down.
	Start Vec2
	// Location is the current position.
	Location Vec2
	// Delta is the movement since the previous event for this contact.
	Delta Vec2
}

// TouchEvent is a move, end, or cancel event from the host. For end and
// cancel events Touches holds the contacts that were released; the first
// entry's Location is the release location.
type TouchEvent struct {
	Touches []Touch
}

// Contact is a tracked touch.
type Contact struct {
	ID       int
	Start    Vec2
	Location Vec2
	Delta    Vec2
}

// contactTracker keeps the active contacts in insertion order.
type contactTracker struct {
	contacts [maxContacts]Contact
	n        int
}

// track records the contacts of a move event. Deltas of tracked contacts
// missing from the event are zeroed so a stationary finger contributes no
// movement. New contacts are admitted only while there is room and, when
// strict, only if they started inside bounds.
func (t *contactTracker) track(ev TouchEvent, bounds Rect, strict bool) {
	for i := 0; i < t.n; i++ {
		t.contacts[i].Delta = Vec2{}
	}
	for _, tc := range ev.Touches {
		if i := t.index(tc.ID); i >= 0 {
			t.contacts[i].Location = tc.Location
			t.contacts[i].Delta = tc.Delta
			continue
		}
		if t.n >= maxContacts {
			continue
		}
		if strict && !bounds.ContainsPoint(tc.Start) {
			continue
		}
		t.contacts[t.n] = Contact{ID: tc.ID, Start: tc.Start, Location: tc.Location, Delta: tc.Delta}
		t.n++
	}
}

// release removes every tracked contact named in the event. Unknown IDs
// are ignored.
func (t *contactTracker) release(ev TouchEvent) {
	for _, tc := range ev.Touches {
		i := t.index(tc.ID)
		if i < 0 {
			continue
		}
		copy(t.contacts[i:t.n], t.contacts[i+1:t.n])
		t.n--
		t.contacts[t.n] = Contact{}
	}
}

func (t *contactTracker) index(id int) int {
	for i := 0; i < t.n; i++ {
		if t.contacts[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *contactTracker) len() int { return t.n }

func (t *contactTracker) at(i int) Contact { return t.contacts[i] }

func (t *contactTracker) reset() {
	t.contacts = [maxContacts]Contact{}
	t.n = 0
}

// snapshot returns a copy of the tracked contacts in insertion order.
func (t *contactTracker) snapshot() []Contact {
	out := make([]Contact, t.n)
	copy(out, t.contacts[:t.n])
	return out
}
