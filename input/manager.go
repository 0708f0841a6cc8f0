package input

// release is a queued key-up edge. afterPress marks a release that arrived
// after a press staged in the same frame; it is held back one Update so both
// edges stay observable.
type release struct {
	key        Key
	afterPress bool
}

// Manager converts key edges into frame-stable button states.
//
// Edges passed to HandleKey are staged, not applied. Update applies them once
// per frame, and the predicates read the result until the next Update.
// Manager is not safe for concurrent use: HandleKey and Update must be called
// from the same goroutine (the event loop).
type Manager struct {
	states map[Key]ButtonState

	justPressed  []Key
	justReleased []release
	carried      []Key

	// staged holds the keys in justPressed.
	staged map[Key]struct{}
}

// NewManager creates an empty manager. Every key starts Up.
func NewManager() *Manager {
	return &Manager{
		states: make(map[Key]ButtonState),
		staged: make(map[Key]struct{}),
	}
}

// HandleKey stages a raw edge for the next Update.
//
// A press is dropped if the key is already down with no release pending, or
// is already staged this frame; this filters OS key repeat. A press for a
// staged key cancels any release queued after that press, so the key stays
// down. A release is always staged.
func (m *Manager) HandleKey(key Key, edge Edge) {
	switch edge {
	case EdgePress:
		if _, ok := m.staged[key]; ok {
			m.cancelReleaseAfterPress(key)
			return
		}
		if m.states[key].IsDown() && !m.releasePending(key) {
			return
		}
		m.staged[key] = struct{}{}
		m.justPressed = append(m.justPressed, key)
	case EdgeRelease:
		_, afterPress := m.staged[key]
		m.justReleased = append(m.justReleased, release{key: key, afterPress: afterPress})
	}
}

// Update advances the state machine by one frame:
//
//  1. Pressed decays to Held and Released decays to Up.
//  2. Releases carried from the previous frame become Released.
//  3. Staged releases become Released.
//  4. Staged presses become Pressed.
//
// Presses are applied last, so a press wins over a release staged before it
// in the same frame. A release staged after a press is carried to the next
// Update, giving Pressed on this frame and Released on the next.
// Both queues are empty when Update returns.
func (m *Manager) Update() {
	for k, s := range m.states {
		m.states[k] = s.decay()
	}

	for _, k := range m.carried {
		m.states[k] = Released
	}
	m.carried = m.carried[:0]

	for _, r := range m.justReleased {
		if r.afterPress {
			m.carried = append(m.carried, r.key)
			continue
		}
		m.states[r.key] = Released
	}
	m.justReleased = m.justReleased[:0]

	for _, k := range m.justPressed {
		m.states[k] = Pressed
	}
	m.justPressed = m.justPressed[:0]
	clear(m.staged)
}

// State returns the key's state as of the last Update.
func (m *Manager) State(key Key) ButtonState {
	return m.states[key]
}

// IsPressed reports whether the key went down this frame.
func (m *Manager) IsPressed(key Key) bool { return m.states[key] == Pressed }

// IsHeld reports whether the key has been down since an earlier frame.
func (m *Manager) IsHeld(key Key) bool { return m.states[key] == Held }

// IsReleased reports whether the key went up this frame.
func (m *Manager) IsReleased(key Key) bool { return m.states[key] == Released }

// IsUp reports whether the key is up and did not change this frame.
func (m *Manager) IsUp(key Key) bool { return m.states[key] == Up }

// IsDown reports whether the key is Pressed or Held.
func (m *Manager) IsDown(key Key) bool { return m.states[key].IsDown() }

// Reset drops all key states and staged edges. Hosts call it when the
// window loses focus and release events may never arrive.
func (m *Manager) Reset() {
	clear(m.states)
	clear(m.staged)
	m.justPressed = m.justPressed[:0]
	m.justReleased = m.justReleased[:0]
	m.carried = m.carried[:0]
}

// Pending returns the number of edges waiting for the next Update.
func (m *Manager) Pending() int {
	return len(m.justPressed) + len(m.justReleased) + len(m.carried)
}

func (m *Manager) releasePending(key Key) bool {
	for _, r := range m.justReleased {
		if r.key == key {
			return true
		}
	}
	for _, k := range m.carried {
		if k == key {
			return true
		}
	}
	return false
}

// cancelReleaseAfterPress drops releases of key queued behind its staged press.
func (m *Manager) cancelReleaseAfterPress(key Key) {
	kept := m.justReleased[:0]
	for _, r := range m.justReleased {
		if r.afterPress && r.key == key {
			continue
		}
		kept = append(kept, r)
	}
	m.justReleased = kept
}
