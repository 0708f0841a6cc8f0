package input

// ButtonState is the per-frame state of a key.
//
// Pressed and Released are edge states: each is visible for exactly one
// Update and then decays to Held or Up.
type ButtonState uint8

const (
	// Up means the key is not pressed. Unseen keys are Up.
	Up ButtonState = iota
	// Pressed means the key went down since the previous Update.
	Pressed
	// Held means the key has stayed down for at least one full frame.
	Held
	// Released means the key went up since the previous Update.
	Released
)

// String returns the state name.
func (s ButtonState) String() string {
	switch s {
	case Up:
		return "Up"
	case Pressed:
		return "Pressed"
	case Held:
		return "Held"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// IsDown reports whether the key is physically down in this state.
func (s ButtonState) IsDown() bool {
	return s == Pressed || s == Held
}

// decay advances an edge state to its steady state.
func (s ButtonState) decay() ButtonState {
	switch s {
	case Pressed:
		return Held
	case Released:
		return Up
	default:
		return s
	}
}

// Key is an opaque key identifier. Hosts map their own key enumeration onto
// it; the manager only compares and hashes it.
type Key uint32

// Edge is a raw key transition reported by the windowing layer.
type Edge uint8

const (
	// EdgePress is a key-down event, including OS key repeat.
	EdgePress Edge = iota
	// EdgeRelease is a key-up event.
	EdgeRelease
)

// String returns the edge name.
func (e Edge) String() string {
	if e == EdgePress {
		return "press"
	}
	return "release"
}
