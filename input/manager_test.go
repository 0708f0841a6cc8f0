package input

import "testing"

const (
	keyA Key = 65
	keyB Key = 66
)

func TestButtonState_String(t *testing.T) {
	tests := []struct {
		s    ButtonState
		want string
	}{
		{Up, "Up"},
		{Pressed, "Pressed"},
		{Held, "Held"},
		{Released, "Released"},
		{ButtonState(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("ButtonState(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestManager_UnseenKeyIsUp(t *testing.T) {
	m := NewManager()
	if !m.IsUp(keyA) || m.IsPressed(keyA) || m.IsHeld(keyA) || m.IsReleased(keyA) {
		t.Errorf("unseen key state = %v, want Up", m.State(keyA))
	}
	m.Update()
	if got := m.State(keyA); got != Up {
		t.Errorf("unseen key after Update = %v, want Up", got)
	}
}

// step is one action in a scripted input sequence.
type step struct {
	edge   *Edge // nil means Update
	expect ButtonState
}

func pressEdge() *Edge   { e := EdgePress; return &e }
func releaseEdge() *Edge { e := EdgeRelease; return &e }

func TestManager_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "press then hold",
			steps: []step{
				{pressEdge(), Up},
				{nil, Pressed},
				{nil, Held},
				{nil, Held},
			},
		},
		{
			name: "full cycle",
			steps: []step{
				{pressEdge(), Up},
				{nil, Pressed},
				{nil, Held},
				{releaseEdge(), Held},
				{nil, Released},
				{nil, Up},
				{nil, Up},
			},
		},
		{
			name: "press and release in one frame",
			steps: []step{
				{pressEdge(), Up},
				{releaseEdge(), Up},
				{nil, Pressed},
				{nil, Released},
				{nil, Up},
			},
		},
		{
			name: "release then press while held",
			steps: []step{
				{pressEdge(), Up},
				{nil, Pressed},
				{nil, Held},
				{releaseEdge(), Held},
				{pressEdge(), Held},
				{nil, Pressed},
				{nil, Held},
			},
		},
		{
			name: "release without press",
			steps: []step{
				{releaseEdge(), Up},
				{nil, Released},
				{nil, Up},
			},
		},
		{
			name: "press release press in one frame",
			steps: []step{
				{pressEdge(), Up},
				{releaseEdge(), Up},
				{pressEdge(), Up},
				{nil, Pressed},
				{nil, Held},
				{nil, Held},
				{nil, Held},
			},
		},
		{
			name: "press release press release in one frame",
			steps: []step{
				{pressEdge(), Up},
				{releaseEdge(), Up},
				{pressEdge(), Up},
				{releaseEdge(), Up},
				{nil, Pressed},
				{nil, Released},
				{nil, Up},
			},
		},
		{
			name: "repeat presses while held",
			steps: []step{
				{pressEdge(), Up},
				{nil, Pressed},
				{pressEdge(), Pressed},
				{nil, Held},
				{pressEdge(), Held},
				{pressEdge(), Held},
				{nil, Held},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			for i, s := range tt.steps {
				if s.edge == nil {
					m.Update()
				} else {
					m.HandleKey(keyA, *s.edge)
				}
				if got := m.State(keyA); got != s.expect {
					t.Fatalf("step %d: state = %v, want %v", i, got, s.expect)
				}
			}
		})
	}
}

func TestManager_PressedVisibleForOneFrame(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgePress)
	m.Update()
	if !m.IsPressed(keyA) {
		t.Fatal("expected IsPressed after first Update")
	}
	m.Update()
	if m.IsPressed(keyA) {
		t.Error("Pressed should decay to Held after one frame")
	}
	if !m.IsHeld(keyA) {
		t.Error("expected IsHeld on second frame")
	}
}

func TestManager_RepeatSuppression(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgePress)
	m.HandleKey(keyA, EdgePress)
	m.HandleKey(keyA, EdgePress)
	if got := m.Pending(); got != 1 {
		t.Errorf("Pending() after repeated presses = %d, want 1", got)
	}
	m.Update()
	m.Update()

	for range 10 {
		m.HandleKey(keyA, EdgePress)
	}
	if got := m.Pending(); got != 0 {
		t.Errorf("Pending() for repeats while held = %d, want 0", got)
	}
}

func TestManager_RepressCancelsQueuedRelease(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgePress)
	m.HandleKey(keyB, EdgeRelease)
	m.HandleKey(keyA, EdgeRelease)
	m.HandleKey(keyA, EdgePress)
	if got := m.Pending(); got != 2 {
		t.Errorf("Pending() = %d, want 2 (keyA press, keyB release)", got)
	}
	m.Update()
	if !m.IsPressed(keyA) || !m.IsReleased(keyB) {
		t.Errorf("keyA = %v, keyB = %v, want Pressed, Released", m.State(keyA), m.State(keyB))
	}
	m.Update()
	if !m.IsHeld(keyA) {
		t.Errorf("keyA = %v, want Held", m.State(keyA))
	}
}

func TestManager_ReleaseAlwaysQueued(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgeRelease)
	m.HandleKey(keyA, EdgeRelease)
	if got := m.Pending(); got != 2 {
		t.Errorf("Pending() = %d, want 2", got)
	}
	m.Update()
	if !m.IsReleased(keyA) {
		t.Errorf("state = %v, want Released", m.State(keyA))
	}
}

func TestManager_QueuesEmptyAfterUpdate(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgePress)
	m.HandleKey(keyB, EdgeRelease)
	m.Update()
	if got := m.Pending(); got != 0 {
		t.Errorf("Pending() after Update = %d, want 0", got)
	}
	if len(m.justPressed) != 0 || len(m.justReleased) != 0 || len(m.staged) != 0 {
		t.Error("edge queues not drained by Update")
	}
}

func TestManager_KeysIndependent(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgePress)
	m.Update()
	m.HandleKey(keyB, EdgePress)
	m.Update()

	if !m.IsHeld(keyA) {
		t.Errorf("keyA = %v, want Held", m.State(keyA))
	}
	if !m.IsPressed(keyB) {
		t.Errorf("keyB = %v, want Pressed", m.State(keyB))
	}
	if !m.IsDown(keyA) || !m.IsDown(keyB) {
		t.Error("both keys should be down")
	}
}

func TestManager_Reset(t *testing.T) {
	m := NewManager()
	m.HandleKey(keyA, EdgePress)
	m.Update()
	m.HandleKey(keyB, EdgePress)
	m.HandleKey(keyB, EdgeRelease)

	m.Reset()
	if got := m.Pending(); got != 0 {
		t.Errorf("Pending() after Reset = %d", got)
	}
	if !m.IsUp(keyA) || !m.IsUp(keyB) {
		t.Error("keys should be Up after Reset")
	}
	m.Update()
	if !m.IsUp(keyB) {
		t.Errorf("staged edges survived Reset: keyB = %v", m.State(keyB))
	}
}

func TestEdge_String(t *testing.T) {
	if EdgePress.String() != "press" || EdgeRelease.String() != "release" {
		t.Errorf("Edge strings = %q, %q", EdgePress, EdgeRelease)
	}
}
