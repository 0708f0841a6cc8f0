// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/imdraw/input"
)

// KeyHandler is the callback signature gogpu uses for key events.
type KeyHandler = func(key gpucontext.Key, mods gpucontext.Modifiers)

// KeyPressSource delivers key-down events, including OS key repeat.
// gpucontext.EventSource satisfies it.
type KeyPressSource interface {
	OnKeyPress(fn KeyHandler)
}

// KeyReleaseSource delivers key-up events.
type KeyReleaseSource interface {
	OnKeyRelease(fn KeyHandler)
}

// KeyFromGPU converts a gogpu key to the manager's key code.
func KeyFromGPU(k gpucontext.Key) input.Key {
	return input.Key(k)
}

// Bind registers callbacks on src that forward key edges to m.
//
// Release events are forwarded only if src also implements
// KeyReleaseSource. Bind reports whether it did; without releases, keys
// reach Held and stay there until the manager is Reset.
func Bind(src KeyPressSource, m *input.Manager) (releases bool) {
	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		m.HandleKey(KeyFromGPU(key), input.EdgePress)
	})

	rs, ok := src.(KeyReleaseSource)
	if !ok {
		return false
	}
	rs.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		m.HandleKey(KeyFromGPU(key), input.EdgeRelease)
	})
	return true
}
