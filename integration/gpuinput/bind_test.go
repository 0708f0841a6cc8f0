// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/imdraw/input"
)

// pressOnly mimics an event source without release delivery.
type pressOnly struct {
	press []KeyHandler
}

func (s *pressOnly) OnKeyPress(fn KeyHandler) { s.press = append(s.press, fn) }

func (s *pressOnly) emitPress(k gpucontext.Key) {
	for _, fn := range s.press {
		var mods gpucontext.Modifiers
		fn(k, mods)
	}
}

// fullSource delivers both edges.
type fullSource struct {
	pressOnly
	release []KeyHandler
}

func (s *fullSource) OnKeyRelease(fn KeyHandler) { s.release = append(s.release, fn) }

func (s *fullSource) emitRelease(k gpucontext.Key) {
	for _, fn := range s.release {
		var mods gpucontext.Modifiers
		fn(k, mods)
	}
}

func TestKeyFromGPU(t *testing.T) {
	if got := KeyFromGPU(gpucontext.KeySpace); got != input.Key(gpucontext.KeySpace) {
		t.Errorf("KeyFromGPU(KeySpace) = %d", got)
	}
}

func TestBind_PressAndRelease(t *testing.T) {
	src := &fullSource{}
	m := input.NewManager()
	if !Bind(src, m) {
		t.Fatal("Bind() = false for a source with releases")
	}
	space := KeyFromGPU(gpucontext.KeySpace)

	src.emitPress(gpucontext.KeySpace)
	m.Update()
	if !m.IsPressed(space) {
		t.Fatalf("after press: %v, want Pressed", m.State(space))
	}

	// Key repeat while held.
	src.emitPress(gpucontext.KeySpace)
	src.emitPress(gpucontext.KeySpace)
	m.Update()
	if !m.IsHeld(space) {
		t.Fatalf("after repeat: %v, want Held", m.State(space))
	}

	src.emitRelease(gpucontext.KeySpace)
	m.Update()
	if !m.IsReleased(space) {
		t.Fatalf("after release: %v, want Released", m.State(space))
	}
	m.Update()
	if !m.IsUp(space) {
		t.Fatalf("final: %v, want Up", m.State(space))
	}
}

func TestBind_PressOnly(t *testing.T) {
	src := &pressOnly{}
	m := input.NewManager()
	if Bind(src, m) {
		t.Error("Bind() = true for a press-only source")
	}
	if len(src.press) != 1 {
		t.Fatalf("registered %d press handlers, want 1", len(src.press))
	}

	src.emitPress(gpucontext.KeySpace)
	m.Update()
	if !m.IsPressed(KeyFromGPU(gpucontext.KeySpace)) {
		t.Error("press not forwarded")
	}
}
