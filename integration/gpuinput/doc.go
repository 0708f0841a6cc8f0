// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuinput feeds gogpu window key events into an input.Manager.
//
// The data flow is:
//
//	gogpu EventSource (OnKeyPress/OnKeyRelease) -> input.Manager.HandleKey -> Update per frame
//
// # Usage
//
//	in := input.NewManager()
//	gpuinput.Bind(app.EventSource(), in)
//
//	// In the frame callback:
//	in.Update()
//	if in.IsPressed(gpuinput.KeyFromGPU(gpucontext.KeySpace)) {
//		...
//	}
//
// Key codes are the gpucontext.Key values converted to input.Key, so hosts
// can compare against either form through KeyFromGPU.
//
// # Thread Safety
//
// The manager is not safe for concurrent use. gogpu delivers key events on
// the event loop goroutine that also runs the draw callback, which is the
// only setup Bind supports.
package gpuinput
