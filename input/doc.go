// Package input tracks keyboard button state once per frame.
//
// The windowing layer reports raw edges with [Manager.HandleKey] as they
// arrive. Once per frame the host calls [Manager.Update], after which the
// predicates describe each key with one of four states:
//
//	Up → Pressed → Held → … → Released → Up
//
// Pressed and Released last exactly one frame, so application code can react
// to a key going down or up without tracking the previous frame itself.
//
// Example:
//
//	m := input.NewManager()
//	m.HandleKey(space, input.EdgePress)
//	m.Update()
//	m.IsPressed(space) // true
//	m.Update()
//	m.IsHeld(space)    // true
package input
