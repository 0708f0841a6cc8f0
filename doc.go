// Package imdraw provides a minimal immediate-mode 2D renderer on top of the
// gogpu WebGPU HAL.
//
// # Overview
//
// Each frame the application describes the whole scene again: it opens a
// frame, draws rectangles, triangles and circles in pixel coordinates, and
// closes the frame. The renderer tessellates every primitive into a single
// triangle-list vertex batch and submits it with one draw call.
//
// # Quick Start
//
//	r, err := imdraw.NewRenderer(device, queue, gputypes.TextureFormatBGRA8Unorm, 800, 600)
//	if err != nil {
//		return err
//	}
//	defer r.Destroy()
//
//	_ = r.BeginFrame()
//	_ = r.DrawRectangle(imdraw.V2(10, 10), 200, 100, imdraw.Red)
//	_ = r.DrawCircle(imdraw.V2(400, 300), 50, 32, imdraw.Blue)
//	err = r.EndFrame(encoder, surfaceView)
//
// FrameDriver runs the full cycle (input update, drawing, encoding and
// submission) around a SceneFunc, so hosts usually only call Frame.
//
// # Frame Protocol
//
// Drawing outside a BeginFrame/EndFrame bracket returns ErrFrameNotBegun. A
// batch larger than the renderer's vertex capacity is not truncated: EndFrame
// drops the whole frame and returns ErrCapacityExceeded, and the next frame
// starts clean.
//
// # Coordinate System
//
// Primitive positions are in pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward +Y (clockwise on screen)
//
// Vertices are converted to normalized device coordinates with the surface
// size latched at BeginFrame. Resize takes effect on the following frame.
//
// # Input
//
// Keyboard state lives in the input subpackage; integration/gpuinput binds it
// to a gogpu window.
package imdraw

// Version is the current version of the library.
const Version = "0.1.0"
