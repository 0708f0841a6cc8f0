package imdraw

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imdraw/input"
)

// fenceTimeout bounds how long Frame waits for the previous submission.
const fenceTimeout = 5 * time.Second

// FrameContext is passed to a SceneFunc once per frame.
type FrameContext struct {
	// Renderer is accumulating; draw primitives into it.
	Renderer *Renderer

	// Input has been updated for this frame.
	Input *input.Manager

	// Delta is the time since the previous frame, zero on the first.
	Delta time.Duration

	// Index counts frames from zero.
	Index uint64
}

// SceneFunc draws one frame. Returning an error drops the frame.
type SceneFunc func(fc *FrameContext) error

// FrameDriver runs the per-frame cycle: input update, scene drawing, batch
// upload and command submission. It owns the fence that paces submissions
// and nothing else; the device, queue, renderer and input manager are
// borrowed from the caller.
//
// FrameDriver is not safe for concurrent use.
type FrameDriver struct {
	device   hal.Device
	queue    hal.Queue
	renderer *Renderer
	input    *input.Manager

	fence      hal.Fence
	fenceValue uint64
	pending    hal.CommandBuffer

	frames uint64
	last   time.Time
	now    func() time.Time

	closed bool
}

// NewFrameDriver creates a driver for renderer. If in is nil a new input
// manager is created.
func NewFrameDriver(device hal.Device, queue hal.Queue, renderer *Renderer, in *input.Manager) (*FrameDriver, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if renderer == nil {
		return nil, fmt.Errorf("imdraw: frame driver: nil renderer")
	}
	if in == nil {
		in = input.NewManager()
	}

	fence, err := device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("imdraw: create fence: %w", err)
	}

	Logger().Debug("imdraw: frame driver created", "label", renderer.label)
	return &FrameDriver{
		device:   device,
		queue:    queue,
		renderer: renderer,
		input:    in,
		fence:    fence,
		now:      time.Now,
	}, nil
}

// Input returns the driver's input manager. Hosts feed key edges into it.
func (d *FrameDriver) Input() *input.Manager {
	return d.input
}

// Renderer returns the driver's renderer.
func (d *FrameDriver) Renderer() *Renderer {
	return d.renderer
}

// Frames returns the number of frames submitted so far.
func (d *FrameDriver) Frames() uint64 {
	return d.frames
}

// Frame runs one frame into view:
//
//  1. waits for the previous submission and frees its command buffer,
//  2. advances the input state machine,
//  3. calls scene between BeginFrame and EndFrame,
//  4. submits the recorded commands without waiting.
//
// The host presents view after Frame returns. Errors from scene and from
// EndFrame (including ErrCapacityExceeded) drop the frame: nothing is
// submitted and the next Frame starts cleanly.
func (d *FrameDriver) Frame(view hal.TextureView, scene SceneFunc) error {
	if d.closed {
		return ErrDriverClosed
	}
	if view == nil {
		return ErrNilTarget
	}
	if err := d.reclaim(); err != nil {
		return err
	}

	d.input.Update()

	now := d.now()
	var delta time.Duration
	if !d.last.IsZero() {
		delta = now.Sub(d.last)
	}
	d.last = now

	if err := d.renderer.BeginFrame(); err != nil {
		return err
	}
	fc := FrameContext{
		Renderer: d.renderer,
		Input:    d.input,
		Delta:    delta,
		Index:    d.frames,
	}
	if scene != nil {
		if err := scene(&fc); err != nil {
			d.renderer.AbortFrame()
			return fmt.Errorf("imdraw: scene: %w", err)
		}
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: d.renderer.label + "_encoder",
	})
	if err != nil {
		d.renderer.AbortFrame()
		return fmt.Errorf("imdraw: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(d.renderer.label + "_frame"); err != nil {
		d.renderer.AbortFrame()
		return fmt.Errorf("imdraw: begin encoding: %w", err)
	}

	if err := d.renderer.EndFrame(encoder, view); err != nil {
		encoder.DiscardEncoding()
		return err
	}

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("imdraw: end encoding: %w", err)
	}

	next := d.fenceValue + 1
	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, d.fence, next); err != nil {
		d.device.FreeCommandBuffer(cmdBuf)
		return fmt.Errorf("imdraw: submit: %w", err)
	}
	d.fenceValue = next
	d.pending = cmdBuf
	d.frames++
	Logger().Debug("imdraw: frame submitted", "frame", d.frames, "vertices", d.renderer.last.Vertices)
	return nil
}

// reclaim waits for the last submission and frees its command buffer.
func (d *FrameDriver) reclaim() error {
	if d.pending == nil {
		return nil
	}
	ok, err := d.device.Wait(d.fence, d.fenceValue, fenceTimeout)
	if err != nil {
		return fmt.Errorf("imdraw: wait for GPU: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w after %v", ErrGPUTimeout, fenceTimeout)
	}
	d.device.FreeCommandBuffer(d.pending)
	d.pending = nil
	return nil
}

// Close waits for the last submission and releases the fence. The
// renderer and input manager are left to their owner. Close is idempotent.
func (d *FrameDriver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	err := d.reclaim()
	if d.pending != nil {
		// Wait failed; free anyway so the fence can go.
		d.device.FreeCommandBuffer(d.pending)
		d.pending = nil
	}
	d.device.DestroyFence(d.fence)
	d.fence = nil
	Logger().Debug("imdraw: frame driver closed", "frames", d.frames)
	return err
}

// IsDropped reports whether err means the frame was skipped but the driver
// can keep running.
func IsDropped(err error) bool {
	return errors.Is(err, ErrCapacityExceeded)
}
