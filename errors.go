package imdraw

import "errors"

var (
	// ErrCapacityExceeded is returned by EndFrame when the batch holds more
	// vertices than the renderer's upload buffer. The frame is dropped.
	ErrCapacityExceeded = errors.New("imdraw: vertex capacity exceeded")

	// ErrFrameNotBegun is returned when a primitive is drawn, or EndFrame is
	// called, outside a BeginFrame/EndFrame bracket.
	ErrFrameNotBegun = errors.New("imdraw: draw outside BeginFrame/EndFrame")

	// ErrFrameInProgress is returned by BeginFrame when the previous frame
	// was never ended.
	ErrFrameInProgress = errors.New("imdraw: BeginFrame called twice without EndFrame")

	// ErrRendererDestroyed is returned by any frame operation after Destroy.
	ErrRendererDestroyed = errors.New("imdraw: renderer destroyed")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("imdraw: invalid color")

	// ErrInvalidDimensions is returned when a renderer is created with a
	// zero surface size or vertex capacity.
	ErrInvalidDimensions = errors.New("imdraw: invalid dimensions")

	// ErrDriverClosed is returned by FrameDriver.Frame after Close.
	ErrDriverClosed = errors.New("imdraw: frame driver closed")

	// ErrGPUTimeout is returned when the GPU does not signal a submitted
	// frame within the driver's wait timeout.
	ErrGPUTimeout = errors.New("imdraw: timed out waiting for GPU")

	// ErrNilDevice is returned when a nil device or queue is supplied.
	ErrNilDevice = errors.New("imdraw: nil device or queue")

	// ErrNilTarget is returned by EndFrame when the command encoder or the
	// target view is nil. The batch is discarded.
	ErrNilTarget = errors.New("imdraw: nil encoder or target view")
)
