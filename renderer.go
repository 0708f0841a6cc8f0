package imdraw

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/imdraw/internal/unitcircle"
)

// frameState tracks the BeginFrame/EndFrame bracket.
type frameState uint8

const (
	frameIdle frameState = iota
	frameAccumulating
)

// FrameStats describes what the last EndFrame submitted.
type FrameStats struct {
	// Vertices is the number of vertices drawn.
	Vertices int

	// BytesUploaded is the size of the vertex upload.
	BytesUploaded int

	// DrawCalls is 1 when geometry was drawn and 0 for an empty or
	// dropped frame.
	DrawCalls int

	// Dropped is true when the frame exceeded the vertex capacity and
	// nothing was uploaded or drawn.
	Dropped bool
}

// Renderer batches flat-colored 2D primitives into a single triangle list
// per frame and draws it with one draw call.
//
// Usage per frame:
//
//	r.BeginFrame()
//	r.DrawRectangle(imdraw.V2(10, 10), 100, 50, imdraw.Red)
//	r.DrawCircle(imdraw.V2(300, 200), 40, 32, imdraw.Blue)
//	err := r.EndFrame(encoder, view)
//
// Primitive coordinates are in pixels with the origin at the top-left of the
// surface. The device, queue, pipeline and vertex buffer are owned by the
// Renderer for its lifetime; the encoder and view passed to EndFrame belong
// to the caller and are never retained.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	// GPU objects, created once in NewRenderer.
	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	vertexBuf  hal.Buffer

	maxVertices int
	clearColor  gputypes.Color
	label       string

	// surface is the latest size reported through Resize; frameSize is the
	// size latched by BeginFrame and used for NDC projection.
	surface   Vector2
	frameSize Vector2

	// rims caches circle direction tables by segment count.
	rims *unitcircle.Cache

	state     frameState
	vertices  []Vertex
	requested int
	staging   []byte
	last      FrameStats
	destroyed bool
}

// NewRenderer creates the shape pipeline and a vertex buffer with room for
// the configured number of vertices. format must match the texture views
// later passed to EndFrame; width and height are the surface size in pixels.
func NewRenderer(device hal.Device, queue hal.Queue, format gputypes.TextureFormat, width, height uint32, opts ...Option) (*Renderer, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", ErrInvalidDimensions, width, height)
	}
	if o.maxVertices <= 0 {
		return nil, fmt.Errorf("%w: max vertices %d", ErrInvalidDimensions, o.maxVertices)
	}

	clear := o.clearColor.AsRGBA()
	r := &Renderer{
		device:      device,
		queue:       queue,
		format:      format,
		maxVertices: o.maxVertices,
		clearColor: gputypes.Color{
			R: float64(clear[0]),
			G: float64(clear[1]),
			B: float64(clear[2]),
			A: float64(clear[3]),
		},
		label:    o.label,
		surface:  V2(float32(width), float32(height)),
		rims:     unitcircle.NewCache(unitcircle.DefaultCapacity),
		vertices: make([]Vertex, 0, o.maxVertices),
		staging:  make([]byte, 0, o.maxVertices*VertexStride),
	}
	r.frameSize = r.surface

	if err := r.createPipeline(&o); err != nil {
		r.destroyGPU()
		return nil, err
	}
	if err := r.createVertexBuffer(); err != nil {
		r.destroyGPU()
		return nil, err
	}
	return r, nil
}

// createPipeline compiles the shape program and creates the triangle-list
// render pipeline. Fragments replace the target color; there is no blending,
// culling, depth or multisampling.
func (r *Renderer) createPipeline(o *options) error {
	source, err := o.shaderModuleSource()
	if err != nil {
		return fmt.Errorf("imdraw: %w", err)
	}

	shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  r.label + "_shader",
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("imdraw: create shader module: %w", err)
	}
	r.shader = shader

	pipeLayout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: r.label + "_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("imdraw: create pipeline layout: %w", err)
	}
	r.pipeLayout = pipeLayout

	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  r.label + "_pipeline",
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("imdraw: create render pipeline: %w", err)
	}
	r.pipeline = pipeline

	Logger().Debug("imdraw: pipeline created", "label", r.label, "format", r.format, "spirv", o.spirv)
	return nil
}

// createVertexBuffer allocates the fixed-capacity upload buffer.
func (r *Renderer) createVertexBuffer() error {
	size := uint64(r.maxVertices) * VertexStride //nolint:gosec // maxVertices validated positive
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: r.label + "_vertices",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("imdraw: create vertex buffer (%d bytes): %w", size, err)
	}
	r.vertexBuf = buf

	Logger().Debug("imdraw: vertex buffer created", "label", r.label, "vertices", r.maxVertices, "bytes", size)
	return nil
}

// BeginFrame starts accumulating a new batch. It clears the previous batch
// and latches the surface size used for this frame's NDC projection.
func (r *Renderer) BeginFrame() error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	if r.state == frameAccumulating {
		return ErrFrameInProgress
	}
	r.vertices = r.vertices[:0]
	r.requested = 0
	r.frameSize = r.surface
	r.state = frameAccumulating
	return nil
}

// DrawRectangle adds an axis-aligned rectangle with its top-left corner at
// pos. It emits 6 vertices.
func (r *Renderer) DrawRectangle(pos Vector2, width, height float32, color Color) error {
	if ok, err := r.reserve(rectangleVertexCount); !ok {
		return err
	}
	r.vertices = appendRectangle(r.vertices, r.frameSize, pos, width, height, color.AsRGBA())
	return nil
}

// DrawTriangle adds a triangle with vertices in the given order. It emits
// 3 vertices.
func (r *Renderer) DrawTriangle(a, b, c Vector2, color Color) error {
	if ok, err := r.reserve(triangleVertexCount); !ok {
		return err
	}
	r.vertices = appendTriangle(r.vertices, r.frameSize, a, b, c, color.AsRGBA())
	return nil
}

// DrawCircle adds a filled circle as a fan of segments triangles. It emits
// 3*segments vertices; zero segments draws nothing.
func (r *Renderer) DrawCircle(center Vector2, radius float32, segments int, color Color) error {
	if ok, err := r.reserve(circleVertexCount(segments)); !ok {
		return err
	}
	r.vertices = appendCircle(r.vertices, r.frameSize, center, radius, r.rims.Get(segments), color.AsRGBA())
	return nil
}

// reserve checks the frame bracket and accounts for n more vertices.
// It returns false with a nil error once the batch is over capacity: the
// caller must not append, and EndFrame reports the overflow.
func (r *Renderer) reserve(n int) (bool, error) {
	if r.destroyed {
		return false, ErrRendererDestroyed
	}
	if r.state != frameAccumulating {
		return false, ErrFrameNotBegun
	}
	if n > r.maxVertices-r.requested {
		// The frame will be dropped; stop growing the batch.
		r.requested = satAdd(r.requested, n)
		return false, nil
	}
	r.requested += n
	return true, nil
}

// EndFrame uploads the batch and records one render pass into encoder that
// clears view and draws every accumulated vertex with a single draw call.
//
// If the batch exceeds the vertex capacity, nothing is uploaded or recorded
// and the returned error wraps ErrCapacityExceeded. The renderer returns to
// the idle state in either case, ready for the next BeginFrame.
func (r *Renderer) EndFrame(encoder hal.CommandEncoder, view hal.TextureView) error {
	if r.destroyed {
		return ErrRendererDestroyed
	}
	if r.state != frameAccumulating {
		return ErrFrameNotBegun
	}
	r.state = frameIdle

	if r.requested > r.maxVertices {
		r.last = FrameStats{Dropped: true}
		Logger().Warn("imdraw: frame dropped", "vertices", r.requested, "max", r.maxVertices)
		return fmt.Errorf("%w: %d vertices, capacity %d", ErrCapacityExceeded, r.requested, r.maxVertices)
	}
	if encoder == nil || view == nil {
		r.last = FrameStats{}
		return fmt.Errorf("%w: encoder %v, view %v", ErrNilTarget, encoder != nil, view != nil)
	}

	n := len(r.vertices)
	if n > 0 {
		// Partial write from offset 0; the draw range below never reads
		// past the live count.
		r.staging = AppendVertexBytes(r.staging[:0], r.vertices)
		if err := r.queue.WriteBuffer(r.vertexBuf, 0, r.staging); err != nil {
			r.last = FrameStats{}
			return fmt.Errorf("imdraw: upload vertices: %w", err)
		}
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: r.label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: r.clearColor,
		}},
	})
	drawCalls := 0
	if n > 0 {
		rp.SetPipeline(r.pipeline)
		rp.SetVertexBuffer(0, r.vertexBuf, 0)
		rp.Draw(uint32(n), 1, 0, 0) //nolint:gosec // n <= maxVertices
		drawCalls = 1
	}
	rp.End()

	r.last = FrameStats{
		Vertices:      n,
		BytesUploaded: n * VertexStride,
		DrawCalls:     drawCalls,
	}
	return nil
}

// AbortFrame discards the batch being accumulated and returns the renderer
// to the idle state without recording anything. It is a no-op when no frame
// is in progress.
func (r *Renderer) AbortFrame() {
	if r.state != frameAccumulating {
		return
	}
	r.state = frameIdle
	r.vertices = r.vertices[:0]
	r.requested = 0
	r.last = FrameStats{Dropped: true}
}

// Resize records a new surface size in pixels. It takes effect at the next
// BeginFrame, so a frame already accumulating keeps a consistent projection.
// A zero width or height (minimized window) is ignored.
func (r *Renderer) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		Logger().Debug("imdraw: ignoring zero-size resize", "width", width, "height", height)
		return
	}
	r.surface = V2(float32(width), float32(height))
	Logger().Debug("imdraw: resize", "width", width, "height", height)
}

// Size returns the latest surface size in pixels.
func (r *Renderer) Size() (width, height uint32) {
	return uint32(r.surface.X), uint32(r.surface.Y)
}

// VertexCount returns the number of vertices requested since BeginFrame,
// including any beyond capacity.
func (r *Renderer) VertexCount() int {
	return r.requested
}

// MaxVertices returns the per-frame vertex capacity.
func (r *Renderer) MaxVertices() int {
	return r.maxVertices
}

// Vertices returns the current batch. The slice is only valid until the
// next BeginFrame and must not be modified.
func (r *Renderer) Vertices() []Vertex {
	return r.vertices
}

// Accumulating reports whether a frame is open.
func (r *Renderer) Accumulating() bool {
	return r.state == frameAccumulating
}

// LastFrame returns statistics for the most recent EndFrame.
func (r *Renderer) LastFrame() FrameStats {
	return r.last
}

// Format returns the color format the pipeline renders to.
func (r *Renderer) Format() gputypes.TextureFormat {
	return r.format
}

// Destroy releases all GPU resources held by the renderer. Safe to call
// multiple times.
func (r *Renderer) Destroy() {
	if r.destroyed {
		return
	}
	r.destroyGPU()
	r.destroyed = true
	r.state = frameIdle
	r.vertices = nil
	r.staging = nil
}

// destroyGPU releases GPU objects in reverse creation order.
func (r *Renderer) destroyGPU() {
	if r.device == nil {
		return
	}
	if r.vertexBuf != nil {
		r.device.DestroyBuffer(r.vertexBuf)
		r.vertexBuf = nil
	}
	if r.pipeline != nil {
		r.device.DestroyRenderPipeline(r.pipeline)
		r.pipeline = nil
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

// satAdd adds non-negative a and b, saturating at math.MaxInt.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
