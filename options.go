package imdraw

// DefaultMaxVertices is the upload buffer capacity used when WithMaxVertices
// is not given: room for 1666 rectangles per frame.
const DefaultMaxVertices = 10000

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := imdraw.NewRenderer(device, queue, format, 800, 600,
//	    imdraw.WithMaxVertices(64*1024),
//	    imdraw.WithClearColor(imdraw.Black))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	maxVertices  int
	clearColor   Color
	shaderSource string
	spirv        bool
	label        string
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		maxVertices:  DefaultMaxVertices,
		clearColor:   Custom(26, 26, 26, 255), // ~0.1 gray
		shaderSource: shapeShaderSource,
		label:        "imdraw",
	}
}

// WithMaxVertices sets the per-frame vertex capacity. The GPU vertex buffer
// is allocated once with room for exactly n vertices.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		o.maxVertices = n
	}
}

// WithClearColor sets the color the render target is cleared to at the
// start of every frame's render pass.
func WithClearColor(c Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithShaderSource replaces the built-in WGSL program. The program must
// expose vs_main and fs_main entry points and consume the Vertex layout:
// position vec2<f32> at location 0 and color vec4<f32> at location 1.
func WithShaderSource(wgsl string) Option {
	return func(o *options) {
		o.shaderSource = wgsl
	}
}

// WithSPIRV compiles the WGSL program to SPIR-V with naga before handing it
// to the device, for HAL backends that only accept SPIR-V modules.
func WithSPIRV() Option {
	return func(o *options) {
		o.spirv = true
	}
}

// WithLabel sets the prefix of all GPU debug labels.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}
