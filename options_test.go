package imdraw

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.maxVertices != DefaultMaxVertices {
		t.Errorf("maxVertices = %d, want %d", o.maxVertices, DefaultMaxVertices)
	}
	if o.clearColor != Custom(26, 26, 26, 255) {
		t.Errorf("clearColor = %v", o.clearColor)
	}
	if o.shaderSource != ShapeShaderSource() {
		t.Error("default shader is not the embedded shape shader")
	}
	if o.spirv {
		t.Error("SPIR-V should be off by default")
	}
	if o.label != "imdraw" {
		t.Errorf("label = %q", o.label)
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(t *testing.T, o options)
	}{
		{
			name: "WithMaxVertices",
			opt:  WithMaxVertices(300),
			check: func(t *testing.T, o options) {
				if o.maxVertices != 300 {
					t.Errorf("maxVertices = %d", o.maxVertices)
				}
			},
		},
		{
			name: "WithClearColor",
			opt:  WithClearColor(Cyan),
			check: func(t *testing.T, o options) {
				if o.clearColor != Cyan {
					t.Errorf("clearColor = %v", o.clearColor)
				}
			},
		},
		{
			name: "WithShaderSource",
			opt:  WithShaderSource("// custom"),
			check: func(t *testing.T, o options) {
				if o.shaderSource != "// custom" {
					t.Errorf("shaderSource = %q", o.shaderSource)
				}
			},
		},
		{
			name: "WithSPIRV",
			opt:  WithSPIRV(),
			check: func(t *testing.T, o options) {
				if !o.spirv {
					t.Error("spirv = false")
				}
			},
		},
		{
			name: "WithLabel",
			opt:  WithLabel("hud"),
			check: func(t *testing.T, o options) {
				if o.label != "hud" {
					t.Errorf("label = %q", o.label)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}
