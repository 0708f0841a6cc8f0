package imdraw

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/shape.wgsl
var shapeShaderSource string

// Entry points the shape program must export.
const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

// ShapeShaderSource returns the built-in WGSL program.
func ShapeShaderSource() string {
	return shapeShaderSource
}

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile shader: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// shaderModuleSource builds the module source for the configured program.
func (o *options) shaderModuleSource() (hal.ShaderSource, error) {
	if o.shaderSource == "" {
		return hal.ShaderSource{}, fmt.Errorf("shape shader source is empty")
	}
	if !o.spirv {
		return hal.ShaderSource{WGSL: o.shaderSource}, nil
	}
	words, err := compileSPIRV(o.shaderSource)
	if err != nil {
		return hal.ShaderSource{}, err
	}
	return hal.ShaderSource{SPIRV: words}, nil
}
