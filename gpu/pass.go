package gpu

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget describes the texture a scene pass renders into, which for the
// bootstrap core is always the current swapchain texture.
type RenderTarget struct {
	View *wgpu.TextureView

	// texture format of View
	Format wgpu.TextureFormat

	// size of the target in pixels
	Width  uint32
	Height uint32

	// the surface's pipeline cache, for passes specializing their
	// pipelines against Format
	Pipelines *PipelineCache
}

// ScenePass is the hook where scene rendering plugs into the frame. Passes
// registered on the Surface are encoded every frame after the clear pass,
// into the same command buffer.
//
// A pass runs on the loop thread, between event dispatch and the end of the
// frame, which makes it the place to sample edge-triggered input state.
type ScenePass interface {
	Encode(target *RenderTarget, enc *wgpu.CommandEncoder) error
}
