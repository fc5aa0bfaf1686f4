package gpu

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Surface bundles the webgpu objects behind the window: instance-derived
// adapter, device and queue, plus the presentation surface and its current
// swapchain configuration. It is owned by the event loop and must only be
// used from the loop thread.
type Surface struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue

	config *wgpu.SurfaceConfiguration

	clearColor wgpu.Color

	passes    []ScenePass
	pipelines *PipelineCache
}

// NewSurface creates the full gpu stack for the window described by sd. The
// initial swapchain size is taken from width and height, clamped to at least
// one pixel per axis.
//
// Construction blocks on adapter and device acquisition. On failure,
// everything acquired so far is released again.
func NewSurface(sd *wgpu.SurfaceDescriptor, width, height uint32) (s *Surface, err error) {
	defer func() {
		if err != nil && s != nil {
			s.Release()
			s = nil
		}
	}()

	s = &Surface{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	s.surface = instance.CreateSurface(sd)

	s.adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      wgpu.PowerPreferenceHighPerformance,
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    s.surface,
	})

	if err != nil {
		return nil, fmt.Errorf("request adapter: %w", err)
	}

	s.device, err = s.adapter.RequestDevice(nil)
	if err != nil {
		return nil, fmt.Errorf("request device: %w", err)
	}

	s.queue = s.device.GetQueue()
	s.pipelines = newPipelineCache(s.device)

	caps := s.surface.GetCapabilities(s.adapter)
	slog.Debug("Available surface formats", slog.Any("formats", caps.Formats))

	s.config = surfaceConfigFor(caps, width, height)
	s.surface.Configure(s.device, s.config)

	s.clearColor = wgpu.Color{R: 1, G: 1, B: 1, A: 1}

	return s, nil
}

// surfaceConfigFor builds the swapchain configuration for the given surface
// capabilities: first sRGB capable format offered (else the first one), vsync
// presentation and a size of at least one pixel per axis.
func surfaceConfigFor(caps wgpu.SurfaceCapabilities, width, height uint32) *wgpu.SurfaceConfiguration {
	return &wgpu.SurfaceConfiguration{
		Usage:     wgpu.TextureUsageRenderAttachment,
		Format:    chooseSurfaceFormat(caps.Formats),
		Width:     max(1, width),
		Height:    max(1, height),
		AlphaMode: caps.AlphaModes[0],

		// vsync
		PresentMode: wgpu.PresentModeFifo,

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}
}

// chooseSurfaceFormat picks the first sRGB capable format the surface offers,
// falling back to the first offered format.
func chooseSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		switch format {
		case wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb:
			return format
		}
	}

	return formats[0]
}

// applyResize updates the configured size, unless the new size is degenerate,
// as delivered while the window is minimized. Reports whether the surface
// needs to be reconfigured.
func applyResize(config *wgpu.SurfaceConfiguration, width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}

	config.Width = width
	config.Height = height

	return true
}

// Resize reconfigures the swapchain to the new pixel size. Degenerate sizes
// are ignored; the previous configuration stays active.
func (s *Surface) Resize(width, height uint32) {
	if applyResize(s.config, width, height) {
		s.surface.Configure(s.device, s.config)
	}
}

// Reconfigure re-applies the current configuration, recovering a lost or
// outdated surface.
func (s *Surface) Reconfigure() {
	s.surface.Configure(s.device, s.config)
}

// Size returns the configured swapchain size in pixels.
func (s *Surface) Size() (width, height uint32) {
	return s.config.Width, s.config.Height
}

// SetClearColor sets the color the surface is cleared to at the start of
// every frame.
func (s *Surface) SetClearColor(color wgpu.Color) {
	s.clearColor = color
}

// ClearColor returns the current clear color.
func (s *Surface) ClearColor() wgpu.Color {
	return s.clearColor
}

// AddPass appends a scene pass. Passes are encoded every frame after the
// clear, in registration order.
func (s *Surface) AddPass(pass ScenePass) {
	s.passes = append(s.passes, pass)
}

// Device returns the device, e.g. for scene passes creating buffers and
// textures.
func (s *Surface) Device() *wgpu.Device {
	return s.device
}

// PipelineCache returns the cache scene passes build their pipelines
// through.
func (s *Surface) PipelineCache() *PipelineCache {
	return s.pipelines
}

// Render draws one frame: acquire the next swapchain texture, clear it to the
// clear color, encode the registered scene passes, submit and present.
//
// Acquire failures are returned classified (ErrSurfaceLost, ErrTimeout, ...)
// so the event loop can decide between reconfiguring, dropping the frame and
// shutting down.
func (s *Surface) Render() error {
	frame, err := s.surface.GetCurrentTexture()
	if err != nil {
		return classifySurfaceError(err)
	}

	frameGuard := NewReleaseGuard(frame)
	defer frameGuard.Release()

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create surface view: %w", err)
	}

	defer view.Release()

	enc, err := s.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Frame",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	if err := s.encodeClearPass(enc, view); err != nil {
		return err
	}

	target := &RenderTarget{
		View:      view,
		Format:    s.config.Format,
		Width:     s.config.Width,
		Height:    s.config.Height,
		Pipelines: s.pipelines,
	}

	for _, pass := range s.passes {
		if err := pass.Encode(target, enc); err != nil {
			return fmt.Errorf("encode scene pass: %w", err)
		}
	}

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "Frame"})
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}

	defer buf.Release()

	s.queue.Submit(buf)
	s.surface.Present()

	// presenting consumed the texture, no release needed
	frameGuard.Keep()

	return nil
}

func (s *Surface) encodeClearPass(enc *wgpu.CommandEncoder, view *wgpu.TextureView) error {
	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Clear",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: s.clearColor,
			},
		},
	})

	defer pass.Release()

	if err := pass.End(); err != nil {
		return fmt.Errorf("end clear pass: %w", err)
	}

	return nil
}

// Release drains the queue and tears the gpu stack down again. Safe to call
// on a partially constructed Surface.
func (s *Surface) Release() {
	if s.device != nil {
		// wait for in-flight work; helps clean shutdown on some drivers
		s.device.Poll(true, nil)
	}

	if s.pipelines != nil {
		s.pipelines.Release()
		s.pipelines = nil
	}

	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}

	if s.device != nil {
		s.device.Release()
		s.device = nil
	}

	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}

	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}
