package window

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"

	"github.com/kreedahq/kreeda/gpu"
	"github.com/kreedahq/kreeda/input"
)

var profileEnabled = os.Getenv("KREEDA_PROFILE") == "1"

// app dispatches OS events to the input latches and the gpu surface and owns
// the redraw policy. The window handle is shared with the surface; the
// surface is released before the window is destroyed.
type app struct {
	win     *glfw.Window
	surface *gpu.Surface

	frames frameStats

	prof interface{ Stop() }
}

func newApp(width, height int, title string) (*app, error) {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	a := &app{win: win}

	if profileEnabled {
		a.prof = profile.Start(profile.CPUProfile)
	}

	fbWidth, fbHeight := win.GetFramebufferSize()

	surface, err := gpu.NewSurface(
		wgpuglfw.GetSurfaceDescriptor(win),
		uint32(fbWidth),
		uint32(fbHeight),
	)

	if err != nil {
		a.terminate()
		return nil, fmt.Errorf("initialize gpu surface: %w", err)
	}

	a.surface = surface
	a.installCallbacks()

	return a, nil
}

func (a *app) installCallbacks() {
	a.win.SetKeyCallback(func(_ *glfw.Window, glfwKey glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			input.Keys().HandleKey(key, input.Pressed)
		case glfw.Release:
			input.Keys().HandleKey(key, input.Released)
		}
	})

	a.win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		button, ok := buttonOf(btn)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			input.Pointer().HandleButton(button, input.Pressed)
		case glfw.Release:
			input.Pointer().HandleButton(button, input.Released)
		}
	})

	a.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		input.Pointer().HandleCursorMoved(x, y)
	})

	a.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		input.Pointer().HandleScroll(dx, dy)
	})

	a.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		slog.Debug("Window resized",
			slog.Int("width", width),
			slog.Int("height", height),
		)

		a.surface.Resize(uint32(width), uint32(height))
	})

	a.win.SetContentScaleCallback(func(_ *glfw.Window, _, _ float32) {
		width, height := a.win.GetFramebufferSize()
		a.surface.Resize(uint32(width), uint32(height))
	})
}

// run drives the frame loop. Every iteration dispatches the pending OS
// events, renders a frame and then ends the frame for the input latches, so
// that edge-triggered state is observable for exactly the frame following
// its triggering event.
func (a *app) run() {
	for !a.win.ShouldClose() {
		glfw.PollEvents()

		if err := a.surface.Render(); err != nil {
			a.handleRenderError(err)
		}

		a.frames.tick()
		input.EndFrame()
	}
}

func (a *app) handleRenderError(err error) {
	switch {
	case errors.Is(err, gpu.ErrTimeout):
		slog.Warn("Surface timeout, skipping this frame")

	case errors.Is(err, gpu.ErrOutOfMemory):
		slog.Error("Surface out of memory, exiting")
		a.win.SetShouldClose(true)

	default:
		// lost or outdated surface, reconfigure against the current size
		slog.Warn("Surface error, reconfiguring", slog.Any("error", err))

		width, height := a.win.GetFramebufferSize()
		if width == 0 || height == 0 {
			// minimized, keep the last known good size
			a.surface.Reconfigure()
		} else {
			a.surface.Resize(uint32(width), uint32(height))
		}
	}
}

func (a *app) terminate() {
	if a.surface != nil {
		a.surface.Release()
		a.surface = nil
	}

	if a.prof != nil {
		a.prof.Stop()
		a.prof = nil
	}

	a.win.Destroy()
}
