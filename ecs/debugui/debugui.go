// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS components, resources and systems.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sparsecs/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CurrentInputState reads the capture flags from the current ImGui context.
func CurrentInputState() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

type imguiFrame struct {
	Items ecs.Each[struct{ *ImguiItem }]
	Input ecs.ResMut[ImguiInputState]
	Cmd   *ecs.Commands
}

// ImguiSystem updates the ImguiInputState resource from the current ImGui
// context and defers every ImguiItem render function to the command flush
// that follows the system. It is skipped while ImguiInputState is absent.
func ImguiSystem() ecs.SystemSpec {
	return NewImguiSystem(CurrentInputState)
}

// NewImguiSystem is ImguiSystem with a custom source for the input state.
func NewImguiSystem(capture func() ImguiInputState) ecs.SystemSpec {
	return ecs.System(func(f imguiFrame) {
		*f.Input.Get() = capture()
		for item := range f.Items.Values() {
			render := item.Render
			if render == nil {
				continue
			}
			f.Cmd.Defer(func(*ecs.World) { render() })
		}
	}).Named("debugui.ImguiSystem")
}
