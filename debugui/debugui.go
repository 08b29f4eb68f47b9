// Package debugui provides a Dear ImGui debug overlay for blockfall frontends.
// Panels are registered as items on a System, which queues their render
// functions on every frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Input systems consult it so keys typed into a panel do not reach the game.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System queues every item's render function and refreshes the input state.
// It must run between the backend's BeginFrame and EndFrame.
type System struct {
	Items []*Item
	Input InputState
}

// Add registers a render function and returns its item.
func (s *System) Add(render func()) *Item {
	item := &Item{Render: render}
	s.Items = append(s.Items, item)
	return item
}

// Execute updates input state and queues all render functions for execution.
func (s *System) Execute(frame *loop.UpdateFrame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
