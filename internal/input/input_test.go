package input

import (
	"strings"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	type step struct {
		key         glfw.Key
		event       glfw.Action
		endFrame    bool
		held, edged bool
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"press", []step{
			{glfw.KeyW, glfw.Press, false, true, true},
		}},
		{"press then frame ends", []step{
			{glfw.KeyW, glfw.Press, true, true, false},
		}},
		{"repeat does not re-trigger", []step{
			{glfw.KeyW, glfw.Press, true, true, false},
			{glfw.KeyW, glfw.Repeat, false, true, false},
		}},
		{"release", []step{
			{glfw.KeyW, glfw.Press, true, true, false},
			{glfw.KeyW, glfw.Release, false, false, false},
		}},
		{"press and release in one frame", []step{
			{glfw.KeyW, glfw.Press, false, true, true},
			{glfw.KeyW, glfw.Release, false, false, false},
		}},
		{"second key for same action", []step{
			{glfw.KeyUp, glfw.Press, false, true, true},
		}},
		{"unbound key", []step{
			{glfw.KeyZ, glfw.Press, false, false, false},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im := NewInputManager()
			for i, s := range tt.steps {
				im.HandleKeyEvent(s.key, s.event)
				if s.endFrame {
					im.PostUpdate()
				}
				if got := im.IsActive(ActionMoveForward); got != s.held {
					t.Errorf("step %d: IsActive = %v, want %v", i, got, s.held)
				}
				if got := im.JustPressed(ActionMoveForward); got != s.edged {
					t.Errorf("step %d: JustPressed = %v, want %v", i, got, s.edged)
				}
			}
		})
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	if im.IsActive(ActionCount) || im.JustPressed(-1) {
		t.Error("out-of-range action reported active")
	}
	im.BindKey(glfw.KeyZ, ActionCount)
	if _, ok := im.bindings[glfw.KeyZ]; ok {
		t.Error("BindKey accepted an out-of-range action")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want glfw.Key
	}{
		{"w", glfw.KeyW},
		{"W", glfw.KeyW},
		{"z", glfw.KeyZ},
		{"7", glfw.Key7},
		{"Esc", glfw.KeyEscape},
		{"up", glfw.KeyUp},
		{"lshift", glfw.KeyLeftShift},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
		if name := KeyName(got); !strings.EqualFold(name, tt.name) {
			t.Errorf("KeyName(%v) = %q, want %q", got, name, tt.name)
		}
	}
	for _, bad := range []string{"", "ww", "f13", "?"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) succeeded", bad)
		}
	}
}

func TestApplyBindings(t *testing.T) {
	im := NewInputManager()
	err := im.ApplyBindings(map[string][]string{
		"forward":  {"i"},
		"backward": {"k", "nope"},
		"fly":      {"x"},
	})
	if err == nil || !strings.Contains(err.Error(), "nope") || !strings.Contains(err.Error(), "fly") {
		t.Fatalf("err = %v, want both bad names reported", err)
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionMoveForward) {
		t.Error("W still moves forward after rebinding")
	}
	im.HandleKeyEvent(glfw.KeyI, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Error("I does not move forward")
	}
	im.HandleKeyEvent(glfw.KeyK, glfw.Press)
	if !im.IsActive(ActionMoveBackward) {
		t.Error("K does not move backward")
	}
	if _, ok := im.bindings[glfw.KeyUp]; ok {
		t.Error("arrow key kept its old forward binding")
	}
}

func TestRebindStealsKey(t *testing.T) {
	im := NewInputManager()
	im.Rebind(ActionQuit, []glfw.Key{glfw.KeyQ})

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	if !im.JustPressed(ActionQuit) {
		t.Error("Q does not quit")
	}
	if im.IsActive(ActionMoveDown) {
		t.Error("Q still moves down")
	}
	im.HandleKeyEvent(glfw.KeyQ, glfw.Release)
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if im.JustPressed(ActionQuit) {
		t.Error("Escape still bound to quit")
	}
}

func TestUnbindKey(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyF)
	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	if im.JustPressed(ActionToggleWireframe) {
		t.Error("unbound key still toggles wireframe")
	}
}

func TestHelp(t *testing.T) {
	help := NewInputManager().Help()
	for _, line := range []string{"forward: up, w\n", "down: q\n", "quit: esc\n"} {
		if !strings.Contains(help, line) {
			t.Errorf("help missing %q:\n%s", line, help)
		}
	}
}
