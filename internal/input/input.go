package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is something the viewer does in response to a key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPerspective
	ActionOrthographic
	ActionToggleWireframe
	ActionToggleCursor
	ActionQuit
	ActionCount
)

var actionNames = [ActionCount]string{
	"forward", "backward", "left", "right", "up", "down",
	"perspective", "orthographic", "wireframe", "cursor", "quit",
}

// ParseAction looks an action up by its String name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings maps keys to the actions they trigger.
type Bindings map[glfw.Key][]Action

// DefaultBindings returns WASD/arrow movement, Q/E vertical movement and
// the single-key toggles.
func DefaultBindings() Bindings {
	return Bindings{
		glfw.KeyW:      {ActionMoveForward},
		glfw.KeyUp:     {ActionMoveForward},
		glfw.KeyS:      {ActionMoveBackward},
		glfw.KeyDown:   {ActionMoveBackward},
		glfw.KeyA:      {ActionMoveLeft},
		glfw.KeyLeft:   {ActionMoveLeft},
		glfw.KeyD:      {ActionMoveRight},
		glfw.KeyRight:  {ActionMoveRight},
		glfw.KeyE:      {ActionMoveUp},
		glfw.KeyQ:      {ActionMoveDown},
		glfw.KeyP:      {ActionPerspective},
		glfw.KeyO:      {ActionOrthographic},
		glfw.KeyF:      {ActionToggleWireframe},
		glfw.KeyTab:    {ActionToggleCursor},
		glfw.KeyEscape: {ActionQuit},
	}
}

var specialKeys = map[string]glfw.Key{
	"up":     glfw.KeyUp,
	"down":   glfw.KeyDown,
	"left":   glfw.KeyLeft,
	"right":  glfw.KeyRight,
	"space":  glfw.KeySpace,
	"tab":    glfw.KeyTab,
	"esc":    glfw.KeyEscape,
	"enter":  glfw.KeyEnter,
	"lshift": glfw.KeyLeftShift,
	"rshift": glfw.KeyRightShift,
	"lctrl":  glfw.KeyLeftControl,
	"rctrl":  glfw.KeyRightControl,
}

// ParseKey accepts a single letter or digit, or one of the special key
// names (up, down, left, right, space, tab, esc, enter, lshift, rshift, lctrl, rctrl).
func ParseKey(name string) (glfw.Key, error) {
	n := strings.ToLower(name)
	if k, ok := specialKeys[n]; ok {
		return k, nil
	}
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a'), nil
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), nil
		}
	}
	return glfw.KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// KeyName is the inverse of ParseKey.
func KeyName(k glfw.Key) string {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return string(rune('a' + (k - glfw.KeyA)))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return string(rune('0' + (k - glfw.Key0)))
	}
	for n, sk := range specialKeys {
		if sk == k {
			return n
		}
	}
	return "?"
}

type state uint8

const (
	held state = 1 << iota
	pressed
)

// InputManager tracks action state between frames. GLFW delivers key
// events on the main thread, so it is not locked.
type InputManager struct {
	bindings Bindings
	states   [ActionCount]state
}

// NewInputManager creates a manager with DefaultBindings
func NewInputManager() *InputManager {
	return &InputManager{bindings: DefaultBindings()}
}

// BindKey adds action to the actions key triggers
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.bindings[key] = append(im.bindings[key], action)
}

// UnbindKey removes every action bound to key
func (im *InputManager) UnbindKey(key glfw.Key) {
	delete(im.bindings, key)
}

// Rebind makes keys the only keys for action. Each key loses whatever it
// was bound to before.
func (im *InputManager) Rebind(action Action, keys []glfw.Key) {
	for k, actions := range im.bindings {
		kept := actions[:0]
		for _, a := range actions {
			if a != action {
				kept = append(kept, a)
			}
		}
		if len(kept) == 0 {
			delete(im.bindings, k)
		} else {
			im.bindings[k] = kept
		}
	}
	for _, k := range keys {
		im.UnbindKey(k)
		im.BindKey(k, action)
	}
}

// ApplyBindings rebinds actions from action name to key names, applied in
// action order. Unknown names are reported and skipped.
func (im *InputManager) ApplyBindings(overrides map[string][]string) error {
	var errs []error
	parsed := make(map[Action][]glfw.Key, len(overrides))
	for name, keyNames := range overrides {
		a, err := ParseAction(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		keys := make([]glfw.Key, 0, len(keyNames))
		for _, kn := range keyNames {
			k, err := ParseKey(kn)
			if err != nil {
				errs = append(errs, fmt.Errorf("action %s: %w", a, err))
				continue
			}
			keys = append(keys, k)
		}
		parsed[a] = keys
	}
	for a := Action(0); a < ActionCount; a++ {
		if keys, ok := parsed[a]; ok {
			im.Rebind(a, keys)
		}
	}
	return errors.Join(errs...)
}

// HandleKeyEvent records a key transition. Repeats count as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	down := action != glfw.Release
	for _, a := range im.bindings[key] {
		switch {
		case down && im.states[a]&held == 0:
			im.states[a] = held | pressed
		case !down:
			im.states[a] = 0
		}
	}
}

// SetKeyCallback routes window key events into the manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the per-frame edges. Call once per frame after input is consumed.
func (im *InputManager) PostUpdate() {
	for i := range im.states {
		im.states[i] &= held
	}
}

func (im *InputManager) has(a Action, bit state) bool {
	return a >= 0 && a < ActionCount && im.states[a]&bit != 0
}

// IsActive reports whether the action is held
func (im *InputManager) IsActive(a Action) bool { return im.has(a, held) }

// JustPressed reports whether the action went down this frame
func (im *InputManager) JustPressed(a Action) bool { return im.has(a, pressed) }

// Help lists each action with the keys bound to it, one per line.
func (im *InputManager) Help() string {
	keys := make([][]string, ActionCount)
	for k, actions := range im.bindings {
		for _, a := range actions {
			keys[a] = append(keys[a], KeyName(k))
		}
	}

	var b strings.Builder
	for a := Action(0); a < ActionCount; a++ {
		if len(keys[a]) == 0 {
			continue
		}
		sort.Strings(keys[a])
		b.WriteString(a.String())
		b.WriteString(": ")
		b.WriteString(strings.Join(keys[a], ", "))
		b.WriteByte('\n')
	}
	return b.String()
}
