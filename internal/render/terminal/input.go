package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilecaster/internal/render"
)

// InputManager turns tcell key events into render key state. Terminals send
// no key-up events, so a key seen since the last tick counts as both pressed
// and just pressed for one tick.
type InputManager struct {
	mu   sync.Mutex
	seen map[render.Key]bool
	tick map[render.Key]bool
}

// NewInputManager creates an empty input manager.
func NewInputManager() *InputManager {
	return &InputManager{
		seen: make(map[render.Key]bool),
		tick: make(map[render.Key]bool),
	}
}

// IsKeyPressed reports whether key arrived before this tick.
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick[key]
}

// IsKeyJustPressed is the same as IsKeyPressed on a terminal.
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.IsKeyPressed(key)
}

// HandleKey records a key event. It returns false for keys the game ignores.
func (m *InputManager) HandleKey(ev *tcell.EventKey) bool {
	key, ok := keyFromEvent(ev)
	if !ok {
		return false
	}
	m.mu.Lock()
	m.seen[key] = true
	m.mu.Unlock()
	return true
}

// BeginTick publishes the keys seen since the previous tick.
func (m *InputManager) BeginTick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tick, m.seen = m.seen, m.tick
	clear(m.seen)
}

// keyFromEvent converts a tcell key event to a render.Key.
func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyTab:
		return render.KeyTab, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'm', 'M':
			return render.KeyM, true
		case 'q', 'Q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}
