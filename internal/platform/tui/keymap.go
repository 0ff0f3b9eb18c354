package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilerush/tilerush/internal/core"
)

// KeyMapper translates Bubble Tea key messages to lane taps and actions.
// Lane bindings come from the game config, so the mapper is built per run;
// this centralizes key handling and makes it testable.
type KeyMapper struct {
	laneByKey map[string]int
}

// NewKeyMapper creates a key mapper with the given lane key bindings;
// keys[i] taps lane i.
func NewKeyMapper(laneKeys []string) *KeyMapper {
	m := make(map[string]int, len(laneKeys))
	for lane, k := range laneKeys {
		m[strings.ToLower(k)] = lane
	}
	return &KeyMapper{laneByKey: m}
}

// Lane returns the lane bound to the key, if any.
func (km *KeyMapper) Lane(msg tea.KeyMsg) (int, bool) {
	lane, ok := km.laneByKey[strings.ToLower(msg.String())]
	return lane, ok
}

// MapKeyToFrame updates an input frame based on a key message. Lane keys
// win over action keys, so a config may rebind p or r as a lane.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	}

	if lane, ok := km.Lane(msg); ok {
		frame.Tap(lane)
		return false
	}

	switch key {
	case "p":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "b", "esc":
		frame.Set(core.ActionBack)
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
