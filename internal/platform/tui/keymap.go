package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boulder-tui/boulder/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	Ghost       key.Binding
	Sound       key.Binding
	NextLevel   key.Binding
	PrevLevel   key.Binding
	Suicide     key.Binding
	Respawn     key.Binding
	RefillTime  key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
	actionOrder []actionBinding
}

type actionBinding struct {
	binding *key.Binding
	action  core.Action
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Ghost, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Ghost},
		{k.Sound, k.Pause, k.Screenshot, k.Quit},
		{k.NextLevel, k.PrevLevel, k.Suicide, k.Respawn, k.RefillTime},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() *GameKeyMap {
	k := &GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Ghost: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "dig/retry"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "prev level"),
		),
		Suicide: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "blow up"),
		),
		Respawn: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "respawn"),
		),
		RefillTime: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "refill time"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	k.actionOrder = []actionBinding{
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.Up, core.ActionUp},
		{&k.Down, core.ActionDown},
		{&k.Ghost, core.ActionGhost},
		{&k.Sound, core.ActionSoundToggle},
		{&k.NextLevel, core.ActionNextLevel},
		{&k.PrevLevel, core.ActionPrevLevel},
		{&k.Suicide, core.ActionSuicide},
		{&k.Respawn, core.ActionRespawn},
		{&k.RefillTime, core.ActionRefillTime},
		{&k.Pause, core.ActionPause},
	}
	return k
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k *GameKeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}
	for _, ab := range k.actionOrder {
		if key.Matches(msg, *ab.binding) {
			return ab.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k *GameKeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
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
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
