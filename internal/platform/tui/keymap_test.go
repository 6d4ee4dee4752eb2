package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/input"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDirectionKey(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{"w", runeKey('w'), input.KeyUp, true},
		{"a", runeKey('a'), input.KeyLeft, true},
		{"s", runeKey('s'), input.KeyDown, true},
		{"d", runeKey('d'), input.KeyRight, true},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, input.KeyRight, true},
		{"x", runeKey('x'), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.DirectionKey(tc.msg)
			if ok != tc.ok || got != tc.want {
				t.Errorf("DirectionKey() = %v, %v; expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestAction(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"w is not an action", runeKey('w'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action() = %v, expected %v", got, tc.want)
			}
		})
	}
}
