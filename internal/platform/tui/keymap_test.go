package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solidoberon/slots-game/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionSpin, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSpin, false},
		{runeKey('1'), core.ActionForceStraight, false},
		{runeKey('2'), core.ActionForceDiagonal, false},
		{runeKey('3'), core.ActionForceAdjacency, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.wantQuit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.msg.String(), got, quit, tt.want, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('1'), &frame); quit {
		t.Fatal("rig key reported as quit")
	}
	if !frame.Has(core.ActionForceStraight) {
		t.Error("frame missing armed action")
	}
}
