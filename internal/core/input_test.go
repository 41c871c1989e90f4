package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionSpin) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionSpin)
	f.Set(ActionForceDiagonal)
	if !f.Has(ActionSpin) || !f.Has(ActionForceDiagonal) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionPause) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionSpin) || f.Has(ActionForceDiagonal) {
		t.Error("Clear did not remove actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionSpin, "Spin"},
		{ActionForceStraight, "ForceStraight"},
		{ActionForceDiagonal, "ForceDiagonal"},
		{ActionForceAdjacency, "ForceAdjacency"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.want)
		}
	}
}
