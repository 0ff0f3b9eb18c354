package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPause) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionRestart)

	if !f.Has(ActionPause) || !f.Has(ActionRestart) {
		t.Error("set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should remove actions")
	}
}

func TestInputFrameTapOrder(t *testing.T) {
	f := NewInputFrame()
	f.Tap(2)
	f.Tap(0)
	f.Tap(2)

	want := []int{2, 0, 2}
	if len(f.Taps) != len(want) {
		t.Fatalf("Taps length = %d, expected %d", len(f.Taps), len(want))
	}
	for i, lane := range want {
		if f.Taps[i] != lane {
			t.Errorf("Taps[%d] = %d, expected %d (arrival order must be preserved)", i, f.Taps[i], lane)
		}
	}

	f.Clear()
	if len(f.Taps) != 0 {
		t.Error("Clear should drop queued taps")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.Tap(1)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionQuit) {
		t.Error("clone should keep actions after the original is cleared")
	}
	if len(clone.Taps) != 1 || clone.Taps[0] != 1 {
		t.Error("clone should keep taps after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{
		ActionNone:    "None",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range cases {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, a.String(), want)
		}
	}
}
