package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	f.Set(ActionToggleBoost)

	if !f.Has(ActionJump) || !f.Has(ActionToggleBoost) {
		t.Error("frame should contain Jump and ToggleBoost")
	}
	if f.Has(ActionTogglePause) {
		t.Error("frame should not contain TogglePause")
	}
	if len(f.Actions) != 2 {
		t.Errorf("repeated actions should collapse, got %d entries", len(f.Actions))
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroValueInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleAutoplay.String() != "ToggleAutoplay" {
		t.Errorf("got %q", ActionToggleAutoplay.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("got %q", Action(99).String())
	}
}
