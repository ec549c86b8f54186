package core

import "testing"

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("expected ActionJump after Set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("expected no actions after Clear")
	}
	if !clone.Has(ActionJump) {
		t.Error("clone should not share state with the original")
	}

	g := NewInputFrame(ActionLeft, ActionPause)
	if !g.Has(ActionLeft) || !g.Has(ActionPause) || g.Has(ActionRight) {
		t.Errorf("unexpected actions: %v", g.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionJump:    "Jump",
		ActionPause:   "Pause",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if got := a.String(); got != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, expected)
		}
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %d", cfg.TickRate)
	}
	if got := (RuntimeConfig{TickRate: 50}).TickMillis(); got != 20 {
		t.Errorf("expected 20ms ticks, got %v", got)
	}
	if got := (RuntimeConfig{}).TickMillis(); got <= 0 {
		t.Errorf("expected positive fallback tick, got %v", got)
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventScored, EventBounced}}
	if !r.Has(EventScored) || r.Has(EventGameOver) {
		t.Errorf("unexpected events: %v", r.Events)
	}
}

func TestFingerprint(t *testing.T) {
	a := NewFingerprint().Int(3).Float(1.5).Bool(true).String("pipe").Sum64()
	b := NewFingerprint().Int(3).Float(1.5).Bool(true).String("pipe").Sum64()
	if a != b {
		t.Errorf("equal inputs hashed differently: %x != %x", a, b)
	}

	c := NewFingerprint().Int(3).Float(1.5).Bool(false).String("pipe").Sum64()
	if a == c {
		t.Error("different inputs should hash differently")
	}

	d := NewFingerprint().String("ab").String("c").Sum64()
	e := NewFingerprint().String("a").String("bc").Sum64()
	if d == e {
		t.Error("string boundaries should affect the hash")
	}
}
