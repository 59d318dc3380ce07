package mapview

import (
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, json, wantErr string
	}{
		{"invalid json", `{"steps": [`, "parse gesture script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "down"}, {"action": "swipe"}]}`, `step 1: unknown action "swipe"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func loadScript(t *testing.T, src string) *Script {
	t.Helper()
	s, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	return s
}

func assertGestures(t *testing.T, got, want []Gesture) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("gestures = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("gesture[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScriptPan(t *testing.T) {
	s := loadScript(t, `{"steps": [
		{"action": "down", "touches": [{"id": 1, "x": 0, "y": 0}]},
		{"action": "move", "touches": [{"id": 1, "x": 10, "y": 0}]},
		{"action": "move", "touches": [{"id": 1, "x": 60, "y": 0}]},
		{"action": "end",  "touches": [{"id": 1, "x": 60, "y": 0}]}
	]}`)
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}

	c := newTestController(DefaultConfig())
	r := record(c)
	assertGestures(t, s.Run(c), []Gesture{GesturePan, GesturePan, GestureNone})
	assertVec(t, "Position", c.Viewport().Position, Vec2{60, 0})
	if len(r.taps) != 0 {
		t.Errorf("taps = %v, want none", r.taps)
	}
	if !s.Done() {
		t.Error("script should be done")
	}
}

func TestScriptTap(t *testing.T) {
	s := loadScript(t, `{"steps": [
		{"action": "down", "touches": [{"id": 1, "x": 5, "y": 5}]},
		{"action": "end",  "touches": [{"id": 1, "x": 5, "y": 5}]}
	]}`)
	c := newTestController(DefaultConfig())
	r := record(c)
	assertGestures(t, s.Run(c), []Gesture{GestureTap})
	if len(r.taps) != 1 {
		t.Fatalf("taps = %d, want 1", len(r.taps))
	}
	assertVec(t, "tap", r.taps[0], Vec2{5, 5})
}

func TestScriptPinchAndLock(t *testing.T) {
	s := loadScript(t, `{"steps": [
		{"action": "down", "touches": [{"id": 1, "x": 90, "y": 0}, {"id": 2, "x": -90, "y": 0}]},
		{"action": "move", "touches": [{"id": 1, "x": 100, "y": 0}, {"id": 2, "x": -100, "y": 0}]},
		{"action": "lock"},
		{"action": "move", "touches": [{"id": 1, "x": 150, "y": 0}, {"id": 2, "x": -150, "y": 0}]},
		{"action": "unlock"}
	]}`)
	c := newTestController(DefaultConfig())
	assertGestures(t, s.Run(c), []Gesture{GesturePinch, GestureNone})
	assertNear(t, "Scale", c.Viewport().Scale, 1.1)
	if c.Locked() {
		t.Error("controller should be unlocked")
	}
	if n := len(c.Contacts()); n != 0 {
		t.Errorf("contacts = %d, want 0 after lock reset", n)
	}
}

func TestScriptWheel(t *testing.T) {
	s := loadScript(t, `{"steps": [
		{"action": "wheel", "x": 0, "y": 0, "scrollY": 1000}
	]}`)
	c := newTestController(DefaultConfig())
	if got := s.Run(c); len(got) != 0 {
		t.Errorf("wheel steps should not report gestures, got %v", got)
	}
	assertNear(t, "Scale", c.Viewport().Scale, 1.1)
	if c.Label() != "110%" {
		t.Errorf("Label() = %q, want 110%%", c.Label())
	}
}

func TestScriptStepAfterDone(t *testing.T) {
	s := loadScript(t, `{"steps": [{"action": "lock"}]}`)
	c := newTestController(DefaultConfig())
	if g := s.Step(c); g != GestureNone {
		t.Errorf("Step() = %v, want none", g)
	}
	if !c.Locked() {
		t.Error("lock step should lock the controller")
	}
	if g := s.Step(c); g != GestureNone || !s.Done() {
		t.Errorf("Step() past the end = %v, done %v", g, s.Done())
	}
}
