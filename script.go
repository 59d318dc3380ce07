package mapview

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action  string        `json:"action"`
	Touches []scriptTouch `json:"touches,omitempty"`
	X       float64       `json:"x,omitempty"`
	Y       float64       `json:"y,omitempty"`
	ScrollY float64       `json:"scrollY,omitempty"`
}

// scriptTouch is one contact inside a step, in screen coordinates.
type scriptTouch struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptPointer remembers where a scripted contact went down and last was.
type scriptPointer struct {
	start, last Vec2
}

// Script replays recorded input against a Controller, one step per call to
// Step. Supported actions:
//
//	down    start contacts (no event is sent; the host reports presses only
//	        through later moves)
//	move    move contacts to new positions
//	end     release contacts; x/y of each touch is the release location
//	cancel  like end, sent as a cancel event
//	wheel   scroll by scrollY at x/y
//	lock    engage the operation lock
//	unlock  clear the operation lock
type Script struct {
	steps    []scriptStep
	cursor   int
	pointers map[int]*scriptPointer
}

var scriptActions = map[string]bool{
	"down": true, "move": true, "end": true, "cancel": true,
	"wheel": true, "lock": true, "unlock": true,
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps, pointers: make(map[int]*scriptPointer)}, nil
}

// Done reports whether all steps have been executed.
func (s *Script) Done() bool {
	return s.cursor >= len(s.steps)
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Step executes the next step against c and returns the gesture it produced.
func (s *Script) Step(c *Controller) Gesture {
	if s.Done() {
		return GestureNone
	}
	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "down":
		for _, t := range st.Touches {
			p := Vec2{t.X, t.Y}
			s.pointers[t.ID] = &scriptPointer{start: p, last: p}
		}
	case "move":
		return c.HandleMove(s.moveEvent(st.Touches))
	case "end":
		return c.HandleEnd(s.releaseEvent(st.Touches))
	case "cancel":
		return c.HandleCancel(s.releaseEvent(st.Touches))
	case "wheel":
		c.HandleWheel(Vec2{st.X, st.Y}, st.ScrollY)
	case "lock":
		c.SetLocked(true)
	case "unlock":
		c.SetLocked(false)
	}
	return GestureNone
}

// Run executes every remaining step and returns the gestures produced by
// move, end, and cancel steps, in order.
func (s *Script) Run(c *Controller) []Gesture {
	var out []Gesture
	for !s.Done() {
		action := s.steps[s.cursor].Action
		g := s.Step(c)
		switch action {
		case "move", "end", "cancel":
			out = append(out, g)
		}
	}
	return out
}

func (s *Script) moveEvent(touches []scriptTouch) TouchEvent {
	ev := TouchEvent{Touches: make([]Touch, 0, len(touches))}
	for _, t := range touches {
		loc := Vec2{t.X, t.Y}
		p, ok := s.pointers[t.ID]
		if !ok {
			p = &scriptPointer{start: loc, last: loc}
			s.pointers[t.ID] = p
		}
		ev.Touches = append(ev.Touches, Touch{
			ID: t.ID, Start: p.start, Location: loc, Delta: loc.Sub(p.last),
		})
		p.last = loc
	}
	return ev
}

func (s *Script) releaseEvent(touches []scriptTouch) TouchEvent {
	ev := TouchEvent{Touches: make([]Touch, 0, len(touches))}
	for _, t := range touches {
		loc := Vec2{t.X, t.Y}
		start := loc
		if p, ok := s.pointers[t.ID]; ok {
			start = p.start
			delete(s.pointers, t.ID)
		}
		ev.Touches = append(ev.Touches, Touch{ID: t.ID, Start: start, Location: loc})
	}
	return ev
}
