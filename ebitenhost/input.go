// Package ebitenhost connects a mapview.Controller to Ebitengine: it turns
// mouse, touch, and wheel state into controller events each tick and draws
// the content clipped to its container.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/mapview"
)

const (
	maxPointers       = 10  // pointer 0 = mouse, 1-9 = touch
	mouseContactID    = 0   // contact ID reported for the left mouse button
	defaultWheelScale = 120 // ebiten wheel notch to scroll units
)

// sample is one pressed pointer observed this tick.
type sample struct {
	id  int
	pos mapview.Vec2
}

type pointerState struct {
	down  bool
	start mapview.Vec2
	last  mapview.Vec2
}

// Input polls Ebitengine input and feeds a Controller. Call Update once per
// ebiten.Game Update.
type Input struct {
	ctrl *mapview.Controller

	// MouseEnabled treats the left mouse button as a contact and the wheel
	// as zoom. Defaults to true.
	MouseEnabled bool
	// WheelScale converts ebiten wheel offsets to scroll units, which the
	// controller divides by Config.WheelRate.
	WheelScale float64

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	samples []sample
	moved   []mapview.Touch
	ended   []mapview.Touch
}

// NewInput creates an Input driving ctrl.
func NewInput(ctrl *mapview.Controller) *Input {
	return &Input{
		ctrl:         ctrl,
		MouseEnabled: true,
		WheelScale:   defaultWheelScale,
	}
}

// Update reads the current pointer state and dispatches move, end, and wheel
// events to the controller.
func (in *Input) Update() {
	in.samples = in.samples[:0]

	if in.MouseEnabled && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.samples = append(in.samples, sample{id: mouseContactID, pos: mapview.Vec2{X: float64(mx), Y: float64(my)}})
	}
	in.collectTouches()
	in.process(in.samples)

	if in.MouseEnabled {
		if _, wy := ebiten.Wheel(); wy != 0 {
			mx, my := ebiten.CursorPosition()
			in.ctrl.HandleWheel(mapview.Vec2{X: float64(mx), Y: float64(my)}, wy*in.WheelScale)
		}
	}
}

// collectTouches appends active touches to the sample buffer and frees the
// slots of touches that ended.
func (in *Input) collectTouches() {
	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		in.samples = append(in.samples, sample{id: slot, pos: mapview.Vec2{X: float64(tx), Y: float64(ty)}})
	}

	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !activeSlots[i] {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), which doubles as
// the contact ID. Returns the existing slot or allocates a new one. Returns
// -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// process runs the per-pointer state machine over this tick's samples.
// A press only records the start; the controller first hears of a contact
// when it moves. Pointers missing from active are released.
func (in *Input) process(active []sample) {
	var seen [maxPointers]bool

	in.moved = in.moved[:0]
	for _, s := range active {
		seen[s.id] = true
		ps := &in.pointers[s.id]
		if !ps.down {
			*ps = pointerState{down: true, start: s.pos, last: s.pos}
			continue
		}
		if s.pos == ps.last {
			continue
		}
		in.moved = append(in.moved, mapview.Touch{
			ID: s.id, Start: ps.start, Location: s.pos, Delta: s.pos.Sub(ps.last),
		})
		ps.last = s.pos
	}
	if len(in.moved) > 0 {
		in.ctrl.HandleMove(mapview.TouchEvent{Touches: in.moved})
	}

	in.ended = in.ended[:0]
	for id := range in.pointers {
		ps := &in.pointers[id]
		if ps.down && !seen[id] {
			in.ended = append(in.ended, mapview.Touch{ID: id, Start: ps.start, Location: ps.last})
			*ps = pointerState{}
		}
	}
	if len(in.ended) > 0 {
		in.ctrl.HandleEnd(mapview.TouchEvent{Touches: in.ended})
	}
}
