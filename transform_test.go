package mapview

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, want.X, want.Y)
	}
}

func assertMatrix(t *testing.T, name string, got, want f64.Aff3) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- localTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewNode(10, 10)
	assertMatrix(t, "identity", localTransform(n), identityTransform)
}

func TestLocalTransformTranslateScale(t *testing.T) {
	n := NewNode(10, 10)
	n.SetPosition(10, 20)
	n.SetScale(2, 3)
	assertMatrix(t, "translate+scale", localTransform(n), f64.Aff3{2, 0, 10, 0, 3, 20})
}

// --- multiply / invert ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := f64.Aff3{2, 0, 5, 0, 3, 7}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineOrder(t *testing.T) {
	parent := f64.Aff3{2, 0, 100, 0, 2, 50}
	child := f64.Aff3{1, 0, 10, 0, 1, 5}
	// child translation is scaled by the parent before the parent translation.
	assertMatrix(t, "p*c", multiplyAffine(parent, child), f64.Aff3{2, 0, 120, 0, 2, 60})
}

func TestInvertAffineRoundtrip(t *testing.T) {
	m := f64.Aff3{1.5, 0.2, -40, -0.3, 2.5, 17}
	got := multiplyAffine(m, invertAffine(m))
	assertMatrix(t, "m*inv(m)", got, identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	m := f64.Aff3{0, 0, 10, 0, 0, 20}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- Node conversions ---

func TestWorldTransformChain(t *testing.T) {
	container := NewNode(400, 400)
	container.SetPosition(320, 240)
	container.SetScale(2, 2)
	content := NewNode(800, 800)
	content.Parent = container
	content.SetPosition(10, -5)
	content.SetScale(1.5, 1.5)

	got := content.LocalToWorld(Vec2{4, 2})
	// content: (4,2) -> (16, -2); container: *2 + (320,240) -> (352, 236)
	assertVec(t, "LocalToWorld", got, Vec2{352, 236})
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	container := NewNode(400, 300)
	container.SetPosition(123, -45)
	container.SetScale(0.75, 1.25)
	content := NewNode(800, 600)
	content.Parent = container
	content.SetPosition(-33, 12)
	content.SetScale(2.2, 2.2)

	orig := Vec2{17.5, -301}
	got := content.LocalToWorld(content.WorldToLocal(orig))
	if math.Abs(got.X-orig.X) > 1e-6 || math.Abs(got.Y-orig.Y) > 1e-6 {
		t.Errorf("roundtrip = %v, want %v", got, orig)
	}
}

func TestWorldTransformFollowsParentMoves(t *testing.T) {
	container := NewNode(100, 100)
	content := NewNode(200, 200)
	content.Parent = container

	before := content.LocalToWorld(Vec2{})
	container.SetPosition(50, 60)
	after := content.LocalToWorld(Vec2{})
	assertVec(t, "before", before, Vec2{0, 0})
	assertVec(t, "after", after, Vec2{50, 60})
}

func TestWorldDeltaToLocal(t *testing.T) {
	container := NewNode(100, 100)
	container.SetPosition(500, 500)
	container.SetScale(2, 4)
	got := container.WorldDeltaToLocal(Vec2{10, 10})
	assertVec(t, "delta", got, Vec2{5, 2.5})
}

func TestParentToLocal(t *testing.T) {
	container := NewNode(100, 100)
	container.SetPosition(50, 50)
	content := NewNode(200, 200)
	assertVec(t, "no parent", content.ParentToLocal(Vec2{7, 8}), Vec2{7, 8})
	content.Parent = container
	assertVec(t, "with parent", content.ParentToLocal(Vec2{57, 58}), Vec2{7, 8})
}

func TestScreenRect(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want Rect
	}{
		{"origin", NewNode(400, 400), Rect{X: -200, Y: -200, Width: 400, Height: 400}},
		{"moved", &Node{X: 320, Y: 240, ScaleX: 1, ScaleY: 1, Width: 400, Height: 300},
			Rect{X: 120, Y: 90, Width: 400, Height: 300}},
		{"scaled", &Node{ScaleX: 2, ScaleY: 0.5, Width: 100, Height: 100},
			Rect{X: -100, Y: -25, Width: 200, Height: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.node.ScreenRect()
			assertNear(t, "X", got.X, tt.want.X)
			assertNear(t, "Y", got.Y, tt.want.Y)
			assertNear(t, "Width", got.Width, tt.want.Width)
			assertNear(t, "Height", got.Height, tt.want.Height)
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsPoint(Vec2{tt.x, tt.y}); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
