// Package mapview is a pan and pinch-zoom viewport controller for a map (or
// any rectangular content layer) shown inside a fixed-size container.
//
// The host owns rendering and input dispatch. It describes the container and
// content with [Node] values, feeds touch events to a [Controller], and draws
// the content at the position and scale the controller computes:
//
//	container := mapview.NewNode(400, 400)
//	container.SetPosition(320, 240) // screen center
//	content := mapview.NewNode(800, 800)
//	content.Parent = container
//
//	ctrl := mapview.New(container, content, mapview.DefaultConfig())
//	ctrl.OnTap(func(p mapview.Vec2) { fmt.Println("tapped", p) })
//	ctrl.OnLabel(func(s string) { zoomLabel = s })
//	ctrl.Start()
//
//	// from the host's input dispatch:
//	ctrl.HandleMove(mapview.TouchEvent{Touches: touches})
//	ctrl.HandleEnd(mapview.TouchEvent{Touches: released})
//
// # Gestures
//
// One contact pans once it leaves [Config.MoveOffset]; two contacts always
// pinch, scaling around their midpoint. A third contact is ignored. A touch
// session that never panned or pinched ends in a tap, reported in
// content-local coordinates. The content is clamped so it never exposes empty
// space inside the container, and at scale 1 it is always centered.
//
// # Hosts
//
// Package [github.com/phanxgames/mapview/ebitenhost] connects a Controller
// to [Ebitengine] mouse, touch, and wheel input and draws the content.
//
// [Ebitengine]: https://ebitengine.org
package mapview
