package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/vantage3d/vantage"
)

// stubBackend always reports a hit on the configured entity.
type stubBackend struct {
	entity vantage.Entity
	world  vantage.Vec3
}

func (b *stubBackend) Pick(opts vantage.PickOptions) (vantage.PickResult, bool) {
	if b.entity == nil {
		return vantage.PickResult{}, false
	}
	r := vantage.PickResult{Entity: b.entity, CanvasPos: opts.CanvasPos}
	if opts.Surface {
		r.WorldPos = b.world
		r.HasWorldPos = true
	}
	return r, true
}

func (b *stubBackend) SnapPick(vantage.SnapPickOptions) (vantage.SnapResult, bool) {
	return vantage.SnapResult{}, false
}

func newBoundController(t *testing.T, backend *stubBackend) (donburi.World, *vantage.PickController, func()) {
	t.Helper()
	scene := vantage.NewScene()
	if backend.entity == nil {
		backend.entity = vantage.NewMesh(scene, nil, vantage.MeshConfig{ID: "target"})
	}
	pc := vantage.NewPickController(scene, backend)
	world := donburi.NewWorld()
	unbind := Bind(world, pc)
	return world, pc, unbind
}

func TestBindForwardsHoverSequence(t *testing.T) {
	world, pc, _ := newBoundController(t, &stubBackend{})

	var received []HoverEvent
	HoverEventType.Subscribe(world, func(w donburi.World, e HoverEvent) {
		received = append(received, e)
	})

	pc.SchedulePick(vantage.Vec2i{X: 10, Y: 20})
	pc.Update()
	pc.FireEvents()

	// Events are queued until processed.
	HoverEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events (enter, hover), got %d: %+v", len(received), received)
	}
	if received[0].Kind != HoverEnter || received[0].EntityID != "target" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Kind != Hover {
		t.Errorf("event 1: %+v", received[1])
	}
	if (received[1].CanvasPos != vantage.Vec2i{X: 10, Y: 20}) {
		t.Errorf("event 1 canvas position: %+v", received[1].CanvasPos)
	}
}

func TestBindForwardsSurfaceWorldPosition(t *testing.T) {
	world, pc, _ := newBoundController(t, &stubBackend{world: vantage.Vec3{X: 1, Y: 2, Z: 3}})

	var surface *HoverEvent
	HoverEventType.Subscribe(world, func(w donburi.World, e HoverEvent) {
		if e.Kind == HoverSurface {
			surface = &e
		}
	})

	pc.ScheduleSurfacePick(vantage.Vec2i{X: 5, Y: 5})
	pc.Update()
	pc.FireEvents()
	events.ProcessAllEvents(world)

	if surface == nil {
		t.Fatal("no surface event forwarded")
	}
	if !surface.HasWorld || surface.WorldPos != (vantage.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("surface event world position: %+v", surface)
	}
}

func TestBindForwardsOffOnMiss(t *testing.T) {
	backend := &stubBackend{}
	world, pc, _ := newBoundController(t, backend)

	pc.SchedulePick(vantage.Vec2i{X: 1, Y: 1})
	pc.Update()
	pc.FireEvents()

	var kinds []HoverKind
	HoverEventType.Subscribe(world, func(w donburi.World, e HoverEvent) {
		kinds = append(kinds, e.Kind)
	})
	events.ProcessAllEvents(world) // drain the enter/hover pair

	kinds = nil
	backend.entity = nil
	pc.SchedulePick(vantage.Vec2i{X: 2, Y: 2})
	pc.Update()
	pc.FireEvents()
	events.ProcessAllEvents(world)

	if len(kinds) != 2 || kinds[0] != HoverOut || kinds[1] != HoverOff {
		t.Errorf("miss forwarded %v, want [out off]", kinds)
	}
}

func TestUnbindStopsForwarding(t *testing.T) {
	world, pc, unbind := newBoundController(t, &stubBackend{})

	count := 0
	HoverEventType.Subscribe(world, func(w donburi.World, e HoverEvent) { count++ })

	unbind()
	pc.SchedulePick(vantage.Vec2i{X: 10, Y: 10})
	pc.Update()
	pc.FireEvents()
	events.ProcessAllEvents(world)

	if count != 0 {
		t.Errorf("unbound world still received %d events", count)
	}
}
