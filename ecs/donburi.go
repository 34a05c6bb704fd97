// Package ecs provides ECS adapters for vantage.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/vantage3d/vantage"
)

// HoverKind identifies which hover transition a HoverEvent carries.
type HoverKind string

// Hover transition kinds.
const (
	HoverEnter   HoverKind = "enter"
	HoverOut     HoverKind = "out"
	Hover        HoverKind = "hover"
	HoverSurface HoverKind = "surface"
	HoverOff     HoverKind = "off"
)

// HoverEvent is the ECS-facing payload for pick controller hover events.
type HoverEvent struct {
	Kind      HoverKind
	EntityID  string // empty for off, and for snap-only hovers
	CanvasPos vantage.Vec2i
	WorldPos  vantage.Vec3
	HasWorld  bool
}

// HoverEventType is the Donburi event type for vantage hover events.
// Subscribe to this in your ECS systems to receive the hover sequence.
var HoverEventType = events.NewEventType[HoverEvent]()

// Bind forwards pc's hover events to HoverEventType on the given Donburi
// world. Consume them with events.Subscribe and ProcessEvents. The returned
// function removes the forwarding subscriptions.
func Bind(world donburi.World, pc *vantage.PickController) func() {
	fromResult := func(kind HoverKind, v any) HoverEvent {
		res := v.(*vantage.PickResult)
		evt := HoverEvent{Kind: kind, CanvasPos: res.CanvasPos}
		if res.Entity != nil {
			evt.EntityID = res.Entity.ID()
		}
		switch {
		case res.HasWorldPos:
			evt.WorldPos = res.WorldPos
			evt.HasWorld = true
		case res.Snapped:
			evt.WorldPos = res.SnappedWorldPos
			evt.HasWorld = true
		}
		return evt
	}

	subs := []vantage.Sub{
		pc.On(vantage.EventHoverEnter, func(v any) {
			HoverEventType.Publish(world, fromResult(HoverEnter, v))
		}),
		pc.On(vantage.EventHover, func(v any) {
			HoverEventType.Publish(world, fromResult(Hover, v))
		}),
		pc.On(vantage.EventHoverSurface, func(v any) {
			HoverEventType.Publish(world, fromResult(HoverSurface, v))
		}),
		pc.On(vantage.EventHoverOut, func(v any) {
			evt := HoverEvent{Kind: HoverOut}
			if e, ok := v.(vantage.Entity); ok && e != nil {
				evt.EntityID = e.ID()
			}
			HoverEventType.Publish(world, evt)
		}),
		pc.On(vantage.EventHoverOff, func(v any) {
			HoverEventType.Publish(world, HoverEvent{
				Kind:      HoverOff,
				CanvasPos: v.(vantage.Vec2i),
			})
		}),
	}

	return func() {
		for _, s := range subs {
			pc.Off(s)
		}
	}
}
