package vantage

// TypePickController is the PickController component type tag.
const TypePickController = "PickController"

// PickOptions parameterizes a plain pick query.
type PickOptions struct {
	// CanvasPos is the cursor position to resolve.
	CanvasPos Vec2i
	// Surface requests the world-space surface position of the hit, not
	// just the entity.
	Surface bool
}

// SnapPickOptions parameterizes a snapped pick query.
type SnapPickOptions struct {
	CanvasPos Vec2i
	// SnapRadius is the canvas-space search radius in pixels.
	SnapRadius float32
	// SnapTarget selects vertex or edge snapping.
	SnapTarget SnapType
}

// PickResult is what a pick resolves to. Entity is nil on a miss; a miss
// with a successful snap still carries the snapped fields.
type PickResult struct {
	// Entity is the picked component, or nil when nothing was hit.
	Entity Entity
	// CanvasPos is the cursor position the pick was made at.
	CanvasPos Vec2i
	// WorldPos is the surface position of the hit. Valid when HasWorldPos.
	WorldPos    Vec3
	HasWorldPos bool
	// Snapped fields are filled when a snapped pick found a vertex or edge
	// within the snap radius. Valid when Snapped.
	Snapped          bool
	SnappedWorldPos  Vec3
	SnappedCanvasPos Vec2i
}

// SnapResult is what a snapped pick resolves to.
type SnapResult struct {
	WorldPos  Vec3
	CanvasPos Vec2i
}

// RenderBackend is the render-side collaborator pick queries run against.
// Both calls are synchronous from the engine's perspective; a GPU-readback
// implementation blocks for the readback internally.
type RenderBackend interface {
	// Pick resolves a canvas position to an entity and, when opts.Surface
	// is set, a world-space surface position. Returns false on a miss.
	Pick(opts PickOptions) (PickResult, bool)
	// SnapPick resolves the nearest vertex or edge within the snap radius.
	// Returns false when nothing is within the radius.
	SnapPick(opts SnapPickOptions) (SnapResult, bool)
}

// PickController schedules, deduplicates, and executes pick queries against
// a render backend, then emits a deterministic hover event sequence. Create
// one per camera-control session; it lives for the session's duration.
//
// Each tick the owner calls Update (resolve the scheduled pick, consulting
// the cached result to skip redundant backend queries) and then FireEvents
// (deliver the hover sequence). The split lets the caller settle other
// per-frame state between resolution and notification.
//
// Hover events fired on the controller's bus: hoverEnter, hoverOut, hover,
// hoverSurface, hoverOff. All use forget semantics; a hover stream is
// transient and never replayed to late subscribers.
type PickController struct {
	Component

	backend RenderBackend

	// PointerEnabled gates pick resolution. When false, Update is a no-op
	// and scheduled picks stay pending until it is re-enabled.
	PointerEnabled bool

	scheduledEntity  bool
	scheduledSurface bool
	cursor           Vec2i

	snapRadius float32
	snapTarget SnapType

	// pickResult is the cached result of the most recent query. Update
	// reuses it when the cursor has not moved; FireEvents consumes it.
	pickResult *PickResult

	needFireEvents bool
	lastHoveredID  string // "" = none

	injectQueue []syntheticPickEvent
}

// NewPickController creates a pick controller registered in scene, using
// the scene's pick settings for snap radius and target.
func NewPickController(scene *Scene, backend RenderBackend) *PickController {
	if backend == nil {
		panic("vantage: pick controller constructed with nil backend")
	}
	p := &PickController{
		backend:        backend,
		PointerEnabled: true,
		snapRadius:     scene.settings.Pick.SnapRadius,
		snapTarget:     scene.settings.snapType(),
	}
	p.initComponent(scene, nil, p, TypePickController, "")
	return p
}

// SchedulePick requests an entity-only pick at the given canvas position on
// the next Update. A newer request before Update supersedes an older one.
func (p *PickController) SchedulePick(pos Vec2i) {
	p.scheduledEntity = true
	p.cursor = pos
}

// ScheduleSurfacePick requests a surface pick (world position plus snapped
// vertex/edge) at the given canvas position on the next Update.
func (p *PickController) ScheduleSurfacePick(pos Vec2i) {
	p.scheduledSurface = true
	p.cursor = pos
}

// LastHovered returns the entity from the previous successful hover
// resolution, or nil.
func (p *PickController) LastHovered() Entity {
	if p.lastHoveredID == "" {
		return nil
	}
	e, _ := p.scene.registry.Lookup(p.lastHoveredID)
	return e
}

// Update resolves the scheduled pick, if any. The scheduling flags are
// consumed exactly once per tick whether or not the query produced a usable
// result. Call FireEvents afterwards, in the same tick, to deliver the
// hover sequence.
func (p *PickController) Update() {
	if !p.PointerEnabled {
		return
	}
	// An injected event schedules a pick consumed by this same tick.
	p.consumeInjected()
	if !p.scheduledEntity && !p.scheduledSurface {
		return
	}

	if p.scheduledSurface {
		p.updateSurface()
	} else {
		p.updateEntity()
	}

	p.scheduledEntity = false
	p.scheduledSurface = false
}

// updateSurface resolves a surface pick, reusing the cached result when the
// cursor has not moved since it was produced.
func (p *PickController) updateSurface() {
	if p.pickResult != nil && p.pickResult.CanvasPos == p.cursor {
		// Same cursor position: skip the backend readback. Redelivery is
		// only worth it when someone listens for surface hovers.
		p.needFireEvents = p.HasSubs(EventHoverSurface)
		return
	}

	res, hit := p.backend.Pick(PickOptions{CanvasPos: p.cursor, Surface: true})
	snap, snapped := p.backend.SnapPick(SnapPickOptions{
		CanvasPos:  p.cursor,
		SnapRadius: p.snapRadius,
		SnapTarget: p.snapTarget,
	})

	if !hit {
		res = PickResult{CanvasPos: p.cursor}
	}
	if snapped {
		res.Snapped = true
		res.SnappedWorldPos = snap.WorldPos
		res.SnappedCanvasPos = snap.CanvasPos
	}

	p.pickResult = &res
	p.needFireEvents = true
}

// updateEntity resolves an entity-only pick. The cache matches on either the
// plain or the snapped canvas position of the previous result.
func (p *PickController) updateEntity() {
	if p.pickResult != nil &&
		(p.pickResult.CanvasPos == p.cursor ||
			(p.pickResult.Snapped && p.pickResult.SnappedCanvasPos == p.cursor)) {
		p.needFireEvents = true
		return
	}

	res, hit := p.backend.Pick(PickOptions{CanvasPos: p.cursor})
	if !hit {
		res = PickResult{CanvasPos: p.cursor}
	}
	p.pickResult = &res
	p.needFireEvents = true
}

// FireEvents delivers the hover sequence determined by the last Update.
// No-op unless Update marked events as needing delivery. Consumes the cached
// result.
//
// Sequencing: when the hovered entity changes, hoverOut for the previous
// entity precedes hoverEnter for the new one; hover always follows; a
// result carrying a world position (direct or snapped) adds hoverSurface.
// On a miss, hoverOut for the previous entity (if any) precedes hoverOff.
func (p *PickController) FireEvents() {
	if !p.needFireEvents {
		return
	}

	r := p.pickResult
	if r != nil && (r.Entity != nil || r.Snapped) {
		id := ""
		if r.Entity != nil {
			id = r.Entity.ID()
		}
		if id != p.lastHoveredID {
			p.fireHoverOut()
			p.FireForget(EventHoverEnter, r)
			p.lastHoveredID = id
		}
		p.FireForget(EventHover, r)
		if r.HasWorldPos || r.Snapped {
			p.FireForget(EventHoverSurface, r)
		}
	} else {
		p.fireHoverOut()
		p.lastHoveredID = ""
		p.FireForget(EventHoverOff, p.cursor)
	}

	p.pickResult = nil
	p.needFireEvents = false
}

// fireHoverOut fires hoverOut for the previously hovered entity, if there
// was one and it is still alive.
func (p *PickController) fireHoverOut() {
	if p.lastHoveredID == "" {
		return
	}
	if prev, ok := p.scene.registry.Lookup(p.lastHoveredID); ok {
		p.FireForget(EventHoverOut, prev)
	}
}
