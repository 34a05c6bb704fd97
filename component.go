package vantage

import "fmt"

// Entity is the interface every scene component satisfies. Concrete
// component types (Mesh, Material, Camera, ...) embed Component, which
// provides the full implementation; user-defined component types can do the
// same.
type Entity interface {
	// ID returns the component's registry-unique identifier.
	ID() string
	// Type returns the component's type tag (e.g. "Mesh").
	Type() string
	// Base returns the embedded Component for event and attachment access.
	Base() *Component
	// Destroy tears the component down. Idempotent.
	Destroy()
	// Destroyed reports whether Destroy has completed.
	Destroyed() bool
}

// Component is the base of every scene entity: identity, metadata, the event
// bus, owned sub-components, named attachments, and deferred update
// scheduling. Concrete types embed it and call initComponent from their
// constructor.
//
// A Component is single-threaded by contract: all methods must be called
// from the scene's logical thread (the frame tick).
type Component struct {
	scene *Scene
	self  Entity
	id    string
	typ   string

	// Metadata is an opaque user-defined key/value map. The engine never
	// reads or writes it.
	Metadata map[string]any

	// Ownership is a tree keyed by ID: the owner stores child IDs and the
	// child stores its owner's ID, so teardown never chases pointer cycles.
	ownerID string
	owned   []string

	destroyed bool

	// Event bus state (events.go).
	events    map[string]*eventState
	nextSubID uint32
	fireDepth int

	// Named attachment slots (attach.go).
	attachments map[string]*attachment

	updateScheduled bool

	// OnUpdate is invoked by the deferred update machinery after
	// RequestUpdate. Nil by default; zero cost when unused.
	OnUpdate func()
}

// initComponent registers the component into scene's registry and, when
// owner is non-nil, binds this component's lifetime to the owner. self must
// be the outermost struct (the value stored in the registry and delivered in
// event payloads).
//
// An invalid owner (nil scene, owner from another scene, destroyed owner) is
// a structural error and panics: no usable component can exist without a
// valid registration.
func (c *Component) initComponent(scene *Scene, owner Entity, self Entity, typ, requestedID string) {
	if scene == nil {
		panic("vantage: component constructed with nil scene")
	}
	if owner != nil {
		ob := owner.Base()
		if ob.scene != scene {
			panic(fmt.Sprintf("vantage: owner %q belongs to a different scene", owner.ID()))
		}
		if ob.destroyed {
			panic(fmt.Sprintf("vantage: owner %q is destroyed", owner.ID()))
		}
	}

	c.scene = scene
	c.self = self
	c.typ = typ

	id, collided := scene.registry.register(self, requestedID)
	c.id = id
	if collided {
		c.Warnf("requested id %q is taken, assigned %q", requestedID, id)
	}

	if owner != nil {
		ob := owner.Base()
		c.ownerID = ob.id
		ob.owned = append(ob.owned, id)
		if scene.debug {
			debugCheckOwnerDepth(c)
		}
	}
}

// ID returns the component's registry-unique identifier. Immutable.
func (c *Component) ID() string { return c.id }

// Type returns the component's type tag.
func (c *Component) Type() string { return c.typ }

// Base returns c. Promoted through embedding, it gives Entity values access
// to the component core.
func (c *Component) Base() *Component { return c }

// Scene returns the owning scene.
func (c *Component) Scene() *Scene { return c.scene }

// Destroyed reports whether Destroy has completed. Once true, the component
// delivers no events and accepts no attachments or updates.
func (c *Component) Destroyed() bool { return c.destroyed }

// IsType reports whether the component's type tag equals typ.
func (c *Component) IsType(typ string) bool { return c.typ == typ }

// Owner returns the component whose destruction cascades to this one, or
// nil.
func (c *Component) Owner() Entity {
	if c.ownerID == "" {
		return nil
	}
	e, _ := c.scene.registry.Lookup(c.ownerID)
	return e
}

// Destroy tears the component down: detaches (and destroys managed)
// attachments, destroys every owned sub-component, releases the registry ID,
// clears all bus and attachment state, and finally fires the destroyed
// event. Idempotent: a second call is a no-op and fires nothing.
func (c *Component) Destroy() {
	if c.destroyed {
		return
	}

	// 1. Tear down attachment slots. Managed occupants are destroyed.
	for _, name := range c.attachmentNames() {
		c.teardownSlot(name)
	}

	// 2. Destroy the owned subtree, depth-first. Each child removes itself
	// from c.owned as it goes down.
	for len(c.owned) > 0 {
		id := c.owned[len(c.owned)-1]
		child, ok := c.scene.registry.Lookup(id)
		if !ok {
			c.owned = c.owned[:len(c.owned)-1]
			continue
		}
		child.Destroy()
	}

	// 3. Leave the owner's set and release the registry ID.
	if c.ownerID != "" {
		if owner, ok := c.scene.registry.Lookup(c.ownerID); ok {
			owner.Base().dropOwned(c.id)
		}
		c.ownerID = ""
	}
	c.scene.registry.unregister(c.self)

	// 4. Clear internal state. Snapshot the destroyed-event subscribers
	// first: they are the only delivery that survives teardown, and it is
	// what attachment re-linking hangs off.
	var last []*subscription
	if st := c.events[EventDestroyed]; st != nil {
		last = append(last, st.subs...)
	}
	c.events = nil
	c.attachments = nil
	c.updateScheduled = false
	c.OnUpdate = nil

	// 5. Terminal transition, then the terminal event.
	c.destroyed = true
	for _, sub := range last {
		if sub.fn != nil {
			sub.fn(c.self)
		}
	}
}

// dropOwned removes id from the owned set.
func (c *Component) dropOwned(id string) {
	for i, oid := range c.owned {
		if oid == id {
			copy(c.owned[i:], c.owned[i+1:])
			c.owned = c.owned[:len(c.owned)-1]
			return
		}
	}
}

// OwnedCount returns the number of live components owned by this one.
func (c *Component) OwnedCount() int { return len(c.owned) }

// RequestUpdate schedules OnUpdate. Repeated requests within one tick
// coalesce into a single call. Priority 0 runs the hook synchronously;
// any other priority defers it to the scene's task queue. The scheduled
// flag is cleared before the hook runs, so a hook that requests another
// update schedules a fresh deferred call instead of re-entering.
func (c *Component) RequestUpdate(priority int) {
	if c.destroyed || c.updateScheduled {
		return
	}
	c.updateScheduled = true
	if priority == 0 {
		c.runUpdate()
		return
	}
	c.scene.ScheduleDeferred(c.runUpdate)
}

func (c *Component) runUpdate() {
	if c.destroyed {
		return
	}
	c.updateScheduled = false
	if c.OnUpdate != nil {
		c.OnUpdate()
	}
}

// UpdateScheduled reports whether an update is pending.
func (c *Component) UpdateScheduled() bool { return c.updateScheduled }

// --- Logging ---

// Logf reports an informational message through the scene's logging sink and
// republishes it as a log event on the scene.
func (c *Component) Logf(format string, args ...any) {
	c.scene.publishLog(EventLog, c.message("LOG", format, args))
}

// Warnf reports a recoverable problem through the scene's logging sink and
// republishes it as a warn event on the scene.
func (c *Component) Warnf(format string, args ...any) {
	c.scene.publishLog(EventWarn, c.message("WARN", format, args))
}

// Errorf reports an error through the scene's logging sink and republishes
// it as an error event on the scene.
func (c *Component) Errorf(format string, args ...any) {
	c.scene.publishLog(EventError, c.message("ERROR", format, args))
}

func (c *Component) message(level, format string, args []any) string {
	return fmt.Sprintf("[%s] [%s %s]: %s", level, c.typ, c.id, fmt.Sprintf(format, args...))
}
