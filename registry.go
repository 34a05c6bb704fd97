package vantage

import (
	"sort"

	"github.com/google/uuid"
)

// EntityRegistry tracks every live component in a scene: a unique-ID map and
// a per-type index. Each Scene owns exactly one registry; there is no global
// state, so independent scenes never see each other's components.
type EntityRegistry struct {
	components map[string]Entity
	types      map[string]map[string]Entity
}

func newEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		components: make(map[string]Entity),
		types:      make(map[string]map[string]Entity),
	}
}

// register stores e under requestedID, or under a generated ID when
// requestedID is empty or already taken. Returns the assigned ID and whether
// the requested ID collided with a live component.
func (r *EntityRegistry) register(e Entity, requestedID string) (id string, collided bool) {
	id = requestedID
	if id != "" {
		if _, taken := r.components[id]; taken {
			collided = true
			id = ""
		}
	}
	if id == "" {
		// UUIDs cannot collide with each other; loop only guards against a
		// caller having registered a literal UUID string as an ID.
		for {
			id = uuid.NewString()
			if _, taken := r.components[id]; !taken {
				break
			}
		}
	}
	r.components[id] = e

	typ := e.Type()
	byType := r.types[typ]
	if byType == nil {
		byType = make(map[string]Entity)
		r.types[typ] = byType
	}
	byType[id] = e
	return id, collided
}

// unregister releases e's ID. The ID may be reused by future registrations.
func (r *EntityRegistry) unregister(e Entity) {
	id := e.ID()
	delete(r.components, id)
	if byType := r.types[e.Type()]; byType != nil {
		delete(byType, id)
		if len(byType) == 0 {
			delete(r.types, e.Type())
		}
	}
}

// Lookup returns the live component with the given ID.
func (r *EntityRegistry) Lookup(id string) (Entity, bool) {
	e, ok := r.components[id]
	return e, ok
}

// OfType returns all live components with the given type tag, sorted by ID
// for deterministic iteration.
func (r *EntityRegistry) OfType(typ string) []Entity {
	byType := r.types[typ]
	if len(byType) == 0 {
		return nil
	}
	ids := make([]string, 0, len(byType))
	for id := range byType {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i] = byType[id]
	}
	return out
}

// Count returns the number of live components.
func (r *EntityRegistry) Count() int {
	return len(r.components)
}
