package vantage

import "sort"

// attachment is one occupied named slot: the attached component, whether
// this slot owns its lifecycle, and the subscriptions to tear down on
// detach.
type attachment struct {
	comp         Entity
	managed      bool
	noDirty      bool
	requiredType string
	dirtySub     Sub
	destroyedSub Sub
}

// attachOpts drives the attachment procedure. Exactly one of comp, id, or
// cfg names the candidate; all nil/empty clears the slot.
type attachOpts struct {
	name string
	typ  string // required type tag, "" accepts any

	comp Entity          // attach an existing component
	id   string          // resolve against the scene registry
	cfg  ComponentConfig // construct a new component and manage its lifecycle

	noDirty bool // suppress dirty forwarding and the post-attach dirty fire
}

// attach runs the attachment procedure for a named slot. On success it
// returns the resolved component (nil when the slot was cleared) and fires
// an event named after the slot with that component as payload. Validation
// failures are reported through the logging sink and leave the slot
// unchanged, returning nil.
//
// Concrete component types wrap attach in typed methods (Mesh.SetMaterial,
// Transform.SetParent, ...); whether the slot manages the attached
// component's lifecycle is explicit in which entry point runs, never
// inferred from the argument.
func (c *Component) attach(o attachOpts) Entity {
	if globalDebug {
		debugCheckDestroyed(c, "attach")
	}
	if c.destroyed {
		c.Warnf("attach %q ignored: component is destroyed", o.name)
		return nil
	}
	if o.name == "" {
		c.Errorf("attach failed: empty slot name")
		return nil
	}

	var cand Entity
	managed := false
	switch {
	case o.cfg != nil:
		cand = newByConfig(c.scene, o.cfg)
		if cand == nil {
			c.Errorf("attach %q failed: no factory for component type %q", o.name, o.cfg.ComponentType())
			return nil
		}
		managed = true
	case o.id != "":
		e, ok := c.scene.registry.Lookup(o.id)
		if !ok {
			c.Errorf("attach %q failed: no component with id %q", o.name, o.id)
			return nil
		}
		cand = e
	case o.comp != nil:
		cand = o.comp
	}

	if cand != nil {
		cb := cand.Base()
		if cb.scene != c.scene {
			c.Errorf("attach %q failed: component %q belongs to a different scene", o.name, cand.ID())
			if managed {
				cand.Destroy()
			}
			return nil
		}
		if cb.destroyed {
			c.Errorf("attach %q failed: component %q is destroyed", o.name, cand.ID())
			return nil
		}
		if o.typ != "" && cand.Type() != o.typ {
			c.Errorf("attach %q failed: expected type %q, got %q (id %q)",
				o.name, o.typ, cand.Type(), cand.ID())
			if managed {
				cand.Destroy()
			}
			return nil
		}
	}

	prev := c.attachments[o.name]
	if prev != nil && cand != nil && prev.comp == cand {
		c.Warnf("attach %q ignored: component %q already attached", o.name, cand.ID())
		return cand
	}

	// Detach-before-attach: tear down the previous occupant, destroying it
	// if this slot managed its lifecycle.
	c.teardownSlot(o.name)

	if cand == nil {
		c.fireSlot(o.name, nil, o.noDirty)
		return nil
	}

	a := &attachment{
		comp:         cand,
		managed:      managed,
		noDirty:      o.noDirty,
		requiredType: o.typ,
	}
	cb := cand.Base()

	// Re-link on destroy: when the attached component dies first, re-run
	// the procedure with the slot cleared so this component falls back to
	// an empty slot instead of a dangling reference.
	name := o.name
	a.destroyedSub = cb.Once(EventDestroyed, func(any) {
		c.relinkSlot(name)
	})
	if !o.noDirty {
		a.dirtySub = cb.On(EventDirty, func(any) {
			c.Fire(EventDirty, c.self)
		})
	}

	if c.attachments == nil {
		c.attachments = make(map[string]*attachment)
	}
	c.attachments[o.name] = a

	c.fireSlot(o.name, cand, o.noDirty)
	return cand
}

// fireSlot fires the slot-named event (always) and the dirty event (unless
// suppressed) after a slot change.
func (c *Component) fireSlot(name string, comp Entity, noDirty bool) {
	if comp == nil {
		c.Fire(name, nil)
	} else {
		c.Fire(name, comp)
	}
	if !noDirty {
		c.Fire(EventDirty, c.self)
	}
}

// teardownSlot unsubscribes from the slot's occupant and destroys it if
// managed. Fires nothing; callers re-run attach or are tearing the whole
// component down.
func (c *Component) teardownSlot(name string) {
	a := c.attachments[name]
	if a == nil {
		return
	}
	delete(c.attachments, name)
	cb := a.comp.Base()
	cb.Off(a.destroyedSub)
	cb.Off(a.dirtySub)
	if a.managed {
		a.comp.Destroy()
	}
}

// relinkSlot handles the attached component's destruction: the occupant is
// already gone, so drop the bookkeeping and re-run the procedure with the
// slot cleared.
func (c *Component) relinkSlot(name string) {
	a := c.attachments[name]
	if a == nil || c.destroyed {
		return
	}
	delete(c.attachments, name)
	c.attach(attachOpts{name: name, typ: a.requiredType, noDirty: a.noDirty})
}

// Attached returns the component occupying the named slot, or nil.
func (c *Component) Attached(name string) Entity {
	a := c.attachments[name]
	if a == nil {
		return nil
	}
	return a.comp
}

// AttachmentManaged reports whether the named slot owns its occupant's
// lifecycle.
func (c *Component) AttachmentManaged(name string) bool {
	a := c.attachments[name]
	return a != nil && a.managed
}

// attachmentNames returns the occupied slot names in sorted order for
// deterministic teardown.
func (c *Component) attachmentNames() []string {
	if len(c.attachments) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.attachments))
	for name := range c.attachments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
