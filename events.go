package vantage

// Sub is an opaque handle to an active event subscription. The zero value is
// invalid and safe to pass to Off (which ignores it).
type Sub struct {
	event string
	id    uint32
}

// Valid reports whether the handle refers to a subscription that existed at
// creation time. It does not track later removal.
func (s Sub) Valid() bool { return s.id != 0 }

// subscription is one registered callback. fn is nilled out on removal so
// that an in-flight Fire holding a snapshot skips it.
type subscription struct {
	id uint32
	fn func(value any)
}

// eventState is the per-event-name bus state: the retained last payload for
// replay-on-subscribe, plus the live subscriptions in registration order.
type eventState struct {
	retained    any
	hasRetained bool
	subs        []*subscription
}

func (c *Component) eventState(event string) *eventState {
	st := c.events[event]
	if st == nil {
		st = &eventState{}
		if c.events == nil {
			c.events = make(map[string]*eventState)
		}
		c.events[event] = st
	}
	return st
}

// Fire delivers value to every current subscriber of event, synchronously
// and in subscription order, and retains value so that a later On replays
// it. Use FireForget to skip retention.
//
// Re-entrant fires (callbacks that fire events on the same component) are
// allowed up to the configured depth; beyond it the innermost fire is
// dropped and reported through the logging sink.
func (c *Component) Fire(event string, value any) {
	c.fire(event, value, false)
}

// FireForget delivers value like Fire but does not retain it, so later
// subscribers see no replay.
func (c *Component) FireForget(event string, value any) {
	c.fire(event, value, true)
}

func (c *Component) fire(event string, value any, forget bool) {
	if c.destroyed {
		return
	}
	maxDepth := DefaultMaxFireDepth
	if c.scene != nil {
		maxDepth = c.scene.settings.Events.MaxFireDepth
	}
	if c.fireDepth >= maxDepth {
		// Report through the sink directly. Republishing as an error event
		// would land back on this bus when c is the scene, re-entering the
		// guard while still over depth.
		if c.scene != nil {
			c.scene.logger.Error(c.message("ERROR", "event %q dropped: delivery depth exceeds %d", []any{event, maxDepth}))
		}
		return
	}

	st := c.eventState(event)
	if !forget {
		st.retained = value
		st.hasRetained = true
	}
	if len(st.subs) == 0 {
		return
	}

	// Snapshot the subscriber list: callbacks may subscribe or unsubscribe
	// while we deliver. New subscribers do not see this fire; removed ones
	// are skipped via the nil fn check.
	snapshot := make([]*subscription, len(st.subs))
	copy(snapshot, st.subs)

	c.fireDepth++
	for _, sub := range snapshot {
		if sub.fn != nil {
			sub.fn(value)
		}
	}
	c.fireDepth--
}

// On subscribes callback to event and returns a removal handle. If the event
// has already fired (without forget semantics), callback is invoked once,
// synchronously, with the retained payload before On returns.
//
// Subscribing to a destroyed component is a no-op; the returned handle is
// invalid.
func (c *Component) On(event string, callback func(value any)) Sub {
	if globalDebug {
		debugCheckDestroyed(c, "On")
	}
	if c.destroyed {
		c.Warnf("On(%q) ignored: component is destroyed", event)
		return Sub{}
	}
	c.nextSubID++
	sub := &subscription{id: c.nextSubID, fn: callback}
	st := c.eventState(event)
	st.subs = append(st.subs, sub)
	if st.hasRetained {
		callback(st.retained)
	}
	return Sub{event: event, id: sub.id}
}

// Once subscribes callback for a single delivery. The subscription is
// removed before callback runs, so a fire from within the callback does not
// re-enter it. A retained payload counts as the single delivery.
func (c *Component) Once(event string, callback func(value any)) Sub {
	var handle Sub
	fired := false
	handle = c.On(event, func(value any) {
		// Replay happens before On returns the handle; flag covers that case.
		fired = true
		c.Off(handle)
		callback(value)
	})
	if fired {
		c.Off(handle)
		return Sub{}
	}
	return handle
}

// Off removes the subscription for the given handle. Unknown, zero, or
// already-removed handles are ignored.
func (c *Component) Off(handle Sub) {
	if !handle.Valid() || c.destroyed {
		return
	}
	st := c.events[handle.event]
	if st == nil {
		return
	}
	for i, sub := range st.subs {
		if sub.id == handle.id {
			sub.fn = nil
			copy(st.subs[i:], st.subs[i+1:])
			st.subs[len(st.subs)-1] = nil
			st.subs = st.subs[:len(st.subs)-1]
			return
		}
	}
}

// HasSubs reports whether at least one active subscription exists for event.
func (c *Component) HasSubs(event string) bool {
	st := c.events[event]
	return st != nil && len(st.subs) > 0
}
