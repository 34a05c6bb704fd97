package vantage

// syntheticPickEvent is a single injected pick request. Canvas coordinates
// are used, matching what real input handlers schedule.
type syntheticPickEvent struct {
	pos     Vec2i
	surface bool
}

// InjectPick queues an entity pick at the given canvas coordinates. The
// event is consumed by the next Update call, exactly like a pick scheduled
// by a real input handler.
func (p *PickController) InjectPick(x, y int) {
	p.injectQueue = append(p.injectQueue, syntheticPickEvent{pos: Vec2i{x, y}})
}

// InjectSurfacePick queues a surface pick at the given canvas coordinates.
func (p *PickController) InjectSurfacePick(x, y int) {
	p.injectQueue = append(p.injectQueue, syntheticPickEvent{pos: Vec2i{x, y}, surface: true})
}

// InjectSweep queues surface picks linearly interpolated from (fromX, fromY)
// to (toX, toY) over the given number of ticks, simulating a cursor sweep.
// Minimum ticks is 2 (start + end).
func (p *PickController) InjectSweep(fromX, fromY, toX, toY, ticks int) {
	if ticks < 2 {
		ticks = 2
	}
	for i := 0; i < ticks; i++ {
		t := float64(i) / float64(ticks-1)
		x := fromX + int(float64(toX-fromX)*t)
		y := fromY + int(float64(toY-fromY)*t)
		p.InjectSurfacePick(x, y)
	}
}

// consumeInjected pops one event from the inject queue and schedules the
// corresponding pick. Returns true if an event was consumed.
func (p *PickController) consumeInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	if evt.surface {
		p.ScheduleSurfacePick(evt.pos)
	} else {
		p.SchedulePick(evt.pos)
	}
	return true
}
