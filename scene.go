package vantage

// Scene is the top-level object that owns the component registry, the
// deferred task queue, the logging sink, and the engine settings. A Scene is
// itself a component (type tag "Scene", id "scene"), so application code can
// subscribe to scene-level events: log, warn, error, and ticked.
//
// All scene and component state is confined to one logical thread of
// execution; nothing here locks.
type Scene struct {
	Component

	registry *EntityRegistry
	settings Settings
	logger   Logger
	debug    bool

	tasks   []func()
	drained []func() // reused buffer for the tick snapshot
}

// NewScene creates a scene with default settings.
func NewScene() *Scene {
	return NewSceneWithSettings(DefaultSettings())
}

// NewSceneWithSettings creates a scene with the given settings. Zero-valued
// settings fields fall back to defaults.
func NewSceneWithSettings(settings Settings) *Scene {
	s := &Scene{
		registry: newEntityRegistry(),
		settings: settings.normalized(),
		logger:   newNopLogger(),
	}
	s.initComponent(s, nil, s, "Scene", "scene")
	if settings.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Registry returns the scene's component registry.
func (s *Scene) Registry() *EntityRegistry { return s.registry }

// Settings returns the scene's effective settings.
func (s *Scene) Settings() Settings { return s.settings }

// SetLogger replaces the logging sink. By default the scene logs nothing.
// Pass nil to restore the silent default.
func (s *Scene) SetLogger(l Logger) {
	if l == nil {
		l = newNopLogger()
	}
	s.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, operations on
// destroyed components panic with a descriptive message and structural
// warnings (deep ownership chains) are reported.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that
// component operations without a scene pointer in hand can check it cheaply.
// Only valid with a single Scene; multiple Scenes with differing debug modes
// reflect whichever called SetDebugMode last.
var globalDebug bool

// ScheduleDeferred enqueues fn to run on the next Tick. Tasks run in enqueue
// order; a task that schedules another task runs the new one on the
// following tick, not the current one.
func (s *Scene) ScheduleDeferred(fn func()) {
	s.tasks = append(s.tasks, fn)
}

// PendingTasks returns the number of tasks queued for the next tick.
func (s *Scene) PendingTasks() int { return len(s.tasks) }

// Tick runs one frame of deferred work: every task that was queued before
// the tick started, then the ticked event.
func (s *Scene) Tick() {
	s.drained = append(s.drained[:0], s.tasks...)
	s.tasks = s.tasks[:0]
	for i, fn := range s.drained {
		s.drained[i] = nil
		fn()
	}
	s.FireForget(EventTicked, s)
}

// publishLog sends a formatted message to the logging sink and republishes
// it as a scene event. Log events use forget semantics: a late subscriber
// should not replay a stale message.
func (s *Scene) publishLog(event, msg string) {
	switch event {
	case EventWarn:
		s.logger.Warn(msg)
	case EventError:
		s.logger.Error(msg)
	default:
		s.logger.Log(msg)
	}
	s.FireForget(event, msg)
}

// Destroy tears down every component in the scene, then the scene itself.
func (s *Scene) Destroy() {
	if s.Destroyed() {
		return
	}
	// Components destroy transitively; re-query the registry until only the
	// scene itself remains.
	for {
		var next Entity
		for _, e := range s.registry.components {
			if e.ID() != s.ID() {
				next = e
				break
			}
		}
		if next == nil {
			break
		}
		next.Destroy()
	}
	s.Component.Destroy()
}
