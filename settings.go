package vantage

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings holds engine tuning knobs. Zero values are replaced by defaults
// when a Scene is created, so a settings file only needs to name the fields
// it overrides.
type Settings struct {
	Pick   PickSettings  `toml:"pick"`
	Events EventSettings `toml:"events"`
	Debug  bool          `toml:"debug"`
}

// PickSettings tunes snapped picking.
type PickSettings struct {
	// SnapRadius is the canvas-space radius, in pixels, within which a
	// snapped pick searches for vertices or edges.
	SnapRadius float32 `toml:"snap_radius"`
	// SnapTarget is "vertex" or "edge".
	SnapTarget string `toml:"snap_target"`
}

// EventSettings tunes the per-component event bus.
type EventSettings struct {
	// MaxFireDepth bounds re-entrant event delivery. A fire that re-enters
	// beyond this depth is dropped and reported through the logging sink.
	MaxFireDepth int `toml:"max_fire_depth"`
}

// Default engine constants.
const (
	DefaultSnapRadius   = 45
	DefaultMaxFireDepth = 300
)

// DefaultSettings returns the engine defaults.
func DefaultSettings() Settings {
	return Settings{
		Pick: PickSettings{
			SnapRadius: DefaultSnapRadius,
			SnapTarget: SnapVertex.String(),
		},
		Events: EventSettings{
			MaxFireDepth: DefaultMaxFireDepth,
		},
	}
}

// LoadSettings reads a TOML settings file, with defaults for any field the
// file does not set.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return s.normalized(), nil
}

// normalized fills zero fields with defaults and validates enums.
func (s Settings) normalized() Settings {
	if s.Pick.SnapRadius <= 0 {
		s.Pick.SnapRadius = DefaultSnapRadius
	}
	if s.Pick.SnapTarget != SnapEdge.String() {
		s.Pick.SnapTarget = SnapVertex.String()
	}
	if s.Events.MaxFireDepth <= 0 {
		s.Events.MaxFireDepth = DefaultMaxFireDepth
	}
	return s
}

// snapType returns the configured snap target as a SnapType.
func (s Settings) snapType() SnapType {
	if s.Pick.SnapTarget == SnapEdge.String() {
		return SnapEdge
	}
	return SnapVertex
}
