package vantage

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the default material base color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2i is an integer canvas-space coordinate. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Vec2i struct {
	X, Y int
}

// SnapType selects what a snapped pick snaps to.
type SnapType uint8

// Snap target kinds.
const (
	SnapVertex SnapType = iota // snap to the nearest projected vertex
	SnapEdge                   // snap to the nearest point on a projected edge
)

// String returns the settings-file name of the snap type.
func (t SnapType) String() string {
	if t == SnapEdge {
		return "edge"
	}
	return "vertex"
}

// Primitive selects how geometry indices are interpreted.
type Primitive uint8

// Geometry primitive kinds.
const (
	Triangles Primitive = iota // indices form triangles (3 per face)
	Lines                      // indices form line segments (2 per segment)
	Points                     // indices address individual points
)

// Well-known event names fired on component buses. Any string is a valid
// event name; these are the ones the engine itself fires.
const (
	EventDirty     = "dirty"     // dependent state must be recomputed
	EventDestroyed = "destroyed" // terminal event, payload is the component
	EventTicked    = "ticked"    // fired on the scene after each Tick

	// Log events, fired on the scene with the formatted message as payload.
	EventLog   = "log"
	EventWarn  = "warn"
	EventError = "error"

	// Hover events, fired on a PickController.
	EventHoverEnter   = "hoverEnter"   // payload *PickResult
	EventHoverOut     = "hoverOut"     // payload Entity (the one left)
	EventHover        = "hover"        // payload *PickResult
	EventHoverSurface = "hoverSurface" // payload *PickResult
	EventHoverOff     = "hoverOff"     // payload Vec2i (cursor position)
)

// Well-known attachment slot names. Attaching to a slot fires an event of
// the same name with the attached component (or nil) as payload.
const (
	SlotMaterial  = "material"
	SlotGeometry  = "geometry"
	SlotTransform = "transform"
	SlotParent    = "parent"
)
