package vantage

// Light component type tags.
const (
	TypePointLight = "PointLight"
	TypeDirLight   = "DirLight"
)

// PointLightConfig configures a PointLight. A zero Color means white and a
// zero Intensity means 1.
type PointLightConfig struct {
	ID        string
	Position  Vec3
	Color     Color
	Intensity float32
}

// ComponentType returns the PointLight type tag.
func (PointLightConfig) ComponentType() string { return TypePointLight }

// PointLight emits light from a world-space position.
type PointLight struct {
	Component

	position  Vec3
	color     Color
	intensity float32
}

// NewPointLight creates a point light registered in scene.
func NewPointLight(scene *Scene, owner Entity, cfg PointLightConfig) *PointLight {
	l := &PointLight{position: cfg.Position, color: cfg.Color, intensity: cfg.Intensity}
	if l.color.A == 0 {
		l.color = ColorWhite
	}
	if l.intensity == 0 {
		l.intensity = 1
	}
	l.initComponent(scene, owner, l, TypePointLight, cfg.ID)
	return l
}

// Position returns the light's world position.
func (l *PointLight) Position() Vec3 { return l.position }

// SetPosition moves the light and fires dirty.
func (l *PointLight) SetPosition(p Vec3) {
	if l.position == p {
		return
	}
	l.position = p
	l.Fire(EventDirty, l)
}

// Color returns the light color.
func (l *PointLight) Color() Color { return l.color }

// Intensity returns the light intensity.
func (l *PointLight) Intensity() float32 { return l.intensity }

// DirLightConfig configures a DirLight. A zero Color means white and a zero
// Intensity means 1.
type DirLightConfig struct {
	ID        string
	Direction Vec3
	Color     Color
	Intensity float32
}

// ComponentType returns the DirLight type tag.
func (DirLightConfig) ComponentType() string { return TypeDirLight }

// DirLight emits parallel light along a world-space direction.
type DirLight struct {
	Component

	direction Vec3
	color     Color
	intensity float32
}

// NewDirLight creates a directional light registered in scene.
func NewDirLight(scene *Scene, owner Entity, cfg DirLightConfig) *DirLight {
	l := &DirLight{direction: cfg.Direction.Normalized(), color: cfg.Color, intensity: cfg.Intensity}
	if l.direction == (Vec3{}) {
		l.direction = Vec3{0, -1, 0}
	}
	if l.color.A == 0 {
		l.color = ColorWhite
	}
	if l.intensity == 0 {
		l.intensity = 1
	}
	l.initComponent(scene, owner, l, TypeDirLight, cfg.ID)
	return l
}

// Direction returns the normalized light direction.
func (l *DirLight) Direction() Vec3 { return l.direction }

// SetDirection sets the light direction and fires dirty.
func (l *DirLight) SetDirection(d Vec3) {
	d = d.Normalized()
	if l.direction == d {
		return
	}
	l.direction = d
	l.Fire(EventDirty, l)
}

// Color returns the light color.
func (l *DirLight) Color() Color { return l.color }

// Intensity returns the light intensity.
func (l *DirLight) Intensity() float32 { return l.intensity }

func init() {
	RegisterType(TypePointLight, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewPointLight(scene, owner, cfg.(PointLightConfig))
	})
	RegisterType(TypeDirLight, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewDirLight(scene, owner, cfg.(DirLightConfig))
	})
}
