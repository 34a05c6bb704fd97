package vantage

// TypeMaterial is the Material component type tag.
const TypeMaterial = "Material"

// MaterialConfig configures a Material. A zero-valued Color (A == 0) means
// opaque white.
type MaterialConfig struct {
	ID       string
	Color    Color
	Emissive Color
}

// ComponentType returns the Material type tag.
func (MaterialConfig) ComponentType() string { return TypeMaterial }

// Material defines surface appearance for meshes. Mutations fire the dirty
// event so attached meshes recompile dependent state.
type Material struct {
	Component

	color    Color
	emissive Color
}

// NewMaterial creates a material registered in scene. If owner is non-nil,
// destroying the owner destroys the material.
func NewMaterial(scene *Scene, owner Entity, cfg MaterialConfig) *Material {
	m := &Material{color: cfg.Color, emissive: cfg.Emissive}
	if m.color.A == 0 {
		m.color = ColorWhite
	}
	m.initComponent(scene, owner, m, TypeMaterial, cfg.ID)
	return m
}

// Color returns the base color.
func (m *Material) Color() Color { return m.color }

// SetColor sets the base color and fires dirty.
func (m *Material) SetColor(c Color) {
	if m.color == c {
		return
	}
	m.color = c
	m.Fire(EventDirty, m)
}

// Emissive returns the emissive color.
func (m *Material) Emissive() Color { return m.emissive }

// SetEmissive sets the emissive color and fires dirty.
func (m *Material) SetEmissive(c Color) {
	if m.emissive == c {
		return
	}
	m.emissive = c
	m.Fire(EventDirty, m)
}

func init() {
	RegisterType(TypeMaterial, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewMaterial(scene, owner, cfg.(MaterialConfig))
	})
}
