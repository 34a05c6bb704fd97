package vantage

// TypeMesh is the Mesh component type tag.
const TypeMesh = "Mesh"

// MeshConfig configures a Mesh. Slot IDs are optional; slots can also be
// filled after construction with the Set*/Create* methods.
type MeshConfig struct {
	ID          string
	GeometryID  string
	MaterialID  string
	TransformID string
	Unpickable  bool // zero value keeps meshes pickable by default
	Hidden      bool // zero value keeps meshes visible by default
}

// ComponentType returns the Mesh type tag.
func (MeshConfig) ComponentType() string { return TypeMesh }

// Mesh is a renderable, pickable scene object: geometry for shape, material
// for appearance, transform for placement, each held in a named attachment
// slot. Attaching to a slot fires an event named after it ("geometry",
// "material", "transform") with the attached component as payload; when an
// attached component is destroyed the slot re-links to empty and the same
// event fires with nil.
//
// Slots filled with Set* methods attach existing components and never
// destroy them; slots filled with Create* methods construct the component
// from a config and destroy it when the mesh is destroyed or the slot is
// replaced.
type Mesh struct {
	Component

	// Pickable excludes the mesh from pick queries when false.
	Pickable bool
	// Visible excludes the mesh from rendering and picking when false.
	Visible bool

	geometry  *Geometry
	material  *Material
	transform *Transform
}

// NewMesh creates a mesh registered in scene.
func NewMesh(scene *Scene, owner Entity, cfg MeshConfig) *Mesh {
	m := &Mesh{Pickable: !cfg.Unpickable, Visible: !cfg.Hidden}
	m.initComponent(scene, owner, m, TypeMesh, cfg.ID)

	// Typed slot pointers track the slot events, including nil re-links.
	m.On(SlotGeometry, func(v any) {
		m.geometry, _ = v.(*Geometry)
	})
	m.On(SlotMaterial, func(v any) {
		m.material, _ = v.(*Material)
	})
	m.On(SlotTransform, func(v any) {
		m.transform, _ = v.(*Transform)
	})

	if cfg.GeometryID != "" {
		m.attach(attachOpts{name: SlotGeometry, typ: TypeGeometry, id: cfg.GeometryID})
	}
	if cfg.MaterialID != "" {
		m.attach(attachOpts{name: SlotMaterial, typ: TypeMaterial, id: cfg.MaterialID})
	}
	if cfg.TransformID != "" {
		m.attach(attachOpts{name: SlotTransform, typ: TypeTransform, id: cfg.TransformID})
	}
	return m
}

// Geometry returns the attached geometry, or nil.
func (m *Mesh) Geometry() *Geometry { return m.geometry }

// Material returns the attached material, or nil.
func (m *Mesh) Material() *Material { return m.material }

// Transform returns the attached transform, or nil.
func (m *Mesh) Transform() *Transform { return m.transform }

// SetGeometry attaches an existing geometry. Its lifecycle stays with its
// creator. Passing nil clears the slot.
func (m *Mesh) SetGeometry(g *Geometry) {
	var e Entity
	if g != nil {
		e = g
	}
	m.attach(attachOpts{name: SlotGeometry, typ: TypeGeometry, comp: e})
}

// SetGeometryID attaches the geometry with the given registry ID.
func (m *Mesh) SetGeometryID(id string) {
	m.attach(attachOpts{name: SlotGeometry, typ: TypeGeometry, id: id})
}

// CreateGeometry constructs a geometry from cfg, attaches it, and manages
// its lifecycle: it is destroyed when the mesh is destroyed or the slot is
// replaced. Returns nil if construction or validation failed.
func (m *Mesh) CreateGeometry(cfg GeometryConfig) *Geometry {
	e := m.attach(attachOpts{name: SlotGeometry, typ: TypeGeometry, cfg: cfg})
	g, _ := e.(*Geometry)
	return g
}

// SetMaterial attaches an existing material. Its lifecycle stays with its
// creator. Passing nil clears the slot.
func (m *Mesh) SetMaterial(mat *Material) {
	var e Entity
	if mat != nil {
		e = mat
	}
	m.attach(attachOpts{name: SlotMaterial, typ: TypeMaterial, comp: e})
}

// SetMaterialID attaches the material with the given registry ID.
func (m *Mesh) SetMaterialID(id string) {
	m.attach(attachOpts{name: SlotMaterial, typ: TypeMaterial, id: id})
}

// CreateMaterial constructs a material from cfg, attaches it, and manages
// its lifecycle. Returns nil if construction or validation failed.
func (m *Mesh) CreateMaterial(cfg MaterialConfig) *Material {
	e := m.attach(attachOpts{name: SlotMaterial, typ: TypeMaterial, cfg: cfg})
	mat, _ := e.(*Material)
	return mat
}

// SetTransform attaches an existing transform. Passing nil clears the slot.
func (m *Mesh) SetTransform(t *Transform) {
	var e Entity
	if t != nil {
		e = t
	}
	m.attach(attachOpts{name: SlotTransform, typ: TypeTransform, comp: e})
}

// CreateTransform constructs a transform from cfg, attaches it, and manages
// its lifecycle. Returns nil if construction or validation failed.
func (m *Mesh) CreateTransform(cfg TransformConfig) *Transform {
	e := m.attach(attachOpts{name: SlotTransform, typ: TypeTransform, cfg: cfg})
	t, _ := e.(*Transform)
	return t
}

// WorldMatrix returns the mesh's world matrix, or identity when no
// transform is attached.
func (m *Mesh) WorldMatrix() Mat4 {
	if m.transform == nil {
		return Identity4
	}
	return m.transform.WorldMatrix()
}

func init() {
	RegisterType(TypeMesh, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewMesh(scene, owner, cfg.(MeshConfig))
	})
}
