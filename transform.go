package vantage

// TypeTransform is the Transform component type tag.
const TypeTransform = "Transform"

// TransformConfig configures a Transform. A zero Scale means uniform 1.
type TransformConfig struct {
	ID       string
	Position Vec3
	Rotation Vec3 // XYZ euler angles in radians
	Scale    Vec3
	ParentID string // optional parent transform, resolved by ID
}

// ComponentType returns the Transform type tag.
func (TransformConfig) ComponentType() string { return TypeTransform }

// Transform places a component in world space: translate-rotate-scale plus
// an optional parent slot forming a transform hierarchy. When a parent
// transform is destroyed, the slot re-links to empty and this transform
// becomes a root again (no dangling parent reference).
type Transform struct {
	Component

	position Vec3
	rotation Vec3
	scale    Vec3

	parent *Transform

	local      Mat4
	localDirty bool
}

// NewTransform creates a transform registered in scene.
func NewTransform(scene *Scene, owner Entity, cfg TransformConfig) *Transform {
	t := &Transform{
		position:   cfg.Position,
		rotation:   cfg.Rotation,
		scale:      cfg.Scale,
		localDirty: true,
	}
	if t.scale == (Vec3{}) {
		t.scale = Vec3{1, 1, 1}
	}
	t.initComponent(scene, owner, t, TypeTransform, cfg.ID)

	// Keep the typed parent pointer in sync with the slot, including the
	// nil re-link when the parent dies.
	t.On(SlotParent, func(v any) {
		if v == nil {
			t.parent = nil
			return
		}
		t.parent = v.(*Transform)
	})

	if cfg.ParentID != "" {
		t.SetParentID(cfg.ParentID)
	}
	return t
}

// Parent returns the parent transform, or nil for a root.
func (t *Transform) Parent() *Transform { return t.parent }

// SetParent attaches an existing transform as parent. The parent's lifecycle
// is not managed by this slot. Passing nil clears the slot.
func (t *Transform) SetParent(parent *Transform) {
	var e Entity
	if parent != nil {
		e = parent
	}
	t.attach(attachOpts{name: SlotParent, typ: TypeTransform, comp: e})
}

// SetParentID attaches the transform with the given ID as parent. A missing
// ID or a non-transform component is reported through the logging sink and
// leaves the slot unchanged.
func (t *Transform) SetParentID(id string) {
	t.attach(attachOpts{name: SlotParent, typ: TypeTransform, id: id})
}

// Position returns the local translation.
func (t *Transform) Position() Vec3 { return t.position }

// SetPosition sets the local translation and fires dirty.
func (t *Transform) SetPosition(p Vec3) {
	if t.position == p {
		return
	}
	t.position = p
	t.localDirty = true
	t.Fire(EventDirty, t)
}

// Rotation returns the local XYZ euler rotation in radians.
func (t *Transform) Rotation() Vec3 { return t.rotation }

// SetRotation sets the local rotation and fires dirty.
func (t *Transform) SetRotation(r Vec3) {
	if t.rotation == r {
		return
	}
	t.rotation = r
	t.localDirty = true
	t.Fire(EventDirty, t)
}

// Scale returns the local scale.
func (t *Transform) Scale() Vec3 { return t.scale }

// SetScale sets the local scale and fires dirty.
func (t *Transform) SetScale(s Vec3) {
	if t.scale == s {
		return
	}
	t.scale = s
	t.localDirty = true
	t.Fire(EventDirty, t)
}

// LocalMatrix returns the translate * rotate * scale matrix.
func (t *Transform) LocalMatrix() Mat4 {
	if t.localDirty {
		t.local = Translation(t.position).Mul(RotationEuler(t.rotation)).Mul(Scaling(t.scale))
		t.localDirty = false
	}
	return t.local
}

// WorldMatrix returns the composed parent chain matrix. The chain is walked
// on every call; transform hierarchies here are shallow.
func (t *Transform) WorldMatrix() Mat4 {
	m := t.LocalMatrix()
	for p := t.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

func init() {
	RegisterType(TypeTransform, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewTransform(scene, owner, cfg.(TransformConfig))
	})
}
