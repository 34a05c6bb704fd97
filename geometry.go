package vantage

// TypeGeometry is the Geometry component type tag.
const TypeGeometry = "Geometry"

// GeometryConfig configures a Geometry. Positions are packed XYZ triples;
// Indices address vertices and are interpreted per Primitive.
type GeometryConfig struct {
	ID        string
	Primitive Primitive
	Positions []float32
	Indices   []uint32
}

// ComponentType returns the Geometry type tag.
func (GeometryConfig) ComponentType() string { return TypeGeometry }

// Geometry holds vertex positions and indices for meshes. The engine treats
// the arrays as immutable after construction; replace them with SetArrays to
// mutate (fires dirty).
type Geometry struct {
	Component

	primitive Primitive
	positions []float32
	indices   []uint32
}

// NewGeometry creates a geometry registered in scene. Panics if the
// positions array length is not a multiple of 3; a malformed vertex array is
// a structural error, not a recoverable one.
func NewGeometry(scene *Scene, owner Entity, cfg GeometryConfig) *Geometry {
	if len(cfg.Positions)%3 != 0 {
		panic("vantage: geometry positions length must be a multiple of 3")
	}
	g := &Geometry{
		primitive: cfg.Primitive,
		positions: cfg.Positions,
		indices:   cfg.Indices,
	}
	g.initComponent(scene, owner, g, TypeGeometry, cfg.ID)
	return g
}

// Primitive returns how indices are interpreted.
func (g *Geometry) Primitive() Primitive { return g.primitive }

// Positions returns the packed XYZ vertex array. MUST NOT be mutated by the
// caller.
func (g *Geometry) Positions() []float32 { return g.positions }

// Indices returns the index array. MUST NOT be mutated by the caller.
func (g *Geometry) Indices() []uint32 { return g.indices }

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int { return len(g.positions) / 3 }

// VertexAt returns vertex i as a Vec3 in local space.
func (g *Geometry) VertexAt(i int) Vec3 {
	return Vec3{g.positions[i*3], g.positions[i*3+1], g.positions[i*3+2]}
}

// TriangleCount returns the number of triangles, or 0 for non-triangle
// primitives.
func (g *Geometry) TriangleCount() int {
	if g.primitive != Triangles {
		return 0
	}
	return len(g.indices) / 3
}

// SetArrays replaces the vertex and index arrays and fires dirty.
func (g *Geometry) SetArrays(positions []float32, indices []uint32) {
	if len(positions)%3 != 0 {
		g.Errorf("SetArrays ignored: positions length %d is not a multiple of 3", len(positions))
		return
	}
	g.positions = positions
	g.indices = indices
	g.Fire(EventDirty, g)
}

func init() {
	RegisterType(TypeGeometry, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewGeometry(scene, owner, cfg.(GeometryConfig))
	})
}
