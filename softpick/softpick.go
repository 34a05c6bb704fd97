// Package softpick implements a software render/pick backend: pick queries
// resolve against the scene's meshes by projecting triangles through the
// scene camera and testing in canvas space. It serves headless use and
// tests; GPU renderers implement the same vantage.RenderBackend interface
// with color-ID readback instead.
package softpick

import (
	"github.com/chewxy/math32"

	"github.com/vantage3d/vantage"
)

// Backend picks against every pickable, visible triangle mesh registered in
// the scene, from the given camera's viewpoint.
type Backend struct {
	scene  *vantage.Scene
	camera *vantage.Camera
	width  int
	height int
}

// New creates a backend picking through camera onto a width x height canvas.
func New(scene *vantage.Scene, camera *vantage.Camera, width, height int) *Backend {
	if scene == nil || camera == nil {
		panic("softpick: backend requires a scene and a camera")
	}
	if width <= 0 || height <= 0 {
		panic("softpick: backend requires a positive canvas size")
	}
	return &Backend{scene: scene, camera: camera, width: width, height: height}
}

// Resize updates the canvas size picks are resolved against.
func (b *Backend) Resize(width, height int) {
	b.width = width
	b.height = height
}

// hit is one triangle intersection candidate.
type hit struct {
	mesh     *vantage.Mesh
	depth    float32
	worldPos vantage.Vec3
}

// Pick resolves the front-most mesh under the canvas position. When
// opts.Surface is set the result carries the world-space surface point,
// recovered by barycentric interpolation of the hit triangle.
func (b *Backend) Pick(opts vantage.PickOptions) (vantage.PickResult, bool) {
	viewProj := b.camera.ViewProj(b.width, b.height)
	px := float32(opts.CanvasPos.X)
	py := float32(opts.CanvasPos.Y)

	var best hit
	found := false

	b.eachMesh(func(m *vantage.Mesh) {
		g := m.Geometry()
		if g.Primitive() != vantage.Triangles {
			return
		}
		world := m.WorldMatrix()
		indices := g.Indices()
		for t := 0; t < g.TriangleCount(); t++ {
			w0 := transformVertex(world, g.VertexAt(int(indices[t*3])))
			w1 := transformVertex(world, g.VertexAt(int(indices[t*3+1])))
			w2 := transformVertex(world, g.VertexAt(int(indices[t*3+2])))

			x0, y0, d0, ok0 := vantage.ProjectPoint(viewProj, w0, b.width, b.height)
			x1, y1, d1, ok1 := vantage.ProjectPoint(viewProj, w1, b.width, b.height)
			x2, y2, d2, ok2 := vantage.ProjectPoint(viewProj, w2, b.width, b.height)
			if !ok0 || !ok1 || !ok2 {
				continue
			}

			u, v, w, inside := barycentric(px, py, x0, y0, x1, y1, x2, y2)
			if !inside {
				continue
			}
			depth := u*d0 + v*d1 + w*d2
			if !found || depth < best.depth {
				best = hit{
					mesh:  m,
					depth: depth,
					worldPos: vantage.Vec3{
						X: u*w0.X + v*w1.X + w*w2.X,
						Y: u*w0.Y + v*w1.Y + w*w2.Y,
						Z: u*w0.Z + v*w1.Z + w*w2.Z,
					},
				}
				found = true
			}
		}
	})

	if !found {
		return vantage.PickResult{}, false
	}
	res := vantage.PickResult{
		Entity:    best.mesh,
		CanvasPos: opts.CanvasPos,
	}
	if opts.Surface {
		res.WorldPos = best.worldPos
		res.HasWorldPos = true
	}
	return res, true
}

// SnapPick resolves the nearest vertex (or point on an edge) within the
// snap radius of the canvas position, across all pickable meshes.
func (b *Backend) SnapPick(opts vantage.SnapPickOptions) (vantage.SnapResult, bool) {
	viewProj := b.camera.ViewProj(b.width, b.height)
	px := float32(opts.CanvasPos.X)
	py := float32(opts.CanvasPos.Y)
	maxDist2 := opts.SnapRadius * opts.SnapRadius

	var bestWorld vantage.Vec3
	var bestX, bestY float32
	bestDist2 := maxDist2
	found := false

	consider := func(world vantage.Vec3) {
		x, y, _, ok := vantage.ProjectPoint(viewProj, world, b.width, b.height)
		if !ok {
			return
		}
		dx := x - px
		dy := y - py
		d2 := dx*dx + dy*dy
		if d2 <= bestDist2 {
			bestDist2 = d2
			bestWorld = world
			bestX, bestY = x, y
			found = true
		}
	}

	b.eachMesh(func(m *vantage.Mesh) {
		g := m.Geometry()
		world := m.WorldMatrix()
		if opts.SnapTarget == vantage.SnapEdge {
			b.eachEdge(g, func(i0, i1 int) {
				a := transformVertex(world, g.VertexAt(i0))
				c := transformVertex(world, g.VertexAt(i1))
				consider(closestOnSegment(viewProj, a, c, px, py, b.width, b.height))
			})
			return
		}
		for i := 0; i < g.VertexCount(); i++ {
			consider(transformVertex(world, g.VertexAt(i)))
		}
	})

	if !found {
		return vantage.SnapResult{}, false
	}
	return vantage.SnapResult{
		WorldPos:  bestWorld,
		CanvasPos: vantage.Vec2i{X: roundToInt(bestX), Y: roundToInt(bestY)},
	}, true
}

// eachMesh visits every pickable, visible mesh with geometry, in registry
// ID order.
func (b *Backend) eachMesh(fn func(*vantage.Mesh)) {
	for _, e := range b.scene.Registry().OfType(vantage.TypeMesh) {
		m := e.(*vantage.Mesh)
		if !m.Pickable || !m.Visible || m.Geometry() == nil {
			continue
		}
		fn(m)
	}
}

// eachEdge visits the index pairs forming edges of g: triangle edges for
// the Triangles primitive, segments for Lines.
func (b *Backend) eachEdge(g *vantage.Geometry, fn func(i0, i1 int)) {
	indices := g.Indices()
	switch g.Primitive() {
	case vantage.Triangles:
		for t := 0; t+2 < len(indices); t += 3 {
			fn(int(indices[t]), int(indices[t+1]))
			fn(int(indices[t+1]), int(indices[t+2]))
			fn(int(indices[t+2]), int(indices[t]))
		}
	case vantage.Lines:
		for i := 0; i+1 < len(indices); i += 2 {
			fn(int(indices[i]), int(indices[i+1]))
		}
	}
}

// closestOnSegment returns the world-space point on segment [a, c] whose
// projection is closest to the canvas position (px, py). The parameter is
// found in canvas space and applied to the world-space endpoints.
func closestOnSegment(viewProj vantage.Mat4, a, c vantage.Vec3, px, py float32, width, height int) vantage.Vec3 {
	ax, ay, _, okA := vantage.ProjectPoint(viewProj, a, width, height)
	cx, cy, _, okC := vantage.ProjectPoint(viewProj, c, width, height)
	if !okA || !okC {
		return a
	}
	ex := cx - ax
	ey := cy - ay
	len2 := ex*ex + ey*ey
	if len2 < 1e-8 {
		return a
	}
	t := ((px-ax)*ex + (py-ay)*ey) / len2
	t = math32.Max(0, math32.Min(1, t))
	return a.Lerp(c, t)
}

// transformVertex applies an affine world matrix to a local-space vertex.
func transformVertex(world vantage.Mat4, v vantage.Vec3) vantage.Vec3 {
	p, _ := world.TransformPoint(v)
	return p
}

// barycentric returns the barycentric coordinates of (px, py) in the canvas
// triangle (x0,y0)-(x1,y1)-(x2,y2) and whether the point lies inside.
// Degenerate (zero-area) triangles report outside.
func barycentric(px, py, x0, y0, x1, y1, x2, y2 float32) (u, v, w float32, inside bool) {
	area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	if area > -1e-6 && area < 1e-6 {
		return 0, 0, 0, false
	}
	inv := 1 / area
	v = ((px-x0)*(y2-y0) - (x2-x0)*(py-y0)) * inv
	w = ((x1-x0)*(py-y0) - (px-x0)*(y1-y0)) * inv
	u = 1 - v - w
	inside = u >= 0 && v >= 0 && w >= 0
	return u, v, w, inside
}

func roundToInt(f float32) int {
	return int(math32.Round(f))
}
