package vantage

import "github.com/chewxy/math32"

// TypeCamera is the Camera component type tag.
const TypeCamera = "Camera"

// Default camera projection parameters.
const (
	defaultFOV  = math32.Pi / 3 // 60 degrees
	defaultNear = 0.1
	defaultFar  = 1000
)

// CameraConfig configures a Camera. Zero values fall back to eye (0,0,10)
// looking at the origin with +Y up and a 60 degree field of view.
type CameraConfig struct {
	ID   string
	Eye  Vec3
	Look Vec3
	Up   Vec3
	FOV  float32 // vertical field of view in radians
	Near float32
	Far  float32
}

// ComponentType returns the Camera type tag.
func (CameraConfig) ComponentType() string { return TypeCamera }

// Camera defines the viewpoint picks and rendering resolve against.
// Mutations fire dirty; the view matrix is recomputed lazily.
type Camera struct {
	Component

	eye  Vec3
	look Vec3
	up   Vec3
	fov  float32
	near float32
	far  float32

	view      Mat4
	viewDirty bool
}

// NewCamera creates a camera registered in scene.
func NewCamera(scene *Scene, owner Entity, cfg CameraConfig) *Camera {
	c := &Camera{
		eye:       cfg.Eye,
		look:      cfg.Look,
		up:        cfg.Up,
		fov:       cfg.FOV,
		near:      cfg.Near,
		far:       cfg.Far,
		viewDirty: true,
	}
	if c.eye == c.look {
		c.eye = Vec3{0, 0, 10}
		c.look = Vec3{}
	}
	if c.up == (Vec3{}) {
		c.up = Vec3{0, 1, 0}
	}
	if c.fov == 0 {
		c.fov = defaultFOV
	}
	if c.near == 0 {
		c.near = defaultNear
	}
	if c.far == 0 {
		c.far = defaultFar
	}
	c.initComponent(scene, owner, c, TypeCamera, cfg.ID)
	return c
}

// Eye returns the camera position.
func (c *Camera) Eye() Vec3 { return c.eye }

// Look returns the point the camera looks at.
func (c *Camera) Look() Vec3 { return c.look }

// Up returns the camera up vector.
func (c *Camera) Up() Vec3 { return c.up }

// SetEye moves the camera and fires dirty.
func (c *Camera) SetEye(eye Vec3) {
	if c.eye == eye {
		return
	}
	c.eye = eye
	c.viewDirty = true
	c.Fire(EventDirty, c)
}

// SetLook retargets the camera and fires dirty.
func (c *Camera) SetLook(look Vec3) {
	if c.look == look {
		return
	}
	c.look = look
	c.viewDirty = true
	c.Fire(EventDirty, c)
}

// SetUp sets the camera up vector and fires dirty.
func (c *Camera) SetUp(up Vec3) {
	if c.up == up {
		return
	}
	c.up = up
	c.viewDirty = true
	c.Fire(EventDirty, c)
}

// ViewMatrix returns the camera's view matrix, recomputing it if stale.
func (c *Camera) ViewMatrix() Mat4 {
	if c.viewDirty {
		c.view = LookAt(c.eye, c.look, c.up)
		c.viewDirty = false
	}
	return c.view
}

// ProjMatrix returns the perspective projection matrix for the given canvas
// aspect ratio (width / height).
func (c *Camera) ProjMatrix(aspect float32) Mat4 {
	return Perspective(c.fov, aspect, c.near, c.far)
}

// ViewProj returns projection * view for a width x height canvas.
func (c *Camera) ViewProj(width, height int) Mat4 {
	aspect := float32(width) / float32(height)
	return c.ProjMatrix(aspect).Mul(c.ViewMatrix())
}

func init() {
	RegisterType(TypeCamera, func(scene *Scene, owner Entity, cfg ComponentConfig) Entity {
		return NewCamera(scene, owner, cfg.(CameraConfig))
	})
}
