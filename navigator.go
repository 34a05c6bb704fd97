package vantage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flightAnim holds the active fly-to tweens for the camera eye and look
// points, one tween per axis.
type flightAnim struct {
	eye  [3]*gween.Tween
	look [3]*gween.Tween
}

// CameraFlight animates a camera between viewpoints. Create one per camera
// and call Update once per tick with the frame delta time.
type CameraFlight struct {
	cam  *Camera
	anim *flightAnim

	// OnArrived is invoked once when a flight completes. Nil by default.
	OnArrived func()
}

// NewCameraFlight creates a flight controller for cam.
func NewCameraFlight(cam *Camera) *CameraFlight {
	if cam == nil {
		panic("vantage: camera flight constructed with nil camera")
	}
	return &CameraFlight{cam: cam}
}

// FlyTo starts an eased flight from the camera's current viewpoint to the
// given eye and look points over duration seconds. A flight already in
// progress is replaced.
func (f *CameraFlight) FlyTo(eye, look Vec3, duration float32) {
	if duration <= 0 {
		f.JumpTo(eye, look)
		return
	}
	fromEye := f.cam.Eye()
	fromLook := f.cam.Look()
	fn := ease.OutCubic
	f.anim = &flightAnim{
		eye: [3]*gween.Tween{
			gween.New(fromEye.X, eye.X, duration, fn),
			gween.New(fromEye.Y, eye.Y, duration, fn),
			gween.New(fromEye.Z, eye.Z, duration, fn),
		},
		look: [3]*gween.Tween{
			gween.New(fromLook.X, look.X, duration, fn),
			gween.New(fromLook.Y, look.Y, duration, fn),
			gween.New(fromLook.Z, look.Z, duration, fn),
		},
	}
}

// JumpTo moves the camera immediately, cancelling any flight in progress.
func (f *CameraFlight) JumpTo(eye, look Vec3) {
	f.anim = nil
	f.cam.SetEye(eye)
	f.cam.SetLook(look)
}

// Flying reports whether a flight is in progress.
func (f *CameraFlight) Flying() bool { return f.anim != nil }

// Update advances the flight by dt seconds, moving the camera. Invokes
// OnArrived when the flight completes. No-op when no flight is active.
func (f *CameraFlight) Update(dt float32) {
	a := f.anim
	if a == nil {
		return
	}

	ex, doneE := a.eye[0].Update(dt)
	ey, _ := a.eye[1].Update(dt)
	ez, _ := a.eye[2].Update(dt)
	lx, _ := a.look[0].Update(dt)
	ly, _ := a.look[1].Update(dt)
	lz, _ := a.look[2].Update(dt)

	f.cam.SetEye(Vec3{ex, ey, ez})
	f.cam.SetLook(Vec3{lx, ly, lz})

	if doneE {
		f.anim = nil
		if f.OnArrived != nil {
			f.OnArrived()
		}
	}
}
