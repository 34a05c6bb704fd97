package vantage

import "testing"

func newFlightFixture(t *testing.T) (*Camera, *CameraFlight) {
	t.Helper()
	scene := NewScene()
	cam := NewCamera(scene, nil, CameraConfig{Eye: Vec3{Z: 10}})
	return cam, NewCameraFlight(cam)
}

func TestFlyToConvergesOnTarget(t *testing.T) {
	cam, flight := newFlightFixture(t)
	target := Vec3{X: 5, Y: 3, Z: 8}
	look := Vec3{X: 1}

	flight.FlyTo(target, look, 1)
	if !flight.Flying() {
		t.Fatal("FlyTo did not start a flight")
	}

	for i := 0; i < 120; i++ {
		flight.Update(1.0 / 60.0)
	}

	if flight.Flying() {
		t.Error("flight still active after twice its duration")
	}
	vecNear(t, cam.Eye(), target, 1e-3)
	vecNear(t, cam.Look(), look, 1e-3)
}

func TestFlightMovesCameraEveryUpdate(t *testing.T) {
	cam, flight := newFlightFixture(t)
	start := cam.Eye()

	flight.FlyTo(Vec3{X: 10}, Vec3{}, 1)
	flight.Update(0.25)

	mid := cam.Eye()
	if mid == start {
		t.Error("camera did not move after a partial update")
	}
	vecNear(t, cam.Look(), Vec3{}, 1e-6)
}

func TestOnArrivedInvokedOnce(t *testing.T) {
	_, flight := newFlightFixture(t)

	arrived := 0
	flight.OnArrived = func() { arrived++ }

	flight.FlyTo(Vec3{X: 1}, Vec3{}, 0.5)
	for i := 0; i < 60; i++ {
		flight.Update(1.0 / 60.0)
	}

	if arrived != 1 {
		t.Errorf("OnArrived invoked %d times, want 1", arrived)
	}
}

func TestJumpToCancelsFlight(t *testing.T) {
	cam, flight := newFlightFixture(t)
	flight.FlyTo(Vec3{X: 100}, Vec3{}, 5)
	flight.JumpTo(Vec3{X: 1, Y: 2, Z: 3}, Vec3{Y: 1})

	if flight.Flying() {
		t.Error("flight still active after JumpTo")
	}
	vecNear(t, cam.Eye(), Vec3{X: 1, Y: 2, Z: 3}, 0)
	vecNear(t, cam.Look(), Vec3{Y: 1}, 0)
}

func TestFlyToZeroDurationJumps(t *testing.T) {
	cam, flight := newFlightFixture(t)
	flight.FlyTo(Vec3{X: 7}, Vec3{Z: 1}, 0)

	if flight.Flying() {
		t.Error("zero-duration flight left an animation active")
	}
	vecNear(t, cam.Eye(), Vec3{X: 7}, 0)
}

func TestFlyToReplacesActiveFlight(t *testing.T) {
	cam, flight := newFlightFixture(t)
	flight.FlyTo(Vec3{X: 100}, Vec3{}, 1)
	flight.Update(0.1)

	flight.FlyTo(Vec3{X: -5}, Vec3{}, 0.5)
	for i := 0; i < 60; i++ {
		flight.Update(1.0 / 60.0)
	}

	vecNear(t, cam.Eye(), Vec3{X: -5}, 1e-3)
}

func TestNilCameraPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewCameraFlight(nil) did not panic")
		}
	}()
	NewCameraFlight(nil)
}
