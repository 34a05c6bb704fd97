package vantage

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestTransformDefaults(t *testing.T) {
	scene := NewScene()
	tr := NewTransform(scene, nil, TransformConfig{})

	if tr.Scale() != (Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("default scale = %+v, want uniform 1", tr.Scale())
	}
	if tr.LocalMatrix() != Identity4 {
		t.Error("zero transform's local matrix is not identity")
	}
	if tr.Parent() != nil {
		t.Error("fresh transform has a parent")
	}
}

func TestSettersFireDirtyOnce(t *testing.T) {
	scene := NewScene()
	tr := NewTransform(scene, nil, TransformConfig{})

	dirty := 0
	tr.On(EventDirty, func(any) { dirty++ })

	tr.SetPosition(Vec3{X: 1})
	tr.SetPosition(Vec3{X: 1}) // unchanged, no fire

	if dirty != 1 {
		t.Errorf("dirty fired %d times, want 1", dirty)
	}
}

func TestLocalMatrixTracksSetters(t *testing.T) {
	scene := NewScene()
	tr := NewTransform(scene, nil, TransformConfig{Position: Vec3{X: 5}})

	p, _ := tr.LocalMatrix().TransformPoint(Vec3{})
	vecNear(t, p, Vec3{X: 5}, 1e-6)

	tr.SetScale(Vec3{X: 2, Y: 2, Z: 2})
	p, _ = tr.LocalMatrix().TransformPoint(Vec3{X: 1})
	vecNear(t, p, Vec3{X: 7}, 1e-6)
}

func TestWorldMatrixComposesParentChain(t *testing.T) {
	scene := NewScene()
	root := NewTransform(scene, nil, TransformConfig{ID: "root", Position: Vec3{X: 10}})
	child := NewTransform(scene, nil, TransformConfig{Position: Vec3{Y: 5}, ParentID: "root"})

	if child.Parent() != root {
		t.Fatal("parent slot did not resolve by ID")
	}
	p, _ := child.WorldMatrix().TransformPoint(Vec3{})
	vecNear(t, p, Vec3{X: 10, Y: 5}, 1e-6)
}

func TestParentRotationAppliesToChild(t *testing.T) {
	scene := NewScene()
	root := NewTransform(scene, nil, TransformConfig{Rotation: Vec3{Y: math32.Pi / 2}})
	child := NewTransform(scene, nil, TransformConfig{Position: Vec3{X: 1}})
	child.SetParent(root)

	// The parent's quarter turn around Y carries the child's +X offset to -Z.
	p, _ := child.WorldMatrix().TransformPoint(Vec3{})
	vecNear(t, p, Vec3{Z: -1}, 1e-5)
}

func TestParentDestructionDetaches(t *testing.T) {
	scene := NewScene()
	root := NewTransform(scene, nil, TransformConfig{Position: Vec3{X: 10}})
	child := NewTransform(scene, nil, TransformConfig{Position: Vec3{Y: 5}})
	child.SetParent(root)

	root.Destroy()

	if child.Parent() != nil {
		t.Error("destroyed parent still referenced")
	}
	p, _ := child.WorldMatrix().TransformPoint(Vec3{})
	vecNear(t, p, Vec3{Y: 5}, 1e-6)
}

func TestSetParentRejectsNonTransform(t *testing.T) {
	scene := NewScene()
	NewMaterial(scene, nil, MaterialConfig{ID: "mat"})
	tr := NewTransform(scene, nil, TransformConfig{})

	errs := 0
	scene.On(EventError, func(any) { errs++ })

	tr.SetParentID("mat")

	if errs != 1 {
		t.Errorf("error events = %d, want 1", errs)
	}
	if tr.Parent() != nil {
		t.Error("non-transform ended up as parent")
	}
}
