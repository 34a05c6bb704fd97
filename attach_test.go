package vantage

import "testing"

func newMeshFixture(t *testing.T) (*Scene, *Mesh) {
	t.Helper()
	scene := NewScene()
	return scene, NewMesh(scene, nil, MeshConfig{ID: "mesh"})
}

// --- Attach / detach ---

func TestAttachFiresSlotEventAndDirty(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{ID: "mat"})

	var slotPayload any
	slotFires := 0
	mesh.On(SlotMaterial, func(v any) {
		slotFires++
		slotPayload = v
	})
	dirtyFires := 0
	mesh.On(EventDirty, func(any) { dirtyFires++ })

	mesh.SetMaterial(mat)

	if slotFires != 1 {
		t.Fatalf("slot event fired %d times, want 1", slotFires)
	}
	if slotPayload != Entity(mat) {
		t.Errorf("slot payload = %v, want the attached material", slotPayload)
	}
	if dirtyFires != 1 {
		t.Errorf("dirty fired %d times, want 1", dirtyFires)
	}
	if mesh.Material() != mat {
		t.Error("typed accessor does not return the attached material")
	}
	if mesh.Attached(SlotMaterial) != Entity(mat) {
		t.Error("Attached does not return the attached material")
	}
}

func TestSlotEventReplaysForLateSubscriber(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	var got any
	mesh.On(SlotMaterial, func(v any) { got = v })
	if got != Entity(mat) {
		t.Errorf("late subscriber saw %v, want the attached material", got)
	}
}

func TestClearSlotFiresNil(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	var got any = "untouched"
	mesh.On(SlotMaterial, func(v any) { got = v })

	mesh.SetMaterial(nil)

	if got != nil {
		t.Errorf("clear fired payload %v, want nil", got)
	}
	if mesh.Material() != nil || mesh.Attached(SlotMaterial) != nil {
		t.Error("slot not empty after clearing")
	}
	if mat.Destroyed() {
		t.Error("clearing the slot destroyed an unmanaged component")
	}
}

func TestDuplicateAttachDoesNotRefire(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	slotFires := 0
	mesh.On(SlotMaterial, func(any) { slotFires++ })
	replayed := slotFires

	mesh.SetMaterial(mat)

	if slotFires != replayed {
		t.Errorf("re-attaching the same component fired the slot event again")
	}
}

// --- Managed lifecycle ---

func TestCreateSlotIsManaged(t *testing.T) {
	_, mesh := newMeshFixture(t)
	mat := mesh.CreateMaterial(MaterialConfig{})
	if mat == nil {
		t.Fatal("CreateMaterial returned nil")
	}
	if !mesh.AttachmentManaged(SlotMaterial) {
		t.Error("Create-filled slot not reported as managed")
	}

	mesh.Destroy()
	if !mat.Destroyed() {
		t.Error("managed material survived mesh destruction")
	}
}

func TestSetSlotIsUnmanaged(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	if mesh.AttachmentManaged(SlotMaterial) {
		t.Error("Set-filled slot reported as managed")
	}

	mesh.Destroy()
	if mat.Destroyed() {
		t.Error("unmanaged material destroyed with the mesh")
	}
}

func TestReplacingManagedOccupantDestroysIt(t *testing.T) {
	_, mesh := newMeshFixture(t)
	first := mesh.CreateMaterial(MaterialConfig{})
	second := mesh.CreateMaterial(MaterialConfig{})

	if !first.Destroyed() {
		t.Error("replaced managed occupant not destroyed")
	}
	if second.Destroyed() {
		t.Error("replacement occupant destroyed")
	}
	if mesh.Material() != second {
		t.Error("slot does not hold the replacement")
	}
}

func TestReplacingUnmanagedOccupantKeepsIt(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	first := NewMaterial(scene, nil, MaterialConfig{})
	second := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(first)
	mesh.SetMaterial(second)

	if first.Destroyed() {
		t.Error("replaced unmanaged occupant was destroyed")
	}
	if mesh.Material() != second {
		t.Error("slot does not hold the replacement")
	}
}

// --- Re-link on occupant destruction ---

func TestAttachedDestructionRelinksSlot(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	var got any = "untouched"
	mesh.On(SlotMaterial, func(v any) { got = v })

	mat.Destroy()

	if got != nil {
		t.Errorf("relink fired payload %v, want nil", got)
	}
	if mesh.Material() != nil || mesh.Attached(SlotMaterial) != nil {
		t.Error("slot still occupied after attached component was destroyed")
	}
}

func TestRelinkFiresDirty(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	dirtyFires := 0
	sub := mesh.On(EventDirty, func(any) { dirtyFires++ })
	defer mesh.Off(sub)
	dirtyFires = 0 // retained attach-time dirty replays on subscribe

	mat.Destroy()

	if dirtyFires != 1 {
		t.Errorf("relink fired dirty %d times, want 1", dirtyFires)
	}
}

// --- Validation failures ---

func TestAttachUnknownIDFailsSoft(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	errs := 0
	scene.On(EventError, func(any) { errs++ })

	mesh.SetMaterialID("no-such-component")

	if errs != 1 {
		t.Fatalf("error events = %d, want 1", errs)
	}
	if mesh.Material() != mat {
		t.Error("failed attach changed the slot")
	}
}

func TestAttachTypeMismatchFailsSoft(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	geo := NewGeometry(scene, nil, GeometryConfig{ID: "geo"})

	errs := 0
	scene.On(EventError, func(any) { errs++ })

	mesh.SetMaterialID("geo")

	if errs != 1 {
		t.Fatalf("error events = %d, want 1", errs)
	}
	if mesh.Material() != nil || mesh.Attached(SlotMaterial) != nil {
		t.Error("type-mismatched attach changed the slot")
	}
	if geo.Destroyed() {
		t.Error("mismatch destroyed a component the slot never managed")
	}
}

func TestAttachDestroyedComponentFailsSoft(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mat.Destroy()

	errs := 0
	scene.On(EventError, func(any) { errs++ })

	mesh.SetMaterial(mat)

	if errs != 1 {
		t.Fatalf("error events = %d, want 1", errs)
	}
	if mesh.Attached(SlotMaterial) != nil {
		t.Error("destroyed component ended up attached")
	}
}

func TestAttachAcrossScenesFailsSoft(t *testing.T) {
	sceneA := NewScene()
	sceneB := NewScene()
	mesh := NewMesh(sceneA, nil, MeshConfig{})
	foreign := NewMaterial(sceneB, nil, MaterialConfig{})

	errs := 0
	sceneA.On(EventError, func(any) { errs++ })

	mesh.SetMaterial(foreign)

	if errs != 1 {
		t.Fatalf("error events = %d, want 1", errs)
	}
	if mesh.Attached(SlotMaterial) != nil {
		t.Error("foreign component ended up attached")
	}
}

// --- Dirty forwarding ---

func TestAttachedDirtyForwards(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)

	dirtyFires := 0
	mesh.On(EventDirty, func(any) { dirtyFires++ })
	dirtyFires = 0 // drop the replayed attach-time dirty

	mat.SetColor(Color{R: 1, A: 1})

	if dirtyFires != 1 {
		t.Errorf("attached dirty forwarded %d times, want 1", dirtyFires)
	}
}

func TestDetachStopsDirtyForwarding(t *testing.T) {
	scene, mesh := newMeshFixture(t)
	mat := NewMaterial(scene, nil, MaterialConfig{})
	mesh.SetMaterial(mat)
	mesh.SetMaterial(nil)

	dirtyFires := 0
	mesh.On(EventDirty, func(any) { dirtyFires++ })
	dirtyFires = 0

	mat.SetColor(Color{G: 1, A: 1})

	if dirtyFires != 0 {
		t.Errorf("detached component still forwarded %d dirty events", dirtyFires)
	}
}
