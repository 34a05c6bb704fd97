// Package vantage is the component core of a 3D scene-graph engine:
// entity lifecycle, eventing, attachment management, and interactive
// picking, with rendering delegated to a pluggable backend.
//
// # Components
//
// Every scene object is a component: a [Mesh], [Material], [Geometry],
// [Transform], [Camera], or light, each embedding [Component] and living in
// a [Scene] registry under a unique ID.
//
//	scene := vantage.NewScene()
//	mesh := vantage.NewMesh(scene, nil, vantage.MeshConfig{ID: "hero"})
//	mesh.CreateMaterial(vantage.MaterialConfig{Color: vantage.Color{R: 1, A: 1}})
//
// Components fire and subscribe to events with retained-payload replay:
// subscribing to an event that has already fired immediately delivers the
// last payload. Destruction cascades through ownership (pass an owner to a
// constructor) and through managed attachments (the Create* slot methods),
// and attachment slots re-link to empty when the attached component dies,
// so there are never dangling references.
//
// # Picking
//
// A [PickController] resolves canvas cursor positions to entities and
// surface points against a [RenderBackend], with vertex/edge snapping and a
// deterministic hoverEnter/hover/hoverOut/hoverOff event sequence:
//
//	pc := vantage.NewPickController(scene, backend)
//	pc.On(vantage.EventHoverEnter, func(v any) {
//		res := v.(*vantage.PickResult)
//		// highlight res.Entity ...
//	})
//
//	// each frame:
//	pc.ScheduleSurfacePick(cursor)
//	pc.Update()
//	pc.FireEvents()
//	scene.Tick()
//
// The softpick subpackage provides a software RenderBackend that picks
// against the scene's meshes through its camera; GPU renderers plug in the
// same way.
//
// Everything in this package is single-threaded by contract: one logical
// thread of execution per scene, driven by frame ticks.
package vantage
