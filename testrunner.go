package vantage

import (
	"encoding/json"
	"fmt"
)

// pickStep represents a single action in a pick script. A labeled step is
// reported through the logging sink when it executes, marking progress in
// long scripts.
type pickStep struct {
	Action string `json:"action"` // "pick", "surfacePick", "sweep", "wait"
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// pickScript is the top-level JSON structure for a pick script.
type pickScript struct {
	Steps []pickStep `json:"steps"`
}

// PickScriptRunner sequences injected pick requests across ticks for
// automated interaction testing: load a script, then call Step once per tick
// before the controller's Update.
type PickScriptRunner struct {
	pc        *PickController
	steps     []pickStep
	cursor    int
	waitCount int
	done      bool
}

// LoadPickScript parses a JSON pick script for the given controller.
func LoadPickScript(pc *PickController, jsonData []byte) (*PickScriptRunner, error) {
	var script pickScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse pick script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse pick script: no steps")
	}
	for i, step := range script.Steps {
		switch step.Action {
		case "pick", "surfacePick", "sweep", "wait":
		default:
			return nil, fmt.Errorf("parse pick script: step %d has unknown action %q", i, step.Action)
		}
	}
	return &PickScriptRunner{pc: pc, steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *PickScriptRunner) Done() bool { return r.done }

// Step advances the runner by one tick, injecting at most one step's worth
// of pick requests.
func (r *PickScriptRunner) Step() {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	step := r.steps[r.cursor]
	r.cursor++
	if step.Label != "" {
		r.pc.Logf("script step %q (%s)", step.Label, step.Action)
	}

	switch step.Action {
	case "pick":
		r.pc.InjectPick(step.X, step.Y)
	case "surfacePick":
		r.pc.InjectSurfacePick(step.X, step.Y)
	case "sweep":
		r.pc.InjectSweep(step.FromX, step.FromY, step.ToX, step.ToY, step.Ticks)
	case "wait":
		ticks := step.Ticks
		if ticks < 1 {
			ticks = 1
		}
		// This tick counts as the first waited tick.
		r.waitCount = ticks - 1
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
