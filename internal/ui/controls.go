package ui

import (
	"math"
	"strconv"

	"graph-forest/internal/core"
)

const defaultFloatStep = 0.05

// nudge moves value one step in direction and clamps it to the control's
// range. It reports false when the clamped target equals the current value.
func nudge(ctrl core.ParameterControl, value float64, direction int) (float64, bool) {
	if direction == 0 {
		return value, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := value + float64(direction)*step
	if ctrl.Max > ctrl.Min {
		target = min(max(target, ctrl.Min), ctrl.Max)
	}
	if math.Abs(target-value) < 1e-9 {
		return value, false
	}
	return target, true
}

// formatFloat picks a precision fine enough to show one step of change.
func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
