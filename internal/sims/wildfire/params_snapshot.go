package wildfire

import (
	"strconv"

	"graph-forest/internal/core"
)

// Parameters reports the run configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	cfg := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Landscape",
			Params: []core.Parameter{
				intParam("nodes", "Nodes", w.graph.Len()),
				floatParam("forest_fraction", "Forest fraction", cfg.ForestFraction),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Firefighters",
			Params: []core.Parameter{
				intParam("agents", "Agents", w.roster.Len()),
				floatParam("skill_mean", "Skill mean", cfg.SkillMean),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("combustion", "Combustion", cfg.Params.Combustion),
				floatParam("transmission", "Transmission", cfg.Params.Transmission),
				floatParam("respawn", "Respawn", cfg.Params.Respawn),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("tick", "Tick", w.tick),
				intParam("ticks", "Tick budget", cfg.Ticks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the probabilities that may be tuned while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "combustion", Label: "Combustion", Step: 0.01, Min: 0, Max: 1},
		{Key: "transmission", Label: "Transmission", Step: 0.05, Min: 0, Max: 1},
		{Key: "respawn", Label: "Respawn", Step: 0.01, Min: 0, Max: 1},
	}
}

// SetFloatParameter updates a probability, clamped to [0,1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	value = min(max(value, 0), 1)
	switch key {
	case "combustion":
		w.cfg.Params.Combustion = value
	case "transmission":
		w.cfg.Params.Transmission = value
	case "respawn":
		w.cfg.Params.Respawn = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
