package wireworld

import (
	"strconv"

	"wire-ca/internal/core"
)

const maxWorkers = 64

// Parameters reports the engine settings and live statistics for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	cfg := e.Config()
	counts := e.Counts()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", e.w),
				intParam("h", "Height", e.h),
				stringParam("pattern", "Pattern", cfg.Pattern),
				intParam("workers", "Workers", cfg.Workers),
			},
		},
		{
			Name: "Signals",
			Params: []core.Parameter{
				intParam("generation", "Generation", int(e.Generation())),
				intParam("heads", "Heads", counts.Heads),
				intParam("tails", "Tails", counts.Tails),
				intParam("conductors", "Conductors", counts.Conductors),
			},
		},
	}}
}

// ParameterControls lists the settings adjustable while running.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "workers", Label: "Workers", Step: 1, Min: 1, Max: maxWorkers},
	}
}

// SetIntParameter updates an adjustable setting, reporting whether key names one.
func (e *Engine) SetIntParameter(key string, value int) bool {
	switch key {
	case "workers":
		e.SetWorkers(e.ParameterControls()[0].Clamp(value))
		return true
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
