package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default dash configuration.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Grid: DashGrid{
			Width:  32,
			Height: 12,
		},
		Timing: DashTiming{
			TickInterval: 80 * time.Millisecond,
		},
		Pursuers: DashPursuers{
			SpawnInterval:  10,
			MoveInterval:   2,
			DetectionRange: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDashYAML
}
