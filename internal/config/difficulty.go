package config

// presetPursuers holds the pursuer tuning for each preset.
// Normal matches the classic game.
var presetPursuers = map[DifficultyPreset]DashPursuers{
	DifficultyEasy: {
		SpawnInterval:  15,
		MoveInterval:   3,
		DetectionRange: 1,
	},
	DifficultyNormal: {
		SpawnInterval:  10,
		MoveInterval:   2,
		DetectionRange: 2,
	},
	DifficultyHard: {
		SpawnInterval:  6,
		MoveInterval:   1,
		DetectionRange: 3,
	},
}

// ApplyDashPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	p, ok := presetPursuers[preset]
	if !ok {
		return
	}
	cfg.Pursuers = p
}

// PresetDescription returns a one-line summary for menus.
func PresetDescription(preset DifficultyPreset) string {
	switch preset {
	case DifficultyEasy:
		return "Fewer, slower pursuers with short sight"
	case DifficultyNormal:
		return "The classic chase"
	case DifficultyHard:
		return "Pursuers spawn often and move every turn"
	default:
		return ""
	}
}
