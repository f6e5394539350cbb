package config

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and the empty preset keep the configured curve untouched.
func ApplyPreset(cfg *DolphinConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.InitialSpeed *= 0.75
		cfg.World.SpeedIncrement *= 0.5
	case DifficultyHard:
		cfg.World.InitialSpeed *= 1.5
		cfg.World.SpeedIncrement *= 2
	}
}
