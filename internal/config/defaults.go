package config

import (
	_ "embed"
)

//go:embed defaults/dolphin.yaml
var defaultDolphinYAML []byte

// DefaultDolphinConfig returns the built-in configuration.
func DefaultDolphinConfig() DolphinConfig {
	return DolphinConfig{
		World: WorldConfig{
			Width:          800,
			Height:         450,
			InitialSpeed:   4.0,
			SpeedIncrement: 0.001,
			Parallax:       0.5,
		},
		Physics: PhysicsConfig{
			Gravity:   0.4,
			JumpForce: -7.0,
		},
		Agent: AgentConfig{
			X:                100,
			Width:            80,
			Height:           40,
			HitboxInset:      10,
			MaxBoostDistance: 120,
			BubbleParticles:  5,
			SmokeParticles:   12,
		},
		Obstacles: ObstacleConfig{
			Width:        100,
			Height:       60,
			BaseInterval: 150,
			MinInterval:  60,
			SpeedFactor:  10,
			Variants:     5,
		},
		Tokens: TokenConfig{
			Size:             40,
			Interval:         100,
			HitboxInset:      5,
			SpawnAttempts:    10,
			SpawnBuffer:      20,
			Points:           10,
			SparkleParticles: 8,
		},
		Particles: ParticleConfig{
			Decay: 0.02,
		},
		Autopilot: AutopilotConfig{
			Lookahead:    400,
			TokenWindow:  100,
			Tolerance:    10,
			RiseVelocity: -3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDolphinYAML
}
