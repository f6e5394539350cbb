// Package config provides YAML-based game configuration loading and
// difficulty presets for Dolphin Dash.
package config

// DolphinConfig contains all tunables of the simulation.
type DolphinConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Agent     AgentConfig     `yaml:"agent"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Tokens    TokenConfig     `yaml:"tokens"`
	Particles ParticleConfig  `yaml:"particles"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
}

// WorldConfig defines the logical canvas and the scroll speed curve.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to the speed every tick
	Parallax       float64 `yaml:"parallax"`        // Background speed as a fraction of world speed
}

// PhysicsConfig defines the agent's vertical physics.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = up
}

// AgentConfig defines the dolphin's geometry and boost.
type AgentConfig struct {
	X                float64 `yaml:"x"` // Rest x-coordinate
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	HitboxInset      float64 `yaml:"hitbox_inset"`
	MaxBoostDistance float64 `yaml:"max_boost_distance"`
	BubbleParticles  int     `yaml:"bubble_particles"`
	SmokeParticles   int     `yaml:"smoke_particles"`
}

// ObstacleConfig defines boats and their spawn interval.
// interval = max(min_interval, floor(base_interval - speed*speed_factor))
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BaseInterval float64 `yaml:"base_interval"`
	MinInterval  int     `yaml:"min_interval"`
	SpeedFactor  float64 `yaml:"speed_factor"`
	Variants     int     `yaml:"variants"`
}

// TokenConfig defines collectibles and their placement search.
type TokenConfig struct {
	Size             float64 `yaml:"size"`
	Interval         int     `yaml:"interval"`
	HitboxInset      float64 `yaml:"hitbox_inset"`
	SpawnAttempts    int     `yaml:"spawn_attempts"`
	SpawnBuffer      float64 `yaml:"spawn_buffer"`
	Points           int     `yaml:"points"`
	SparkleParticles int     `yaml:"sparkle_particles"`
}

// ParticleConfig defines visual particle decay.
type ParticleConfig struct {
	Decay float64 `yaml:"decay"` // Life lost per tick; particles start at 1.0
}

// AutopilotConfig defines the heuristic controller's thresholds.
type AutopilotConfig struct {
	Lookahead    float64 `yaml:"lookahead"`     // Horizontal distance at which an obstacle is threatening
	TokenWindow  float64 `yaml:"token_window"`  // How far past an obstacle a token still counts
	Tolerance    float64 `yaml:"tolerance"`     // Allowed drop below target before jumping
	RiseVelocity float64 `yaml:"rise_velocity"` // Skip jumping when already rising at least this fast
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
