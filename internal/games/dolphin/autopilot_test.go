package dolphin

import (
	"testing"

	"github.com/vovakirdan/dolphin-dash/internal/config"
)

func TestDecide(t *testing.T) {
	cfg := config.DefaultDolphinConfig().Autopilot
	boat := func(x, y float64) Obstacle {
		return Obstacle{X: x, Y: y, Width: 100, Height: 60}
	}
	token := func(x, y float64) Token {
		return Token{X: x, Y: y, Size: 40, Inset: 5}
	}

	tests := []struct {
		name      string
		obstacles []Obstacle
		tokens    []Token
		target    float64
	}{
		{"nothing ahead", nil, nil, 225},
		{"larger gap above", []Obstacle{boat(300, 300)}, nil, 150},
		{"larger gap below", []Obstacle{boat(300, 30)}, nil, 270},
		{"equal gaps prefer above", []Obstacle{boat(300, 195)}, nil, 97.5},
		{"token in chosen opening", []Obstacle{boat(300, 300)}, []Token{token(420, 60)}, 60},
		{"token in other opening", []Obstacle{boat(300, 300)}, []Token{token(420, 400)}, 150},
		{"token too far past boat", []Obstacle{boat(300, 300)}, []Token{token(520, 60)}, 150},
		{"distant boat, token", []Obstacle{boat(700, 300)}, []Token{token(300, 100)}, 100},
		{"distant boat, no token", []Obstacle{boat(700, 300)}, nil, 225},
		{"token only", nil, []Token{token(600, 80), token(300, 350)}, 350},
		{"passed boat ignored", []Obstacle{boat(-50, 300)}, nil, 225},
		{"nearest boat wins", []Obstacle{boat(500, 30), boat(300, 300)}, nil, 150},
		{"deleted boat ignored", []Obstacle{{X: 300, Y: 300, Width: 100, Height: 60, Deleted: true}}, nil, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := newTestAgent()
			d := Decide(agent, tt.obstacles, tt.tokens, 450, cfg)

			if d.Target != tt.target {
				t.Errorf("target = %v, want %v", d.Target, tt.target)
			}
		})
	}
}

func TestDecideJump(t *testing.T) {
	cfg := config.DefaultDolphinConfig().Autopilot
	obstacles := []Obstacle{{X: 300, Y: 300, Width: 100, Height: 60}} // target 150

	tests := []struct {
		name     string
		y, vel   float64
		expected bool
	}{
		{"below target", 225, 0, true},
		{"within tolerance", 158, 2, false},
		{"above target", 100, 3, false},
		{"already rising", 225, -5, false},
		{"rising slowly", 225, -2, true},
		{"rising at threshold", 225, -3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := newTestAgent()
			agent.Y = tt.y
			agent.Velocity = tt.vel

			if got := Decide(agent, obstacles, nil, 450, cfg).Jump; got != tt.expected {
				t.Errorf("Jump = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDecideDoesNotMutate(t *testing.T) {
	cfg := config.DefaultDolphinConfig().Autopilot
	obstacles := []Obstacle{{X: 500, Y: 30, Width: 100, Height: 60}, {X: 300, Y: 300, Width: 100, Height: 60}}
	tokens := []Token{{X: 600, Y: 80, Size: 40}, {X: 300, Y: 350, Size: 40}}

	Decide(newTestAgent(), obstacles, tokens, 450, cfg)

	if obstacles[0].X != 500 || tokens[0].X != 600 {
		t.Error("Decide reordered its input slices")
	}
}
