package dolphin

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/dolphin-dash/internal/config"
)

// Decision is the autopilot's output for one tick.
type Decision struct {
	Target float64 // Desired agent y
	Jump   bool    // Whether to issue a jump this tick
}

// Decide is the autopilot: a greedy, memoryless controller that looks at the
// nearest boat ahead and steers toward the larger opening beside it, picking up
// a token on the way when one sits inside that opening.
// It only reads its arguments.
func Decide(agent Agent, obstacles []Obstacle, tokens []Token, worldH float64, cfg config.AutopilotConfig) Decision {
	ahead := aheadObstacles(agent, obstacles)
	pickups := aheadTokens(agent, tokens)

	target := worldH / 2

	switch {
	case len(ahead) > 0 && ahead[0].X-(agent.X+agent.Width) < cfg.Lookahead:
		o := ahead[0]
		gapAbove := o.Y
		gapBelow := worldH - (o.Y + o.Height)

		upper := gapAbove >= gapBelow
		if upper {
			target = gapAbove / 2
		} else {
			target = o.Y + o.Height + gapBelow/2
		}

		// Divert to a token inside the chosen opening shortly past the boat
		for _, t := range pickups {
			if t.X > o.X+o.Width+cfg.TokenWindow {
				break
			}
			_, cy := t.Center()
			if (upper && cy < o.Y) || (!upper && cy > o.Y+o.Height) {
				target = t.Y
				break
			}
		}

	case len(pickups) > 0:
		target = pickups[0].Y
	}

	return Decision{
		Target: target,
		Jump:   agent.Y > target+cfg.Tolerance && agent.Velocity > cfg.RiseVelocity,
	}
}

// aheadObstacles returns live boats whose right edge has not passed the
// agent's left edge, nearest first.
func aheadObstacles(agent Agent, obstacles []Obstacle) []Obstacle {
	ahead := make([]Obstacle, 0, len(obstacles))
	for _, o := range obstacles {
		if !o.Deleted && o.X+o.Width >= agent.X {
			ahead = append(ahead, o)
		}
	}
	slices.SortStableFunc(ahead, func(a, b Obstacle) int { return cmp.Compare(a.X, b.X) })
	return ahead
}

// aheadTokens returns live tokens whose right edge has not passed the agent's
// left edge, nearest first.
func aheadTokens(agent Agent, tokens []Token) []Token {
	ahead := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.Deleted && t.X+t.Size >= agent.X {
			ahead = append(ahead, t)
		}
	}
	slices.SortStableFunc(ahead, func(a, b Token) int { return cmp.Compare(a.X, b.X) })
	return ahead
}
