package dolphin

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dolphin-dash/internal/core"
)

// Visual characters for rendering
const (
	dolphinChar  = '▓'
	dolphinEye   = '●'
	tokenChar    = '◆'
	hullChar     = '█'
	waveChar     = '~'
	particleChar = '∘'
	hitboxChar   = '+'
)

// boatStyles gives each obstacle variant its sail rune and color.
var boatStyles = []struct {
	sail  rune
	color core.Color
}{
	{'▲', core.ColorWhite},
	{'◢', core.ColorRed},
	{'◣', core.ColorYellow},
	{'▌', core.ColorGreen},
	{'▴', core.ColorMagenta},
}

// hudRows is the number of screen rows reserved above the play area.
const hudRows = 1

// viewport maps the fixed logical space onto the terminal cells below the HUD.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := max(dst.Height()-hudRows, 1)
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(rows) / worldH,
	}
}

// cells returns the cell rectangle covering r; it is never smaller than 1x1.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y*v.sy)) + hudRows
	w = max(int(math.Ceil(r.Right()*v.sx))-x, 1)
	h = max(int(math.Ceil(r.Bottom()*v.sy))+hudRows-y, 1)
	return x, y, w, h
}

func (v viewport) point(px, py float64) (int, int) {
	return int(math.Floor(px * v.sx)), int(math.Floor(py*v.sy)) + hudRows
}

// Render draws the world into dst.
func (w *World) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst, w.cfg.World.Width, w.cfg.World.Height)

	w.drawWater(dst, vp)
	for _, p := range w.particles {
		x, y := vp.point(p.X, p.Y)
		dst.SetColored(x, y, particleChar, p.Kind.Color())
	}
	for _, o := range w.obstacles {
		drawBoat(dst, vp, o)
	}
	for _, t := range w.tokens {
		x, y, cw, ch := vp.cells(t.Bounds())
		dst.FillRect(x, y, cw, ch, tokenChar, core.ColorGold)
	}
	w.drawDolphin(dst, vp)

	if w.debug {
		w.drawHitboxes(dst, vp)
	}

	w.drawHUD(dst)

	switch w.status {
	case StatusIdle:
		drawCenteredMessage(dst, "DOLPHIN DASH", "Space to start  |  F to boost  |  A autoplay")
	case StatusPaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StatusGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  R restart  |  Tab scores", w.score))
	}
}

// drawWater scrolls a wave pattern along the surface with the background.
func (w *World) drawWater(dst *core.Screen, vp viewport) {
	offset := int(math.Floor(-w.background.X * vp.sx))
	for col := 0; col < dst.Width(); col++ {
		if (col+offset)%4 == 0 {
			dst.SetColored(col, hudRows, waveChar, core.ColorBlue)
		}
	}
}

func drawBoat(dst *core.Screen, vp viewport, o Obstacle) {
	style := boatStyles[o.Variant%len(boatStyles)]

	x, y, cw, ch := vp.cells(o.Bounds())
	hx, hy, hw, hh := vp.cells(o.Hitbox())

	// Sail above the hull
	for row := y; row < hy; row++ {
		dst.SetColored(x+cw/2, row, style.sail, style.color)
	}
	dst.FillRect(hx, hy, hw, hh, hullChar, style.color)
	if ch == 1 {
		dst.SetColored(x+cw/2, y, hullChar, style.color)
	}
}

func (w *World) drawDolphin(dst *core.Screen, vp viewport) {
	color := core.ColorBrightCyan
	if w.agent.Boost.Phase == BoostForward {
		color = core.ColorCyan
	}

	x, y, cw, ch := vp.cells(w.agent.Bounds())
	dst.FillRect(x, y, cw, ch, dolphinChar, color)
	dst.SetColored(x+cw-1, y, dolphinEye, core.ColorBrightWhite)
}

// drawHitboxes marks the corners of every collision rectangle.
func (w *World) drawHitboxes(dst *core.Screen, vp viewport) {
	mark := func(r core.Rect) {
		x, y, cw, ch := vp.cells(r)
		dst.SetColored(x, y, hitboxChar, core.ColorMagenta)
		dst.SetColored(x+cw-1, y, hitboxChar, core.ColorMagenta)
		dst.SetColored(x, y+ch-1, hitboxChar, core.ColorMagenta)
		dst.SetColored(x+cw-1, y+ch-1, hitboxChar, core.ColorMagenta)
	}

	mark(w.agent.Hitbox())
	for _, o := range w.obstacles {
		mark(o.Hitbox())
	}
	for _, t := range w.tokens {
		mark(t.Hitbox())
	}

	if w.autoplay {
		_, ty := vp.point(0, w.decision.Target)
		dst.DrawHLine(0, ty, 2, '>', core.ColorMagenta)
	}
}

func (w *World) drawHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", w.score), core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, fmt.Sprintf("x%d", w.multiplier), core.ColorGold)
	dst.DrawTextColored(22, 0, fmt.Sprintf("Best: %d", w.best), core.ColorGray)

	right := fmt.Sprintf("Boost: %s", w.agent.Boost.Phase)
	if w.autoplay {
		right = "AUTO  " + right
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
