package duckstack

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/duck-stack/internal/core"
)

// Visual characters for rendering
const (
	BodyChar     = '█'
	BeakChar     = '▸'
	EyeChar      = '•'
	WaterChar    = '≈'
	GuideChar    = '·'
	SparkChar    = '*'
	FadeChar     = '.'
	PipFull      = '●'
	PipEmpty     = '○'
	BorderHoriz  = '─'
	hudRows      = 2
	minScreenW   = 30
	minScreenH   = 12
	stabilityBar = 10
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return
	}

	p := g.projection(dst)

	g.renderWater(dst, p)
	g.renderGuide(dst, p)
	g.renderStack(dst, p)
	if g.current != nil {
		g.renderDuck(dst, p, *g.current, 0)
	}
	g.renderParticles(dst, p)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// projection maps design space into screen cells below the HUD.
type projection struct {
	sx, sy  float64
	cameraY float64
	rows    int
}

func (g *Game) projection(dst *core.Screen) projection {
	rows := dst.Height() - hudRows
	return projection{
		sx:      float64(dst.Width()) / g.viewport.DesignWidth,
		sy:      float64(rows) / g.viewport.Height,
		cameraY: g.cameraY,
		rows:    rows,
	}
}

func (p projection) col(x float64) int {
	return int(math.Floor(x * p.sx))
}

func (p projection) row(y float64) int {
	return hudRows + int(math.Floor((y+p.cameraY)*p.sy))
}

// renderWater fills everything below the ground line.
func (g *Game) renderWater(dst *core.Screen, p projection) {
	for y := core.Max(p.row(g.viewport.GroundY), hudRows); y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), WaterChar, core.ColorWater)
	}
}

// renderGuide draws a drop line under a duck the player still controls.
func (g *Game) renderGuide(dst *core.Screen, p projection) {
	if g.controllable() == nil {
		return
	}
	x := p.col(g.current.X)
	from := p.row(g.current.Y)
	to := p.row(g.resolver.TargetY(g.stack.Top()))
	for y := from; y < to; y++ {
		dst.SetColored(x, y, GuideChar, core.ColorGray)
	}
}

// renderStack draws the stacked ducks leaning with the wobble angle around
// the bottom of the base.
func (g *Game) renderStack(dst *core.Screen, p projection) {
	angle := core.ClampF(g.wobble.Angle, -g.wobbler.MaxAngle(), g.wobbler.MaxAngle())
	pivot := g.stack.Base().Y
	for _, d := range g.stack {
		g.renderDuck(dst, p, d, (pivot-d.Y)*math.Sin(angle))
	}
}

// renderDuck draws one duck, scaled by its squish around the bottom centre.
func (g *Game) renderDuck(dst *core.Screen, p projection, d Duck, lean float64) {
	w := d.W * d.Squish.X
	h := d.H * d.Squish.Y
	x := d.X + lean

	left := p.col(x - w/2)
	right := core.Max(p.col(x+w/2)-1, left)
	bottom := p.row(d.Y) - 1
	top := p.row(d.Y-h) - 1
	if top >= bottom {
		top = bottom - 1
	}

	body := core.Color(d.Primary)
	accent := core.Color(d.Secondary)
	for row := top + 1; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			dst.SetColored(col, row, BodyChar, body)
		}
	}

	head := top + 1
	dst.SetColored(right+1, head, BeakChar, core.ColorOrange)
	if right-1 > left {
		dst.SetColored(right-1, head, EyeChar, accent)
	}
	if d.MergeLevel > 0 && right-left >= 3 {
		label := fmt.Sprintf("%d", d.MergeLevel)
		dst.DrawTextColored(left+(right-left+1-len(label))/2, bottom, label, accent)
	}
}

func (g *Game) renderParticles(dst *core.Screen, p projection) {
	for _, pt := range g.particles.P {
		ch := SparkChar
		if pt.Life < pt.MaxLife/2 {
			ch = FadeChar
		}
		row := p.row(pt.Y)
		if row < hudRows {
			continue
		}
		dst.SetColored(p.col(pt.X), row, ch, core.Color(pt.Color))
	}
}

// renderHUD draws score, level and the merge and stability meters.
func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.levels.Level(g.level)

	left := fmt.Sprintf("Score: %d  Best: %d", g.score, g.highScore)
	dst.DrawText(1, 0, left)

	levelText := fmt.Sprintf("Lv %d %s", g.level+1, lvl.Name)
	dst.DrawTextColored(dst.Width()-len([]rune(levelText))-1, 0, levelText, core.Color(lvl.Primary))

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, BorderHoriz)
	}

	var pips strings.Builder
	pips.WriteString(" Merge ")
	for i := 0; i < g.merger.Threshold(); i++ {
		if i < g.merges {
			pips.WriteRune(PipFull)
		} else {
			pips.WriteRune(PipEmpty)
		}
	}
	pips.WriteString(" ")
	dst.DrawText(1, 1, pips.String())

	pct, status := g.Stability()
	filled := int(math.Round(pct / 100 * stabilityBar))
	bar := " " + strings.Repeat("█", filled) + strings.Repeat("░", stabilityBar-filled) + fmt.Sprintf(" %3.0f%% ", pct)
	dst.DrawTextColored(dst.Width()-len([]rune(bar))-1, 1, bar, statusColor(status))
}

func statusColor(s StabilityStatus) core.Color {
	switch s {
	case StatusCritical:
		return core.ColorRed
	case StatusWarning:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// renderOverlay draws mode messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.mode {
	case ModeMenu:
		g.drawCenteredBox(dst, "DUCK STACK", "Press ENTER to start", core.ColorYellow)

	case ModeLevelUp:
		title := fmt.Sprintf("LEVEL %d: %s", g.level+1, g.levels.Level(g.level).Name)
		g.drawCenteredBox(dst, title, "Press ENTER to continue", core.ColorCyan)

	case ModeGameOver:
		reason := "Missed the stack"
		if g.cause == CauseTopple {
			reason = "The stack toppled"
		}
		subtitle := fmt.Sprintf("%s  |  Score: %d  |  Press R to restart", reason, g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorRed)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
