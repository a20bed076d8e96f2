package defense

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/elemental-defense/internal/core"
)

// Visual characters for rendering
const (
	HealthFull   = '█'
	HealthEmpty  = '░'
	EnemyBarFull = '━'
	HeroBase     = '▀'
)

// viewport maps world units onto the playfield rows of the screen.
// Row 0 is the HUD and the last row is the status bar.
type viewport struct {
	field  core.Rect
	sx, sy float64 // Cells per world unit
}

func (g *Game) viewport(dst *core.Screen) viewport {
	field := core.NewRect(0, 1, core.Max(dst.Width(), 1), core.Max(dst.Height()-2, 1))
	return viewport{
		field: field,
		sx:    float64(field.W) / g.cfg.World.Width,
		sy:    float64(field.H) / g.cfg.World.Height,
	}
}

// cell converts a world position to screen coordinates.
func (v viewport) cell(x, y float64) (int, int) {
	return v.field.X + int(math.Floor(x*v.sx)), v.field.Y + int(math.Floor(y*v.sy))
}

// span converts a world length to a cell count, at least one.
func span(length, scale float64) int {
	return core.Max(int(math.Round(length*scale)), 1)
}

// inField reports whether row y belongs to the playfield.
func (v viewport) inField(y int) bool {
	return v.field.Contains(v.field.X, y)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}

	v := g.viewport(dst)

	g.drawBackground(dst, v)
	for i := range g.enemies {
		g.drawEnemy(dst, v, &g.enemies[i])
	}
	for _, s := range g.player.Spells {
		g.drawSpell(dst, v, s)
	}
	g.drawPlayer(dst, v)

	g.drawHUD(dst)
	g.drawStatusBar(dst)

	switch g.state {
	case StatePaused:
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Press P to resume", core.ColorDefault},
		})
	case StateGameOver:
		g.drawGameOver(dst)
	}
}

func (g *Game) drawBackground(dst *core.Screen, v viewport) {
	bg := g.assets.Background
	every := g.cfg.Background.LineEvery
	if every <= 0 {
		return
	}

	// Floor marks move down with the scroll offset
	for y := math.Mod(g.background.Offset, every); y < g.cfg.World.Height; y += every {
		_, cy := v.cell(0, y)
		if !v.inField(cy) {
			continue
		}
		for cx := v.field.X + 2; cx < v.field.Right(); cx += 4 {
			dst.SetColored(cx, cy, bg.Glyph, bg.Color)
		}
	}
}

func (g *Game) drawEnemy(dst *core.Screen, v viewport, e *Enemy) {
	sprite := g.assets.Enemy(e.Variant)
	cx, cy := v.cell(e.X, e.Y)
	w := span(e.Size, v.sx)
	h := span(e.Size, v.sy)

	color := enemyColor(e, sprite)
	for dy := 0; dy < h; dy++ {
		if !v.inField(cy + dy) {
			continue
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColored(cx+dx, cy+dy, sprite.Glyph, color)
		}
	}

	// Health bar above damaged enemies
	if e.Health < e.MaxHealth && v.inField(cy-1) {
		filled := int(math.Ceil(float64(core.Clamp(e.Health, 0, e.MaxHealth)) * float64(w) / float64(e.MaxHealth)))
		for dx := 0; dx < w; dx++ {
			c := core.ColorGray
			if dx < filled {
				c = core.ColorRed
			}
			dst.SetColored(cx+dx, cy-1, EnemyBarFull, c)
		}
	}
}

// enemyColor tints an enemy by its strongest active status.
func enemyColor(e *Enemy, sprite Sprite) core.Color {
	switch {
	case e.Status.Frozen():
		return SpellIce.Stats().Color
	case e.Status.Burning:
		return SpellFire.Stats().Color
	case e.Status.Pushed():
		return SpellWind.Stats().Color
	default:
		return sprite.Color
	}
}

func (g *Game) drawSpell(dst *core.Screen, v viewport, s Spell) {
	cx, cy := v.cell(s.X, s.Y)
	if !v.inField(cy) {
		return
	}
	stats := s.Type.Stats()
	dst.SetColored(cx, cy, stats.Glyph, stats.Color)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.player
	hero := g.assets.Hero
	cx, cy := v.cell(p.X, p.Y)
	w := span(p.Width, v.sx)
	h := span(p.Height, v.sy)

	for dy := 0; dy < h; dy++ {
		if !v.inField(cy + dy) {
			continue
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColored(cx+dx, cy+dy, HeroBase, hero.Color)
		}
	}
	// Glyph tinted with the selected spell marks the casting point
	if v.inField(cy) {
		dst.SetColored(cx+w/2, cy, hero.Glyph, p.Spell.Stats().Color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.player
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  High: %d ", p.Score, g.highScore))

	// Spell indicator, right aligned
	type part struct {
		text  string
		color core.Color
	}
	parts := make([]part, 0, spellTypeCount)
	total := 0
	for t := SpellFire; t < spellTypeCount; t++ {
		stats := t.Stats()
		var pt part
		switch {
		case t == p.Spell:
			pt = part{"[" + stats.Name + "]", stats.Color}
		case t.Unlocked(g.highScore, g.cfg.Unlocks):
			pt = part{" " + stats.Name + " ", core.ColorDefault}
		default:
			pt = part{" " + stats.Name + "✗ ", core.ColorGray}
		}
		parts = append(parts, pt)
		total += utf8.RuneCountInString(pt.text)
	}

	x := dst.Width() - total - 1
	for _, pt := range parts {
		dst.DrawTextColored(x, 0, pt.text, pt.color)
		x += utf8.RuneCountInString(pt.text)
	}
}

func (g *Game) drawStatusBar(dst *core.Screen) {
	p := g.player
	y := dst.Height() - 1
	if y <= 0 {
		return
	}

	const barW = 20
	health := core.Clamp(p.Health, 0, p.MaxHealth)
	filled := 0
	if p.MaxHealth > 0 {
		filled = health * barW / p.MaxHealth
	}

	color := core.ColorGreen
	switch {
	case health*4 <= p.MaxHealth:
		color = core.ColorRed
	case health*2 <= p.MaxHealth:
		color = core.ColorYellow
	}

	dst.DrawText(1, y, "HP ")
	dst.DrawHLineColored(4, y, filled, HealthFull, color)
	dst.DrawHLineColored(4+filled, y, barW-filled, HealthEmpty, core.ColorGray)
	dst.DrawText(5+barW, y, fmt.Sprintf("%d/%d", health, p.MaxHealth))

	if hint := g.unlockHint(); hint != "" {
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(hint)-1, y, hint, core.ColorGray)
	} else if g.difficulty.IsEnabled() {
		level := fmt.Sprintf("Lv %.2f", g.difficulty.Level(p.Score, g.tickCount))
		dst.DrawText(dst.Width()-len(level)-1, y, level)
	}
}

// unlockHint names the next locked spell and the high score it needs.
func (g *Game) unlockHint() string {
	switch {
	case !SpellIce.Unlocked(g.highScore, g.cfg.Unlocks):
		return fmt.Sprintf("High score %d unlocks Ice", g.cfg.Unlocks.Ice)
	case !SpellWind.Unlocked(g.highScore, g.cfg.Unlocks):
		return fmt.Sprintf("High score %d unlocks Wind", g.cfg.Unlocks.Wind)
	default:
		return ""
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", g.player.Score), core.ColorDefault},
		{fmt.Sprintf("High Score: %d", g.highScore), core.ColorDefault},
	}
	if g.newRecord {
		lines = append(lines, panelLine{"NEW RECORD!", core.ColorGold})
	}
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Press R to restart", core.ColorDefault},
	)
	drawPanel(dst, lines)
}

// panelLine is one centered row of an overlay panel.
type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered message box in the center of the screen.
func drawPanel(dst *core.Screen, lines []panelLine) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l.text))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, l := range lines {
		x := cx - utf8.RuneCountInString(l.text)/2
		dst.DrawTextColored(x, box.Y+1+i, l.text, l.color)
	}
}
