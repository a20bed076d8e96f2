package defense

// combatResult counts what happened in one resolution pass.
type combatResult struct {
	kills   int
	escapes int
}

// resolveCombat moves every enemy and resolves spell hits, kills and escapes.
// Enemies are processed in spawn order. A spell is consumed by the first
// enemy it hits and is not tested against later ones. Removal is
// mark-and-compact over both collections.
func (g *Game) resolveCombat() combatResult {
	var res combatResult
	p := g.player
	height := g.cfg.World.Height

	valid := g.enemies[:0]
	for i := range g.enemies {
		e := g.enemies[i]
		e.Move()

		killed := e.Dead() // Burn can finish an enemy on its own
		if !killed {
			for j := range p.Spells {
				s := &p.Spells[j]
				if s.consumed || !e.IsHit(*s) {
					continue
				}
				s.consumed = true
				e.Health -= s.Damage()
				s.ApplyEffect(&e)
				if e.Dead() {
					killed = true
					break
				}
			}
		}

		switch {
		case killed:
			res.kills++
			p.Score += g.cfg.Scoring.KillPoints
		case e.OffScreen(height):
			res.escapes++
			p.Health -= g.cfg.Scoring.EscapeDamage
		default:
			valid = append(valid, e)
		}
	}
	g.enemies = valid
	p.dropConsumed()

	return res
}
