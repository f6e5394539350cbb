package dolphin

// resolveCollisions runs after every entity update. A boat hit ends the run
// and the tick; otherwise every overlapping token is collected in spawn order.
// It reports whether the run ended.
func (w *World) resolveCollisions() bool {
	hitbox := w.agent.Hitbox()

	if overlapsAny(hitbox, w.obstacles) {
		w.gameOver()
		return true
	}

	kept := w.tokens[:0]
	for _, t := range w.tokens {
		if hitbox.Intersects(t.Hitbox()) {
			w.collect(t)
			continue
		}
		kept = append(kept, t)
	}
	w.tokens = kept
	return false
}

// collect scores a token at the current multiplier, then raises the multiplier.
func (w *World) collect(t Token) {
	w.score += w.cfg.Tokens.Points * w.multiplier
	w.multiplier++
	w.stats.TokensCollected++
	w.stats.MaxMultiplier = max(w.stats.MaxMultiplier, w.multiplier)

	cx, cy := t.Center()
	for range w.cfg.Tokens.SparkleParticles {
		w.particles = append(w.particles, newParticle(w.rng, cx, cy, ParticleSparkle))
	}
	w.audio.CollectSound()
}
