package main

// ApplyPlayerDamage is the single choke point for all damage dealt to the
// player. It subtracts amount, clamps health at zero, flags the terminal
// state on a lethal hit, and always appends a DamageEvent, lethal or not.
//
// Invulnerability is deliberately NOT checked here — callers guard with
// World.PlayerVulnerable() first. Keeping the guard at the call site lets
// beam hits re-arm the window in the same breath as the damage they deal.
func ApplyPlayerDamage(w *World, amount float64, x, y float64, kind string) {
	p := w.Player
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		w.IsGameOver = true
		w.Victory = false
	}
	w.Events = append(w.Events, DamageEvent{
		Kind:      kind,
		Amount:    amount,
		X:         x,
		Y:         y,
		Timestamp: w.StartTime + w.GameTime,
	})
}

// ApplyBossDamage damages the boss, clamping at zero and flagging victory on
// the killing blow. Damage is ignored while the boss is invulnerable
// (pylon-protection phase).
func ApplyBossDamage(w *World, amount float64) {
	b := w.Boss
	if b.Invulnerable || b.Health <= 0 {
		return
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.Health = 0
		w.IsGameOver = true
		w.Victory = true
	}
}

// HealPlayer restores player health, clamped to max
func HealPlayer(w *World, amount float64) {
	p := w.Player
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// HealBoss restores boss health, clamped to max. Phase numbers never move
// backward when this raises the health fraction above a crossed threshold.
func HealBoss(w *World, amount float64) {
	b := w.Boss
	if b.Health <= 0 {
		return
	}
	b.Health += amount
	if b.Health > b.MaxHealth {
		b.Health = b.MaxHealth
	}
}
