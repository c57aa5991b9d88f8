package game

import "math"

// Resolver detects circle-circle contacts through the spatial index and
// applies their effects: contact damage to the player, weapon attacks on
// enemies, and pickup magnetism/collection. It never decides run outcome;
// the run driver reads player HP afterwards.
type Resolver struct {
	cfg    Config
	reg    *Registry
	index  *SpatialIndex
	events *Dispatcher

	// hurtTimer is the player's damage-intake cooldown. While positive,
	// touching enemies cannot damage the player again.
	hurtTimer float64

	// maxEnemyRadius inflates the contact query so no archetype's circle
	// is missed by the center-distance prefilter.
	maxEnemyRadius float64

	// magnetRadius starts at the configured value and grows with upgrades.
	magnetRadius float64
}

// NewResolver creates a resolver over the given index and registry.
func NewResolver(cfg Config, reg *Registry, index *SpatialIndex, events *Dispatcher) *Resolver {
	maxR := 0.0
	for arch := ArchetypeChaser; arch <= ArchetypeTank; arch++ {
		if r := ArchetypeStats(arch).Radius; r > maxR {
			maxR = r
		}
	}
	return &Resolver{
		cfg:            cfg,
		reg:            reg,
		index:          index,
		events:         events,
		maxEnemyRadius: maxR,
		magnetRadius:   cfg.MagnetRadius,
	}
}

// Update runs all contact relationships for one frame. The spatial index
// must already reflect this frame's post-movement positions.
func (r *Resolver) Update(dt float64, player *Entity, weapons []*Weapon) {
	r.resolveContactDamage(dt, player)
	r.resolveWeaponAttacks(dt, player, weapons)
	r.resolvePickups(dt, player)
}

// resolveContactDamage applies enemy contact damage to the player, at
// most once per hurt-cooldown window. The damaging enemy is the touching
// one with the lowest ID, for determinism.
func (r *Resolver) resolveContactDamage(dt float64, player *Entity) {
	r.hurtTimer = math.Max(0, r.hurtTimer-dt)
	if r.hurtTimer > 0 || player.HP <= 0 {
		return
	}

	var hit *Entity
	r.index.Query(player.Pos, player.Radius+r.maxEnemyRadius, func(e *Entity) {
		if e.Kind != KindEnemy || !e.Overlaps(player) {
			return
		}
		if hit == nil || e.ID < hit.ID {
			hit = e
		}
	})
	if hit == nil {
		return
	}

	player.HP = math.Max(0, math.Min(player.HP-hit.ContactDamage, player.MaxHP))
	r.hurtTimer = r.cfg.PlayerHurtCooldown
}

// resolveWeaponAttacks advances every weapon's cooldown and fires those
// that are due at the nearest enemy in range. A weapon with no target
// still resets its cooldown, so its cadence stays strictly periodic.
func (r *Resolver) resolveWeaponAttacks(dt float64, player *Entity, weapons []*Weapon) {
	for _, w := range weapons {
		w.RemainingCooldown -= dt
		if w.RemainingCooldown > 0 {
			continue
		}
		w.RemainingCooldown = w.Cooldown()

		if target := r.nearestEnemy(player.Pos, w.Range); target != nil {
			r.damageEnemy(target, w.Damage)
		}
	}
}

// nearestEnemy returns the closest active enemy whose center is within
// radius of p, ties broken by lowest ID. Nil when none is in range.
func (r *Resolver) nearestEnemy(p Vec2, radius float64) *Entity {
	var nearest *Entity
	nearestSq := radius * radius
	r.index.Query(p, radius, func(e *Entity) {
		if e.Kind != KindEnemy {
			return
		}
		dSq := e.Pos.Sub(p).LengthSq()
		if nearest == nil || dSq < nearestSq || (dSq == nearestSq && e.ID < nearest.ID) {
			nearest = e
			nearestSq = dSq
		}
	})
	return nearest
}

// damageEnemy applies damage and, on a lethal hit, removes the enemy in
// the same step. Removal fires the run driver's death hook, which spawns
// the experience orb and announces the kill; nothing is deferred.
func (r *Resolver) damageEnemy(e *Entity, damage float64) {
	e.HP = math.Max(0, e.HP-damage)
	if e.HP <= 0 {
		r.reg.Remove(e.ID)
	}
}

// resolvePickups collects orbs in collection range and drags orbs in
// magnet range toward the player at the configured magnet speed.
func (r *Resolver) resolvePickups(dt float64, player *Entity) {
	if player.HP <= 0 {
		return
	}
	r.index.Query(player.Pos, r.magnetRadius, func(e *Entity) {
		if e.Kind != KindPickup {
			return
		}
		dist := Distance(e.Pos, player.Pos)
		if dist <= r.cfg.CollectRadius {
			value := e.Value
			r.reg.Remove(e.ID)
			r.events.Dispatch(Event{Type: EventPickupCollected, Data: value})
			return
		}
		// Magnetized orbs close the remaining distance over time, then
		// fall into collection range on a later frame.
		e.Magnetized = true
		dir := player.Pos.Sub(e.Pos).Normalize()
		e.Pos = e.Pos.Add(dir.Scale(r.cfg.MagnetSpeed * dt))
	})
}

// HurtCooldownRemaining exposes the current intake cooldown for the HUD.
func (r *Resolver) HurtCooldownRemaining() float64 {
	return r.hurtTimer
}
