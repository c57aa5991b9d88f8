package game

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// Stats is the final (or live) snapshot of a run.
type Stats struct {
	Elapsed     float64
	Kills       int
	Level       int
	XPCollected float64
	Cause       EndCause
}

// Run is one complete play session: the registry, the systems operating
// on it, and the simulation clock. Everything a run mutates hangs off
// this object, so several runs can coexist (the tests rely on that).
type Run struct {
	cfg      Config
	reg      *Registry
	index    *SpatialIndex
	spawner  *Spawner
	resolver *Resolver
	progress *Progression
	events   *Dispatcher
	rng      *Rand
	input    InputProvider

	playerID EntityID
	weapons  []*Weapon

	elapsed     float64
	kills       int
	xpCollected float64

	active bool
}

// NewRun validates the configuration and builds a fresh run: player at
// the arena center, one base weapon, empty world. Seed 0 means a random
// seed; any other seed reproduces the run exactly.
func NewRun(cfg Config, seed int64, input InputProvider) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Run{
		cfg:    cfg,
		reg:    NewRegistry(cfg.EnemyCap * 2),
		events: NewDispatcher(),
		rng:    NewRand(seed),
		input:  input,
		active: true,
	}
	r.index = NewSpatialIndex(cfg, r.reg)
	r.spawner = NewSpawner(cfg, r.reg, r.rng)
	r.resolver = NewResolver(cfg, r.reg, r.index, r.events)
	r.progress = NewProgression(cfg, r.rng, r.events, upgradePool(r))

	player := r.reg.Add(KindPlayer)
	player.initPlayer(cfg)
	r.playerID = player.ID
	r.weapons = []*Weapon{NewWeapon(WeaponBolt, cfg)}

	// Enemy death is one atomic step: the slot deactivates, the orb
	// appears at the enemy's last position, and the kill is announced,
	// all before the removing pass continues.
	r.reg.SetRemovalHook(KindEnemy, func(e *Entity) {
		orb := r.reg.Add(KindPickup)
		orb.initPickup(e.Pos, e.XPValue, cfg)
		r.events.Dispatch(Event{Type: EventEnemyKilled, Data: e.ID})
	})

	r.events.Subscribe(EventEnemyKilled, ListenerFunc(func(Event) {
		r.kills++
	}))
	r.events.Subscribe(EventPickupCollected, ListenerFunc(func(e Event) {
		value := e.Data.(float64)
		r.xpCollected += value
		r.progress.AddExperience(value)
	}))

	// Lifecycle logging rides the same dispatcher as the counters.
	r.events.Subscribe(EventLevelUp, ListenerFunc(func(e Event) {
		log.WithField("level", e.Data.(int)).Info("level up")
	}))
	r.events.Subscribe(EventRunEnded, ListenerFunc(func(e Event) {
		log.WithFields(log.Fields{
			"cause":   e.Data.(EndCause).String(),
			"elapsed": r.elapsed,
			"kills":   r.kills,
			"level":   r.progress.Level(),
		}).Info("run ended")
	}))

	return r, nil
}

// Start (re)attaches the run to its tick source.
func (r *Run) Start() { r.active = true }

// Stop detaches the run from its tick source. A stopped run ignores
// ticks entirely; nothing keeps simulating in the background.
func (r *Run) Stop() { r.active = false }

// Tick advances the simulation by dt seconds. The phase order is fixed:
// input, entity updates, spawning, index rebuild, collision resolution,
// progression checks, registry compaction. Outside PhaseRunning the
// simulation is fully frozen: no position, cooldown, or timer changes.
func (r *Run) Tick(dt float64) {
	if !r.active || r.progress.Phase() != PhaseRunning {
		return
	}
	// Clamp dt so a backgrounded window or debugger pause cannot turn
	// into one catastrophic integration step.
	dt = math.Min(math.Max(dt, 0), r.cfg.MaxDeltaTime)

	player := r.Player()
	dir := r.input.MoveDirection()

	r.updatePlayer(dt, player, dir)
	r.updateEnemies(dt, player.Pos)
	r.updatePickups(dt)
	r.spawner.Update(dt, player.Pos)

	// The index always reflects post-movement, pre-collision positions.
	r.index.Rebuild()
	r.resolver.Update(dt, player, r.weapons)

	r.elapsed += dt
	if player.HP <= 0 {
		r.progress.End(EndDefeat)
	} else if r.elapsed >= r.cfg.RunDuration {
		r.progress.End(EndVictory)
	}

	r.reg.Compact()
}

// updatePlayer applies movement intent, clamped to the world bounds.
func (r *Run) updatePlayer(dt float64, player *Entity, dir Vec2) {
	player.Pos = player.Pos.Add(dir.Scale(player.Speed * dt))
	player.Pos.X = math.Max(0, math.Min(player.Pos.X, r.cfg.WorldWidth))
	player.Pos.Y = math.Max(0, math.Min(player.Pos.Y, r.cfg.WorldHeight))
}

// updateEnemies walks every enemy straight toward the player.
func (r *Run) updateEnemies(dt float64, target Vec2) {
	r.reg.ForEachActive(KindEnemy, func(e *Entity) {
		dir := target.Sub(e.Pos).Normalize()
		e.Pos = e.Pos.Add(dir.Scale(e.Speed * dt))
	})
}

// updatePickups ages orbs and expires the ones nobody collected.
func (r *Run) updatePickups(dt float64) {
	r.reg.ForEachActive(KindPickup, func(e *Entity) {
		e.Age += dt
		if e.Age >= e.Lifetime {
			r.reg.Remove(e.ID) // expired, no experience granted
		}
	})
}

// Player returns the run's player entity.
func (r *Run) Player() *Entity {
	p, ok := r.reg.Get(r.playerID)
	if !ok {
		// The player is created in NewRun and never removed.
		panic("run has no player entity")
	}
	return p
}

// Choose forwards an upgrade choice to the progression machine.
func (r *Run) Choose(i int) { r.progress.Choose(i) }

// TogglePause flips the external pause.
func (r *Run) TogglePause() { r.progress.TogglePause() }

// Phase returns the run's current phase.
func (r *Run) Phase() Phase { return r.progress.Phase() }

// Offered returns the upgrade options awaiting a choice.
func (r *Run) Offered() []UpgradeOption { return r.progress.Offered() }

// Stats returns a snapshot of the run's statistics.
func (r *Run) Stats() Stats {
	return Stats{
		Elapsed:     r.elapsed,
		Kills:       r.kills,
		Level:       r.progress.Level(),
		XPCollected: r.xpCollected,
		Cause:       r.progress.Cause(),
	}
}

// Elapsed returns the simulated run time in seconds.
func (r *Run) Elapsed() float64 { return r.elapsed }

// Registry exposes the entity store to the renderer.
func (r *Run) Registry() *Registry { return r.reg }

// Events exposes the run's dispatcher so callers can observe simulation
// events without touching the systems that emit them.
func (r *Run) Events() *Dispatcher { return r.events }

// Weapons returns the player's weapons.
func (r *Run) Weapons() []*Weapon { return r.weapons }

// Progression exposes level/experience state to the HUD.
func (r *Run) Progression() *Progression { return r.progress }

// Config returns the run's configuration.
func (r *Run) Config() Config { return r.cfg }
