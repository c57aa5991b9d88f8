package game

import "math"

// Spawner decides when and where enemies enter the arena. The interval
// between spawns decays exponentially with elapsed run time toward a
// configured floor, so difficulty ramps continuously.
type Spawner struct {
	cfg Config
	reg *Registry
	rng *Rand

	elapsed   float64
	sinceLast float64
}

// NewSpawner creates a spawner over the given registry.
func NewSpawner(cfg Config, reg *Registry, rng *Rand) *Spawner {
	return &Spawner{cfg: cfg, reg: reg, rng: rng}
}

// CurrentInterval returns the spawn interval at the given elapsed time:
// base * factor^(elapsed/rampEvery), clamped to the floor. Monotonically
// non-increasing, approaches the floor but never crosses it.
func (s *Spawner) CurrentInterval(elapsed float64) float64 {
	interval := s.cfg.BaseSpawnInterval * math.Pow(s.cfg.SpawnRampFactor, elapsed/s.cfg.SpawnRampEvery)
	return math.Max(interval, s.cfg.MinSpawnInterval)
}

// Update accumulates time and spawns enemies for every full interval that
// elapsed. The remainder beyond each interval carries over, so a slow
// frame catches up instead of drifting. At the population cap the spawn
// is skipped but the timer still advances past the interval; nothing is
// queued, so a later drop below the cap spawns on the next due tick
// rather than bursting.
func (s *Spawner) Update(dt float64, playerPos Vec2) {
	s.elapsed += dt
	s.sinceLast += dt

	for {
		interval := s.CurrentInterval(s.elapsed)
		if s.sinceLast < interval {
			return
		}
		s.sinceLast -= interval
		if s.reg.CountByKind(KindEnemy) >= s.cfg.EnemyCap {
			continue // cap reached, skip silently
		}
		s.spawnOne(playerPos)
	}
}

// spawnOne places a new enemy at the spawn distance from the player at a
// uniformly random angle, so it always enters from off-screen. The point
// may fall outside the world bounds when the player stands near an edge;
// enemies are not world-clamped and simply walk back in, and the spatial
// index clamps out-of-bounds cell coordinates on insertion. Clamping the
// position here instead would drag edge spawns onto the border, right
// next to the player.
func (s *Spawner) spawnOne(playerPos Vec2) {
	angle := s.rng.Angle()
	pos := Vec2{
		X: playerPos.X + math.Cos(angle)*s.cfg.SpawnDistance,
		Y: playerPos.Y + math.Sin(angle)*s.cfg.SpawnDistance,
	}

	e := s.reg.Add(KindEnemy)
	e.initEnemy(pos, RandomArchetype(s.rng))
}

// Elapsed returns the total simulated time the spawner has seen.
func (s *Spawner) Elapsed() float64 {
	return s.elapsed
}
