package game

import (
	"math"
	"testing"
)

func TestSpawnerInitialInterval(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpawner(cfg, NewRegistry(8), NewRand(1))
	if got := s.CurrentInterval(0); got != cfg.BaseSpawnInterval {
		t.Fatalf("CurrentInterval(0) = %v, want %v", got, cfg.BaseSpawnInterval)
	}
}

func TestSpawnerIntervalRampsTowardFloor(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpawner(cfg, NewRegistry(8), NewRand(1))

	prev := math.Inf(1)
	for elapsed := 0.0; elapsed <= 600; elapsed += 5 {
		got := s.CurrentInterval(elapsed)
		if got > prev {
			t.Fatalf("interval increased: %v at t=%v after %v", got, elapsed, prev)
		}
		if got < cfg.MinSpawnInterval {
			t.Fatalf("interval %v below the floor %v at t=%v", got, cfg.MinSpawnInterval, elapsed)
		}
		prev = got
	}
	// Far out, the ramp sits on the floor.
	if got := s.CurrentInterval(1e6); got != cfg.MinSpawnInterval {
		t.Fatalf("CurrentInterval(1e6) = %v, want floor %v", got, cfg.MinSpawnInterval)
	}
}

func TestSpawnerCatchUpAfterSlowFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpawnInterval = 0.5
	cfg.MinSpawnInterval = 0.5 // flat interval keeps the count exact
	reg := NewRegistry(32)
	s := NewSpawner(cfg, reg, NewRand(1))

	// One update covering three and a half intervals spawns three times.
	s.Update(1.75, Vec2{2048, 2048})
	if got := reg.CountByKind(KindEnemy); got != 3 {
		t.Fatalf("spawned %d enemies for 3.5 intervals, want 3", got)
	}

	// The half interval carried over: another half interval is due soon.
	s.Update(0.25, Vec2{2048, 2048})
	if got := reg.CountByKind(KindEnemy); got != 4 {
		t.Fatalf("carry-over lost: %d enemies, want 4", got)
	}
}

func TestSpawnerRespectsPopulationCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpawnInterval = 0.2
	cfg.MinSpawnInterval = 0.2
	cfg.EnemyCap = 5
	reg := NewRegistry(32)
	s := NewSpawner(cfg, reg, NewRand(1))

	for i := 0; i < 500; i++ {
		s.Update(0.2, Vec2{2048, 2048})
		if got := reg.CountByKind(KindEnemy); got > cfg.EnemyCap {
			t.Fatalf("population %d exceeds cap %d", got, cfg.EnemyCap)
		}
	}
	if got := reg.CountByKind(KindEnemy); got != cfg.EnemyCap {
		t.Fatalf("population %d, want the cap %d", got, cfg.EnemyCap)
	}
}

func TestSpawnerResumesAfterCapDrops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpawnInterval = 0.2
	cfg.MinSpawnInterval = 0.2
	cfg.EnemyCap = 1
	reg := NewRegistry(8)
	s := NewSpawner(cfg, reg, NewRand(1))

	s.Update(0.2, Vec2{2048, 2048})
	if got := reg.CountByKind(KindEnemy); got != 1 {
		t.Fatalf("first spawn missing, count %d", got)
	}

	// At the cap the due spawn is skipped, not queued.
	s.Update(0.2, Vec2{2048, 2048})
	if got := reg.CountByKind(KindEnemy); got != 1 {
		t.Fatalf("spawned past the cap, count %d", got)
	}

	// Once below the cap, the next due tick spawns exactly one, with no
	// burst of the skipped spawns.
	reg.ForEachActive(KindEnemy, func(e *Entity) { reg.Remove(e.ID) })
	reg.Compact()
	s.Update(0.2, Vec2{2048, 2048})
	if got := reg.CountByKind(KindEnemy); got != 1 {
		t.Fatalf("after cap drop spawned %d, want 1", got)
	}
}

func TestSpawnPositionOffScreen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpawnInterval = 0.5
	cfg.MinSpawnInterval = 0.5
	reg := NewRegistry(64)
	s := NewSpawner(cfg, reg, NewRand(7))

	center := Vec2{cfg.WorldWidth / 2, cfg.WorldHeight / 2}
	for i := 0; i < 20; i++ {
		s.Update(0.5, center)
	}
	reg.ForEachActive(KindEnemy, func(e *Entity) {
		d := Distance(e.Pos, center)
		if math.Abs(d-cfg.SpawnDistance) > 1e-6 {
			t.Fatalf("enemy spawned at distance %v, want %v", d, cfg.SpawnDistance)
		}
	})
}

func TestSpawnDistanceWithPlayerAtEdge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpawnInterval = 0.5
	cfg.MinSpawnInterval = 0.5

	// The player is movement-clamped to the world bounds, so sitting on an
	// edge or in a corner is normal play. Spawns must still land at the
	// full spawn distance, even when the rolled angle points out of the
	// world; pulling them onto the border would put them next to the
	// player.
	positions := []Vec2{
		{0, cfg.WorldHeight / 2},
		{cfg.WorldWidth, cfg.WorldHeight / 2},
		{0, 0},
		{cfg.WorldWidth, cfg.WorldHeight},
	}
	for _, playerPos := range positions {
		reg := NewRegistry(128)
		s := NewSpawner(cfg, reg, NewRand(7))
		for i := 0; i < 100; i++ {
			s.Update(0.5, playerPos)
		}
		reg.ForEachActive(KindEnemy, func(e *Entity) {
			d := Distance(e.Pos, playerPos)
			if math.Abs(d-cfg.SpawnDistance) > 1e-6 {
				t.Fatalf("player at %v: enemy spawned at distance %v, want %v",
					playerPos, d, cfg.SpawnDistance)
			}
		})
	}
}
