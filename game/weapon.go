package game

// WeaponKind defines the flavor of a player weapon.
type WeaponKind int

const (
	WeaponBolt WeaponKind = iota // long range, steady cadence
	WeaponNova                   // short range, heavy hit
)

// String returns the weapon name for the HUD.
func (k WeaponKind) String() string {
	switch k {
	case WeaponNova:
		return "nova"
	default:
		return "bolt"
	}
}

// WeaponStats holds the level-1 stats for a weapon kind.
type WeaponStats struct {
	Damage      float64
	Range       float64
	AttackSpeed float64 // attacks per second
}

// KindStats returns the base stats for a weapon kind. The bolt takes its
// numbers from the run configuration; other kinds are fixed tables.
func KindStats(kind WeaponKind, cfg Config) WeaponStats {
	switch kind {
	case WeaponNova:
		return WeaponStats{
			Damage:      25.0,
			Range:       90.0,
			AttackSpeed: 0.8,
		}
	default:
		return WeaponStats{
			Damage:      cfg.WeaponDamage,
			Range:       cfg.WeaponRange,
			AttackSpeed: cfg.WeaponAttackSpeed,
		}
	}
}

// Weapon is owned by the player and has no position of its own. It is
// never destroyed mid-run, only leveled up.
type Weapon struct {
	Kind        WeaponKind
	Damage      float64
	Range       float64
	AttackSpeed float64
	Level       int

	// RemainingCooldown counts down to the next attack.
	RemainingCooldown float64
}

// NewWeapon creates a level-1 weapon of the given kind.
func NewWeapon(kind WeaponKind, cfg Config) *Weapon {
	stats := KindStats(kind, cfg)
	return &Weapon{
		Kind:        kind,
		Damage:      stats.Damage,
		Range:       stats.Range,
		AttackSpeed: stats.AttackSpeed,
		Level:       1,
	}
}

// Cooldown returns the full cooldown between attacks.
func (w *Weapon) Cooldown() float64 {
	return 1.0 / w.AttackSpeed
}

// LevelUp raises the weapon one level: +20% damage, +5% range.
func (w *Weapon) LevelUp() {
	w.Level++
	w.Damage *= 1.2
	w.Range *= 1.05
}
