package game

// EntityKind identifies the kind of a simulated entity. Kinds form a
// closed set; kind-specific behavior is dispatched by the run driver, not
// through a type hierarchy.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindPickup

	kindCount
)

// String returns the kind name for logs.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Entity is a flat record for any simulated object. Fields past the common
// block are kind payload and only meaningful for the matching kind; the
// registry stores all kinds in one homogeneous arena.
type Entity struct {
	ID     EntityID
	Kind   EntityKind
	Active bool

	// Position in world coordinates
	Pos Vec2

	// Collision radius in pixels
	Radius float64

	// Player and enemy payload
	HP    float64
	MaxHP float64
	Speed float64

	// Enemy payload
	ContactDamage float64
	XPValue       float64
	Archetype     EnemyArchetype

	// Pickup payload
	Value      float64
	Magnetized bool
	Age        float64
	Lifetime   float64
}

// initPlayer fills e as the run's player, placed at the arena center.
func (e *Entity) initPlayer(cfg Config) {
	*e = Entity{
		ID:     e.ID,
		Kind:   KindPlayer,
		Active: true,
		Pos:    Vec2{cfg.WorldWidth / 2, cfg.WorldHeight / 2},
		Radius: cfg.PlayerRadius,
		HP:     cfg.PlayerMaxHP,
		MaxHP:  cfg.PlayerMaxHP,
		Speed:  cfg.PlayerSpeed,
	}
}

// initEnemy fills e as an enemy of the given archetype at pos.
func (e *Entity) initEnemy(pos Vec2, arch EnemyArchetype) {
	stats := ArchetypeStats(arch)
	*e = Entity{
		ID:            e.ID,
		Kind:          KindEnemy,
		Active:        true,
		Pos:           pos,
		Radius:        stats.Radius,
		HP:            stats.HP,
		MaxHP:         stats.HP,
		Speed:         stats.Speed,
		ContactDamage: stats.ContactDamage,
		XPValue:       stats.XPValue,
		Archetype:     arch,
	}
}

// initPickup fills e as an experience orb worth value at pos.
func (e *Entity) initPickup(pos Vec2, value float64, cfg Config) {
	*e = Entity{
		ID:       e.ID,
		Kind:     KindPickup,
		Active:   true,
		Pos:      pos,
		Radius:   cfg.PickupRadius,
		Value:    value,
		Lifetime: cfg.PickupLifetime,
	}
}

// Overlaps reports whether the bounding circles of e and o intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	r := e.Radius + o.Radius
	return e.Pos.Sub(o.Pos).LengthSq() < r*r
}
