package game

// EnemyArchetype defines the behavior/stat class of an enemy.
type EnemyArchetype int

const (
	ArchetypeChaser EnemyArchetype = iota // baseline, walks straight at the player
	ArchetypeRunner                       // fast, fragile, low damage
	ArchetypeTank                         // slow, tough, hits hard
)

// EnemyStats holds the spawn-time stats for an archetype.
type EnemyStats struct {
	Speed         float64
	HP            float64
	Radius        float64
	ContactDamage float64
	XPValue       float64
}

// ArchetypeStats returns the stats for an enemy archetype.
func ArchetypeStats(arch EnemyArchetype) EnemyStats {
	switch arch {
	case ArchetypeRunner:
		return EnemyStats{
			Speed:         190.0,
			HP:            30.0,
			Radius:        8.0,
			ContactDamage: 8.0,
			XPValue:       4.0,
		}
	case ArchetypeTank:
		return EnemyStats{
			Speed:         75.0,
			HP:            140.0,
			Radius:        16.0,
			ContactDamage: 18.0,
			XPValue:       12.0,
		}
	default:
		return EnemyStats{
			Speed:         120.0,
			HP:            50.0,
			Radius:        10.0,
			ContactDamage: 10.0,
			XPValue:       5.0,
		}
	}
}

// archetypeWeights biases spawning toward the baseline chaser.
// Indexed by EnemyArchetype.
var archetypeWeights = []int{70, 20, 10}

// RandomArchetype picks a weighted random enemy archetype.
func RandomArchetype(rng *Rand) EnemyArchetype {
	return EnemyArchetype(rng.ChooseWeighted(archetypeWeights))
}
