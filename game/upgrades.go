package game

import "math"

// UpgradeOption is one build choice offered at level-up. Apply mutates
// the run it was built for; options are bound to their run at pool
// creation time.
type UpgradeOption struct {
	Name        string
	Description string
	Apply       func()
}

// upgradePool builds the run's upgrade options. Each closure captures the
// run, so a choice applies directly to its player and weapons.
func upgradePool(r *Run) []UpgradeOption {
	return []UpgradeOption{
		{
			Name:        "Sharpen",
			Description: "all weapons +1 level",
			Apply: func() {
				for _, w := range r.weapons {
					w.LevelUp()
				}
			},
		},
		{
			Name:        "Vitality",
			Description: "+20 max HP, heal 20",
			Apply: func() {
				p := r.Player()
				p.MaxHP += 20
				p.HP = math.Min(p.HP+20, p.MaxHP)
			},
		},
		{
			Name:        "Swift Boots",
			Description: "+12% move speed",
			Apply: func() {
				r.Player().Speed *= 1.12
			},
		},
		{
			Name:        "Magnet Coil",
			Description: "+35% pickup magnet radius",
			Apply: func() {
				r.resolver.magnetRadius *= 1.35
			},
		},
		{
			Name:        "Nova Charm",
			Description: "gain a nova weapon (or level it up)",
			Apply: func() {
				for _, w := range r.weapons {
					if w.Kind == WeaponNova {
						w.LevelUp()
						return
					}
				}
				r.weapons = append(r.weapons, NewWeapon(WeaponNova, r.cfg))
			},
		},
		{
			Name:        "Mend",
			Description: "restore 35 HP",
			Apply: func() {
				p := r.Player()
				p.HP = math.Min(p.HP+35, p.MaxHP)
			},
		},
	}
}
