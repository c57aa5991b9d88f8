package game

import "fmt"

// Config holds every tuning constant for a run. It is read-only after the
// run starts; components receive it by value and never write it back.
type Config struct {
	// Screen dimensions in pixels
	ScreenWidth  int
	ScreenHeight int

	// World dimensions in pixels (the arena the player moves in)
	WorldWidth  float64
	WorldHeight float64

	// CellSize is the size of each spatial partition cell in pixels.
	// Tuned to roughly twice the largest entity radius.
	CellSize float64

	// Run pacing
	RunDuration  float64 // seconds until victory
	MaxDeltaTime float64 // dt clamp per tick

	// Player
	PlayerMaxHP        float64
	PlayerSpeed        float64
	PlayerRadius       float64
	PlayerHurtCooldown float64 // seconds between contact damage intakes

	// Spawning
	BaseSpawnInterval float64 // seconds between spawns at t=0
	MinSpawnInterval  float64 // interval floor the ramp never crosses
	SpawnRampFactor   float64 // multiplicative decay applied per ramp step
	SpawnRampEvery    float64 // seconds per ramp step
	SpawnDistance     float64 // radial distance from the player, off-screen
	EnemyCap          int     // max simultaneous active enemies

	// Pickups
	PickupRadius   float64
	PickupLifetime float64 // seconds before an uncollected orb expires
	CollectRadius  float64 // immediate collection distance
	MagnetRadius   float64 // orbs inside this drift toward the player
	MagnetSpeed    float64 // pixels per second while magnetized

	// Experience curve: toNext(level) = XPBase + level*XPGrowth
	XPBase   float64
	XPGrowth float64

	// Base weapon
	WeaponDamage      float64
	WeaponRange       float64
	WeaponAttackSpeed float64 // attacks per second

	// Upgrade choice
	UpgradeChoices int // options offered per level-up
}

// DefaultConfig returns the default tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		WorldWidth:   4096.0,
		WorldHeight:  4096.0,
		CellSize:     64.0,

		RunDuration:  300.0,
		MaxDeltaTime: 0.1,

		PlayerMaxHP:        100.0,
		PlayerSpeed:        220.0,
		PlayerRadius:       12.0,
		PlayerHurtCooldown: 1.0,

		BaseSpawnInterval: 1.5,
		MinSpawnInterval:  0.2,
		SpawnRampFactor:   0.9,
		SpawnRampEvery:    10.0,
		SpawnDistance:     700.0,
		EnemyCap:          200,

		PickupRadius:   5.0,
		PickupLifetime: 20.0,
		CollectRadius:  24.0,
		MagnetRadius:   90.0,
		MagnetSpeed:    320.0,

		XPBase:   10.0,
		XPGrowth: 8.0,

		WeaponDamage:      10.0,
		WeaponRange:       180.0,
		WeaponAttackSpeed: 1.0,

		UpgradeChoices: 3,
	}
}

// Validate checks the configuration before a run starts. Any violation is
// fatal at initialization: the simulation refuses to start with broken
// tuning rather than misbehave later.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	}
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("config: world size %.0fx%.0f must be positive", c.WorldWidth, c.WorldHeight)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("config: cell size %.2f must be positive", c.CellSize)
	}
	if c.RunDuration <= 0 {
		return fmt.Errorf("config: run duration %.2f must be positive", c.RunDuration)
	}
	if c.MaxDeltaTime <= 0 {
		return fmt.Errorf("config: max delta time %.3f must be positive", c.MaxDeltaTime)
	}
	if c.PlayerMaxHP <= 0 {
		return fmt.Errorf("config: player max HP %.2f must be positive", c.PlayerMaxHP)
	}
	if c.PlayerSpeed <= 0 || c.PlayerRadius <= 0 {
		return fmt.Errorf("config: player speed and radius must be positive")
	}
	if c.PlayerHurtCooldown < 0 {
		return fmt.Errorf("config: hurt cooldown %.2f must not be negative", c.PlayerHurtCooldown)
	}
	if c.MinSpawnInterval <= 0 || c.BaseSpawnInterval < c.MinSpawnInterval {
		return fmt.Errorf("config: spawn interval range [%.2f, %.2f] is invalid",
			c.MinSpawnInterval, c.BaseSpawnInterval)
	}
	if c.SpawnRampFactor <= 0 || c.SpawnRampFactor > 1 {
		return fmt.Errorf("config: spawn ramp factor %.2f must be in (0, 1]", c.SpawnRampFactor)
	}
	if c.SpawnRampEvery <= 0 {
		return fmt.Errorf("config: spawn ramp step %.2f must be positive", c.SpawnRampEvery)
	}
	if c.EnemyCap <= 0 {
		return fmt.Errorf("config: enemy cap %d must be positive", c.EnemyCap)
	}
	if c.PickupLifetime <= 0 {
		return fmt.Errorf("config: pickup lifetime %.2f must be positive", c.PickupLifetime)
	}
	if c.CollectRadius <= 0 || c.MagnetRadius < c.CollectRadius {
		return fmt.Errorf("config: pickup radii (collect %.2f, magnet %.2f) are invalid",
			c.CollectRadius, c.MagnetRadius)
	}
	if c.MagnetSpeed <= 0 {
		return fmt.Errorf("config: magnet speed %.2f must be positive", c.MagnetSpeed)
	}
	if c.XPBase <= 0 || c.XPGrowth < 0 {
		return fmt.Errorf("config: experience curve (base %.2f, growth %.2f) is invalid", c.XPBase, c.XPGrowth)
	}
	if c.WeaponDamage <= 0 || c.WeaponRange <= 0 || c.WeaponAttackSpeed <= 0 {
		return fmt.Errorf("config: weapon base stats must be positive")
	}
	if c.UpgradeChoices <= 0 {
		return fmt.Errorf("config: upgrade choices %d must be positive", c.UpgradeChoices)
	}
	return nil
}

// XPToNext returns the experience needed to finish the given level.
// Monotonically increasing in level.
func (c Config) XPToNext(level int) float64 {
	if level < 1 {
		level = 1
	}
	return c.XPBase + float64(level)*c.XPGrowth
}

// CellCountX returns the number of cells in the X direction.
func (c Config) CellCountX() int {
	return int(c.WorldWidth / c.CellSize)
}

// CellCountY returns the number of cells in the Y direction.
func (c Config) CellCountY() int {
	return int(c.WorldHeight / c.CellSize)
}
