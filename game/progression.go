package game

// Phase is the run's top-level state. Simulation only advances in
// PhaseRunning; both pause phases freeze every entity, timer, and
// cooldown by gating the tick, not by per-component checks.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseLevelUp       // awaiting the player's upgrade choice
	PhasePaused        // user-invoked pause
	PhaseEnded         // victory or defeat, terminal
)

// String returns the phase name for logs and the HUD.
func (p Phase) String() string {
	switch p {
	case PhaseLevelUp:
		return "level-up"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "running"
	}
}

// EndCause records how a run ended.
type EndCause int

const (
	EndNone EndCause = iota
	EndDefeat
	EndVictory
)

// String returns the cause name for the end screen.
func (c EndCause) String() string {
	switch c {
	case EndDefeat:
		return "defeat"
	case EndVictory:
		return "victory"
	default:
		return "none"
	}
}

// Progression accumulates experience, computes level thresholds, and
// drives the pause-for-choice flow on level-up. Surplus experience that
// clears several thresholds at once queues several choices instead of
// being lost.
type Progression struct {
	cfg    Config
	rng    *Rand
	events *Dispatcher
	pool   []UpgradeOption

	phase Phase
	cause EndCause

	level    int
	xp       float64
	xpToNext float64

	pendingChoices int
	offered        []UpgradeOption
}

// NewProgression creates the progression machine in PhaseRunning at
// level 1 with the given upgrade pool.
func NewProgression(cfg Config, rng *Rand, events *Dispatcher, pool []UpgradeOption) *Progression {
	return &Progression{
		cfg:      cfg,
		rng:      rng,
		events:   events,
		pool:     pool,
		phase:    PhaseRunning,
		level:    1,
		xpToNext: cfg.XPToNext(1),
	}
}

// AddExperience credits experience and performs every level-up the new
// total pays for, carrying the excess over each threshold. Each cleared
// threshold queues one upgrade choice; the first one switches the run
// into PhaseLevelUp.
func (p *Progression) AddExperience(v float64) {
	if p.phase == PhaseEnded {
		return
	}
	p.xp += v
	for p.xp >= p.xpToNext {
		p.xp -= p.xpToNext
		p.level++
		p.xpToNext = p.cfg.XPToNext(p.level)
		p.pendingChoices++
		p.events.Dispatch(Event{Type: EventLevelUp, Data: p.level})
	}
	if p.pendingChoices > 0 && p.phase == PhaseRunning {
		p.phase = PhaseLevelUp
		p.rollOptions()
	}
}

// rollOptions draws the offered options without replacement from the pool.
func (p *Progression) rollOptions() {
	n := min(p.cfg.UpgradeChoices, len(p.pool))
	indices := make([]int, len(p.pool))
	for i := range indices {
		indices[i] = i
	}
	p.offered = p.offered[:0]
	for i := 0; i < n; i++ {
		j := i + p.rng.Intn(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		p.offered = append(p.offered, p.pool[indices[i]])
	}
}

// Offered returns the upgrade options currently awaiting a choice.
func (p *Progression) Offered() []UpgradeOption {
	return p.offered
}

// Choose applies the option at index i and consumes one queued choice.
// With further level-ups queued the run stays in PhaseLevelUp with a
// fresh draw; otherwise it resumes.
func (p *Progression) Choose(i int) {
	if p.phase != PhaseLevelUp || i < 0 || i >= len(p.offered) {
		return
	}
	p.offered[i].Apply()
	p.pendingChoices--
	if p.pendingChoices > 0 {
		p.rollOptions()
		return
	}
	p.offered = p.offered[:0]
	p.phase = PhaseRunning
}

// TogglePause flips between PhaseRunning and PhasePaused. A run awaiting
// a choice or already ended is unaffected.
func (p *Progression) TogglePause() {
	switch p.phase {
	case PhaseRunning:
		p.phase = PhasePaused
	case PhasePaused:
		p.phase = PhaseRunning
	}
}

// End moves the run to its terminal phase. The first cause wins; later
// calls are ignored.
func (p *Progression) End(cause EndCause) {
	if p.phase == PhaseEnded {
		return
	}
	p.phase = PhaseEnded
	p.cause = cause
	p.events.Dispatch(Event{Type: EventRunEnded, Data: cause})
}

// Phase returns the current run phase.
func (p *Progression) Phase() Phase { return p.phase }

// Cause returns how the run ended, or EndNone while it is live.
func (p *Progression) Cause() EndCause { return p.cause }

// Level returns the player's current level.
func (p *Progression) Level() int { return p.level }

// Experience returns the experience accumulated toward the next level.
func (p *Progression) Experience() float64 { return p.xp }

// ExperienceToNext returns the current level-up threshold.
func (p *Progression) ExperienceToNext() float64 { return p.xpToNext }
