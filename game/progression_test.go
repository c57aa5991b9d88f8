package game

import "testing"

// testPool builds a pool of inert options with counters, large enough
// that draws without replacement are observable.
func testPool(applied *[]string) []UpgradeOption {
	names := []string{"a", "b", "c", "d", "e"}
	pool := make([]UpgradeOption, 0, len(names))
	for _, name := range names {
		name := name
		pool = append(pool, UpgradeOption{
			Name:  name,
			Apply: func() { *applied = append(*applied, name) },
		})
	}
	return pool
}

func newTestProgression(cfg Config, applied *[]string) *Progression {
	return NewProgression(cfg, NewRand(1), NewDispatcher(), testPool(applied))
}

func TestLevelUpExactThreshold(t *testing.T) {
	cfg := DefaultConfig()
	var applied []string
	p := newTestProgression(cfg, &applied)

	toNext := p.ExperienceToNext()
	p.AddExperience(toNext)

	if got := p.Level(); got != 2 {
		t.Fatalf("level = %d, want 2", got)
	}
	if got := p.Experience(); got != 0 {
		t.Fatalf("leftover experience = %v, want 0", got)
	}
	if got := p.Phase(); got != PhaseLevelUp {
		t.Fatalf("phase = %v, want level-up", got)
	}
	if got := len(p.Offered()); got != cfg.UpgradeChoices {
		t.Fatalf("offered %d options, want %d", got, cfg.UpgradeChoices)
	}
}

func TestMultiLevelUpInOneUpdate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XPBase = 10
	cfg.XPGrowth = 0 // flat thresholds make the arithmetic exact
	var applied []string
	p := newTestProgression(cfg, &applied)

	p.AddExperience(25) // two thresholds of 10, remainder 5

	if got := p.Level(); got != 3 {
		t.Fatalf("level = %d, want 3", got)
	}
	if got := p.Experience(); got != 5 {
		t.Fatalf("carried-over experience = %v, want 5", got)
	}

	// Both queued choices must be consumed before the run resumes.
	p.Choose(0)
	if got := p.Phase(); got != PhaseLevelUp {
		t.Fatalf("phase after first choice = %v, want level-up", got)
	}
	p.Choose(0)
	if got := p.Phase(); got != PhaseRunning {
		t.Fatalf("phase after second choice = %v, want running", got)
	}
	if len(applied) != 2 {
		t.Fatalf("%d options applied, want 2", len(applied))
	}
}

func TestOfferedDrawnWithoutReplacement(t *testing.T) {
	cfg := DefaultConfig()
	var applied []string
	p := newTestProgression(cfg, &applied)

	p.AddExperience(p.ExperienceToNext())
	seen := make(map[string]bool)
	for _, opt := range p.Offered() {
		if seen[opt.Name] {
			t.Fatalf("option %q offered twice in one draw", opt.Name)
		}
		seen[opt.Name] = true
	}
}

func TestChooseAppliesSelectedOption(t *testing.T) {
	cfg := DefaultConfig()
	var applied []string
	p := newTestProgression(cfg, &applied)

	p.AddExperience(p.ExperienceToNext())
	want := p.Offered()[1].Name
	p.Choose(1)

	if len(applied) != 1 || applied[0] != want {
		t.Fatalf("applied %v, want [%s]", applied, want)
	}
	if got := p.Phase(); got != PhaseRunning {
		t.Fatalf("phase = %v, want running", got)
	}
}

func TestChooseOutOfRangeIgnored(t *testing.T) {
	cfg := DefaultConfig()
	var applied []string
	p := newTestProgression(cfg, &applied)

	p.AddExperience(p.ExperienceToNext())
	p.Choose(-1)
	p.Choose(99)
	if len(applied) != 0 {
		t.Fatalf("out-of-range choice applied: %v", applied)
	}
	if got := p.Phase(); got != PhaseLevelUp {
		t.Fatalf("phase = %v, want level-up", got)
	}
}

func TestExternalPauseToggle(t *testing.T) {
	cfg := DefaultConfig()
	var applied []string
	p := newTestProgression(cfg, &applied)

	p.TogglePause()
	if got := p.Phase(); got != PhasePaused {
		t.Fatalf("phase = %v, want paused", got)
	}
	p.TogglePause()
	if got := p.Phase(); got != PhaseRunning {
		t.Fatalf("phase = %v, want running", got)
	}

	// Pausing does not preempt an awaiting choice.
	p.AddExperience(p.ExperienceToNext())
	p.TogglePause()
	if got := p.Phase(); got != PhaseLevelUp {
		t.Fatalf("phase = %v, want level-up", got)
	}
}

func TestEndIsTerminal(t *testing.T) {
	cfg := DefaultConfig()
	var applied []string
	p := newTestProgression(cfg, &applied)

	p.End(EndDefeat)
	if got := p.Phase(); got != PhaseEnded {
		t.Fatalf("phase = %v, want ended", got)
	}
	if got := p.Cause(); got != EndDefeat {
		t.Fatalf("cause = %v, want defeat", got)
	}

	// Later transitions are ignored.
	p.End(EndVictory)
	if got := p.Cause(); got != EndDefeat {
		t.Fatalf("cause overwritten to %v", got)
	}
	p.TogglePause()
	if got := p.Phase(); got != PhaseEnded {
		t.Fatalf("phase left terminal: %v", got)
	}
	lvl := p.Level()
	p.AddExperience(1000)
	if got := p.Level(); got != lvl {
		t.Fatalf("experience credited after end: level %d", got)
	}
}

func TestXPCurveMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := 0.0
	for level := 1; level <= 50; level++ {
		toNext := cfg.XPToNext(level)
		if toNext <= prev {
			t.Fatalf("XPToNext(%d) = %v not increasing past %v", level, toNext, prev)
		}
		prev = toNext
	}
}
