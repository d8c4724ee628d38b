package clover

import "github.com/akmonengine/clover/tuning"

type Tier uint8

const (
	TierGold Tier = iota
	TierSilver
	TierBronze
)

func (t Tier) String() string {
	switch t {
	case TierGold:
		return "gold"
	case TierSilver:
		return "silver"
	}
	return "bronze"
}

// Classify rates a run time in seconds. Bounds are inclusive.
func Classify(elapsed float64, tiers tuning.Tiers) Tier {
	switch {
	case elapsed <= tiers.Gold:
		return TierGold
	case elapsed <= tiers.Silver:
		return TierSilver
	}
	return TierBronze
}

// Timer measures simulation time from the first grab to the finish
type Timer struct {
	elapsed  float64
	started  bool
	finished bool
}

// Start starts the timer once. It returns false if the run already started.
func (t *Timer) Start() bool {
	if t.started {
		return false
	}
	t.started = true
	return true
}

// Advance adds dt to the elapsed time while the timer runs
func (t *Timer) Advance(dt float64) {
	if t.Running() {
		t.elapsed += dt
	}
}

// Finish stops the timer for good. It returns false if it was not running.
func (t *Timer) Finish() bool {
	if !t.Running() {
		return false
	}
	t.finished = true
	return true
}

func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

func (t *Timer) Running() bool {
	return t.started && !t.finished
}

func (t *Timer) Started() bool {
	return t.started
}

func (t *Timer) Finished() bool {
	return t.finished
}
