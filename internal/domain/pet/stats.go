package pet

import "math"

const (
	MinHunger = 0
	MaxHunger = 100
)

// Stats is the gamified engagement state. Score is unbounded, Hunger stays
// within [MinHunger, MaxHunger].
type Stats struct {
	Score  int `json:"score"`
	Hunger int `json:"hunger"`
}

func DefaultStats() Stats {
	return Stats{Score: 0, Hunger: MaxHunger}
}

func ClampHunger(v int) int {
	if v < MinHunger {
		return MinHunger
	}
	if v > MaxHunger {
		return MaxHunger
	}
	return v
}

// HungerDelta bounds delta to the width of the hunger range. Any larger
// magnitude has the same clamped effect and cannot overflow when added.
func HungerDelta(delta int) int {
	const span = MaxHunger - MinHunger
	if delta > span {
		return span
	}
	if delta < -span {
		return -span
	}
	return delta
}

// SaturatingAdd returns a+b, pinned to math.MaxInt or math.MinInt instead of
// wrapping.
func SaturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

// AddScore returns s with delta applied to Score, saturating at the int range.
func (s Stats) AddScore(delta int) Stats {
	s.Score = SaturatingAdd(s.Score, delta)
	return s
}

// AddHunger returns s with delta applied to Hunger and the result clamped.
func (s Stats) AddHunger(delta int) Stats {
	s.Hunger = ClampHunger(s.Hunger + HungerDelta(delta))
	return s
}

// Normalize clamps Hunger into range.
func (s Stats) Normalize() Stats {
	s.Hunger = ClampHunger(s.Hunger)
	return s
}
