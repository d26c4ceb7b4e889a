// Package betting implements the Betting Manager (spec.md §4.5): bet/raise
// limit calculation, forced bets, round-completion detection, and side-pot
// construction. It is generalized from the teacher's
// pkg/engine/betting_limit.go and pkg/engine/pot.go, built against
// pkg/table.Seat instead of the teacher's engine-owned Player so it can be
// driven by the generic step interpreter in pkg/engine.
package betting

import "pokerengine/pkg/table"

// Calculator computes the legal raise range for the seat currently acting,
// generalizing the teacher's BettingLimitCalculator interface across a third
// structure (Limit) the teacher's two-calculator engine never needed.
type Calculator interface {
	// Limits returns the minimum and maximum total-bet amounts a raise may
	// bring the acting seat to, given the manager's current round state.
	Limits(m *Manager, actor *table.Seat) (minRaiseTotal, maxRaiseTotal int)
}

// PotLimitCalculator ports the teacher's Pot-Limit logic verbatim: max raise
// is the pot size after the player's call.
type PotLimitCalculator struct{}

func (PotLimitCalculator) Limits(m *Manager, actor *table.Seat) (int, int) {
	amountToCall := m.CurrentBet - actor.CurrentBet
	minRaiseTotal := m.minRaiseAmount()

	potAfterCall := m.Pot + amountToCall
	maxRaiseTotal := m.CurrentBet + potAfterCall

	stackCeiling := actor.Chips + actor.CurrentBet
	if maxRaiseTotal > stackCeiling {
		maxRaiseTotal = stackCeiling
	}
	if minRaiseTotal > stackCeiling {
		minRaiseTotal = stackCeiling
		maxRaiseTotal = stackCeiling
	}
	if maxRaiseTotal < minRaiseTotal {
		minRaiseTotal = maxRaiseTotal
	}
	return minRaiseTotal, maxRaiseTotal
}

// NoLimitCalculator ports the teacher's No-Limit logic verbatim: max raise
// is the player's entire stack.
type NoLimitCalculator struct{}

func (NoLimitCalculator) Limits(m *Manager, actor *table.Seat) (int, int) {
	minRaiseTotal := m.minRaiseAmount()
	maxRaiseTotal := actor.Chips + actor.CurrentBet
	if minRaiseTotal > maxRaiseTotal {
		minRaiseTotal = maxRaiseTotal
	}
	return minRaiseTotal, maxRaiseTotal
}

// LimitCalculator implements Fixed-Limit: bet sizes are a fixed small or big
// bet per the current round, with a configured cap on raises per round
// (spec.md §4.5 point 2: "commonly three" — the fourth raise, i.e. a cap of
// 4 total bets in the round, is this engine's Open Question resolution, see
// DESIGN.md).
type LimitCalculator struct {
	// SmallBet/BigBet are the fixed wager sizes for early/late rounds; the
	// caller (pkg/engine) selects which applies via CurrentBetUnit before
	// invoking Limits.
	SmallBet int
	BigBet   int
	// MaxRaisesPerRound caps RaisesThisRound; 0 means unlimited (no-limit/
	// pot-limit games never use this calculator, so 0 never applies here in
	// practice, but is accepted defensively).
	MaxRaisesPerRound int
}

func (c LimitCalculator) Limits(m *Manager, actor *table.Seat) (int, int) {
	unit := c.SmallBet
	if m.CurrentBetUnit == BigBetUnit {
		unit = c.BigBet
	}
	if unit <= 0 {
		unit = m.minRaiseAmount()
	}

	if c.MaxRaisesPerRound > 0 && m.RaisesThisRound >= c.MaxRaisesPerRound {
		// Capped: no further raise is legal, only a call/check/fold; report
		// the current bet as both min and max so the caller's range check
		// for a raise always fails closed.
		return m.CurrentBet, m.CurrentBet
	}

	total := m.CurrentBet + unit
	stackCeiling := actor.Chips + actor.CurrentBet
	if total > stackCeiling {
		total = stackCeiling
	}
	return total, total
}

// BetUnit selects which fixed wager size a LimitCalculator applies.
type BetUnit int

const (
	SmallBetUnit BetUnit = iota
	BigBetUnit
)
