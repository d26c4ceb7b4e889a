package betting

import "pokerengine/pkg/table"

// ActionResult is returned by PlaceBet, mirroring the shape spec.md §4.5
// names for place_bet's return value.
type ActionResult struct {
	Success      bool
	Error        error
	AmountAdded  int // chips newly committed by this action.
	WentAllIn    bool
}

// Manager is the Betting Manager (C5): round bet state plus a pluggable
// Calculator for structure-specific raise limits, generalizing the
// teacher's Game fields (BetToCall, LastRaiseAmount, Pot) into a
// standalone, reusable component.
type Manager struct {
	Structure  string // "Limit" | "No-Limit" | "Pot-Limit".
	Calculator Calculator

	Pot              int
	CurrentBet       int // the highest total-in-round bet any seat has made.
	LastRaiseAmount  int // the increment of the last raise, for min-raise computation.
	RaisesThisRound  int
	CurrentBetUnit   BetUnit // Limit-structure only.
}

// NewManager constructs a Manager for one of the three betting structures.
func NewManager(structure string, calc Calculator) *Manager {
	return &Manager{Structure: structure, Calculator: calc}
}

func (m *Manager) minRaiseAmount() int {
	inc := m.LastRaiseAmount
	if inc <= 0 {
		inc = 1
	}
	return m.CurrentBet + inc
}

// MinBet returns the minimum total a seat may bring its bet to this action
// (a call, or the minimum opening bet if CurrentBet is 0).
func (m *Manager) MinBet(actor *table.Seat) int {
	if m.CurrentBet == 0 {
		min, _ := m.Calculator.Limits(m, actor)
		return min
	}
	return m.CurrentBet
}

// AdditionalRequired returns the chips actor must add to call the current
// bet (0 if already matched or over, e.g. after posting a blind larger than
// the eventual bet).
func (m *Manager) AdditionalRequired(actor *table.Seat) int {
	diff := m.CurrentBet - actor.CurrentBet
	if diff < 0 {
		return 0
	}
	return diff
}

// MinRaise returns the minimum total a raise may bring actor's bet to.
func (m *Manager) MinRaise(actor *table.Seat) int {
	min, _ := m.Calculator.Limits(m, actor)
	return min
}

// MaxBet returns the maximum total actor's bet may reach this action.
func (m *Manager) MaxBet(actor *table.Seat) int {
	_, max := m.Calculator.Limits(m, actor)
	return max
}

// PlaceBet validates and applies a bet/raise/call (spec.md §4.5's
// place_bet). totalTo is the cumulative bet-in-round actor will have after
// this action. isForced bypasses minimum-raise validation (but never
// stack/call-amount validation) for blinds/antes/bring-in posts.
func (m *Manager) PlaceBet(actor *table.Seat, totalTo int, isForced bool) ActionResult {
	stackCeiling := actor.Chips + actor.CurrentBet
	if totalTo > stackCeiling {
		return ActionResult{Success: false, Error: errInsufficientChips(actor.Chips, totalTo-actor.CurrentBet)}
	}

	if !isForced {
		min, max := m.Calculator.Limits(m, actor)
		isAllIn := totalTo == stackCeiling
		if totalTo < min && !isAllIn {
			if m.CurrentBet == 0 {
				return ActionResult{Success: false, Error: errBelowMinBet(totalTo, min)}
			}
			return ActionResult{Success: false, Error: errBelowMinRaise(totalTo, min)}
		}
		if totalTo > max {
			return ActionResult{Success: false, Error: errAboveMaxBet(totalTo, max)}
		}
	}

	delta := totalTo - actor.CurrentBet
	if delta < 0 {
		delta = 0
	}
	actor.Chips -= delta
	actor.CurrentBet = totalTo
	actor.TotalBetInHand += delta
	m.Pot += delta

	wentAllIn := actor.Chips == 0
	if wentAllIn {
		actor.Status = table.StatusAllIn
	}

	if totalTo > m.CurrentBet {
		increment := totalTo - m.CurrentBet
		if increment > m.LastRaiseAmount {
			m.LastRaiseAmount = increment
		}
		m.CurrentBet = totalTo
		if !isForced {
			m.RaisesThisRound++
		}
	}

	return ActionResult{Success: true, AmountAdded: delta, WentAllIn: wentAllIn}
}

// RoundComplete reports whether the current betting round has closed: every
// non-folded, non-all-in active seat has matched CurrentBet, per spec.md
// §4.4. aggressor is the seat whose raise opened the round's action
// (-1 if none); actedSinceAggressor should be true once action has
// returned to the aggressor (or, with no aggressor, once every seat has
// acted at least once this round) — the caller (pkg/engine) tracks turn
// progression and supplies this since Manager has no visibility into seat
// order.
func (m *Manager) RoundComplete(seats []*table.Seat, actedSinceAggressor bool) bool {
	if !actedSinceAggressor {
		return false
	}
	for _, s := range seats {
		if s.Status == table.StatusActive && s.CurrentBet != m.CurrentBet {
			return false
		}
	}
	return true
}

// NewRound starts a fresh betting round. preserve=true keeps CurrentBet
// (used transitioning from forced-bet posting into the first betting
// round); preserve=false clears each seat's round bet state (their
// TotalBetInHand, which side-pot construction uses, is untouched), per
// spec.md §4.5.
func (m *Manager) NewRound(preserve bool, seats []*table.Seat) {
	if !preserve {
		for _, s := range seats {
			s.CurrentBet = 0
		}
		m.CurrentBet = 0
	}
	m.LastRaiseAmount = 0
	m.RaisesThisRound = 0
}
