package betting

import (
	"testing"

	"pokerengine/pkg/table"
)

func newTestSeat(number, chips int) *table.Seat {
	tb := table.New(number + 1)
	tb.Sit(number, "p", "P", chips)
	return tb.Seats[number]
}

func TestNoLimitCalculatorMaxIsStack(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	seat := newTestSeat(0, 5000)
	m.CurrentBet = 100

	_, max := m.Calculator.Limits(m, seat)
	if max != 5000 {
		t.Errorf("No-Limit max raise should be the actor's full stack plus the seat's own current bet (5000 + 0), got %d", max)
	}
}

func TestPotLimitCalculatorCapsAtPotSize(t *testing.T) {
	m := NewManager("Pot-Limit", PotLimitCalculator{})
	m.Pot = 300
	m.CurrentBet = 100
	seat := newTestSeat(0, 5000)

	_, max := m.Calculator.Limits(m, seat)
	// amountToCall = 100 - 0 = 100; potAfterCall = 300+100=400; max = 100+400=500
	if max != 500 {
		t.Errorf("Pot-Limit max raise = %d, want 500", max)
	}
}

func TestLimitCalculatorFixedSizing(t *testing.T) {
	m := NewManager("Limit", LimitCalculator{SmallBet: 50, BigBet: 100})
	seat := newTestSeat(0, 5000)

	min, max := m.Calculator.Limits(m, seat)
	if min != 50 || max != 50 {
		t.Errorf("Limit small-bet sizing = (%d,%d), want (50,50)", min, max)
	}
}

func TestLimitCalculatorCapsRaisesPerRound(t *testing.T) {
	m := NewManager("Limit", LimitCalculator{SmallBet: 50, BigBet: 100, MaxRaisesPerRound: 3})
	m.RaisesThisRound = 3
	m.CurrentBet = 150
	seat := newTestSeat(0, 5000)

	min, max := m.Calculator.Limits(m, seat)
	if min != 150 || max != 150 {
		t.Errorf("once the raise cap is hit, Limits should report (CurrentBet,CurrentBet), got (%d,%d)", min, max)
	}
}

func TestPlaceBetRejectsBelowMinBet(t *testing.T) {
	m := NewManager("Limit", LimitCalculator{SmallBet: 50, BigBet: 100})
	seat := newTestSeat(0, 5000)

	res := m.PlaceBet(seat, 10, false)
	if res.Success {
		t.Error("a bet below the minimum must be rejected")
	}
}

func TestPlaceBetAllowsAllInBelowFullMinRaise(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	m.CurrentBet = 100
	m.LastRaiseAmount = 100
	seat := newTestSeat(0, 50) // stack ceiling = 50, less than a full min-raise to 200

	res := m.PlaceBet(seat, 50, false)
	if !res.Success {
		t.Errorf("an all-in for the player's whole stack, short of a full min-raise, must still be accepted: %v", res.Error)
	}
	if !res.WentAllIn {
		t.Error("expected WentAllIn to be true")
	}
}

func TestPlaceBetForcedBypassesMinimum(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	m.CurrentBet = 100
	seat := newTestSeat(0, 5000)

	res := m.PlaceBet(seat, 10, true)
	if !res.Success {
		t.Errorf("isForced=true must bypass minimum-raise validation, got error: %v", res.Error)
	}
}

func TestPlaceBetTracksPotAndChips(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	seat := newTestSeat(0, 5000)

	m.PlaceBet(seat, 200, true)
	if seat.Chips != 4800 {
		t.Errorf("seat chips after a 200 bet = %d, want 4800", seat.Chips)
	}
	if m.Pot != 200 {
		t.Errorf("pot after a 200 bet = %d, want 200", m.Pot)
	}
}

func TestRoundCompleteRequiresMatchingBets(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	m.CurrentBet = 100

	tb := table.New(2)
	tb.Sit(0, "a", "A", 1000)
	tb.Sit(1, "b", "B", 1000)
	tb.Seats[0].CurrentBet = 100
	tb.Seats[1].CurrentBet = 50

	if m.RoundComplete(tb.Seats, true) {
		t.Error("round should not be complete while a seat's bet doesn't match CurrentBet")
	}
	tb.Seats[1].CurrentBet = 100
	if !m.RoundComplete(tb.Seats, true) {
		t.Error("round should be complete once every active seat matches CurrentBet")
	}
}

func TestRoundCompleteRequiresActionSinceAggressor(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	tb := table.New(1)
	tb.Sit(0, "a", "A", 1000)

	if m.RoundComplete(tb.Seats, false) {
		t.Error("RoundComplete must return false when actedSinceAggressor is false, regardless of bet state")
	}
}

func TestNewRoundPreserveKeepsCurrentBet(t *testing.T) {
	m := NewManager("No-Limit", NoLimitCalculator{})
	m.CurrentBet = 100
	seat := newTestSeat(0, 1000)
	seat.CurrentBet = 100

	m.NewRound(true, []*table.Seat{seat})
	if m.CurrentBet != 100 {
		t.Errorf("NewRound(preserve=true) must keep CurrentBet, got %d", m.CurrentBet)
	}
	if seat.CurrentBet != 100 {
		t.Errorf("NewRound(preserve=true) must not clear seat bets, got %d", seat.CurrentBet)
	}

	m.NewRound(false, []*table.Seat{seat})
	if m.CurrentBet != 0 {
		t.Errorf("NewRound(preserve=false) must clear CurrentBet, got %d", m.CurrentBet)
	}
	if seat.CurrentBet != 0 {
		t.Errorf("NewRound(preserve=false) must clear each seat's CurrentBet, got %d", seat.CurrentBet)
	}
}
