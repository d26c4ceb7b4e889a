package table

import "testing"

func newSeatedTable(t *testing.T, n int) *Table {
	t.Helper()
	tb := New(n)
	for i := 0; i < n; i++ {
		if err := tb.Sit(i, playerID(i), playerID(i), 1000); err != nil {
			t.Fatalf("Sit(%d): %v", i, err)
		}
	}
	return tb
}

func playerID(i int) string {
	return string(rune('a' + i))
}

func TestSitRejectsOccupiedSeat(t *testing.T) {
	tb := New(3)
	if err := tb.Sit(0, "p1", "P1", 500); err != nil {
		t.Fatalf("Sit: %v", err)
	}
	if err := tb.Sit(0, "p2", "P2", 500); err == nil {
		t.Fatal("expected ErrSeatTaken when sitting an occupied seat")
	}
}

func TestSitAnywhereFillsLowestEmptySeat(t *testing.T) {
	tb := New(3)
	tb.Sit(1, "p1", "P1", 500)
	seat, err := tb.SitAnywhere("p2", "P2", 500)
	if err != nil {
		t.Fatalf("SitAnywhere: %v", err)
	}
	if seat.Number != 0 {
		t.Errorf("SitAnywhere should fill seat 0, got seat %d", seat.Number)
	}
}

func TestSitAnywhereErrorsWhenFull(t *testing.T) {
	tb := newSeatedTable(t, 2)
	if _, err := tb.SitAnywhere("p3", "P3", 500); err != ErrNoSeatAvailable {
		t.Errorf("expected ErrNoSeatAvailable, got %v", err)
	}
}

func TestAdvanceButtonSkipsEmptySeats(t *testing.T) {
	tb := New(4)
	tb.Sit(0, "p1", "P1", 500)
	tb.Sit(2, "p2", "P2", 500)
	tb.DealerPos = 0

	tb.AdvanceButton()
	if tb.DealerPos != 2 {
		t.Errorf("AdvanceButton should skip the empty seat 1 and land on 2, got %d", tb.DealerPos)
	}
	tb.AdvanceButton()
	if tb.DealerPos != 0 {
		t.Errorf("AdvanceButton should wrap back to seat 0, got %d", tb.DealerPos)
	}
}

func TestNextActiveFromSkipsFoldedAndEmpty(t *testing.T) {
	tb := newSeatedTable(t, 4)
	tb.Seats[1].Status = StatusFolded
	tb.Seats[2].Occupied = false

	got := tb.NextActiveFrom(0)
	if got != 3 {
		t.Errorf("NextActiveFrom(0) = %d, want 3 (skipping folded seat 1 and empty seat 2)", got)
	}
}

func TestNextActiveFromReturnsMinusOneWhenNoneActive(t *testing.T) {
	tb := newSeatedTable(t, 2)
	tb.Seats[0].Status = StatusFolded
	tb.Seats[1].Status = StatusFolded

	if got := tb.NextActiveFrom(0); got != -1 {
		t.Errorf("NextActiveFrom with no active seats = %d, want -1", got)
	}
}

func TestClearHandsResetsFoldedStatusButNotEliminated(t *testing.T) {
	tb := newSeatedTable(t, 2)
	tb.Seats[0].Status = StatusFolded
	tb.Seats[1].Status = StatusEliminated
	tb.Seats[1].Chips = 0

	tb.ClearHands()

	if tb.Seats[0].Status != StatusActive {
		t.Errorf("a folded seat with chips must reset to Active between hands, got %v", tb.Seats[0].Status)
	}
	if tb.Seats[1].Status != StatusEliminated {
		t.Errorf("an eliminated seat must stay Eliminated across ClearHands, got %v", tb.Seats[1].Status)
	}
}

func TestRemoveEmptiesSeat(t *testing.T) {
	tb := newSeatedTable(t, 2)
	tb.Remove("a")
	if tb.Seats[0].Occupied {
		t.Error("Remove should leave the seat unoccupied")
	}
	if _, ok := tb.SeatByPlayerID("a"); ok {
		t.Error("SeatByPlayerID should no longer find the removed player")
	}
}

func TestFirstActorHeadsUpException(t *testing.T) {
	tb := newSeatedTable(t, 2)
	tb.DealerPos = 0

	got := tb.FirstActor(InitialAfterBigBlind, 1, -1)
	if got != 0 {
		t.Errorf("heads-up after_big_blind should have the dealer (seat 0) act first, got %d", got)
	}
}

func TestFirstActorBringIn(t *testing.T) {
	tb := newSeatedTable(t, 4)
	got := tb.FirstActor(InitialBringIn, -1, 2)
	if got != 2 {
		t.Errorf("FirstActor(bring_in) should return the bring-in seat directly, got %d", got)
	}
}

func TestSubsequentActorHighHandFallsBackToDealerOrder(t *testing.T) {
	tb := newSeatedTable(t, 4)
	tb.DealerPos = 0

	got := tb.SubsequentActor(SubsequentHighHand, -1, -1)
	want := tb.NextActiveFrom(0)
	if got != want {
		t.Errorf("SubsequentActor(high_hand) with no computed high seat should fall back to dealer order: got %d, want %d", got, want)
	}
}

func TestSubsequentActorHighHandUsesSuppliedSeat(t *testing.T) {
	tb := newSeatedTable(t, 4)
	if got := tb.SubsequentActor(SubsequentHighHand, 3, -1); got != 3 {
		t.Errorf("SubsequentActor(high_hand) should return the supplied high-hand seat, got %d", got)
	}
}

func TestBringInSeatPicksConfiguredExtreme(t *testing.T) {
	tb := newSeatedTable(t, 3)
	strength := map[int]int{0: 5, 1: 2, 2: 9}
	lowestFirst := func(a, b *Seat) bool { return strength[a.Number] < strength[b.Number] }

	got := tb.BringInSeat(lowestFirst)
	if got != 1 {
		t.Errorf("BringInSeat with lowest-first comparator should pick seat 1 (lowest strength), got %d", got)
	}
}
