package engine

import (
	"testing"

	"pokerengine/pkg/table"
)

func totalChipsInPlay(g *Game) int {
	total := g.PotTotal()
	for _, s := range g.Table.OccupiedSeats() {
		total += s.Chips
	}
	return total
}

// TestStartHandPostsBlindsAndDealsHoleCards exercises the first few automatic
// steps of holdem.yml's gameplay list and checks the game pauses at the
// first interactive step (preflop_betting) with the heads-up dealer-acts-
// first exception applied.
func TestStartHandPostsBlindsAndDealsHoleCards(t *testing.T) {
	g := newHeadsUpGame(t)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}

	if g.State != StateBetting {
		t.Fatalf("expected StateBetting once preflop_betting is reached, got %v", g.State)
	}
	seat0, _ := g.Table.SeatByPlayerID("p0")
	seat1, _ := g.Table.SeatByPlayerID("p1")
	if seat0.CurrentBet != 50 {
		t.Errorf("small blind seat CurrentBet = %d, want 50", seat0.CurrentBet)
	}
	if seat1.CurrentBet != 100 {
		t.Errorf("big blind seat CurrentBet = %d, want 100", seat1.CurrentBet)
	}
	if len(seat0.HoleCards["default"]) != 2 || len(seat1.HoleCards["default"]) != 2 {
		t.Errorf("each seat should have been dealt 2 hole cards")
	}
	if g.CurrentActor != seat0.Number {
		t.Errorf("heads-up preflop should have the dealer (small blind) act first, got seat %d", g.CurrentActor)
	}
}

// TestFullHeadsUpHandReachesShowdownAndConservesChips plays a complete
// two-player hold'em hand (call preflop, check every remaining street) to
// showdown and checks the total chip count never changes, only moves
// between seats and the pot.
func TestFullHeadsUpHandReachesShowdownAndConservesChips(t *testing.T) {
	g := newHeadsUpGame(t)
	before := 2000
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	if got := totalChipsInPlay(g); got != before {
		t.Fatalf("chips in play right after blinds = %d, want %d", got, before)
	}

	seat0, _ := g.Table.SeatByPlayerID("p0")
	seat1, _ := g.Table.SeatByPlayerID("p1")

	res := g.PlayerAction(seat0.PlayerID, ActCall, ActionPayload{})
	if !res.Success {
		t.Fatalf("preflop call by the dealer failed: %v", res.Error)
	}
	if got := totalChipsInPlay(g); got != before {
		t.Errorf("chips in play after preflop call = %d, want %d", got, before)
	}
	if g.State != StateBetting || g.CurrentActor != seat1.Number {
		t.Fatalf("expected flop_betting with seat1 (non-dealer) to act first, got state=%v actor=%d", g.State, g.CurrentActor)
	}

	for _, street := range []string{"flop", "turn", "river"} {
		res = g.PlayerAction(seat1.PlayerID, ActCheck, ActionPayload{})
		if !res.Success {
			t.Fatalf("%s check failed: %v", street, res.Error)
		}
		if got := totalChipsInPlay(g); got != before {
			t.Errorf("chips in play after %s check = %d, want %d", street, got, before)
		}
	}

	if g.State != StateComplete {
		t.Fatalf("expected the hand to reach StateComplete after the river, got %v", g.State)
	}
	results, err := g.HandResults()
	if err != nil {
		t.Fatalf("HandResults: %v", err)
	}
	if len(results.Pots) == 0 {
		t.Fatal("expected at least one awarded pot in the showdown result")
	}
	total := 0
	for _, pr := range results.Pots {
		total += pr.Amount
	}
	if total != 200 {
		t.Errorf("total awarded across pots = %d, want 200 (the full preflop-call pot)", total)
	}
	if got := totalChipsInPlay(g); got != before {
		t.Errorf("chips in play after showdown = %d, want %d", got, before)
	}
}

// TestFoldEndsHandImmediatelyAndAwardsFullPot exercises spec.md's fold
// short-circuit: once only one non-folded seat remains, the hand ends
// without any further steps (including showdown) and that seat takes every
// chip wagered so far.
func TestFoldEndsHandImmediatelyAndAwardsFullPot(t *testing.T) {
	g := newHeadsUpGame(t)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	seat0, _ := g.Table.SeatByPlayerID("p0")
	seat1, _ := g.Table.SeatByPlayerID("p1")

	res := g.PlayerAction(seat0.PlayerID, ActFold, ActionPayload{})
	if !res.Success {
		t.Fatalf("fold failed: %v", res.Error)
	}
	if g.State != StateComplete {
		t.Fatalf("expected StateComplete immediately after the only remaining seat folds around, got %v", g.State)
	}
	if seat0.Status != table.StatusFolded {
		t.Errorf("folding seat should be marked Folded")
	}

	results, err := g.HandResults()
	if err != nil {
		t.Fatalf("HandResults: %v", err)
	}
	if results.LastPlayerStanding != seat1.PlayerID {
		t.Errorf("LastPlayerStanding = %q, want %q", results.LastPlayerStanding, seat1.PlayerID)
	}
	if seat1.Chips != 1000+50 { // won the small blind seat0 posted, net of the big blind seat1 gets back.
		t.Errorf("winner's chip count = %d, want %d", seat1.Chips, 1000+50)
	}
	if totalChipsInPlay(g) != 2000 {
		t.Errorf("chips in play after a fold-win = %d, want 2000", totalChipsInPlay(g))
	}
}

func TestStartHandResetsStateBetweenHands(t *testing.T) {
	g := newHeadsUpGame(t)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	seat0, _ := g.Table.SeatByPlayerID("p0")
	g.PlayerAction(seat0.PlayerID, ActFold, ActionPayload{})
	if g.State != StateComplete {
		t.Fatalf("expected the first hand to complete via fold, got %v", g.State)
	}

	if err := g.StartHand(); err != nil {
		t.Fatalf("second StartHand: %v", err)
	}
	if g.Bet.Pot != 150 {
		t.Errorf("second hand's pot after blinds = %d, want 150", g.Bet.Pot)
	}
	for _, s := range g.Table.OccupiedSeats() {
		if s.Status == table.StatusFolded {
			t.Errorf("seat %d should not still be Folded at the start of a new hand", s.Number)
		}
	}
}
