package engine

import (
	"testing"

	"pokerengine/pkg/card"
	"pokerengine/pkg/rules"
)

func loadHoldem(t *testing.T) *rules.Document {
	t.Helper()
	doc, err := rules.Load("../../rules/holdem.yml")
	if err != nil {
		t.Fatalf("rules.Load: %v", err)
	}
	return doc
}

func newHeadsUpGame(t *testing.T) *Game {
	t.Helper()
	doc := loadHoldem(t)
	g := New(doc, 2, card.NewDeterministicSource(1))
	if err := g.AddPlayer("p0", "P0", 1000); err != nil {
		t.Fatalf("AddPlayer(p0): %v", err)
	}
	if err := g.AddPlayer("p1", "P1", 1000); err != nil {
		t.Fatalf("AddPlayer(p1): %v", err)
	}
	return g
}

func TestNewGameStartsWaiting(t *testing.T) {
	g := New(loadHoldem(t), 2, card.NewDeterministicSource(1))
	if g.State != StateWaiting {
		t.Errorf("a freshly constructed Game should start in StateWaiting, got %v", g.State)
	}
	if g.CurrentActor != -1 {
		t.Errorf("CurrentActor should be -1 before any hand starts, got %d", g.CurrentActor)
	}
}

func TestAddPlayerRejectedMidHand(t *testing.T) {
	g := newHeadsUpGame(t)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	if err := g.AddPlayer("p2", "P2", 1000); err == nil {
		t.Error("add_player must be rejected once a hand is in progress")
	}
}

func TestStartHandRequiresMinPlayers(t *testing.T) {
	doc := loadHoldem(t)
	g := New(doc, 2, card.NewDeterministicSource(1))
	if err := g.AddPlayer("p0", "P0", 1000); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}
	if err := g.StartHand(); err == nil {
		t.Error("start_hand with only one seated player should fail holdem's 2-player minimum")
	}
}

func TestRemovePlayerRejectedMidHandUnlessSittingOut(t *testing.T) {
	g := newHeadsUpGame(t)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	if err := g.RemovePlayer("p0"); err == nil {
		t.Error("remove_player on an active seat mid-hand must be rejected")
	}
}

func TestPotTotalReflectsPostedBlindsExactlyOnce(t *testing.T) {
	g := newHeadsUpGame(t)
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	// PlaceBet moves chips into Bet.Pot the instant blinds post; PotTotal
	// must not also add seats' CurrentBet on top of that (it's the same
	// money, not a separate pending amount).
	if got := g.PotTotal(); got != 150 {
		t.Errorf("PotTotal after blinds (50+100) = %d, want 150", got)
	}

	total := 0
	for _, s := range g.Table.OccupiedSeats() {
		total += s.Chips
	}
	total += g.PotTotal()
	if total != 2000 {
		t.Errorf("total chips in play (stacks + pot) = %d, want 2000 (2x1000 buy-in)", total)
	}
}
