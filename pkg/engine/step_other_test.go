package engine

import (
	"testing"

	"pokerengine/pkg/card"
	"pokerengine/pkg/rules"
)

func newPassTheTrashGame(t *testing.T) *Game {
	t.Helper()
	doc, err := rules.Load("../../rules/pass_the_trash.yml")
	if err != nil {
		t.Fatalf("rules.Load: %v", err)
	}
	g := New(doc, 3, card.NewDeterministicSource(1))
	ids := []string{"p0", "p1", "p2"}
	for _, id := range ids {
		if err := g.AddPlayer(id, id, 1000); err != nil {
			t.Fatalf("AddPlayer(%s): %v", id, err)
		}
	}
	if err := g.StartHand(); err != nil {
		t.Fatalf("StartHand: %v", err)
	}
	return g
}

// TestPassDeliversCardsToLeftNeighborSimultaneously exercises spec.md §4.6's
// pass semantics: every actor's chosen cards must actually arrive at the
// named neighbor, not be discarded, and the transfer must not become visible
// to any recipient until every actor in the step has passed.
func TestPassDeliversCardsToLeftNeighborSimultaneously(t *testing.T) {
	g := newPassTheTrashGame(t)

	if g.State != StateDrawing {
		t.Fatalf("expected the pass_three step to pause for interactive input, got state=%v", g.State)
	}

	seats := g.Table.OccupiedSeats()
	sent := make(map[int][]string)
	for _, seat := range seats {
		if g.CurrentActor != seat.Number {
			t.Fatalf("expected seat %d to be the current actor, got %d", seat.Number, g.CurrentActor)
		}
		before := len(seat.HoleCards["default"])
		if before != 5 {
			t.Fatalf("seat %d should hold 5 cards before passing, got %d", seat.Number, before)
		}
		passIdx := []int{0, 1, 2}
		for _, idx := range passIdx {
			sent[seat.Number] = append(sent[seat.Number], seat.HoleCards["default"][idx].String())
		}

		res := g.PlayerAction(seat.PlayerID, ActPass, ActionPayload{CardIndices: passIdx})
		if !res.Success {
			t.Fatalf("pass by seat %d failed: %v", seat.Number, res.Error)
		}
		if len(seat.HoleCards["default"]) != 2 {
			t.Errorf("seat %d should hold 2 cards immediately after passing 3 away, got %d", seat.Number, len(seat.HoleCards["default"]))
		}
	}

	// Once every seat has passed, each should have received 3 cards back and
	// be whole again at 5.
	for _, seat := range seats {
		if got := len(seat.HoleCards["default"]); got != 5 {
			t.Errorf("seat %d should hold 5 cards once the pass step resolves, got %d", seat.Number, got)
		}
	}

	// Direction is "left": seat N's incoming 3 cards must be exactly the 3
	// seat N's right-hand neighbor (previous seat, wrapping) sent away.
	n := len(seats)
	for i, seat := range seats {
		from := seats[(i-1+n)%n]
		received := make(map[string]bool)
		for _, c := range seat.HoleCards["default"][2:] {
			received[c.String()] = true
		}
		for _, want := range sent[from.Number] {
			if !received[want] {
				t.Errorf("seat %d should have received %s from seat %d, got %v", seat.Number, want, from.Number, seat.HoleCards["default"][2:])
			}
		}
	}

	if g.State != StateBetting {
		t.Fatalf("expected betting_round to begin once every seat has passed, got %v", g.State)
	}
}
