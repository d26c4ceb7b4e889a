package engine

import "pokerengine/pkg/card"

// SeatView is one seat's redacted state as seen by a specific observer, per
// spec.md §6's visibility redaction contract.
type SeatView struct {
	SeatNumber int
	Occupied   bool
	PlayerID   string
	Name       string
	Chips      int
	Status     string
	CurrentBet int
	// HoleCards mirrors table.Seat.HoleCards, with face-down cards owned by
	// someone other than the observer replaced by an opaque token (a zero
	// card.Card cannot be distinguished from a real one by an observer, so
	// redacted entries are simply omitted from the slice and counted
	// instead via HiddenCounts).
	HoleCards    map[string][]card.Card
	HiddenCounts map[string]int
}

// GameStateView is the redacted snapshot returned by ViewFor.
type GameStateView struct {
	State        State
	StepIndex    int
	StepName     string
	CurrentActor int
	Pot          int
	CurrentBet   int
	Community    map[string][]card.Card
	Seats        []SeatView
}

// ViewFor builds the redacted view observerID is entitled to see: their own
// hole cards always visible, other players' face-down cards replaced by a
// hidden count, every exposed or showdown-revealed card visible to everyone
// (spec.md §6).
func (g *Game) ViewFor(observerID string) GameStateView {
	view := GameStateView{
		State:        g.State,
		StepIndex:    g.StepIndex,
		CurrentActor: g.CurrentActor,
		Pot:          g.Bet.Pot,
		CurrentBet:   g.Bet.CurrentBet,
		Community:    g.Table.Community,
	}
	if g.StepIndex >= 0 && g.StepIndex < len(g.Doc.Gameplay) {
		view.StepName = g.Doc.Gameplay[g.StepIndex].Name
	}

	revealAll := g.State == StateComplete

	for _, s := range g.Table.Seats {
		sv := SeatView{
			SeatNumber: s.Number,
			Occupied:   s.Occupied,
			PlayerID:   s.PlayerID,
			Name:       s.Name,
			Chips:      s.Chips,
			Status:     s.Status.String(),
			CurrentBet: s.CurrentBet,
		}
		if s.Occupied {
			sv.HoleCards = make(map[string][]card.Card)
			sv.HiddenCounts = make(map[string]int)
			mine := s.PlayerID == observerID
			for subset, cards := range s.HoleCards {
				faceUp := s.FaceUp[subset]
				for i, c := range cards {
					up := i < len(faceUp) && faceUp[i]
					if mine || up || revealAll {
						sv.HoleCards[subset] = append(sv.HoleCards[subset], c)
					} else {
						sv.HiddenCounts[subset]++
					}
				}
			}
		}
		view.Seats = append(view.Seats, sv)
	}
	return view
}
