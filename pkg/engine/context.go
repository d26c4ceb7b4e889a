package engine

// gameContext adapts a Game (for global conditions) or a single seat-scoped
// view to rules.Context, so Document.ActiveBestHands/ResolveForcedBets/
// ResolveBettingOrder can evaluate Condition predicates without pkg/rules
// importing pkg/engine.
type gameContext struct {
	g    *Game
	seat int // -1 for table-global conditions (community-only predicates).
}

func (c gameContext) Choice(key string) (string, bool) {
	if c.seat >= 0 {
		if v, ok := c.g.Table.Seats[c.seat].Choices[key]; ok {
			return v, ok
		}
	}
	v, ok := c.g.choices[key]
	return v, ok
}

func (c gameContext) CommunitySuitCount(subset, suit string) int {
	cards := c.g.Table.Community[subset]
	if suit == "any" || suit == "" {
		return len(cards)
	}
	count := 0
	for _, cd := range cards {
		if cd.Suit.String() == suit {
			count++
		}
	}
	return count
}

func (c gameContext) HandSize(subset string) int {
	if c.seat < 0 {
		return 0
	}
	return len(c.g.Table.Seats[c.seat].HoleCards[subset])
}

func (c gameContext) Exposed(subset string) bool {
	if c.seat < 0 {
		return false
	}
	faceUp := c.g.Table.Seats[c.seat].FaceUp[subset]
	if len(faceUp) == 0 {
		return false
	}
	for _, up := range faceUp {
		if !up {
			return false
		}
	}
	return true
}
