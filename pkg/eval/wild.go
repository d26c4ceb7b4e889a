package eval

import "pokerengine/pkg/card"

// resolveWildHand substitutes every card matched by opts.Wild with the best
// possible replacement for a standard_high evaluation, generalizing the "a
// joker completes the best non-five-of-a-kind hand" rule spec.md §4.2 names.
// It tries every rank/suit substitution for each wild card and keeps the
// combination that evaluates highest, rejecting any assignment that would
// use two wilds to stand in for the same physical card twice (the "no
// double-ace flushes" constraint).
func resolveWildHand(cards []card.Card, opts Options) []card.Card {
	wildIdx := make([]int, 0, len(cards))
	for i, c := range cards {
		if isWild(c, opts) {
			wildIdx = append(wildIdx, i)
		}
	}
	if len(wildIdx) == 0 {
		return cards
	}

	best := append([]card.Card(nil), cards...)
	bestResult := evaluateDefaultOrder(newHandAnalysis(best))

	candidates := substitutionCandidates()
	var recurse func(pos int, hand []card.Card, used map[card.Card]bool)
	recurse = func(pos int, hand []card.Card, used map[card.Card]bool) {
		if pos == len(wildIdx) {
			var result *HandResult
			if opts.HandRankOrder == nil {
				result = evaluateDefaultOrder(newHandAnalysis(hand))
			} else {
				result = evaluateFromAnalysis(newHandAnalysis(hand), opts.HandRankOrder)
			}
			if result != nil && (bestResult == nil || compareCategoryValues(
				result.Category, result.HighValues, bestResult.Category, bestResult.HighValues) > 0) {
				bestResult = result
				best = append([]card.Card(nil), hand...)
			}
			return
		}
		idx := wildIdx[pos]
		for _, sub := range candidates {
			if used[sub] {
				continue
			}
			trial := append([]card.Card(nil), hand...)
			trial[idx] = sub
			used[sub] = true
			recurse(pos+1, trial, used)
			delete(used, sub)
		}
	}

	used := make(map[card.Card]bool, len(cards))
	for i, c := range cards {
		if !isWildIndex(i, wildIdx) {
			used[c] = true
		}
	}
	recurse(0, append([]card.Card(nil), cards...), used)
	return best
}

func isWildIndex(i int, wildIdx []int) bool {
	for _, w := range wildIdx {
		if w == i {
			return true
		}
	}
	return false
}

func isWild(c card.Card, opts Options) bool {
	for _, w := range opts.Wild {
		switch w.Kind {
		case WildKindJoker:
			if c.Joker {
				return true
			}
		case WildKindRank:
			if c.Rank == w.Rank {
				return true
			}
		case WildKindLowestCommunity:
			if lowestOf(opts.Community).Equal(c) {
				return true
			}
		case WildKindLowestHole:
			if lowestOf(opts.HoleCards).Equal(c) {
				return true
			}
		}
	}
	return false
}

func lowestOf(cards []card.Card) card.Card {
	if len(cards) == 0 {
		return card.Card{}
	}
	lowest := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < lowest.Rank {
			lowest = c
		}
	}
	return lowest
}

// substitutionCandidates enumerates one representative card per rank/suit
// pair a wild could become. A joker never needs to become another joker.
func substitutionCandidates() []card.Card {
	out := make([]card.Card, 0, 52)
	for _, s := range []card.Suit{card.Spade, card.Heart, card.Diamond, card.Club} {
		for r := card.Two; r <= card.Ace; r++ {
			out = append(out, card.Card{Suit: s, Rank: r})
		}
	}
	return out
}
