package eval

import (
	"sync"

	"pokerengine/pkg/card"
)

// rankTable precomputes, once at process startup, the category and tiebreak
// values every possible 5-card standard-high hand resolves to under
// defaultHandRankOrder() (spec.md §4.2: "Implementations MUST precompute ...
// these tables at startup; lookup MUST be O(1) amortized"). standardEvaluator
// always receives exactly 5 cards, so a hand's eventual HandResult is a pure
// function of its rank multiset (sorted descending) and whether all five
// cards share one suit — two cards of the same rank can never also share a
// suit, so a flush is only reachable when every rank is distinct. That pair
// is the rankKey.
//
// The table holds one entry per rank pattern: C(17,5) = 6188 non-flush
// multisets (13 ranks chosen with repetition, "stars and bars") plus a flush
// variant for each of the C(13,5) = 1287 all-distinct combinations, 7475
// entries in all — the same order of magnitude as the 7462 distinct
// equivalence classes in the well-known Cactus-Kev 5-card evaluator, though
// not identical to it (Cactus Kev's count folds flush and non-flush hands of
// the same rank pattern into one shared HighCard/Straight bucket; this table
// keeps them separate keys for a simpler lookup).
type rankKey struct {
	ranks [5]card.Rank
	flush bool
}

type rankEntry struct {
	category   int
	highValues []int
}

var (
	rankTableOnce sync.Once
	rankTableData map[rankKey]rankEntry
)

func ensureRankTable() map[rankKey]rankEntry {
	rankTableOnce.Do(func() {
		rankTableData = buildRankTable()
	})
	return rankTableData
}

// buildRankTable enumerates every rank pattern a 5-card hand can have and
// records the HandResult evaluateFromAnalysis assigns it under the default
// order, by running that same evaluator once per pattern against a
// synthetic representative hand. This only needs to happen once per process,
// not once per Evaluate call.
func buildRankTable() map[rankKey]rankEntry {
	table := make(map[rankKey]rankEntry, 7488)

	ranks := make([]card.Rank, 0, 13)
	for r := card.Two; r <= card.Ace; r++ {
		ranks = append(ranks, r)
	}

	var current [5]card.Rank
	var generate func(pos, startIdx int)
	generate = func(pos, startIdx int) {
		if pos == len(current) {
			addRankTableEntry(table, current)
			return
		}
		for i := startIdx; i < len(ranks); i++ {
			current[pos] = ranks[i]
			generate(pos+1, i)
		}
	}
	generate(0, 0)
	return table
}

func addRankTableEntry(table map[rankKey]rankEntry, ranksAscending [5]card.Rank) {
	var descending [5]card.Rank
	for i, r := range ranksAscending {
		descending[len(descending)-1-i] = r
	}

	nonFlush := syntheticHand(descending, false)
	if result := evaluateFromAnalysis(newHandAnalysis(nonFlush), defaultHandRankOrder()); result != nil {
		table[rankKey{ranks: descending, flush: false}] = rankEntry{
			category: result.Category, highValues: result.HighValues,
		}
	}

	if !allDistinct(descending) {
		return
	}
	flushHand := syntheticHand(descending, true)
	if result := evaluateFromAnalysis(newHandAnalysis(flushHand), defaultHandRankOrder()); result != nil {
		table[rankKey{ranks: descending, flush: true}] = rankEntry{
			category: result.Category, highValues: result.HighValues,
		}
	}
}

func allDistinct(ranks [5]card.Rank) bool {
	seen := make(map[card.Rank]bool, len(ranks))
	for _, r := range ranks {
		if seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

// syntheticHand builds a representative 5-card hand for a descending rank
// pattern, used only while building rankTable. Suits are assigned round-robin
// so two cards sharing a rank never collide on suit (a standard deck never
// has more than four of any rank); flush forces every card onto one suit,
// which addRankTableEntry only does when every rank is distinct, since that's
// the only arrangement a real deck could deal.
func syntheticHand(ranks [5]card.Rank, flush bool) []card.Card {
	suits := [4]card.Suit{card.Spade, card.Heart, card.Diamond, card.Club}
	hand := make([]card.Card, len(ranks))
	for i, r := range ranks {
		suit := suits[i%len(suits)]
		if flush {
			suit = card.Spade
		}
		hand[i] = card.Card{Suit: suit, Rank: r}
	}
	return hand
}

// rankKeyFor derives the lookup key for an already-analyzed hand.
// analysis.cards is sorted descending by newHandAnalysis, so no further
// sorting is needed here.
func rankKeyFor(analysis *handAnalysis) rankKey {
	var key rankKey
	for i, c := range analysis.cards {
		key.ranks[i] = c.Rank
	}
	for _, count := range analysis.suitCounts {
		if count == 5 {
			key.flush = true
			break
		}
	}
	return key
}

// evaluateDefaultOrder is the O(1) fast path for the (overwhelmingly common)
// case of evaluating under defaultHandRankOrder(): a single map lookup
// resolves the category, replacing the linear scan through every category's
// detector that evaluateFromAnalysis would otherwise run. Building the
// concrete HandResult (the exact Cards, in the winning category's order)
// still takes one pass over this hand's actual cards, via
// buildResultForCategory — the table tells us *which* detector will match,
// not the five real cards it will pick. A table miss (which should not
// happen for any legal 5-card hand) falls back to the exhaustive search
// rather than risk returning a wrong answer.
func evaluateDefaultOrder(analysis *handAnalysis) *HandResult {
	entry, ok := ensureRankTable()[rankKeyFor(analysis)]
	if ok {
		if hr := buildResultForCategory(analysis, HandRank(entry.category)); hr != nil {
			return hr
		}
	}
	return evaluateFromAnalysis(analysis, defaultHandRankOrder())
}
