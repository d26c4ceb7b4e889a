package eval

import (
	"fmt"
	"sort"

	"pokerengine/pkg/card"
)

// badugiEvaluator implements badugi ("badugi") and its high-hand mirror
// ("hi_dugi"). A badugi hand is the largest subset of a player's cards with
// all-distinct suits and all-distinct ranks; badugi prefers the lowest such
// subset (Ace low), hi-dugi the highest (Ace high). Category is the subset
// size (1-4), so a 4-card badugi always beats a 3-card one regardless of
// rank, matching real-world badugi rules. HighValues always stores "larger
// is better" values (Ace-low hands are pre-inverted), so Compare can reuse
// the same lexicographic comparison every other evaluator uses.
type badugiEvaluator struct {
	high bool // true for hi_dugi.
}

func newBadugi() badugiEvaluator { return badugiEvaluator{high: false} }
func newHiDugi() badugiEvaluator { return badugiEvaluator{high: true} }

// strength returns a card's rank strength in this evaluator's own direction:
// for hi-dugi, higher ranks are stronger and the raw rank value is used
// directly; for badugi, lower ranks are stronger (Ace lowest), so the value
// is inverted (100-rankLowValue) to keep "larger is always better".
func (e badugiEvaluator) strength(r card.Rank) int {
	if e.high {
		return int(r)
	}
	return 100 - rankLowValue(true, r)
}

func (e badugiEvaluator) Evaluate(cards []card.Card, opts Options) (*HandResult, bool) {
	if len(cards) == 0 {
		return nil, false
	}
	maxSize := 4
	if len(cards) < maxSize {
		maxSize = len(cards)
	}

	var best []card.Card
	var bestValues []int

	for size := maxSize; size >= 1; size-- {
		for _, combo := range combinations(cards, size) {
			if !distinctSuitsAndRanks(combo) {
				continue
			}
			values := e.strengthsDescending(combo)
			if best == nil || lexicographicallyGreater(values, bestValues) {
				best = combo
				bestValues = values
			}
		}
		if best != nil {
			break
		}
	}
	if best == nil {
		return nil, false
	}

	hr := &HandResult{
		EvalType:   e.evalType(),
		Category:   len(best),
		Cards:      best,
		HighValues: bestValues,
	}
	hr.qualifies = true
	if opts.Qualifier != nil {
		hr.qualifies = compareCategoryValues(hr.Category, hr.HighValues, opts.Qualifier.Category, opts.Qualifier.HighValues) >= 0
	}
	return hr, true
}

func (e badugiEvaluator) evalType() string {
	if e.high {
		return "hi_dugi"
	}
	return "badugi"
}

// strengthsDescending returns each card's strength() value, sorted so the
// single most significant (strongest) card comes first, matching how
// compareCategoryValues compares HighValues left-to-right.
func (e badugiEvaluator) strengthsDescending(combo []card.Card) []int {
	values := make([]int, len(combo))
	for i, c := range combo {
		values[i] = e.strength(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}

func lexicographicallyGreater(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}

func distinctSuitsAndRanks(cards []card.Card) bool {
	suits := make(map[card.Suit]bool, len(cards))
	ranks := make(map[card.Rank]bool, len(cards))
	for _, c := range cards {
		if suits[c.Suit] || ranks[c.Rank] {
			return false
		}
		suits[c.Suit] = true
		ranks[c.Rank] = true
	}
	return true
}

func (badugiEvaluator) Compare(a, b *HandResult) int {
	return compareCategoryValues(a.Category, a.HighValues, b.Category, b.HighValues)
}

func (e badugiEvaluator) Describe(hr *HandResult) string {
	if hr == nil {
		return "N/A"
	}
	label := fmt.Sprintf("%d-card Badugi", hr.Category)
	if e.high {
		label = fmt.Sprintf("%d-card Hi-Dugi", hr.Category)
	}
	return fmt.Sprintf("%s, %s", label, card.Join(hr.Cards))
}
