package eval

import (
	"fmt"

	"pokerengine/pkg/card"
)

// pipKind selects one of the five pip-count evaluation types spec.md §4.2
// names (49, zero, 6, low_pip_6, 21). Every kind sums each card's pip value
// (Ace=1, 2-10 face value, J/Q/K=10) over whatever pool the rule document's
// Combinator selected and scores the sum against a target, generalizing the
// "closest to N without busting" and "closest to a multiple of N" families
// real pip games use. There is no discrete hand category to name, so
// Describe falls back to reporting the raw sum (spec.md §4.2's "algorithmic
// fallback").
type pipKind int

const (
	pipFortyNine pipKind = iota
	pipZero
	pipSix
	pipLowPipSix
	pipTwentyOne
)

type pipEvaluator struct {
	kind pipKind
}

func newPip49() pipEvaluator       { return pipEvaluator{kind: pipFortyNine} }
func newPipZero() pipEvaluator     { return pipEvaluator{kind: pipZero} }
func newPipSix() pipEvaluator      { return pipEvaluator{kind: pipSix} }
func newPipLowPipSix() pipEvaluator { return pipEvaluator{kind: pipLowPipSix} }
func newPip21() pipEvaluator       { return pipEvaluator{kind: pipTwentyOne} }

func (pipEvaluator) evalType(k pipKind) string {
	switch k {
	case pipFortyNine:
		return "pip_49"
	case pipZero:
		return "pip_zero"
	case pipSix:
		return "pip_six"
	case pipLowPipSix:
		return "pip_low_pip_six"
	default:
		return "pip_21"
	}
}

func pipValue(r card.Rank) int {
	switch r {
	case card.Ace:
		return 1
	case card.Jack, card.Queen, card.King:
		return 10
	default:
		v := int(r)
		if v > 10 {
			return 10
		}
		return v
	}
}

func pipSum(cards []card.Card) int {
	total := 0
	for _, c := range cards {
		total += pipValue(c.Rank)
	}
	return total
}

func distanceToNearestMultiple(sum, modulus int) int {
	remainder := sum % modulus
	if remainder == 0 {
		return 0
	}
	if remainder*2 > modulus {
		return modulus - remainder
	}
	return remainder
}

func (e pipEvaluator) Evaluate(cards []card.Card, opts Options) (*HandResult, bool) {
	if len(cards) == 0 {
		return nil, false
	}
	sum := pipSum(cards)

	var category int
	switch e.kind {
	case pipFortyNine:
		if sum > 49 {
			return nil, false // bust: too far over the target to form a hand.
		}
		category = sum
	case pipTwentyOne:
		if sum > 21 {
			return nil, false
		}
		category = sum
	case pipZero:
		category = 1000 - distanceToNearestMultiple(sum, 10)
	case pipSix:
		category = 1000 - distanceToNearestMultiple(sum, 6)
	case pipLowPipSix:
		category = 1000 - sum
	}

	return &HandResult{
		EvalType:   e.evalType(e.kind),
		Category:   category,
		Cards:      cards,
		HighValues: []int{sum},
		qualifies:  true,
	}, true
}

func (pipEvaluator) Compare(a, b *HandResult) int {
	return compareCategoryValues(a.Category, a.HighValues, b.Category, b.HighValues)
}

func (e pipEvaluator) Describe(hr *HandResult) string {
	if hr == nil {
		return "N/A"
	}
	sum := hr.Category
	if len(hr.HighValues) > 0 {
		sum = hr.HighValues[0]
	}
	return fmt.Sprintf("Pip total %d, %s", sum, card.Join(hr.Cards))
}
