package eval

import (
	"testing"

	"pokerengine/pkg/card"
)

func TestJokerCompletesFourOfAKind(t *testing.T) {
	cards := append(card.FromStrings("As Ah Ad Kc"), card.Card{Joker: true})
	hr, ok := (standardEvaluator{}).Evaluate(cards, Options{Wild: []WildSpec{{Kind: WildKindJoker, Role: WildRoleWild}}})
	if !ok {
		t.Fatal("expected a valid hand once the joker substitutes in")
	}
	if HandRank(hr.Category) != FourOfAKind {
		t.Errorf("a joker alongside three aces should complete four of a kind, got category %v", HandRank(hr.Category))
	}
}

func TestWildRankSubstitutesForAnySuit(t *testing.T) {
	cards := card.FromStrings("2s 2h Ad Kc Qd")
	hr, ok := (standardEvaluator{}).Evaluate(cards, Options{Wild: []WildSpec{{Kind: WildKindRank, Role: WildRoleWild, Rank: card.Two}}})
	if !ok {
		t.Fatal("expected a valid hand")
	}
	if HandRank(hr.Category) < ThreeOfAKind {
		t.Errorf("two deuces wild alongside an ace should build at least trip aces, got category %v", HandRank(hr.Category))
	}
}

func TestLowestHoleCardIsWild(t *testing.T) {
	hole := card.FromStrings("2h 9s")
	cards := card.FromStrings("2h Ah Kh Qh Jh")
	hr, ok := (standardEvaluator{}).Evaluate(cards, Options{
		Wild:      []WildSpec{{Kind: WildKindLowestHole, Role: WildRoleWild}},
		HoleCards: hole,
	})
	if !ok {
		t.Fatal("expected a valid hand once the lowest hole card substitutes in")
	}
	if HandRank(hr.Category) != StraightFlush && HandRank(hr.Category) != RoyalFlush {
		t.Errorf("2h (the lowest of this seat's hole cards) wild should complete a straight flush from A-K-Q-J-h, got category %v", HandRank(hr.Category))
	}
}

func TestNoWildSpecsLeavesHandUnchanged(t *testing.T) {
	cards := card.FromStrings("As Ah Kd Kc Qh")
	hr, ok := (standardEvaluator{}).Evaluate(cards, Options{})
	if !ok {
		t.Fatal("expected a valid hand")
	}
	if HandRank(hr.Category) != TwoPair {
		t.Errorf("A-A-K-K-Q with no wild cards should evaluate as two pair, got %v", HandRank(hr.Category))
	}
}
