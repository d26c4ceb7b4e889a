package eval

import (
	"testing"

	"pokerengine/pkg/card"
)

func TestMemoKeyIsOrderIndependent(t *testing.T) {
	a := card.FromStrings("As Kd Qh Jc Th")
	b := card.FromStrings("Th As Jc Kd Qh")

	if memoKey("standard_high", a, Options{}) != memoKey("standard_high", b, Options{}) {
		t.Errorf("memoKey should ignore input card order, since a hand is a set")
	}
}

func TestMemoKeyDistinguishesEvalType(t *testing.T) {
	cards := card.FromStrings("As Kd Qh Jc Th")
	if memoKey("standard_high", cards, Options{}) == memoKey("skip_straight", cards, Options{}) {
		t.Errorf("memoKey must distinguish eval types sharing the same evaluator implementation")
	}
}

func TestMemoKeyDistinguishesQualifier(t *testing.T) {
	cards := card.FromStrings("8s 6h 4d 3c 2h")
	plain := memoKey("a5_low", cards, Options{})
	qualified := memoKey("a5_low", cards, Options{LowMaxRank: card.Eight})
	if plain == qualified {
		t.Errorf("memoKey must distinguish lookups that differ only by LowMaxRank")
	}
}

func TestRegisteredIncludesEveryTaxonomyTag(t *testing.T) {
	tags := Registered()
	want := []string{
		"standard_high", "skip_straight", "short_deck_high", "twenty_card_high",
		"high_wild", "a5_low_high", "a5_low", "deuce_seven_low", "badugi", "hi_dugi",
		"pip_49", "pip_zero", "pip_six", "pip_low_pip_six", "pip_21",
	}
	set := make(map[string]bool, len(tags))
	for _, tag := range tags {
		set[tag] = true
	}
	for _, w := range want {
		if !set[w] {
			t.Errorf("Registered() is missing taxonomy tag %q", w)
		}
	}
}

func TestGetUnknownEvalTypeError(t *testing.T) {
	_, err := Get("nonexistent_eval_type")
	if err == nil {
		t.Fatal("expected an error for an unregistered eval type")
	}
	if _, ok := err.(*ErrUnknownEvaluation); !ok {
		t.Errorf("expected *ErrUnknownEvaluation, got %T", err)
	}
}
