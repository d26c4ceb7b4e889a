package eval

import (
	"testing"

	"pokerengine/pkg/card"
)

func TestBadugiPrefersFourCardOverThreeCard(t *testing.T) {
	four := mustEvaluate(t, "badugi", card.FromStrings("As 2h 3d 4c"), Options{})
	three := mustEvaluate(t, "badugi", card.FromStrings("As 2h 3d 3c"), Options{})

	ev, err := Get("badugi")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if four.Category != 4 {
		t.Errorf("a clean 4-suit 4-rank hand should have Category 4, got %d", four.Category)
	}
	if three.Category != 3 {
		t.Errorf("dropping the duplicate-rank card should leave a 3-card badugi, got Category %d", three.Category)
	}
	if ev.Compare(four, three) != 1 {
		t.Errorf("a 4-card badugi must always beat a 3-card badugi regardless of rank")
	}
}

func TestBadugiPrefersLowerRanksAceLow(t *testing.T) {
	ev, _ := Get("badugi")
	low := mustEvaluate(t, "badugi", card.FromStrings("As 2h 3d 4c"), Options{})
	high := mustEvaluate(t, "badugi", card.FromStrings("Ts Jh Qd Kc"), Options{})

	if ev.Compare(low, high) != 1 {
		t.Errorf("badugi ranks ace-low, so A-2-3-4 should beat T-J-Q-K")
	}
}

func TestHiDugiPrefersHigherRanks(t *testing.T) {
	ev, err := Get("hi_dugi")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	low := mustEvaluate(t, "hi_dugi", card.FromStrings("2s 3h 4d 5c"), Options{})
	high := mustEvaluate(t, "hi_dugi", card.FromStrings("Ts Jh Qd Kc"), Options{})

	if ev.Compare(high, low) != 1 {
		t.Errorf("hi-dugi ranks higher cards stronger, so T-J-Q-K should beat 2-3-4-5")
	}
}

func TestBadugiRejectsDuplicateSuitEntirely(t *testing.T) {
	hr := mustEvaluate(t, "badugi", card.FromStrings("As 2s 3s 4s"), Options{})
	if hr.Category != 1 {
		t.Errorf("four cards sharing one suit should collapse to a 1-card badugi, got Category %d", hr.Category)
	}
}
