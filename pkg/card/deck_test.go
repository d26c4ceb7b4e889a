package card

import "testing"

func TestNewDeckStandard(t *testing.T) {
	d, err := NewDeck(Descriptor{Type: Standard})
	if err != nil {
		t.Fatalf("NewDeck: %v", err)
	}
	if got := d.Remaining(); got != 52 {
		t.Errorf("standard deck has %d cards, want 52", got)
	}
}

func TestNewDeckShortAndTwentyOne(t *testing.T) {
	short, err := NewDeck(Descriptor{Type: Short})
	if err != nil {
		t.Fatalf("NewDeck(Short): %v", err)
	}
	if got := short.Remaining(); got != 36 {
		t.Errorf("short deck has %d cards, want 36", got)
	}

	twenty, err := NewDeck(Descriptor{Type: TwentyOne})
	if err != nil {
		t.Fatalf("NewDeck(TwentyOne): %v", err)
	}
	if got := twenty.Remaining(); got != 20 {
		t.Errorf("twenty-card deck has %d cards, want 20", got)
	}
}

func TestNewDeckWithJokers(t *testing.T) {
	d, err := NewDeck(Descriptor{Type: Standard, Jokers: 2})
	if err != nil {
		t.Fatalf("NewDeck: %v", err)
	}
	if got := d.Remaining(); got != 54 {
		t.Errorf("deck with 2 jokers has %d cards, want 54", got)
	}
}

func TestNewDeckRejectsDuplicates(t *testing.T) {
	_, err := NewDeck(Descriptor{Cards: []Card{{Suit: Spade, Rank: Ace}, {Suit: Spade, Rank: Ace}}})
	if err == nil {
		t.Fatal("expected an error for a duplicate non-joker card")
	}
}

func TestDealExhaustsDeck(t *testing.T) {
	d, err := NewDeck(Descriptor{Type: Standard})
	if err != nil {
		t.Fatalf("NewDeck: %v", err)
	}
	if _, err := d.Deal(52); err != nil {
		t.Fatalf("Deal(52): %v", err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("deck should be empty, has %d cards left", d.Remaining())
	}
	if _, err := d.Deal(1); err != ErrDeckExhausted {
		t.Fatalf("Deal on empty deck: got %v, want ErrDeckExhausted", err)
	}
}

func TestShuffleIsDeterministicForAFixedSeed(t *testing.T) {
	d1, _ := NewDeck(Descriptor{Type: Standard})
	d2, _ := NewDeck(Descriptor{Type: Standard})

	d1.Shuffle(NewDeterministicSource(42))
	d2.Shuffle(NewDeterministicSource(42))

	for i := range d1.Cards {
		if d1.Cards[i] != d2.Cards[i] {
			t.Fatalf("shuffles from the same seed diverged at index %d", i)
			break
		}
	}
}

func TestDealForDebug(t *testing.T) {
	d, _ := NewDeck(Descriptor{Type: Standard})
	target := Card{Suit: Heart, Rank: King}
	before := d.Remaining()

	got, err := d.DealForDebug(target)
	if err != nil {
		t.Fatalf("DealForDebug: %v", err)
	}
	if got != target {
		t.Errorf("DealForDebug returned %v, want %v", got, target)
	}
	if d.Remaining() != before-1 {
		t.Errorf("deck size after DealForDebug = %d, want %d", d.Remaining(), before-1)
	}
}
