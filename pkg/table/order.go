package table

// InitialOrder computes the first actor of a hand under one of the three
// policies spec.md §4.4 names.
type InitialOrder string

const (
	InitialAfterBigBlind InitialOrder = "after_big_blind"
	InitialBringIn       InitialOrder = "bring_in"
	InitialDealer        InitialOrder = "dealer"
)

// SubsequentOrder computes who opens each post-initial betting round.
type SubsequentOrder string

const (
	SubsequentHighHand  SubsequentOrder = "high_hand"
	SubsequentDealer    SubsequentOrder = "dealer"
	SubsequentLastActor SubsequentOrder = "last_actor"
)

// FirstActor resolves the first-to-act seat for a hand's opening betting
// round, per spec.md §4.4. bigBlindSeat and bringInSeat are only meaningful
// for their respective policies.
func (t *Table) FirstActor(policy InitialOrder, bigBlindSeat, bringInSeat int) int {
	active := t.ActiveSeats()
	switch policy {
	case InitialBringIn:
		return bringInSeat
	case InitialDealer:
		if len(active) == 2 {
			return t.DealerPos // heads-up: dealer (= small blind) acts first, same exception as after_big_blind.
		}
		return t.NextActiveFrom(t.DealerPos)
	case InitialAfterBigBlind:
		fallthrough
	default:
		if len(active) == 2 {
			return t.DealerPos
		}
		return t.NextActiveFrom(bigBlindSeat)
	}
}

// SubsequentActor resolves who opens a later betting round (flop/turn/river
// and stud's post-first-round streets).
//
// highHandSeat is the winner of a HighHandRanker comparison (supplied by the
// caller, since it depends on eval.Evaluator and a BestHand configuration
// this package has no visibility into); lastAggressorSeat is the seat that
// made the last aggressive action in the hand so far, or -1 if none has.
func (t *Table) SubsequentActor(policy SubsequentOrder, highHandSeat, lastAggressorSeat int) int {
	switch policy {
	case SubsequentHighHand:
		if highHandSeat >= 0 {
			return highHandSeat
		}
		return t.NextActiveFrom(t.DealerPos)
	case SubsequentLastActor:
		if lastAggressorSeat >= 0 {
			return lastAggressorSeat
		}
		return t.NextActiveFrom(t.DealerPos)
	case SubsequentDealer:
		fallthrough
	default:
		return t.NextActiveFrom(t.DealerPos)
	}
}

// BringInSeat resolves the bring-in actor by comparing each active seat's
// up-card strength via the caller-supplied compare function, which should
// implement the rule's configured bring_in_eval ("lowest_up_card" or
// "highest_up_card"); compare(a, b) returns true if seat a should act before
// seat b (i.e. a is the configured extreme). Ties are broken clockwise from
// the dealer button, per spec.md §4.4.
func (t *Table) BringInSeat(compare func(a, b *Seat) bool) int {
	active := t.ActiveSeats()
	if len(active) == 0 {
		return -1
	}
	// Scan clockwise starting from the first active seat after the button, so
	// the strict compare keeps the earliest such seat on a tie.
	start := 0
	for i, s := range active {
		if s.Number > t.DealerPos {
			start = i
			break
		}
	}
	best := active[start]
	for k := 1; k < len(active); k++ {
		if s := active[(start+k)%len(active)]; compare(s, best) {
			best = s
		}
	}
	return best.Number
}
