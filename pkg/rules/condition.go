package rules

// Context is the read-only view into current game state a Condition needs,
// implemented by pkg/engine's per-player/per-table state so this package
// never imports engine (avoiding an import cycle, since engine already
// imports rules).
type Context interface {
	// Choice returns a previously stored choose-step value and whether one
	// was stored under key.
	Choice(key string) (string, bool)
	// CommunitySuitCount returns how many cards in the named community
	// subset share suit ("any" counts every card regardless of suit).
	CommunitySuitCount(subset, suit string) int
	// HandSize returns the current size of a player's named hole-card
	// subset.
	HandSize(subset string) int
	// Exposed reports whether every card in a player's named hole-card
	// subset is currently face-up.
	Exposed(subset string) bool
}

// Evaluate reports whether c holds against ctx. A zero Condition always
// holds (the unconditional branch of a conditional set).
func (c Condition) Evaluate(ctx Context) bool {
	if c.IsZero() {
		return true
	}
	for key, want := range c.ChoiceEquals {
		got, ok := ctx.Choice(key)
		if !ok || got != want {
			return false
		}
	}
	if cc := c.CommunitySuitCount; cc != nil {
		if ctx.CommunitySuitCount(cc.Subset, cc.Suit) < cc.AtLeast {
			return false
		}
	}
	if hs := c.HandSizeAtLeast; hs != nil {
		if ctx.HandSize(hs.Subset) < hs.AtLeast {
			return false
		}
	}
	if ex := c.Exposed; ex != nil {
		if ctx.Exposed(ex.Subset) != ex.Is {
			return false
		}
	}
	for _, nested := range c.All {
		if !nested.Evaluate(ctx) {
			return false
		}
	}
	if len(c.Any) > 0 {
		any := false
		for _, nested := range c.Any {
			if nested.Evaluate(ctx) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

// ResolveForcedBets picks the active ForcedBets: the conditional branch
// whose When holds, or the base Document.ForcedBets when there are no
// conditions or none match. Validate does not require an unconditional
// fallback branch.
func (d *Document) ResolveForcedBets(ctx Context) ForcedBets {
	for _, c := range d.ForcedBets.Conditions {
		if c.When.Evaluate(ctx) {
			return c.Bets
		}
	}
	return d.ForcedBets
}

// ResolveBettingOrder picks the active BettingOrder the same way.
func (d *Document) ResolveBettingOrder(ctx Context) BettingOrder {
	for _, c := range d.BettingOrder.Conditions {
		if c.When.Evaluate(ctx) {
			return c.Order
		}
	}
	return d.BettingOrder
}

// ActiveBestHands returns the BestHand configurations whose When condition
// currently holds (spec.md §4.6 point 2: "resolved by conditional
// selectors").
func (d *Document) ActiveBestHands(ctx Context) []BestHand {
	var active []BestHand
	for _, bh := range d.Showdown.BestHands {
		if bh.When.Evaluate(ctx) {
			active = append(active, bh)
		}
	}
	return active
}
