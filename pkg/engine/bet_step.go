package engine

import "pokerengine/pkg/table"

// validBetActions enumerates fold/check/call/bet/raise for the current
// actor, per spec.md §4.5's min_bet/additional_required/min_raise/max_bet
// queries.
func (g *Game) validBetActions(seat *table.Seat) []ActionOption {
	opts := []ActionOption{{Kind: ActFold}}

	owed := g.Bet.AdditionalRequired(seat)
	if owed == 0 {
		opts = append(opts, ActionOption{Kind: ActCheck})
	} else {
		max := seat.Chips + seat.CurrentBet
		callTo := g.Bet.CurrentBet
		if callTo > max {
			callTo = max
		}
		opts = append(opts, ActionOption{Kind: ActCall, MinAmount: callTo, MaxAmount: callTo})
	}

	min, max := g.Bet.Calculator.Limits(g.Bet, seat)
	if max > g.Bet.CurrentBet {
		kind := ActBet
		if g.Bet.CurrentBet > 0 {
			kind = ActRaise
		}
		opts = append(opts, ActionOption{Kind: kind, MinAmount: min, MaxAmount: max})
	}
	return opts
}

// applyBetAction applies fold/check/call/bet/raise, delegating amount
// validation to the Betting Manager.
func (g *Game) applyBetAction(seat *table.Seat, kind PlayerActionKind, payload ActionPayload) ActionResult {
	switch kind {
	case ActFold:
		seat.Status = table.StatusFolded
		g.logAction(seat, "fold", 0)
		if g.foldShortCircuit() {
			return g.finishResult(true)
		}
		g.advanceBetTurn()
		return g.finishResult(g.betRoundDone())

	case ActCheck:
		if g.Bet.AdditionalRequired(seat) != 0 {
			return ActionResult{Success: false, Error: userErr("InvalidAction", "cannot check while owing chips")}
		}
		g.logAction(seat, "check", 0)
		g.advanceBetTurn()
		return g.finishResult(g.betRoundDone())

	case ActCall:
		callTo := g.Bet.CurrentBet
		ceiling := seat.Chips + seat.CurrentBet
		if callTo > ceiling {
			callTo = ceiling
		}
		// isForced=true: a call is never subject to the raise-size minimum
		// Limits() computes (that minimum always exceeds CurrentBet), only to
		// the stack ceiling, which PlaceBet enforces unconditionally.
		res := g.Bet.PlaceBet(seat, callTo, true)
		if !res.Success {
			return ActionResult{Success: false, Error: res.Error}
		}
		g.logAction(seat, "call", res.AmountAdded)
		g.advanceBetTurn()
		return g.finishResult(g.betRoundDone())

	case ActBet, ActRaise:
		res := g.Bet.PlaceBet(seat, payload.Amount, false)
		if !res.Success {
			return ActionResult{Success: false, Error: res.Error}
		}
		g.aggressorSeat = seat.Number
		g.lastActorSeat = seat.Number
		g.logAction(seat, string(kind), res.AmountAdded)
		g.advanceBetTurn()
		return g.finishResult(false)

	default:
		return ActionResult{Success: false, Error: userErr("InvalidAction", "unknown bet action %q", kind)}
	}
}

func (g *Game) logAction(seat *table.Seat, action string, amount int) {
	g.events.append(Event{
		Kind: EventAction, StepIndex: g.StepIndex, StepName: g.currentStepName(),
		ActorID: seat.PlayerID, Action: action, Amount: amount,
	})
}

func (g *Game) currentStepName() string {
	if g.StepIndex >= 0 && g.StepIndex < len(g.Doc.Gameplay) {
		return g.Doc.Gameplay[g.StepIndex].Name
	}
	return ""
}

// foldShortCircuit implements spec.md §4.6 point 1: if only one non-folded
// seat remains, the hand ends immediately.
func (g *Game) foldShortCircuit() bool {
	return len(g.Table.NonFoldedSeats()) <= 1
}

// advanceBetTurn moves CurrentActor to the next seat still owed to act in
// this round (skipping folded/all-in seats), per spec.md §4.4.
func (g *Game) advanceBetTurn() {
	g.lastActorSeat = g.CurrentActor
	next := g.Table.NextActiveFrom(g.CurrentActor)
	g.CurrentActor = next
}

// betRoundDone reports whether every remaining active seat has matched
// CurrentBet and action has returned to the aggressor (or, with no
// aggressor, every seat has acted once), per spec.md §4.4.
func (g *Game) betRoundDone() bool {
	active := g.Table.ActiveSeats()
	if len(active) <= 1 {
		return true
	}
	actedSinceAggressor := g.aggressorSeat < 0 || g.CurrentActor == g.aggressorSeat || !g.seatIsActing(g.aggressorSeat)
	return g.Bet.RoundComplete(active, actedSinceAggressor)
}

func (g *Game) seatIsActing(seatNumber int) bool {
	s := g.Table.Seats[seatNumber]
	return s.Status == table.StatusActive
}
