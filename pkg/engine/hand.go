package engine

import (
	"fmt"

	"pokerengine/pkg/card"
	"pokerengine/pkg/rules"
	"pokerengine/pkg/table"
)

// StartHand resets the table for a new hand, shuffles a fresh deck, and
// drives the step interpreter from the first gameplay step until either a
// player-input step needs an actor or the hand completes without one
// (spec.md §4.6: "start_hand resets per-hand state, builds and shuffles the
// deck, then advances the step cursor").
func (g *Game) StartHand() error {
	occupied := g.Table.OccupiedSeats()
	if len(occupied) < g.Doc.Players.Min {
		return rulesErr("InvalidRules", "need at least %d players, have %d", g.Doc.Players.Min, len(occupied))
	}

	g.Table.ClearHands()
	g.Table.AdvanceButton()

	deck, err := card.NewDeck(card.Descriptor{Type: card.DeckType(g.Doc.Deck.Type), Jokers: g.Doc.Deck.Jokers})
	if err != nil {
		return rulesErr("InvalidRules", "%v", err)
	}
	deck.Shuffle(g.Source)
	g.Deck = deck

	g.Bet.Pot = 0
	g.Bet.CurrentBet = 0
	g.Bet.LastRaiseAmount = 0
	g.Bet.RaisesThisRound = 0

	g.StepIndex = -1
	g.CurrentActor = -1
	g.aggressorSeat = -1
	g.lastActorSeat = -1
	g.highHandSeat = -1
	g.betRoundsStarted = 0
	g.bigBlindSeat = -1
	g.bringInSeatNum = -1
	g.discardCounts = make(map[int]int)
	g.declarations = make(map[int]string)
	g.pendingPasses = nil
	g.deferredActions = nil
	g.dieRolls = nil
	g.results = nil
	g.pendingAction = nil

	g.events.append(Event{Kind: EventHandStarted, StepIndex: -1})
	g.processFrom(0)
	return nil
}

// advance moves the step cursor forward one position and resumes dispatch,
// called once a bet round or per-actor step has been fully satisfied.
func (g *Game) advance() {
	g.processFrom(g.StepIndex + 1)
}

// stepCompleted runs any actions deferred from the current step's
// grouped_actions list before moving on, so a grouped step with both
// automatic and interactive entries resumes correctly (spec.md §4.3:
// "multiple actions per actor in a single pass").
func (g *Game) stepCompleted() {
	if len(g.deferredActions) > 0 {
		remaining := g.deferredActions
		g.deferredActions = nil
		_, interactive := g.runActions(remaining)
		if interactive {
			return
		}
	}
	g.advance()
}

// processFrom walks Document.Gameplay starting at idx, skipping steps whose
// conditional_state does not hold, dispatching automatic step kinds
// immediately, and pausing at the first step that needs a player response
// (spec.md §4.3/§4.6).
func (g *Game) processFrom(idx int) {
	for idx < len(g.Doc.Gameplay) {
		step := g.Doc.Gameplay[idx]
		if step.ConditionalState != nil && !step.ConditionalState.Evaluate(gameContext{g: g, seat: -1}) {
			idx++
			continue
		}
		g.StepIndex = idx

		var actions []rules.Action
		if step.Action != nil {
			actions = []rules.Action{*step.Action}
		} else {
			actions = step.GroupedActions
		}

		_, interactive := g.runActions(actions)
		if interactive {
			return
		}
		if g.State == StateComplete {
			return
		}
		idx++
	}
	if g.State != StateComplete {
		g.runShowdown()
	}
}

// runActions executes a step's action list in order, stopping at the first
// interactive kind it finds (deferring the rest until that step resumes).
func (g *Game) runActions(actions []rules.Action) (done bool, interactive bool) {
	for i, a := range actions {
		if isInteractiveAction(a) {
			g.beginInteractiveStep(a)
			if i+1 < len(actions) {
				g.deferredActions = append(g.deferredActions, actions[i+1:]...)
			}
			return false, true
		}
		g.runAutomaticAction(a)
		if g.State == StateComplete {
			return true, false
		}
	}
	return true, false
}

func isInteractiveAction(a rules.Action) bool {
	switch a.Kind {
	case rules.ActionBet:
		return a.BetStyle == "" || a.BetStyle == "small" || a.BetStyle == "big"
	case rules.ActionDiscard, rules.ActionExpose, rules.ActionPass, rules.ActionSeparate, rules.ActionDeclare, rules.ActionChoose:
		return true
	default:
		return false
	}
}

func (g *Game) beginInteractiveStep(a rules.Action) {
	action := a
	g.pendingAction = &action
	if a.Kind == rules.ActionBet {
		g.beginBetRound()
		return
	}
	actors := seatNumbers(g.Table.NonFoldedSeats())
	g.stepActors = actors
	g.stepActorIdx = 0
	if len(actors) == 0 {
		g.CurrentActor = -1
	} else {
		g.CurrentActor = actors[0]
	}
	g.State = StateDrawing
}

func seatNumbers(seats []*table.Seat) []int {
	out := make([]int, len(seats))
	for i, s := range seats {
		out[i] = s.Number
	}
	return out
}

func (g *Game) beginBetRound() {
	g.betRoundsStarted++
	order := g.Doc.ResolveBettingOrder(gameContext{g: g, seat: -1})
	g.Bet.NewRound(g.betRoundsStarted == 1, g.Table.OccupiedSeats())
	g.aggressorSeat = -1

	if g.betRoundsStarted == 1 {
		g.CurrentActor = g.Table.FirstActor(table.InitialOrder(order.Initial), g.bigBlindSeat, g.bringInSeatNum)
	} else {
		if order.Subsequent == "high_hand" {
			g.computeHighHandSeat()
		}
		g.CurrentActor = g.Table.SubsequentActor(table.SubsequentOrder(order.Subsequent), g.highHandSeat, g.lastActorSeat)
	}
	g.lastActorSeat = -1
	g.State = StateBetting
}

// computeHighHandSeat picks the seat with the strongest board showing among
// non-folded seats, for the subsequent-round "high_hand" turn-order policy
// stud-family variants use. It compares each seat's exposed up-cards by
// descending rank sequence rather than running a full Evaluator, since the
// number of up-cards showing varies street to street and a fixed-size
// Combinator cannot generate candidates from a partial hand.
func (g *Game) computeHighHandSeat() {
	best := -1
	var bestRanks []int
	for _, s := range g.Table.NonFoldedSeats() {
		up := s.HoleCards["up"]
		if len(up) == 0 {
			continue
		}
		ranks := descendingRanks(up)
		if best == -1 || compareRankSlices(ranks, bestRanks) > 0 {
			best = s.Number
			bestRanks = ranks
		}
	}
	g.highHandSeat = best
}

func descendingRanks(cards []card.Card) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	for i := 1; i < len(ranks); i++ {
		for j := i; j > 0 && ranks[j] > ranks[j-1]; j-- {
			ranks[j], ranks[j-1] = ranks[j-1], ranks[j]
		}
	}
	return ranks
}

func compareRankSlices(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return len(a) - len(b)
}

func (g *Game) runAutomaticAction(a rules.Action) {
	switch a.Kind {
	case rules.ActionBet:
		g.postForcedBets(a)
	case rules.ActionDeal:
		g.doDeal(a)
	case rules.ActionDraw:
		g.doDraw(a)
	case rules.ActionRemove:
		g.doRemove(a)
	case rules.ActionRollDie:
		g.doRollDie(a)
	case rules.ActionShowdown:
		g.runShowdown()
	}
}

// postForcedBets resolves and posts blinds, antes, or a bring-in bet at the
// start of a hand, per spec.md §4.4's three forced-bet postures.
func (g *Game) postForcedBets(a rules.Action) {
	fb := g.Doc.ResolveForcedBets(gameContext{g: g, seat: -1})
	switch fb.Style {
	case rules.ForcedBetsBlinds:
		g.postBlinds(fb)
	case rules.ForcedBetsAntesOnly:
		g.postAntes(fb)
	case rules.ForcedBetsBringIn:
		g.postBringIn(fb)
	}
}

func (g *Game) postBlinds(fb rules.ForcedBets) {
	active := g.Table.ActiveSeats()
	var sbSeat, bbSeat int
	if len(active) == 2 {
		sbSeat = g.Table.DealerPos
		bbSeat = g.Table.NextActiveFrom(sbSeat)
	} else {
		sbSeat = g.Table.NextActiveFrom(g.Table.DealerPos)
		bbSeat = g.Table.NextActiveFrom(sbSeat)
	}
	g.postForced(sbSeat, int(fb.SmallBlind))
	g.postForced(bbSeat, int(fb.BigBlind))
	g.bigBlindSeat = bbSeat
}

func (g *Game) postAntes(fb rules.ForcedBets) {
	for _, s := range g.Table.ActiveSeats() {
		g.postForced(s.Number, int(fb.Ante))
	}
	for _, s := range g.Table.ActiveSeats() {
		s.CurrentBet = 0
	}
	g.Bet.CurrentBet = 0
}

func (g *Game) postBringIn(fb rules.ForcedBets) {
	wantLowest := fb.BringInEval != "highest_up_card"
	compare := func(a, b *table.Seat) bool {
		ca, cb := upCard(a), upCard(b)
		if wantLowest {
			return ca.Rank < cb.Rank
		}
		return ca.Rank > cb.Rank
	}
	seatNum := g.Table.BringInSeat(compare)
	g.bringInSeatNum = seatNum
	g.postForced(seatNum, int(fb.BringInBet))
}

// upCard returns a seat's most recently dealt face-up card in its "up"
// subset (the convention stud-family rule documents deal exposed cards
// into), falling back to "default" for variants with a single subset.
func upCard(s *table.Seat) card.Card {
	for _, subset := range []string{"up", "default"} {
		if cards := s.HoleCards[subset]; len(cards) > 0 {
			return cards[len(cards)-1]
		}
	}
	return card.Card{}
}

func (g *Game) postForced(seatNumber, amount int) {
	if seatNumber < 0 {
		return
	}
	seat := g.Table.Seats[seatNumber]
	ceiling := seat.Chips + seat.CurrentBet
	totalTo := seat.CurrentBet + amount
	if totalTo > ceiling {
		totalTo = ceiling
	}
	res := g.Bet.PlaceBet(seat, totalTo, true)
	g.events.append(Event{
		Kind: EventForcedBet, StepIndex: g.StepIndex, StepName: g.currentStepName(),
		ActorID: seat.PlayerID, Amount: res.AmountAdded,
	})
}

func (g *Game) doDeal(a rules.Action) {
	if a.Location == "community" {
		dealt, err := g.Deck.Deal(a.Count)
		if err != nil {
			g.fatal(engineErr("DeckExhausted", "deck exhausted dealing community %q", a.Subset))
			return
		}
		if g.Table.Community == nil {
			g.Table.Community = make(map[string][]card.Card)
		}
		g.Table.Community[a.Subset] = append(g.Table.Community[a.Subset], dealt...)
		g.events.append(Event{Kind: EventDeal, StepIndex: g.StepIndex, StepName: g.currentStepName(), Detail: a.Subset, Amount: a.Count})
		return
	}

	for _, s := range g.dealOrder() {
		dealt, err := g.Deck.Deal(a.Count)
		if err != nil {
			g.fatal(engineErr("DeckExhausted", "deck exhausted dealing %q", a.Subset))
			return
		}
		s.HoleCards[a.Subset] = append(s.HoleCards[a.Subset], dealt...)
		faceUp := make([]bool, a.Count)
		for i := range faceUp {
			faceUp[i] = a.FaceUp
		}
		s.FaceUp[a.Subset] = append(s.FaceUp[a.Subset], faceUp...)
		g.events.append(Event{Kind: EventDeal, StepIndex: g.StepIndex, StepName: g.currentStepName(), ActorID: s.PlayerID, Detail: a.Subset, Amount: a.Count})
	}
}

// dealOrder returns active seats in deal order, starting left of the
// dealer button, per spec.md §4.4.
func (g *Game) dealOrder() []*table.Seat {
	n := len(g.Table.Seats)
	if n == 0 {
		return nil
	}
	start := g.Table.NextOccupiedFrom(g.Table.DealerPos)
	var ordered []*table.Seat
	idx := start
	for i := 0; i < n; i++ {
		s := g.Table.Seats[idx]
		if s.Occupied && (s.Status == table.StatusActive || s.Status == table.StatusAllIn) {
			ordered = append(ordered, s)
		}
		idx = (idx + 1) % n
	}
	return ordered
}

func (g *Game) doDraw(a rules.Action) {
	subset := a.Subset
	if subset == "" {
		subset = "default"
	}
	for _, s := range g.Table.ActiveSeats() {
		n := a.DrawAmount
		if a.DrawRelativeTo == "discard" {
			n = g.discardCounts[s.Number] + a.DrawRelativeOffset
		}
		if n <= 0 {
			continue
		}
		dealt, err := g.Deck.Deal(n)
		if err != nil {
			g.fatal(engineErr("DeckExhausted", "deck exhausted drawing %q", subset))
			return
		}
		s.HoleCards[subset] = append(s.HoleCards[subset], dealt...)
		s.FaceUp[subset] = append(s.FaceUp[subset], make([]bool, n)...)
		g.events.append(Event{Kind: EventDeal, StepIndex: g.StepIndex, StepName: g.currentStepName(), ActorID: s.PlayerID, Detail: subset, Amount: n})
	}
	g.discardCounts = make(map[int]int)
}

// doRemove drops the most recently dealt card from a community subset under
// remove_criterion; every criterion this taxonomy currently names resolves
// to "drop the last card dealt" (e.g. a losing extra board in a
// double-board variant), so no criterion-specific branch exists yet.
func (g *Game) doRemove(a rules.Action) {
	cards := g.Table.Community[a.Subset]
	if len(cards) == 0 {
		return
	}
	g.Table.Community[a.Subset] = cards[:len(cards)-1]
	g.events.append(Event{Kind: EventPhaseChange, StepIndex: g.StepIndex, StepName: g.currentStepName(), Detail: fmt.Sprintf("remove:%s", a.Subset)})
}

func (g *Game) doRollDie(a rules.Action) {
	roll := g.Source.Intn(a.DieSides) + 1
	if g.dieRolls == nil {
		g.dieRolls = make(map[string]int)
	}
	g.dieRolls[a.DieStoreSubset] = roll
	g.events.append(Event{Kind: EventDeal, StepIndex: g.StepIndex, StepName: g.currentStepName(), Detail: fmt.Sprintf("roll_die:%d", roll)})
}

func (g *Game) fatal(err error) {
	g.events.append(Event{Kind: EventPhaseChange, StepIndex: g.StepIndex, StepName: g.currentStepName(), Detail: err.Error()})
	g.results = &HandResult{}
	g.State = StateComplete
	g.CurrentActor = -1
	g.pendingAction = nil
}

// finishResult is the single completion point every player-driven action
// routes through: it checks for a fold short-circuit first, then either
// keeps the current step open for the next actor or hands off to
// stepCompleted (spec.md §4.6 point 1/3).
func (g *Game) finishResult(stepDone bool) ActionResult {
	if g.checkFoldWin() {
		return ActionResult{Success: true, AdvanceStep: true, Events: g.Events()}
	}
	if !stepDone {
		return ActionResult{Success: true, Events: g.Events()}
	}
	g.stepCompleted()
	return ActionResult{Success: true, AdvanceStep: true, Events: g.Events()}
}

// checkFoldWin implements spec.md §4.6 point 1: once only one non-folded
// seat remains, the hand ends immediately and that seat takes every chip in
// play, skipping any remaining steps including showdown.
func (g *Game) checkFoldWin() bool {
	if g.State == StateComplete {
		return true
	}
	remaining := g.Table.NonFoldedSeats()
	if len(remaining) != 1 {
		return false
	}
	winner := remaining[0]
	pot := g.PotTotal()
	winner.Chips += pot
	g.Bet.Pot = 0
	for _, s := range g.Table.OccupiedSeats() {
		s.CurrentBet = 0
	}

	g.results = &HandResult{
		Pots: []PotResult{{PotIndex: 0, Amount: pot, ConfigName: "fold", Winners: []string{winner.PlayerID}}},
		LastPlayerStanding: winner.PlayerID,
	}
	g.events.append(Event{
		Kind: EventPotAwarded, StepIndex: g.StepIndex, StepName: g.currentStepName(),
		ActorID: winner.PlayerID, Amount: pot, Detail: "fold",
	})
	g.State = StateComplete
	g.CurrentActor = -1
	g.pendingAction = nil
	return true
}
