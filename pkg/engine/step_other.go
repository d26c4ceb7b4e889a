package engine

import (
	"pokerengine/pkg/card"
	"pokerengine/pkg/rules"
	"pokerengine/pkg/table"
)

func (g *Game) validOtherActions(seat *table.Seat, a rules.Action) []ActionOption {
	switch a.Kind {
	case rules.ActionDiscard:
		return []ActionOption{{Kind: ActDiscard, CardSubset: a.Subset, MinCards: a.DiscardMin, MaxCards: a.DiscardMax}}
	case rules.ActionExpose:
		return []ActionOption{{Kind: ActExpose, CardSubset: a.Subset, MinCards: a.ExposeCount, MaxCards: a.ExposeCount}}
	case rules.ActionPass:
		return []ActionOption{{Kind: ActPass, MinCards: a.PassCount, MaxCards: a.PassCount}}
	case rules.ActionSeparate:
		return []ActionOption{{Kind: ActSeparate}}
	case rules.ActionDeclare:
		return []ActionOption{{Kind: ActDeclare, AllowedChoices: a.DeclareOptions}}
	case rules.ActionChoose:
		return []ActionOption{{Kind: ActChoose, AllowedChoices: a.ChoosePossibleValues}}
	default:
		return nil
	}
}

func (g *Game) applyOtherAction(seat *table.Seat, kind PlayerActionKind, payload ActionPayload) ActionResult {
	a := *g.pendingAction
	var err error
	switch a.Kind {
	case rules.ActionDiscard:
		err = g.doDiscard(seat, a, payload)
	case rules.ActionExpose:
		err = g.doExpose(seat, a, payload)
	case rules.ActionPass:
		err = g.doPass(seat, a, payload)
	case rules.ActionSeparate:
		err = g.doSeparate(seat, a, payload)
	case rules.ActionDeclare:
		err = g.doDeclare(seat, a, payload)
	case rules.ActionChoose:
		err = g.doChoose(seat, a, payload)
	default:
		err = userErr("InvalidAction", "step %q is not player-driven", a.Kind)
	}
	if err != nil {
		return ActionResult{Success: false, Error: err}
	}

	g.logAction(seat, string(kind), 0)
	g.stepActorIdx++
	if g.stepActorIdx >= len(g.stepActors) {
		if a.Kind == rules.ActionPass {
			g.resolvePendingPasses()
		}
		return g.finishResult(true)
	}
	g.CurrentActor = g.stepActors[g.stepActorIdx]
	return g.finishResult(false)
}

func takeIndices(pool []card.Card, faceUp []bool, indices []int) (kept []card.Card, keptFaceUp []bool, taken []card.Card) {
	takenSet := make(map[int]bool, len(indices))
	for _, i := range indices {
		takenSet[i] = true
	}
	for i, c := range pool {
		up := i < len(faceUp) && faceUp[i]
		if takenSet[i] {
			taken = append(taken, c)
		} else {
			kept = append(kept, c)
			keptFaceUp = append(keptFaceUp, up)
		}
	}
	return kept, keptFaceUp, taken
}

func (g *Game) doDiscard(seat *table.Seat, a rules.Action, payload ActionPayload) error {
	n := len(payload.CardIndices)
	if n < a.DiscardMin || (a.DiscardMax > 0 && n > a.DiscardMax) {
		return userErr("BadSubsetSizes", "discard count %d out of range [%d,%d]", n, a.DiscardMin, a.DiscardMax)
	}
	pool := seat.HoleCards[a.Subset]
	for _, idx := range payload.CardIndices {
		if idx < 0 || idx >= len(pool) {
			return userErr("UnknownCardSelection", "discard index %d out of range", idx)
		}
	}
	kept, keptFaceUp, taken := takeIndices(pool, seat.FaceUp[a.Subset], payload.CardIndices)
	seat.HoleCards[a.Subset] = kept
	seat.FaceUp[a.Subset] = keptFaceUp
	if a.DiscardTo != "" {
		g.Table.Community[a.DiscardTo] = append(g.Table.Community[a.DiscardTo], taken...)
	} else {
		g.Deck.Burn()
	}
	g.discardCounts[seat.Number] = n
	return nil
}

func (g *Game) doExpose(seat *table.Seat, a rules.Action, payload ActionPayload) error {
	if len(payload.CardIndices) != a.ExposeCount {
		return userErr("BadSubsetSizes", "expose count must be exactly %d", a.ExposeCount)
	}
	faceUp := seat.FaceUp[a.Subset]
	for _, idx := range payload.CardIndices {
		if idx < 0 || idx >= len(faceUp) {
			return userErr("UnknownCardSelection", "expose index %d out of range", idx)
		}
		faceUp[idx] = true
	}
	return nil
}

func (g *Game) doPass(seat *table.Seat, a rules.Action, payload ActionPayload) error {
	if len(payload.CardIndices) != a.PassCount {
		return userErr("BadSubsetSizes", "pass count must be exactly %d", a.PassCount)
	}
	pool := seat.HoleCards["default"]
	for _, idx := range payload.CardIndices {
		if idx < 0 || idx >= len(pool) {
			return userErr("UnknownCardSelection", "pass index %d out of range", idx)
		}
	}
	kept, keptFaceUp, taken := takeIndices(pool, seat.FaceUp["default"], payload.CardIndices)
	seat.HoleCards["default"] = kept
	seat.FaceUp["default"] = keptFaceUp
	g.pendingPasses = append(g.pendingPasses, pendingPass{from: seat.Number, cards: taken, direction: a.PassDirection})
	return nil
}

// resolvePendingPasses delivers every seat's passed cards to its neighbor
// once every actor named in this pass step has passed (spec.md §4.6: "the
// actor passes N cards to a neighbor... simultaneously for all actors").
// Resolving after the whole step, rather than per-actor, matters: with an
// odd-style "across" pass especially, a recipient's incoming cards must not
// be visible to them before they have chosen what to pass themselves.
func (g *Game) resolvePendingPasses() {
	participants := g.stepActors
	for _, p := range g.pendingPasses {
		to := passRecipient(participants, p.from, p.direction)
		recipient := g.Table.Seats[to]
		recipient.HoleCards["default"] = append(recipient.HoleCards["default"], p.cards...)
		recipient.FaceUp["default"] = append(recipient.FaceUp["default"], make([]bool, len(p.cards))...)
	}
	g.pendingPasses = nil
}

// passRecipient resolves the seat number a pass lands on. Seats pass "left"
// to the next participant clockwise, "right" to the previous one, and
// "across" to the participant roughly opposite (half the table away).
func passRecipient(participants []int, from int, direction string) int {
	n := len(participants)
	idx := 0
	for i, s := range participants {
		if s == from {
			idx = i
			break
		}
	}
	switch direction {
	case "right":
		return participants[(idx-1+n)%n]
	case "across":
		return participants[(idx+n/2)%n]
	default: // "left"
		return participants[(idx+1)%n]
	}
}

func (g *Game) doSeparate(seat *table.Seat, a rules.Action, payload ActionPayload) error {
	total := 0
	for _, idxs := range payload.SeparateInto {
		total += len(idxs)
	}
	pool := seat.HoleCards["default"]
	if total != len(pool) {
		return userErr("BadSubsetSizes", "separate must partition every card; got %d of %d", total, len(pool))
	}
	newSubsets := make(map[string][]card.Card)
	newFaceUp := make(map[string][]bool)
	faceUp := seat.FaceUp["default"]
	for _, spec := range a.SeparateInto {
		idxs, ok := payload.SeparateInto[spec.Name]
		if !ok || (spec.Size > 0 && len(idxs) != spec.Size) {
			return userErr("BadSubsetSizes", "subset %q requires %d cards", spec.Name, spec.Size)
		}
		for _, idx := range idxs {
			if idx < 0 || idx >= len(pool) {
				return userErr("UnknownCardSelection", "separate index %d out of range", idx)
			}
			newSubsets[spec.Name] = append(newSubsets[spec.Name], pool[idx])
			up := idx < len(faceUp) && faceUp[idx]
			newFaceUp[spec.Name] = append(newFaceUp[spec.Name], up)
		}
		if spec.RequireFaceUp > 0 {
			count := 0
			for _, up := range newFaceUp[spec.Name] {
				if up {
					count++
				}
			}
			if count < spec.RequireFaceUp {
				return userErr("IllegalDeclaration", "subset %q requires at least %d face-up cards", spec.Name, spec.RequireFaceUp)
			}
		}
	}
	delete(seat.HoleCards, "default")
	delete(seat.FaceUp, "default")
	for name, cards := range newSubsets {
		seat.HoleCards[name] = cards
		seat.FaceUp[name] = newFaceUp[name]
	}
	return nil
}

func (g *Game) doDeclare(seat *table.Seat, a rules.Action, payload ActionPayload) error {
	allowed := false
	for _, opt := range a.DeclareOptions {
		if payload.Choice == opt {
			allowed = true
			break
		}
	}
	if !allowed {
		return userErr("IllegalDeclaration", "declaration %q is not one of %v", payload.Choice, a.DeclareOptions)
	}
	g.declarations[seat.Number] = payload.Choice
	return nil
}

func (g *Game) doChoose(seat *table.Seat, a rules.Action, payload ActionPayload) error {
	allowed := false
	for _, v := range a.ChoosePossibleValues {
		if payload.Choice == v {
			allowed = true
			break
		}
	}
	if !allowed {
		return userErr("IllegalDeclaration", "choice %q is not one of %v", payload.Choice, a.ChoosePossibleValues)
	}
	key := a.ChooseStoreAs
	if key == "" {
		key = g.currentStepName()
	}
	seat.Choices[key] = payload.Choice
	g.choices[key] = payload.Choice
	return nil
}

type pendingPass struct {
	from      int
	cards     []card.Card
	direction string
}
