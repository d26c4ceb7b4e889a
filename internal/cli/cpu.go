package cli

import (
	"math/rand"

	"pokerengine/pkg/engine"
)

// CPUAction chooses an action for a non-human seat, generalizing the
// teacher's Game.GetCPUAction (formerly pkg/engine/ai.go) from a hand-
// strength-driven Hold'em strategy into a rules-agnostic one: ValidActions
// already encodes every step kind's legal options, so the CPU only needs a
// kind-agnostic policy over that option list rather than evaluating hand
// strength itself.
func CPUAction(g *engine.Game, playerID string, r *rand.Rand) (engine.PlayerActionKind, engine.ActionPayload) {
	opts := g.ValidActions(playerID)
	if len(opts) == 0 {
		return engine.ActFold, engine.ActionPayload{}
	}

	byKind := make(map[engine.PlayerActionKind]engine.ActionOption, len(opts))
	for _, o := range opts {
		byKind[o.Kind] = o
	}

	// Betting steps: check/call readily, raise occasionally, never fold
	// when a check is free and fold only rarely when facing a bet.
	if o, ok := byKind[engine.ActCheck]; ok {
		if _, canRaise := byKind[engine.ActBet]; canRaise && r.Intn(5) == 0 {
			raise := byKind[engine.ActBet]
			return raise.Kind, engine.ActionPayload{Amount: raiseAmount(r, raise)}
		}
		return o.Kind, engine.ActionPayload{}
	}
	if o, ok := byKind[engine.ActCall]; ok {
		if raise, canRaise := byKind[engine.ActRaise]; canRaise && r.Intn(8) == 0 {
			return raise.Kind, engine.ActionPayload{Amount: raiseAmount(r, raise)}
		}
		if r.Intn(10) == 0 {
			return engine.ActFold, engine.ActionPayload{}
		}
		return o.Kind, engine.ActionPayload{Amount: o.MinAmount}
	}

	// Non-bet interactive steps: declare/choose pick a random allowed
	// choice, discard discards nothing, and every other kind uses the first
	// MinCards card indices.
	o := opts[0]
	switch o.Kind {
	case engine.ActDeclare, engine.ActChoose:
		choice := ""
		if len(o.AllowedChoices) > 0 {
			choice = o.AllowedChoices[r.Intn(len(o.AllowedChoices))]
		}
		return o.Kind, engine.ActionPayload{Choice: choice}
	case engine.ActDiscard:
		return o.Kind, engine.ActionPayload{CardIndices: nil}
	default:
		indices := make([]int, 0, o.MinCards)
		for i := 0; i < o.MinCards; i++ {
			indices = append(indices, i)
		}
		return o.Kind, engine.ActionPayload{CardIndices: indices}
	}
}

func raiseAmount(r *rand.Rand, o engine.ActionOption) int {
	if o.MaxAmount <= o.MinAmount {
		return o.MinAmount
	}
	return o.MinAmount + r.Intn(o.MaxAmount-o.MinAmount+1)
}
