package engine

import "pokerengine/pkg/rules"

// PlayerActionKind is the action vocabulary a caller submits to PlayerAction.
// Bet-kind steps use the five wagering actions; every other interactive
// step kind reuses its rules.ActionKind name directly as the action kind,
// since there is no further sub-vocabulary to choose from (spec.md §4.6's
// "action kind ∈ valid_actions").
type PlayerActionKind string

const (
	ActFold  PlayerActionKind = "fold"
	ActCheck PlayerActionKind = "check"
	ActCall  PlayerActionKind = "call"
	ActBet   PlayerActionKind = "bet"
	ActRaise PlayerActionKind = "raise"

	ActDiscard  PlayerActionKind = PlayerActionKind(rules.ActionDiscard)
	ActExpose   PlayerActionKind = PlayerActionKind(rules.ActionExpose)
	ActPass     PlayerActionKind = PlayerActionKind(rules.ActionPass)
	ActSeparate PlayerActionKind = PlayerActionKind(rules.ActionSeparate)
	ActDeclare  PlayerActionKind = PlayerActionKind(rules.ActionDeclare)
	ActChoose   PlayerActionKind = PlayerActionKind(rules.ActionChoose)
)

// ActionOption is one legal action the current actor may take, annotated
// with its legal range/selection, per spec.md §4.6's valid_actions.
type ActionOption struct {
	Kind           PlayerActionKind
	MinAmount      int
	MaxAmount      int
	CardSubset     string
	MinCards       int
	MaxCards       int
	AllowedChoices []string
}

// ActionPayload is the caller-supplied detail for a PlayerAction call. Which
// fields are meaningful depends on Kind; PlayerAction validates the
// combination against the current step's schema (spec.md §4.6 point 3).
type ActionPayload struct {
	Amount      int
	CardIndices []int
	Choice      string
	// SeparateInto maps a separate step's named destination to the hole
	// card indices (within the source subset) assigned to it.
	SeparateInto map[string][]int
}

// ActionResult is returned by PlayerAction, per spec.md §4.6.
type ActionResult struct {
	Success     bool
	Error       error
	AdvanceStep bool
	Events      []Event
}

// ValidActions returns the actions playerID may currently take; empty if
// playerID is not the current actor or no hand is in progress.
func (g *Game) ValidActions(playerID string) []ActionOption {
	seat, ok := g.Table.SeatByPlayerID(playerID)
	if !ok || seat.Number != g.CurrentActor || g.pendingAction == nil {
		return nil
	}
	switch g.pendingAction.Kind {
	case rules.ActionBet:
		return g.validBetActions(seat)
	default:
		return g.validOtherActions(seat, *g.pendingAction)
	}
}

// PlayerAction validates and applies playerID's action, per spec.md §4.6's
// four-point validation: actor identity, legality, schema, and (for bets)
// Betting Manager rules.
func (g *Game) PlayerAction(playerID string, kind PlayerActionKind, payload ActionPayload) ActionResult {
	seat, ok := g.Table.SeatByPlayerID(playerID)
	if !ok {
		return ActionResult{Success: false, Error: userErr("NotPlayersTurn", "unknown player %q", playerID)}
	}
	if seat.Number != g.CurrentActor {
		return ActionResult{Success: false, Error: userErr("NotPlayersTurn", "it is %s's turn", playerID)}
	}
	if g.pendingAction == nil {
		return ActionResult{Success: false, Error: userErr("InvalidAction", "no action is pending")}
	}

	switch g.pendingAction.Kind {
	case rules.ActionBet:
		return g.applyBetAction(seat, kind, payload)
	default:
		return g.applyOtherAction(seat, kind, payload)
	}
}
