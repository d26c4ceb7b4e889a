package engine

import (
	"pokerengine/pkg/betting"
	"pokerengine/pkg/card"
	"pokerengine/pkg/rules"
	"pokerengine/pkg/table"
)

// State is the coarse phase of a Game instance, generalizing the teacher's
// GamePhase (pkg/engine/game.go) from a fixed Pre-Flop/Flop/Turn/River
// sequence into the four states spec.md §4.6/§8 name directly.
type State int

const (
	StateWaiting  State = iota // accepting add_player, no hand in progress.
	StateBetting               // a bet-kind step awaits the current actor.
	StateDrawing               // a non-bet player-input step awaits the current actor.
	StateComplete              // the hand has finished; hand_results is valid.
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "Waiting"
	case StateBetting:
		return "Betting"
	case StateDrawing:
		return "Drawing"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Game is the step interpreter (C6): the state machine that drives a single
// table through repeated hands of one declarative variant, generalizing the
// teacher's Game (which hard-coded a Texas Hold'em-family flow) into a
// generic executor over rules.Document.Gameplay.
type Game struct {
	Doc   *rules.Document
	Table *table.Table
	Deck  *card.Deck
	Bet   *betting.Manager

	Source card.Source

	State State

	StepIndex     int
	CurrentActor  int // seat number, -1 if none.
	aggressorSeat int
	lastActorSeat int
	highHandSeat  int

	choices map[string]string // persisted choose-step values, keyed by ChooseStoreAs.

	events EventLog

	results *HandResult

	// pendingAction tracks the step currently awaiting a player response.
	pendingAction *rules.Action

	// stepActors/stepActorIdx drive per-actor player-input steps
	// (discard/expose/pass/separate/declare) that require every active
	// seat to act once before the step completes.
	stepActors   []int
	stepActorIdx int

	discardCounts map[int]int    // seat number -> cards discarded this step, for draw_relative_to=discard.
	pendingPasses []pendingPass  // cards passed this step, applied to recipients once every actor has passed.
	declarations  map[int]string // seat number -> declare-step choice.

	betRoundsStarted int // count of bet steps begun this hand; 1 = initial order applies, >1 = subsequent.
	bigBlindSeat     int // seat number, -1 if none posted this hand.
	bringInSeatNum   int // seat number, -1 if none posted this hand.

	deferredActions []rules.Action // remaining grouped_actions once an interactive entry pauses the step.
	dieRolls        map[string]int // roll_die results, keyed by die_store_subset.
}

// New constructs a Game for a parsed rules Document, a seat count, and a
// card source (crypto-random in production, deterministic in tests),
// mirroring spec.md §6's "new(rules, structure, stakes, buyin_range, rng)".
func New(doc *rules.Document, seatCount int, source card.Source) *Game {
	calc := calculatorFor(doc)
	g := &Game{
		Doc:    doc,
		Table:  table.New(seatCount),
		Bet:    betting.NewManager(primaryStructure(doc.BettingStructures), calc),
		Source: source,
		State:  StateWaiting,
	}
	g.choices = make(map[string]string)
	g.discardCounts = make(map[int]int)
	g.declarations = make(map[int]string)
	g.CurrentActor = -1
	g.bigBlindSeat = -1
	g.bringInSeatNum = -1
	return g
}

func primaryStructure(structures []string) string {
	if len(structures) == 0 {
		return "No-Limit"
	}
	return structures[0]
}

func calculatorFor(doc *rules.Document) betting.Calculator {
	switch primaryStructure(doc.BettingStructures) {
	case "Pot-Limit":
		return betting.PotLimitCalculator{}
	case "Limit":
		return betting.LimitCalculator{
			SmallBet:          int(doc.ForcedBets.BigBlind),
			BigBet:            int(doc.ForcedBets.BigBlind) * 2,
			MaxRaisesPerRound: 4,
		}
	default:
		return betting.NoLimitCalculator{}
	}
}

// AddPlayer seats a new player; valid only when State is Waiting or
// Complete (spec.md §4.6).
func (g *Game) AddPlayer(playerID, name string, buyIn int) error {
	if g.State != StateWaiting && g.State != StateComplete {
		return rulesErr("InvalidRules", "add_player is only valid between hands")
	}
	_, err := g.Table.SitAnywhere(playerID, name, buyIn)
	return err
}

// RemovePlayer empties a player's seat; valid only between hands or for a
// sitting-out player.
func (g *Game) RemovePlayer(playerID string) error {
	seat, ok := g.Table.SeatByPlayerID(playerID)
	if !ok {
		return rulesErr("InvalidRules", "unknown player %q", playerID)
	}
	if g.State != StateWaiting && g.State != StateComplete && seat.Status != table.StatusSittingOut {
		return userErr("InvalidAction", "remove_player is only valid between hands or while sitting out")
	}
	g.Table.Remove(playerID)
	return nil
}

// PotTotal returns the current hand's pot total, per the chip-conservation
// invariant (spec.md §8): PlaceBet moves chips into the Betting Manager's
// Pot the instant a bet is placed, so a seat's CurrentBet is round-bet
// bookkeeping already reflected there, not money held outside it.
func (g *Game) PotTotal() int {
	return g.Bet.Pot
}

// Events drains the in-memory event log (spec.md §6).
func (g *Game) Events() []Event { return g.events.Drain() }
