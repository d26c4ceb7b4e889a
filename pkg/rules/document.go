// Package rules parses and validates a declarative poker variant description
// (spec.md §4.3) into an immutable Document, the way the teacher's
// internal/config.GameRules is loaded from YAML, generalized from one
// hard-coded shape per variant into the full gameplay-step schema every
// variant in the taxonomy needs.
package rules

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pokerengine/pkg/eval"
)

// PlayerRange is the inclusive seat-count bound a variant supports.
type PlayerRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DeckSpec describes the deck a hand is dealt from, generalizing the
// teacher's fixed 52-card assumption into card.Descriptor's Type/Cards/
// Jokers fields.
type DeckSpec struct {
	Type   string `yaml:"type"` // "standard", "short", "twenty_one".
	Cards  int    `yaml:"cards,omitempty"`
	Jokers int    `yaml:"jokers,omitempty"`
}

// ForcedBetsStyle names one of the three forced-bet postures spec.md §4.3
// lists.
type ForcedBetsStyle string

const (
	ForcedBetsBlinds     ForcedBetsStyle = "blinds"
	ForcedBetsBringIn    ForcedBetsStyle = "bring-in"
	ForcedBetsAntesOnly  ForcedBetsStyle = "antes_only"
)

// ForcedBets describes a hand's forced-bet posture, either a plain record or
// (when Conditions is non-empty) a set keyed on a prior player choice.
type ForcedBets struct {
	Style       ForcedBetsStyle      `yaml:"style,omitempty"`
	SmallBlind  float64              `yaml:"small_blind,omitempty"`
	BigBlind    float64              `yaml:"big_blind,omitempty"`
	Ante        float64              `yaml:"ante,omitempty"`
	BringInBet  float64              `yaml:"bring_in_bet,omitempty"`
	BringInEval string               `yaml:"bring_in_eval,omitempty"` // "lowest_up_card" | "highest_up_card".
	Conditions  []ConditionalForced  `yaml:"conditions,omitempty"`
}

// ConditionalForced is one branch of a choice-keyed ForcedBets set.
type ConditionalForced struct {
	When  Condition  `yaml:"when"`
	Bets  ForcedBets `yaml:"bets"`
}

// BettingOrder describes turn order, either a plain initial/subsequent pair
// or (when Conditions is non-empty) a conditional override, per spec.md
// §4.4's policy catalogue.
type BettingOrder struct {
	Initial    string               `yaml:"initial,omitempty"`    // after_big_blind | bring_in | dealer.
	Subsequent string               `yaml:"subsequent,omitempty"` // high_hand | dealer | last_actor.
	Conditions []ConditionalOrder   `yaml:"conditions,omitempty"`
}

// ConditionalOrder is one branch of a conditional BettingOrder.
type ConditionalOrder struct {
	When  Condition    `yaml:"when"`
	Order BettingOrder `yaml:"order"`
}

// Condition is a stateless predicate evaluated against current game state:
// player choices, community composition, hand size, or exposure status
// (spec.md §4.3's "conditional steps & conditional deals").
type Condition struct {
	// ChoiceEquals tests a stored choose-step value, e.g. {"variant_choice":
	// "hi_lo"}.
	ChoiceEquals map[string]string `yaml:"choice_equals,omitempty"`
	// CommunitySuitCount tests how many community cards share a suit, e.g.
	// {"subset": "default", "suit": "any", "at_least": 3} for a flush-board
	// branch.
	CommunitySuitCount *CommunityCountCondition `yaml:"community_suit_count,omitempty"`
	// HandSizeAtLeast tests a player's current hole-card subset size.
	HandSizeAtLeast *HandSizeCondition `yaml:"hand_size_at_least,omitempty"`
	// Exposed tests whether a named hole-card subset has been exposed.
	Exposed *ExposedCondition `yaml:"exposed,omitempty"`
	// All requires every nested condition to hold.
	All []Condition `yaml:"all,omitempty"`
	// Any requires at least one nested condition to hold.
	Any []Condition `yaml:"any,omitempty"`
}

// IsZero reports whether c carries no predicate at all (an always-true
// condition, used for the unconditional branch of a conditional set).
func (c Condition) IsZero() bool {
	return len(c.ChoiceEquals) == 0 && c.CommunitySuitCount == nil &&
		c.HandSizeAtLeast == nil && c.Exposed == nil && len(c.All) == 0 && len(c.Any) == 0
}

// CommunityCountCondition counts cards sharing a suit within a named
// community subset; it does not count by rank.
type CommunityCountCondition struct {
	Subset  string `yaml:"subset"`
	Suit    string `yaml:"suit,omitempty"` // a suit token, or "any".
	AtLeast int    `yaml:"at_least"`
}

// HandSizeCondition tests a player's hole-card subset size.
type HandSizeCondition struct {
	Subset  string `yaml:"subset"`
	AtLeast int    `yaml:"at_least"`
}

// ExposedCondition tests whether a named hole-card subset is (not) exposed.
type ExposedCondition struct {
	Subset string `yaml:"subset"`
	Is     bool   `yaml:"is"` // true = must be exposed, false = must not.
}

// BestHand is one showdown evaluation configuration (spec.md §4.6 point 2):
// which cards a player may use, how they're evaluated, and what share of the
// pot winning it claims.
type BestHand struct {
	Name          string            `yaml:"name"` // e.g. "high", "low", "hi_dugi".
	EvalType      string            `yaml:"eval_type"`
	Combinator    CombinatorSpec    `yaml:"combinator"`
	Qualifier     *QualifierSpec    `yaml:"qualifier,omitempty"`
	Wild          []WildSpec        `yaml:"wild,omitempty"`
	PotShare      float64           `yaml:"pot_share,omitempty"` // fraction of the pot this configuration claims; 0 = determined by count of active configurations.
	When          Condition         `yaml:"when,omitempty"`      // only active when this condition holds.
	CustomRanking []eval.CustomHandRanking `yaml:"custom_rankings,omitempty"`
}

// CombinatorSpec names one of the four Combinator kinds (spec.md §4.2) and
// carries its configuration.
type CombinatorSpec struct {
	Kind             string   `yaml:"kind"` // any_n_of | exact_k_plus_board | subset_bounded | unused_from.
	HoleSubsets      []string `yaml:"hole_subsets,omitempty"`
	CommunitySubsets []string `yaml:"community_subsets,omitempty"`
	HoleCount        int      `yaml:"hole_count,omitempty"`
	N                int      `yaml:"n,omitempty"`
	Bounds           []SubsetBoundSpec `yaml:"bounds,omitempty"`
	UnusedFrom       string   `yaml:"unused_from,omitempty"` // name of the BestHand whose claimed cards are excluded.
}

// SubsetBoundSpec mirrors eval.SubsetBound in its YAML form.
type SubsetBoundSpec struct {
	Source string `yaml:"source"`
	Name   string `yaml:"name"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
}

// QualifierSpec describes a minimum-strength floor for a BestHand
// configuration, e.g. "8 or better" for Omaha Hi-Lo's low side.
type QualifierSpec struct {
	LowMaxRank string `yaml:"low_max_rank,omitempty"` // a card.Rank token; used with a5_low/deuce_seven_low eval types.
}

// WildSpec mirrors eval.WildSpec in its YAML form.
type WildSpec struct {
	Kind  string `yaml:"kind"`  // joker | rank | lowest_community | lowest_hole.
	Role  string `yaml:"role"`  // wild | bug | conditional.
	Scope string `yaml:"scope"` // global | player.
	Rank  string `yaml:"rank,omitempty"`
}

// Showdown is the top-level showdown configuration (spec.md §4.3).
type Showdown struct {
	BestHands          []BestHand `yaml:"best_hands"`
	Classification     string     `yaml:"classification,omitempty"` // e.g. "face_butt" for games that split a hand by card orientation.
	DeclarationMode    string     `yaml:"declaration_mode"`         // cards_speak | declare.
	DefaultAction      string     `yaml:"default_action,omitempty"` // split_pot | best_hand, used when no BestHand qualifies.
	FallbackEvalType   string     `yaml:"fallback_eval_type,omitempty"`
}

// HoleCardSpec describes one named hole-card subset dealt at game start.
type HoleCardSpec struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Document is the fully parsed, immutable representation of one poker
// variant, spec.md §4.3's top-level structure.
type Document struct {
	Name            string          `yaml:"name"`
	Abbreviation    string          `yaml:"abbreviation"`
	Players         PlayerRange     `yaml:"players"`
	Deck            DeckSpec        `yaml:"deck"`
	HoleCards       []HoleCardSpec  `yaml:"hole_cards"`
	ForcedBets      ForcedBets      `yaml:"forced_bets"`
	BettingStructures []string      `yaml:"betting_structures"` // subset of Limit, No-Limit, Pot-Limit.
	BettingOrder    BettingOrder    `yaml:"betting_order"`
	Gameplay        []Step          `yaml:"gameplay"`
	Showdown        Showdown        `yaml:"showdown"`
}

// Load reads and parses a Document from a YAML file, rejecting unknown keys
// (yaml.v3's KnownFields via a strict decoder), mirroring the teacher's
// LoadGameRulesFromFile but generalized to the full gameplay schema.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a Document from raw YAML bytes and validates it.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &InvalidRulesError{Reason: fmt.Sprintf("schema: %v", err)}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
