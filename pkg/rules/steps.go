package rules

// ActionKind is one of the twelve closed step/action kinds spec.md §4.3 and
// §4.6 name. Using a string-backed enum (rather than a class per kind, as a
// language with subtyping might) keeps Step a single flat struct the YAML
// decoder can populate directly, matching how the teacher's config package
// favors plain data structs over polymorphic types.
type ActionKind string

const (
	ActionBet      ActionKind = "bet"
	ActionDeal     ActionKind = "deal"
	ActionDiscard  ActionKind = "discard"
	ActionDraw     ActionKind = "draw"
	ActionRemove   ActionKind = "remove"
	ActionExpose   ActionKind = "expose"
	ActionPass     ActionKind = "pass"
	ActionSeparate ActionKind = "separate"
	ActionDeclare  ActionKind = "declare"
	ActionChoose   ActionKind = "choose"
	ActionRollDie  ActionKind = "roll_die"
	ActionShowdown ActionKind = "showdown"
)

var validActionKinds = map[ActionKind]bool{
	ActionBet: true, ActionDeal: true, ActionDiscard: true, ActionDraw: true,
	ActionRemove: true, ActionExpose: true, ActionPass: true, ActionSeparate: true,
	ActionDeclare: true, ActionChoose: true, ActionRollDie: true, ActionShowdown: true,
}

// Step is one entry in Document.Gameplay: a name, an optional condition
// gating whether it runs at all, and either a single Action or a
// GroupedActions list (spec.md §4.3: "multiple actions per actor in a
// single pass").
type Step struct {
	Name             string      `yaml:"name"`
	ConditionalState *Condition  `yaml:"conditional_state,omitempty"`
	Action           *Action     `yaml:"action,omitempty"`
	GroupedActions   []Action    `yaml:"grouped_actions,omitempty"`
}

// Action is the closed schema shared by every step kind; fields irrelevant
// to Kind are left zero. Parsing rejects keys outside this schema (spec.md
// §4.3: "parsing MUST reject unknown keys"); Validate checks the fields each
// Kind requires, and a field that belongs to another Kind is accepted and
// ignored.
type Action struct {
	Kind ActionKind `yaml:"kind"`

	// bet
	BetStyle string `yaml:"bet_style,omitempty"` // small | big | blinds | antes_only | bring-in.

	// deal
	Location     string `yaml:"location,omitempty"` // player | community.
	Subset       string `yaml:"subset,omitempty"`
	Count        int    `yaml:"count,omitempty"`
	FaceUp       bool   `yaml:"face_up,omitempty"`

	// discard
	DiscardMin     int    `yaml:"discard_min,omitempty"`
	DiscardMax     int    `yaml:"discard_max,omitempty"`
	SelectionRule  string `yaml:"selection_rule,omitempty"` // "", "matching_ranks", "entire_subset".
	DiscardTo      string `yaml:"discard_to,omitempty"`     // "" (removed) | a community subset name.
	OncePerStep    bool   `yaml:"once_per_step,omitempty"`

	// draw
	DrawAmount         int    `yaml:"draw_amount,omitempty"`
	DrawRelativeTo     string `yaml:"draw_relative_to,omitempty"` // "" | "discard".
	DrawRelativeOffset int    `yaml:"draw_relative_offset,omitempty"`

	// remove
	RemoveCriterion string `yaml:"remove_criterion,omitempty"` // e.g. "losing_board".

	// expose
	ExposeCount     int  `yaml:"expose_count,omitempty"`
	ExposeImmediate bool `yaml:"immediate,omitempty"`

	// pass
	PassCount     int    `yaml:"pass_count,omitempty"`
	PassDirection string `yaml:"pass_direction,omitempty"` // left | right | across.

	// separate
	SeparateInto []SeparateSubset `yaml:"separate_into,omitempty"`

	// declare
	DeclareOptions    []string `yaml:"declare_options,omitempty"` // e.g. ["high","low","both"].
	DeclareSimultaneous bool   `yaml:"simultaneous,omitempty"`

	// choose
	ChoosePosition      string   `yaml:"choose_position,omitempty"` // utg | button | dealer | sb | bb.
	ChoosePossibleValues []string `yaml:"possible_values,omitempty"`
	ChooseStoreAs        string   `yaml:"store_as,omitempty"`

	// roll_die
	DieSides int `yaml:"die_sides,omitempty"`
	DieStoreSubset string `yaml:"die_store_subset,omitempty"`
}

// SeparateSubset is one named destination a separate action partitions a
// hand into.
type SeparateSubset struct {
	Name            string `yaml:"name"`
	Size            int    `yaml:"size"`
	RequireFaceUp   int    `yaml:"require_face_up,omitempty"` // minimum cards in this subset that must be face-up.
}
