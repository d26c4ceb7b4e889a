package rules

import "pokerengine/pkg/eval"

// Validate runs the single-pass schema and cross-reference checks spec.md
// §4.3 requires: non-empty betting_structures, discard/expose steps and
// showdown configurations referencing only subsets introduced earlier,
// betting_order consistent with forced_bets, and every action schema
// well-formed for its declared kind. Subset references on other step kinds
// are not checked.
func (d *Document) Validate() error {
	if d.Players.Min <= 0 || d.Players.Max < d.Players.Min {
		return invalid("players range must have 1 <= min <= max, got %+v", d.Players)
	}
	if len(d.BettingStructures) == 0 {
		return invalid("betting_structures must be non-empty")
	}
	for _, s := range d.BettingStructures {
		switch s {
		case "Limit", "No-Limit", "Pot-Limit":
		default:
			return invalid("unknown betting_structure %q", s)
		}
	}

	if err := d.validateForcedBetsConsistency(); err != nil {
		return err
	}

	declared := d.declaredSubsets()
	for i, step := range d.Gameplay {
		actions := step.GroupedActions
		if step.Action != nil {
			actions = append(actions, *step.Action)
		}
		if len(actions) == 0 {
			return invalid("gameplay[%d] %q has neither action nor grouped_actions", i, step.Name)
		}
		for _, a := range actions {
			if !validActionKinds[a.Kind] {
				return invalid("gameplay[%d] %q: unknown action kind %q", i, step.Name, a.Kind)
			}
			if err := validateActionSchema(a); err != nil {
				return invalid("gameplay[%d] %q: %v", i, step.Name, err)
			}
			if err := d.validateSubsetReferences(a, declared); err != nil {
				return invalid("gameplay[%d] %q: %v", i, step.Name, err)
			}
			declareNewSubsets(a, declared)
		}
	}

	if err := d.validateShowdown(declared); err != nil {
		return err
	}
	return nil
}

// validateForcedBetsConsistency rejects a betting_order that cannot be
// satisfied by the declared forced_bets style, e.g. initial=bring_in without
// a bring-in forced-bets style.
func (d *Document) validateForcedBetsConsistency() error {
	check := func(fb ForcedBets, order BettingOrder) error {
		if order.Initial == "bring_in" && fb.Style != ForcedBetsBringIn && len(fb.Conditions) == 0 {
			return invalid("betting_order.initial=bring_in requires forced_bets.style=bring-in")
		}
		if fb.Style == ForcedBetsBringIn && order.Initial != "" && order.Initial != "bring_in" {
			return invalid("forced_bets.style=bring-in requires betting_order.initial=bring_in, got %q", order.Initial)
		}
		return nil
	}
	if err := check(d.ForcedBets, d.BettingOrder); err != nil {
		return err
	}
	for _, c := range d.ForcedBets.Conditions {
		if err := check(c.Bets, d.BettingOrder); err != nil {
			return err
		}
	}
	for _, c := range d.BettingOrder.Conditions {
		if err := check(d.ForcedBets, c.Order); err != nil {
			return err
		}
	}
	return nil
}

// declaredSubsets seeds the set of subset names known before gameplay
// begins: every named hole_cards subset, plus "default" for both hole and
// community pools.
func (d *Document) declaredSubsets() map[string]bool {
	declared := map[string]bool{"default": true}
	for _, hc := range d.HoleCards {
		declared[hc.Name] = true
	}
	return declared
}

// declareNewSubsets records subset names an action introduces (deal
// destinations, separate targets, discard-to targets), so later steps may
// reference them.
func declareNewSubsets(a Action, declared map[string]bool) {
	if a.Subset != "" {
		declared[a.Subset] = true
	}
	if a.DiscardTo != "" {
		declared[a.DiscardTo] = true
	}
	for _, s := range a.SeparateInto {
		declared[s.Name] = true
	}
	if a.DieStoreSubset != "" {
		declared[a.DieStoreSubset] = true
	}
}

func (d *Document) validateSubsetReferences(a Action, declared map[string]bool) error {
	refs := []string{}
	if a.Kind == ActionDiscard || a.Kind == ActionExpose {
		refs = append(refs, a.Subset)
	}
	for _, r := range refs {
		if r != "" && !declared[r] {
			return invalid("references undeclared subset %q", r)
		}
	}
	return nil
}

func validateActionSchema(a Action) error {
	switch a.Kind {
	case ActionBet:
		switch a.BetStyle {
		case "", "small", "big", "blinds", "antes_only", "bring-in":
		default:
			return invalid("bet step: unknown bet_style %q", a.BetStyle)
		}
	case ActionDeal:
		if a.Location != "player" && a.Location != "community" {
			return invalid("deal step: location must be player or community, got %q", a.Location)
		}
		if a.Count <= 0 {
			return invalid("deal step: count must be positive")
		}
	case ActionDiscard:
		if a.DiscardMax < a.DiscardMin {
			return invalid("discard step: discard_max < discard_min")
		}
	case ActionDraw:
		if a.DrawAmount <= 0 && a.DrawRelativeTo == "" {
			return invalid("draw step: must set draw_amount or draw_relative_to")
		}
	case ActionExpose:
		if a.ExposeCount <= 0 {
			return invalid("expose step: expose_count must be positive")
		}
	case ActionPass:
		switch a.PassDirection {
		case "left", "right", "across":
		default:
			return invalid("pass step: unknown pass_direction %q", a.PassDirection)
		}
		if a.PassCount <= 0 {
			return invalid("pass step: pass_count must be positive")
		}
	case ActionSeparate:
		if len(a.SeparateInto) == 0 {
			return invalid("separate step: separate_into must be non-empty")
		}
	case ActionDeclare:
		if len(a.DeclareOptions) == 0 {
			return invalid("declare step: declare_options must be non-empty")
		}
	case ActionChoose:
		switch a.ChoosePosition {
		case "utg", "button", "dealer", "sb", "bb":
		default:
			return invalid("choose step: unknown choose_position %q", a.ChoosePosition)
		}
		if len(a.ChoosePossibleValues) == 0 {
			return invalid("choose step: possible_values must be non-empty")
		}
	case ActionRollDie:
		if a.DieSides <= 0 {
			return invalid("roll_die step: die_sides must be positive")
		}
	}
	return nil
}

func (d *Document) validateShowdown(declared map[string]bool) error {
	if len(d.Showdown.BestHands) == 0 {
		return invalid("showdown.best_hands must be non-empty")
	}
	switch d.Showdown.DeclarationMode {
	case "cards_speak", "declare":
	default:
		return invalid("showdown: unknown declaration_mode %q", d.Showdown.DeclarationMode)
	}
	for _, bh := range d.Showdown.BestHands {
		if _, err := eval.Get(bh.EvalType); err != nil {
			return invalid("showdown.best_hands[%s]: %v", bh.Name, err)
		}
		for _, s := range bh.Combinator.HoleSubsets {
			if !declared[s] {
				return invalid("showdown.best_hands[%s]: references undeclared hole subset %q", bh.Name, s)
			}
		}
		for _, s := range bh.Combinator.CommunitySubsets {
			if !declared[s] {
				return invalid("showdown.best_hands[%s]: references undeclared community subset %q", bh.Name, s)
			}
		}
	}
	return nil
}
