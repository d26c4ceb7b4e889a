package engine

import (
	"pokerengine/pkg/betting"
	"pokerengine/pkg/card"
	"pokerengine/pkg/eval"
	"pokerengine/pkg/rules"
	"pokerengine/pkg/table"
)

// runShowdown executes the eight-point showdown algorithm (spec.md §4.6):
// per active BestHand configuration, rank every eligible seat's best hand,
// apply declaration-mode filtering, split pot shares across qualifying
// configurations (falling back to the configured default when none
// qualify), and award main-then-side pots in order.
func (g *Game) runShowdown() {
	eligible := g.Table.NonFoldedSeats()
	pots := betting.BuildPots(g.Table.OccupiedSeats(), eligible)

	configs := g.Doc.ActiveBestHands(gameContext{g: g, seat: -1})

	var potResults []PotResult
	for potIdx, pot := range pots {
		potResults = append(potResults, g.awardPot(potIdx, pot, configs)...)
	}

	g.results = &HandResult{Pots: potResults}
	g.events.append(Event{Kind: EventShowdown, StepIndex: g.StepIndex, StepName: g.currentStepName()})
	for _, pr := range potResults {
		g.events.append(Event{
			Kind: EventPotAwarded, StepIndex: g.StepIndex, StepName: g.currentStepName(),
			Amount: pr.Amount, Detail: pr.ConfigName,
		})
	}
	g.Bet.Pot = 0
	for _, s := range g.Table.OccupiedSeats() {
		s.CurrentBet = 0
	}
	g.State = StateComplete
}

type configResult struct {
	config  rules.BestHand
	winners []*table.Seat
	best    *eval.HandResult
	ev      eval.Evaluator
}

func (g *Game) awardPot(potIdx int, pot betting.Pot, configs []rules.BestHand) []PotResult {
	var qualifying []configResult
	for _, cfg := range configs {
		cr := g.bestForConfig(cfg, pot.Eligible)
		if cr.best != nil && len(cr.winners) > 0 {
			qualifying = append(qualifying, cr)
		}
	}

	if len(qualifying) == 0 {
		// No configuration qualified: fall back to the declared default.
		if g.Doc.Showdown.DefaultAction == "best_hand" && g.Doc.Showdown.FallbackEvalType != "" {
			fallback := rules.BestHand{
				Name: "fallback", EvalType: g.Doc.Showdown.FallbackEvalType,
				Combinator: rules.CombinatorSpec{Kind: "any_n_of"},
			}
			cr := g.bestForConfig(fallback, pot.Eligible)
			if cr.best != nil {
				qualifying = []configResult{cr}
			}
		}
		if len(qualifying) == 0 {
			// Last resort: split evenly among every eligible seat.
			shares := betting.Award(pot.Eligible, pot.Amount)
			return []PotResult{{PotIndex: potIdx, Amount: pot.Amount, ConfigName: "split", Winners: idsOf(shares)}}
		}
	}

	return g.distributeAmongConfigs(potIdx, pot, qualifying)
}

func (g *Game) distributeAmongConfigs(potIdx int, pot betting.Pot, qualifying []configResult) []PotResult {
	n := len(qualifying)
	shareOf := func(cfg rules.BestHand) int {
		if cfg.PotShare > 0 {
			return int(cfg.PotShare * float64(pot.Amount))
		}
		return pot.Amount / n
	}

	var results []PotResult
	distributed := 0
	for i, cr := range qualifying {
		amount := shareOf(cr.config)
		if i == 0 {
			amount += pot.Amount - (shareOf(cr.config) * n) // odd chips go to the first (highest-priority) configuration.
		}
		distributed += amount

		shares := betting.Award(cr.winners, amount)
		results = append(results, PotResult{
			PotIndex:    potIdx,
			Amount:      amount,
			ConfigName:  cr.config.Name,
			Winners:     idsOf(shares),
			Description: cr.ev.Describe(cr.best),
			Cards:       cr.best.Cards,
		})
	}
	return results
}

func idsOf(shares map[*table.Seat]int) []string {
	ids := make([]string, 0, len(shares))
	for s := range shares {
		ids = append(ids, s.PlayerID)
	}
	return ids
}

// bestForConfig finds the seats with the strongest qualifying hand under
// cfg among candidates, applying declaration-mode filtering first.
func (g *Game) bestForConfig(cfg rules.BestHand, candidates []*table.Seat) configResult {
	pool := candidates
	if g.Doc.Showdown.DeclarationMode == "declare" {
		pool = nil
		for _, s := range candidates {
			if declared, ok := g.declarations[s.Number]; ok && declarationMatches(declared, cfg.Name) {
				pool = append(pool, s)
			}
		}
	}

	ev, err := eval.Get(cfg.EvalType)
	if err != nil {
		return configResult{config: cfg}
	}
	opts := g.evalOptionsFor(cfg)
	combinator := buildCombinator(cfg.Combinator)

	var best *eval.HandResult
	var winners []*table.Seat
	for _, s := range pool {
		hr := g.bestHandForSeat(s, combinator, ev, cfg.EvalType, opts)
		if hr == nil || !hr.Qualifies() {
			continue
		}
		if best == nil {
			best, winners = hr, []*table.Seat{s}
			continue
		}
		switch ev.Compare(hr, best) {
		case 1:
			best, winners = hr, []*table.Seat{s}
		case 0:
			winners = append(winners, s)
		}
	}
	return configResult{config: cfg, winners: winners, best: best, ev: ev}
}

func declarationMatches(declared, configName string) bool {
	return declared == configName || declared == "both"
}

func (g *Game) bestHandForSeat(s *table.Seat, combinator eval.Combinator, ev eval.Evaluator, evalType string, opts eval.Options) *eval.HandResult {
	hole := s.HoleCards
	candidates := combinator.Generate(hole, g.Table.Community)
	// lowest_hole wild resolution is scoped per seat (spec.md §4.2), so each
	// seat evaluates against its own hole cards rather than the shared opts
	// built once per BestHand configuration.
	seatOpts := opts
	for _, cards := range hole {
		seatOpts.HoleCards = append(seatOpts.HoleCards, cards...)
	}
	var best *eval.HandResult
	for _, candidate := range candidates {
		hr, ok, err := eval.Evaluate(evalType, candidate, seatOpts)
		if err != nil || !ok {
			continue
		}
		if best == nil || ev.Compare(hr, best) == 1 {
			best = hr
		}
	}
	return best
}

func (g *Game) evalOptionsFor(cfg rules.BestHand) eval.Options {
	opts := eval.Options{}
	if len(cfg.CustomRanking) > 0 {
		opts.HandRankOrder = eval.BuildHandRankOrder(true, cfg.CustomRanking)
	}
	if cfg.Qualifier != nil && cfg.Qualifier.LowMaxRank != "" {
		if r, ok := parseRankToken(cfg.Qualifier.LowMaxRank); ok {
			opts.LowMaxRank = r
			opts.Qualifier = eval.LowQualifier(r)
		}
	}
	for _, w := range cfg.Wild {
		opts.Wild = append(opts.Wild, eval.WildSpec{
			Kind:  eval.WildKind(w.Kind),
			Role:  eval.WildRole(w.Role),
			Scope: eval.WildScope(w.Scope),
			Rank:  rankOrZero(w.Rank),
		})
	}
	for _, cards := range g.Table.Community {
		opts.Community = append(opts.Community, cards...)
	}
	return opts
}

func rankOrZero(token string) card.Rank {
	r, _ := parseRankToken(token)
	return r
}

func parseRankToken(token string) (card.Rank, bool) {
	switch token {
	case "2":
		return card.Two, true
	case "3":
		return card.Three, true
	case "4":
		return card.Four, true
	case "5":
		return card.Five, true
	case "6":
		return card.Six, true
	case "7":
		return card.Seven, true
	case "8":
		return card.Eight, true
	case "9":
		return card.Nine, true
	case "10", "T":
		return card.Ten, true
	case "J":
		return card.Jack, true
	case "Q":
		return card.Queen, true
	case "K":
		return card.King, true
	case "A":
		return card.Ace, true
	default:
		return 0, false
	}
}

func buildCombinator(spec rules.CombinatorSpec) eval.Combinator {
	switch spec.Kind {
	case "exact_k_plus_board":
		return eval.ExactKPlusBoardCombinator{
			HoleSubsets: spec.HoleSubsets, CommunitySubsets: spec.CommunitySubsets,
			HoleCount: spec.HoleCount, N: spec.N,
		}
	case "subset_bounded":
		bounds := make([]eval.SubsetBound, len(spec.Bounds))
		for i, b := range spec.Bounds {
			bounds[i] = eval.SubsetBound{Source: b.Source, Name: b.Name, Min: b.Min, Max: b.Max}
		}
		return eval.SubsetBoundedCombinator{Bounds: bounds, N: spec.N}
	case "unused_from":
		return eval.UnusedFromCombinator{HoleSubsets: spec.HoleSubsets, CommunitySubsets: spec.CommunitySubsets, N: spec.N}
	default:
		return eval.AnyNOfCombinator{HoleSubsets: spec.HoleSubsets, CommunitySubsets: spec.CommunitySubsets, N: spec.N}
	}
}
