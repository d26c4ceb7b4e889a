package betting

import (
	"sort"

	"pokerengine/pkg/table"
)

// Pot is one main or side pot: an amount and the seats eligible to win it,
// generalizing the teacher's PotTier.
type Pot struct {
	Amount    int
	Eligible  []*table.Seat
	MaxBet    int
}

// BuildPots constructs the main pot and any side pots from every
// contributing seat's TotalBetInHand, via the ascending-contribution-tier
// waterfall spec.md §4.5 describes, ported from the teacher's DistributePot
// tier-building loop (pkg/engine/pot.go) generalized off of Player onto
// table.Seat and no longer folding the hi-lo split into the same pass
// (pkg/engine's showdown step owns that split now).
//
// showdownEligible restricts which seats may be awarded a pot share (e.g.
// excludes folded seats) while still counting every seat's contribution
// (including folded seats') toward the pot amounts.
func BuildPots(allSeats []*table.Seat, showdownEligible []*table.Seat) []Pot {
	var contributors []*table.Seat
	for _, s := range allSeats {
		if s.TotalBetInHand > 0 {
			contributors = append(contributors, s)
		}
	}
	if len(contributors) == 0 {
		return nil
	}

	tierSet := make(map[int]bool)
	for _, s := range contributors {
		tierSet[s.TotalBetInHand] = true
	}
	var tiers []int
	for t := range tierSet {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)

	eligibleSet := make(map[*table.Seat]bool, len(showdownEligible))
	for _, s := range showdownEligible {
		eligibleSet[s] = true
	}

	var pots []Pot
	lastTier := 0
	for _, tier := range tiers {
		contribution := tier - lastTier
		if contribution <= 0 {
			lastTier = tier
			continue
		}

		numInTier := 0
		for _, s := range contributors {
			if s.TotalBetInHand >= tier {
				numInTier++
			}
		}
		amount := contribution * numInTier

		var eligible []*table.Seat
		for _, s := range contributors {
			if s.TotalBetInHand >= tier && eligibleSet[s] {
				eligible = append(eligible, s)
			}
		}

		if amount > 0 && len(eligible) > 0 {
			pots = append(pots, Pot{Amount: amount, Eligible: eligible, MaxBet: tier})
		}
		lastTier = tier
	}
	return pots
}

// Award credits amount chips to each of winners, splitting evenly and
// giving any odd remainder to the first winner in the slice (callers that
// need "odd chip to the highest hand" per spec.md §4.6 point 4 should order
// winners accordingly before calling Award).
func Award(winners []*table.Seat, amount int) map[*table.Seat]int {
	result := make(map[*table.Seat]int, len(winners))
	if len(winners) == 0 {
		return result
	}
	share := amount / len(winners)
	remainder := amount % len(winners)
	for i, w := range winners {
		got := share
		if i == 0 {
			got += remainder
		}
		w.Chips += got
		result[w] = got
	}
	return result
}
