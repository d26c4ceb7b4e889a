package eval

import "pokerengine/pkg/card"

// combinations returns all unique combinations of n cards from pool. Ported
// from the teacher's pkg/poker/combinations.go, used both by the standard
// 5-card generators below and by badugi's subset search.
func combinations(pool []card.Card, n int) [][]card.Card {
	if n == 0 {
		return [][]card.Card{{}}
	}
	if len(pool) < n {
		return nil
	}
	if len(pool) == n {
		out := make([]card.Card, len(pool))
		copy(out, pool)
		return [][]card.Card{out}
	}

	withFirst := combinations(pool[1:], n-1)
	for i := range withFirst {
		withFirst[i] = append([]card.Card{pool[0]}, withFirst[i]...)
	}
	withoutFirst := combinations(pool[1:], n)
	return append(withFirst, withoutFirst...)
}

// Combinator selects candidate 5-card (or, for badugi-family games, full
// hole-card) hands from a player's holdings and the community boards,
// generalizing the teacher's HandIterator (pkg/poker/hand_iterator.go) into
// the four selector kinds spec.md §4.2 names.
type Combinator interface {
	// Generate returns every candidate hand worth evaluating. hole is keyed
	// by hole-card subset name ("default" for single-subset games);
	// community is keyed by community subset name ("default" for a single
	// board). Subset bounds/exact counts are evaluator/rule-supplied via the
	// concrete Combinator's own configuration.
	Generate(hole map[string][]card.Card, community map[string][]card.Card) [][]card.Card
}

// AnyNOfCombinator takes the best N cards from the union of every listed
// hole and community subset (default N=5). This generalizes the teacher's
// AnyCombinationGenerator, used by hold'em-family and stud-family games.
type AnyNOfCombinator struct {
	HoleSubsets      []string
	CommunitySubsets []string
	N                int
}

func (c AnyNOfCombinator) n() int {
	if c.N == 0 {
		return 5
	}
	return c.N
}

func (c AnyNOfCombinator) Generate(hole map[string][]card.Card, community map[string][]card.Card) [][]card.Card {
	pool := pooledCards(hole, c.HoleSubsets)
	pool = append(pool, pooledCards(community, c.CommunitySubsets)...)
	return combinations(pool, c.n())
}

// ExactKPlusBoardCombinator requires exactly K cards from the named hole
// subset(s) plus (N-K) from the named community subset(s), generalizing the
// teacher's ExactCombinationGenerator (Omaha's "exactly 2 of 4" rule).
type ExactKPlusBoardCombinator struct {
	HoleSubsets      []string
	CommunitySubsets []string
	HoleCount        int
	N                int
}

func (c ExactKPlusBoardCombinator) n() int {
	if c.N == 0 {
		return 5
	}
	return c.N
}

func (c ExactKPlusBoardCombinator) Generate(hole map[string][]card.Card, community map[string][]card.Card) [][]card.Card {
	holePool := pooledCards(hole, c.HoleSubsets)
	boardPool := pooledCards(community, c.CommunitySubsets)
	boardCount := c.n() - c.HoleCount
	if len(holePool) < c.HoleCount || len(boardPool) < boardCount {
		return nil
	}

	holeCombos := combinations(holePool, c.HoleCount)
	boardCombos := combinations(boardPool, boardCount)
	if holeCombos == nil || boardCombos == nil {
		return nil
	}

	var out [][]card.Card
	for _, hc := range holeCombos {
		for _, bc := range boardCombos {
			hand := make([]card.Card, 0, c.n())
			hand = append(hand, hc...)
			hand = append(hand, bc...)
			out = append(out, hand)
		}
	}
	return out
}

// SubsetBoundedCombinator draws between Min and Max cards from each listed
// subset (hole or community, addressed by name) and concatenates them,
// generating every combination whose total size is exactly N. It covers
// variants that partition cards across several named subsets with per-
// subset usage bounds (e.g. "Board 1 cards" / "Board 2 cards" in a
// mixed-board game).
type SubsetBoundedCombinator struct {
	Bounds []SubsetBound
	N      int
}

// SubsetBound names one subset (hole or community; Source disambiguates)
// and the inclusive range of cards that may be drawn from it.
type SubsetBound struct {
	Source string // "hole" or "community".
	Name   string
	Min    int
	Max    int
}

func (c SubsetBoundedCombinator) n() int {
	if c.N == 0 {
		return 5
	}
	return c.N
}

func (c SubsetBoundedCombinator) Generate(hole map[string][]card.Card, community map[string][]card.Card) [][]card.Card {
	var pools [][]card.Card
	var mins, maxs []int
	for _, b := range c.Bounds {
		var pool []card.Card
		if b.Source == "community" {
			pool = community[b.Name]
		} else {
			pool = hole[b.Name]
		}
		pools = append(pools, pool)
		mins = append(mins, b.Min)
		max := b.Max
		if max == 0 || max > len(pool) {
			max = len(pool)
		}
		maxs = append(maxs, max)
	}

	var out [][]card.Card
	var recurse func(idx int, chosen []card.Card)
	recurse = func(idx int, chosen []card.Card) {
		if idx == len(pools) {
			if len(chosen) == c.n() {
				cp := make([]card.Card, len(chosen))
				copy(cp, chosen)
				out = append(out, cp)
			}
			return
		}
		for k := mins[idx]; k <= maxs[idx]; k++ {
			for _, combo := range combinations(pools[idx], k) {
				recurse(idx+1, append(chosen, combo...))
			}
		}
	}
	recurse(0, nil)
	return out
}

// UnusedFromCombinator builds candidate hands from whatever cards remain
// after a different named hand configuration has claimed its best cards
// (e.g. Scarney, where a second hand is formed from the leftovers of the
// first). Exclude lists the cards already claimed.
type UnusedFromCombinator struct {
	HoleSubsets      []string
	CommunitySubsets []string
	Exclude          []card.Card
	N                int
}

func (c UnusedFromCombinator) n() int {
	if c.N == 0 {
		return 5
	}
	return c.N
}

func (c UnusedFromCombinator) Generate(hole map[string][]card.Card, community map[string][]card.Card) [][]card.Card {
	pool := pooledCards(hole, c.HoleSubsets)
	pool = append(pool, pooledCards(community, c.CommunitySubsets)...)
	remaining := make([]card.Card, 0, len(pool))
	for _, c2 := range pool {
		excluded := false
		for _, e := range c.Exclude {
			if c2.Equal(e) {
				excluded = true
				break
			}
		}
		if !excluded {
			remaining = append(remaining, c2)
		}
	}
	return combinations(remaining, c.n())
}

func pooledCards(subsets map[string][]card.Card, names []string) []card.Card {
	var pool []card.Card
	if len(names) == 0 {
		for _, cards := range subsets {
			pool = append(pool, cards...)
		}
		return pool
	}
	for _, name := range names {
		pool = append(pool, subsets[name]...)
	}
	return pool
}
