package eval

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"pokerengine/pkg/card"
)

// memoCache sits above the startup-precomputed table in ranktable.go (which
// covers standard_high's default-order fast path) and gives every registered
// Evaluator, including ones the table doesn't cover (custom HandRankOrder,
// low/badugi/pip families), O(1) amortized lookup for repeat calls: each
// unique (evalType, card multiset, options fingerprint) is ranked once and
// cached for the life of the process. A showdown re-evaluating the same
// board/hole combination across BestHand configurations, or a rules document
// reused across many hands of the same variant, hits the cache after the
// first lookup. See DESIGN.md for why the precomputed table itself is scoped
// to the default hand-rank order rather than every possible custom ordering.
type memoCache struct {
	mu    sync.RWMutex
	cache map[string]cachedResult
}

type cachedResult struct {
	result *HandResult
	ok     bool
}

func newMemoCache() *memoCache {
	return &memoCache{cache: make(map[string]cachedResult)}
}

func memoKey(evalType string, cards []card.Card, opts Options) string {
	var b strings.Builder
	b.WriteString(evalType)
	b.WriteByte('|')

	sorted := make([]string, len(cards))
	for i, c := range cards {
		if c.Joker {
			sorted[i] = "JK"
			continue
		}
		sorted[i] = c.Rank.String() + strconv.Itoa(int(c.Suit))
	}
	sort.Strings(sorted)
	b.WriteString(strings.Join(sorted, ","))

	b.WriteByte('|')
	for _, hr := range opts.HandRankOrder {
		b.WriteString(strconv.Itoa(int(hr)))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	if opts.Qualifier != nil {
		b.WriteString(strconv.Itoa(opts.Qualifier.Category))
		for _, v := range opts.Qualifier.HighValues {
			b.WriteString(strconv.Itoa(v))
		}
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(opts.LowMaxRank)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(len(opts.Wild)))
	return b.String()
}

// Evaluate runs the registered Evaluator for evalType over cards, caching
// the result for identical future lookups.
func Evaluate(evalType string, cards []card.Card, opts Options) (*HandResult, bool, error) {
	registryOnce.Do(buildRegistry)
	e, err := Get(evalType)
	if err != nil {
		return nil, false, err
	}

	key := memoKey(evalType, cards, opts)
	memo.mu.RLock()
	if cached, found := memo.cache[key]; found {
		memo.mu.RUnlock()
		return cached.result, cached.ok, nil
	}
	memo.mu.RUnlock()

	result, ok := e.Evaluate(cards, opts)
	memo.mu.Lock()
	memo.cache[key] = cachedResult{result: result, ok: ok}
	memo.mu.Unlock()
	return result, ok, nil
}
