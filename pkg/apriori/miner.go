package apriori

import (
	"context"
	"fmt"
)

/*
Logger is an interface wrapping the Logf method, that the Miner uses
to report progress through the levels of the search.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Miner represents the context in which frequent itemsets are mined.

Its Mine method takes a Database and returns a Result with every
itemset on it whose support reaches the Miner's threshold.
*/
type Miner struct {
	support Threshold
	joiner  Joiner
	maxSize int
	logger  Logger
}

/*
New takes a support threshold, a Joiner to build candidates, a maximum
itemset size and a Logger, and returns a Miner that uses those to mine
frequent itemsets. A maxSize of 0 sets no limit on the size of mined
itemsets. The joiner and logger may be nil, in which case PrefixJoiner
is used and nothing is logged.
*/
func New(support Threshold, j Joiner, maxSize int, l Logger) *Miner {
	if j == nil {
		j = PrefixJoiner()
	}
	return &Miner{support, j, maxSize, l}
}

/*
Mine takes a context and a Database and performs a level-wise search of
the itemsets whose support ratio is greater or equal to the Miner's
support threshold.

The first level counts every item of the database's universe on its
own. Every later level counts the candidates generated from the
previous one, and the search stops when a level has no supported
itemsets or no candidates can be generated. The support count of every
itemset counted, supported or not, is kept on the Result.

The context is checked between levels: if it is done, Mine returns
its error.
*/
func (m *Miner) Mine(ctx context.Context, db *Database) (*Result, error) {
	result := newResult(db.Count(), m.support)
	var level []Itemset
	for _, item := range db.Universe() {
		level = append(level, NewItemset(item))
	}
	level = m.countLevel(db, level, result)
	m.logf("Level 1: %d items, %d supported", len(db.Universe()), len(level))
	result.appendLevel(level)
	for k := 2; k <= len(db.Universe()); k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mining level %d: %v", k, err)
		}
		if len(level) == 0 {
			break
		}
		if m.maxSize > 0 && k > m.maxSize {
			m.logf("Stopping at maximum itemset size %d", m.maxSize)
			break
		}
		candidates := GenerateCandidates(level, m.joiner)
		if len(candidates) == 0 {
			m.logf("Level %d: no candidates", k)
			break
		}
		level = m.countLevel(db, candidates, result)
		m.logf("Level %d: %d candidates, %d supported", k, len(candidates), len(level))
		result.appendLevel(level)
	}
	return result, nil
}

// countLevel records the support count of every candidate on result and returns the supported ones
func (m *Miner) countLevel(db *Database, candidates []Itemset, result *Result) []Itemset {
	var supported []Itemset
	for _, c := range candidates {
		count := db.SupportCount(c)
		result.Counts[c] = count
		if m.support.Met(count, result.Transactions) {
			supported = append(supported, c)
		}
	}
	return supported
}

func (m *Miner) logf(format string, a ...interface{}) {
	if m.logger != nil {
		m.logger.Logf(format, a...)
	}
}
