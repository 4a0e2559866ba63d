package apriori

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCandidates(t *testing.T) {
	tests := []struct {
		name     string
		level    []Itemset
		expected []Itemset
	}{
		{
			name:     "empty level",
			level:    nil,
			expected: nil,
		},
		{
			name:  "singletons join into every pair",
			level: []Itemset{NewItemset("c"), NewItemset("a"), NewItemset("b")},
			expected: []Itemset{
				NewItemset("a", "b"), NewItemset("a", "c"), NewItemset("b", "c"),
			},
		},
		{
			name: "candidate with unsupported subset is pruned",
			level: []Itemset{
				NewItemset("beer", "diaper"), NewItemset("bread", "diaper"),
				NewItemset("bread", "milk"), NewItemset("diaper", "milk"),
			},
			expected: []Itemset{NewItemset("bread", "diaper", "milk")},
		},
		{
			name: "missing subset prunes every candidate",
			level: []Itemset{
				NewItemset("a", "b"), NewItemset("a", "c"),
			},
			expected: nil,
		},
		{
			name:     "single itemset has nothing to join with",
			level:    []Itemset{NewItemset("a", "b")},
			expected: nil,
		},
		{
			name: "level of triples",
			level: []Itemset{
				NewItemset("a", "b", "c"), NewItemset("a", "b", "d"),
				NewItemset("a", "c", "d"), NewItemset("b", "c", "d"),
				NewItemset("a", "c", "e"),
			},
			expected: []Itemset{NewItemset("a", "b", "c", "d")},
		},
	}
	joiners := map[string]Joiner{"prefix": PrefixJoiner(), "pairwise": PairwiseJoiner()}
	for _, tt := range tests {
		for jn, j := range joiners {
			t.Run(tt.name+"/"+jn, func(t *testing.T) {
				assert.Equal(t, tt.expected, GenerateCandidates(tt.level, j))
			})
		}
	}
}

func TestGenerateCandidatesDefaultsToPrefixJoin(t *testing.T) {
	level := []Itemset{NewItemset("a"), NewItemset("b")}
	assert.Equal(t, []Itemset{NewItemset("a", "b")}, GenerateCandidates(level, nil))
}

func TestPairwiseJoinKeepsOnlyOneMoreItem(t *testing.T) {
	level := []Itemset{NewItemset("a", "b"), NewItemset("c", "d"), NewItemset("a", "c")}
	joined := PairwiseJoiner().Join(level)
	for _, is := range joined {
		assert.Equal(t, 3, is.Len(), is.String())
	}
	assert.ElementsMatch(t, []Itemset{NewItemset("a", "b", "c"), NewItemset("a", "c", "d")}, joined)
}

func TestPrefixJoinOnlyJoinsSharedPrefixes(t *testing.T) {
	level := []Itemset{NewItemset("a", "b"), NewItemset("b", "c"), NewItemset("a", "c")}
	assert.Equal(t, []Itemset{NewItemset("a", "b", "c")}, PrefixJoiner().Join(level))
}

func TestJoinersAgreeAfterPruning(t *testing.T) {
	db := randomDatabase(t, 7, 9, 40)
	result, err := New(mustThreshold(t, "0.1"), PairwiseJoiner(), 0, nil).Mine(context.Background(), db)
	assert.NoError(t, err)
	for _, level := range result.Levels {
		assert.Equal(t,
			GenerateCandidates(level, PairwiseJoiner()),
			GenerateCandidates(level, PrefixJoiner()),
		)
	}
}
