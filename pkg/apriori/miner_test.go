package apriori

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMineBasketExample(t *testing.T) {
	db := basketDatabase(t)
	logger := &testLogger{}
	result, err := New(mustThreshold(t, "0.6"), nil, 0, logger).Mine(context.Background(), db)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Transactions)
	assert.Equal(t, [][]Itemset{
		{NewItemset("bread"), NewItemset("milk"), NewItemset("diaper"), NewItemset("beer")},
		{
			NewItemset("beer", "diaper"), NewItemset("bread", "diaper"),
			NewItemset("bread", "milk"), NewItemset("diaper", "milk"),
		},
	}, result.Levels)

	ratio, ok := result.SupportRatio(NewItemset("diaper", "beer"))
	assert.True(t, ok)
	assert.Equal(t, 0.6, ratio)

	// every singleton, every pair of supported singletons and the only candidate triple
	assert.Len(t, result.Counts, 6+6+1)
	count, ok := result.Count(NewItemset("bread", "diaper", "milk"))
	assert.True(t, ok)
	assert.Equal(t, 2, count)
	count, ok = result.Count(NewItemset("eggs"))
	assert.True(t, ok)
	assert.Equal(t, 1, count)
	_, ok = result.Count(NewItemset("eggs", "cola"))
	assert.False(t, ok)

	assert.Equal(t, []string{
		"Level 1: 6 items, 4 supported",
		"Level 2: 6 candidates, 4 supported",
		"Level 3: 1 candidates, 0 supported",
	}, logger.lines)
}

func TestMineIncludesSupportEqualToThreshold(t *testing.T) {
	db := basketDatabase(t)
	result, err := New(mustThreshold(t, "0.8"), nil, 0, nil).Mine(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, [][]Itemset{
		{NewItemset("bread"), NewItemset("milk"), NewItemset("diaper")},
	}, result.Levels)
}

func TestMineEmptyDatabase(t *testing.T) {
	db, err := NewDatabase([]Item{"a", "b"}, nil)
	require.NoError(t, err)
	result, err := New(mustThreshold(t, "0"), nil, 0, nil).Mine(context.Background(), db)
	require.NoError(t, err)
	assert.Empty(t, result.Levels)
	assert.Empty(t, result.Supported())
	assert.Len(t, result.Counts, 2)
}

func TestMineEverythingWithZeroThreshold(t *testing.T) {
	db, err := NewDatabase([]Item{"a", "b", "c"}, []Transaction{{"1", NewItemset("a")}})
	require.NoError(t, err)
	result, err := New(mustThreshold(t, "0"), nil, 0, nil).Mine(context.Background(), db)
	require.NoError(t, err)
	assert.Len(t, result.Supported(), 7)
	assert.Len(t, result.Levels, 3)
}

func TestMineMaxSize(t *testing.T) {
	db := basketDatabase(t)
	result, err := New(mustThreshold(t, "0.2"), nil, 2, nil).Mine(context.Background(), db)
	require.NoError(t, err)
	assert.Len(t, result.Levels, 2)
	for _, is := range result.Supported() {
		assert.True(t, is.Len() <= 2)
	}
}

func TestMineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(mustThreshold(t, "0.2"), nil, 0, nil).Mine(ctx, basketDatabase(t))
	assert.Error(t, err)
}

func TestMinePreservesDownwardClosure(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		db := randomDatabase(t, seed, 10, 60)
		result, err := New(mustThreshold(t, "0.15"), nil, 0, nil).Mine(context.Background(), db)
		require.NoError(t, err)
		supported := make(map[Itemset]bool)
		for _, is := range result.Supported() {
			supported[is] = true
		}
		for _, is := range result.Supported() {
			assert.True(t, mustThreshold(t, "0.15").Met(result.Counts[is], result.Transactions))
			assert.Equal(t, db.SupportCount(is), result.Counts[is])
			if is.Len() < 2 {
				continue
			}
			for _, item := range is.Items() {
				sub := is.Without(item)
				assert.True(t, supported[sub], "%v is supported but %v is not", is, sub)
				assert.True(t, result.Counts[sub] >= result.Counts[is])
			}
		}
	}
}

func TestMineFindsEverySupportedItemset(t *testing.T) {
	db := randomDatabase(t, 11, 7, 30)
	support := mustThreshold(t, "0.2")
	result, err := New(support, PairwiseJoiner(), 0, nil).Mine(context.Background(), db)
	require.NoError(t, err)
	found := make(map[Itemset]bool)
	for _, is := range result.Supported() {
		found[is] = true
	}
	all := NewItemset(db.Universe()...)
	for _, is := range all.Subsets() {
		expected := support.Met(db.SupportCount(is), db.Count())
		assert.Equal(t, expected, found[is], is.String())
	}
}
