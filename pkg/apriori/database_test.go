package apriori

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabase(t *testing.T) {
	db := basketDatabase(t)
	assert.Equal(t, 5, db.Count())
	assert.Equal(t, []Item{"bread", "milk", "diaper", "beer", "eggs", "cola"}, db.Universe())
	ids := []string{}
	for _, tr := range db.Transactions() {
		ids = append(ids, tr.ID)
	}
	assert.Equal(t, []string{"T1", "T2", "T3", "T4", "T5"}, ids)
	assert.Equal(t, "[ 5 transactions over 6 items ]", db.String())
}

func TestNewDatabaseErrors(t *testing.T) {
	tests := []struct {
		name         string
		universe     []Item
		transactions []Transaction
	}{
		{"repeated id", []Item{"a"}, []Transaction{{"1", NewItemset("a")}, {"1", NewItemset()}}},
		{"unknown item", []Item{"a"}, []Transaction{{"1", NewItemset("a", "b")}}},
		{"repeated item", []Item{"a", "a"}, nil},
		{"reserved character", []Item{"a\x1fb"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDatabase(tt.universe, tt.transactions)
			assert.Error(t, err)
		})
	}
}

func TestSupportCount(t *testing.T) {
	db := basketDatabase(t)
	tests := []struct {
		itemset Itemset
		count   int
	}{
		{NewItemset("bread"), 4},
		{NewItemset("beer"), 3},
		{NewItemset("eggs"), 1},
		{NewItemset("beer", "diaper"), 3},
		{NewItemset("bread", "milk", "diaper"), 2},
		{NewItemset("eggs", "cola"), 0},
		{NewItemset(), 5},
	}
	for _, tt := range tests {
		t.Run(tt.itemset.String(), func(t *testing.T) {
			assert.Equal(t, tt.count, db.SupportCount(tt.itemset))
		})
	}
}

func TestDatabaseIsNotAffectedByCallers(t *testing.T) {
	universe := []Item{"a", "b"}
	db, err := NewDatabase(universe, nil)
	assert.NoError(t, err)
	universe[0] = "z"
	u := db.Universe()
	u[1] = "y"
	assert.Equal(t, []Item{"a", "b"}, db.Universe())
}
