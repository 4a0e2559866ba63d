package apriori

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// basketDatabase returns the classic five basket example
func basketDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(
		[]Item{"bread", "milk", "diaper", "beer", "eggs", "cola"},
		[]Transaction{
			{"T1", NewItemset("bread", "milk")},
			{"T2", NewItemset("bread", "diaper", "beer", "eggs")},
			{"T3", NewItemset("milk", "diaper", "beer", "cola")},
			{"T4", NewItemset("bread", "milk", "diaper", "beer")},
			{"T5", NewItemset("bread", "milk", "diaper", "cola")},
		},
	)
	require.NoError(t, err)
	return db
}

// randomDatabase returns a database of n transactions over size items built from the given seed
func randomDatabase(t *testing.T, seed int64, size, n int) *Database {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	universe := make([]Item, size)
	for i := range universe {
		universe[i] = Item(fmt.Sprintf("i%02d", i))
	}
	transactions := make([]Transaction, n)
	for i := range transactions {
		var items []Item
		for _, item := range universe {
			if rnd.Float64() < 0.45 {
				items = append(items, item)
			}
		}
		transactions[i] = Transaction{fmt.Sprintf("t%03d", i), NewItemset(items...)}
	}
	db, err := NewDatabase(universe, transactions)
	require.NoError(t, err)
	return db
}

func mustThreshold(t *testing.T, s string) Threshold {
	t.Helper()
	th, err := ParseThreshold(s)
	require.NoError(t, err)
	return th
}

type testLogger struct {
	lines []string
}

func (tl *testLogger) Logf(format string, a ...interface{}) {
	tl.lines = append(tl.lines, fmt.Sprintf(format, a...))
}
