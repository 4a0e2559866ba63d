package apriori

import (
	"fmt"
	"sort"
	"strings"
)

/*
Transaction represents a basket: an identifier and the
itemset with the items present on it.
*/
type Transaction struct {
	ID    string
	Items Itemset
}

/*
Database represents an immutable collection of transactions
over a fixed universe of items.
*/
type Database struct {
	universe     []Item
	transactions []Transaction
	members      []map[Item]bool
}

/*
NewDatabase takes the universe of items and a slice of transactions
and returns a Database holding them or an error if a transaction ID
is repeated, a transaction holds an item out of the universe or an
item contains the reserved unit separator character.

Transactions are kept ordered by their ID.
*/
func NewDatabase(universe []Item, transactions []Transaction) (*Database, error) {
	known := make(map[Item]bool, len(universe))
	for _, item := range universe {
		if strings.Contains(string(item), separator) {
			return nil, fmt.Errorf("item %q contains a reserved character", item)
		}
		if known[item] {
			return nil, fmt.Errorf("item %q appears twice in the universe", item)
		}
		known[item] = true
	}
	db := &Database{
		universe:     append([]Item{}, universe...),
		transactions: append([]Transaction{}, transactions...),
	}
	sort.Slice(db.transactions, func(i, j int) bool { return db.transactions[i].ID < db.transactions[j].ID })
	db.members = make([]map[Item]bool, len(db.transactions))
	for i, t := range db.transactions {
		if i > 0 && db.transactions[i-1].ID == t.ID {
			return nil, fmt.Errorf("transaction %q appears more than once", t.ID)
		}
		m := make(map[Item]bool, t.Items.Len())
		for _, item := range t.Items.Items() {
			if !known[item] {
				return nil, fmt.Errorf("transaction %q holds item %q out of the universe", t.ID, item)
			}
			m[item] = true
		}
		db.members[i] = m
	}
	return db, nil
}

// Universe returns a copy of the items the database is defined over, in their original order
func (db *Database) Universe() []Item {
	return append([]Item{}, db.universe...)
}

// Transactions returns a copy of the transactions on the database ordered by ID
func (db *Database) Transactions() []Transaction {
	return append([]Transaction{}, db.transactions...)
}

// Count returns the number of transactions on the database
func (db *Database) Count() int {
	return len(db.transactions)
}

/*
SupportCount returns the number of transactions in the database
that contain every item on the given itemset.
*/
func (db *Database) SupportCount(is Itemset) int {
	items := is.Items()
	count := 0
	for _, m := range db.members {
		contained := true
		for _, item := range items {
			if !m[item] {
				contained = false
				break
			}
		}
		if contained {
			count++
		}
	}
	return count
}

func (db *Database) String() string {
	return fmt.Sprintf("[ %d transactions over %d items ]", len(db.transactions), len(db.universe))
}
