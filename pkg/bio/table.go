package bio

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pbanos/apriori/pkg/apriori"
)

/*
tableBuilder builds a database from a table whose rows are
transactions: one column holds the transaction identifier and
every other column flags the presence of an item.
*/
type tableBuilder struct {
	idColumn     int
	itemColumns  []int
	universe     []apriori.Item
	transactions []apriori.Transaction
	ids          map[string]bool
}

func newTableBuilder(header []string, md *Metadata) (*tableBuilder, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("parsing header: missing identifier column")
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, ok := columns[name]; ok {
			return nil, fmt.Errorf("parsing header: column %q appears more than once", name)
		}
		columns[name] = i
	}
	tb := &tableBuilder{ids: make(map[string]bool)}
	if md != nil && md.Identifier != "" {
		i, ok := columns[md.Identifier]
		if !ok {
			return nil, fmt.Errorf("parsing header: missing identifier column %q", md.Identifier)
		}
		tb.idColumn = i
	}
	if md != nil && len(md.Items) > 0 {
		for _, item := range md.Items {
			i, ok := columns[item]
			if !ok {
				return nil, fmt.Errorf("parsing header: missing column for item %q", item)
			}
			if i == tb.idColumn {
				return nil, fmt.Errorf("parsing header: item %q is the identifier column", item)
			}
			tb.itemColumns = append(tb.itemColumns, i)
			tb.universe = append(tb.universe, apriori.Item(item))
		}
		return tb, nil
	}
	for i, name := range header {
		if i == tb.idColumn {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("parsing header: column %d has no item name", i+1)
		}
		tb.itemColumns = append(tb.itemColumns, i)
		tb.universe = append(tb.universe, apriori.Item(name))
	}
	return tb, nil
}

func (tb *tableBuilder) addRow(row []string) error {
	if tb.idColumn >= len(row) || strings.TrimSpace(row[tb.idColumn]) == "" {
		return fmt.Errorf("missing transaction identifier")
	}
	id := strings.TrimSpace(row[tb.idColumn])
	if tb.ids[id] {
		return fmt.Errorf("transaction %q appears more than once", id)
	}
	tb.ids[id] = true
	var items []apriori.Item
	for j, c := range tb.itemColumns {
		if c < len(row) && Present(row[c]) {
			items = append(items, tb.universe[j])
		}
	}
	tb.transactions = append(tb.transactions, apriori.Transaction{ID: id, Items: apriori.NewItemset(items...)})
	return nil
}

func (tb *tableBuilder) database() (*apriori.Database, error) {
	return apriori.NewDatabase(tb.universe, tb.transactions)
}

/*
Present takes the content of a table cell and returns whether it marks
the presence of the column's item. Empty cells, the '?' undefined value,
NaN, numeric zeros and false booleans mark absence. Anything else marks
presence.
*/
func Present(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "?" {
		return false
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return !math.IsNaN(f) && f != 0
	}
	if b, err := strconv.ParseBool(cell); err == nil {
		return b
	}
	return true
}

// tableRows returns the header and rows for a database in the layout tableBuilder reads
func tableRows(db *apriori.Database, identifier string) ([]string, [][]string) {
	if identifier == "" {
		identifier = "id"
	}
	universe := db.Universe()
	header := make([]string, 0, len(universe)+1)
	header = append(header, identifier)
	for _, item := range universe {
		header = append(header, string(item))
	}
	var rows [][]string
	for _, t := range db.Transactions() {
		row := make([]string, 0, len(header))
		row = append(row, t.ID)
		for _, item := range universe {
			if t.Items.Contains(item) {
				row = append(row, "1")
			} else {
				row = append(row, "0")
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}
