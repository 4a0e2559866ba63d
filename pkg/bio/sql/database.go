package sql

import (
	"context"
	"fmt"

	"github.com/pbanos/apriori/pkg/apriori"
)

/*
OpenDatabase takes a context and an Adapter to a db backend and returns the
apriori.Database stored on it or an error.

This function expects the adapter to have the tables already created and
filled, for instance with WriteDatabase.
*/
func OpenDatabase(ctx context.Context, dbAdapter Adapter) (*apriori.Database, error) {
	names, err := dbAdapter.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %v", err)
	}
	universe := make([]apriori.Item, len(names))
	for i, n := range names {
		universe[i] = apriori.Item(n)
	}
	var ids []string
	err = dbAdapter.IterateOnTransactions(ctx, func(id string) (bool, error) {
		ids = append(ids, id)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %v", err)
	}
	items := make(map[string][]apriori.Item, len(ids))
	err = dbAdapter.IterateOnTransactionItems(ctx, func(ti TransactionItem) (bool, error) {
		items[ti.TransactionID] = append(items[ti.TransactionID], apriori.Item(ti.Item))
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing transaction items: %v", err)
	}
	transactions := make([]apriori.Transaction, 0, len(ids))
	for _, id := range ids {
		transactions = append(transactions, apriori.Transaction{ID: id, Items: apriori.NewItemset(items[id]...)})
		delete(items, id)
	}
	if len(items) > 0 {
		return nil, fmt.Errorf("items stored for %d unknown transactions", len(items))
	}
	return apriori.NewDatabase(universe, transactions)
}

/*
WriteDatabase takes a context, an Adapter and an apriori.Database and
stores the database through the adapter, creating the tables if they do
not exist. The tables are expected to be empty.
*/
func WriteDatabase(ctx context.Context, dbAdapter Adapter, db *apriori.Database) error {
	err := dbAdapter.CreateTables(ctx)
	if err != nil {
		return err
	}
	universe := db.Universe()
	names := make([]string, len(universe))
	for i, item := range universe {
		names[i] = string(item)
	}
	_, err = dbAdapter.AddItems(ctx, names)
	if err != nil {
		return fmt.Errorf("storing items: %v", err)
	}
	transactions := db.Transactions()
	ids := make([]string, len(transactions))
	var pairs []TransactionItem
	for i, t := range transactions {
		ids[i] = t.ID
		for _, item := range t.Items.Items() {
			pairs = append(pairs, TransactionItem{t.ID, string(item)})
		}
	}
	_, err = dbAdapter.AddTransactions(ctx, ids)
	if err != nil {
		return fmt.Errorf("storing transactions: %v", err)
	}
	_, err = dbAdapter.AddTransactionItems(ctx, pairs)
	if err != nil {
		return fmt.Errorf("storing transaction items: %v", err)
	}
	return nil
}
