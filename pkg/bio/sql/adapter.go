/*
Package sql provides a way to read and write transaction databases
from and to SQL databases through an Adapter.

Databases are stored in three tables: items, holding the universe of
items in order, transactions, holding transaction identifiers, and
transaction_items, relating each transaction to the items present on it.
*/
package sql

import "context"

/*
Adapter is an interface providing the methods
needed to store and load a transaction database
on a SQL database backend.
*/
type Adapter interface {
	CreateTables(context.Context) error

	AddItems(ctx context.Context, items []string) (int, error)
	ListItems(context.Context) ([]string, error)

	AddTransactions(ctx context.Context, ids []string) (int, error)
	AddTransactionItems(ctx context.Context, pairs []TransactionItem) (int, error)
	IterateOnTransactions(ctx context.Context, lambda func(id string) (bool, error)) error
	IterateOnTransactionItems(ctx context.Context, lambda func(TransactionItem) (bool, error)) error
	CountTransactions(context.Context) (int, error)

	Close() error
}

/*
TransactionItem is a row of the transaction_items table: it
marks the presence of an item on a transaction.
*/
type TransactionItem struct {
	TransactionID string
	Item          string
}
