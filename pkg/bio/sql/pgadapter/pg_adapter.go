/*
Package pgadapter provides an implementation of the
Adapter interface in the sql package that works
over a PostgreSQL database.
*/
package pgadapter

import (
	"context"
	"database/sql"
	"fmt"

	biosql "github.com/pbanos/apriori/pkg/bio/sql"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

const (
	itemsTableCreateStmt = `CREATE TABLE IF NOT EXISTS items (
		ord INTEGER PRIMARY KEY,
		name TEXT UNIQUE NOT NULL)`
	transactionsTableCreateStmt = `CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY)`
	transactionItemsTableCreateStmt = `CREATE TABLE IF NOT EXISTS transaction_items (
		tid TEXT NOT NULL REFERENCES transactions(id),
		item TEXT NOT NULL REFERENCES items(name),
		PRIMARY KEY (tid, item))`

	// MaxInsertionsPerStatement is the maximum number
	// of rows that are allowed to be added with a single
	// insert command with the Add methods of the adapter.
	// Trying to add more will result in making more insertion commands
	MaxInsertionsPerStatement = 100
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns
an Adapter that works on the database or an error if it fails to connect to it.
*/
func New(url string) (biosql.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) CreateTables(ctx context.Context) error {
	for _, t := range []struct{ name, stmt string }{
		{"items", itemsTableCreateStmt},
		{"transactions", transactionsTableCreateStmt},
		{"transaction_items", transactionItemsTableCreateStmt},
	} {
		_, err := a.db.ExecContext(ctx, t.stmt)
		if err != nil {
			return fmt.Errorf("ensuring %s table exists: %v", t.name, err)
		}
	}
	return nil
}

func (a *adapter) AddItems(ctx context.Context, items []string) (int, error) {
	rows := make([][]interface{}, len(items))
	for i, item := range items {
		rows[i] = []interface{}{i, item}
	}
	return biosql.ChunkedInsert(ctx, a.db, "INSERT INTO items (ord, name) VALUES ", placeholder, rows, MaxInsertionsPerStatement)
}

func (a *adapter) ListItems(ctx context.Context) ([]string, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT name FROM items ORDER BY ord`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	return result, rows.Err()
}

func (a *adapter) AddTransactions(ctx context.Context, ids []string) (int, error) {
	rows := make([][]interface{}, len(ids))
	for i, id := range ids {
		rows[i] = []interface{}{id}
	}
	return biosql.ChunkedInsert(ctx, a.db, "INSERT INTO transactions (id) VALUES ", placeholder, rows, MaxInsertionsPerStatement)
}

func (a *adapter) AddTransactionItems(ctx context.Context, pairs []biosql.TransactionItem) (int, error) {
	rows := make([][]interface{}, len(pairs))
	for i, p := range pairs {
		rows[i] = []interface{}{p.TransactionID, p.Item}
	}
	return biosql.ChunkedInsert(ctx, a.db, "INSERT INTO transaction_items (tid, item) VALUES ", placeholder, rows, MaxInsertionsPerStatement)
}

func (a *adapter) IterateOnTransactions(ctx context.Context, lambda func(string) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, `SELECT id FROM transactions ORDER BY id`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return err
		}
		ok, err := lambda(id)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *adapter) IterateOnTransactionItems(ctx context.Context, lambda func(biosql.TransactionItem) (bool, error)) error {
	rows, err := a.db.QueryContext(ctx, `SELECT tid, item FROM transaction_items ORDER BY tid, item`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var ti biosql.TransactionItem
		if err = rows.Scan(&ti.TransactionID, &ti.Item); err != nil {
			return err
		}
		ok, err := lambda(ti)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return rows.Err()
}

func (a *adapter) CountTransactions(ctx context.Context) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (a *adapter) Close() error {
	return a.db.Close()
}

func placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}
