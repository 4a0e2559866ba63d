/*
Package sqlite3adapter provides an implementation of the
Adapter interface in the sql package that works over an
SQLite3 database file.
*/
package sqlite3adapter

import (
	"context"
	"database/sql"
	"fmt"

	// Import of sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	biosql "github.com/pbanos/apriori/pkg/bio/sql"
)

const (
	itemsTableCreateStmt = `CREATE TABLE IF NOT EXISTS items (
		ord INTEGER PRIMARY KEY,
		name TEXT UNIQUE NOT NULL)`
	transactionsTableCreateStmt = `CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY NOT NULL)`
	transactionItemsTableCreateStmt = `CREATE TABLE IF NOT EXISTS transaction_items (
		tid TEXT NOT NULL REFERENCES transactions(id),
		item TEXT NOT NULL REFERENCES items(name),
		PRIMARY KEY (tid, item))`
	/*
		MaxInsertionsPerStatement is the maximum number
		of rows that are allowed to be added with a single
		insert command with the Add methods of the adapter.
		Trying to add more will result in making more insertion commands
	*/
	MaxInsertionsPerStatement = 100
)

type adapter struct {
	db *sql.DB
}

/*
New takes a path to an SQLite3 database file and a maximum number
of open connections and returns an Adapter that works on the file's
database or an error if it fails to open as an sqlite3 database. A
maxConns value of 0 sets no limit.
*/
func New(path string, maxConns int) (biosql.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxConns)
	return &adapter{db}, nil
}

func (a *adapter) CreateTables(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, "PRAGMA foreign_keys=ON")
	if err != nil {
		return err
	}
	for _, t := range []struct{ name, stmt string }{
		{"items", itemsTableCreateStmt},
		{"transactions", transactionsTableCreateStmt},
		{"transaction_items", transactionItemsTableCreateStmt},
	} {
		_, err = a.db.ExecContext(ctx, t.stmt)
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
		err = rows.Scan(&name)
		if err != nil {
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
		err = rows.Scan(&id)
		if err != nil {
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
		err = rows.Scan(&ti.TransactionID, &ti.Item)
		if err != nil {
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

func placeholder(int) string {
	return "?"
}
