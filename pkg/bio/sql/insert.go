package sql

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
)

/*
ChunkedInsert takes a context, a database, the start of an insert command
up to the VALUES keyword included, a placeholder function, the rows of values
to insert and the maximum number of rows per statement, and inserts the rows
with as many commands as needed. The placeholder function receives the 1-based
position of an argument on the statement and returns its placeholder, like ?
or $1. It returns the number of rows inserted and the error that stopped the
insertion, if any.
*/
func ChunkedInsert(ctx context.Context, db *sql.DB, insertStart string, placeholder func(int) string, rows [][]interface{}, maxRows int) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if maxRows < 1 {
		maxRows = 1
	}
	inserted := 0
	for inserted < len(rows) {
		end := inserted + maxRows
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[inserted:end]
		var stmtBuf bytes.Buffer
		var args []interface{}
		stmtBuf.WriteString(insertStart)
		for i, row := range chunk {
			if i > 0 {
				stmtBuf.WriteString(", ")
			}
			stmtBuf.WriteString("(")
			for j, v := range row {
				if j > 0 {
					stmtBuf.WriteString(", ")
				}
				args = append(args, v)
				stmtBuf.WriteString(placeholder(len(args)))
			}
			stmtBuf.WriteString(")")
		}
		_, err := db.ExecContext(ctx, stmtBuf.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("inserting %d rows after the first %d: %v", len(chunk), inserted, err)
		}
		inserted = end
	}
	return inserted, nil
}
