package bio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/apriori/pkg/apriori"
)

/*
ReadCSVDatabase takes an io.Reader for a CSV stream and optional metadata
and returns the apriori.Database parsed from it or an error.

The header or first row of the CSV content is expected to hold the name of
the identifier column followed by the names of the items. Unless the
metadata names another one, the first column is the identifier. The rest
of the rows are transactions: a non-empty, non-zero cell marks the presence
of the column's item on the transaction (see Present).
*/
func ReadCSVDatabase(reader io.Reader, md *Metadata) (*apriori.Database, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: missing identifier column")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	tb, err := newTableBuilder(header, md)
	if err != nil {
		return nil, err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %v", err)
		}
		err = tb.addRow(row)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %v", l, err)
		}
	}
	return tb.database()
}

/*
ReadCSVDatabaseFromFilePath takes a filepath string and optional metadata,
opens the file to which the filepath points to and uses ReadCSVDatabase to
return the apriori.Database read from it or an error. An empty filepath
reads from STDIN.
*/
func ReadCSVDatabaseFromFilePath(filepath string, md *Metadata) (*apriori.Database, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading transactions: %v", err)
		}
		defer f.Close()
	}
	db, err := ReadCSVDatabase(f, md)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return db, err
}

/*
WriteCSVDatabase takes an io.Writer, a database and the name for the
identifier column and writes the database as CSV in the layout
ReadCSVDatabase reads, with 1 and 0 flagging the presence of items.
An empty identifier defaults to "id".
*/
func WriteCSVDatabase(w io.Writer, db *apriori.Database, identifier string) error {
	cw := csv.NewWriter(w)
	header, rows := tableRows(db, identifier)
	err := cw.Write(header)
	if err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	err = cw.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("writing CSV rows: %v", err)
	}
	return nil
}
