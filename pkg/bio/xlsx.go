package bio

import (
	"fmt"

	"github.com/pbanos/apriori/pkg/apriori"
	"github.com/xuri/excelize/v2"
)

/*
ReadXLSXDatabase takes the path to a spreadsheet workbook, the name of a
sheet on it and optional metadata and returns the apriori.Database read
from the sheet or an error. An empty sheet name reads the first sheet of
the workbook.

The sheet is expected to follow the same layout as the CSV content read
by ReadCSVDatabase: a header row followed by a row per transaction.
*/
func ReadXLSXDatabase(path, sheet string, md *Metadata) (*apriori.Database, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %v", path, err)
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s of workbook %s: %v", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading sheet %s of workbook %s: missing identifier column", sheet, path)
	}
	tb, err := newTableBuilder(rows[0], md)
	if err != nil {
		return nil, fmt.Errorf("parsing sheet %s of workbook %s: %v", sheet, path, err)
	}
	for i, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		err = tb.addRow(row)
		if err != nil {
			return nil, fmt.Errorf("parsing row %d of sheet %s of workbook %s: %v", i+2, sheet, path, err)
		}
	}
	return tb.database()
}

/*
WriteXLSXDatabase takes a path, a sheet name, a database and the name of the
identifier column and saves a workbook at path with the database written on
the given sheet in the layout ReadXLSXDatabase reads. An empty sheet name
defaults to "transactions".
*/
func WriteXLSXDatabase(path, sheet string, db *apriori.Database, identifier string) error {
	if sheet == "" {
		sheet = "transactions"
	}
	f := excelize.NewFile()
	defer f.Close()
	err := f.SetSheetName(f.GetSheetName(0), sheet)
	if err != nil {
		return fmt.Errorf("naming sheet %s: %v", sheet, err)
	}
	header, rows := tableRows(db, identifier)
	for i, row := range append([][]string{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		err = f.SetSheetRow(sheet, cell, &values)
		if err != nil {
			return fmt.Errorf("writing row %d: %v", i+1, err)
		}
	}
	err = f.SaveAs(path)
	if err != nil {
		return fmt.Errorf("saving workbook %s: %v", path, err)
	}
	return nil
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
