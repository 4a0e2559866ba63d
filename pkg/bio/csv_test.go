package bio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/apriori/pkg/apriori"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basketCSV = `Candid,bread,milk,diaper,beer,eggs,cola
T1,1,1,,,,
T2,1,0,1,1,1,0
T3,,1,1,1,,1
T4,1.0,1,1,1,0.0,
T5,1,1,1,?,NaN,1
`

func TestReadCSVDatabase(t *testing.T) {
	db, err := ReadCSVDatabase(strings.NewReader(basketCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, []apriori.Item{"bread", "milk", "diaper", "beer", "eggs", "cola"}, db.Universe())
	assert.Equal(t, []apriori.Transaction{
		{ID: "T1", Items: apriori.NewItemset("bread", "milk")},
		{ID: "T2", Items: apriori.NewItemset("bread", "diaper", "beer", "eggs")},
		{ID: "T3", Items: apriori.NewItemset("milk", "diaper", "beer", "cola")},
		{ID: "T4", Items: apriori.NewItemset("bread", "milk", "diaper", "beer")},
		{ID: "T5", Items: apriori.NewItemset("bread", "milk", "diaper", "cola")},
	}, db.Transactions())
}

func TestReadCSVDatabaseWithMetadata(t *testing.T) {
	md := &Metadata{Identifier: "Candid", Items: []string{"beer", "diaper"}}
	csv := "bread,Candid,diaper,beer\n1,T1,1,0\n0,T2,1,1\n"
	db, err := ReadCSVDatabase(strings.NewReader(csv), md)
	require.NoError(t, err)
	assert.Equal(t, []apriori.Item{"beer", "diaper"}, db.Universe())
	assert.Equal(t, []apriori.Transaction{
		{ID: "T1", Items: apriori.NewItemset("diaper")},
		{ID: "T2", Items: apriori.NewItemset("beer", "diaper")},
	}, db.Transactions())
}

func TestReadCSVDatabaseErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		md   *Metadata
	}{
		{"empty input", "", nil},
		{"repeated transaction", "id,a\n1,1\n1,0\n", nil},
		{"missing identifier", "id,a\n,1\n", nil},
		{"repeated column", "id,a,a\n1,1,1\n", nil},
		{"unnamed item column", "id,,a\n1,1,1\n", nil},
		{"unknown identifier column", "id,a\n1,1\n", &Metadata{Identifier: "tid"}},
		{"unknown item column", "id,a\n1,1\n", &Metadata{Items: []string{"b"}}},
		{"identifier as item", "id,a\n1,1\n", &Metadata{Items: []string{"id"}}},
		{"malformed csv", "id,a\n1,\"1\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSVDatabase(strings.NewReader(tt.csv), tt.md)
			assert.Error(t, err)
		})
	}
}

func TestReadCSVDatabaseWithoutTransactions(t *testing.T) {
	db, err := ReadCSVDatabase(strings.NewReader("id,a,b\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, db.Count())
	assert.Len(t, db.Universe(), 2)
}

func TestReadCSVDatabaseFromFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basket.csv")
	require.NoError(t, os.WriteFile(path, []byte(basketCSV), 0644))
	db, err := ReadCSVDatabaseFromFilePath(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, db.Count())

	_, err = ReadCSVDatabaseFromFilePath(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.Error(t, err)
}

func TestWriteCSVDatabaseRoundTrip(t *testing.T) {
	db, err := ReadCSVDatabase(strings.NewReader(basketCSV), nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteCSVDatabase(&buf, db, "Candid"))
	assert.True(t, strings.HasPrefix(buf.String(), "Candid,bread,milk,diaper,beer,eggs,cola\nT1,1,1,0,0,0,0\n"))

	read, err := ReadCSVDatabase(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, db.Universe(), read.Universe())
	assert.Equal(t, db.Transactions(), read.Transactions())
}

func TestPresent(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"  ":    false,
		"?":     false,
		"0":     false,
		"0.0":   false,
		"-0":    false,
		"NaN":   false,
		"false": false,
		"1":     true,
		" 1 ":   true,
		"2.5":   true,
		"true":  true,
		"bread": true,
	}
	for cell, expected := range tests {
		t.Run(cell, func(t *testing.T) {
			assert.Equal(t, expected, Present(cell))
		})
	}
}
