package pgadapter

import (
	"context"
	"os"
	"testing"

	"github.com/pbanos/apriori/pkg/apriori"
	biosql "github.com/pbanos/apriori/pkg/bio/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$1", placeholder(1))
	assert.Equal(t, "$12", placeholder(12))
}

// TestWriteAndOpenDatabase needs an empty PostgreSQL database at APRIORI_PG_URL
func TestWriteAndOpenDatabase(t *testing.T) {
	url := os.Getenv("APRIORI_PG_URL")
	if url == "" {
		t.Skip("APRIORI_PG_URL not set")
	}
	ctx := context.Background()
	db, err := apriori.NewDatabase(
		[]apriori.Item{"bread", "milk"},
		[]apriori.Transaction{
			{ID: "T1", Items: apriori.NewItemset("bread", "milk")},
			{ID: "T2", Items: apriori.NewItemset("milk")},
		},
	)
	require.NoError(t, err)
	adapter, err := New(url)
	require.NoError(t, err)
	defer adapter.Close()
	require.NoError(t, biosql.WriteDatabase(ctx, adapter, db))

	read, err := biosql.OpenDatabase(ctx, adapter)
	require.NoError(t, err)
	assert.Equal(t, db.Universe(), read.Universe())
	assert.Equal(t, db.Transactions(), read.Transactions())
}
