package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/apriori/pkg/apriori"
	"github.com/pbanos/apriori/pkg/bio"
	"github.com/pbanos/apriori/pkg/bio/mongodb"
	"github.com/pbanos/apriori/pkg/bio/sql"
	"github.com/pbanos/apriori/pkg/bio/sql/pgadapter"
	"github.com/pbanos/apriori/pkg/bio/sql/sqlite3adapter"
)

/*
databaseConfig holds the flags shared by the commands that read or
write transaction databases.
*/
type databaseConfig struct {
	metadataInput string
	sheet         string
	maxDBConns    int
}

func isPostgreSQLURL(location string) bool {
	return strings.HasPrefix(location, "postgresql://") || strings.HasPrefix(location, "postgres://")
}

func isMongoDBURL(location string) bool {
	return strings.HasPrefix(location, "mongodb://")
}

func (dc *databaseConfig) metadata(l logger) (*bio.Metadata, error) {
	if dc.metadataInput == "" {
		return nil, nil
	}
	l.Logf("Reading metadata from %s...", dc.metadataInput)
	return bio.ReadYMLMetadataFromFile(dc.metadataInput)
}

/*
readDatabase takes a context, a location, the metadata for tabular
sources, a reader for STDIN and a logger, and returns the database
read from the location. The location may be a CSV (.csv), XLSX (.xlsx)
or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL. An
empty location reads CSV from stdin.
*/
func (dc *databaseConfig) readDatabase(ctx context.Context, location string, md *bio.Metadata, stdin io.Reader, l logger) (*apriori.Database, error) {
	switch {
	case location == "":
		l.Logf("Reading transactions from STDIN...")
		return bio.ReadCSVDatabase(stdin, md)
	case isPostgreSQLURL(location):
		l.Logf("Creating PostgreSQL adapter for url %s to read transactions...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sql.OpenDatabase(ctx, adapter)
	case isMongoDBURL(location):
		l.Logf("Connecting to MongoDB at %s to read transactions...", location)
		store, err := mongodb.Dial(ctx, location)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.ReadDatabase(ctx)
	case strings.HasSuffix(location, ".db"):
		l.Logf("Creating SQLite3 adapter for file %s to read transactions...", location)
		adapter, err := sqlite3adapter.New(location, dc.maxDBConns)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		return sql.OpenDatabase(ctx, adapter)
	case strings.HasSuffix(location, ".xlsx"):
		l.Logf("Opening %s to read transactions...", location)
		return bio.ReadXLSXDatabase(location, dc.sheet, md)
	}
	l.Logf("Opening %s to read transactions...", location)
	return bio.ReadCSVDatabaseFromFilePath(location, md)
}

/*
writeDatabase takes a context, a location, a database, the name of the
identifier column for tabular destinations, a writer for STDOUT and a
logger, and writes the database to the location. Locations are
interpreted as in readDatabase, with an empty one writing CSV to stdout.
*/
func (dc *databaseConfig) writeDatabase(ctx context.Context, location string, db *apriori.Database, identifier string, stdout io.Writer, l logger) error {
	switch {
	case location == "":
		l.Logf("Writing transactions to STDOUT...")
		return bio.WriteCSVDatabase(stdout, db, identifier)
	case isPostgreSQLURL(location):
		l.Logf("Creating PostgreSQL adapter for url %s to write transactions...", location)
		adapter, err := pgadapter.New(location)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return sql.WriteDatabase(ctx, adapter, db)
	case isMongoDBURL(location):
		l.Logf("Connecting to MongoDB at %s to write transactions...", location)
		store, err := mongodb.Dial(ctx, location)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.WriteDatabase(ctx, db)
	case strings.HasSuffix(location, ".db"):
		l.Logf("Creating SQLite3 adapter for file %s to write transactions...", location)
		adapter, err := sqlite3adapter.New(location, dc.maxDBConns)
		if err != nil {
			return err
		}
		defer adapter.Close()
		return sql.WriteDatabase(ctx, adapter, db)
	case strings.HasSuffix(location, ".xlsx"):
		l.Logf("Writing transactions to %s...", location)
		return bio.WriteXLSXDatabase(location, dc.sheet, db, identifier)
	}
	l.Logf("Creating %s to write transactions...", location)
	f, err := os.Create(location)
	if err != nil {
		return err
	}
	err = bio.WriteCSVDatabase(f, db, identifier)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing transactions to %s: %v", location, err)
	}
	return nil
}
