package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type setCmdConfig struct {
	*rootCmdConfig
	databaseConfig
	setInput  string
	setOutput string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of transactions",
		Long:  `Copy a set of transactions from one storage to another, for instance to load a CSV file into a SQLite3 or PostgreSQL DB`,
		Run: func(cmd *cobra.Command, args []string) {
			exitOn(os.Stderr, config.run(context.Background(), os.Stdin, os.Stdout))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.setInput), "input", "i", "", "path to an input CSV (.csv), XLSX (.xlsx) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the transactions to read (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the identifier column and items for the input")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a CSV (.csv), XLSX (.xlsx) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the transactions (defaults to STDOUT in CSV)")
	cmd.PersistentFlags().StringVar(&(config.sheet), "sheet", "", "name of the XLSX sheet to read from or write to")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (scc *setCmdConfig) run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	md, err := scc.metadata(scc.logger)
	if err != nil {
		return failAt(exitMetadata, err)
	}
	db, err := scc.readDatabase(ctx, scc.setInput, md, stdin, scc.logger)
	if err != nil {
		return failAtf(exitInput, "reading transactions: %v", err)
	}
	var identifier string
	if md != nil {
		identifier = md.Identifier
	}
	scc.Logf("Copying %v...", db)
	err = scc.writeDatabase(ctx, scc.setOutput, db, identifier, stdout, scc.logger)
	if err != nil {
		return failAtf(exitOutput, "writing transactions: %v", err)
	}
	scc.Logf("Done")
	return nil
}
