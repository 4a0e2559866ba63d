package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apriori",
		Short: "apriori is a tool to mine frequent itemsets and association rules",
		Long:  `A tool to find the itemsets that appear together often on a set of transactions, derive association rules from them, and use those to make recommendations`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP((*bool)(&(config.logger)), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), mineCmd(config), setCmd(config), recommendCmd(config))
	return rootCmd
}
