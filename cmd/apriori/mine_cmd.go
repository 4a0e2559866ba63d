package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/apriori/pkg/apriori"
	"github.com/pbanos/apriori/pkg/bio"
	"github.com/pbanos/apriori/pkg/bio/redisstore"
	"github.com/spf13/cobra"
	"gopkg.in/redis.v5"
)

type mineCmdConfig struct {
	*rootCmdConfig
	databaseConfig
	dataInput   string
	output      string
	format      string
	support     string
	confidence  string
	joinFlag    string
	maxSize     int
	redisAddr   string
	redisDB     int
	redisPrefix string
}

func mineCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &mineCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "mine [FILE SUPPORT CONFIDENCE]",
		Short: "Mine frequent itemsets and association rules from a set of transactions",
		Long:  `Mine the itemsets whose support reaches a threshold from a set of transactions, and derive the association rules among them whose confidence reaches another`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.takeArgs(args)
			if err == nil {
				err = config.run(context.Background(), os.Stdin, os.Stdout, os.Stderr)
			}
			exitOn(os.Stderr, err)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv), XLSX (.xlsx) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the transactions to mine (defaults to STDIN, interpreted as CSV)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the identifier column, items and default thresholds for the input")
	cmd.PersistentFlags().StringVar(&(config.sheet), "sheet", "", "name of the sheet to read from XLSX input (defaults to the first one)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the result will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "text", "format of the result: text or json")
	cmd.PersistentFlags().StringVarP(&(config.support), "support", "s", "", "minimum support ratio for an itemset to be frequent, as 0.6, 3/5 or 60% (required unless set on metadata)")
	cmd.PersistentFlags().StringVarP(&(config.confidence), "confidence", "c", "", "minimum confidence ratio for a rule to be reported, as 0.8, 4/5 or 80% (required unless set on metadata)")
	cmd.PersistentFlags().StringVar(&(config.joinFlag), "join", "prefix", "strategy to join itemsets into candidates: prefix or pairwise")
	cmd.PersistentFlags().IntVar(&(config.maxSize), "max-size", 0, "maximum size of the mined itemsets (defaults to 0: no limit)")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server to publish the result on")
	cmd.PersistentFlags().IntVar(&(config.redisDB), "redis-db", 0, "redis database to publish the result on")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "apriori", "prefix for the redis keys of the published result")
	return cmd
}

// takeArgs fills the input and thresholds from the positional form FILE SUPPORT CONFIDENCE
func (mcc *mineCmdConfig) takeArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 3:
		if mcc.dataInput != "" || mcc.support != "" || mcc.confidence != "" {
			return failAtf(exitValidation, "cannot use positional arguments along the input, support or confidence flags")
		}
		mcc.dataInput, mcc.support, mcc.confidence = args[0], args[1], args[2]
		return nil
	}
	return failAtf(exitValidation, "expected no arguments or FILE SUPPORT CONFIDENCE, got %d arguments", len(args))
}

func (mcc *mineCmdConfig) Validate() error {
	if mcc.format != "text" && mcc.format != "json" {
		return fmt.Errorf("unknown format %s, valid ones are text and json", mcc.format)
	}
	if _, err := joiner(mcc.joinFlag); err != nil {
		return err
	}
	if mcc.maxSize < 0 {
		return fmt.Errorf("max-size cannot be negative")
	}
	if mcc.redisAddr != "" && mcc.redisPrefix == "" {
		return fmt.Errorf("redis-prefix cannot be empty when publishing to redis")
	}
	return nil
}

/*
thresholds takes the metadata and a writer for warnings and returns the
support and confidence thresholds to apply. Flags take precedence over
metadata.
*/
func (mcc *mineCmdConfig) thresholds(md *bio.Metadata, warnings io.Writer) (apriori.Threshold, apriori.Threshold, error) {
	support, confidence := mcc.support, mcc.confidence
	if md != nil {
		if support == "" {
			support = md.Support
		}
		if confidence == "" {
			confidence = md.Confidence
		}
	}
	if support == "" {
		return apriori.Threshold{}, apriori.Threshold{}, fmt.Errorf("required support flag was not set")
	}
	if confidence == "" {
		return apriori.Threshold{}, apriori.Threshold{}, fmt.Errorf("required confidence flag was not set")
	}
	st, err := apriori.ParseThreshold(support)
	if err != nil {
		return apriori.Threshold{}, apriori.Threshold{}, fmt.Errorf("parsing support: %v", err)
	}
	ct, err := apriori.ParseThreshold(confidence)
	if err != nil {
		return apriori.Threshold{}, apriori.Threshold{}, fmt.Errorf("parsing confidence: %v", err)
	}
	if st.OutOfRange() {
		warnf(warnings, "support %v is out of the [0, 1] range", st)
	}
	if ct.OutOfRange() {
		warnf(warnings, "confidence %v is out of the [0, 1] range", ct)
	}
	return st, ct, nil
}

func (mcc *mineCmdConfig) run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	err := mcc.Validate()
	if err != nil {
		return failAt(exitValidation, err)
	}
	md, err := mcc.metadata(mcc.logger)
	if err != nil {
		return failAt(exitMetadata, err)
	}
	support, confidence, err := mcc.thresholds(md, stderr)
	if err != nil {
		return failAt(exitValidation, err)
	}
	j, _ := joiner(mcc.joinFlag)
	db, err := mcc.readDatabase(ctx, mcc.dataInput, md, stdin, mcc.logger)
	if err != nil {
		return failAtf(exitInput, "reading transactions: %v", err)
	}
	mcc.Logf("Mining %v with support %v...", db, support)
	result, err := apriori.New(support, j, mcc.maxSize, mcc.logger).Mine(ctx, db)
	if err != nil {
		return failAtf(exitMining, "mining frequent itemsets: %v", err)
	}
	mcc.Logf("Deriving rules with confidence %v...", confidence)
	rules, err := apriori.DeriveRules(result, confidence)
	if err != nil {
		return failAtf(exitRules, "deriving rules: %v", err)
	}
	mcc.Logf("Found %d frequent itemsets and %d rules", len(result.Supported()), len(rules))
	err = mcc.writeResult(stdout, result, rules, confidence)
	if err != nil {
		return failAtf(exitOutput, "writing result: %v", err)
	}
	if mcc.redisAddr != "" {
		err = mcc.publish(ctx, result, rules, confidence)
		if err != nil {
			return failAtf(exitRedis, "publishing result: %v", err)
		}
	}
	mcc.Logf("Done")
	return nil
}

func (mcc *mineCmdConfig) writeResult(stdout io.Writer, result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) error {
	write := bio.WriteReport
	if mcc.format == "json" {
		write = bio.WriteJSONResult
	}
	if mcc.output == "" {
		return write(stdout, result, rules, confidence)
	}
	mcc.Logf("Creating %s to write result...", mcc.output)
	f, err := os.Create(mcc.output)
	if err != nil {
		return err
	}
	err = write(f, result, rules, confidence)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return err
}

func (mcc *mineCmdConfig) publish(ctx context.Context, result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) error {
	mcc.Logf("Publishing result on redis at %s under %s...", mcc.redisAddr, mcc.redisPrefix)
	rc := redis.NewClient(&redis.Options{Addr: mcc.redisAddr, DB: mcc.redisDB})
	defer rc.Close()
	return redisstore.New(rc, mcc.redisPrefix).Store(ctx, result, rules, confidence)
}

func joiner(j string) (apriori.Joiner, error) {
	switch strings.ToLower(j) {
	case "prefix", "":
		return apriori.PrefixJoiner(), nil
	case "pairwise":
		return apriori.PairwiseJoiner(), nil
	}
	return nil, fmt.Errorf("unknown join strategy %s, valid ones are prefix and pairwise", j)
}
