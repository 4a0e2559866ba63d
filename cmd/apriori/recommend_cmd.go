package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/apriori/pkg/apriori"
	"github.com/pbanos/apriori/pkg/bio"
	"github.com/pbanos/apriori/pkg/bio/redisstore"
	"github.com/spf13/cobra"
	"gopkg.in/redis.v5"
)

type recommendCmdConfig struct {
	*rootCmdConfig
	rulesInput  string
	redisAddr   string
	redisDB     int
	redisPrefix string
}

func recommendCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &recommendCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "recommend [ITEM...]",
		Short: "Recommend items for a basket",
		Long:  `Use the rules from a mining run to recommend the items that usually go along those on a basket. Items are taken from the arguments or, if none is given, from STDIN one per line or separated by commas`,
		Run: func(cmd *cobra.Command, args []string) {
			exitOn(os.Stderr, config.run(context.Background(), args, os.Stdin, os.Stdout))
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.rulesInput), "rules", "r", "", "path to a JSON result of the mine command to read the rules from")
	cmd.PersistentFlags().StringVar(&(config.redisAddr), "redis", "", "address of a redis server to read a published result from")
	cmd.PersistentFlags().IntVar(&(config.redisDB), "redis-db", 0, "redis database to read the published result from")
	cmd.PersistentFlags().StringVar(&(config.redisPrefix), "redis-prefix", "apriori", "prefix for the redis keys of the published result")
	return cmd
}

func (rcc *recommendCmdConfig) Validate() error {
	if rcc.rulesInput == "" && rcc.redisAddr == "" {
		return fmt.Errorf("one of the rules or redis flags must be set")
	}
	if rcc.rulesInput != "" && rcc.redisAddr != "" {
		return fmt.Errorf("cannot set both rules and redis flags at the same time")
	}
	return nil
}

func (rcc *recommendCmdConfig) run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	err := rcc.Validate()
	if err != nil {
		return failAt(exitValidation, err)
	}
	rules, err := rcc.rules(ctx)
	if err != nil {
		return failAt(exitInput, err)
	}
	var basket apriori.Itemset
	if len(args) > 0 {
		items := make([]apriori.Item, len(args))
		for i, a := range args {
			items[i] = apriori.Item(a)
		}
		basket = apriori.NewItemset(items...)
	} else {
		rcc.Logf("Reading basket from STDIN...")
		basket, err = bio.ReadBasket(stdin)
		if err != nil {
			return failAt(exitInput, err)
		}
	}
	rcc.Logf("Recommending for basket %v with %d rules...", basket, len(rules))
	for _, r := range apriori.Recommend(rules, basket) {
		_, err = fmt.Fprintf(stdout, "%s (Conf: %s, Supp: %s, because of %v)\n", r.Consequent, apriori.FormatPercent(r.Confidence), apriori.FormatPercent(r.Support), r.Antecedent)
		if err != nil {
			return failAt(exitOutput, err)
		}
	}
	return nil
}

func (rcc *recommendCmdConfig) rules(ctx context.Context) ([]apriori.Rule, error) {
	if rcc.rulesInput != "" {
		rcc.Logf("Reading rules from %s...", rcc.rulesInput)
		return bio.ReadJSONRulesFromFile(rcc.rulesInput)
	}
	rcc.Logf("Reading rules from redis at %s under %s...", rcc.redisAddr, rcc.redisPrefix)
	rc := redis.NewClient(&redis.Options{Addr: rcc.redisAddr, DB: rcc.redisDB})
	defer rc.Close()
	doc, err := redisstore.New(rc, rcc.redisPrefix).Get(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("no result published on redis under %s", rcc.redisPrefix)
	}
	return doc.Rules, nil
}
