package bio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/apriori/pkg/apriori"
)

/*
WriteReport takes an io.Writer, a mining result, the rules derived from it
and the confidence threshold applied and writes a text report with two
sections onto the writer: the supported itemsets with their support, level
after level in the order they were found, and the rules with their
confidence and the support of their itemset.

The same result and rules always produce the same report.
*/
func WriteReport(w io.Writer, result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "==Frequent itemsets (min_sup=%s)==\n\n", result.Support.Percent())
	for _, is := range result.Supported() {
		support, _ := result.SupportRatio(is)
		fmt.Fprintf(bw, "%s, %s\n", is, apriori.FormatPercent(support))
	}
	fmt.Fprint(bw, "\n\n\n")
	fmt.Fprintf(bw, "==High-confidence association rules (min_conf=%s)==\n\n", confidence.Percent())
	for _, r := range rules {
		fmt.Fprintf(bw, "%s => [%s] (Conf: %s, Supp: %s)\n",
			r.Antecedent, r.Consequent, apriori.FormatPercent(r.Confidence), apriori.FormatPercent(r.Support))
	}
	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("writing report: %v", err)
	}
	return nil
}

/*
WriteReportToFile takes a filepath string and the arguments for
WriteReport, creates the file and writes the report on it.
*/
func WriteReportToFile(filepath string, result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	err = WriteReport(f, result, rules, confidence)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	return err
}

/*
ReadBasket takes an io.Reader and returns the itemset formed by the
items read from it, one per line or separated by commas. Blank entries
are ignored.
*/
func ReadBasket(r io.Reader) (apriori.Itemset, error) {
	var items []apriori.Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), ",") {
			field = strings.TrimSpace(field)
			if field != "" {
				items = append(items, apriori.Item(field))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return apriori.Itemset{}, fmt.Errorf("reading basket: %v", err)
	}
	return apriori.NewItemset(items...), nil
}
