package bio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/apriori/pkg/apriori"
)

/*
ResultDocument is the JSON representation of a mining run: the
supported itemsets with their counts, level after level, and the
rules derived from them.
*/
type ResultDocument struct {
	Transactions int               `json:"transactions"`
	Support      string            `json:"support"`
	Confidence   string            `json:"confidence"`
	Itemsets     []ItemsetDocument `json:"itemsets"`
	Rules        []apriori.Rule    `json:"rules"`
}

// ItemsetDocument is the JSON representation of a supported itemset
type ItemsetDocument struct {
	Items   apriori.Itemset `json:"items"`
	Count   int             `json:"count"`
	Support float64         `json:"support"`
}

/*
NewResultDocument takes a mining result, the rules derived from it and
the confidence threshold applied and returns its ResultDocument.
*/
func NewResultDocument(result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) *ResultDocument {
	doc := &ResultDocument{
		Transactions: result.Transactions,
		Support:      result.Support.String(),
		Confidence:   confidence.String(),
		Itemsets:     []ItemsetDocument{},
		Rules:        rules,
	}
	if doc.Rules == nil {
		doc.Rules = []apriori.Rule{}
	}
	for _, is := range result.Supported() {
		count, _ := result.Count(is)
		support, _ := result.SupportRatio(is)
		doc.Itemsets = append(doc.Itemsets, ItemsetDocument{is, count, support})
	}
	return doc
}

/*
WriteJSONResult takes an io.Writer, a mining result, the rules derived
from it and the confidence threshold applied and prints a JSON
representation of them onto the writer. It returns an error if
serialization or printing fails, nil otherwise.
*/
func WriteJSONResult(w io.Writer, result *apriori.Result, rules []apriori.Rule, confidence apriori.Threshold) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(NewResultDocument(result, rules, confidence))
	if err != nil {
		return fmt.Errorf("serializing result as JSON: %v", err)
	}
	return nil
}

/*
ReadJSONResult takes an io.Reader and attempts to JSON-decode a
ResultDocument from it. It returns the read document or an error.
*/
func ReadJSONResult(r io.Reader) (*ResultDocument, error) {
	decoder := json.NewDecoder(r)
	doc := &ResultDocument{}
	err := decoder.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding json result: %v", err)
	}
	return doc, nil
}

/*
ReadJSONRulesFromFile takes a filepath string, opens the file and uses
ReadJSONResult to return the rules on the result document read from it
or an error.
*/
func ReadJSONRulesFromFile(filepath string) ([]apriori.Rule, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading rules in JSON from %s: %v", filepath, err)
	}
	defer f.Close()
	doc, err := ReadJSONResult(f)
	if err != nil {
		return nil, fmt.Errorf("parsing rules in JSON from %s: %v", filepath, err)
	}
	return doc.Rules, nil
}
