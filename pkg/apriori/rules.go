package apriori

import (
	"fmt"
	"sort"
)

/*
Rule represents an association rule: transactions containing the
items of the antecedent tend to contain the consequent too.

Confidence is the ratio of transactions containing the antecedent
that also contain the consequent. Support is the ratio of all
transactions containing both.
*/
type Rule struct {
	Antecedent Itemset `json:"antecedent"`
	Consequent Item    `json:"consequent"`
	Confidence float64 `json:"confidence"`
	Support    float64 `json:"support"`
}

// Itemset returns the union of the antecedent and the consequent
func (r Rule) Itemset() Itemset {
	return r.Antecedent.Union(NewItemset(r.Consequent))
}

func (r Rule) String() string {
	return fmt.Sprintf("%v => [%s]", r.Antecedent, r.Consequent)
}

type ruleKey struct {
	antecedent Itemset
	consequent Item
}

/*
ConsistencyError is returned when deriving rules needs the support
count of an itemset that was not counted while mining, or that is
zero even though the itemset is a subset of a supported one. It
signals a bug in how the Result was built.
*/
type ConsistencyError struct {
	Itemset Itemset
	Reason  string
}

func (ce *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent support count for %v: %s", ce.Itemset, ce.Reason)
}

/*
DeriveRules takes a mining Result and a confidence threshold and
returns every rule whose confidence reaches the threshold.

For each supported itemset with at least two items and each of its
items taken as consequent, every non-empty subset of the remaining
items is taken as antecedent. The confidence of each rule is the
support count of the antecedent plus the consequent divided by the
support count of the antecedent, both read from the Result. Each
rule is evaluated once, and rules are returned in the order they are
first found.

If a needed support count is missing or zero, a *ConsistencyError
is returned.
*/
func DeriveRules(r *Result, confidence Threshold) ([]Rule, error) {
	var rules []Rule
	evaluated := make(map[ruleKey]bool)
	for _, s := range r.Supported() {
		if s.Len() < 2 {
			continue
		}
		for _, c := range s.Items() {
			for _, a := range s.Without(c).Subsets() {
				key := ruleKey{a, c}
				if evaluated[key] {
					continue
				}
				evaluated[key] = true
				rule, ok, err := r.evaluateRule(a, c, confidence)
				if err != nil {
					return nil, err
				}
				if ok {
					rules = append(rules, rule)
				}
			}
		}
	}
	return rules, nil
}

func (r *Result) evaluateRule(a Itemset, c Item, confidence Threshold) (Rule, bool, error) {
	ac := a.Union(NewItemset(c))
	unionCount, ok := r.Counts[ac]
	if !ok {
		return Rule{}, false, &ConsistencyError{ac, "never counted"}
	}
	antecedentCount, ok := r.Counts[a]
	if !ok {
		return Rule{}, false, &ConsistencyError{a, "never counted"}
	}
	if antecedentCount == 0 {
		return Rule{}, false, &ConsistencyError{a, "zero support count for a subset of a supported itemset"}
	}
	if !confidence.Met(unionCount, antecedentCount) {
		return Rule{}, false, nil
	}
	return Rule{
		Antecedent: a,
		Consequent: c,
		Confidence: float64(unionCount) / float64(antecedentCount),
		Support:    float64(unionCount) / float64(r.Transactions),
	}, true, nil
}

/*
Recommend takes a slice of rules and a basket itemset and returns
the rules whose antecedent is contained on the basket and whose
consequent is not, sorted by descending confidence, then by
descending support. For each consequent only the best rule is kept.
*/
func Recommend(rules []Rule, basket Itemset) []Rule {
	best := make(map[Item]Rule)
	var order []Item
	for _, r := range rules {
		if basket.Contains(r.Consequent) || !r.Antecedent.SubsetOf(basket) {
			continue
		}
		current, ok := best[r.Consequent]
		if !ok {
			order = append(order, r.Consequent)
			best[r.Consequent] = r
			continue
		}
		if r.Confidence > current.Confidence || (r.Confidence == current.Confidence && r.Support > current.Support) {
			best[r.Consequent] = r
		}
	}
	result := make([]Rule, 0, len(order))
	for _, c := range order {
		result = append(result, best[c])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Confidence != result[j].Confidence {
			return result[i].Confidence > result[j].Confidence
		}
		if result[i].Support != result[j].Support {
			return result[i].Support > result[j].Support
		}
		return result[i].Consequent < result[j].Consequent
	})
	return result
}
