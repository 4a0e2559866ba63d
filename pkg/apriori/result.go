package apriori

/*
Result holds the outcome of mining a database: the support count of
every itemset the Miner counted, the supported itemsets for each
level in the order they were found, the number of transactions
mined and the support threshold applied.
*/
type Result struct {
	Counts       map[Itemset]int
	Levels       [][]Itemset
	Transactions int
	Support      Threshold
}

func newResult(transactions int, support Threshold) *Result {
	return &Result{
		Counts:       make(map[Itemset]int),
		Transactions: transactions,
		Support:      support,
	}
}

func (r *Result) appendLevel(level []Itemset) {
	if len(level) > 0 {
		r.Levels = append(r.Levels, level)
	}
}

/*
Supported returns every supported itemset, level after level, in
the order they were found.
*/
func (r *Result) Supported() []Itemset {
	var result []Itemset
	for _, level := range r.Levels {
		result = append(result, level...)
	}
	return result
}

/*
Count returns the support count for the given itemset and whether
it was ever counted.
*/
func (r *Result) Count(is Itemset) (int, bool) {
	c, ok := r.Counts[is]
	return c, ok
}

/*
SupportRatio returns the support ratio for the given itemset and whether
it was ever counted. The ratio is 0 for a result without transactions.
*/
func (r *Result) SupportRatio(is Itemset) (float64, bool) {
	c, ok := r.Counts[is]
	if !ok || r.Transactions == 0 {
		return 0.0, ok
	}
	return float64(c) / float64(r.Transactions), true
}
