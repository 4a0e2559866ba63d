package apriori

/*
Joiner is an interface wrapping the Join method, used to build
the candidates for the next level of the search.

The Join method takes the supported itemsets of size k-1 and returns
the distinct itemsets of size k obtained as the union of two of them.
Every implementation must return the same set of itemsets for the same
input; they may differ in how much work they do to obtain it.
*/
type Joiner interface {
	Join(level []Itemset) []Itemset
}

/*
JoinerFunc wraps a function with the Join method signature to implement
the Joiner interface
*/
type JoinerFunc func(level []Itemset) []Itemset

/*
Join takes a level of itemsets and invokes the JoinerFunc with it
to return its result.
*/
func (jf JoinerFunc) Join(level []Itemset) []Itemset {
	return jf(level)
}

/*
PairwiseJoiner returns a Joiner that unites every ordered pair of
itemsets of the level, each with itself included, and keeps the
unions with exactly one item more than the level's itemsets that
were not produced before. Its cost is quadratic on the level size.
*/
func PairwiseJoiner() Joiner {
	return JoinerFunc(func(level []Itemset) []Itemset {
		var result []Itemset
		produced := make(map[Itemset]bool)
		for _, a := range level {
			for _, b := range level {
				u := a.Union(b)
				if u.Len() == a.Len()+1 && !produced[u] {
					produced[u] = true
					result = append(result, u)
				}
			}
		}
		return result
	})
}

/*
PrefixJoiner returns a Joiner that only unites pairs of itemsets
sharing all their items but the last one under the ascending item
order, as described by Agrawal and Srikant. Every union of two
itemsets of the level with one more item that can survive pruning
is produced by exactly one such pair.
*/
func PrefixJoiner() Joiner {
	return JoinerFunc(func(level []Itemset) []Itemset {
		sorted := append([]Itemset{}, level...)
		SortItemsets(sorted)
		items := make([][]Item, len(sorted))
		for i, is := range sorted {
			items[i] = is.Items()
		}
		var result []Itemset
		for i := range sorted {
			for j := i + 1; j < len(sorted); j++ {
				if !samePrefix(items[i], items[j]) {
					break
				}
				result = append(result, sorted[i].Union(sorted[j]))
			}
		}
		return result
	})
}

// samePrefix returns whether two equally sized item slices only differ on their last item
func samePrefix(a, b []Item) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return a[len(a)-1] != b[len(b)-1]
}

/*
GenerateCandidates takes the supported itemsets of size k-1 and a
Joiner and returns the candidate itemsets of size k: those built by
the joiner whose every subset of size k-1 is in the given level. Any
other itemset of size k cannot be supported, as all subsets of a
supported itemset are supported too.

The candidates are returned sorted with SortItemsets. A nil joiner
defaults to PrefixJoiner.
*/
func GenerateCandidates(level []Itemset, j Joiner) []Itemset {
	if len(level) == 0 {
		return nil
	}
	if j == nil {
		j = PrefixJoiner()
	}
	supported := make(map[Itemset]bool, len(level))
	for _, is := range level {
		supported[is] = true
	}
	var candidates []Itemset
	for _, c := range j.Join(level) {
		if allSubsetsSupported(c, supported) {
			candidates = append(candidates, c)
		}
	}
	SortItemsets(candidates)
	return candidates
}

func allSubsetsSupported(c Itemset, supported map[Itemset]bool) bool {
	for _, item := range c.Items() {
		if !supported[c.Without(item)] {
			return false
		}
	}
	return true
}
