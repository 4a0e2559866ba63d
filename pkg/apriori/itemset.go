package apriori

import (
	"sort"
	"strings"
)

// separator joins the items of an itemset into its key. Items containing it
// are rejected by NewDatabase.
const separator = "\x1f"

/*
Item is an opaque identifier for something that can be present
in a transaction, like a product on a basket.
*/
type Item string

/*
Itemset represents an immutable set of distinct items.

Itemsets are values: two itemsets holding the same items are equal
with == regardless of the order in which items were provided, so
they can be used as map keys.
*/
type Itemset struct {
	key  string
	size int
}

/*
NewItemset takes any number of items and returns the Itemset
containing them. Repeated items are counted once.
*/
func NewItemset(items ...Item) Itemset {
	if len(items) == 0 {
		return Itemset{}
	}
	sorted := make([]string, 0, len(items))
	for _, i := range items {
		sorted = append(sorted, string(i))
	}
	sort.Strings(sorted)
	uniq := sorted[:1]
	for _, s := range sorted[1:] {
		if s != uniq[len(uniq)-1] {
			uniq = append(uniq, s)
		}
	}
	return Itemset{strings.Join(uniq, separator), len(uniq)}
}

func itemsetFromSorted(items []Item) Itemset {
	ss := make([]string, len(items))
	for i, item := range items {
		ss[i] = string(item)
	}
	return Itemset{strings.Join(ss, separator), len(ss)}
}

/*
Items returns the items in the itemset in ascending order. The
returned slice is a copy and may be modified freely.
*/
func (is Itemset) Items() []Item {
	if is.size == 0 {
		return nil
	}
	parts := strings.Split(is.key, separator)
	items := make([]Item, len(parts))
	for i, p := range parts {
		items[i] = Item(p)
	}
	return items
}

// Len returns the number of items in the itemset
func (is Itemset) Len() int {
	return is.size
}

// Empty returns whether the itemset has no items
func (is Itemset) Empty() bool {
	return is.size == 0
}

// Contains returns whether the given item belongs to the itemset
func (is Itemset) Contains(item Item) bool {
	items := is.Items()
	i := sort.Search(len(items), func(i int) bool { return items[i] >= item })
	return i < len(items) && items[i] == item
}

/*
Union returns a new itemset with the items in both the
itemset and the given one.
*/
func (is Itemset) Union(other Itemset) Itemset {
	a, b := is.Items(), other.Items()
	merged := make([]Item, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			merged = append(merged, a[i])
			i++
		case a[i] > b[j]:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return itemsetFromSorted(merged)
}

/*
Without returns a new itemset with the items of the itemset
except the given one.
*/
func (is Itemset) Without(item Item) Itemset {
	items := is.Items()
	rest := make([]Item, 0, len(items))
	for _, i := range items {
		if i != item {
			rest = append(rest, i)
		}
	}
	return itemsetFromSorted(rest)
}

/*
SubsetOf returns whether every item in the itemset belongs
to the given one. The empty itemset is a subset of any itemset.
*/
func (is Itemset) SubsetOf(other Itemset) bool {
	if is.size > other.size {
		return false
	}
	a, b := is.Items(), other.Items()
	j := 0
	for _, item := range a {
		for j < len(b) && b[j] < item {
			j++
		}
		if j == len(b) || b[j] != item {
			return false
		}
		j++
	}
	return true
}

/*
Subsets returns every non-empty subset of the itemset, the
itemset itself included, ordered by size and then by the
position of their items in the itemset.
*/
func (is Itemset) Subsets() []Itemset {
	items := is.Items()
	var result []Itemset
	for r := 1; r <= len(items); r++ {
		combinations(items, r, func(c []Item) {
			result = append(result, itemsetFromSorted(c))
		})
	}
	return result
}

// combinations calls fn with every r-sized combination of items, keeping their order
func combinations(items []Item, r int, fn func([]Item)) {
	indices := make([]int, r)
	for i := range indices {
		indices[i] = i
	}
	c := make([]Item, r)
	for {
		for i, idx := range indices {
			c[i] = items[idx]
		}
		fn(c)
		i := r - 1
		for i >= 0 && indices[i] == i+len(items)-r {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < r; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

/*
Less returns whether the itemset sorts before the given one:
smaller itemsets first, then lexicographically by their items.
*/
func (is Itemset) Less(other Itemset) bool {
	if is.size != other.size {
		return is.size < other.size
	}
	a, b := is.Items(), other.Items()
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (is Itemset) String() string {
	return "[" + strings.Replace(is.key, separator, ", ", -1) + "]"
}

// SortItemsets sorts a slice of itemsets in place using Itemset.Less
func SortItemsets(itemsets []Itemset) {
	sort.Slice(itemsets, func(i, j int) bool { return itemsets[i].Less(itemsets[j]) })
}
