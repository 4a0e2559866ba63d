package apriori

import "encoding/json"

/*
MarshalJSON returns the JSON encoding of the itemset: an array
with its items in ascending order.
*/
func (is Itemset) MarshalJSON() ([]byte, error) {
	items := is.Items()
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

/*
UnmarshalJSON takes a JSON array of item strings and sets the
itemset to contain them.
*/
func (is *Itemset) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*is = NewItemset(items...)
	return nil
}
