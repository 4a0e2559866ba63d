/*
Package apriori mines frequent itemsets from a database of transactions
and derives association rules from them.

Mining is a level-wise search: supported itemsets of size k-1 are joined
into candidates of size k, candidates with an unsupported subset are
pruned, and the rest are counted against the database. Rules are then
derived from the support counts gathered during the search.
*/
package apriori
