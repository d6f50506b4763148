// Package unionfind provides a disjoint-set (union-find) table over dense
// integer cluster ids, with path compression and union by rank.
//
// Clusters are created one at a time with NewCluster and later merged with
// Union. Every index argument is bounds-checked: Find returns -1 and Union
// reports no merge for an id that was never created, instead of panicking.
//
// Complexity: NewCluster O(1) amortized; Find and Union O(α(n)) amortized.
package unionfind
