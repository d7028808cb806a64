// Package dsu provides a label-keyed disjoint-set (union-find) structure with
// iterative path compression and naive union.
//
// One DisjointSet is meant to live for a single algorithm invocation: the MST
// engines build a fresh one per call and never share it.
//
// Union does no rank or size balancing: the root of x always goes under the
// root of y. With path compression alone the amortized cost per operation is
// O(log n), not the inverse-Ackermann bound of the balanced variant. The input
// graphs this serves are modest enough for that to be acceptable.
package dsu

// DisjointSet tracks a partition of string labels into components.
// The zero value is not usable; call New.
type DisjointSet struct {
	parent map[string]string
	sets   int
}

// New creates a DisjointSet where every label is its own component.
// Repeated labels are registered once.
// Complexity: O(n).
func New(labels []string) *DisjointSet {
	d := &DisjointSet{parent: make(map[string]string, len(labels))}
	for _, l := range labels {
		d.add(l)
	}

	return d
}

// add registers label as a singleton if it is not present yet.
func (d *DisjointSet) add(label string) {
	if _, ok := d.parent[label]; ok {
		return
	}
	d.parent[label] = label
	d.sets++
}

// Find returns the root label of x's component.
// Every label on the path from x to the root is re-pointed directly at the root.
// A label never seen before is registered as a new singleton and returned.
//
// Steps:
//  1. Walk parent links until a self-parented label (the root) is reached.
//  2. Walk the same path again, setting each parent to the root.
//
// Complexity: amortized O(log n) per call with naive union.
func (d *DisjointSet) Find(x string) string {
	if _, ok := d.parent[x]; !ok {
		d.add(x)
		return x
	}

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}

	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the components of x and y by placing Find(x) under Find(y).
// It reports whether the two labels were in different components.
func (d *DisjointSet) Union(x, y string) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	d.parent[rx] = ry
	d.sets--

	return true
}

// Connected reports whether x and y share a component.
func (d *DisjointSet) Connected(x, y string) bool {
	return d.Find(x) == d.Find(y)
}

// Components returns the current number of disjoint sets.
func (d *DisjointSet) Components() int { return d.sets }

// Len returns the number of registered labels.
func (d *DisjointSet) Len() int { return len(d.parent) }
