// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package bktree

import "golang.org/x/exp/slices"

// DistanceFunc is a metric over strings: symmetric, zero iff the two
// strings are equal, and satisfying the triangle inequality. Levenshtein
// edit distance is the canonical choice and the only one this package's
// callers use, but the tree itself is agnostic to the metric.
type DistanceFunc func(a, b string) int

// Tree is a BK-tree over string keys, each mapping to one or more string
// payloads (record IDs). It is built once by repeated Insert calls and is
// safe for concurrent read-only use (Lookup) once insertion has finished;
// it is not safe to Insert and Lookup concurrently.
type Tree struct {
	root     *node
	distance DistanceFunc
}

// New creates an empty tree using the given distance function.
func New(distance DistanceFunc) *Tree {
	return &Tree{distance: distance}
}

// Insert adds id under key. If key is already present, id is appended to
// that key's payload list rather than creating a new node. Insertion order
// affects the tree's shape, never its correctness.
func (t *Tree) Insert(key, id string) {
	if t.root == nil {
		t.root = newNode(key, id)
		return
	}
	t.root.insert(t.distance, key, id)
}

// Len reports the number of distinct keys stored in the tree.
func (t *Tree) Len() int {
	if t.root == nil {
		return 0
	}
	n := 0
	var walk func(*node)
	walk = func(nd *node) {
		n++
		for _, c := range nd.children {
			walk(c)
		}
	}
	walk(t.root)
	return n
}

// Match is one neighbor returned by Lookup.
type Match struct {
	ID       string
	Key      string
	Distance int
}

// Lookup returns every payload whose key is within distance tolerance of
// query under the tree's DistanceFunc, ascending by distance (ties broken by key, then by
// ID, for determinism). At each visited node with key k it computes
// d = distance(query, k); if d <= tolerance the node's payloads are
// emitted, and only children whose edge label falls in [d-tolerance,
// d+tolerance] are visited, which the triangle inequality guarantees is
// safe to prune.
func (t *Tree) Lookup(query string, tolerance int) []Match {
	if t.root == nil {
		return nil
	}
	var out []Match
	var walk func(*node)
	walk = func(nd *node) {
		d := t.distance(query, nd.key)
		if d <= tolerance {
			for _, id := range nd.ids {
				out = append(out, Match{ID: id, Key: nd.key, Distance: d})
			}
		}
		lo, hi := d-tolerance, d+tolerance
		for edge, child := range nd.children {
			if edge >= lo && edge <= hi {
				walk(child)
			}
		}
	}
	walk(t.root)

	slices.SortFunc(out, func(a, b Match) bool {
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.ID < b.ID
	})
	return out
}

// LookupExact is Lookup with tolerance 0: it returns only exact-match
// payloads (the round-trip law this index must satisfy against the key
// set's own exact-match lookup).
func (t *Tree) LookupExact(query string) []Match {
	return t.Lookup(query, 0)
}
