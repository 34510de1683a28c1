package ud

import "strings"

// Root is the key of the virtual root. It has no Node of its own; its
// single Down edge points to the real root of the sentence.
const Root = "0"

// Tree is the dependency graph of one CoNLL-U sentence block.
//
// Keys preserves the order in which word lines appeared in the source
// block and defines the serialization order. Graph holds, for every
// key that takes part in at least one relation, the edges incident to
// it; the virtual root is indexed with "0".
//
// A Tree is immutable after Parse. Multiple trees share nothing and
// can be read concurrently without coordination.
type Tree struct {

	// IDLines are the comment lines at the beginning of the record,
	// kept verbatim. They conventionally carry sent_id and text
	// metadata but are opaque here.
	IDLines []string

	// Keys is the canonical order of node keys.
	Keys []string

	// Nodes indexes the word lines by their ID field.
	Nodes map[string]Node

	// Graph indexes the edge lists by key.
	Graph map[string][]Edge

	dups []string
}

// String renders the tree back to its CoNLL-U block: the comment lines
// followed by the word lines in Keys order, newline-joined. For a
// block whose fields contain no tab or newline this reproduces the
// source byte for byte.
func (t *Tree) String() string {
	lines := make([]string, 0, len(t.IDLines)+len(t.Keys))
	lines = append(lines, t.IDLines...)
	for _, key := range t.Keys {
		lines = append(lines, t.Nodes[key].String())
	}

	return strings.Join(lines, "\n")
}

// Sentence returns the lowercased word forms joined by single spaces,
// in Keys order. Multiword token ranges and empty nodes are not
// filtered out, so their text appears once per carrying row.
func (t *Tree) Sentence() string {
	forms := make([]string, 0, len(t.Keys))
	for _, key := range t.Keys {
		forms = append(forms, strings.ToLower(t.Nodes[key].Form))
	}

	return strings.Join(forms, " ")
}

// Node returns the node stored under key.
func (t *Tree) Node(key string) (Node, error) {
	n, ok := t.Nodes[key]
	if !ok {
		return Node{}, &UndefinedNodeError{Key: key}
	}

	return n, nil
}

// Children returns the keys of the dependents of key, in the order
// their edges were recorded during parsing. A key absent from the
// graph has no children; that is not an error.
func (t *Tree) Children(key string) []string {
	var children []string
	for _, e := range t.Graph[key] {
		if e.Direction == Down {
			children = append(children, e.Head)
		}
	}

	return children
}

// RealRoot returns the child of the virtual root. A well-formed tree
// has exactly one.
func (t *Tree) RealRoot() (string, error) {
	children := t.Children(Root)
	if len(children) == 0 {
		return "", &MissingRootError{}
	}

	return children[0], nil
}

// DuplicateKeys returns the IDs that occurred more than once in the
// source block, one entry per repetition. The last line wins in Nodes
// and String repeats it once per occurrence in Keys, mirroring the
// duplicate-tolerant behavior of the format's common tooling. Callers
// that care should treat a non-empty result as a diagnostic.
func (t *Tree) DuplicateKeys() []string {
	return t.dups
}
