package ud

import "strings"

// Parse converts one CoNLL-U sentence block into a Tree.
//
// Lines starting with '#' are kept verbatim as IDLines. Every other
// line must split on tab into exactly NumFields fields; a line that
// does not aborts the whole block with a MalformedRecordError.
//
// Every word line with a defined HEAD contributes a pair of edges: an
// Up edge in the adjacency list of the word's own key and a Down edge
// in the adjacency list of the head's key. The head may be "0", the
// virtual root. A HEAD of "_" (multiword token ranges) contributes no
// edges.
func Parse(block string) (*Tree, error) {
	t := &Tree{
		Nodes: make(map[string]Node),
		Graph: make(map[string][]Edge),
	}

	block = strings.TrimRight(block, "\n")
	if block == "" {
		return t, nil
	}

	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(line, "#") {
			t.IDLines = append(t.IDLines, line)
			continue
		}

		line = strings.TrimSuffix(line, "\r")
		fields := strings.Split(line, "\t")
		if len(fields) != NumFields {
			return nil, &MalformedRecordError{Line: line, Fields: len(fields)}
		}

		node, err := NewNode(fields)
		if err != nil {
			return nil, err
		}

		key := node.ID
		if _, ok := t.Nodes[key]; ok {
			t.dups = append(t.dups, key)
		}

		t.Keys = append(t.Keys, key)
		t.Nodes[key] = node

		parent := node.Head
		if parent == "_" {
			continue
		}

		t.Graph[key] = append(t.Graph[key], Edge{
			Head:      parent,
			Relation:  node.Deprel,
			Direction: Up,
		})
		t.Graph[parent] = append(t.Graph[parent], Edge{
			Head:      key,
			Relation:  node.Deprel,
			Direction: Down,
		})
	}

	return t, nil
}
