package ud

import "strings"

// NumFields is the number of tab-separated fields in a CoNLL-U word line.
const NumFields = 10

// Node stores all fields of a single CoNLL-U word line under their
// canonical names according to the format
// (https://universaldependencies.org/format.html).
type Node struct {

	// Word index, an integer starting at 1 for each new sentence. May
	// be a range for multiword tokens or a decimal number for empty
	// nodes. Kept as text, never parsed as an integer.
	ID string

	// Word form or punctuation symbol.
	Form string

	// Lemma or stem of the word form.
	Lemma string

	// Universal part-of-speech tag.
	Upos string

	// Language-specific part-of-speech tag, underscore if not available.
	Xpos string

	// Pipe-separated morphological features, underscore if not available.
	Feats string

	// Head of the current word: a value of ID, zero (0) for the root,
	// or underscore when no head applies (multiword token ranges).
	Head string

	// Universal dependency relation to Head (root iff Head is 0).
	Deprel string

	// Enhanced dependency graph, kept as the raw field value.
	Deps string

	// Any other annotation.
	Misc string
}

// NewNode builds a Node from the tab-split fields of a word line, in
// canonical order. No field is validated against a vocabulary.
func NewNode(fields []string) (Node, error) {
	if len(fields) != NumFields {
		return Node{}, &MalformedRecordError{Line: strings.Join(fields, "\t"), Fields: len(fields)}
	}

	return Node{
		ID:     fields[0],
		Form:   fields[1],
		Lemma:  fields[2],
		Upos:   fields[3],
		Xpos:   fields[4],
		Feats:  fields[5],
		Head:   fields[6],
		Deprel: fields[7],
		Deps:   fields[8],
		Misc:   fields[9],
	}, nil
}

// String renders the node as its original tab-separated line.
func (n Node) String() string {
	return strings.Join([]string{
		n.ID,
		n.Form,
		n.Lemma,
		n.Upos,
		n.Xpos,
		n.Feats,
		n.Head,
		n.Deprel,
		n.Deps,
		n.Misc,
	}, "\t")
}
