package storage

import (
	"strings"

	"github.com/revelaction/treebank/ud"
)

// Cursor for paginated lemma-based queries
type Cursor int64

// Treebank is the metadata of one stored treebank.
type Treebank struct {
	Id   int
	Name string
}

// Sentence couples one parsed tree with its position in a treebank.
type Sentence struct {
	TreebankId int

	// Id is the index of the sentence inside its treebank.
	Id int

	Tree *ud.Tree
}

// TreeReader defines read operations for treebank storage
type TreeReader interface {
	// List returns the metadata (Id, Name) of the stored treebanks.
	// Content (trees) is not loaded.
	List() ([]Treebank, error)

	// Read returns all trees of a treebank by ID, in sentence order.
	Read(id int) ([]*ud.Tree, error)

	// FindCandidates calls onCandidate for every stored sentence
	// containing ALL given lemmas, resuming after the given cursor.
	// Returns the new cursor and any error.
	FindCandidates(lemmas []string, after Cursor, limit int, onCandidate func(Sentence) error) (Cursor, error)
}

// TreeWriter defines write operations for treebank storage
type TreeWriter interface {
	// Write persists a treebank, its sentences and its lemma index.
	Write(name string, trees []*ud.Tree) error
}

// TreeRepository combines read and write operations
type TreeRepository interface {
	TreeReader
	TreeWriter
}

// Lemmas returns the unique lowercased lemmas of a tree, in source
// order. The underscore placeholder is skipped; it is not a lemma and
// would poison the index.
func Lemmas(t *ud.Tree) []string {
	seen := make(map[string]bool)
	var lemmas []string
	for _, key := range t.Keys {
		lemma := t.Nodes[key].Lemma
		if lemma == "" || lemma == "_" {
			continue
		}
		lemma = strings.ToLower(lemma)
		if !seen[lemma] {
			seen[lemma] = true
			lemmas = append(lemmas, lemma)
		}
	}
	return lemmas
}
