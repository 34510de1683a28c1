package match

import (
	"errors"
	"strings"
	"unicode"

	"github.com/revelaction/treebank/ud"
)

// PatternItem constrains a single word of a sentence. Empty fields do
// not constrain. HeadLemma, when set, additionally constrains the
// lemma of the governing word, checked through the up edge of the
// dependency graph.
type PatternItem struct {
	Lemma     string `json:"lemma,omitempty"`
	Upos      string `json:"upos,omitempty"`
	Deprel    string `json:"deprel,omitempty"`
	HeadLemma string `json:"head_lemma,omitempty"`
}

// Pattern is a conjunction of items: a tree matches when every item is
// satisfied by at least one of its words.
type Pattern []PatternItem

func (p Pattern) String() string {
	sl := []string{}
	for _, item := range p {
		switch {
		case item.Deprel != "":
			sl = append(sl, ":"+item.Deprel)
		case item.Lemma != "" && item.HeadLemma != "":
			sl = append(sl, item.Lemma+"^"+item.HeadLemma)
		case item.Lemma != "":
			sl = append(sl, item.Lemma)
		case item.Upos != "":
			sl = append(sl, item.Upos)
		}
	}

	return strings.Join(sl, " ")
}

// Lemmas returns all unique lemmas present in the Pattern, including
// head lemmas. These are the terms usable for indexed candidate
// retrieval in storage.
func (p Pattern) Lemmas() []string {
	seen := make(map[string]bool)
	var lemmas []string
	for _, item := range p {
		for _, lemma := range []string{item.Lemma, item.HeadLemma} {
			if lemma == "" {
				continue
			}
			lemma = strings.ToLower(lemma)
			if !seen[lemma] {
				seen[lemma] = true
				lemmas = append(lemmas, lemma)
			}
		}
	}
	return lemmas
}

// Parse converts the user input words to a Pattern.
//
// A word starting with an uppercase letter is a universal POS tag
// (NOUN, VERB, ...). A word starting with ':' is a dependency relation
// (:nsubj). Anything else is a lemma; a lemma of the form a^b
// constrains the word to lemma a governed by a word with lemma b.
func Parse(args []string) (Pattern, error) {
	var pattern Pattern
	for _, arg := range args {
		if arg == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(arg, ":"); ok {
			if rest == "" {
				return nil, errors.New("empty relation after ':'")
			}
			pattern = append(pattern, PatternItem{Deprel: rest})
			continue
		}

		firstChar := []rune(arg)[0]
		if unicode.IsUpper(firstChar) && unicode.IsLetter(firstChar) {
			pattern = append(pattern, PatternItem{Upos: arg})
			continue
		}

		if lemma, head, ok := strings.Cut(arg, "^"); ok {
			if lemma == "" || head == "" {
				return nil, errors.New("both sides of '^' need a lemma")
			}
			pattern = append(pattern, PatternItem{Lemma: lemma, HeadLemma: head})
			continue
		}

		pattern = append(pattern, PatternItem{Lemma: arg})
	}

	if len(pattern) == 0 {
		return nil, errors.New("empty pattern")
	}

	return pattern, nil
}

// TreeMatch records the outcome of matching one tree: the keys of the
// words that satisfied pattern items, in source order without
// duplicates.
type TreeMatch struct {
	Tree *ud.Tree `json:"-"`

	TreebankId int `json:"treebank_id"`

	// SentenceId is the index of the sentence inside its treebank.
	SentenceId int `json:"sentence_id"`

	Keys []string `json:"keys"`
}

// Matcher matches trees against a Pattern. A set of trees can be
// matched by repeated Match calls.
type Matcher struct {
	pattern Pattern
}

func NewMatcher(p Pattern) *Matcher {
	return &Matcher{pattern: p}
}

// Match returns the match of tree against the pattern, or nil when
// some item is satisfied by no word.
func (m *Matcher) Match(tree *ud.Tree) *TreeMatch {
	seen := make(map[string]bool)
	var keys []string

	for _, item := range m.pattern {
		found := matchItem(tree, item)
		if len(found) == 0 {
			return nil
		}
		for _, key := range found {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}

	return &TreeMatch{Tree: tree, Keys: keys}
}

func matchItem(tree *ud.Tree, item PatternItem) []string {
	var found []string

	for _, key := range tree.Keys {
		node := tree.Nodes[key]

		if item.Lemma != "" && !strings.EqualFold(node.Lemma, item.Lemma) {
			continue
		}
		if item.Upos != "" && node.Upos != item.Upos {
			continue
		}
		if item.Deprel != "" {
			// verify against the graph, not the raw field: a word
			// without an up edge (HEAD = _) has no relation at all
			up, ok := upEdge(tree, key)
			if !ok || up.Relation != item.Deprel {
				continue
			}
		}
		if item.HeadLemma != "" && !headLemmaMatches(tree, key, item.HeadLemma) {
			continue
		}

		found = append(found, key)
	}

	return found
}

func upEdge(tree *ud.Tree, key string) (ud.Edge, bool) {
	for _, e := range tree.Graph[key] {
		if e.Direction == ud.Up {
			return e, true
		}
	}
	return ud.Edge{}, false
}

func headLemmaMatches(tree *ud.Tree, key, lemma string) bool {
	up, ok := upEdge(tree, key)
	if !ok || up.Head == ud.Root {
		return false
	}

	head, err := tree.Node(up.Head)
	if err != nil {
		return false
	}

	return strings.EqualFold(head.Lemma, lemma)
}
