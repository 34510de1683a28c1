package search

import (
	"errors"
	"fmt"

	"github.com/revelaction/treebank/match"
	"github.com/revelaction/treebank/storage"
)

// Search orchestrates the strategy selection for finding sentences
// that match a pattern against a treebank repository.
type Search struct {
	pattern    match.Pattern
	repo       storage.TreeReader
	treebankID *int
}

// New creates a new Search instance with the given pattern and repository.
func New(p match.Pattern, repo storage.TreeReader) *Search {
	return &Search{
		pattern: p,
		repo:    repo,
	}
}

// WithTreebankID restricts the search to a single treebank ID. If set,
// the single-treebank strategy (Read) is favored over the indexed
// strategy (FindCandidates).
func (s *Search) WithTreebankID(id int) *Search {
	s.treebankID = &id
	return s
}

// Sentences calls onMatch for every matched sentence, handling
// pagination through the repository cursor.
func (s *Search) Sentences(cursor storage.Cursor, limit int, onMatch func(*match.TreeMatch) error) (storage.Cursor, error) {
	matcher := match.NewMatcher(s.pattern)

	// Strategy 1: single treebank, full scan
	if s.treebankID != nil {
		trees, err := s.repo.Read(*s.treebankID)
		if err != nil {
			return cursor, err
		}

		for i, tree := range trees {
			m := matcher.Match(tree)
			if m == nil {
				continue
			}
			m.TreebankId = *s.treebankID
			m.SentenceId = i

			if err := onMatch(m); err != nil {
				return cursor, err
			}
		}
		return cursor, nil
	}

	// Strategy 2: indexed candidate retrieval
	lemmas := s.pattern.Lemmas()
	if len(lemmas) == 0 {
		return cursor, errors.New("pattern must contain at least one lemma for indexed search")
	}

	return s.repo.FindCandidates(lemmas, cursor, limit, func(res storage.Sentence) error {
		m := matcher.Match(res.Tree)
		if m == nil {
			// candidate holds the lemmas but fails the structural
			// constraints (tag, relation, head)
			return nil
		}
		m.TreebankId = res.TreebankId
		m.SentenceId = res.Id

		return onMatch(m)
	})
}

// Names returns the treebank names of the repository keyed by ID, for
// result prefixes.
func Names(repo storage.TreeReader) (map[int]string, error) {
	banks, err := repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list treebanks: %w", err)
	}

	names := make(map[int]string)
	for _, b := range banks {
		names[b.Id] = b.Name
	}
	return names, nil
}
