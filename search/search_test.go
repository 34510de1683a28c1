package search

import (
	"testing"

	"github.com/revelaction/treebank/match"
	"github.com/revelaction/treebank/storage"
	"github.com/revelaction/treebank/ud"
)

// memRepo is a fixed in-memory repository for strategy tests.
type memRepo struct {
	trees []*ud.Tree
}

func (r *memRepo) List() ([]storage.Treebank, error) {
	return []storage.Treebank{{Id: 0, Name: "mem"}}, nil
}

func (r *memRepo) Read(id int) ([]*ud.Tree, error) {
	return r.trees, nil
}

func (r *memRepo) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.Sentence) error) (storage.Cursor, error) {
	cursor := after
	for i, tree := range r.trees {
		ord := storage.Cursor(i + 1)
		if ord <= after {
			continue
		}
		cursor = ord

		if err := onCandidate(storage.Sentence{TreebankId: 0, Id: i, Tree: tree}); err != nil {
			return cursor, err
		}
	}
	return cursor, nil
}

func newRepo(t *testing.T) *memRepo {
	t.Helper()
	blocks := []string{
		"1\tThe\tthe\tDET\t_\t_\t2\tdet\t_\t_\n" +
			"2\tcat\tcat\tNOUN\t_\t_\t3\tnsubj\t_\t_\n" +
			"3\tsleeps\tsleep\tVERB\t_\t_\t0\troot\t_\t_",
		"1\tdogs\tdog\tNOUN\t_\t_\t2\tnsubj\t_\t_\n" +
			"2\tbark\tbark\tVERB\t_\t_\t0\troot\t_\t_",
	}

	repo := &memRepo{}
	for _, block := range blocks {
		tree, err := ud.Parse(block)
		if err != nil {
			t.Fatalf("failed to parse block: %v", err)
		}
		repo.trees = append(repo.trees, tree)
	}
	return repo
}

func TestSentencesIndexed(t *testing.T) {
	repo := newRepo(t)
	pattern, err := match.Parse([]string{"cat"})
	if err != nil {
		t.Fatalf("failed to parse pattern: %v", err)
	}

	var matches []*match.TreeMatch
	_, err = New(pattern, repo).Sentences(0, 10, func(m *match.TreeMatch) error {
		matches = append(matches, m)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].SentenceId != 0 {
		t.Errorf("expected sentence 0, got %d", matches[0].SentenceId)
	}
}

func TestSentencesIndexedNeedsLemma(t *testing.T) {
	repo := newRepo(t)
	pattern, err := match.Parse([]string{"VERB"})
	if err != nil {
		t.Fatalf("failed to parse pattern: %v", err)
	}

	_, err = New(pattern, repo).Sentences(0, 10, func(*match.TreeMatch) error { return nil })
	if err == nil {
		t.Fatal("expected error for lemmaless pattern without treebank restriction")
	}
}

func TestSentencesSingleTreebank(t *testing.T) {
	repo := newRepo(t)
	pattern, err := match.Parse([]string{"VERB"})
	if err != nil {
		t.Fatalf("failed to parse pattern: %v", err)
	}

	var matches []*match.TreeMatch
	_, err = New(pattern, repo).WithTreebankID(0).Sentences(0, 10, func(m *match.TreeMatch) error {
		matches = append(matches, m)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to search: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[1].TreebankId != 0 || matches[1].SentenceId != 1 {
		t.Errorf("unexpected match position: %+v", matches[1])
	}
}

func TestNames(t *testing.T) {
	names, err := Names(newRepo(t))
	if err != nil {
		t.Fatalf("failed to get names: %v", err)
	}
	if names[0] != "mem" {
		t.Errorf("expected name mem, got %q", names[0])
	}
}
