package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/treebank/file"
	"github.com/revelaction/treebank/storage"
	"github.com/revelaction/treebank/ud"
)

// TreeStore serves treebanks from a directory of .conllu files. The
// treebank ID is the index of the file in the sorted listing.
type TreeStore struct {
	dir string

	// In-memory cache
	names []string
}

var _ storage.TreeRepository = (*TreeStore)(nil)

// NewTreeStore creates a filesystem treebank store over dir.
func NewTreeStore(dir string) (*TreeStore, error) {
	s := &TreeStore{dir: dir}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TreeStore) load() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == file.Ext {
			s.names = append(s.names, entry.Name())
		}
	}
	sort.Strings(s.names)

	return nil
}

func (s *TreeStore) List() ([]storage.Treebank, error) {
	banks := make([]storage.Treebank, 0, len(s.names))
	for i, name := range s.names {
		banks = append(banks, storage.Treebank{
			Id:   i,
			Name: strings.TrimSuffix(name, file.Ext),
		})
	}
	return banks, nil
}

func (s *TreeStore) Read(id int) ([]*ud.Tree, error) {
	if id < 0 || id >= len(s.names) {
		return nil, fmt.Errorf("treebank not found: %d", id)
	}

	trees, blockErrs, err := file.ReadTrees(filepath.Join(s.dir, s.names[id]))
	if err != nil {
		return nil, err
	}
	if len(blockErrs) > 0 {
		return nil, fmt.Errorf("treebank %s: %w", s.names[id], blockErrs[0])
	}

	return trees, nil
}

// FindCandidates scans all files sequentially. There is no lemma index
// on the filesystem backend; the cursor is a global sentence ordinal
// across the sorted file listing.
func (s *TreeStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.Sentence) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	cursor := after
	var ord storage.Cursor
	count := 0

	for id := range s.names {
		trees, err := s.Read(id)
		if err != nil {
			return cursor, err
		}

		for i, tree := range trees {
			ord++
			if ord <= after {
				continue
			}
			cursor = ord

			if !hasLemmas(tree, lemmas) {
				continue
			}

			if err := onCandidate(storage.Sentence{TreebankId: id, Id: i, Tree: tree}); err != nil {
				return cursor, err
			}

			count++
			if count >= limit {
				return cursor, nil
			}
		}
	}

	return cursor, nil
}

func hasLemmas(tree *ud.Tree, lemmas []string) bool {
	have := make(map[string]bool)
	for _, lemma := range storage.Lemmas(tree) {
		have[lemma] = true
	}

	for _, lemma := range lemmas {
		if !have[strings.ToLower(lemma)] {
			return false
		}
	}
	return true
}

func (s *TreeStore) Write(name string, trees []*ud.Tree) error {
	path := filepath.Join(s.dir, name+file.Ext)
	if err := file.WriteTrees(path, trees); err != nil {
		return err
	}

	// keep the listing and the IDs derived from it fresh
	s.names = nil
	return s.load()
}
