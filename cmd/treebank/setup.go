package main

import (
	"fmt"
	"os"

	"github.com/revelaction/treebank/storage"
	"github.com/revelaction/treebank/storage/filesystem"
	"github.com/revelaction/treebank/storage/sqlite/zombiezen"
)

// NewTreeRepository picks the backend by the path: a directory of
// .conllu files or a SQLite database file.
func NewTreeRepository(p *Pool, path string) (storage.TreeRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewTreeStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewTreeStore(pool), nil
}
