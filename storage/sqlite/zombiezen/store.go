package zombiezen

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/treebank/storage"
	"github.com/revelaction/treebank/ud"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// TreeStore serves treebanks from a SQLite database. Sentences are
// stored as their raw CoNLL-U blocks and parsed on read, plus a lemma
// table for indexed candidate retrieval.
type TreeStore struct {
	pool *sqlitex.Pool
}

var _ storage.TreeRepository = (*TreeStore)(nil)

func NewTreeStore(pool *sqlitex.Pool) *TreeStore {
	return &TreeStore{pool: pool}
}

func (s *TreeStore) List() ([]storage.Treebank, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var banks []storage.Treebank
	err = sqlitex.Execute(conn, "SELECT id, name FROM treebanks ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			banks = append(banks, storage.Treebank{
				Id:   stmt.ColumnInt(0),
				Name: stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return banks, nil
}

func (s *TreeStore) Read(id int) ([]*ud.Tree, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var trees []*ud.Tree
	var parseErr error

	err = sqlitex.Execute(conn, "SELECT block FROM sentences WHERE treebank_id = ? ORDER BY ord", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			tree, err := ud.Parse(stmt.ColumnText(0))
			if err != nil {
				// stored blocks were parsed once on write; a failure
				// here means the database was edited by hand
				parseErr = err
				return err
			}
			trees = append(trees, tree)
			return nil
		},
	})
	if parseErr != nil {
		return nil, fmt.Errorf("treebank %d holds a corrupt block: %w", id, parseErr)
	}
	if err != nil {
		return nil, err
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("treebank not found: %d", id)
	}

	return trees, nil
}

// FindCandidates retrieves sentences whose lemma index contains ALL
// given lemmas, resuming after the given cursor. The cursor is the
// sentence rowid.
func (s *TreeStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.Sentence) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer s.pool.Put(conn)

	// INTERSECT keeps only the sentence rowids that contain every
	// lemma, and guarantees a unique, sorted result set.
	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM sentence_lemmas WHERE lemma = ? AND sentence_rowid > ?")
		args = append(args, strings.ToLower(lemma), int64(after))
	}
	queryBuilder.WriteString(" LIMIT ?")
	args = append(args, limit)

	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}

	cursor := after
	for _, rowID := range rowIDs {
		var sentence storage.Sentence
		var block string

		err = sqlitex.Execute(conn, "SELECT treebank_id, ord, block FROM sentences WHERE rowid = ?", &sqlitex.ExecOptions{
			Args: []interface{}{rowID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				sentence.TreebankId = stmt.ColumnInt(0)
				sentence.Id = stmt.ColumnInt(1)
				block = stmt.ColumnText(2)
				return nil
			},
		})
		if err != nil {
			return cursor, err
		}

		tree, err := ud.Parse(block)
		if err != nil {
			return cursor, fmt.Errorf("sentence %d holds a corrupt block: %w", rowID, err)
		}
		sentence.Tree = tree

		if err := onCandidate(sentence); err != nil {
			return cursor, err
		}
		cursor = storage.Cursor(rowID)
	}

	return cursor, nil
}

func (s *TreeStore) Write(name string, trees []*ud.Tree) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn, "INSERT INTO treebanks (name) VALUES (?)", &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to insert treebank %s: %w", name, err)
	}
	treebankID := conn.LastInsertRowID()

	for ord, tree := range trees {
		err = sqlitex.Execute(conn, "INSERT INTO sentences (treebank_id, ord, sent_id, block) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{treebankID, ord, sentID(tree), tree.String()},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence %d of %s: %w", ord, name, err)
		}
		sentenceRowID := conn.LastInsertRowID()

		for _, lemma := range storage.Lemmas(tree) {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (sentence_rowid, lemma) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{sentenceRowID, lemma},
			})
			if err != nil {
				return fmt.Errorf("failed to index lemma %q: %w", lemma, err)
			}
		}
	}

	return nil
}

// sentID extracts the conventional "# sent_id = ..." comment. The core
// treats comment lines as opaque; the store only lifts this one value
// for display and indexing.
func sentID(tree *ud.Tree) string {
	for _, line := range tree.IDLines {
		rest, ok := strings.CutPrefix(line, "# sent_id")
		if !ok {
			continue
		}
		rest = strings.TrimLeft(rest, " =")
		return strings.TrimSpace(rest)
	}
	return ""
}
