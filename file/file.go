package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/treebank/ud"
)

// Ext is the conventional file extension of treebank files.
const Ext = ".conllu"

// BlockError reports the failure of a single sentence block. Blocks
// are independent; one failing block does not affect the others.
type BlockError struct {

	// Index is the position of the block in the file, starting at 0.
	Index int

	Err error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Index, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// ReadBlocks reads a CoNLL-U file and splits it into one block of text
// per sentence. The blank region around the content is removed and
// blocks are separated by one blank line.
func ReadBlocks(path string) ([]string, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	txt := strings.ReplaceAll(string(f), "\r\n", "\n")
	txt = strings.TrimSpace(txt)
	if txt == "" {
		return nil, nil
	}

	return strings.Split(txt, "\n\n"), nil
}

// ReadTrees parses every block of the file at path. A malformed block
// does not abort the batch: the trees of the good blocks are returned
// together with one BlockError per failed block.
func ReadTrees(path string) ([]*ud.Tree, []*BlockError, error) {
	blocks, err := ReadBlocks(path)
	if err != nil {
		return nil, nil, err
	}

	var trees []*ud.Tree
	var blockErrs []*BlockError
	for i, block := range blocks {
		tree, err := ud.Parse(block)
		if err != nil {
			blockErrs = append(blockErrs, &BlockError{Index: i, Err: err})
			continue
		}
		trees = append(trees, tree)
	}

	return trees, blockErrs, nil
}

// WriteTrees renders the trees back to CoNLL-U and writes them to
// path, blocks separated by one blank line, with a trailing newline.
func WriteTrees(path string, trees []*ud.Tree) error {
	blocks := make([]string, 0, len(trees))
	for _, tree := range trees {
		blocks = append(blocks, tree.String())
	}

	content := strings.Join(blocks, "\n\n") + "\n"
	return os.WriteFile(path, []byte(content), 0o644)
}
