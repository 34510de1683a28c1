package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/revelaction/treebank/ud"
)

const twoBlocks = "# sent_id = a\n" +
	"1\tHi\thi\tINTJ\t_\t_\t0\troot\t_\t_\n" +
	"\n" +
	"# sent_id = b\n" +
	"1\tBye\tbye\tINTJ\t_\t_\t0\troot\t_\t_\n"

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+Ext)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestReadBlocks(t *testing.T) {
	path := writeTemp(t, twoBlocks+"\n\n")

	blocks, err := ReadBlocks(path)
	if err != nil {
		t.Fatalf("failed to read blocks: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	if blocks[1] != "# sent_id = b\n1\tBye\tbye\tINTJ\t_\t_\t0\troot\t_\t_" {
		t.Errorf("unexpected second block: %q", blocks[1])
	}
}

func TestReadTrees(t *testing.T) {
	path := writeTemp(t, twoBlocks)

	trees, blockErrs, err := ReadTrees(path)
	if err != nil {
		t.Fatalf("failed to read trees: %v", err)
	}
	if len(blockErrs) != 0 {
		t.Fatalf("expected no block errors, got %v", blockErrs)
	}
	if len(trees) != 2 {
		t.Fatalf("expected 2 trees, got %d", len(trees))
	}

	if got := trees[0].Sentence(); got != "hi" {
		t.Errorf("expected sentence %q, got %q", "hi", got)
	}
}

func TestReadTreesBadBlockDoesNotAbort(t *testing.T) {
	content := twoBlocks + "\n# sent_id = c\n1\tbroken line without tabs\n"
	path := writeTemp(t, content)

	trees, blockErrs, err := ReadTrees(path)
	if err != nil {
		t.Fatalf("failed to read trees: %v", err)
	}

	if len(trees) != 2 {
		t.Fatalf("expected 2 good trees, got %d", len(trees))
	}
	if len(blockErrs) != 1 {
		t.Fatalf("expected 1 block error, got %d", len(blockErrs))
	}

	if blockErrs[0].Index != 2 {
		t.Errorf("expected failing block index 2, got %d", blockErrs[0].Index)
	}

	var malformed *ud.MalformedRecordError
	if !errors.As(blockErrs[0], &malformed) {
		t.Fatalf("expected wrapped MalformedRecordError, got %v", blockErrs[0])
	}
}

func TestWriteTreesRoundTrip(t *testing.T) {
	path := writeTemp(t, twoBlocks)

	trees, _, err := ReadTrees(path)
	if err != nil {
		t.Fatalf("failed to read trees: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out"+Ext)
	if err := WriteTrees(out, trees); err != nil {
		t.Fatalf("failed to write trees: %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}

	if string(content) != twoBlocks {
		t.Errorf("round trip mismatch:\ngot:\n%q\nwant:\n%q", string(content), twoBlocks)
	}
}
