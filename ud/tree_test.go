package ud

import (
	"errors"
	"testing"
)

func TestTreeSentence(t *testing.T) {
	tree, err := Parse(catBlock)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if got := tree.Sentence(); got != "the cat sleeps" {
		t.Errorf("expected %q, got %q", "the cat sleeps", got)
	}
}

func TestTreeSentenceMultiword(t *testing.T) {
	tree, err := Parse(multiwordBlock)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	// the range row text is repeated, mirroring the source format
	if got := tree.Sentence(); got != "vámonos vamos nos" {
		t.Errorf("expected range row included, got %q", got)
	}
}

func TestTreeRealRoot(t *testing.T) {
	tree, err := Parse(catBlock)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	root, err := tree.RealRoot()
	if err != nil {
		t.Fatalf("failed to get root: %v", err)
	}
	if root != "3" {
		t.Errorf("expected root 3, got %q", root)
	}
}

func TestTreeMissingRoot(t *testing.T) {
	// head points at a sibling, nothing at 0
	block := "1\ta\ta\tDET\t_\t_\t2\tdet\t_\t_\n" +
		"2\tb\tb\tNOUN\t_\t_\t1\tnsubj\t_\t_"

	tree, err := Parse(block)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	_, err = tree.RealRoot()
	var missing *MissingRootError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingRootError, got %v", err)
	}
}

func TestTreeChildren(t *testing.T) {
	tree, err := Parse(catBlock)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	children := tree.Children("3")
	if len(children) != 1 || children[0] != "2" {
		t.Fatalf("expected children of 3 to be [2], got %v", children)
	}

	children = tree.Children("2")
	if len(children) != 1 || children[0] != "1" {
		t.Fatalf("expected children of 2 to be [1], got %v", children)
	}

	if got := tree.Children("1"); len(got) != 0 {
		t.Errorf("expected leaf to have no children, got %v", got)
	}

	// absence means no children, not an error
	if got := tree.Children("99"); len(got) != 0 {
		t.Errorf("expected unknown key to have no children, got %v", got)
	}
}

func TestTreeChildrenOrder(t *testing.T) {
	block := "1\ta\ta\tDET\t_\t_\t3\tdet\t_\t_\n" +
		"2\tb\tb\tADJ\t_\t_\t3\tamod\t_\t_\n" +
		"3\tc\tc\tNOUN\t_\t_\t0\troot\t_\t_"

	tree, err := Parse(block)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	children := tree.Children("3")
	if len(children) != 2 || children[0] != "1" || children[1] != "2" {
		t.Fatalf("expected children in insertion order [1 2], got %v", children)
	}
}

func TestTreeNodeUndefined(t *testing.T) {
	tree, err := Parse(catBlock)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if _, err := tree.Node("2"); err != nil {
		t.Fatalf("unexpected error for known key: %v", err)
	}

	_, err = tree.Node("42")
	var undefined *UndefinedNodeError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedNodeError, got %v", err)
	}
	if undefined.Key != "42" {
		t.Errorf("expected key 42 in error, got %q", undefined.Key)
	}
}
