package match

import (
	"testing"

	"github.com/revelaction/treebank/ud"
)

const catBlock = "# sent_id = ex1\n" +
	"1\tThe\tthe\tDET\t_\t_\t2\tdet\t_\t_\n" +
	"2\tcat\tcat\tNOUN\t_\t_\t3\tnsubj\t_\t_\n" +
	"3\tsleeps\tsleep\tVERB\t_\t_\t0\troot\t_\t_"

func parseTree(t *testing.T) *ud.Tree {
	t.Helper()
	tree, err := ud.Parse(catBlock)
	if err != nil {
		t.Fatalf("failed to parse block: %v", err)
	}
	return tree
}

func TestParseClassification(t *testing.T) {
	pattern, err := Parse([]string{"cat", "VERB", ":nsubj", "cat^sleep"})
	if err != nil {
		t.Fatalf("failed to parse pattern: %v", err)
	}

	if len(pattern) != 4 {
		t.Fatalf("expected 4 items, got %d", len(pattern))
	}

	if pattern[0].Lemma != "cat" {
		t.Errorf("expected lemma item, got %+v", pattern[0])
	}
	if pattern[1].Upos != "VERB" {
		t.Errorf("expected upos item, got %+v", pattern[1])
	}
	if pattern[2].Deprel != "nsubj" {
		t.Errorf("expected deprel item, got %+v", pattern[2])
	}
	if pattern[3].Lemma != "cat" || pattern[3].HeadLemma != "sleep" {
		t.Errorf("expected head-constrained item, got %+v", pattern[3])
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(nil); err == nil {
		t.Fatal("expected error for empty pattern")
	}
	if _, err := Parse([]string{":"}); err == nil {
		t.Fatal("expected error for bare colon")
	}
	if _, err := Parse([]string{"a^"}); err == nil {
		t.Fatal("expected error for dangling caret")
	}
}

func TestMatchLemma(t *testing.T) {
	tree := parseTree(t)

	pattern, _ := Parse([]string{"cat"})
	m := NewMatcher(pattern).Match(tree)
	if m == nil {
		t.Fatal("expected a match")
	}
	if len(m.Keys) != 1 || m.Keys[0] != "2" {
		t.Errorf("expected keys [2], got %v", m.Keys)
	}

	pattern, _ = Parse([]string{"dog"})
	if m := NewMatcher(pattern).Match(tree); m != nil {
		t.Errorf("expected no match, got %v", m.Keys)
	}
}

func TestMatchConjunction(t *testing.T) {
	tree := parseTree(t)

	pattern, _ := Parse([]string{"cat", "VERB"})
	m := NewMatcher(pattern).Match(tree)
	if m == nil {
		t.Fatal("expected a match")
	}
	if len(m.Keys) != 2 || m.Keys[0] != "2" || m.Keys[1] != "3" {
		t.Errorf("expected keys [2 3], got %v", m.Keys)
	}

	// one unsatisfied item fails the whole pattern
	pattern, _ = Parse([]string{"cat", "ADV"})
	if m := NewMatcher(pattern).Match(tree); m != nil {
		t.Errorf("expected no match, got %v", m.Keys)
	}
}

func TestMatchDeprelUsesGraph(t *testing.T) {
	pattern, _ := Parse([]string{":nsubj"})
	m := NewMatcher(pattern).Match(parseTree(t))
	if m == nil {
		t.Fatal("expected a match")
	}
	if len(m.Keys) != 1 || m.Keys[0] != "2" {
		t.Errorf("expected keys [2], got %v", m.Keys)
	}

	// multiword range rows carry no relation and never match a deprel
	mwBlock := "1-2\tvámonos\t_\t_\t_\t_\t_\tnsubj\t_\t_\n" +
		"1\tvamos\tir\tVERB\t_\t_\t0\troot\t_\t_\n" +
		"2\tnos\tnosotros\tPRON\t_\t_\t1\tobj\t_\t_"
	tree, err := ud.Parse(mwBlock)
	if err != nil {
		t.Fatalf("failed to parse block: %v", err)
	}
	if m := NewMatcher(pattern).Match(tree); m != nil {
		t.Errorf("expected no match on edgeless row, got %v", m.Keys)
	}
}

func TestMatchHeadLemma(t *testing.T) {
	tree := parseTree(t)

	pattern, _ := Parse([]string{"cat^sleep"})
	m := NewMatcher(pattern).Match(tree)
	if m == nil {
		t.Fatal("expected a match")
	}
	if len(m.Keys) != 1 || m.Keys[0] != "2" {
		t.Errorf("expected keys [2], got %v", m.Keys)
	}

	// the root's head is the virtual root, which has no lemma
	pattern, _ = Parse([]string{"sleep^cat"})
	if m := NewMatcher(pattern).Match(tree); m != nil {
		t.Errorf("expected no match, got %v", m.Keys)
	}
}

func TestPatternLemmas(t *testing.T) {
	pattern, _ := Parse([]string{"cat^sleep", "VERB", "cat"})

	lemmas := pattern.Lemmas()
	if len(lemmas) != 2 || lemmas[0] != "cat" || lemmas[1] != "sleep" {
		t.Errorf("expected unique lemmas [cat sleep], got %v", lemmas)
	}
}
