package ud

import (
	"errors"
	"strings"
	"testing"
)

func TestNewNodeFieldCount(t *testing.T) {
	fields := strings.Split("1\tThe\tthe\tDET\t_\t_\t2\tdet\t_\t_", "\t")

	node, err := NewNode(fields)
	if err != nil {
		t.Fatalf("failed to build node: %v", err)
	}
	if node.ID != "1" || node.Form != "The" || node.Deprel != "det" {
		t.Errorf("fields assigned out of order: %+v", node)
	}

	_, err = NewNode(fields[:9])
	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
	if malformed.Fields != 9 {
		t.Errorf("expected field count 9 in error, got %d", malformed.Fields)
	}
}

func TestNodeString(t *testing.T) {
	line := "3\tsleeps\tsleep\tVERB\t_\t_\t0\troot\t_\t_"

	node, err := NewNode(strings.Split(line, "\t"))
	if err != nil {
		t.Fatalf("failed to build node: %v", err)
	}

	if node.String() != line {
		t.Errorf("expected %q, got %q", line, node.String())
	}
}
