package ud

import "fmt"

// MalformedRecordError reports a word line that does not split into
// exactly NumFields tab-separated fields. The whole block fails to
// parse; no partial tree is produced.
type MalformedRecordError struct {
	Line   string
	Fields int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: %d fields, want %d: %q", e.Fields, NumFields, e.Line)
}

// MissingRootError reports a tree whose virtual root has no dependent,
// meaning no word line declared HEAD = 0.
type MissingRootError struct{}

func (e *MissingRootError) Error() string {
	return "missing root: virtual root has no dependent"
}

// UndefinedNodeError reports a lookup with a key that was never
// assigned during parsing.
type UndefinedNodeError struct {
	Key string
}

func (e *UndefinedNodeError) Error() string {
	return fmt.Sprintf("undefined node: %q", e.Key)
}
