package ud

// Direction tags which way an edge points relative to the node whose
// adjacency list holds it.
type Direction int

const (
	// Up points from a node to its head.
	Up Direction = iota

	// Down points from a node to one of its dependents.
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Edge is one half of a dependency relation. Every relation of the
// sentence is stored twice: as an Up edge in the adjacency list of the
// dependent and as a Down edge in the adjacency list of the head.
type Edge struct {

	// Head is the key at the other end of the edge: the governing key
	// for an Up edge, the dependent key for a Down edge.
	Head string

	// Relation is the DEPREL label of the underlying relation.
	Relation string

	Direction Direction
}
