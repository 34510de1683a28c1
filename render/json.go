package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/treebank/match"
)

// Result is the JSON shape of one matched sentence.
type Result struct {
	TreebankId int      `json:"treebank_id"`
	SentenceId int      `json:"sentence_id"`
	Sentence   string   `json:"sentence"`
	Keys       []string `json:"keys"`
}

// JSONRenderer writes TreeMatch results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes matches as a JSON array.
func (r *JSONRenderer) Render(matches []*match.TreeMatch) error {
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, Result{
			TreebankId: m.TreebankId,
			SentenceId: m.SentenceId,
			Sentence:   m.Tree.Sentence(),
			Keys:       m.Keys,
		})
	}

	return json.NewEncoder(r.W).Encode(results)
}
