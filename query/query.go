package query

import (
	"fmt"
	"strings"

	"github.com/revelaction/treebank/match"
	"github.com/revelaction/treebank/render"
	"github.com/revelaction/treebank/search"
	"github.com/revelaction/treebank/storage"

	"github.com/c-bata/go-prompt"
)

const pageSize = 200

// uposTags are the universal POS tags, offered as completions for
// uppercase input words.
var uposTags = []string{
	"ADJ", "ADP", "ADV", "AUX", "CCONJ", "DET", "INTJ", "NOUN", "NUM",
	"PART", "PRON", "PROPN", "PUNCT", "SCONJ", "SYM", "VERB", "X",
}

type Handler struct {
	Repo     storage.TreeReader
	Renderer *render.Renderer
}

func NewHandler(repo storage.TreeReader, r *render.Renderer) *Handler {
	return &Handler{
		Repo:     repo,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, quit to exit")

	names, err := search.Names(h.Repo)
	if err != nil {
		return err
	}
	for id, name := range names {
		h.Renderer.AddTreebankName(id, name)
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🌲 ", h.completer,
			prompt.OptionTitle("treebank query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		pattern, err := match.Parse(strings.Fields(in))
		if err != nil {
			fmt.Printf("Error parsing pattern: %v\n", err)
			continue
		}

		h.search(pattern)
	}
}

func (h *Handler) search(pattern match.Pattern) {
	s := search.New(pattern, h.Repo)

	var matches []*match.TreeMatch
	var cursor storage.Cursor
	for {
		next, err := s.Sentences(cursor, pageSize, func(m *match.TreeMatch) error {
			matches = append(matches, m)
			return nil
		})
		if err != nil {
			fmt.Printf("Error searching: %v\n", err)
			return
		}
		if next == cursor {
			break
		}
		cursor = next
	}

	h.Renderer.Match(matches)
	fmt.Printf("%d sentences\n", len(matches))
}

func (h *Handler) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if word == "" {
		return nil
	}

	// tags are typed uppercase, everything else is corpus-specific
	first := word[0]
	if first < 'A' || first > 'Z' {
		return nil
	}

	s := []prompt.Suggest{}
	for _, tag := range uposTags {
		s = append(s, prompt.Suggest{Text: tag})
	}

	return prompt.FilterHasPrefix(s, word, true)
}
