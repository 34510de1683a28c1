package main

import (
	"fmt"

	"github.com/revelaction/treebank/match"
	"github.com/revelaction/treebank/render"
	"github.com/revelaction/treebank/search"
	"github.com/revelaction/treebank/storage"
)

func searchCommand(opts SearchOptions, words []string, ui UI) error {
	pattern, err := match.Parse(words)
	if err != nil {
		return err
	}

	p := &Pool{}
	defer p.Close()

	repo, err := NewTreeRepository(p, opts.TreePath)
	if err != nil {
		return err
	}

	s := search.New(pattern, repo)
	if opts.Treebank != nil {
		s = s.WithTreebankID(*opts.Treebank)
	}

	var matches []*match.TreeMatch
	var cursor storage.Cursor
	for {
		next, err := s.Sentences(cursor, opts.Limit, func(m *match.TreeMatch) error {
			matches = append(matches, m)
			return nil
		})
		if err != nil {
			return err
		}
		if next == cursor {
			break
		}
		cursor = next
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(matches)
	}

	names, err := search.Names(repo)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format
	for id, name := range names {
		r.AddTreebankName(id, name)
	}

	r.Match(matches)
	fmt.Fprintf(ui.Out, "%d sentences\n", len(matches))

	return nil
}
