package main

import (
	"github.com/revelaction/treebank/query"
	"github.com/revelaction/treebank/render"
)

func queryCommand(opts QueryOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewTreeRepository(p, opts.TreePath)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format

	h := query.NewHandler(repo, r)
	return h.Run()
}
