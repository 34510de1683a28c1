package main

import (
	"fmt"
)

func lsCommand(opts LsOptions, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewTreeRepository(p, opts.TreePath)
	if err != nil {
		return err
	}

	banks, err := repo.List()
	if err != nil {
		return err
	}

	for _, bank := range banks {
		fmt.Fprintf(ui.Out, "🌲 %d %s\n", bank.Id, bank.Name)
	}

	return nil
}
