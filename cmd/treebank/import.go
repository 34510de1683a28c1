package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/treebank/storage/filesystem"
	"github.com/revelaction/treebank/storage/sqlite/zombiezen"
)

func importCommand(opts ImportOptions, ui UI) error {
	src, err := filesystem.NewTreeStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateTables(pool); err != nil {
		return fmt.Errorf("failed to create treebank tables: %w", err)
	}

	dst := zombiezen.NewTreeStore(pool)

	fmt.Fprintf(ui.Out, "Reading treebanks from %s...\n", opts.From)
	banks, err := src.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(banks))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, bank := range banks {
		trees, err := src.Read(bank.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read treebank %s: %w", bank.Name, err)
		}

		if err := dst.Write(bank.Name, trees); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write treebank %s: %w", bank.Name, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d treebanks from %s to %s\n", count, opts.From, opts.To)
	return nil
}
