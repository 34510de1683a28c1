package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/treebank/storage/filesystem"
	"github.com/revelaction/treebank/storage/sqlite/zombiezen"
)

func exportCommand(opts ExportOptions, ui UI) error {
	pool, err := zombiezen.NewPool(opts.From)
	if err != nil {
		return err
	}
	defer pool.Close()
	src := zombiezen.NewTreeStore(pool)

	// Ensure target directory exists
	if err := os.MkdirAll(opts.To, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	dst, err := filesystem.NewTreeStore(opts.To)
	if err != nil {
		return err
	}

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
			return fmt.Errorf("failed to read treebank %s (id %d): %w", bank.Name, bank.Id, err)
		}

		if err := dst.Write(bank.Name, trees); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write treebank %s: %w", bank.Name, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d treebanks from %s to %s\n", count, opts.From, opts.To)
	return nil
}
