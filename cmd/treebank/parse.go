package main

import (
	"fmt"

	"github.com/revelaction/treebank/file"
	"github.com/revelaction/treebank/ud"
)

func parseCommand(path string, ui UI) error {
	blocks, err := file.ReadBlocks(path)
	if err != nil {
		return err
	}

	parsed := 0
	failed := 0
	for i, block := range blocks {
		tree, err := ud.Parse(block)
		if err != nil {
			failed++
			fmt.Fprintf(ui.Err, "❌ block %d: %v\n", i, err)
			continue
		}
		parsed++

		if tree.String() != block {
			fmt.Fprintf(ui.Err, "⚠️  block %d: render differs from source\n", i)
		}

		for _, key := range tree.DuplicateKeys() {
			fmt.Fprintf(ui.Err, "⚠️  block %d: duplicate id %s\n", i, key)
		}

		if _, err := tree.RealRoot(); err != nil {
			fmt.Fprintf(ui.Err, "⚠️  block %d: %v\n", i, err)
		}
	}

	fmt.Fprintf(ui.Out, "Parsed %d sentences, %d malformed blocks\n", parsed, failed)
	return nil
}
