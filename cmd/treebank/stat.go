package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/treebank/stat"
)

func statCommand(opts StatOptions, source string, ui UI) error {
	trees, err := loadSource(opts.TreePath, source)
	if err != nil {
		return err
	}

	if opts.Sent != nil {
		if *opts.Sent < 0 || *opts.Sent >= len(trees) {
			return fmt.Errorf("sentence index %d out of bounds (source has %d sentences)", *opts.Sent, len(trees))
		}
		trees = trees[*opts.Sent : *opts.Sent+1]
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(trees)
	stats := hdl.Get()

	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, tokens per sentence %d\n", stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)

	fmt.Fprintf(ui.Out, "\nUPOS:\n")
	printDis(ui, stats.UposDis)
	fmt.Fprintf(ui.Out, "\nDEPREL:\n")
	printDis(ui, stats.DeprelDis)

	return nil
}

func printDis(ui UI, dis map[string]int) {
	tags := make([]string, 0, len(dis))
	for tag := range dis {
		tags = append(tags, tag)
	}

	// most frequent first, ties alphabetically
	sort.SliceStable(tags, func(i, j int) bool {
		if dis[tags[i]] != dis[tags[j]] {
			return dis[tags[i]] > dis[tags[j]]
		}
		return tags[i] < tags[j]
	})

	for _, tag := range tags {
		fmt.Fprintf(ui.Out, "%10s %6d\n", tag, dis[tag])
	}
}
