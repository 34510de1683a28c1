package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/treebank/file"
	"github.com/revelaction/treebank/render"
	"github.com/revelaction/treebank/ud"
)

func sentenceCommand(opts SentenceOptions, source string, sentId int, ui UI) error {
	trees, err := loadSource(opts.TreePath, source)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(trees) {
		return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(trees)-1)
	}
	tree := trees[sentId]

	r := render.NewRenderer()
	r.HasColor = !opts.NoColor

	fmt.Fprintf(ui.Out, "✍  %d %s\n\n", sentId, tree.Sentence())

	for _, key := range tree.Keys {
		node := tree.Nodes[key]
		fmt.Fprintf(ui.Out, "%5s %20q %15q %6s %5s %10s %s\n", node.ID, node.Form, node.Lemma, node.Upos, node.Head, node.Deprel, node.Feats)
	}

	treeStr, err := r.TreeString(tree)
	if err != nil {
		return err
	}
	fmt.Fprintf(ui.Out, "\n%s\n", treeStr)

	return nil
}

// loadSource reads the trees of a .conllu file or of a repository
// treebank ID.
func loadSource(treePath, source string) ([]*ud.Tree, error) {
	isFile, err := resolveSource(source)
	if err != nil {
		return nil, err
	}

	if isFile {
		trees, blockErrs, err := file.ReadTrees(source)
		if err != nil {
			return nil, err
		}
		if len(blockErrs) > 0 {
			return nil, blockErrs[0]
		}
		return trees, nil
	}

	if treePath == "" {
		return nil, fmt.Errorf("tree path must be specified via -d, TREEBANK_PATH or the config file")
	}

	id, err := strconv.Atoi(source)
	if err != nil {
		return nil, fmt.Errorf("invalid treebank ID: %v", err)
	}

	p := &Pool{}
	defer p.Close()

	repo, err := NewTreeRepository(p, treePath)
	if err != nil {
		return nil, err
	}

	return repo.Read(id)
}
