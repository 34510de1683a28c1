package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/treebank/match"
	"github.com/revelaction/treebank/ud"
)

const (
	indentStep    = "    "
	Defaultformat = "text"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"

	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "conllu", "tree", "lemma"}
}

type Renderer struct {
	HasColor bool

	HasPrefix bool

	// Format determines how a matched sentence is printed
	//
	// text: the sentence with matched words highlighted
	// conllu: the raw CoNLL-U block
	// tree: the dependency tree, one word per line, indented by depth
	// lemma: only the lemmas of the matched words
	Format string

	TreebankNames map[int]string
}

func NewRenderer() *Renderer {
	return &Renderer{TreebankNames: map[int]string{}}
}

func (r *Renderer) AddTreebankName(id int, name string) {
	r.TreebankNames[id] = name
}

// Match prints the given matches in the current Format.
func (r *Renderer) Match(matches []*match.TreeMatch) {
	for _, m := range matches {
		prefix := r.buildPrefix(m)

		var text string
		switch r.Format {
		case "text":
			text = r.SentenceString(m)
		case "conllu":
			text = m.Tree.String()
		case "tree":
			tree, err := r.TreeString(m.Tree)
			if err != nil {
				fmt.Fprintf(os.Stdout, "%s%v\n", prefix, err)
				continue
			}
			text = tree
		case "lemma":
			text = r.LemmaString(m)
		}

		fmt.Fprintf(os.Stdout, "%s%s\n", prefix, text)
	}
}

// Sentence prints the words of the tree with a prefix, no highlighting.
func (r *Renderer) Sentence(tree *ud.Tree, prefix string) {
	text := r.SentenceString(&match.TreeMatch{Tree: tree})
	fmt.Fprintf(os.Stdout, "%s%s\n", prefix, text)
}

// SentenceString returns the word forms of the matched tree in source
// order, space-joined, with the matched keys highlighted when color is
// on. Unlike Tree.Sentence the case of the forms is kept, this is
// display output.
func (r *Renderer) SentenceString(m *match.TreeMatch) string {
	forms := make([]string, 0, len(m.Tree.Keys))
	for _, key := range m.Tree.Keys {
		forms = append(forms, r.colorKey(m.Tree.Nodes[key].Form, key, m.Keys))
	}

	return strings.Join(forms, " ")
}

// TreeString renders the dependency tree rooted at the real root, one
// word per line, children indented under their head in edge order.
func (r *Renderer) TreeString(tree *ud.Tree) (string, error) {
	root, err := tree.RealRoot()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	visited := make(map[string]bool)
	r.writeSubtree(&b, tree, root, 0, visited)

	return strings.TrimSuffix(b.String(), "\n"), nil
}

// writeSubtree walks down edges only. The visited guard keeps a
// malformed cyclic block from looping forever.
func (r *Renderer) writeSubtree(b *strings.Builder, tree *ud.Tree, key string, depth int, visited map[string]bool) {
	if visited[key] {
		return
	}
	visited[key] = true

	node := tree.Nodes[key]
	deprel := node.Deprel
	if r.HasColor {
		deprel = Yellow256 + deprel + Off
	}

	fmt.Fprintf(b, "%s%s %s (%s)\n", strings.Repeat(indentStep, depth), deprel, node.Form, node.Upos)

	for _, child := range tree.Children(key) {
		r.writeSubtree(b, tree, child, depth+1, visited)
	}
}

// LemmaString renders only the matched words (the lemma field).
func (r *Renderer) LemmaString(m *match.TreeMatch) string {
	lemmas := []string{}
	for _, key := range m.Keys {
		lemmas = append(lemmas, m.Tree.Nodes[key].Lemma)
	}

	return strings.Join(lemmas, " ")
}

func (r *Renderer) colorKey(form, key string, matched []string) string {
	if !r.HasColor {
		return form
	}

	for _, mk := range matched {
		if mk == key {
			return Green256 + form + Off
		}
	}

	return form
}

func (r *Renderer) buildPrefix(m *match.TreeMatch) string {
	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %5d:%2d] 🌲 ", r.name(m.TreebankId), m.SentenceId, len(m.Keys))
}

func (r *Renderer) name(id int) string {
	name := r.TreebankNames[id]
	var part string
	if len(name) <= 20 {
		part = fmt.Sprintf("%-20s", name)
	} else {
		part = name[:20]
	}

	if !r.HasColor {
		return part
	}
	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one,
// following the SupportedFormats() order.
func (r *Renderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
