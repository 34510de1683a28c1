package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/revelaction/treebank/config"
	"github.com/revelaction/treebank/render"
)

// Option structs for subcommands that have flags
type SentenceOptions struct {
	TreePath string
	NoColor  bool
}

type SearchOptions struct {
	TreePath string
	Treebank *int // nil = all treebanks
	NoColor  bool
	NoPrefix bool
	Limit    int
	Format   string
	JSON     bool
}

type QueryOptions struct {
	TreePath string
	NoColor  bool
	NoPrefix bool
	Format   string
}

type StatOptions struct {
	TreePath string
	Sent     *int // nil = whole treebank
}

type ImportOptions struct {
	From string
	To   string
}

type ExportOptions struct {
	From string
	To   string
}

type LsOptions struct {
	TreePath string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt implements flag.Value for optional integer flags
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

var digitRegex = regexp.MustCompile(`^\d+$`)

// resolveSource classifies a source argument as a .conllu file path or
// a repository treebank ID.
func resolveSource(arg string) (isFile bool, err error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return true, nil
	}

	if !digitRegex.MatchString(arg) {
		return false, fmt.Errorf("source not found and not a valid treebank ID: %s", arg)
	}
	return false, nil
}

// resolveTreePath applies the precedence flag > TREEBANK_PATH > config
// file for the repository location.
func resolveTreePath(current string) string {
	if current != "" {
		return current
	}

	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.TreePath
}

func parseFail(fs *flag.FlagSet, ui UI, err error) error {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(ui.Out)
		fs.Usage()
		return err
	}
	fs.SetOutput(ui.Err)
	fprintErr(ui.Err, err)
	fs.Usage()
	return err
}

func parseParseArgs(args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s parse <file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse a .conllu file, verify the round trip and report malformed blocks.\n")
	}

	if err := fs.Parse(args); err != nil {
		return "", parseFail(fs, ui, err)
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", errors.New("parse command needs exactly one argument: <file>")
	}

	return fs.Arg(0), nil
}

func parseSentenceArgs(args []string, ui UI) (SentenceOptions, string, int, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("TREEBANK_PATH"), "Path to treebank directory or SQLite file")
	fs.StringVar(&opts.TreePath, "d", os.Getenv("TREEBANK_PATH"), "alias for -tree-path")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence [options] <source> <sentenceId>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show a sentence with its word lines and dependency tree.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  <source> can be a .conllu file path or a treebank ID.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", 0, parseFail(fs, ui, err)
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", 0, errors.New("sentence command needs exactly two arguments: <source> <sentenceId>")
	}

	source := fs.Arg(0)
	sentId, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return opts, "", 0, fmt.Errorf("invalid sentenceId: %v", err)
	}

	opts.TreePath = resolveTreePath(opts.TreePath)
	return opts, source, sentId, nil
}

func parseSearchArgs(args []string, ui UI) (SearchOptions, []string, error) {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SearchOptions
	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("TREEBANK_PATH"), "Path to treebank directory or SQLite file")
	fs.StringVar(&opts.TreePath, "d", os.Getenv("TREEBANK_PATH"), "alias for -tree-path")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Disable the treebank/sentence prefix")
	fs.IntVar(&opts.Limit, "n", 200, "Number of candidate sentences per page")
	fs.BoolVar(&opts.JSON, "json", false, "Output matches as JSON")

	treebankFlag := &optionalInt{}
	fs.Var(treebankFlag, "treebank", "Restrict the search to one treebank ID")
	fs.Var(treebankFlag, "b", "alias for -treebank")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Show sentence text (text), the raw block (conllu), the dependency tree (tree) or only matched lemmas (lemma)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s search [options] <pattern words>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Match a pattern against a treebank repository.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  lowercase word = lemma, UPPERCASE word = POS tag, :word = relation, a^b = lemma a governed by lemma b\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, nil, parseFail(fs, ui, err)
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("search command needs pattern words")
	}

	opts.Treebank = treebankFlag.value
	opts.TreePath = resolveTreePath(opts.TreePath)
	if opts.TreePath == "" {
		return opts, nil, errors.New("tree path must be specified via -d, TREEBANK_PATH or the config file")
	}

	return opts, fs.Args(), nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("TREEBANK_PATH"), "Path to treebank directory or SQLite file")
	fs.StringVar(&opts.TreePath, "d", os.Getenv("TREEBANK_PATH"), "alias for -tree-path")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable color output")
	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Disable the treebank/sentence prefix")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Initial output format")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive query mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseFail(fs, ui, err)
	}

	opts.TreePath = resolveTreePath(opts.TreePath)
	if opts.TreePath == "" {
		return opts, errors.New("tree path must be specified via -d, TREEBANK_PATH or the config file")
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("TREEBANK_PATH"), "Path to treebank directory or SQLite file")
	fs.StringVar(&opts.TreePath, "d", os.Getenv("TREEBANK_PATH"), "alias for -tree-path")

	sentFlag := &optionalInt{}
	fs.Var(sentFlag, "sent", "Restrict the statistics to one sentence index")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] <source>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show statistics for a treebank, a file or a single sentence.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseFail(fs, ui, err)
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("stat command needs exactly one argument: <source>")
	}

	opts.Sent = sentFlag.value
	opts.TreePath = resolveTreePath(opts.TreePath)
	return opts, fs.Arg(0), nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.From, "from", "", "Source directory of .conllu files")
	fs.StringVar(&opts.To, "to", "", "Target SQLite database file")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import --from <dir> --to <sqlite_file>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseExportArgs(args []string, ui UI) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.From, "from", "", "Source SQLite database file")
	fs.StringVar(&opts.To, "to", "", "Target directory for .conllu files")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s export --from <sqlite_file> --to <dir>\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseLsArgs(args []string, ui UI) (LsOptions, error) {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LsOptions
	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("TREEBANK_PATH"), "Path to treebank directory or SQLite file")
	fs.StringVar(&opts.TreePath, "d", os.Getenv("TREEBANK_PATH"), "alias for -tree-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s ls [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List treebanks in a repository.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseFail(fs, ui, err)
	}

	opts.TreePath = resolveTreePath(opts.TreePath)
	if opts.TreePath == "" {
		return opts, errors.New("tree path must be specified via -d, TREEBANK_PATH or the config file")
	}

	return opts, nil
}
