package analyzer

import (
	"github.com/mvp-joe/pylayout/internal/layout"
	"github.com/mvp-joe/pylayout/internal/pysrc"
)

// FileResult is the outcome of analyzing one file. A file that could not be
// read or parsed carries Err and an empty issue list — downstream the issue
// list alone cannot distinguish it from a clean file, so callers needing
// that distinction must check Err.
type FileResult struct {
	Path   string
	Issues []layout.Issue
	Err    error
}

// Analyzer runs the parse → classify → check pipeline for single files. It
// holds no per-file state, so one Analyzer can serve many files, including
// concurrently.
type Analyzer struct {
	parser *pysrc.Parser
}

// New creates an Analyzer with a fresh Python parser.
func New() *Analyzer {
	return &Analyzer{parser: pysrc.NewParser()}
}

// AnalyzeFile lints one file on disk.
func (a *Analyzer) AnalyzeFile(path string) FileResult {
	mod, err := a.parser.ParseFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	return FileResult{Path: path, Issues: layout.Build(mod.Statements).CheckOrder()}
}

// AnalyzeSource lints in-memory source. path is used for reporting only.
func (a *Analyzer) AnalyzeSource(path string, source []byte) FileResult {
	mod, err := a.parser.Parse(path, source)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	return FileResult{Path: path, Issues: layout.Build(mod.Statements).CheckOrder()}
}

// Tree parses one file and returns its classified declaration tree without
// checking it. Used by the tree command and verbose output.
func (a *Analyzer) Tree(path string) (*layout.DeclNode, error) {
	mod, err := a.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return layout.Build(mod.Statements), nil
}
