package driver

import (
	"fmt"

	"fortio.org/safecast"

	"tank/internal/ast"
	"tank/internal/diag"
	"tank/internal/lexer"
	"tank/internal/parser"
	"tank/internal/source"
	"tank/internal/symbols"
)

// ParseResult is one template parsed to a tree, with everything the
// generator needs afterwards.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Root    ast.NodeID
	Symbols *symbols.Table
	Bag     *diag.Bag
}

// Parse loads a template from disk and parses it with an empty symbol
// table. The returned error is fatal: I/O failure or a symbol table
// violation; syntax problems are in the bag.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	return ParseSeeded(path, nil, maxDiagnostics)
}

// ParseSeeded is Parse with Global symbols pre-seeded from an external
// configuration mapping.
func ParseSeeded(path string, config map[string]string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return parseFile(fs, fileID, config, maxDiagnostics)
}

// ParseSource parses an in-memory template, for tests and stdin.
func ParseSource(name string, content []byte, config map[string]string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, config, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, config map[string]string, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	reporterAdapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporterAdapter.Reporter()})

	var syms *symbols.Table
	if config != nil {
		syms = symbols.FromConfig(config)
	} else {
		syms = symbols.NewTable()
	}

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result, err := parser.ParseTemplate(lx, syms, parser.Options{
		Reporter:  &diag.BagReporter{Bag: bag},
		MaxErrors: maxErrors,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    result.Tree,
		Root:    result.Root,
		Symbols: result.Symbols,
		Bag:     bag,
	}, nil
}
