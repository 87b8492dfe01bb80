package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tank/internal/diag"
	"tank/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	markColor = color.New(color.FgGreen)
)

// Pretty renders a bag of diagnostics for humans. For each diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY> [<ID>]: <message>
//	   <line number> | <source line>
//	                 | ^~~~
//
// then any notes, indented. Call bag.Sort() first if the output must be
// spatially ordered; discovery order is kept otherwise.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		f.Path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)

	printContext(w, f, fs, d.Primary, opts)

	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		nstart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", nf.Path, nstart.Line, nstart.Col, n.Msg)
	}
}

func printContext(w io.Writer, f *source.File, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)

	firstLine := start.Line
	if opts.Context > 0 && firstLine > uint32(opts.Context) {
		firstLine -= uint32(opts.Context)
	} else if opts.Context > 0 {
		firstLine = 1
	}

	for lineNum := firstLine; lineNum <= start.Line; lineNum++ {
		line := f.GetLine(lineNum)
		fmt.Fprintf(w, "  %4d | %s\n", lineNum, line)
	}

	// Underline the span on its first line.
	width := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		width = end.Col - start.Col
	}
	underline := "^" + strings.Repeat("~", int(width-1))
	if opts.Color {
		underline = markColor.Sprint(underline)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", int(start.Col-1)), underline)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}
