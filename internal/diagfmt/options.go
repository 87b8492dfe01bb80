package diagfmt

// PrettyOpts control human-readable diagnostic rendering.
type PrettyOpts struct {
	// Color enables ANSI colors for severities and underlines.
	Color bool
	// Context is how many source lines to show around the primary span.
	// Zero still shows the offending line itself.
	Context int
}
