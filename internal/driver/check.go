package driver

import (
	"tank/internal/diag"
)

// CheckResult is the outcome of checking one template: parse it, keep the
// diagnostics, and report whether generation may proceed.
type CheckResult struct {
	Path   string
	Parse  *ParseResult
	Cached bool
}

// Clean reports whether the template may go to generation: no
// Error-severity diagnostics. Warnings alone never block.
func (r *CheckResult) Clean() bool {
	if r.Parse == nil {
		// A cache hit for a clean file carries no parse artifacts.
		return r.Cached
	}
	return !r.Parse.Bag.HasErrors()
}

// Bag returns the diagnostics, which are empty for a clean cache hit.
func (r *CheckResult) Bag() *diag.Bag {
	if r.Parse == nil {
		return diag.NewBag(0)
	}
	return r.Parse.Bag
}

// Check parses one template with config-seeded symbols. cache may be nil;
// when given, a clean unchanged template is skipped and reported as cached.
// The error tier is fatal only: I/O trouble or a symbol table violation.
func Check(path string, config map[string]string, maxDiagnostics int, cache *CheckCache) (*CheckResult, error) {
	if cache != nil {
		if hit, err := cache.LookupClean(path); err == nil && hit {
			return &CheckResult{Path: path, Cached: true}, nil
		}
	}

	parsed, err := ParseSeeded(path, config, maxDiagnostics)
	if err != nil {
		return nil, err
	}

	res := &CheckResult{Path: path, Parse: parsed}
	if cache != nil && res.Clean() {
		// Remember clean outcomes only; errors must reprint next run.
		_ = cache.StoreClean(path, parsed.File.Hash)
	}
	return res, nil
}
