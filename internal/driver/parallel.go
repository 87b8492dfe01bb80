package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// listTemplates returns the sorted list of *.tank files under dir.
func listTemplates(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tank") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sorted for a deterministic report order.
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.tank template under dir in parallel. Each file
// gets its own parser, symbol table, and bag; nothing is shared between
// them. Results come back in path order. A fatal failure in any file stops
// the group.
func CheckDir(ctx context.Context, dir string, config map[string]string, maxDiagnostics, jobs int, cache *CheckCache) ([]*CheckResult, error) {
	files, err := listTemplates(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Per-index slots: each goroutine owns its own, no mutex needed.
	results := make([]*CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Check(path, config, maxDiagnostics, cache)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
