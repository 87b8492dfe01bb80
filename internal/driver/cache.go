package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"tank/internal/source"
)

// Bump when the payload format changes; stale schemas read as misses.
const checkCacheSchemaVersion uint16 = 1

// CheckCache remembers which template contents already checked clean, so
// repeated runs skip reparsing unchanged files. Keyed by sha256 of the
// normalized content; payloads live under the cache dir as msgpack.
// Thread-safe for concurrent access.
type CheckCache struct {
	mu  sync.RWMutex
	dir string
}

// checkPayload is the on-disk record for one clean check.
type checkPayload struct {
	Schema    uint16
	Path      string
	Hash      [32]byte
	CheckedAt int64
}

// OpenCheckCache initializes the cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenCheckCache(app string) (*CheckCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenCheckCacheAt(filepath.Join(base, app))
}

// OpenCheckCacheAt initializes the cache at an explicit directory.
func OpenCheckCacheAt(dir string) (*CheckCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &CheckCache{dir: dir}, nil
}

func (c *CheckCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// StoreClean records that the content currently at path checked clean.
func (c *CheckCache) StoreClean(path string, hash [32]byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(hash)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	payload := checkPayload{
		Schema:    checkCacheSchemaVersion,
		Path:      path,
		Hash:      hash,
		CheckedAt: time.Now().Unix(),
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic swap so readers never see a torn payload.
	return os.Rename(f.Name(), p)
}

// LookupClean reports whether the content currently at path has a clean
// check on record. Any cache trouble reads as a miss, never a failure.
func (c *CheckCache) LookupClean(path string) (bool, error) {
	if c == nil {
		return false, nil
	}

	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	// Hash what the parser would see, not the raw disk bytes.
	content, _ = source.Normalize(content)
	hash := sha256.Sum256(content)

	c.mu.RLock()
	defer c.mu.RUnlock()

	// #nosec G304 -- cache path is derived from the content hash
	raw, err := os.ReadFile(c.pathFor(hash))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	var payload checkPayload
	if err := msgpack.Unmarshal(raw, &payload); err != nil {
		return false, nil
	}
	if payload.Schema != checkCacheSchemaVersion || payload.Hash != hash {
		return false, nil
	}
	return true, nil
}
