package tile

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// CacheCapacity sets how many downloaded tiles are kept on disk. Change
// it before the first remote tile loads.
var CacheCapacity = 100

// downloadCache spills downloaded tiles to a temp dir so a grid that is
// scrolled back and forth does not refetch them. Entries beyond the
// capacity are evicted oldest-first together with their files.
type downloadCache struct {
	mu      sync.Mutex
	fileDir string
	cache   *lruCache[string]
}

var downloads = &downloadCache{}

func (dc *downloadCache) init() error {
	if dc.cache != nil {
		return nil
	}
	dir, err := os.MkdirTemp("", "flowgrid-tiles")
	if err != nil {
		return err
	}
	dc.fileDir = dir
	dc.cache = newLruCache[string](CacheCapacity, func(key, path string) {
		os.Remove(path)
	})
	return nil
}

func (dc *downloadCache) get(url string) ([]byte, error) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if dc.cache == nil {
		return nil, errors.New("tile: empty cache")
	}
	path := dc.cache.Get(url)
	if path == "" {
		return nil, errors.New("tile: not cached")
	}
	return os.ReadFile(path)
}

func (dc *downloadCache) put(url string, buf []byte) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if err := dc.init(); err != nil {
		return err
	}

	sum := sha1.Sum([]byte(url))
	path := filepath.Join(dc.fileDir, hex.EncodeToString(sum[:]))
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		return err
	}
	dc.cache.Put(url, path)
	return nil
}

// ClearCache drops every cached download and its backing file.
func ClearCache() {
	downloads.mu.Lock()
	defer downloads.mu.Unlock()
	if downloads.cache != nil {
		downloads.cache.Clear()
	}
}
