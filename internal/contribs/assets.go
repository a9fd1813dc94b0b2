package contribs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// AssetStore serves the pre-rendered contribution SVGs from a directory with
// an in-memory cache. A watcher drops cached entries when the files change on
// disk, so re-exported SVGs show up without a restart.
type AssetStore struct {
	dir     string
	log     *zap.Logger
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	cache map[string]string
}

// NewAssetStore opens the store over dir. The watcher is best-effort: if it
// cannot be created the store still works, just without invalidation.
func NewAssetStore(dir string, log *zap.Logger) *AssetStore {
	if log == nil {
		log = zap.NewNop()
	}
	s := &AssetStore{dir: dir, log: log, cache: make(map[string]string)}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("asset watcher unavailable, cache will not invalidate", zap.Error(err))
		return s
	}
	if err := watcher.Add(dir); err != nil {
		log.Warn("cannot watch asset dir", zap.String("dir", dir), zap.Error(err))
		watcher.Close()
		return s
	}
	s.watcher = watcher
	go s.watch()
	return s
}

func (s *AssetStore) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				name := filepath.Base(event.Name)
				s.mu.Lock()
				delete(s.cache, name)
				s.mu.Unlock()
				s.log.Debug("asset cache invalidated", zap.String("asset", name))
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("asset watcher error", zap.Error(err))
		}
	}
}

// Get returns the asset's contents, reading from disk on a cache miss.
// A missing file is an error; the viewer treats it as its fallback trigger.
func (s *AssetStore) Get(name string) (string, error) {
	s.mu.Lock()
	if v, ok := s.cache[name]; ok {
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read asset %s: %w", name, err)
	}

	s.mu.Lock()
	s.cache[name] = string(b)
	s.mu.Unlock()
	return string(b), nil
}

// Close stops the watcher.
func (s *AssetStore) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
