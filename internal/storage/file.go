package storage

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// File is a Storage that keeps each key in its own file under a directory.
// Writes go through a temp file and rename so a crashed write never leaves a
// half-written value behind. Two processes (or two browser-tab equivalents)
// writing the same key concurrently can still clobber each other; that race is
// accepted for a single-user store and not locked against.
type File struct {
	dir string
}

// NewFile creates the directory if needed and returns a file-backed Storage.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// keyPath hex-encodes the key so arbitrary key strings stay filesystem-safe.
func (f *File) keyPath(key string) string {
	return filepath.Join(f.dir, hex.EncodeToString([]byte(key))+".json")
}

func (f *File) Get(key string) (string, bool) {
	b, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (f *File) Set(key, value string) error {
	path := f.keyPath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

func (f *File) Remove(key string) error {
	err := os.Remove(f.keyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
