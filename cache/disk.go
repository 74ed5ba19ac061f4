package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DiskBackend persists entries as one JSON file per key under a root
// directory. Keys are already stable hex hashes, so they are used as
// filenames directly; two processes sharing the root share entries.
//
// Writes go to a temp file first and are renamed into place, so a crash
// mid-write never leaves a corrupt entry. Files are opened and closed
// per access, never held for the backend's lifetime.
type DiskBackend struct {
	root string
}

// diskEntry is the on-disk shape. Payload stays raw JSON so cache files
// remain inspectable with standard tools.
type diskEntry struct {
	StoredAt time.Time       `json:"stored_at"`
	TTLSec   float64         `json:"ttl_seconds"`
	Payload  json.RawMessage `json:"payload"`
}

// NewDiskBackend creates the root directory if needed and returns a
// backend over it.
func NewDiskBackend(root string) (*DiskBackend, error) {
	if root == "" {
		return nil, errors.New("cache root directory must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &DiskBackend{root: root}, nil
}

func (b *DiskBackend) path(key string) string {
	return filepath.Join(b.root, key+".json")
}

func (b *DiskBackend) Get(_ context.Context, key string) (Entry, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to read cache file: %w", err)
	}

	var de diskEntry
	if err := json.Unmarshal(data, &de); err != nil {
		// A damaged file is unrecoverable; drop it and report a miss so
		// the entry gets refetched.
		_ = os.Remove(b.path(key))
		return Entry{}, false, nil
	}
	return Entry{
		Payload:  de.Payload,
		StoredAt: de.StoredAt,
		TTL:      time.Duration(de.TTLSec * float64(time.Second)),
	}, true, nil
}

func (b *DiskBackend) Put(_ context.Context, key string, entry Entry) error {
	data, err := json.Marshal(diskEntry{
		StoredAt: entry.StoredAt,
		TTLSec:   entry.TTL.Seconds(),
		Payload:  json.RawMessage(entry.Payload),
	})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	tmp := b.path(key) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache temp file: %w", err)
	}
	if err := os.Rename(tmp, b.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to commit cache file: %w", err)
	}
	return nil
}

func (b *DiskBackend) Remove(_ context.Context, key string) error {
	err := os.Remove(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (b *DiskBackend) Clear(_ context.Context) error {
	matches, err := filepath.Glob(filepath.Join(b.root, "*.json"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
