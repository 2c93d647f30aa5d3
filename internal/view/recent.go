package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"storefront/internal/client"
)

// MaxRecentlyViewed caps the recently viewed history.
const MaxRecentlyViewed = 10

// RecentlyViewed keeps the recently viewed products in a JSON file.
type RecentlyViewed struct {
	path string
}

func NewRecentlyViewed(path string) *RecentlyViewed {
	return &RecentlyViewed{path: path}
}

// List returns the history, most recent first. A missing file is an empty history.
func (r *RecentlyViewed) List() ([]client.Product, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read recently viewed: %w", err)
	}
	var items []client.Product
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode recently viewed: %w", err)
	}
	return items, nil
}

// Add moves p to the front, dropping any earlier entry for the same product.
// Products without an id are ignored.
func (r *RecentlyViewed) Add(p client.Product) error {
	id := ProductID(&p)
	if id == 0 {
		return nil
	}
	items, err := r.List()
	if err != nil {
		// Start over rather than refuse to record.
		items = nil
	}

	out := make([]client.Product, 0, MaxRecentlyViewed)
	out = append(out, p)
	for i := range items {
		if len(out) == MaxRecentlyViewed {
			break
		}
		if ProductID(&items[i]) == id {
			continue
		}
		out = append(out, items[i])
	}
	return r.write(out)
}

func (r *RecentlyViewed) write(items []client.Product) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode recently viewed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create recently viewed dir: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write recently viewed: %w", err)
	}
	return os.Rename(tmp, r.path)
}
