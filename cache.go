package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drgrib/alfred"
)

// scriptFilter is the document Alfred's script filter consumes. The cache
// file uses the same layout, so the workflow can read it directly.
type scriptFilter struct {
	Items []alfred.Item `json:"items"`
}

// readCachedTitles loads the title set from the previous run. A missing
// cache file means nothing has been seen yet.
func readCachedTitles(cacheFile string) (map[string]bool, error) {
	data, err := os.ReadFile(cacheFile)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var cached scriptFilter
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}

	titles := make(map[string]bool, len(cached.Items))
	for _, item := range cached.Items {
		titles[item.Title] = true
	}
	return titles, nil
}

// newItems keeps the items whose title the previous run had not cached.
// Matching is by title only: a repeated title counts as already seen even
// when the page id differs, and an edited title counts as new.
func newItems(items []alfred.Item, seen map[string]bool) []alfred.Item {
	fresh := make([]alfred.Item, 0, len(items))
	for _, item := range items {
		if !seen[item.Title] {
			fresh = append(fresh, item)
		}
	}
	return fresh
}

// writeCache replaces the cache file with the complete current item set.
func writeCache(cacheFile string, items []alfred.Item) error {
	if items == nil {
		items = []alfred.Item{}
	}
	data, err := json.Marshal(scriptFilter{Items: items})
	if err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}
