// Package storage persists the final item list as the JSON document a
// static front end reads.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/upscprep/harvester/internal/digest"
)

// WriteItems replaces path with the pretty-printed JSON array of items.
// Non-ASCII text is written as-is and HTML characters are not escaped,
// so the file stays human-readable. A nil slice still serializes as [].
func WriteItems(path string, items []digest.Item) error {
	if items == nil {
		items = []digest.Item{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadItems loads a previously written item list.
func ReadItems(path string) ([]digest.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []digest.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return items, nil
}
