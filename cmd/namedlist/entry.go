package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-namedlist/namedlist"
)

// entry is one element of the YAML document.
type entry struct {
	Key   string         `yaml:"name"`
	Title string         `yaml:"title,omitempty"`
	Meta  map[string]any `yaml:"meta,omitempty"`
}

func (e *entry) Name() string { return e.Key }

// loadEntries returns a deferred list backed by path. The file is opened by
// the first command that needs the entries.
func loadEntries(path string) *namedlist.List[*entry] {
	return namedlist.Lazy(func() ([]*entry, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var entries []*entry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return entries, nil
	})
}

func writeEntries(w io.Writer, entries []*entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}
