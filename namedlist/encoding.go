package namedlist

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// String renders the list's names in order, e.g. "namedlist[3]{intro, _, faq}"
// where "_" marks an unnamed item. A deferred list that has not been
// realized renders as "namedlist(deferred)"; String never runs a factory.
func (l *List[T]) String() string {
	items := l.items
	if l.src != nil {
		if !l.src.Realized() {
			return "namedlist(deferred)"
		}
		items = l.src.items
	}

	var b strings.Builder
	fmt.Fprintf(&b, "namedlist[%d]{", len(items))
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		if name := l.nameOf(item); name != "" {
			b.WriteString(name)
		} else {
			b.WriteString("_")
		}
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON encodes the items as a JSON array in list order.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return json.Marshal(l.items)
}

// UnmarshalJSON replaces the list's contents with the decoded JSON array.
// The list is realized afterwards; any pending factory is discarded.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("namedlist: decode json: %w", err)
	}
	l.load(items)
	return nil
}

// MarshalYAML encodes the items as a YAML sequence in list order.
func (l *List[T]) MarshalYAML() (any, error) {
	if err := l.realize(); err != nil {
		return nil, err
	}
	return l.items, nil
}

// UnmarshalYAML replaces the list's contents with the decoded YAML sequence.
// The list is realized afterwards; any pending factory is discarded.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf("namedlist: decode yaml: %w", err)
	}
	l.load(items)
	return nil
}

func (l *List[T]) load(items []T) {
	if items == nil {
		items = []T{}
	}
	l.opts = l.opts.withDefaults()
	l.src = nil
	l.items = items
	l.reindex()
}
