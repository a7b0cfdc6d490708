package metadata

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Marshal encodes m as indented JSON with a trailing newline. Nil
// collections are written as empty arrays so the output always loads.
func Marshal(m *Metadata) ([]byte, error) {
	data, err := json.MarshalIndent(normalized(m), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	return append(data, '\n'), nil
}

// Write encodes m and writes it to path.
func Write(path string, m *Metadata) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata to %s: %w", path, err)
	}
	return nil
}

func normalized(m *Metadata) *Metadata {
	out := *m
	if out.Distributions == nil {
		out.Distributions = []Distribution{}
	}
	out.RecordSets = make([]RecordSet, len(m.RecordSets))
	for i, rs := range m.RecordSets {
		if rs.Fields == nil {
			rs.Fields = []Field{}
		}
		out.RecordSets[i] = rs
	}
	return &out
}
