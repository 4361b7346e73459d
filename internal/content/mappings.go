package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// CauseMapping is one cause id → plausibility entry.
type CauseMapping struct {
	CauseID string
	Level   Plausibility
}

// CauseMappings is a scenario's answer key in document order.
type CauseMappings []CauseMapping

// Level returns the plausibility of id. Entries with an empty level count as
// absent.
func (m CauseMappings) Level(id string) (Plausibility, bool) {
	for _, e := range m {
		if e.CauseID == id {
			return e.Level, e.Level != ""
		}
	}
	return "", false
}

// IDs returns the mapped cause ids in order.
func (m CauseMappings) IDs() []string {
	ids := make([]string, len(m))
	for i, e := range m {
		ids[i] = e.CauseID
	}
	return ids
}

func (m CauseMappings) Len() int { return len(m) }

// Relevant returns ids whose level is anything but unlikely.
func (m CauseMappings) Relevant() []string {
	return m.filter(func(p Plausibility) bool { return p != "" && !p.IsDistractor() })
}

// HighlyPlausible returns ids mapped to very_likely or likely.
func (m CauseMappings) HighlyPlausible() []string {
	return m.filter(Plausibility.IsHigh)
}

func (m CauseMappings) filter(keep func(Plausibility) bool) []string {
	ids := []string{}
	for _, e := range m {
		if keep(e.Level) {
			ids = append(ids, e.CauseID)
		}
	}
	return ids
}

// MarshalJSON writes the mapping as an object in entry order.
func (m CauseMappings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.CauseID)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(string(e.Level))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of id → level, keeping key order.
func (m *CauseMappings) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("causeMappings: expected object, got %v", tok)
	}

	out := CauseMappings{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("causeMappings: expected key, got %v", tok)
		}
		var level string
		if err := dec.Decode(&level); err != nil {
			return fmt.Errorf("causeMappings[%s]: %w", key, err)
		}
		if err := out.add(key, level); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = out
	return nil
}

// UnmarshalYAML reads a mapping node of id → level, keeping key order.
func (m *CauseMappings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*m = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("causeMappings: line %d: expected mapping", node.Line)
	}

	out := CauseMappings{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		var level string
		if err := v.Decode(&level); err != nil {
			return fmt.Errorf("causeMappings[%s]: %w", k.Value, err)
		}
		if err := out.add(k.Value, level); err != nil {
			return err
		}
	}
	*m = out
	return nil
}

func (m *CauseMappings) add(id, level string) error {
	if slices.ContainsFunc(*m, func(e CauseMapping) bool { return e.CauseID == id }) {
		return fmt.Errorf("causeMappings: duplicate cause %q", id)
	}
	*m = append(*m, CauseMapping{CauseID: id, Level: Plausibility(level)})
	return nil
}
