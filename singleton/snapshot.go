package singleton

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Entry describes one registered slot.
type Entry struct {
	Type    string `yaml:"type"`
	Kind    Kind   `yaml:"kind"`
	Created bool   `yaml:"created"`
}

// Snapshot is a point-in-time, read-only view of a registry.
// Entries are sorted by type name.
type Snapshot struct {
	RegistryID string  `yaml:"registry_id"`
	Name       string  `yaml:"name,omitempty"`
	Entries    []Entry `yaml:"entries"`
}

// Snapshot captures the current slots without constructing anything.
func (r *Registry) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{Entries: []Entry{}}
	}

	r.mu.RLock()
	entries := make([]Entry, 0, len(r.slots))
	for key, s := range r.slots {
		entries = append(entries, Entry{
			Type:    key.String(),
			Kind:    s.acc.kind(),
			Created: s.acc.created(),
		})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type })

	return Snapshot{RegistryID: r.id, Name: r.name, Entries: entries}
}

// Lookup returns the entry for a type name, as rendered by reflect.Type.String.
func (s Snapshot) Lookup(typeName string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.Type == typeName {
			return e, true
		}
	}
	return Entry{}, false
}

// YAML renders the snapshot for diagnostics output.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
