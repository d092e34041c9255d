// Package registry keeps the named rule presets players can pick from.
// Built-in presets register themselves in init(), so the CLI and the menu
// discover them without a hardcoded list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Preset is a named set of rules.
type Preset struct {
	ID    string // Used on the command line, e.g. "classic"
	Title string
	Rules grid.Rules
}

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

// Register adds a preset to the registry.
// Panics if the ID is taken or the rules are invalid.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", p.ID))
	}
	if err := p.Rules.Validate(); err != nil {
		panic(fmt.Sprintf("registry: preset %q: %v", p.ID, err))
	}

	presets[p.ID] = p
}

// List returns all presets, smallest board first, then by target.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Rules, result[j].Rules
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		if a.WinTarget != b.WinTarget {
			return a.WinTarget < b.WinTarget
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("registry: unknown preset %q", id)
	}
	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}
