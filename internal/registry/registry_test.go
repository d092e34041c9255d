package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestBuiltinPresets(t *testing.T) {
	list := List()
	if len(list) < 5 {
		t.Fatalf("List() returned %d presets, want at least 5", len(list))
	}

	seen := map[string]string{}
	for _, p := range list {
		if err := p.Rules.Validate(); err != nil {
			t.Errorf("preset %q: %v", p.ID, err)
		}
		v := p.Rules.Variant()
		if other, dup := seen[v]; dup {
			t.Errorf("presets %q and %q share variant %q", other, p.ID, v)
		}
		seen[v] = p.ID
	}

	if list[0].ID != "mini" {
		t.Errorf("smallest board should come first, got %q", list[0].ID)
	}
}

func TestGet(t *testing.T) {
	p, err := Get("classic")
	if err != nil {
		t.Fatalf("Get(classic) failed: %v", err)
	}
	if p.Rules != grid.DefaultRules() {
		t.Errorf("classic rules = %+v", p.Rules)
	}

	if _, err := Get("nope"); err == nil {
		t.Error("Get(nope) should fail")
	}
	if !Exists("big") || Exists("nope") {
		t.Error("Exists() mismatch")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		p    Preset
	}{
		{"duplicate", Preset{ID: "classic", Rules: grid.DefaultRules()}},
		{"invalid rules", Preset{ID: "broken", Rules: grid.Rules{Size: 4, WinTarget: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tt.p)
		})
	}
}
