package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	const doc = `[gen]
table = "tables/nes6502.tab"
out = "opcodes.go"
stubs = "stubs.go"
package = "cpu"
variant = "extended"
registry = "handlers.list"
`
	path := filepath.Join(t.TempDir(), "optab.toml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	want := Config{Gen: GenConfig{
		Table:    "tables/nes6502.tab",
		Out:      "opcodes.go",
		Stubs:    "stubs.go",
		Package:  "cpu",
		Variant:  "extended",
		Registry: "handlers.list",
	}}
	if diff := cmp.Diff(want, loadConfigOrDefault(path)); diff != "" {
		t.Errorf("config differs (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissingImplicit(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if diff := cmp.Diff(Config{}, loadConfigOrDefault("")); diff != "" {
		t.Errorf("missing implicit config is not the zero config:\n%s", diff)
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		vals []string
		want string
	}{
		{[]string{"a", "b"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", ""}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := fallback(tt.vals...); got != tt.want {
			t.Errorf("fallback(%q) = %q, want %q", tt.vals, got, tt.want)
		}
	}
}
