package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[view]
tabSize = 4
wordWrap = "wordWrapColumn"
wrappingColumn = 80

[logging]
level = "debug"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	view, ok := config["view"].(map[string]any)
	if !ok {
		t.Fatal("expected view to be a map")
	}
	if view["tabSize"] != int64(4) {
		t.Errorf("tabSize = %v (%T), want 4", view["tabSize"], view["tabSize"])
	}
	if view["wordWrap"] != "wordWrapColumn" {
		t.Errorf("wordWrap = %v", view["wordWrap"])
	}
	if val, ok := GetByPath(config, "logging.level"); !ok || val != "debug" {
		t.Errorf("logging.level = %v", val)
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nonexistent.toml").Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[view
tabSize = 4
`)

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line == 0 {
		t.Error("Line not reported")
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := (&TOMLLoader{}).LoadFromReader(strings.NewReader("tabSize = 2\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["tabSize"] != int64(2) {
		t.Errorf("tabSize = %v, want 2", config["tabSize"])
	}
}

func TestTOMLLoader_Includes(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/cfg/viewlines.toml", `
"@include" = ["base.toml"]

[view]
tabSize = 2
`)
	memfs.AddFile("/cfg/base.toml", `
[view]
tabSize = 8
wordWrap = "on"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/cfg/viewlines.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, _ := GetByPath(config, "view.tabSize"); val != int64(2) {
		t.Errorf("view.tabSize = %v, want 2 from the including file", val)
	}
	if val, _ := GetByPath(config, "view.wordWrap"); val != "on" {
		t.Errorf("view.wordWrap = %v, want on from the include", val)
	}
	if _, ok := config["@include"]; ok {
		t.Error("@include key should be removed")
	}
}

func TestTOMLLoader_IncludeCycle(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = "b.toml"`)
	memfs.AddFile("/b.toml", `"@include" = "a.toml"`)

	_, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load()
	if !errors.Is(err, ErrIncludeDepthExceeded) {
		t.Errorf("err = %v, want ErrIncludeDepthExceeded", err)
	}
}
