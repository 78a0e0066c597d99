package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/viewlines/internal/config"
)

func TestConfigSources(t *testing.T) {
	tests := []struct {
		path string
		want config.Sources
	}{
		{"", config.Sources{EnvPrefix: config.DefaultEnvPrefix}},
		{"v.toml", config.Sources{TOMLPath: "v.toml", EnvPrefix: config.DefaultEnvPrefix}},
		{"v.YAML", config.Sources{YAMLPath: "v.YAML", EnvPrefix: config.DefaultEnvPrefix}},
		{"v.yml", config.Sources{YAMLPath: "v.yml", EnvPrefix: config.DefaultEnvPrefix}},
		{"viewlinesrc", config.Sources{TOMLPath: "viewlinesrc", EnvPrefix: config.DefaultEnvPrefix}},
	}
	for _, tt := range tests {
		got := configSources(tt.path)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("configSources(%q) mismatch (-want +got):\n%s", tt.path, diff)
		}
	}
}
