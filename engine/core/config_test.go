package core

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oui.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%q) error: %v", path, err)
		}
		if cfg != DefaultConfig() {
			t.Errorf("LoadConfig(%q) = %+v, want defaults", path, cfg)
		}
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title: demo
width: 800
clear_color: [0, 0, 0, 1]
ui:
  capacity: 128
  layout: layouts/demo.yaml
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	want := DefaultConfig()
	want.Title = "demo"
	want.Width = 800
	want.ClearColor = [4]float32{0, 0, 0, 1}
	want.UI.Capacity = 128
	want.UI.Layout = "layouts/demo.yaml"
	if cfg != want {
		t.Errorf("LoadConfig = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "width: [800\n"},
		{"type", "width: wide\n"},
		{"zero height", "height: 0\n"},
		{"font size", "ui:\n  font_size: -1\n"},
		{"scale", "ui:\n  scale: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("LoadConfig accepted an invalid file")
			}
			if cfg != DefaultConfig() {
				t.Errorf("config on error = %+v, want defaults", cfg)
			}
		})
	}
}
