package utils

import (
	"runtime"
	"testing"
)

func TestGetAbsolutePath(t *testing.T) {
	absolutePath := "/test/airports.json"
	if runtime.GOOS == "windows" {
		absolutePath = "C:\\test\\airports.json"
	}

	tests := []struct {
		name     string
		path     string
		baseDir  string
		expected string
	}{
		{"already absolute", absolutePath, "/etc/airports", absolutePath},
		{"relative", "seed/airports.json", "/etc/airports", "/etc/airports/seed/airports.json"},
		{"dot", "./airports.json", "/etc/airports", "/etc/airports/airports.json"},
		{"double dot", "../airports.json", "/etc/airports", "/etc/airports.json"},
		{"empty", "", "/etc/airports", "/etc/airports"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == "windows" && tt.name != "already absolute" {
				t.Skip("unix paths")
			}
			if got := GetAbsolutePath(tt.path, tt.baseDir); got != tt.expected {
				t.Errorf("GetAbsolutePath(%q, %q) = %s, want %s", tt.path, tt.baseDir, got, tt.expected)
			}
		})
	}
}

func TestDataFormat(t *testing.T) {
	tests := map[string]string{
		"airports.json": "json",
		"airports.yaml": "yaml",
		"AIRPORTS.YML":  "yaml",
		"airports":      "json",
		"airports.csv":  "json",
	}

	for path, expected := range tests {
		if got := DataFormat(path); got != expected {
			t.Errorf("DataFormat(%q) = %s, want %s", path, got, expected)
		}
	}
}
