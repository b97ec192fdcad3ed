package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WaterFace/wizards-spiral/content"
)

func withDiskRoot(t *testing.T) string {
	t.Helper()
	old := content.DiskRoot
	content.DiskRoot = t.TempDir()
	t.Cleanup(func() { content.DiskRoot = old })
	return content.DiskRoot
}

func TestCheckBuiltInContent(t *testing.T) {
	withDiskRoot(t)
	var out bytes.Buffer
	if !check(&out) {
		t.Fatalf("expected built-in content to pass:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "0 errors") {
		t.Fatalf("expected a clean summary:\n%s", out.String())
	}
}

func TestCheckReportsBrokenOverrides(t *testing.T) {
	tests := map[string]struct {
		file string
		data string
	}{
		"unknown start room": {content.ConfigFile, "start_room: Nowhere\n"},
		"broken script":      {filepath.Join("scripts", "xp_rules.tengo"), "awards := ["},
		"bad room link":      {content.RoomsFile, "rooms:\n  - name: A\n    rect: {x: 0, y: 0, w: 10, h: 10}\n    north: B\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			root := withDiskRoot(t)
			path := filepath.Join(root, tc.file)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(tc.data), 0o644); err != nil {
				t.Fatal(err)
			}
			var out bytes.Buffer
			if check(&out) {
				t.Fatalf("expected check to fail:\n%s", out.String())
			}
		})
	}
}
