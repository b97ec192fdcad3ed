package content

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var SpecsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed locales/*.po
var LocalesFS embed.FS

// DiskRoot is the directory checked before the embedded copy. Files found
// there override the built-in content, which is what -watch edits.
var DiskRoot = "content"

// Load returns a spec file, preferring the on-disk copy.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return SpecsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanPrefixed(name, "scripts")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func LoadLocale(lang string) ([]byte, error) {
	clean := cleanPrefixed(lang+".po", "locales")
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	data, err := LocalesFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("content: locale %s: %w", lang, err)
	}
	return data, nil
}

func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPath(cleanSpecPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "content/"); ok {
		return after
	}
	return s
}

func cleanPrefixed(path, dir string) string {
	s := cleanSpecPath(path)
	if after, ok := strings.CutPrefix(s, dir+"/"); ok {
		s = after
	}
	return dir + "/" + s
}

func diskPath(clean string) string {
	return filepath.Join(DiskRoot, filepath.FromSlash(clean))
}
