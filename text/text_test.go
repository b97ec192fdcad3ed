package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/skills"
)

func TestCatalogLookups(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		vars []interface{}
		want string
	}{
		{"en", "menu.new_game", nil, "New Game"},
		{"en", "hud.cycle", []interface{}{3}, "Cycle 3"},
		{"fr", "menu.quit", nil, "Quitter"},
		{"en", "no.such.key", nil, "no.such.key"},
	}
	for _, tc := range tests {
		t.Run(tc.lang+"/"+tc.key, func(t *testing.T) {
			c, err := Load(tc.lang)
			if err != nil {
				t.Fatalf("Load(%s): %v", tc.lang, err)
			}
			if got := c.Get(tc.key, tc.vars...); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSkillNames(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Skill(skills.Healing); got != "Healing" {
		t.Fatalf("expected Healing, got %q", got)
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	c := LoadOrDefault("xx")
	if c.Language() != DefaultLanguage {
		t.Fatalf("expected fallback to %s, got %q", DefaultLanguage, c.Language())
	}
}

func TestNilCatalogFormatsKey(t *testing.T) {
	var c *Catalog
	if got := c.Get("lv %d", 4); got != "lv 4" {
		t.Fatalf("got %q", got)
	}
}

func TestReloadPicksUpDiskEdit(t *testing.T) {
	c, err := Load("en")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	old := content.DiskRoot
	content.DiskRoot = t.TempDir()
	defer func() { content.DiskRoot = old }()

	dir := filepath.Join(content.DiskRoot, "locales")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	po := "msgid \"\"\nmsgstr \"\"\n\"Language: en\\n\"\n\nmsgid \"menu.quit\"\nmsgstr \"Leave\"\n"
	if err := os.WriteFile(filepath.Join(dir, "en.po"), []byte(po), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := c.Get("menu.quit"); got != "Leave" {
		t.Fatalf("expected edited string, got %q", got)
	}
}
