// Package text looks up translated UI strings from the embedded .po catalogs.
package text

import (
	"fmt"
	"log"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/leonelquinteros/gotext"
)

const DefaultLanguage = "en"

// Catalog is one loaded language. A nil Catalog returns keys untranslated.
type Catalog struct {
	lang string
	po   *gotext.Po
}

func Load(lang string) (*Catalog, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := content.LoadLocale(lang)
	if err != nil {
		return nil, err
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Catalog{lang: lang, po: po}, nil
}

// LoadOrDefault falls back to the default language, then to bare keys.
func LoadOrDefault(lang string) *Catalog {
	c, err := Load(lang)
	if err == nil {
		return c
	}
	log.Printf("[text] warning: %v", err)
	if c, err = Load(DefaultLanguage); err == nil {
		return c
	}
	log.Printf("[text] warning: %v", err)
	return nil
}

// Reload re-reads the catalog in place so holders of the pointer see the
// edit. On error the old strings stay.
func (c *Catalog) Reload() error {
	if c == nil {
		return nil
	}
	fresh, err := Load(c.lang)
	if err != nil {
		return err
	}
	c.po = fresh.po
	return nil
}

func (c *Catalog) Language() string {
	if c == nil {
		return ""
	}
	return c.lang
}

// Get translates key, formatting it with vars when given.
func (c *Catalog) Get(key string, vars ...interface{}) string {
	if c == nil || c.po == nil {
		if len(vars) > 0 {
			return fmt.Sprintf(key, vars...)
		}
		return key
	}
	return c.po.Get(key, vars...)
}

func (c *Catalog) Skill(s skills.Skill) string {
	return c.Get("skill." + s.String())
}
