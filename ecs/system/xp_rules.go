package system

import (
	"fmt"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

type xpAward struct {
	Skill skills.Skill
	XP    float32
}

// xpRules runs the compiled rules script once per event. The script reads
// the global `event` and leaves its result in `awards`.
type xpRules struct {
	compiled *tengo.Compiled
}

// CheckXPRules compiles the current rules script without installing it.
func CheckXPRules() error {
	_, err := loadXPRules()
	return err
}

func loadXPRules() (*xpRules, error) {
	src, err := content.LoadScript(content.XPRulesFile)
	if err != nil {
		return nil, err
	}
	return newXPRules(src)
}

func newXPRules(src []byte) (*xpRules, error) {
	script := tengo.NewScript(src)
	_ = script.Add("event", map[string]interface{}{"kind": "", "amount": 0.0})
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("xp rules: compile: %w", err)
	}
	// Globals only hold values after a run.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("xp rules: probe run: %w", err)
	}
	if !compiled.IsDefined("awards") {
		return nil, fmt.Errorf("xp rules: script does not define awards")
	}
	return &xpRules{compiled: compiled}, nil
}

func (r *xpRules) awards(ev state.XPEvent) ([]xpAward, error) {
	if r == nil || r.compiled == nil {
		return nil, fmt.Errorf("xp rules: not loaded")
	}
	if err := r.compiled.Set("event", map[string]interface{}{"kind": ev.Kind, "amount": ev.Amount}); err != nil {
		return nil, err
	}
	if err := r.compiled.Run(); err != nil {
		return nil, fmt.Errorf("xp rules: %s: %w", ev.Kind, err)
	}

	var out []xpAward
	for _, raw := range r.compiled.Get("awards").Array() {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("xp rules: %s: award is %T, not a map", ev.Kind, raw)
		}
		name, _ := m["skill"].(string)
		s, err := skills.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("xp rules: %s: %w", ev.Kind, err)
		}
		var xp float64
		switch v := m["xp"].(type) {
		case float64:
			xp = v
		case int64:
			xp = float64(v)
		default:
			return nil, fmt.Errorf("xp rules: %s: xp is %T", ev.Kind, m["xp"])
		}
		out = append(out, xpAward{Skill: s, XP: float32(xp)})
	}
	return out, nil
}
