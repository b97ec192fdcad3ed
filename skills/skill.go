package skills

import (
	"fmt"
	"strings"
)

type Skill int

const (
	Armor Skill = iota
	Sword
	Shield
	Pants
	Mirror
	Healing
	Speed
	skillCount
)

var skillNames = [skillCount]string{"armor", "sword", "shield", "pants", "mirror", "healing", "speed"}

// All returns every skill in ledger order.
func All() []Skill {
	out := make([]Skill, 0, skillCount)
	for s := Skill(0); s < skillCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s Skill) Valid() bool {
	return s >= 0 && s < skillCount
}

// String returns the lowercase name used in save keys and content files.
func (s Skill) String() string {
	if !s.Valid() {
		return fmt.Sprintf("skill(%d)", int(s))
	}
	return skillNames[s]
}

// Parse resolves a skill name, ignoring case.
func Parse(name string) (Skill, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range skillNames {
		if n == name {
			return Skill(i), nil
		}
	}
	return 0, fmt.Errorf("skills: unknown skill %q", name)
}

func (s Skill) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("skills: invalid skill %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Skill) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
