package savedata

import (
	"errors"
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("savedata: not found")

const (
	saveObject   = "save"
	saveProperty = "slot0"
)

// Store is the raw key/value backend behind the codec.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// GdataStore persists the save slot in the platform data directory.
type GdataStore struct {
	m *gdata.Manager
}

func OpenGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("savedata: open gdata: %w", err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Load() ([]byte, error) {
	if s == nil || s.m == nil {
		return nil, ErrNotFound
	}
	if !s.m.ObjectPropExists(saveObject, saveProperty) {
		return nil, ErrNotFound
	}
	return s.m.LoadObjectProp(saveObject, saveProperty)
}

func (s *GdataStore) Save(data []byte) error {
	if s == nil || s.m == nil {
		return nil
	}
	return s.m.SaveObjectProp(saveObject, saveProperty, data)
}

// MemoryStore keeps the slot in memory. Used when no data directory is
// available and in tests.
type MemoryStore struct {
	data []byte
}

func (s *MemoryStore) Load() ([]byte, error) {
	if s == nil || s.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryStore) Save(data []byte) error {
	if s == nil {
		return nil
	}
	s.data = append([]byte(nil), data...)
	return nil
}

// Load reads the save slot. A missing slot is not an error: found is false
// and the zero SaveData is returned. A corrupt slot is reported but the zero
// SaveData is still usable.
func Load(store Store) (data SaveData, found bool, err error) {
	if store == nil {
		return SaveData{}, false, nil
	}
	raw, err := store.Load()
	if errors.Is(err, ErrNotFound) {
		log.Printf("[savedata] no save data present")
		return SaveData{}, false, nil
	}
	if err != nil {
		return SaveData{}, false, fmt.Errorf("savedata: load: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return SaveData{}, false, fmt.Errorf("savedata: unmarshal: %w", err)
	}
	log.Printf("[savedata] loaded save data (cycle %d)", data.Cycles)
	return data, true, nil
}

func Save(store Store, data SaveData) error {
	if store == nil {
		return nil
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("savedata: marshal: %w", err)
	}
	if err := store.Save(raw); err != nil {
		return fmt.Errorf("savedata: save: %w", err)
	}
	log.Printf("[savedata] saved (cycle %d)", data.Cycles)
	return nil
}
