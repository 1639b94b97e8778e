package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"slices"

	"github.com/automoto/parkour-gen/config"
	"github.com/quasilyte/gdata"
)

// ErrNoPreset is returned when a named preset has not been saved.
var ErrNoPreset = errors.New("preset not found")

// presetIndexKey holds the sorted list of saved preset names.
const presetIndexKey = "presets"

var presetName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ItemStore is the subset of gdata.Manager presets are kept in.
type ItemStore interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
	ItemExists(itemKey string) bool
	DeleteItem(itemKey string) error
}

// Presets saves named generator configurations between runs.
type Presets struct {
	store ItemStore
}

// OpenPresets opens the per-user data directory for appName.
func OpenPresets(appName string) (*Presets, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return NewPresets(m), nil
}

// NewPresets keeps presets in store.
func NewPresets(store ItemStore) *Presets {
	return &Presets{store: store}
}

func itemKey(name string) (string, error) {
	if !presetName.MatchString(name) {
		return "", fmt.Errorf("invalid preset name %q: use letters, digits, '-' and '_'", name)
	}
	return "preset-" + name, nil
}

// Save stores cfg under name, replacing any earlier preset of that name.
func (p *Presets) Save(name string, cfg *config.Config) error {
	key, err := itemKey(name)
	if err != nil {
		return err
	}

	data, err := cfg.JSON()
	if err != nil {
		return fmt.Errorf("serialize preset %q: %w", name, err)
	}
	if err := p.store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save preset %q: %v", name, err)
		return err
	}

	names, err := p.List()
	if err != nil {
		return err
	}
	if _, found := slices.BinarySearch(names, name); found {
		return nil
	}
	names = append(names, name)
	slices.Sort(names)
	return p.saveIndex(names)
}

// Load reads and validates the preset saved under name.
func (p *Presets) Load(name string) (*config.Config, error) {
	key, err := itemKey(name)
	if err != nil {
		return nil, err
	}
	if !p.store.ItemExists(key) {
		return nil, fmt.Errorf("%w: %q", ErrNoPreset, name)
	}

	data, err := p.store.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("load preset %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoPreset, name)
	}

	cfg, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return cfg, nil
}

// Exists reports whether a preset is saved under name.
func (p *Presets) Exists(name string) bool {
	key, err := itemKey(name)
	if err != nil {
		return false
	}
	return p.store.ItemExists(key)
}

// Delete removes the named preset. Deleting a missing preset is not an error.
func (p *Presets) Delete(name string) error {
	key, err := itemKey(name)
	if err != nil {
		return err
	}
	if p.store.ItemExists(key) {
		if err := p.store.DeleteItem(key); err != nil {
			log.Printf("Warning: Could not delete preset %q: %v", name, err)
			return err
		}
	}

	names, err := p.List()
	if err != nil {
		return err
	}
	i, found := slices.BinarySearch(names, name)
	if !found {
		return nil
	}
	return p.saveIndex(slices.Delete(names, i, i+1))
}

// List returns the saved preset names in order.
func (p *Presets) List() ([]string, error) {
	if !p.store.ItemExists(presetIndexKey) {
		return nil, nil
	}
	data, err := p.store.LoadItem(presetIndexKey)
	if err != nil {
		return nil, fmt.Errorf("load preset index: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Printf("Warning: Could not parse preset index: %v", err)
		return nil, err
	}
	return names, nil
}

func (p *Presets) saveIndex(names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	if err := p.store.SaveItem(presetIndexKey, data); err != nil {
		log.Printf("Warning: Could not save preset index: %v", err)
		return err
	}
	return nil
}
