package lotto

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned (wrapped) for structurally invalid game
// profiles or estimator/generator settings. It is never retried.
var ErrInvalidConfig = errors.New("invalid configuration")

// GameProfile describes one supported game's pool layout.
// Profiles are immutable; validate once at construction and pass by value.
type GameProfile struct {
	Name             string `yaml:"name"`
	MainPoolSize     int    `yaml:"main_pool_size"`
	MainPickCount    int    `yaml:"main_pick_count"`
	SpecialPoolSize  int    `yaml:"special_pool_size,omitempty"`  // 0 = no special pool
	SpecialPickCount int    `yaml:"special_pick_count,omitempty"` // 0 or 1
}

// HasSpecial reports whether the game draws a special number
// (bonus ball, Super Ball, Powerball).
func (p GameProfile) HasSpecial() bool {
	return p.SpecialPoolSize > 0
}

// Validate checks the profile invariants: MainPickCount <= MainPoolSize, and
// a special pick only when a special pool exists. A ticket carries at most
// one special number.
func (p GameProfile) Validate() error {
	if p.MainPoolSize < 1 {
		return fmt.Errorf("%w: game %q: main pool size %d", ErrInvalidConfig, p.Name, p.MainPoolSize)
	}
	if p.MainPickCount < 1 || p.MainPickCount > p.MainPoolSize {
		return fmt.Errorf("%w: game %q: pick %d from pool of %d", ErrInvalidConfig, p.Name, p.MainPickCount, p.MainPoolSize)
	}
	if p.SpecialPoolSize == 0 && p.SpecialPickCount != 0 {
		return fmt.Errorf("%w: game %q: special pick without a special pool", ErrInvalidConfig, p.Name)
	}
	if p.SpecialPoolSize > 0 && p.SpecialPickCount != 1 {
		return fmt.Errorf("%w: game %q: special pick count must be 1, got %d", ErrInvalidConfig, p.Name, p.SpecialPickCount)
	}
	return nil
}

// BuiltinProfiles returns the games the original SmartPlay reports cover.
func BuiltinProfiles() map[string]GameProfile {
	return map[string]GameProfile{
		"lotto":     {Name: "lotto", MainPoolSize: 38, MainPickCount: 6, SpecialPoolSize: 38, SpecialPickCount: 1},
		"super":     {Name: "super", MainPoolSize: 35, MainPickCount: 5, SpecialPoolSize: 10, SpecialPickCount: 1},
		"powerball": {Name: "powerball", MainPoolSize: 69, MainPickCount: 5, SpecialPoolSize: 26, SpecialPickCount: 1},
	}
}

// LookupProfile resolves a game name against the built-in profiles.
func LookupProfile(name string) (GameProfile, bool) {
	p, ok := BuiltinProfiles()[strings.ToLower(name)]
	return p, ok
}

// gameSpecFile is the top-level YAML document for custom game profiles.
type gameSpecFile struct {
	Games []GameProfile `yaml:"games"`
}

// LoadGameSpecs reads custom game profiles from a YAML file and merges them
// over the built-ins. A spec entry that shadows a built-in game replaces it;
// a deprecation-style warning is logged so operators notice the override.
func LoadGameSpecs(path string) (map[string]GameProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec gameSpecFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse game spec %s: %w", path, err)
	}

	profiles := BuiltinProfiles()
	for _, g := range spec.Games {
		g.Name = strings.ToLower(g.Name)
		if g.Name == "" {
			return nil, fmt.Errorf("%w: game spec entry with empty name in %s", ErrInvalidConfig, path)
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if _, exists := profiles[g.Name]; exists {
			logrus.Warnf("game spec %s overrides built-in profile %q", path, g.Name)
		}
		profiles[g.Name] = g
	}
	return profiles, nil
}
