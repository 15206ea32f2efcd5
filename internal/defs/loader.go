// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	drillerrors "go-enemy-drills/internal/errors"
)

//go:embed data/enemies.json
var embeddedEnemies []byte

// LoadEnemyDefinitions reads an enemy definitions file from disk.
func LoadEnemyDefinitions(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseEnemyDefinitions(file)
}

// LoadEmbedded returns the built-in Zombie, Vampire and Ghost definitions.
func LoadEmbedded() (*Library, error) {
	return ParseEnemyDefinitions(embeddedEnemies)
}

// Load reads path, or the embedded definitions when path is empty, and keeps
// only the definitions named in only (all of them when only is empty).
func Load(path string, only ...string) (*Library, error) {
	var (
		lib *Library
		err error
	)
	if strings.TrimSpace(path) == "" {
		lib, err = LoadEmbedded()
	} else {
		lib, err = LoadEnemyDefinitions(path)
	}
	if err != nil {
		return nil, err
	}
	return lib.Select(only...)
}

// ParseEnemyDefinitions decodes and validates a JSON array of definitions.
func ParseEnemyDefinitions(data []byte) (*Library, error) {
	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(data, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := &Library{byID: make(map[string]EnemyDefinition, len(enemyDefs))}
	for i, def := range enemyDefs {
		if err := validate(def); err != nil {
			return nil, fmt.Errorf("enemy definition %d: %w", i, err)
		}
		if _, dup := lib.byID[def.ID]; dup {
			return nil, fmt.Errorf("enemy definition %d: %w", i, drillerrors.WithMetadata(
				drillerrors.CodeInvalidDefinition,
				fmt.Sprintf("duplicate id %q", def.ID),
				map[string]string{"id": def.ID},
			))
		}
		if def.Visuals.RadiusFactor <= 0 {
			def.Visuals.RadiusFactor = 1
		}
		lib.byID[def.ID] = def
		lib.order = append(lib.order, def.ID)
	}
	return lib, nil
}

func validate(def EnemyDefinition) error {
	switch {
	case strings.TrimSpace(def.ID) == "":
		return drillerrors.New(drillerrors.CodeInvalidDefinition, "id is required")
	case strings.TrimSpace(def.Name) == "":
		return drillerrors.WithMetadata(drillerrors.CodeInvalidDefinition,
			fmt.Sprintf("%s: name is required", def.ID), map[string]string{"id": def.ID})
	case !def.Kind.Valid():
		return drillerrors.WithMetadata(drillerrors.CodeUnknownEnemyKind,
			fmt.Sprintf("%s: unknown kind %q", def.ID, def.Kind), map[string]string{"id": def.ID, "kind": string(def.Kind)})
	}
	return nil
}
