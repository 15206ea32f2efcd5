package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Common holds settings shared by every drill command.
type Common struct {
	Lang      string   `env:"DRILLS_LANG" envDefault:"en"`
	EnemyDefs string   `env:"DRILLS_ENEMY_DEFS"`
	Only      []string `env:"DRILLS_ONLY" envSeparator:","` // definition IDs to keep, empty keeps all
}

// Enemies configures cmd/enemies.
type Enemies struct {
	Common
	Turns int `env:"DRILLS_TURNS" envDefault:"1"`
}

// Memory configures cmd/memory.
type Memory struct {
	Common
	ArraySize    int `env:"DRILLS_ARRAY_SIZE" envDefault:"-1"`
	MaxArraySize int `env:"DRILLS_MAX_ARRAY_SIZE" envDefault:"1048576"`
}

// Calc configures cmd/calc.
type Calc struct {
	Common
	OperandA int `env:"DRILLS_OPERAND_A" envDefault:"10"`
	OperandB int `env:"DRILLS_OPERAND_B" envDefault:"5"`
}

// Arena configures cmd/arena.
type Arena struct {
	Common
	Seed         int64         `env:"DRILLS_ARENA_SEED" envDefault:"0"`
	TurnInterval time.Duration `env:"DRILLS_TURN_INTERVAL" envDefault:"2s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// BindCommon registers the shared flags on fs, defaulting to the env values.
func BindCommon(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Lang, "lang", c.Lang, "transcript language (en, fr)")
	fs.StringVar(&c.EnemyDefs, "defs", c.EnemyDefs, "path to an enemy definitions JSON file")
	fs.Func("only", "comma-separated definition IDs to keep", func(v string) error {
		c.Only = splitIDs(v)
		return nil
	})
}

func splitIDs(v string) []string {
	var ids []string
	for _, id := range strings.Split(v, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseEnemies parses env and flags into an Enemies config.
func ParseEnemies(fs *flag.FlagSet, args []string) (Enemies, error) {
	var cfg Enemies
	if err := ParseConfig(&cfg); err != nil {
		return Enemies{}, err
	}
	BindCommon(fs, &cfg.Common)
	fs.IntVar(&cfg.Turns, "turns", cfg.Turns, "number of registry updates to run")
	if err := ParseArgs(fs, args); err != nil {
		return Enemies{}, err
	}
	if cfg.Turns < 0 {
		return Enemies{}, fmt.Errorf("turns must be >= 0, got %d", cfg.Turns)
	}
	return cfg, nil
}

// ParseMemory parses env and flags into a Memory config.
func ParseMemory(fs *flag.FlagSet, args []string) (Memory, error) {
	var cfg Memory
	if err := ParseConfig(&cfg); err != nil {
		return Memory{}, err
	}
	BindCommon(fs, &cfg.Common)
	fs.IntVar(&cfg.ArraySize, "size", cfg.ArraySize, "array size (-1 prompts on stdin)")
	fs.IntVar(&cfg.MaxArraySize, "max-size", cfg.MaxArraySize, "largest array size accepted")
	if err := ParseArgs(fs, args); err != nil {
		return Memory{}, err
	}
	if cfg.MaxArraySize < 0 {
		return Memory{}, fmt.Errorf("max array size must be >= 0, got %d", cfg.MaxArraySize)
	}
	return cfg, nil
}

// ParseCalc parses env and flags into a Calc config.
func ParseCalc(fs *flag.FlagSet, args []string) (Calc, error) {
	var cfg Calc
	if err := ParseConfig(&cfg); err != nil {
		return Calc{}, err
	}
	BindCommon(fs, &cfg.Common)
	fs.IntVar(&cfg.OperandA, "a", cfg.OperandA, "first operand")
	fs.IntVar(&cfg.OperandB, "b", cfg.OperandB, "second operand")
	if err := ParseArgs(fs, args); err != nil {
		return Calc{}, err
	}
	return cfg, nil
}

// ParseArena parses env and flags into an Arena config.
func ParseArena(fs *flag.FlagSet, args []string) (Arena, error) {
	var cfg Arena
	if err := ParseConfig(&cfg); err != nil {
		return Arena{}, err
	}
	BindCommon(fs, &cfg.Common)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "lane jitter seed (0 = time based)")
	fs.DurationVar(&cfg.TurnInterval, "turn", cfg.TurnInterval, "time between registry updates")
	if err := ParseArgs(fs, args); err != nil {
		return Arena{}, err
	}
	if cfg.TurnInterval <= 0 {
		cfg.TurnInterval = DefaultTurnPeriod
	}
	return cfg, nil
}
