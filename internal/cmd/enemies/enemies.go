// Package enemies parses cmd/enemies flags and runs the enemy simulation.
package enemies

import (
	"fmt"
	"io"
	"log"

	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/defs"
	"go-enemy-drills/internal/enemy"
	"go-enemy-drills/internal/game"
	"go-enemy-drills/internal/i18n"
)

// Run loads the definitions, registers one enemy per definition and runs
// cfg.Turns registry updates, printing the transcript to w.
func Run(cfg config.Enemies, w io.Writer) error {
	lib, err := defs.Load(cfg.EnemyDefs, cfg.Only...)
	if err != nil {
		return err
	}
	log.Printf("loaded %d enemy definitions", lib.Len())

	out := console.New(w, i18n.ResolveTag(cfg.Lang))
	enemies, err := enemy.FromLibrary(lib, out)
	if err != nil {
		return fmt.Errorf("build enemies: %w", err)
	}

	reg := game.NewRegistry(nil)
	for _, e := range enemies {
		reg.AddEnemy(e)
	}
	for i := 0; i < cfg.Turns; i++ {
		if i > 0 {
			out.Newline()
		}
		reg.Update()
	}
	return nil
}
