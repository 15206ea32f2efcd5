// Package memory parses cmd/memory flags and runs the ownership demos.
package memory

import (
	"io"
	"log"

	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/i18n"
	drillmem "go-enemy-drills/internal/memory"
)

// Run executes every ownership demo. When cfg.ArraySize is
// config.PromptArraySize the size is read from in.
func Run(cfg config.Memory, in io.Reader, w io.Writer) error {
	out := console.New(w, i18n.ResolveTag(cfg.Lang))

	size := cfg.ArraySize
	if size == config.PromptArraySize {
		n, err := drillmem.ReadSize(in, out)
		if err != nil {
			return err
		}
		size = n
	}
	log.Printf("array size %d (max %d)", size, cfg.MaxArraySize)

	return drillmem.Run(out, drillmem.NewAllocator(cfg.MaxArraySize), size)
}
