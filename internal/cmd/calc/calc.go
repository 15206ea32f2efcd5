// Package calc parses cmd/calc flags and runs the concurrent computation.
package calc

import (
	"context"
	"io"

	drillcalc "go-enemy-drills/internal/calc"
	"go-enemy-drills/internal/config"
	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/i18n"
)

// Run computes sum, product and difference concurrently, then prints the
// summary once all three are done.
func Run(ctx context.Context, cfg config.Calc, w io.Writer) (drillcalc.Results, error) {
	c := drillcalc.New(console.New(w, i18n.ResolveTag(cfg.Lang)))
	results, err := c.Run(ctx, cfg.OperandA, cfg.OperandB)
	if err != nil {
		return results, err
	}
	c.PrintSummary()
	return results, nil
}
