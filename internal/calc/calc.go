// Package calc runs three independent computations concurrently.
//
// All three results share one mutex. The writes are disjoint, so the lock
// buys nothing but serialization of the print; it is kept coarse on purpose
// so the drill shows a single critical section.
package calc

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"go-enemy-drills/internal/console"
	"go-enemy-drills/internal/i18n"
)

// Results holds the three outputs.
type Results struct {
	Sum        int
	Product    int
	Difference int
}

// Calculator owns the shared results and the one lock guarding them.
type Calculator struct {
	mu      sync.Mutex
	results Results
	out     *console.Console
}

// New creates a calculator printing to out.
func New(out *console.Console) *Calculator {
	if out == nil {
		out = console.Discard()
	}
	return &Calculator{out: out}
}

// Sum writes a+b under the lock and prints it.
func (c *Calculator) Sum(a, b int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results.Sum = a + b
	c.out.Linef(i18n.SumKey, strconv.Itoa(c.results.Sum))
}

// Product writes a*b under the lock and prints it.
func (c *Calculator) Product(a, b int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results.Product = a * b
	c.out.Linef(i18n.ProductKey, strconv.Itoa(c.results.Product))
}

// Difference writes a-b under the lock and prints it.
func (c *Calculator) Difference(a, b int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results.Difference = a - b
	c.out.Linef(i18n.DifferenceKey, strconv.Itoa(c.results.Difference))
}

// Results returns a snapshot taken under the lock.
func (c *Calculator) Results() Results {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// Run starts the three computations on their own goroutines and waits for
// all of them. The three may finish in any order. If ctx is done before a
// computation starts, that computation is skipped and ctx.Err is returned.
func (c *Calculator) Run(ctx context.Context, a, b int) (Results, error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, compute := range []func(int, int){c.Sum, c.Product, c.Difference} {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			compute(a, b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.Results(), err
	}
	return c.Results(), nil
}

// PrintSummary prints every result. Call it only after Run returns.
func (c *Calculator) PrintSummary() {
	r := c.Results()
	c.out.Newline()
	c.out.Linef(i18n.SummaryKey)
	c.out.Linef(i18n.SumKey, strconv.Itoa(r.Sum))
	c.out.Linef(i18n.ProductKey, strconv.Itoa(r.Product))
	c.out.Linef(i18n.DifferenceKey, strconv.Itoa(r.Difference))
}
