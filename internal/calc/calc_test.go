package calc

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"go-enemy-drills/internal/console"
)

func TestRunDefaultOperands(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(console.New(&buf, language.English))
	got, err := c.Run(context.Background(), 10, 5)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := Results{Sum: 15, Product: 50, Difference: 5}
	if got != want {
		t.Fatalf("results = %+v, want %+v", got, want)
	}

	// the three lines may come in any order
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	sort.Strings(lines)
	wantLines := []string{"Difference: 5", "Product: 50", "Sum: 15"}
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	for i := range wantLines {
		if lines[i] != wantLines[i] {
			t.Fatalf("lines = %q, want %q", lines, wantLines)
		}
	}
}

func TestRunManyPairs(t *testing.T) {
	t.Parallel()

	pairs := [][2]int{{0, 0}, {-3, 7}, {100, -100}, {1, 1}, {42, 6}}
	for _, p := range pairs {
		c := New(nil)
		got, err := c.Run(context.Background(), p[0], p[1])
		if err != nil {
			t.Fatalf("run(%d, %d): %v", p[0], p[1], err)
		}
		want := Results{Sum: p[0] + p[1], Product: p[0] * p[1], Difference: p[0] - p[1]}
		if got != want {
			t.Fatalf("run(%d, %d) = %+v, want %+v", p[0], p[1], got, want)
		}
	}
}

func TestRunRepeatedlyUnderRace(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		c := New(nil)
		got, err := c.Run(context.Background(), i, 3)
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if got.Sum != i+3 || got.Product != i*3 || got.Difference != i-3 {
			t.Fatalf("iteration %d: torn results %+v", i, got)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	c := New(console.New(&buf, language.English))
	got, err := c.Run(ctx, 10, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got != (Results{}) {
		t.Fatalf("results = %+v, want zero", got)
	}
	if buf.Len() != 0 {
		t.Fatalf("cancelled run printed %q", buf.String())
	}
}

func TestPrintSummaryFrench(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(console.New(&buf, language.French))
	if _, err := c.Run(context.Background(), 10, 5); err != nil {
		t.Fatalf("run: %v", err)
	}
	buf.Reset()
	c.PrintSummary()

	want := "\n--- Résumé des résultats ---\nSomme : 15\nProduit : 50\nDifférence : 5\n"
	if buf.String() != want {
		t.Fatalf("summary = %q, want %q", buf.String(), want)
	}
}

func TestLargeResultsPrintUngrouped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(console.New(&buf, language.French))
	if _, err := c.Run(context.Background(), 1000, 2000); err != nil {
		t.Fatalf("run: %v", err)
	}
	buf.Reset()
	c.PrintSummary()

	want := "\n--- Résumé des résultats ---\nSomme : 3000\nProduit : 2000000\nDifférence : -1000\n"
	if buf.String() != want {
		t.Fatalf("summary = %q, want %q", buf.String(), want)
	}
}
