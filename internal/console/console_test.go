package console

import (
	"bytes"
	"sync"
	"testing"

	"golang.org/x/text/language"

	"go-enemy-drills/internal/i18n"
)

func TestLinefLocalizes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf, language.French)
	c.Linef(i18n.SumKey, "15")
	c.Printf(i18n.ArrayPromptKey)

	want := "Somme : 15\nEntrez la taille du tableau : "
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestLineAndNewline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf, language.English)
	c.Line("0 2 4")
	c.Newline()
	if got := buf.String(); got != "0 2 4\n\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestConcurrentLinesDoNotInterleave(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := New(&buf, language.English)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Line("abcdefghij")
		}()
	}
	wg.Wait()

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	if len(lines) != 50 {
		t.Fatalf("lines = %d, want 50", len(lines))
	}
	for _, line := range lines {
		if string(line) != "abcdefghij" {
			t.Fatalf("torn line %q", line)
		}
	}
}

func TestNilWriterDiscards(t *testing.T) {
	t.Parallel()

	c := New(nil, language.English)
	c.Line("dropped")
	if c.Tag() != language.English {
		t.Fatalf("tag = %v", c.Tag())
	}
}
