// Package console writes localized transcript lines for the drills.
package console

import (
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"go-enemy-drills/internal/i18n"
)

// Console is a localized line writer. Safe for concurrent use: each line is
// written with a single Write call under a lock so lines never interleave.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	p   *message.Printer
	tag language.Tag
}

// New creates a console writing to w in the given language.
func New(w io.Writer, tag language.Tag) *Console {
	if w == nil {
		w = io.Discard
	}
	return &Console{w: w, p: i18n.Printer(tag), tag: tag}
}

// Discard creates a console that drops everything.
func Discard() *Console {
	return New(io.Discard, i18n.Default())
}

// Tag returns the console language.
func (c *Console) Tag() language.Tag {
	return c.tag
}

// Sprintf formats a catalog message without writing it.
func (c *Console) Sprintf(key string, args ...any) string {
	return c.p.Sprintf(key, args...)
}

// Linef writes a catalog message followed by a newline. Catalog entries take
// only %s verbs: the printer groups digits per locale, so callers format
// numbers themselves.
func (c *Console) Linef(key string, args ...any) {
	c.write(c.p.Sprintf(key, args...) + "\n")
}

// Printf writes a catalog message without a trailing newline (prompts).
func (c *Console) Printf(key string, args ...any) {
	c.write(c.p.Sprintf(key, args...))
}

// Line writes raw text followed by a newline.
func (c *Console) Line(text string) {
	c.write(text + "\n")
}

// Newline writes an empty line.
func (c *Console) Newline() {
	c.write("\n")
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Console output is best effort, as with fmt.Println.
	_, _ = io.WriteString(c.w, s)
}
