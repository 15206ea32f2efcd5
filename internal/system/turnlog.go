// internal/system/turnlog.go
package system

import (
	"bytes"
	"sync"
)

// TurnLog keeps the last N transcript lines. It is an io.Writer so a
// console can print straight into it.
type TurnLog struct {
	mu      sync.Mutex
	lines   []string
	max     int
	partial bytes.Buffer
}

func NewTurnLog(max int) *TurnLog {
	if max < 1 {
		max = 1
	}
	return &TurnLog{max: max}
}

// Write splits p into lines; an unterminated tail waits for the next write.
func (l *TurnLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.partial.Write(p)
	for {
		data := l.partial.Bytes()
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		l.push(string(data[:i]))
		l.partial.Next(i + 1)
	}
	return len(p), nil
}

func (l *TurnLog) push(line string) {
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.max; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns the retained lines, oldest first.
func (l *TurnLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
