package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// maxSyncLogLines bounds the lines kept in a report.
const maxSyncLogLines = 200

// SyncLog accumulates the human-readable lines of one sync run and mirrors
// them to the structured logger. It implements meli.Journal.
//
// At most limit lines are kept: the first half of the run and its most
// recent lines. Lines dropped from the middle are counted and reported by
// Lines; the structured logger still receives every line.
type SyncLog struct {
	mu      sync.Mutex
	lines   []string
	limit   int
	dropped int
	log     *slog.Logger
}

// NewSyncLog creates an empty SyncLog. A nil logger only accumulates.
func NewSyncLog(log *slog.Logger) *SyncLog {
	return &SyncLog{lines: []string{}, limit: maxSyncLogLines, log: log}
}

// Infof appends an [info] line.
func (l *SyncLog) Infof(format string, args ...any) {
	l.add(slog.LevelInfo, "info", format, args...)
}

// Warnf appends a [warn] line.
func (l *SyncLog) Warnf(format string, args ...any) {
	l.add(slog.LevelWarn, "warn", format, args...)
}

// Errorf appends an [error] line.
func (l *SyncLog) Errorf(format string, args ...any) {
	l.add(slog.LevelError, "error", format, args...)
}

// Lines returns a copy of the kept lines in order, with a marker where
// lines were dropped.
func (l *SyncLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dropped == 0 {
		return append([]string{}, l.lines...)
	}
	head := l.head()
	out := make([]string, 0, len(l.lines)+1)
	out = append(out, l.lines[:head]...)
	out = append(out, fmt.Sprintf("[warn] %d log lines omitted", l.dropped))
	return append(out, l.lines[head:]...)
}

// Dropped returns how many lines were left out of Lines.
func (l *SyncLog) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

func (l *SyncLog) head() int { return l.limit / 2 }

func (l *SyncLog) add(level slog.Level, tag, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	l.lines = append(l.lines, "["+tag+"] "+msg)
	if l.limit > 0 && len(l.lines) > l.limit {
		// drop the oldest line after the head
		h := l.head()
		l.lines = append(l.lines[:h], l.lines[h+1:]...)
		l.dropped++
	}
	l.mu.Unlock()

	if l.log != nil {
		l.log.Log(context.Background(), level, msg, "component", "sync")
	}
}
