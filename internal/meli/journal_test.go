package meli_test

import (
	"fmt"
	"strings"
	"sync"
)

// recordingJournal captures journal lines for assertions.
type recordingJournal struct {
	mu    sync.Mutex
	lines []string
}

func (j *recordingJournal) Infof(format string, args ...any)  { j.add("info", format, args...) }
func (j *recordingJournal) Warnf(format string, args ...any)  { j.add("warn", format, args...) }
func (j *recordingJournal) Errorf(format string, args ...any) { j.add("error", format, args...) }

func (j *recordingJournal) add(level, format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lines = append(j.lines, "["+level+"] "+fmt.Sprintf(format, args...))
}

func (j *recordingJournal) count(level string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for _, l := range j.lines {
		if strings.HasPrefix(l, "["+level+"]") {
			n++
		}
	}
	return n
}
