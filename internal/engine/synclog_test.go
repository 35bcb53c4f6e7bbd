package engine

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trexxeseba/amadolibros-web/internal/meli"
)

var _ meli.Journal = (*SyncLog)(nil)

func TestSyncLog_Lines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sl := NewSyncLog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	sl.Infof("collected %d ids", 3)
	sl.Warnf("skipped %d items", 1)
	sl.Errorf("batch %d failed", 2)

	assert.Equal(t, []string{
		"[info] collected 3 ids",
		"[warn] skipped 1 items",
		"[error] batch 2 failed",
	}, sl.Lines())

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=sync")
	assert.Contains(t, out, `msg="batch 2 failed"`)
}

func TestSyncLog_LinesIsACopy(t *testing.T) {
	t.Parallel()

	sl := NewSyncLog(nil)
	assert.Empty(t, sl.Lines())
	assert.NotNil(t, sl.Lines())

	sl.Infof("one")
	lines := sl.Lines()
	lines[0] = "changed"
	assert.Equal(t, []string{"[info] one"}, sl.Lines())
}

func TestSyncLog_Concurrent(t *testing.T) {
	t.Parallel()

	sl := NewSyncLog(nil)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sl.Infof("line")
		}()
	}
	wg.Wait()

	assert.Len(t, sl.Lines(), 20)
}

func TestSyncLog_Bounded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sl := NewSyncLog(slog.New(slog.NewTextHandler(&buf, nil)))
	sl.limit = 4

	for i := range 10 {
		sl.Errorf("batch %d failed", i)
	}

	assert.Equal(t, 6, sl.Dropped())
	assert.Equal(t, []string{
		"[error] batch 0 failed",
		"[error] batch 1 failed",
		"[warn] 6 log lines omitted",
		"[error] batch 8 failed",
		"[error] batch 9 failed",
	}, sl.Lines())
	assert.Equal(t, 10, strings.Count(buf.String(), "level=ERROR"))
}

func TestSyncLog_DefaultLimit(t *testing.T) {
	t.Parallel()

	sl := NewSyncLog(nil)
	for range maxSyncLogLines + 50 {
		sl.Infof("line")
	}

	assert.Len(t, sl.Lines(), maxSyncLogLines+1)
	assert.Equal(t, 50, sl.Dropped())
}
