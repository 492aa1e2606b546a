// Package activity implements the append-only activity log: one JSON line
// per mutating operation, kept outside the transactional store so a logging
// failure can never abort the business operation that triggered it.
package activity

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/estatedesk/estatedesk/pkg/types"
)

// defaultMaxRecords is the retention cap; Record prunes oldest-first once
// the log grows past it.
const defaultMaxRecords = 1000

// Logger is the injected activity collaborator. All methods are safe for
// concurrent use. Record is best-effort by contract: failures are logged
// and swallowed.
type Logger struct {
	mu    sync.Mutex
	path  string
	log   *logrus.Entry
	max   int
	actor string
}

// New creates a logger writing to the activity file inside dir.
func New(dir string, log *logrus.Logger) *Logger {
	return &Logger{
		path: filepath.Join(dir, types.ActivityLogFileName),
		log:  log.WithField("component", "activity"),
		max:  defaultMaxRecords,
	}
}

// SetActor sets the actor stamped onto subsequent records.
func (l *Logger) SetActor(actor string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.actor = actor
}

// Record appends one entry. Implements types.ActivityRecorder.
func (l *Logger) Record(actionType, entityCode, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := types.ActivityRecord{
		Timestamp:  time.Now().UTC(),
		ActionType: actionType,
		EntityCode: entityCode,
		Actor:      l.actor,
		Detail:     detail,
	}
	line, err := json.Marshal(rec)
	if err != nil {
		l.log.WithError(err).Warn("marshal activity record")
		return
	}

	if err := l.appendLine(line); err != nil {
		l.log.WithError(err).Warn("append activity record")
		return
	}

	// Opportunistic retention: rewrite only when well past the cap so the
	// common path stays a single append.
	if n, err := l.countLines(); err == nil && n > l.max*2 {
		if _, err := l.pruneLocked(l.max); err != nil {
			l.log.WithError(err).Warn("prune activity log")
		}
	}
}

// ListRecent returns up to limit records, newest first. limit <= 0 means
// everything.
func (l *Logger) ListRecent(limit int) ([]types.ActivityRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readAll()
	if err != nil {
		return nil, err
	}

	// Stored oldest-first; flip and cap.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Statistics counts records grouped by action type and by calendar day.
func (l *Logger) Statistics() (*types.ActivityStats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readAll()
	if err != nil {
		return nil, err
	}

	stats := &types.ActivityStats{
		Total:    len(records),
		ByAction: make(map[string]int),
		ByDay:    make(map[string]int),
	}
	for _, r := range records {
		stats.ByAction[r.ActionType]++
		stats.ByDay[r.Timestamp.Format("2006-01-02")]++
	}
	return stats, nil
}

// Prune truncates the log to the keep newest records, returning how many
// were removed. This is the explicit retention entry point; normal
// operation never deletes activity otherwise.
func (l *Logger) Prune(keep int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pruneLocked(keep)
}

func (l *Logger) pruneLocked(keep int) (int, error) {
	records, err := l.readAll()
	if err != nil {
		return 0, err
	}
	if len(records) <= keep {
		return 0, nil
	}
	removed := len(records) - keep
	if err := l.writeAll(records[removed:]); err != nil {
		return 0, err
	}
	return removed, nil
}

func (l *Logger) appendLine(line []byte) error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// readAll parses the log oldest-first, skipping malformed lines so one
// corrupt entry cannot take the whole history down.
func (l *Logger) readAll() ([]types.ActivityRecord, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []types.ActivityRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec types.ActivityRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			l.log.Warn("skipping malformed activity line")
			continue
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

// writeAll rewrites the log atomically: temp file, fsync, rename.
func (l *Logger) writeAll(records []types.ActivityRecord) error {
	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".activity-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return err
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, l.path)
}

func (l *Logger) countLines() (int, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			n++
		}
	}
	return n, scanner.Err()
}
