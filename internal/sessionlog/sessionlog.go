package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/quizsys/internal/questionbank"
)

const rule = "============================"

// Record is one completed session as written to the log.
type Record struct {
	SessionID  string
	Player     string
	Time       time.Time
	Category   questionbank.Category
	Difficulty questionbank.Difficulty
	Correct    int
	Incorrect  int
	Score      int
}

// Format renders r as a human-readable log block, including the trailing
// blank line that separates blocks.
func Format(r Record) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	if r.SessionID != "" {
		fmt.Fprintf(&b, "Session: %s\n", r.SessionID)
	}
	fmt.Fprintf(&b, "Player: %s\n", r.Player)
	fmt.Fprintf(&b, "Date: %s\n", r.Time.Format(time.ANSIC))
	if r.Category.Valid() {
		fmt.Fprintf(&b, "Category: %s\n", r.Category)
	}
	if r.Difficulty.Valid() {
		fmt.Fprintf(&b, "Difficulty: %s\n", r.Difficulty)
	}
	fmt.Fprintf(&b, "Correct: %d\n", r.Correct)
	fmt.Fprintf(&b, "Incorrect: %d\n", r.Incorrect)
	fmt.Fprintf(&b, "Final Score: %d\n", r.Score)
	b.WriteString(rule + "\n\n")
	return b.String()
}

// Logger appends session records to a plain text file.
type Logger struct {
	path string
	now  func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithClock overrides the clock used when a record has no timestamp.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// New creates a Logger appending to the file at path.
func New(path string, opts ...Option) *Logger {
	l := &Logger{path: path, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Append writes r to the end of the log, creating the file if needed.
// Callers treat failures as warnings; the log is best-effort.
func (l *Logger) Append(r Record) error {
	if r.Time.IsZero() {
		r.Time = l.now()
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(Format(r)); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}
