package leaderboard

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/quizsys/internal/questionbank"
)

// MaxEntries is the number of entries kept on the leaderboard.
const MaxEntries = 5

// Entry is a single leaderboard row.
type Entry struct {
	Name       string
	Date       string // D-M-YYYY, no zero padding
	Score      int
	Difficulty questionbank.Difficulty
}

// String renders the entry in the store's line format.
func (e Entry) String() string {
	return fmt.Sprintf("%s %s %d %d", e.Name, e.Date, e.Score, int(e.Difficulty))
}

// FormatDate renders t as D-M-YYYY without zero padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Day(), int(t.Month()), t.Year())
}

// SanitizeName reduces a player name to a single whitespace-free token so it
// survives the space-separated store format.
func SanitizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "anonymous"
	}
	return strings.Join(fields, "_")
}

// RecordAndRank merges e into existing and returns the top MaxEntries by
// score, highest first, with the 1-based place e landed in (0 when it was
// cut). Ties keep their existing order with e last. existing is not modified.
func RecordAndRank(existing []Entry, e Entry) ([]Entry, int) {
	ranked := make([]Entry, 0, len(existing)+1)
	ranked = append(ranked, existing...)
	ranked = append(ranked, e)

	slices.SortStableFunc(ranked, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})

	// e sorts after every entry scoring at least as much.
	at := 0
	for _, x := range existing {
		if x.Score >= e.Score {
			at++
		}
	}
	rank := 0
	if at < MaxEntries {
		rank = at + 1
	}

	if len(ranked) > MaxEntries {
		ranked = ranked[:MaxEntries]
	}
	return ranked, rank
}

// parseLine parses one "name date score difficulty" line.
func parseLine(line string) (Entry, error) {
	f := strings.Fields(line)
	if len(f) != 4 {
		return Entry{}, fmt.Errorf("want 4 fields, got %d", len(f))
	}
	score, err := strconv.Atoi(f[2])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid score %q", f[2])
	}
	diff, err := strconv.Atoi(f[3])
	if err != nil {
		return Entry{}, fmt.Errorf("invalid difficulty %q", f[3])
	}
	return Entry{Name: f[0], Date: f[1], Score: score, Difficulty: questionbank.Difficulty(diff)}, nil
}

// Parse reads up to limit entries from r (limit <= 0 means no bound).
// Blank lines are skipped; reading stops at the first malformed line.
func Parse(r io.Reader, limit int) ([]Entry, error) {
	sc := bufio.NewScanner(r)

	var entries []Entry
	for sc.Scan() && (limit <= 0 || len(entries) < limit) {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			break
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return entries, fmt.Errorf("read leaderboard: %w", err)
	}
	return entries, nil
}

// Write renders entries to w, one per line.
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
