package sessionlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizsys/internal/questionbank"
)

func testRecord() Record {
	return Record{
		SessionID:  "3b241101-e2bb-4255-8caf-4136c566a962",
		Player:     "alice",
		Time:       time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC),
		Category:   questionbank.Science,
		Difficulty: questionbank.Medium,
		Correct:    7,
		Incorrect:  3,
		Score:      61,
	}
}

func TestFormat(t *testing.T) {
	want := strings.Join([]string{
		"============================",
		"Session: 3b241101-e2bb-4255-8caf-4136c566a962",
		"Player: alice",
		"Date: Thu Mar  7 09:05:03 2024",
		"Category: Science",
		"Difficulty: Medium",
		"Correct: 7",
		"Incorrect: 3",
		"Final Score: 61",
		"============================",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, Format(testRecord()))
}

func TestFormat_OmitsUnknownFields(t *testing.T) {
	r := testRecord()
	r.SessionID = ""
	r.Category = 0
	out := Format(r)
	assert.NotContains(t, out, "Session:")
	assert.NotContains(t, out, "Category:")
	assert.Contains(t, out, "Difficulty: Medium")
}

func TestAppend_AppendsBlocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quiz_logs.txt")
	l := New(path)

	first := testRecord()
	second := testRecord()
	second.Player = "bob"
	second.Score = -20

	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Format(first)+Format(second), string(data))
}

func TestAppend_StampsMissingTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz_logs.txt")
	stamp := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	l := New(path, WithClock(func() time.Time { return stamp }))

	r := testRecord()
	r.Time = time.Time{}
	require.NoError(t, l.Append(r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date: Thu Jan  2 03:04:05 2025")
}

func TestAppend_ReportsFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the log file should be makes the open fail.
	path := filepath.Join(dir, "quiz_logs.txt")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := New(path).Append(testRecord())
	assert.Error(t, err)
}
