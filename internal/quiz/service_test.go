package quiz

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizsys/internal/leaderboard"
	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/sessionlog"
)

// questionSource renders n questions per listed difficulty in the flat file format.
func questionSource(counts map[questionbank.Difficulty]int) string {
	var b strings.Builder
	for _, d := range questionbank.AllDifficulties() {
		for i := 0; i < counts[d]; i++ {
			fmt.Fprintf(&b, "%d\n%s question %d\nA\nB\nC\nD\n%d\n", int(d), d, i, i%4+1)
		}
	}
	return b.String()
}

type fixture struct {
	svc       *Service
	boardPath string
	logPath   string
	logs      *bytes.Buffer
}

func newFixture(t *testing.T, fsys fstest.MapFS) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		boardPath: filepath.Join(dir, "high_scores.txt"),
		logPath:   filepath.Join(dir, "quiz_logs.txt"),
		logs:      &bytes.Buffer{},
	}
	f.svc = NewService(Options{
		Bank:   questionbank.New(fsys, 0),
		Board:  leaderboard.NewStore(f.boardPath),
		Log:    sessionlog.New(f.logPath),
		Rand:   rand.New(rand.NewPCG(3, 4)),
		Logger: slog.New(slog.NewTextHandler(f.logs, nil)),
	})
	f.svc.newID = func() string { return "session-1" }
	return f
}

func playAllCorrect(t *testing.T, state *session.State) session.Result {
	t.Helper()
	for !state.Done() {
		q, _ := state.Current()
		_, err := state.Answer(q.Correct)
		require.NoError(t, err)
	}
	return state.Result()
}

func TestStart_InsufficientQuestionsWritesNothing(t *testing.T) {
	f := newFixture(t, fstest.MapFS{
		"science.txt": {Data: []byte(questionSource(map[questionbank.Difficulty]int{
			questionbank.Easy: 12,
			questionbank.Hard: 9,
		}))},
	})

	_, err := f.svc.Start(questionbank.Science, questionbank.Hard)
	require.Error(t, err)

	var insufficient *session.InsufficientDataError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 9, insufficient.Have)

	assert.NoFileExists(t, f.boardPath)
	assert.NoFileExists(t, f.logPath)
}

func TestStart_MissingSource(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})

	_, err := f.svc.Start(questionbank.IQ, questionbank.Easy)
	require.Error(t, err)

	var dataErr *questionbank.DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "iq.txt", dataErr.Source)
}

func TestStartAndFinish_AllCorrect(t *testing.T) {
	f := newFixture(t, fstest.MapFS{
		"sports.txt": {Data: []byte(questionSource(map[questionbank.Difficulty]int{questionbank.Easy: 10}))},
	})

	state, err := f.svc.Start(questionbank.Sports, questionbank.Easy)
	require.NoError(t, err)
	res := playAllCorrect(t, state)
	assert.Equal(t, 100, res.Score)

	out, err := f.svc.Finish("Grace Hopper", questionbank.Sports, res)
	require.NoError(t, err)
	assert.Equal(t, "session-1", out.SessionID)
	assert.Equal(t, "Grace_Hopper", out.Player)
	require.Len(t, out.Leaderboard, 1)
	assert.Equal(t, 100, out.Leaderboard[0].Score)
	assert.Equal(t, 1, out.Rank)

	board, err := f.svc.Leaderboard()
	require.NoError(t, err)
	assert.Equal(t, out.Leaderboard, board)

	logData, err := os.ReadFile(f.logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "Session: session-1")
	assert.Contains(t, string(logData), "Player: Grace_Hopper")
	assert.Contains(t, string(logData), "Category: Sports")
	assert.Contains(t, string(logData), "Final Score: 100")
}

func TestFinish_LogFailureIsOnlyAWarning(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})
	require.NoError(t, os.Mkdir(f.logPath, 0o755))

	res := session.Result{Difficulty: questionbank.Medium, Correct: 5, Incorrect: 5, Score: 35}
	out, err := f.svc.Finish("ada", questionbank.Computer, res)
	require.NoError(t, err)
	require.Len(t, out.Leaderboard, 1)
	assert.Contains(t, f.logs.String(), "failed to write session log")
}

func TestFinish_LeaderboardFailureStillLogs(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})
	require.NoError(t, os.Mkdir(f.boardPath, 0o755))

	res := session.Result{Difficulty: questionbank.Easy, Correct: 1, Incorrect: 9, Score: -8}
	_, err := f.svc.Finish("ada", questionbank.Science, res)
	require.Error(t, err)

	logData, readErr := os.ReadFile(f.logPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(logData), "Final Score: -8")
}

func TestFinish_RankOfTiedAndLowScores(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})
	for _, score := range []int{90, 80, 70, 60, 50} {
		_, err := f.svc.Finish("ada", questionbank.Science, session.Result{Difficulty: questionbank.Easy, Score: score})
		require.NoError(t, err)
	}

	out, err := f.svc.Finish("ada", questionbank.Science, session.Result{Difficulty: questionbank.Easy, Score: 70})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rank)

	out, err = f.svc.Finish("bob", questionbank.Science, session.Result{Difficulty: questionbank.Easy, Score: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rank)
}

func TestFinish_TiedScoreCutFromBoardHasNoRank(t *testing.T) {
	f := newFixture(t, fstest.MapFS{})
	for _, score := range []int{90, 80, 70, 60, 50} {
		_, err := f.svc.Finish("ada", questionbank.Science, session.Result{Difficulty: questionbank.Easy, Score: score})
		require.NoError(t, err)
	}

	out, err := f.svc.Finish("ada", questionbank.Science, session.Result{Difficulty: questionbank.Easy, Score: 50})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rank)
	require.Len(t, out.Leaderboard, 5)
	assert.Equal(t, 50, out.Leaderboard[4].Score)
}
