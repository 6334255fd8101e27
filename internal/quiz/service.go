package quiz

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizsys/internal/leaderboard"
	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/session"
	"github.com/abhisek/quizsys/internal/sessionlog"
)

// Options holds the dependencies of a Service. Bank, Board and Log are required.
type Options struct {
	Bank   *questionbank.Bank
	Board  *leaderboard.Store
	Log    *sessionlog.Logger
	Rand   *rand.Rand   // seeded from the clock when nil
	Logger *slog.Logger // discards when nil
}

// Service runs the quiz lifecycle shared by the console and terminal UI:
// load and sample questions, then record the finished session.
type Service struct {
	bank   *questionbank.Bank
	board  *leaderboard.Store
	log    *sessionlog.Logger
	rng    *rand.Rand
	logger *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a Service.
func NewService(opts Options) *Service {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		bank:   opts.Bank,
		board:  opts.Board,
		log:    opts.Log,
		rng:    rng,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Start loads the category's questions at difficulty d and plans a session.
// It returns a *questionbank.DataError when the source cannot be read and a
// *session.InsufficientDataError when it holds too few questions.
func (s *Service) Start(c questionbank.Category, d questionbank.Difficulty) (*session.State, error) {
	pool, err := s.bank.Load(c, d)
	if err != nil {
		return nil, fmt.Errorf("load %s questions: %w", c, err)
	}
	return session.New(pool, d, s.rng)
}

// Outcome is what Finish recorded.
type Outcome struct {
	SessionID   string
	Player      string
	Leaderboard []leaderboard.Entry
	Rank        int // 1-based place on Leaderboard, 0 when the score did not make it
}

// Finish records a completed session on the leaderboard and in the session
// log. A leaderboard failure is returned; a log failure is only reported as
// a warning.
func (s *Service) Finish(name string, c questionbank.Category, res session.Result) (Outcome, error) {
	out := Outcome{
		SessionID: s.newID(),
		Player:    leaderboard.SanitizeName(name),
	}

	board, rank, boardErr := s.board.Record(out.Player, res.Score, res.Difficulty)
	if boardErr == nil {
		out.Leaderboard = board
		out.Rank = rank
	}

	rec := sessionlog.Record{
		SessionID:  out.SessionID,
		Player:     out.Player,
		Time:       s.now(),
		Category:   c,
		Difficulty: res.Difficulty,
		Correct:    res.Correct,
		Incorrect:  res.Incorrect,
		Score:      res.Score,
	}
	if err := s.log.Append(rec); err != nil {
		s.logger.Warn("failed to write session log", "path", s.log.Path(), "error", err)
	}

	if boardErr != nil {
		return out, fmt.Errorf("save leaderboard: %w", boardErr)
	}
	return out, nil
}

// Leaderboard returns the stored leaderboard.
func (s *Service) Leaderboard() ([]leaderboard.Entry, error) {
	return s.board.List()
}
