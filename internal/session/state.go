package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/quizsys/internal/questionbank"
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrComplete      = errors.New("session already complete")
)

// Miss is a wrongly answered question together with the option chosen.
type Miss struct {
	Question questionbank.Question
	Chosen   int
}

// Result is the outcome of a completed session.
type Result struct {
	Difficulty questionbank.Difficulty
	Correct    int
	Incorrect  int
	Score      int

	// Missed holds wrong answers in the order they were given.
	Missed []Miss
}

// Answered returns the number of questions answered.
func (r Result) Answered() int {
	return r.Correct + r.Incorrect
}

// State tracks a session in progress. It is driven one answer at a time so
// that both the console loop and the terminal UI can use it.
type State struct {
	difficulty questionbank.Difficulty
	questions  []questionbank.Question
	current    int
	result     Result

	// LastCorrect records whether the most recent answer was correct.
	LastCorrect bool
}

// New plans a session from pool. It fails with *InsufficientDataError when
// the pool is smaller than QuestionsPerSession.
func New(pool []questionbank.Question, d questionbank.Difficulty, rng *rand.Rand) (*State, error) {
	questions, err := Plan(pool, d, rng)
	if err != nil {
		return nil, err
	}
	return &State{
		difficulty: d,
		questions:  questions,
		result:     Result{Difficulty: d},
	}, nil
}

// Difficulty returns the session's difficulty tier.
func (s *State) Difficulty() questionbank.Difficulty {
	return s.difficulty
}

// Current returns the question awaiting an answer. ok is false once every
// question has been answered.
func (s *State) Current() (q questionbank.Question, ok bool) {
	if s.Done() {
		return questionbank.Question{}, false
	}
	return s.questions[s.current], true
}

// Number returns the 1-based position of the current question.
func (s *State) Number() int {
	return s.current + 1
}

// Total returns the number of questions in the session.
func (s *State) Total() int {
	return len(s.questions)
}

// Done reports whether every question has been answered.
func (s *State) Done() bool {
	return s.current >= len(s.questions)
}

// Answer scores choice (1-4) against the current question and moves on.
// An out-of-range choice is rejected with ErrInvalidChoice and leaves the
// state unchanged.
func (s *State) Answer(choice int) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrComplete
	}
	if choice < 1 || choice > questionbank.OptionCount {
		return false, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}

	correct := q.IsCorrect(choice)
	if correct {
		s.result.Correct++
	} else {
		s.result.Incorrect++
		s.result.Missed = append(s.result.Missed, Miss{Question: q, Chosen: choice})
	}
	s.result.Score = Score(s.difficulty, s.result.Correct, s.result.Incorrect)
	s.LastCorrect = correct
	s.current++
	return correct, nil
}

// Result returns the tally so far. After Done it is the final result.
func (s *State) Result() Result {
	r := s.result
	r.Missed = append([]Miss(nil), s.result.Missed...)
	return r
}
