package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/quizsys/internal/questionbank"
)

// AnswerSource presents a question and returns the player's choice (1-4).
// Implementations are expected to re-prompt until the input is valid.
type AnswerSource interface {
	Ask(number, total int, q questionbank.Question) (int, error)
}

// Feedback is optionally implemented by an AnswerSource that wants to show
// the outcome of each answer.
type Feedback interface {
	Answered(q questionbank.Question, choice int, correct bool)
}

// Run plays a full session over pool, asking src for each answer.
func Run(pool []questionbank.Question, d questionbank.Difficulty, rng *rand.Rand, src AnswerSource) (Result, error) {
	state, err := New(pool, d, rng)
	if err != nil {
		return Result{}, err
	}
	return Play(state, src)
}

// Play asks src for every remaining question in state and returns the
// final result.
func Play(state *State, src AnswerSource) (Result, error) {
	fb, _ := src.(Feedback)
	for !state.Done() {
		q, _ := state.Current()
		choice, err := src.Ask(state.Number(), state.Total(), q)
		if err != nil {
			return Result{}, fmt.Errorf("question %d: %w", state.Number(), err)
		}
		correct, err := state.Answer(choice)
		if err != nil {
			return Result{}, fmt.Errorf("question %d: %w", state.Number(), err)
		}
		if fb != nil {
			fb.Answered(q, choice, correct)
		}
	}
	return state.Result(), nil
}
