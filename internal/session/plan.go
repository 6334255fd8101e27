package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/quizsys/internal/questionbank"
)

// QuestionsPerSession is the number of questions served in one session.
const QuestionsPerSession = 10

// InsufficientDataError indicates the pool holds fewer questions than a
// session needs.
type InsufficientDataError struct {
	Difficulty questionbank.Difficulty
	Have       int
	Need       int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough %s questions: have %d, need %d", e.Difficulty, e.Have, e.Need)
}

// Sample returns n distinct indices into a pool of size poolSize, uniformly
// at random. It shuffles all indices with Fisher-Yates and takes the front n.
// n must not exceed poolSize.
func Sample(rng *rand.Rand, poolSize, n int) []int {
	idx := make([]int, poolSize)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(len(idx), func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})
	return idx[:n]
}

// Plan picks the questions for one session from pool.
func Plan(pool []questionbank.Question, d questionbank.Difficulty, rng *rand.Rand) ([]questionbank.Question, error) {
	if len(pool) < QuestionsPerSession {
		return nil, &InsufficientDataError{Difficulty: d, Have: len(pool), Need: QuestionsPerSession}
	}

	picked := make([]questionbank.Question, 0, QuestionsPerSession)
	for _, i := range Sample(rng, len(pool), QuestionsPerSession) {
		picked = append(picked, pool[i])
	}
	return picked, nil
}
