package session

import "github.com/abhisek/quizsys/internal/questionbank"

// PointsPerCorrect is awarded for every correct answer.
const PointsPerCorrect = 10

// Penalty returns the points deducted for a wrong answer at difficulty d.
func Penalty(d questionbank.Difficulty) int {
	switch d {
	case questionbank.Easy:
		return 2
	case questionbank.Medium:
		return 3
	default:
		return 5
	}
}

// Score computes a session score. It may be negative.
func Score(d questionbank.Difficulty, correct, incorrect int) int {
	return PointsPerCorrect*correct - Penalty(d)*incorrect
}
