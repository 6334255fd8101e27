package questionbank

import (
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is the difficulty tier a question belongs to.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// AllDifficulties returns the tiers in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// Category is a question category. Each category has its own source file.
type Category int

const (
	Science  Category = 1
	Computer Category = 2
	Sports   Category = 3
	IQ       Category = 4
)

// AllCategories returns the categories in menu order.
func AllCategories() []Category {
	return []Category{Science, Computer, Sports, IQ}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= Science && c <= IQ
}

func (c Category) String() string {
	switch c {
	case Science:
		return "Science"
	case Computer:
		return "Computer"
	case Sports:
		return "Sports"
	case IQ:
		return "IQ"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// FileName returns the name of the source file holding the category's questions.
func (c Category) FileName() string {
	switch c {
	case Science:
		return "science.txt"
	case Computer:
		return "computer.txt"
	case Sports:
		return "sports.txt"
	case IQ:
		return "iq.txt"
	default:
		return ""
	}
}

// ParseCategory accepts a category name (case-insensitive) or its menu number.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && Category(n).Valid() {
		return Category(n), nil
	}
	for _, c := range AllCategories() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// ParseDifficulty accepts a tier name (case-insensitive) or its number.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && Difficulty(n).Valid() {
		return Difficulty(n), nil
	}
	for _, d := range AllDifficulties() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Question is a single multiple-choice question.
type Question struct {
	Difficulty Difficulty
	Text       string
	Options    [OptionCount]string

	// Correct is the 1-based index of the correct option.
	Correct int
}

// Option returns the text of the 1-based option n, or "" if n is out of range.
func (q Question) Option(n int) string {
	if n < 1 || n > OptionCount {
		return ""
	}
	return q.Options[n-1]
}

// IsCorrect reports whether the 1-based choice is the correct option.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}
