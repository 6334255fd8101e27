package review

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizsys/internal/session"
)

// NoMissesMessage is shown when there is nothing to review.
const NoMissesMessage = "No wrong answers."

// Item is the display form of one missed question.
type Item struct {
	Question   string
	Chosen     int
	ChosenText string
	Correct    int
	AnswerText string
}

// Items converts missed answers into display items, keeping session order.
func Items(missed []session.Miss) []Item {
	items := make([]Item, len(missed))
	for i, m := range missed {
		items[i] = Item{
			Question:   m.Question.Text,
			Chosen:     m.Chosen,
			ChosenText: m.Question.Option(m.Chosen),
			Correct:    m.Question.Correct,
			AnswerText: m.Question.Option(m.Question.Correct),
		}
	}
	return items
}

// Render returns the plain-text review of missed answers.
func Render(missed []session.Miss) string {
	if len(missed) == 0 {
		return NoMissesMessage + "\n"
	}

	var b strings.Builder
	b.WriteString("=========== REVIEW MODE ===========\n")
	for _, it := range Items(missed) {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Question: %s\n", it.Question)
		fmt.Fprintf(&b, "Your answer: %d) %s\n", it.Chosen, it.ChosenText)
		fmt.Fprintf(&b, "Correct option: %d) %s\n", it.Correct, it.AnswerText)
	}
	return b.String()
}

// Present writes the review of missed answers to w.
func Present(w io.Writer, missed []session.Miss) error {
	_, err := io.WriteString(w, Render(missed))
	return err
}
