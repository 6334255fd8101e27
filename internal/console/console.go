package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizsys/internal/leaderboard"
	"github.com/abhisek/quizsys/internal/questionbank"
	"github.com/abhisek/quizsys/internal/quiz"
	"github.com/abhisek/quizsys/internal/review"
	"github.com/abhisek/quizsys/internal/session"
)

const (
	menuStart = iota + 1
	menuLeaderboard
	menuExit
)

// Console is the numbered-menu, line-oriented front end.
type Console struct {
	svc *quiz.Service
	p   *prompter
	out io.Writer
}

// New creates a Console reading from in and writing to out.
func New(svc *quiz.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		p:   &prompter{in: bufio.NewScanner(in), out: out},
		out: out,
	}
}

// Run shows the main menu until the player exits or input ends.
func (c *Console) Run() error {
	for {
		fmt.Fprintln(c.out, "==========================")
		fmt.Fprintln(c.out, "       QUIZ SYSTEM        ")
		fmt.Fprintln(c.out, "==========================")
		fmt.Fprintln(c.out, "1. Start New Quiz")
		fmt.Fprintln(c.out, "2. View Leaderboard")
		fmt.Fprintln(c.out, "3. Exit")

		choice, err := c.p.choice("Enter choice: ", "Invalid choice.", menuStart, menuExit)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case menuStart:
			if err := c.startQuiz(); err != nil {
				return endOfInput(err)
			}
		case menuLeaderboard:
			c.showLeaderboard()
		case menuExit:
			return nil
		}
		fmt.Fprintln(c.out)
	}
}

// endOfInput treats exhausted input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// startQuiz runs one session: selection, questions, summary, recording and
// optional review. Only input errors are returned; data problems are
// reported and hand control back to the menu.
func (c *Console) startQuiz() error {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Select Category:")
	for _, cat := range questionbank.AllCategories() {
		fmt.Fprintf(c.out, "%d. %s\n", int(cat), cat)
	}
	cat, err := c.p.choice("Enter: ", "Invalid category.", int(questionbank.Science), int(questionbank.IQ))
	if err != nil {
		return err
	}

	diff, err := c.p.choice("Difficulty (1=Easy, 2=Medium, 3=Hard): ", "Invalid difficulty.",
		int(questionbank.Easy), int(questionbank.Hard))
	if err != nil {
		return err
	}

	category := questionbank.Category(cat)
	state, err := c.svc.Start(category, questionbank.Difficulty(diff))
	if err != nil {
		c.reportStartError(err)
		return nil
	}

	res, err := session.Play(state, c)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "=========== QUIZ COMPLETE ===========")
	fmt.Fprintf(c.out, "Correct: %d\n", res.Correct)
	fmt.Fprintf(c.out, "Incorrect: %d\n", res.Incorrect)
	fmt.Fprintf(c.out, "Final Score: %d\n", res.Score)

	name, err := c.p.nonEmpty("Enter your name: ")
	if err != nil {
		return err
	}
	if _, err := c.svc.Finish(name, category, res); err != nil {
		fmt.Fprintf(c.out, "Could not save leaderboard: %v\n", err)
	}

	ok, err := c.p.yes("Do you want to review wrong answers? (Y/N): ")
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(c.out)
		return review.Present(c.out, res.Missed)
	}
	return nil
}

func (c *Console) reportStartError(err error) {
	var insufficient *session.InsufficientDataError
	var dataErr *questionbank.DataError
	switch {
	case errors.As(err, &insufficient):
		fmt.Fprintln(c.out, "Not enough questions for this difficulty.")
	case errors.As(err, &dataErr):
		fmt.Fprintf(c.out, "Could not load questions: %v\n", dataErr)
	default:
		fmt.Fprintf(c.out, "Could not start quiz: %v\n", err)
	}
}

// Ask implements session.AnswerSource.
func (c *Console) Ask(number, total int, q questionbank.Question) (int, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Question %d of %d\n", number, total)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(c.out, "%d) %s\n", i+1, opt)
	}
	return c.p.choice("Enter your answer (1-4): ", "Enter a valid option (1-4).", 1, questionbank.OptionCount)
}

// Answered implements session.Feedback.
func (c *Console) Answered(_ questionbank.Question, _ int, correct bool) {
	if correct {
		fmt.Fprintln(c.out, "Correct.")
	} else {
		fmt.Fprintln(c.out, "Wrong.")
	}
}

func (c *Console) showLeaderboard() {
	entries, err := c.svc.Leaderboard()
	if err != nil {
		fmt.Fprintf(c.out, "Could not read leaderboard: %v\n", err)
		return
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No leaderboard entries yet.")
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "========== LEADERBOARD ==========")
	fmt.Fprint(c.out, FormatLeaderboard(entries))
}

// FormatLeaderboard renders entries one per line for display.
func FormatLeaderboard(entries []leaderboard.Entry) string {
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. Name: %s  Date: %s  Score: %d  Diff: %s\n",
			i+1, e.Name, e.Date, e.Score, e.Difficulty)
	}
	return b.String()
}
