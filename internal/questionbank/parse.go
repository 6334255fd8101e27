package questionbank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A record is seven lines: difficulty, text, four options, correct option.

var errTruncated = errors.New("truncated record")

// recordReader reads question records line by line, tracking line numbers
// for error reporting.
type recordReader struct {
	sc     *bufio.Scanner
	source string
	line   int
}

func (rr *recordReader) next() (string, error) {
	if !rr.sc.Scan() {
		if err := rr.sc.Err(); err != nil {
			return "", &DataError{Source: rr.source, Err: err}
		}
		return "", errTruncated
	}
	rr.line++
	return strings.TrimRight(rr.sc.Text(), "\r"), nil
}

func (rr *recordReader) intField(s, name string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &DataError{Source: rr.source, Line: rr.line, Err: fmt.Errorf("invalid %s %q", name, s)}
	}
	if n < lo || n > hi {
		return 0, &DataError{Source: rr.source, Line: rr.line, Err: fmt.Errorf("%s %d out of range %d-%d", name, n, lo, hi)}
	}
	return n, nil
}

// record reads one full record. io.EOF means the input ended cleanly between
// records; errTruncated means it ended inside one.
func (rr *recordReader) record() (Question, error) {
	var q Question

	// Blank lines between records are tolerated.
	var head string
	for {
		s, err := rr.next()
		if errors.Is(err, errTruncated) {
			return q, io.EOF
		}
		if err != nil {
			return q, err
		}
		if strings.TrimSpace(s) != "" {
			head = s
			break
		}
	}

	d, err := rr.intField(head, "difficulty", int(Easy), int(Hard))
	if err != nil {
		return q, err
	}
	q.Difficulty = Difficulty(d)

	if q.Text, err = rr.next(); err != nil {
		return q, err
	}
	for i := range q.Options {
		if q.Options[i], err = rr.next(); err != nil {
			return q, err
		}
	}

	tail, err := rr.next()
	if err != nil {
		return q, err
	}
	if q.Correct, err = rr.intField(tail, "correct option", 1, OptionCount); err != nil {
		return q, err
	}
	return q, nil
}

// Parse reads question records from r and returns those whose difficulty
// equals difficulty, in file order. At most max questions are returned
// (max <= 0 means no bound); further matches are dropped silently.
//
// A trailing partial record ends parsing without error. A record with a
// non-numeric or out-of-range difficulty or correct option is a *DataError.
func Parse(r io.Reader, source string, difficulty Difficulty, max int) ([]Question, error) {
	rr := &recordReader{sc: bufio.NewScanner(r), source: source}

	var out []Question
	for max <= 0 || len(out) < max {
		q, err := rr.record()
		if errors.Is(err, io.EOF) || errors.Is(err, errTruncated) {
			break
		}
		if err != nil {
			return nil, err
		}
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out, nil
}
