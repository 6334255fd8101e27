package questionbank

import "fmt"

// DataError indicates a question source is missing, unreadable or malformed.
type DataError struct {
	Source string
	Line   int // 0 when the failure is not tied to a line
	Err    error
}

func (e *DataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("question data %s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("question data %s: %v", e.Source, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
