package questionbank

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// DefaultMaxQuestions is the default bound on questions loaded per category
// and difficulty.
const DefaultMaxQuestions = 100

//go:embed data/*.txt
var bundled embed.FS

// Bundled returns the question files compiled into the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// Only fails on a malformed path literal.
		panic(err)
	}
	return sub
}

// Bank loads questions for a category from a file system holding one
// source file per category.
type Bank struct {
	fsys         fs.FS
	maxQuestions int
}

// New creates a Bank reading from fsys. maxQuestions bounds the questions
// returned by Load; values <= 0 use DefaultMaxQuestions.
func New(fsys fs.FS, maxQuestions int) *Bank {
	if maxQuestions <= 0 {
		maxQuestions = DefaultMaxQuestions
	}
	return &Bank{fsys: fsys, maxQuestions: maxQuestions}
}

// NewFromDir creates a Bank reading from dir, or from the bundled questions
// when dir is empty.
func NewFromDir(dir string, maxQuestions int) *Bank {
	if dir == "" {
		return New(Bundled(), maxQuestions)
	}
	return New(os.DirFS(dir), maxQuestions)
}

// MaxQuestions returns the per-load capacity bound.
func (b *Bank) MaxQuestions() int {
	return b.maxQuestions
}

// Load returns the category's questions at the given difficulty.
// A missing or unreadable source is reported as a *DataError.
func (b *Bank) Load(c Category, d Difficulty) ([]Question, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	if !d.Valid() {
		return nil, fmt.Errorf("unknown difficulty %d", int(d))
	}

	name := c.FileName()
	f, err := b.fsys.Open(name)
	if err != nil {
		return nil, &DataError{Source: name, Err: err}
	}
	defer f.Close()

	return Parse(f, name, d, b.maxQuestions)
}
