package questionbank

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `1
What planet is known as the Red Planet?
Venus
Mars
Jupiter
Mercury
2
2
What is the chemical symbol for gold?
Ag
Gd
Au
Go
3

1
How many legs does an insect have?
Four
Eight
Ten
Six
4
3
What is the atomic number of carbon?
4
6
8
12
2
`

func TestParse_FiltersByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		wantTexts  []string
	}{
		{Easy, []string{"What planet is known as the Red Planet?", "How many legs does an insect have?"}},
		{Medium, []string{"What is the chemical symbol for gold?"}},
		{Hard, []string{"What is the atomic number of carbon?"}},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			qs, err := Parse(strings.NewReader(sampleSource), "sample.txt", tt.difficulty, 0)
			require.NoError(t, err)

			var texts []string
			for _, q := range qs {
				assert.Equal(t, tt.difficulty, q.Difficulty)
				texts = append(texts, q.Text)
			}
			assert.Equal(t, tt.wantTexts, texts)
		})
	}
}

func TestParse_RecordFields(t *testing.T) {
	qs, err := Parse(strings.NewReader(sampleSource), "sample.txt", Medium, 0)
	require.NoError(t, err)
	require.Len(t, qs, 1)

	q := qs[0]
	assert.Equal(t, [OptionCount]string{"Ag", "Gd", "Au", "Go"}, q.Options)
	assert.Equal(t, 3, q.Correct)
	assert.Equal(t, "Au", q.Option(q.Correct))
	assert.True(t, q.IsCorrect(3))
	assert.False(t, q.IsCorrect(1))
}

func TestParse_TruncatedTrailingRecord(t *testing.T) {
	src := sampleSource + "1\nHalf a question?\nA\nB\n"
	qs, err := Parse(strings.NewReader(src), "sample.txt", Easy, 0)
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestParse_TruncatedBeforeCorrectOption(t *testing.T) {
	src := "1\nQ?\nA\nB\nC\nD\n"
	qs, err := Parse(strings.NewReader(src), "sample.txt", Easy, 0)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestParse_CRLF(t *testing.T) {
	src := strings.ReplaceAll(sampleSource, "\n", "\r\n")
	qs, err := Parse(strings.NewReader(src), "sample.txt", Easy, 0)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Mars", qs[0].Options[1])
}

func TestParse_CapacityBound(t *testing.T) {
	qs, err := Parse(strings.NewReader(sampleSource), "sample.txt", Easy, 1)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "What planet is known as the Red Planet?", qs[0].Text)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
	}{
		{"non-numeric difficulty", "easy\nQ?\nA\nB\nC\nD\n1\n", 1},
		{"difficulty out of range", "4\nQ?\nA\nB\nC\nD\n1\n", 1},
		{"non-numeric correct option", "1\nQ?\nA\nB\nC\nD\nB\n", 7},
		{"correct option out of range", "1\nQ?\nA\nB\nC\nD\n5\n", 7},
		{"second record bad", "1\nQ?\nA\nB\nC\nD\n1\n\nx\n", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src), "bad.txt", Easy, 0)
			require.Error(t, err)

			var dataErr *DataError
			require.True(t, errors.As(err, &dataErr), "expected *DataError, got %T", err)
			assert.Equal(t, "bad.txt", dataErr.Source)
			assert.Equal(t, tt.wantLine, dataErr.Line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	qs, err := Parse(strings.NewReader("\n\n"), "empty.txt", Easy, 0)
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestBank_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"science.txt": {Data: []byte(sampleSource)},
	}
	b := New(fsys, 0)
	assert.Equal(t, DefaultMaxQuestions, b.MaxQuestions())

	qs, err := b.Load(Science, Easy)
	require.NoError(t, err)
	assert.Len(t, qs, 2)
}

func TestBank_LoadMissingSource(t *testing.T) {
	b := New(fstest.MapFS{}, 0)

	_, err := b.Load(Sports, Easy)
	require.Error(t, err)

	var dataErr *DataError
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "sports.txt", dataErr.Source)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBank_LoadRejectsUnknownSelection(t *testing.T) {
	b := New(fstest.MapFS{}, 0)

	_, err := b.Load(Category(9), Easy)
	assert.Error(t, err)

	_, err = b.Load(Science, Difficulty(0))
	assert.Error(t, err)
}

func TestBundled_EveryCategoryPlayable(t *testing.T) {
	b := NewFromDir("", 0)
	for _, c := range AllCategories() {
		for _, d := range AllDifficulties() {
			qs, err := b.Load(c, d)
			require.NoError(t, err, "%s/%s", c, d)
			assert.GreaterOrEqual(t, len(qs), 10, "%s/%s", c, d)
			for _, q := range qs {
				assert.Equal(t, d, q.Difficulty)
			}
		}
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Hard", Hard.String())
	assert.Equal(t, "IQ", IQ.String())
	assert.Equal(t, "computer.txt", Computer.FileName())
	assert.Equal(t, "", Category(0).FileName())
	assert.False(t, Difficulty(4).Valid())
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in   string
		cat  Category
		diff Difficulty
		ok   bool
	}{
		{"science", Science, 0, true},
		{"IQ", IQ, 0, true},
		{"3", Sports, Hard, true},
		{"hard", 0, Hard, true},
		{" Medium ", 0, Medium, true},
		{"9", 0, 0, false},
		{"history", 0, 0, false},
	}
	for _, tt := range tests {
		c, cerr := ParseCategory(tt.in)
		d, derr := ParseDifficulty(tt.in)
		if !tt.ok {
			assert.Error(t, cerr, tt.in)
			assert.Error(t, derr, tt.in)
			continue
		}
		if tt.cat != 0 {
			require.NoError(t, cerr, tt.in)
			assert.Equal(t, tt.cat, c)
		}
		if tt.diff != 0 {
			require.NoError(t, derr, tt.in)
			assert.Equal(t, tt.diff, d)
		}
	}
}
