package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizsys/internal/questionbank"
)

// Environment variables read by Load.
const (
	EnvDataDir      = "QUIZSYS_DATA_DIR"
	EnvQuestionsDir = "QUIZSYS_QUESTIONS_DIR"
	EnvMaxQuestions = "QUIZSYS_MAX_QUESTIONS"
)

const (
	leaderboardFile = "high_scores.txt"
	logFile         = "quiz_logs.txt"
)

// Config holds file locations and the question capacity bound.
type Config struct {
	// DataDir holds the leaderboard and session log.
	DataDir string

	// QuestionsDir holds the per-category question files. Empty means the
	// questions bundled into the binary.
	QuestionsDir string

	// MaxQuestions bounds the questions loaded per category and difficulty.
	MaxQuestions int
}

// LeaderboardPath returns the leaderboard file path.
func (c *Config) LeaderboardPath() string {
	return filepath.Join(c.DataDir, leaderboardFile)
}

// LogPath returns the session log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, logFile)
}

// Load resolves configuration from the environment. A .env file in the
// working directory is loaded first if present; variables already set in
// the environment take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		QuestionsDir: os.Getenv(EnvQuestionsDir),
		MaxQuestions: questionbank.DefaultMaxQuestions,
	}

	if v := os.Getenv(EnvMaxQuestions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: %s=%q is not a positive integer", EnvMaxQuestions, v)
		}
		cfg.MaxQuestions = n
	}

	dataDir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

// DefaultDataDir resolves the data directory in priority order:
// 1. QUIZSYS_DATA_DIR environment variable
// 2. $XDG_DATA_HOME/quizsys
// 3. ~/.local/share/quizsys
func DefaultDataDir() (string, error) {
	if p := os.Getenv(EnvDataDir); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "quizsys"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o755)
}
