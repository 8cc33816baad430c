// snake is the classic snake arcade game for the terminal.
//
// Usage:
//
//	snake                  - Play (same as "snake play")
//	snake play             - Play in this terminal
//	snake scores           - Show the best scores
//	snake scores reset     - Delete all saved scores
//	snake serve            - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--seed <value>       - RNG seed for reproducible food placement
//	--scores <path>      - Highscore file or database
//	--backend <kind>     - Highscore backend: json, sqlite, text
//	--difficulty <name>  - Speed preset: easy, normal, hard
//	--log-file <path>    - Log destination while the game owns the terminal
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagScores     string
	flagBackend    string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Steer the snake, eat the fruit, do not bite yourself or the walls.
Every few fruits the snake speeds up and changes color.

Available commands:
  play     - Play in this terminal (default)
  scores   - View or reset the best scores
  serve    - Start SSH server for remote play

Examples:
  snake
  snake --difficulty hard
  snake --backend sqlite --scores ~/.snake/scores.db
  snake scores --plain
  snake serve`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagScores, "scores", "", "Path to the highscore file (overrides config)")
	pf.StringVar(&flagBackend, "backend", "", "Highscore backend: "+backendKinds()+" (overrides config)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", filepath.Join(config.DataDir(), "snake.log"), "Log file used while playing")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func backendKinds() string {
	var kinds []string
	for _, b := range highscore.List() {
		kinds = append(kinds, b.Kind)
	}
	return strings.Join(kinds, ", ")
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Highscore.Backend = flagBackend
	}
	if flagScores != "" {
		cfg.Highscore.Path = flagScores
	}
	return cfg, cfg.Validate()
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}

// openLogFile opens the log file for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path, err := highscore.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openScores opens the configured highscore backend.
func openScores(cfg config.Config, logger *log.Logger) (*highscore.Board, error) {
	backend, err := highscore.Open(cfg.Highscore.Backend, cfg.Highscore.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("highscores opened", "backend", cfg.Highscore.Backend, "path", cfg.Highscore.Path)
	return highscore.NewBoard(backend, logger), nil
}
