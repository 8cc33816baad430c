package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagPlain bool
	flagYes   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best scores",
	Long: `Display the saved best scores of the configured highscore backend.

The json and sqlite backends keep the top 10 names and scores; the text
backend keeps only the best score.

Examples:
  snake scores
  snake scores --plain
  snake scores --backend sqlite --scores ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved scores",
	Long: `Delete every saved score of the configured highscore backend.

Examples:
  snake scores reset --yes`,
	Args: cobra.NoArgs,
	RunE: runScoresReset,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresResetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deleting all scores")
	scoresCmd.AddCommand(scoresResetCmd)
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	scores, err := openScores(cfg, logger)
	if err != nil {
		return err
	}
	defer closeScores(scores, logger)

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.WritePlainScores(os.Stdout, scores)
	}
	return tui.RunScoreboard(scores)
}

func runScoresReset(_ *cobra.Command, _ []string) error {
	if !flagYes {
		return errors.New("refusing to delete scores without --yes")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	scores, err := openScores(cfg, logger)
	if err != nil {
		return err
	}
	defer closeScores(scores, logger)

	if err := scores.Reset(); err != nil {
		return fmt.Errorf("cannot reset scores: %w", err)
	}
	fmt.Printf("Deleted all scores in %s\n", cfg.Highscore.Path)
	return nil
}
