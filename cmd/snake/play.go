package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// charsPerBlock keeps a block roughly square in a typical terminal font.
const charsPerBlock = 2

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start the game at the main menu.

Controls:
  Arrows/WASD  - Steer
  P            - Pause / resume
  M            - Sound on / off
  Enter/Space  - Play (menu)
  R/Enter      - Try again (game over)
  Esc/B        - Back to menu (game over)
  Q            - Quit (menu)
  Ctrl+C       - Quit
  Ctrl+S       - Save a text screenshot

The mouse works on every button, the sound toggle and the pause icon.

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func viewport(cfg config.Config) core.Viewport {
	return core.Viewport{Block: cfg.Board.Block, CharsPerBlock: charsPerBlock}
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("snake needs an interactive terminal; try \"snake scores --plain\" for piped output")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	scores, err := openScores(cfg, logger)
	if err != nil {
		return err
	}
	defer closeScores(scores, logger)

	set := assets.Load(cfg.Assets.Dir, logger)
	sound := audio.Open(audio.Options{
		Enabled:    cfg.Audio.Enabled,
		SampleRate: cfg.Audio.SampleRate,
		Sounds:     map[audio.Effect][]byte{audio.EffectEat: set.EatSound},
		Logger:     logger,
	})
	defer sound.Close()

	app, err := game.NewApp(game.Options{
		Config: cfg,
		Scores: scores,
		Sound:  sound,
		Assets: set,
		Logger: logger,
		Seed:   flagSeed,
	})
	if err != nil {
		return err
	}

	view := viewport(cfg)
	warnIfSmall(logger, view, cfg)

	logger.Info("game started", "backend", cfg.Highscore.Backend, "seed", flagSeed)
	err = tui.Run(game.NewMachine(app), tui.ModelOptions{
		View:          view,
		ScreenshotDir: filepath.Join(config.DataDir(), "screenshots"),
	})
	if err != nil {
		logger.Error("game ended with error", "error", err)
		return err
	}
	logger.Info("game ended")
	return nil
}

// warnIfSmall logs when the terminal cannot show the whole board.
func warnIfSmall(logger *log.Logger, view core.Viewport, cfg config.Config) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	cols, rows := view.Cells(cfg.Board.Width, cfg.Board.Height)
	if w < cols+2 || h < rows+3 {
		logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", cols+2, rows+3))
	}
}

// closeScores closes the highscore backend and logs a failure.
func closeScores(scores *highscore.Board, logger *log.Logger) {
	if err := scores.Close(); err != nil {
		logger.Warn("cannot close highscores", "error", err)
	}
}
