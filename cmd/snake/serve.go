package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game starting at the menu.
All players share the server's highscores. Sound is off over SSH.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                           # Listen on the configured address
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Serve.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Serve.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Serve.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	hostKey := cfg.Serve.HostKeyPath
	if hostKey == "" {
		hostKey = filepath.Join(config.DataDir(), "host_key")
	}
	if hostKey, err = highscore.ExpandPath(hostKey); err != nil {
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

	set := assets.Load(cfg.Assets.Dir, logger)

	// Fail before listening when the board itself is unusable.
	if _, err := game.NewApp(game.Options{Config: cfg, Scores: scores, Assets: set}); err != nil {
		return err
	}

	factory := func(user string) (*game.Machine, error) {
		app, err := game.NewApp(game.Options{
			Config: cfg,
			Scores: scores,
			Assets: set,
			Logger: logger.With("user", user),
			Seed:   flagSeed,
		})
		if err != nil {
			return nil, err
		}
		return game.NewMachine(app), nil
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Serve.Address,
		HostKeyPath: hostKey,
		IdleTimeout: cfg.Serve.IdleTimeout,
		View:        viewport(cfg),
	}, factory, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe(ctx)
}
