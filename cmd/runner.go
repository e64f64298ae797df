package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Mshel/termsnake/internal/audio"
	"github.com/Mshel/termsnake/internal/game"
	"github.com/Mshel/termsnake/internal/ui"
	"github.com/charmbracelet/log"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"

	autopilotDefault = "default"
)

// settings are the runner-only knobs. Game tuning lives in game.Config.
type settings struct {
	Backend   string
	Autopilot string
	Sound     bool
	LogFile   string
	LogLevel  log.Level
}

func loadSettings() (settings, error) {
	s := settings{
		Backend:   backendTea,
		Autopilot: os.Getenv("SNAKE_AUTOPILOT"),
		LogFile:   os.Getenv("SNAKE_LOG_FILE"),
		LogLevel:  log.InfoLevel,
	}

	if backend := strings.ToLower(os.Getenv("SNAKE_BACKEND")); backend != "" {
		if backend != backendTea && backend != backendTcell {
			return settings{}, fmt.Errorf("invalid SNAKE_BACKEND %q: want %s or %s", backend, backendTea, backendTcell)
		}
		s.Backend = backend
	}

	if raw := os.Getenv("SNAKE_SOUND"); raw != "" {
		sound, err := strconv.ParseBool(raw)
		if err != nil {
			return settings{}, fmt.Errorf("invalid SNAKE_SOUND %q: %w", raw, err)
		}
		s.Sound = sound
	}

	if raw := os.Getenv("SNAKE_LOG_LEVEL"); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return settings{}, fmt.Errorf("invalid SNAKE_LOG_LEVEL %q: %w", raw, err)
		}
		s.LogLevel = level
	}

	return s, nil
}

// setupLogging points the default logger away from the terminal the game draws on.
func setupLogging(s settings) (io.Closer, error) {
	log.SetLevel(s.LogLevel)
	log.SetPrefix("termsnake")
	log.SetReportTimestamp(true)

	if s.LogFile == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

func newScreen(backend string) game.Screen {
	if backend == backendTcell {
		return ui.NewTcellScreen()
	}
	return ui.NewTeaScreen()
}

// newStrategy returns nil when the keyboard steers.
func newStrategy(autopilot string) (game.Strategy, func(), error) {
	switch autopilot {
	case "":
		return nil, func() {}, nil
	case autopilotDefault:
		return &game.DefaultStrategy{}, func() {}, nil
	}
	strategy, err := game.LoadLuaStrategy(autopilot)
	if err != nil {
		return nil, nil, err
	}
	return strategy, strategy.Close, nil
}

func run(stdout, stderr io.Writer) int {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	cfg, err := game.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logFile, err := setupLogging(s)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer logFile.Close()

	strategy, closeStrategy, err := newStrategy(s.Autopilot)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer closeStrategy()

	opts := []game.Option{}
	if strategy != nil {
		opts = append(opts, game.WithStrategy(strategy))
	}
	if s.Sound {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Warn("Sound disabled", "error", err)
		} else {
			defer sounds.Cleanup()
			opts = append(opts, game.WithListener(sounds))
		}
	}

	gm, err := game.NewGameManager(newScreen(s.Backend), cfg, opts...)
	if err != nil {
		log.Error("Could not start game", "error", err)
		fmt.Fprintln(stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := gm.Run(ctx)
	return report(stdout, stderr, gm.Score, runErr)
}

// report prints the outcome once the terminal is restored and picks the exit code.
func report(stdout, stderr io.Writer, score int, err error) int {
	switch {
	case err == nil:
		fmt.Fprintf(stdout, "score: %d\n", score)
		return 0
	case game.IsCollision(err), errors.Is(err, game.ErrNoSpaceForFood):
		fmt.Fprintf(stdout, "game over: %v\n", err)
		fmt.Fprintf(stdout, "score: %d\n", score)
		return 1
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}
