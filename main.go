package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/envcheck"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config  string           `short:"c" default:"config.yml" help:"Path to the YAML configuration file"`
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Play    PlayCmd    `cmd:"" default:"1" help:"Play Tic-Tac-Toe in the terminal"`
	Display DisplayCmd `cmd:"" help:"Print the value of the display environment variable"`
}

type PlayCmd struct{}

func (that *PlayCmd) Run(cli *CLI) error {
	conf := initConfig(cli.Config)

	logger, logOutput, err := initLogger(conf)
	if err != nil {
		return err
	}
	defer logOutput.Close()

	if err = app.RunApp(logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

type DisplayCmd struct {
	Var string `default:"${display_var}" help:"Environment variable to inspect"`
}

func (that *DisplayCmd) Run() error {
	fmt.Println(envcheck.Describe(that.Var))
	return nil
}

// main - is the entry point of the application. It parses the command line and runs the selected command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Two-player Tic-Tac-Toe for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"display_var": envcheck.DefaultVariable,
		},
	)

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// initialize config.
func initConfig(path string) *config.Config {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	return config.MustLoad(path)
}

// initialize logger. The terminal belongs to the UI, so logs go to a file
// unless stderr is asked for explicitly.
func initLogger(conf *config.Config) (*slog.Logger, io.Closer, error) {
	var output io.WriteCloser = nopCloser{os.Stderr}

	if !conf.LogToStderr() {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		output = file
	}

	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if conf.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})), output, nil
	}

	handler := charmlog.NewWithOptions(output, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
	})

	return slog.New(handler), output, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
