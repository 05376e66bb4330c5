package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/csheth/storynook/internal/catalog"
	"github.com/csheth/storynook/internal/config"
	"github.com/csheth/storynook/internal/logging"
	"github.com/csheth/storynook/internal/speech"
	"github.com/csheth/storynook/internal/tui"
)

type options struct {
	configPath  string
	catalogPath string
	storyPDF    string
	speech      string
	logFile     string
	noAltScreen bool
	skipSplash  bool
	debug       bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "storynook",
		Short:         "Picture-book reader for young children",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(opts); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "storynook:", err)
				return err
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/storynook/config.toml)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "catalog TOML file replacing the built-in library")
	flags.StringVar(&opts.storyPDF, "story-pdf", "", "import a picture-book PDF into the library at startup")
	flags.StringVar(&opts.speech, "speech", "", "speech engine: auto, espeak-ng, espeak, say, spd-say or none")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default $XDG_STATE_HOME/storynook/storynook.log)")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	flags.BoolVar(&opts.skipSplash, "skip-splash", false, "start on the welcome wizard")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	return cmd
}

func run(opts options) error {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.catalogPath != "" {
		settings.Catalog.Path = opts.catalogPath
	}
	if opts.speech != "" {
		settings.Speech.Engine = opts.speech
	}
	if opts.logFile != "" {
		settings.Log.File = opts.logFile
	}

	logger, closer, err := logging.New(logging.Options{
		File:  settings.Log.File,
		Level: settings.Log.Level,
		Debug: opts.debug,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	repo, err := loadCatalog(settings.Catalog.Path)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "books", len(repo.Books()), "path", settings.Catalog.Path)

	program := tea.NewProgram(
		tui.New(tui.Config{
			Catalog:    repo,
			Speaker:    newSpeaker(settings.Speech.Engine, logger),
			Logger:     logger,
			Settings:   settings,
			SkipSplash: opts.skipSplash,
			ImportPDF:  opts.storyPDF,
		}),
		programOptions(opts)...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func loadCatalog(path string) (*catalog.Memory, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func newSpeaker(name string, logger *log.Logger) speech.Speaker {
	engine, err := speech.Detect(name)
	if err != nil {
		if !errors.Is(err, speech.ErrUnavailable) {
			logger.Warn("speech engine lookup failed", "engine", name, "err", err)
		}
		logger.Warn("read aloud disabled", "engine", name)
		return speech.Unavailable{}
	}
	logger.Info("speech engine ready", "engine", engine.Name, "path", engine.Path)
	return speech.NewCommand(engine, logger)
}

func programOptions(opts options) []tea.ProgramOption {
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !opts.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	return programOpts
}
