package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cosmobot/internal/config"
	"cosmobot/internal/core"
	"cosmobot/internal/provider"
	"cosmobot/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "config.toml", "Path to config file")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("CosmoBot %s\n", Version)
		os.Exit(0)
	}

	// .env is optional; environment wins either way.
	_ = godotenv.Load()

	if err := initLogging(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("version", Version).Msg("Starting CosmoBot")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	p := initProvider(cfg)

	bus := core.NewBus(64)
	defer bus.Close()

	session := core.NewSession(p, bus)
	applySessionDefaults(session, cfg)
	log.Debug().Str("session", session.ID()).Msg("Session initialized")

	// Subscribe before the program starts so no event is missed.
	eventCh := bus.Subscribe()

	model := tui.New(session, eventCh)
	program := tea.NewProgram(model, tea.WithAltScreen())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Received shutdown signal")
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("TUI error")
	}

	log.Info().Msg("CosmoBot shutdown complete")
}

func initLogging(debug bool) error {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}

	// Truncate on startup; the TUI owns stdout/stderr.
	logPath := filepath.Join(dataDir, "cosmobot.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	return nil
}

// initProvider selects the completion provider at startup. No credential
// means the provider stays unavailable for the whole session and the
// offline responder carries every reply.
func initProvider(cfg *config.Config) provider.Provider {
	if cfg.Provider.APIKey == "" {
		log.Info().Msg("No API key configured; offline responder only")
		return nil
	}

	log.Info().Str("model", cfg.Provider.Model).Msg("Completion provider configured")
	return provider.NewOpenAI(cfg.Provider.Endpoint, cfg.Provider.Model, cfg.Provider.APIKey, cfg.Provider.Temperature)
}

func applySessionDefaults(session *core.Session, cfg *config.Config) {
	if mode, ok := core.ParseMode(cfg.Session.Mode); ok {
		session.SetMode(mode)
	} else {
		log.Warn().Str("mode", cfg.Session.Mode).Msg("Unrecognized mode in config, keeping Standard")
	}
	session.SetCrewLogEnabled(cfg.Session.CrewLog)
	session.SetEventRate(cfg.Session.EventRate)
	session.SetSoundEnabled(cfg.Session.Sound)
	session.SetSector(cfg.Ship.Sector)
	session.SetFuel(cfg.Ship.Fuel)
}
