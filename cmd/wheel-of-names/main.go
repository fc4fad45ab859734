package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/wheel-of-names/audio"
	"github.com/lixenwraith/wheel-of-names/config"
	"github.com/lixenwraith/wheel-of-names/document"
	"github.com/lixenwraith/wheel-of-names/game"
	"github.com/lixenwraith/wheel-of-names/logger"
	"github.com/lixenwraith/wheel-of-names/wheel"
)

const appName = "wheel-of-names"

// activeScreen is restored by the crash handlers
var activeScreen tcell.Screen

func main() {
	// Panic Recovery: Ensure terminal is reset even if the wheel crashes
	defer func() {
		if r := recover(); r != nil {
			crash("WHEEL CRASHED", r)
		}
	}()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func crash(label string, r any) {
	if activeScreen != nil {
		activeScreen.Fini()
	}
	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", label, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

func run(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	loader := config.NewLoader()
	if err := loader.Flags(flags); err != nil {
		return err
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	log, closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	set, opts, err := loadEntries(cfg, log)
	if err != nil {
		return err
	}

	settings := game.SettingsFromConfig(cfg)
	if opts != nil {
		settings.ApplyDocument(*opts)
	}

	rng := wheel.DefaultRNG()
	if cfg.Seed != 0 {
		rng = wheel.NewSeededRNG(cfg.Seed)
	}

	if cfg.Simulate > 0 {
		return simulate(stdout, set, settings, cfg.Simulate, rng)
	}
	return runTUI(cfg, set, settings, rng, log)
}

// setupLogging builds the configured logger. --debug sends debug logs to a
// rotated file under logs/; otherwise logging is off unless configured,
// since the terminal belongs to the UI.
func setupLogging(cfg *config.Config) (logger.Logger, io.Closer, error) {
	lc := cfg.Log
	if cfg.Debug {
		lc = logger.DebugConfig(lc)
	}
	log, closer, err := logger.Build(appName, lc)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	return log, closer, nil
}

// loadEntries reads the wheel document when one is configured, falling back
// to the configured names. A document path that does not exist yet becomes
// the save target for a wheel built from the names.
func loadEntries(cfg *config.Config, log logger.Logger) (*wheel.EntrySet, *document.Options, error) {
	if cfg.File != "" {
		doc, err := document.Load(cfg.File)
		switch {
		case err == nil:
			set, err := doc.EntrySet(cfg.Palette)
			if err != nil {
				return nil, nil, err
			}
			log.WithFields(map[string]any{"file": cfg.File, "id": doc.ID}).
				Infof("loaded %d entries (document version %d)", set.Len(), doc.Version)
			return set, &doc.Options, nil
		case errors.Is(err, fs.ErrNotExist):
			log.Infof("%s does not exist yet, starting from names", cfg.File)
		default:
			return nil, nil, err
		}
	}

	set, err := wheel.FromNames(cfg.Names, cfg.Palette)
	if err != nil {
		return nil, nil, err
	}
	return set, nil, nil
}

func runTUI(cfg *config.Config, set *wheel.EntrySet, settings game.Settings, rng wheel.RNG, log logger.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	activeScreen = screen
	// Normal exit terminal cleanup
	defer screen.Fini()

	acfg := audio.DefaultAudioConfig()
	acfg.Enabled = cfg.Audio.Enabled
	acfg.MasterVolume = cfg.Audio.Volume
	acfg.SampleRate = cfg.Audio.SampleRate
	if err := acfg.Validate(); err != nil {
		log.Warnf("audio config: %v", err)
		acfg.Enabled = false
	}
	player := audio.Open(acfg, log)
	defer player.Close()

	g, err := game.New(screen, wheel.New(set, rng), settings,
		game.WithLogger(log),
		game.WithPlayer(player),
		game.WithCrashHandler(func(r any) {
			log.Errorf("event poller crashed: %v", r)
			crash("EVENT POLLER CRASHED", r)
		}),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("session started with %d entries", set.Len())
	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("session ended")
	return nil
}
