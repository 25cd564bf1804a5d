package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/showtrack/internal/config"
	"github.com/five82/showtrack/internal/datamanager"
	"github.com/five82/showtrack/internal/prefs"
	"github.com/five82/showtrack/internal/state"
	"github.com/five82/showtrack/internal/store"
	"github.com/five82/showtrack/internal/trakt"
	"github.com/five82/showtrack/internal/ui"
)

// Options configure the showtrack application. Non-zero fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/showtrack/prefs.toml
	DBPath     string
	ImportPath string // IMDb title.basics dataset loaded before the UI starts
	Tick       time.Duration
}

// Run boots the showtrack TUI until the user quits or a fatal error occurs.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DBPath != "" {
		if cfg.DBPath, err = config.ExpandPath(opts.DBPath); err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
	}
	if opts.Tick > 0 {
		cfg.Tick = opts.Tick
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	logPath := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "showtrack")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	log.Printf("level=info msg=\"starting\" db=%s api=%s tick=%s", cfg.DBPath, cfg.APIURL, cfg.Tick)

	writer, err := store.Open(cfg.DBPath, store.Options{})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = writer.Close() }()

	if opts.ImportPath != "" {
		if _, err := importTitles(ctx, writer, opts.ImportPath); err != nil {
			log.Printf("level=error msg=\"dataset import failed\" path=%s err=%q", opts.ImportPath, err)
			return err
		}
	}

	manager, err := datamanager.Init(func() (datamanager.Lister, error) {
		st, err := store.Open(cfg.DBPath, store.Options{})
		if err != nil {
			return nil, err
		}
		return st, nil
	})
	if err != nil {
		log.Printf("level=error msg=\"data manager init failed\" err=%q", err)
		return err
	}
	defer manager.Close()

	if cfg.APIKey == "" {
		log.Printf("level=warn msg=\"no trakt api key configured\" env=%s", config.APIKeyEnv)
	}
	client, err := trakt.NewClient(cfg.APIURL, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("init trakt client: %w", err)
	}

	app := state.New(manager, client, writer)

	err = ui.Run(ui.Options{
		Context:   ctx,
		App:       app,
		Tick:      cfg.Tick,
		ThemeName: userPrefs.Theme,
		PageStep:  userPrefs.PageStep,
		PrefsPath: prefsPath,
		LogPath:   logPath,
	})
	if err != nil {
		log.Printf("level=error msg=\"stopped\" err=%q", err)
		return err
	}
	log.Printf("level=info msg=\"stopped\"")
	return nil
}
