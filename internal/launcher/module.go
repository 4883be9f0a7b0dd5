package launcher

import (
	"context"
	"fmt"

	"github.com/matheus3301/gamechat/internal/activity"
	"github.com/matheus3301/gamechat/internal/bus"
	"github.com/matheus3301/gamechat/internal/config"
	"github.com/matheus3301/gamechat/internal/dataset"
	"github.com/matheus3301/gamechat/internal/logging"
	"github.com/matheus3301/gamechat/internal/paths"
	"github.com/matheus3301/gamechat/internal/state"
	"github.com/matheus3301/gamechat/internal/tui"
	"github.com/matheus3301/gamechat/internal/tui/model"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the command-line inputs passed to the fx module.
type Params struct {
	ConfigPath string // empty = ~/.gamechat/config.toml
	LogPath    string // empty = ~/.gamechat/logs/gamechat.log
	Overrides  config.Overrides
}

// Module returns the fx module for the app, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("gamechat",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideDataset,
			provideState,
			provideRecorder,
			provideApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

// EventLogger routes fx's own events to zap so they stay off the terminal.
func EventLogger(logger *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: logger.Named("fx")}
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = paths.ConfigPath()
	}
	return config.Resolve(path, p.Overrides)
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	path := p.LogPath
	if path == "" {
		path = paths.LogPath()
	}
	return logging.New(path, level)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideDataset(logger *zap.Logger) (*dataset.Dataset, error) {
	ds, err := dataset.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.Uint("version", ds.Version()),
		zap.Int("chats", len(ds.Chats())),
		zap.Int("contacts", len(ds.Contacts())),
	)
	return ds, nil
}

func provideState(cfg *config.Config, ds *dataset.Dataset, b *bus.Bus) (*state.AppState, error) {
	tab, err := state.ParseTab(cfg.InitialTab)
	if err != nil {
		return nil, fmt.Errorf("initial_tab: %w", err)
	}
	opts := state.Options{
		PremiumEnabled: cfg.PremiumEnabled,
		InitialTab:     tab,
	}
	// the first conversation starts open
	if chats := ds.Chats(); len(chats) > 0 {
		opts.InitialChat = chats[0].ID
	}
	return state.New(opts, ds, b)
}

func provideRecorder(b *bus.Bus, logger *zap.Logger) *activity.Recorder {
	return activity.NewRecorder(b, logger)
}

func provideApp(st *state.AppState, ds *dataset.Dataset, cfg *config.Config, logger *zap.Logger) *tui.App {
	return tui.NewApp(st, ds, model.Options{SearchFilters: cfg.SearchFilters}, logger)
}

func registerLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *tui.App, recorder *activity.Recorder, b *bus.Bus, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start the recorder before the UI so the first mutation is seen.
			recorder.Start(context.Background())

			logger.Info("starting",
				zap.Bool("premium_enabled", cfg.PremiumEnabled),
				zap.String("initial_tab", cfg.InitialTab),
				zap.Bool("search_filters", cfg.SearchFilters),
			)

			go func() {
				code := 0
				if err := app.Run(); err != nil {
					logger.Error("tui error", zap.Error(err))
					code = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Warn("shutdown request failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			app.Stop()
			recorder.Stop()
			b.Close()
			logger.Info("stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
