// Package cli wires configuration, logging and rendering for the tilepane commands.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/tilepane/internal/application/usecase"
	"github.com/bnema/tilepane/internal/cli/styles"
	"github.com/bnema/tilepane/internal/config"
	"github.com/bnema/tilepane/internal/domain/build"
	"github.com/bnema/tilepane/internal/domain/entity"
	"github.com/bnema/tilepane/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	Renderer  *styles.LayoutRenderer
	BuildInfo build.Info

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts ...config.ManagerOption) (*App, error) {
	mgr, err := config.NewManager(opts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	theme := styles.NewTheme(cfg)
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	if used := mgr.ConfigFileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("config loaded")
	}

	return &App{
		Config:   cfg,
		Manager:  mgr,
		Theme:    theme,
		Renderer: styles.NewLayoutRenderer(theme),
		ctx:      ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// NewLayout creates an empty layout sized from config.
func (a *App) NewLayout() *entity.Layout {
	return entity.NewLayout(entity.WithDefaultPaneSize(
		a.Config.Layout.DefaultSize,
		entity.Unit(a.Config.Layout.DefaultUnit),
	))
}

// NewScriptRunner creates a script runner over a fresh layout.
func (a *App) NewScriptRunner() (*usecase.RunScriptUseCase, *entity.Layout) {
	layout := a.NewLayout()
	return usecase.NewRunScriptUseCase(usecase.NewManagePanesUseCase(layout)), layout
}

// ApplyConfig swaps in a reloaded configuration and rebuilds the theme.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.Theme = styles.NewTheme(cfg)
	a.Renderer = styles.NewLayoutRenderer(a.Theme)
}
