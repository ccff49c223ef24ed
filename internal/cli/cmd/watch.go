package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/tilepane/internal/application/usecase"
	"github.com/bnema/tilepane/internal/cli"
	"github.com/bnema/tilepane/internal/config"
	"github.com/bnema/tilepane/internal/logging"
)

const watchDebounce = 100 * time.Millisecond

var watchTrace bool

var watchCmd = &cobra.Command{
	Use:   "watch <script>",
	Short: "Re-run a layout script whenever it changes",
	Long: `Run a layout script, then run it again on a fresh layout every time the
file is saved. Changes to config.toml are picked up as well.

Press Ctrl+C to stop.

Examples:
  tilepane watch layout.tp
  tilepane watch --trace layout.tp`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchTrace, "trace", "t", false, "print pane events as they are emitted")
}

func runWatch(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchScript(ctx, cmd.OutOrStdout(), app, path, watchTrace)
}

// watchScript runs the script at path, then again after every save and
// config reload, until ctx is done.
func watchScript(ctx context.Context, w io.Writer, app *cli.App, path string, trace bool) error {
	ctx = logging.WithComponent(ctx, "watch")
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	reloaded := make(chan *config.Config, 1)
	if app.Manager.ConfigFileUsed() != "" {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			// Latest config wins; this callback is the only sender.
			select {
			case reloaded <- cfg:
			default:
				select {
				case <-reloaded:
				default:
				}
				reloaded <- cfg
			}
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	rerun := func() {
		if err := runScriptFile(ctx, w, app, path, trace); err != nil {
			fmt.Fprintln(w, app.Renderer.RenderError(err))
		}
		fmt.Fprintln(w, app.Theme.Subtle.Render("watching "+path+" (Ctrl+C to stop)"))
	}
	rerun()

	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("watch stopped")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Msg("script changed")
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		case cfg := <-reloaded:
			log.Info().Msg("config reloaded")
			app.ApplyConfig(cfg)
			rerun()
		case <-debounce.C:
			rerun()
		}
	}
}

func runScriptFile(ctx context.Context, w io.Writer, app *cli.App, path string, trace bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	return applyScript(ctx, w, app, usecase.RunScriptInput{
		Name:        filepath.Base(path),
		Source:      f,
		StopOnError: app.Config.Script.StopOnError,
	}, trace || app.Config.Script.Trace)
}
