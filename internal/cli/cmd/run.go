package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tilepane/internal/application/usecase"
	"github.com/bnema/tilepane/internal/cli"
)

var (
	runTrace     bool
	runKeepGoing bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Apply a layout script and print the pane tree",
	Long: `Apply a layout script line by line and print the resulting pane tree.

Use '-' to read the script from stdin.

Examples:
  tilepane run layout.tp               # Print the final tree
  tilepane run --trace layout.tp       # Also print every pane event
  tilepane run --keep-going layout.tp  # Skip failing lines instead of stopping`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runTrace, "trace", "t", false, "print pane events as they are emitted (default from script.trace)")
	runCmd.Flags().BoolVarP(&runKeepGoing, "keep-going", "k", false, "continue after a failing line (default from script.stop_on_error)")
}

func runScript(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	src, name, closeSrc, err := openScript(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeSrc()

	stopOnError := app.Config.Script.StopOnError
	if cmd.Flags().Changed("keep-going") {
		stopOnError = !runKeepGoing
	}
	trace := app.Config.Script.Trace
	if cmd.Flags().Changed("trace") {
		trace = runTrace
	}

	return applyScript(app.Ctx(), cmd.OutOrStdout(), app, usecase.RunScriptInput{
		Name:        name,
		Source:      src,
		StopOnError: stopOnError,
	}, trace)
}

// applyScript runs one script on a fresh layout and prints the outcome.
func applyScript(ctx context.Context, w io.Writer, app *cli.App, input usecase.RunScriptInput, trace bool) error {
	if trace {
		input.Sink = cli.NewTraceSink(w, app.Renderer)
	}

	runner, layout := app.NewScriptRunner()
	out, err := runner.Run(ctx, input)
	if err != nil {
		return err
	}

	if trace {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, app.Renderer.RenderLayout(layout))
	if len(out.Errors) > 0 {
		fmt.Fprintln(w, app.Renderer.RenderScriptErrors(out.Errors))
	}
	fmt.Fprintln(w, app.Renderer.RenderSummary(out))

	if len(out.Errors) > 0 {
		return fmt.Errorf("%d script line(s) failed", len(out.Errors))
	}
	return nil
}

func openScript(cmd *cobra.Command, path string) (io.Reader, string, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("open script: %w", err)
	}
	return f, filepath.Base(path), func() { _ = f.Close() }, nil
}
