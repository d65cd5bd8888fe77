package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nakkulla/termsys/pkg/sys"
)

func newWatchCmd(app *Application) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the window size every time it changes (Ctrl-C stops)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := sys.RegisterWinsizeChangeSignalHandler(); err != nil {
				return err
			}
			return watchSize(ctx, app, cmd.OutOrStdout())
		},
	}
}

// watchSize prints the current size, then polls for changes until ctx ends
func watchSize(ctx context.Context, app *Application, out io.Writer) error {
	printSize := func() {
		size, err := app.Platform.WindowSize()
		if err != nil {
			app.Logger.Warn("window size unavailable", "error", err)
			return
		}
		fmt.Fprintf(out, "%d %d\n", size.Rows, size.Cols)
	}
	printSize()

	ticker := time.NewTicker(app.Config.ResizePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if app.Platform.HasWindowSizeChanged() {
				printSize()
			}
		case <-ctx.Done():
			return nil
		}
	}
}
