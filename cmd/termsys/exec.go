package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nakkulla/termsys/pkg/session"
)

func newExecCmd(app *Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec -- COMMAND [ARGS...]",
		Short: "Run a command in a pseudo-terminal that follows this terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := session.New(app.Platform, app.Logger, app.Config.ResizePollInterval)
			if err := s.Start(args[0], args[1:], nil); err != nil {
				return err
			}

			// Setup graceful shutdown
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt)
			defer func() {
				signal.Stop(sigChan)
				close(sigChan)
			}()
			go func() {
				if _, ok := <-sigChan; !ok {
					return
				}
				if err := s.Stop(); err != nil {
					app.Logger.Error("error stopping process", "error", err)
				}
				app.SetExitCode(130)
			}()

			if err := s.CopyIO(os.Stdin, os.Stdout); err != nil {
				app.Logger.Warn("I/O error", "error", err)
			}

			err := s.Wait()
			var exitErr *exec.ExitError
			if err != nil && !errors.As(err, &exitErr) {
				return fmt.Errorf("error running %s: %w", args[0], err)
			}
			if app.ExitCode() == 0 {
				app.SetExitCode(s.ExitCode())
			}
			return nil
		},
	}
	// Flags after COMMAND belong to COMMAND
	cmd.Flags().SetInterspersed(false)
	return cmd
}
