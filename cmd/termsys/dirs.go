package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nakkulla/termsys/pkg/sys"
)

func newDirsCmd(app *Application) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs [FILE...]",
		Short: "List configuration and data directories, and resolve file names",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, dir := range sys.ConfDirs() {
				fmt.Fprintf(out, "config\t%s\n", dir)
			}
			for _, dir := range sys.DataDirs() {
				fmt.Fprintf(out, "data\t%s\n", dir)
			}
			for _, name := range args {
				p := sys.ToPath(name)
				fmt.Fprintf(out, "path\t%s\t%s\tabs=%t\n", p, p.Clean(), p.IsAbs())
			}
			return nil
		},
	}
}
