package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nakkulla/termsys/pkg/sys"
)

func newSizeCmd(app *Application) *cobra.Command {
	var ruler bool

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Print the window size as rows and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := sys.GetWindowSize()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d %d\n", size.Rows, size.Cols)
			if ruler {
				fmt.Fprintln(out, renderRuler(int(size.Cols)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ruler, "ruler", false, "Draw a column ruler as wide as the window")
	return cmd
}

// renderRuler draws a ruler exactly width cells wide, with a tick every five
// columns and a cross every ten. Box-drawing runes are ambiguous-width, so
// cells are measured rather than counted.
func renderRuler(width int) string {
	var b strings.Builder
	used := 0
	for col := 1; ; col++ {
		cell := "─"
		switch {
		case col%10 == 0:
			cell = "┼"
		case col%5 == 0:
			cell = "┴"
		}
		w := runewidth.StringWidth(cell)
		if used+w > width {
			break
		}
		b.WriteString(cell)
		used += w
	}
	return b.String()
}
