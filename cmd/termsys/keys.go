package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nakkulla/termsys/pkg/sys"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

func newKeysCmd(app *Application) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the bytes of each key press in raw mode (q or Ctrl-C quits)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.EnterRawMode(); err != nil {
				return err
			}
			defer app.Restore()

			in, err := sys.Stdin()
			if err != nil {
				return err
			}
			defer in.Close()

			return echoKeys(in, cmd.OutOrStdout())
		},
	}
}

// echoKeys prints each byte read from in as hex until a quit key or EOF.
// Output processing is off in raw mode, so lines end in CRLF.
func echoKeys(in io.ByteReader, out io.Writer) error {
	fmt.Fprint(out, "press keys, q to quit\r\n")
	for {
		b, err := in.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}

		if b >= 0x20 && b < 0x7f {
			fmt.Fprintf(out, "%02x %q\r\n", b, rune(b))
		} else {
			fmt.Fprintf(out, "%02x\r\n", b)
		}

		switch b {
		case 'q', keyCtrlC, keyCtrlD:
			return nil
		}
	}
}
