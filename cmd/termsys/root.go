package main

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

type globalOptions struct {
	configPath string
	backend    string
	logLevel   string
}

func addGlobalFlags(fs *flag.FlagSet, opts *globalOptions) {
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.backend, "backend", "", "Platform backend: auto, term or syscall")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func newRootCmd(app *Application) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "termsys",
		Short: "Inspect and drive the terminal through the platform layer",
		Long: `termsys exercises the terminal platform layer: raw and canonical
input modes, window size queries, resize detection and the locked
standard input.

Environment Variables:
  TERMSYS_CONFIG        Path to config file
  TERMSYS_BACKEND       Platform backend (auto, term, syscall)
  TERMSYS_LOG_LEVEL     Log level (debug, info, warn, error)
  TERMSYS_LOG_FILE      Write logs to this rotated file instead of stderr
  TERMSYS_RESIZE_POLL   Resize poll interval (default: 100ms)

Configuration file: ~/.config/termsys/config.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Setup(opts)
		},
	}
	addGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		newSizeCmd(app),
		newDirsCmd(app),
		newKeysCmd(app),
		newWatchCmd(app),
		newExecCmd(app),
	)
	return root
}
