package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/minish/core"
	"github.com/josephlewis42/minish/core/config"
	"github.com/spf13/cobra"
)

// EnvDebug enables debug logging on stderr when set.
const EnvDebug = "MINISH_DEBUG"

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "minish",
})

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minish [prompt]",
	Short: "Minimal interactive command dispatcher",
	Long: `Reads one command per line, runs it as a child process and reports the
child's process ID and exit status. Arguments are separated by spaces, there
is no quoting or expansion. Enter "exit" to quit.`,
	Args: cobra.ArbitraryArgs,
	// The prompt may look like a flag, e.g. "-> ".
	DisableFlagParsing: true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		logger.SetOutput(cmd.ErrOrStderr())

		if len(args) > 1 {
			logger.Debug("ignoring extra arguments", "args", args[1:])
		}

		configuration, err := config.Load(args)
		if err != nil {
			return err
		}

		launcher, err := core.NewExecLauncher()
		if err != nil {
			return err
		}

		dispatcher := core.NewDispatcher(configuration, launcher, logger)
		return dispatcher.Run(core.NewIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if _, ok := os.LookupEnv(EnvDebug); ok {
		logger.SetLevel(log.DebugLevel)
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
