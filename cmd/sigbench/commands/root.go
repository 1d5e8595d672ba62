package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sigbench/internal/app"
	"sigbench/internal/util/logging"
)

// Execute runs the sigbench CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call gets its own config and
// viper instance.
func NewRootCmd() *cobra.Command {
	cfg := app.NewDefaultConfig()
	v := viper.New()

	root := &cobra.Command{
		Use:          "sigbench",
		Short:        "Ed25519/X25519 signing micro-benchmark",
		Long:         "Measure average latency of seed generation, key pair generation, signing and verification",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return app.Load(v, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := a.RunBenchmark()
			return err
		},
	}

	root.PersistentFlags().String("config-dir", cfg.ConfigDir, "Directory holding an optional sigbench config file")
	root.PersistentFlags().String("log", cfg.LogLevel, "Log level (debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().String("log-file", cfg.LogFile, "Also append log entries to this file")

	root.Flags().Uint32P("iterations", "n", cfg.Iterations, "Calls per benchmark phase")
	root.Flags().StringP("message", "m", cfg.Message, "Message signed and verified by the benchmark")
	root.Flags().Bool("strict", cfg.Strict, "Exit non-zero if any operation failed")

	root.AddCommand(keygenCmd(cfg), verifyCmd(cfg))
	return root
}

func commandLogger(cmd *cobra.Command, cfg *app.Config) *logrus.Entry {
	return logging.Component(logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFile), cmd.Name())
}
