package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/rhr/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "rhr",
	Short: "Right-hand rule practice",
	Long:  "rhr: practice the right-hand rule in the terminal, over HTTP, or from scripts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("addr", "", "Listen address for serve (overrides "+config.EnvAddr+")")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	flags.String("log-format", "", "Log format: text or json (overrides "+config.EnvLogFormat+")")
	flags.String("log-file", "", "Append logs to this file (overrides "+config.EnvLogFile+")")
	flags.String("pool", "", "Comma-separated problem type IDs (overrides "+config.EnvPool+")")
	flags.String("seed", "", "Seed for reproducible problems (overrides "+config.EnvSeed+")")

	rootCmd.Flags().Bool("skip-welcome", false, "Start on the home screen")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig returns the settings using flags (highest priority), then
// RHR_* env vars, then the defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv(nil)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"addr":       &cfg.ListenAddr,
		"log-level":  &cfg.LogLevel,
		"log-format": &cfg.LogFormat,
		"log-file":   &cfg.LogFile,
		"pool":       &cfg.Pool,
	} {
		if v, _ := flags.GetString(name); v != "" {
			*dst = v
		}
	}
	if v, _ := flags.GetString("seed"); v != "" {
		if err := cfg.SetSeed(v); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}
