// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --log-level.
package cmd

import (
	"log/slog"

	"github.com/redjax/ietfsys/internal/commands/showCommand"
	"github.com/redjax/ietfsys/internal/config"
	"github.com/redjax/ietfsys/internal/logging"
	"github.com/redjax/ietfsys/internal/version"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "ietfsys",
	// A short description of what the command does
	Short: "Host facts for an ietf-system provider",
	// A longer description for the command
	Long: `Reports the hostname, platform identity, clock and network addresses of this host
in the textual form the ietf-system data model expects.`,
	SilenceUsage: true,
	// Load config and set up logging before any subcommand runs
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cmd.Flags(), cfgFile)
		if err != nil {
			return err
		}

		if err := logging.Configure(cfg.Log.Level); err != nil {
			return err
		}
		slog.Debug("configuration loaded", "file", cfgFile, "output", cfg.Output.Format, "underflow", cfg.Clock.Underflow)

		return nil
	},
	// Adds a help menu you can display with --help/-h
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	defaults := config.Defaults()

	// Add flags to the CLI's root command, making them 'global'.
	// Dashes in flag names map to dots in config keys (--log-level -> log.level).
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (JSON, YAML, TOML or .env)")
	flags.String("log-level", defaults.Log.Level, "Log level: debug, info, warn, error")
	flags.StringP("output-format", "o", defaults.Output.Format, "Output format: text, json, yaml, table")
	flags.Int("hostname-maxlength", defaults.Hostname.MaxLength, "Longest host name accepted from the OS")
	flags.String("clock-underflow", defaults.Clock.Underflow, "When uptime exceeds the clock: reject or clamp")
	flags.String("resolver-path", defaults.Resolver.Path, "resolv.conf-format file to read DNS settings from")

	// Add other CLI subcommands
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(version.NewVersionCommand())
	rootCmd.AddCommand(version.NewSelfCommand())
}
