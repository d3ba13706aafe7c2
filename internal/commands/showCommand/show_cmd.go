package showCommand

import (
	"github.com/redjax/ietfsys/internal/config"
	platformservice "github.com/redjax/ietfsys/internal/services/platformService"
	"github.com/redjax/ietfsys/internal/utils/render"

	"github.com/spf13/cobra"
)

func NewShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show host facts, i.e. show platform.",
		Long: `Print the host facts an ietf-system provider reports.

Every subcommand queries the OS again; nothing is cached.

Run ietfsys show --help to see all options.
`,
	}

	// Attach subcommands
	showCmd.AddCommand(NewHostnameCmd())
	showCmd.AddCommand(NewPlatformCmd())
	showCmd.AddCommand(NewShowClockCmd())
	showCmd.AddCommand(NewShowNetCmd())
	showCmd.AddCommand(NewShowAllCmd())

	return showCmd
}

// newProvider builds a platform provider from the loaded configuration.
func newProvider() (*platformservice.Provider, error) {
	cfg := config.Current()

	policy, err := platformservice.ParseUnderflowPolicy(cfg.Clock.Underflow)
	if err != nil {
		return nil, err
	}

	return platformservice.New(
		platformservice.WithHostnameMaxLen(cfg.Hostname.MaxLength),
		platformservice.WithUnderflowPolicy(policy),
		platformservice.WithResolvConf(cfg.Resolver.Path),
	), nil
}

func write(cmd *cobra.Command, sections ...render.Section) error {
	format, err := render.ParseFormat(config.Current().Output.Format)
	if err != nil {
		return err
	}

	return render.Write(cmd.OutOrStdout(), format, sections...)
}

func rows(props []platformservice.Property) []render.Row {
	out := make([]render.Row, 0, len(props))
	for _, p := range props {
		out = append(out, render.Row{Key: p.Name, Value: p.Value})
	}
	return out
}
