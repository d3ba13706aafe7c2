package showCommand

import (
	"log/slog"

	"github.com/redjax/ietfsys/internal/utils/render"
	"github.com/spf13/cobra"
)

func NewHostnameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hostname",
		Short: "Show the host name",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newProvider()
			if err != nil {
				return err
			}

			section, err := hostnameSection(p)
			if err != nil {
				return err
			}

			return write(cmd, section)
		},
	}
}

func hostnameSection(p hostnameQuerier) (render.Section, error) {
	name, err := p.GetHostname()
	if err != nil {
		return render.Section{}, err
	}
	slog.Debug("queried hostname", "hostname", name)

	return render.Section{
		Title: "System",
		Key:   "hostname",
		Rows:  []render.Row{{Key: "hostname", Value: name}},
		Value: name,
	}, nil
}

type hostnameQuerier interface {
	GetHostname() (string, error)
}
