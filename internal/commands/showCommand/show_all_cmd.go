package showCommand

import (
	"github.com/redjax/ietfsys/internal/utils/render"
	"github.com/spf13/cobra"
)

func NewShowAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Show every host fact",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newProvider()
			if err != nil {
				return err
			}

			host, err := hostnameSection(p)
			if err != nil {
				return err
			}

			info, err := p.GetPlatformInfo()
			if err != nil {
				return err
			}
			platform, err := platformSection(info, nil)
			if err != nil {
				return err
			}

			clock, err := clockSection(p)
			if err != nil {
				return err
			}

			netSecs, release, err := netSections(p)
			if err != nil {
				return err
			}
			defer release()

			sections := append([]render.Section{host, platform, clock}, netSecs...)
			return write(cmd, sections...)
		},
	}
}
