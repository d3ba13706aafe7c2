package showCommand

import (
	platformservice "github.com/redjax/ietfsys/internal/services/platformService"
	"github.com/redjax/ietfsys/internal/utils/render"
	"github.com/spf13/cobra"
)

func NewShowClockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clock",
		Aliases: []string{"time"},
		Short:   "Show host's clock info",
		Long:    `Show the boot time, current time and timezone of the host.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newProvider()
			if err != nil {
				return err
			}

			section, err := clockSection(p)
			if err != nil {
				return err
			}

			return write(cmd, section)
		},
	}

	return cmd
}

type clockQuerier interface {
	GetClockInfo() (platformservice.ClockInfo, error)
	GetTimezoneInfo() platformservice.TimezoneInfo
}

type clockValue struct {
	platformservice.ClockInfo    `yaml:",inline"`
	platformservice.TimezoneInfo `yaml:",inline"`
}

func clockSection(p clockQuerier) (render.Section, error) {
	clock, err := p.GetClockInfo()
	if err != nil {
		return render.Section{}, err
	}
	tz := p.GetTimezoneInfo()

	return render.Section{
		Title: "Clock",
		Key:   "clock",
		Rows:  rows(append(clock.Properties(), tz.Properties()...)),
		Value: clockValue{ClockInfo: clock, TimezoneInfo: tz},
	}, nil
}
