package showCommand

import (
	"fmt"
	"log/slog"
	"strings"

	platformservice "github.com/redjax/ietfsys/internal/services/platformService"
	"github.com/redjax/ietfsys/internal/utils/render"

	"github.com/spf13/cobra"
)

func NewPlatformCmd() *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Show platform information. You can pass multiple --property <propertyname> flags.",
		Long: `Show the running kernel's identity, as reported by uname.

Available properties for --property:
  - os-name (alias: os, sysname)
  - os-release (alias: release)
  - os-version (alias: version)
  - machine (alias: arch)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newProvider()
			if err != nil {
				return err
			}

			info, err := p.GetPlatformInfo()
			if err != nil {
				return err
			}
			slog.Debug("queried platform", "os-name", info.OsName, "machine", info.Machine)

			section, err := platformSection(info, properties)
			if err != nil {
				return err
			}

			return write(cmd, section)
		},
	}
	cmd.Flags().StringSliceVar(&properties, "property", nil, "Show only specific properties (can be repeated)")
	return cmd
}

// platformSection renders info, restricted to the requested properties when
// any are given.
func platformSection(info platformservice.PlatformInfo, properties []string) (render.Section, error) {
	section := render.Section{
		Title: "Platform",
		Key:   "platform",
		Value: info,
	}
	if len(properties) == 0 {
		section.Rows = rows(info.Properties())
		return section, nil
	}

	values := make(map[string]string, len(properties))
	for _, prop := range properties {
		var row render.Row
		switch strings.ToLower(prop) {
		case "os-name", "osname", "os", "sysname":
			row = render.Row{Key: "os-name", Value: info.OsName}
		case "os-release", "osrelease", "release":
			row = render.Row{Key: "os-release", Value: info.OsRelease}
		case "os-version", "osversion", "version":
			row = render.Row{Key: "os-version", Value: info.OsVersion}
		case "machine", "arch":
			row = render.Row{Key: "machine", Value: info.Machine}
		default:
			return render.Section{}, fmt.Errorf("unknown property: %s", prop)
		}
		section.Rows = append(section.Rows, row)
		values[row.Key] = row.Value
	}
	section.Value = values

	return section, nil
}
