package showCommand

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	platformservice "github.com/redjax/ietfsys/internal/services/platformService"
	"github.com/redjax/ietfsys/internal/utils/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linuxInfo = platformservice.PlatformInfo{
	OsName:    "Linux",
	OsRelease: "5.15.0",
	OsVersion: "#1 SMP",
	Machine:   "x86_64",
}

func TestPlatformSectionAllProperties(t *testing.T) {
	section, err := platformSection(linuxInfo, nil)
	require.NoError(t, err)

	assert.Equal(t, "platform", section.Key)
	assert.Equal(t, linuxInfo, section.Value)
	assert.Equal(t, []render.Row{
		{Key: "os-name", Value: "Linux"},
		{Key: "os-release", Value: "5.15.0"},
		{Key: "os-version", Value: "#1 SMP"},
		{Key: "machine", Value: "x86_64"},
	}, section.Rows)
}

func TestPlatformSectionSelectedProperties(t *testing.T) {
	section, err := platformSection(linuxInfo, []string{"arch", "Release"})
	require.NoError(t, err)

	assert.Equal(t, []render.Row{
		{Key: "machine", Value: "x86_64"},
		{Key: "os-release", Value: "5.15.0"},
	}, section.Rows)
	assert.Equal(t, map[string]string{"machine": "x86_64", "os-release": "5.15.0"}, section.Value)

	_, err = platformSection(linuxInfo, []string{"kernel"})
	assert.Error(t, err)
}

func TestClockSection(t *testing.T) {
	p := platformservice.New(
		platformservice.WithClock(func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }),
		platformservice.WithUptime(func() (int64, error) { return 120, nil }),
		platformservice.WithLocation(time.UTC),
	)

	section, err := clockSection(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.JSON, section))

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "2024-03-10T11:58:00Z", got["clock"]["boot-datetime"])
	assert.Equal(t, "2024-03-10T12:00:00Z", got["clock"]["current-datetime"])
	assert.Equal(t, "UTC", got["clock"]["timezone-name"])
}

func TestClockSectionPropagatesFailure(t *testing.T) {
	p := platformservice.New(
		platformservice.WithUptime(func() (int64, error) { return 0, errors.New("boom") }),
	)

	_, err := clockSection(p)
	assert.ErrorIs(t, err, platformservice.ErrUptimeQuery)
}

func TestNetSections(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "resolv.conf")
	require.NoError(t, os.WriteFile(conf, []byte("search example.com\nnameserver 192.0.2.53\n"), 0o644))

	p := platformservice.New(
		platformservice.WithResolvConf(conf),
		platformservice.WithGateway(func() (net.IP, error) { return net.ParseIP("192.0.2.1"), nil }),
		platformservice.WithInterfaces(
			func() ([]net.Interface, error) {
				return []net.Interface{{Name: "eth0", Flags: net.FlagUp}}, nil
			},
			func(net.Interface) ([]net.Addr, error) {
				return []net.Addr{&net.IPNet{IP: net.ParseIP("192.0.2.10"), Mask: net.CIDRMask(24, 32)}}, nil
			},
		),
	)

	sections, release, err := netSections(p)
	require.NoError(t, err)
	defer release()

	require.Len(t, sections, 3)
	assert.Equal(t, "dns-resolver", sections[0].Key)
	assert.Equal(t, "default-gateway", sections[1].Key)
	assert.Equal(t, []render.Row{{Key: "default-gateway", Value: "192.0.2.1"}}, sections[1].Rows)
	assert.Equal(t, []render.Row{{Key: "eth0", Value: "192.0.2.10 (up)"}}, sections[2].Rows)

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, render.JSON, sections...))
	assert.Contains(t, buf.String(), `"192.0.2.53"`)
	assert.Contains(t, buf.String(), `"example.com"`)
}

func TestNetSectionsWithoutGateway(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "resolv.conf")
	require.NoError(t, os.WriteFile(conf, []byte("nameserver 192.0.2.53\n"), 0o644))

	p := platformservice.New(
		platformservice.WithResolvConf(conf),
		platformservice.WithGateway(func() (net.IP, error) { return nil, errors.New("no route") }),
		platformservice.WithInterfaces(
			func() ([]net.Interface, error) { return nil, nil },
			func(net.Interface) ([]net.Addr, error) { return nil, nil },
		),
	)

	sections, release, err := netSections(p)
	require.NoError(t, err)
	defer release()

	require.Len(t, sections, 2)
	assert.Equal(t, "interfaces", sections[1].Key)
}

func TestShowPlatformCommand(t *testing.T) {
	cmd := NewShowCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"platform", "--property", "os-name"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Os Name:")
}
