package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	d := Defaults()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", d.Log.Level, "")
	fs.String("output-format", d.Output.Format, "")
	fs.Int("hostname-maxlength", d.Hostname.MaxLength, "")
	fs.String("clock-underflow", d.Clock.Underflow, "")
	fs.String("resolver-path", d.Resolver.Path, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(koanf.New("."), newFlagSet(t), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	path := writeFile(t, "ietfsys.yaml", `
log:
  level: info
output:
  format: json
clock:
  underflow: clamp
resolver:
  path: /run/systemd/resolve/resolv.conf
`)

	t.Setenv("IETFSYS_OUTPUT_FORMAT", "yaml")
	t.Setenv("IETFSYS_HOSTNAME_MAXLENGTH", "32")

	cfg, err := load(koanf.New("."), newFlagSet(t, "--log-level", "debug"), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 32, cfg.Hostname.MaxLength)
	assert.Equal(t, "clamp", cfg.Clock.Underflow)
	assert.Equal(t, "/run/systemd/resolve/resolv.conf", cfg.Resolver.Path)
}

func TestLoadJSONAndTOML(t *testing.T) {
	jsonPath := writeFile(t, "ietfsys.json", `{"output": {"format": "table"}}`)
	cfg, err := load(koanf.New("."), nil, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output.Format)

	tomlPath := writeFile(t, "ietfsys.toml", "[hostname]\nmaxlength = 16\n")
	cfg, err = load(koanf.New("."), nil, tomlPath)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Hostname.MaxLength)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "ietfsys.ini", "x=1")
	_, err := load(koanf.New("."), nil, path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Output.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Clock.Underflow = "wrap"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Hostname.MaxLength = 0
	assert.Error(t, bad.Validate())
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "ietfsys.json"), []byte(`{"resolver": {"path": "~/resolv.conf"}}`), 0o644))

	cfg, err := load(koanf.New("."), nil, "~/ietfsys.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "resolv.conf"), cfg.Resolver.Path)
}
