package cmds

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telton/swatch/theme"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := runWithLogs(t, args...)
	return out, err
}

func runWithLogs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = &errOut

	err := root.Run(context.Background(), append([]string{"swatch"}, args...))
	return out.String(), errOut.String(), err
}

func TestList_Text(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	assert.Equal(t,
		"default: primaryColor=\"74, 144,226\" primaryTextColor=\"74, 144,226\"\n"+
			"dark: primaryColor=\"0,0,0\" primaryTextColor=\"0,0,0\"\n",
		out)
}

func TestList_PrettyPrint(t *testing.T) {
	out, err := run(t, "list", "--pretty-print")
	require.NoError(t, err)

	for _, want := range []string{"Available Themes", "default", "dark", "2 themes"} {
		assert.Contains(t, out, want)
	}
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, "ls", "--format", "json")
	require.NoError(t, err)

	var entries []themeEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []themeEntry{
		{Name: "default", PrimaryColor: "74, 144,226", PrimaryTextColor: "74, 144,226"},
		{Name: "dark", PrimaryColor: "0,0,0", PrimaryTextColor: "0,0,0"},
	}, entries)
}

func TestList_YAML(t *testing.T) {
	out, err := run(t, "list", "-f", "yaml")
	require.NoError(t, err)

	var entries []themeEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "default", entries[0].Name)
	assert.Equal(t, theme.Color("74, 144,226"), entries[0].PrimaryColor)
	assert.Equal(t, theme.Color("0,0,0"), entries[1].PrimaryTextColor)
}

func TestList_UnknownFormat(t *testing.T) {
	_, err := run(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format value: xml")
}

func TestShow_Text(t *testing.T) {
	out, err := run(t, "show", "default")
	require.NoError(t, err)

	for _, want := range []string{"default", "primaryColor", "74, 144,226", "#4a90e2", "rgb(74, 144,226)"} {
		assert.Contains(t, out, want)
	}
}

func TestShow_JSON(t *testing.T) {
	out, err := run(t, "show", "--format", "json", "dark")
	require.NoError(t, err)

	var entry themeEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, themeEntry{Name: "dark", PrimaryColor: "0,0,0", PrimaryTextColor: "0,0,0"}, entry)
}

func TestShow_Unknown(t *testing.T) {
	_, err := run(t, "show", "solarized")
	require.ErrorIs(t, err, theme.ErrNotFound)
}

func TestShow_Fallback(t *testing.T) {
	out, logs, err := runWithLogs(t, "show", "--fallback", "--format", "json", "solarized")
	require.NoError(t, err)

	var entry themeEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "default", entry.Name)
	assert.Equal(t, theme.Color("74, 144,226"), entry.PrimaryColor)

	assert.Contains(t, logs, "level=WARN")
	assert.Contains(t, logs, `msg="Theme not found, using default"`)
	assert.Contains(t, logs, "theme=solarized")
	assert.NotContains(t, out, "Theme not found")
}

func TestShow_FallbackJSONLogs(t *testing.T) {
	_, logs, err := runWithLogs(t, "--log-format", "json", "show", "--fallback", "solarized")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(logs)), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "Theme not found, using default", record["msg"])
	assert.Equal(t, "solarized", record["theme"])
}

func TestShow_FallbackSilencedByLogLevel(t *testing.T) {
	_, logs, err := runWithLogs(t, "--log-level", "error", "show", "--fallback", "solarized")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestLogFlags_FromEnv(t *testing.T) {
	t.Setenv("SWATCH_LOG_LEVEL", "debug")
	t.Setenv("SWATCH_LOG_FORMAT", "json")

	_, logs, err := runWithLogs(t, "list")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(logs)), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "Listing themes", record["msg"])
	assert.EqualValues(t, 2, record["count"])
}

func TestLogLevel_DefaultHidesDebug(t *testing.T) {
	_, logs, err := runWithLogs(t, "list")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestShow_MissingArgument(t *testing.T) {
	_, err := run(t, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required argument")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "swatch ")
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := encode(&buf, "toml", nil)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
