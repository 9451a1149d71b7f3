package cmds

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/telton/swatch/theme"
)

// themeEntry is the json/yaml shape of a single named theme.
type themeEntry struct {
	Name             string      `json:"name" yaml:"name"`
	PrimaryColor     theme.Color `json:"primaryColor" yaml:"primaryColor"`
	PrimaryTextColor theme.Color `json:"primaryTextColor" yaml:"primaryTextColor"`
}

func newThemeEntry(name string, t theme.Theme) themeEntry {
	return themeEntry{
		Name:             name,
		PrimaryColor:     t.PrimaryColor,
		PrimaryTextColor: t.PrimaryTextColor,
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format value: %s", format)
	}
	return nil
}
