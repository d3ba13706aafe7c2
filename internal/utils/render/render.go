// Package render prints host facts as styled text, tables, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text  Format = "text"
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return Text, nil
	case Text, JSON, YAML, Table:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

type Row struct {
	Key   string
	Value string
}

// Section is one block of output. Rows feed the text and table formats; Value
// is encoded as-is under Key for JSON and YAML.
type Section struct {
	Title string
	Key   string
	Rows  []Row
	Value any
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	titleCaser = cases.Title(language.English)
)

// Write prints sections to w in the requested format.
func Write(w io.Writer, format Format, sections ...Section) error {
	switch format {
	case Text, "":
		return writeText(w, sections)
	case Table:
		return writeTable(w, sections)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(structured(sections))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(structured(sections)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Label turns a leaf name like "os-release" into "Os Release".
func Label(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "-", " "))
}

func structured(sections []Section) map[string]any {
	out := make(map[string]any, len(sections))
	for _, s := range sections {
		out[s.Key] = s.Value
	}
	return out
}

func writeText(w io.Writer, sections []Section) error {
	var builder strings.Builder

	for i, s := range sections {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(titleStyle.Render(s.Title + ":"))
		builder.WriteString("\n")

		width := 0
		for _, r := range s.Rows {
			width = max(width, len(Label(r.Key)))
		}
		for _, r := range s.Rows {
			label := fmt.Sprintf("%-*s", width+1, Label(r.Key)+":")
			builder.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render(label), r.Value))
		}
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func writeTable(w io.Writer, sections []Section) error {
	for _, s := range sections {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.SetTitle(s.Title)
		t.AppendHeader(table.Row{"Property", "Value"})
		for _, r := range s.Rows {
			t.AppendRow(table.Row{r.Key, r.Value})
		}
		t.Render()
	}

	return nil
}
