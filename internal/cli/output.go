package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want text, table, json or yaml)", s)
	}
}

// Printer writes command results in the selected format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	return &Printer{out: out, format: format}
}

// Format returns the printer's output format.
func (p *Printer) Format() OutputFormat {
	return p.format
}

// Structured reports whether the format is machine readable.
func (p *Printer) Structured() bool {
	return p.format == OutputFormatJSON || p.format == OutputFormatYAML
}

// PrintStructured writes v as indented JSON or as YAML. YAML is derived from
// the JSON encoding so both formats share field names.
func (p *Printer) PrintStructured(v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	if p.format != OutputFormatYAML {
		_, err = fmt.Fprintln(p.out, string(jsonData))
		return err
	}

	var data interface{}
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = p.out.Write(yamlData)
	return err
}

// PrintTable renders rows under headers as a rounded table.
func (p *Printer) PrintTable(headers []string, rows [][]interface{}) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprint("No items found"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = text.FgHiCyan.Sprint(strings.ToUpper(h))
	}
	t.AppendHeader(header)
	for _, r := range rows {
		t.AppendRow(table.Row(r))
	}
	t.Render()
}
