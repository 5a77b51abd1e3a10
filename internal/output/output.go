package output

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lcereceda/accessnav/internal/index"
	"github.com/lcereceda/accessnav/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ScanResult is the top-level output of the `scan` command: the navigable
// index built from a container snapshot.
type ScanResult struct {
	App      string        `yaml:"app,omitempty"    json:"app,omitempty"`
	Window   string        `yaml:"window,omitempty" json:"window,omitempty"`
	TS       int64         `yaml:"ts"               json:"ts"`
	Total    int           `yaml:"total"            json:"total"`
	Elements []index.Entry `yaml:"elements"         json:"elements"`
}

// TreeResult is the raw element tree output when `scan --tree` is used.
type TreeResult struct {
	App      string          `yaml:"app,omitempty"    json:"app,omitempty"`
	Window   string          `yaml:"window,omitempty" json:"window,omitempty"`
	TS       int64           `yaml:"ts"               json:"ts"`
	Elements []model.Element `yaml:"elements"         json:"elements"`
}

// InterpretResult is the output of the `interpret` command.
type InterpretResult struct {
	Input    string `yaml:"input"              json:"input"`
	Action   string `yaml:"action"             json:"action"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// StepResult is the output of one navigation step in non-interactive use.
type StepResult struct {
	Position     int    `yaml:"position"     json:"position"`
	Total        int    `yaml:"total"        json:"total"`
	ID           int    `yaml:"id"           json:"id"`
	Role         string `yaml:"role"         json:"role"`
	Label        string `yaml:"label"        json:"label"`
	Announcement string `yaml:"announcement" json:"announcement"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
