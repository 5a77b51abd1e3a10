package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lcereceda/accessnav/internal/model"
)

// Snapshot is the on-disk container format: the element tree of one page
// or window, as YAML or JSON. It is the same shape accessibility readers
// emit, so a snapshot can come from a live capture or be written by hand.
type Snapshot struct {
	App      string          `yaml:"app,omitempty" json:"app,omitempty"`
	Window   string          `yaml:"window,omitempty" json:"window,omitempty"`
	Elements []model.Element `yaml:"elements" json:"elements"`
}

// ParseSnapshot decodes a snapshot from YAML or JSON and normalizes raw
// markup roles to compact codes.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse JSON snapshot: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("failed to parse YAML snapshot: %w", err)
		}
	}
	model.NormalizeRoles(snap.Elements)
	return &snap, nil
}

// FileReader reads the container snapshot from a file on every call, so
// rescans always see the current content.
type FileReader struct {
	Path string
}

func (r *FileReader) ReadElements() ([]model.Element, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", r.Path, err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, err
	}
	return snap.Elements, nil
}

// StreamReader reads one snapshot from an io.Reader (stdin piping). The
// tree is parsed once and cached; rescans return the same tree.
type StreamReader struct {
	R io.Reader

	parsed   bool
	elements []model.Element
	err      error
}

func (r *StreamReader) ReadElements() ([]model.Element, error) {
	if !r.parsed {
		r.parsed = true
		data, err := io.ReadAll(r.R)
		if err != nil {
			r.err = fmt.Errorf("failed to read snapshot stream: %w", err)
		} else if snap, perr := ParseSnapshot(data); perr != nil {
			r.err = perr
		} else {
			r.elements = snap.Elements
		}
	}
	return r.elements, r.err
}

// StaticReader serves a fixed tree. Test and library-embedding adapter.
type StaticReader struct {
	Elements []model.Element
}

func (r *StaticReader) ReadElements() ([]model.Element, error) {
	return r.Elements, nil
}
