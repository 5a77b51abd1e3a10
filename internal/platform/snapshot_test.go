package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lcereceda/accessnav/internal/model"
)

const yamlSnapshot = `
app: Turnos
window: Registro
elements:
  - i: 1
    r: group
    c:
      - i: 2
        r: button
        l: Guardar
      - i: 3
        r: input
        ph: Nombre
  - i: 4
    r: lnk
    t: Inicio
`

func TestParseSnapshot_YAMLNormalizesRoles(t *testing.T) {
	snap, err := ParseSnapshot([]byte(yamlSnapshot))
	if err != nil {
		t.Fatalf("ParseSnapshot failed: %v", err)
	}
	if snap.App != "Turnos" || snap.Window != "Registro" {
		t.Errorf("header = %q/%q, want Turnos/Registro", snap.App, snap.Window)
	}
	if len(snap.Elements) != 2 {
		t.Fatalf("got %d root elements, want 2", len(snap.Elements))
	}
	// Raw markup roles are rewritten to compact codes.
	if got := snap.Elements[0].Children[0].Role; got != model.RoleButton {
		t.Errorf("role = %q, want %q", got, model.RoleButton)
	}
	if got := snap.Elements[0].Children[1].Role; got != model.RoleInput {
		t.Errorf("role = %q, want %q", got, model.RoleInput)
	}
	// Compact codes pass through untouched.
	if got := snap.Elements[1].Role; got != model.RoleLink {
		t.Errorf("role = %q, want %q", got, model.RoleLink)
	}
}

func TestParseSnapshot_JSON(t *testing.T) {
	src := `{"elements":[{"i":1,"r":"button","l":"OK"}]}`
	snap, err := ParseSnapshot([]byte(src))
	if err != nil {
		t.Fatalf("ParseSnapshot failed: %v", err)
	}
	if len(snap.Elements) != 1 || snap.Elements[0].Role != model.RoleButton {
		t.Errorf("elements = %+v", snap.Elements)
	}
}

func TestParseSnapshot_Invalid(t *testing.T) {
	if _, err := ParseSnapshot([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := ParseSnapshot([]byte("elements: [:")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestFileReader_RereadsOnEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.yaml")
	if err := os.WriteFile(path, []byte(yamlSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}
	r := &FileReader{Path: path}

	first, err := r.ReadElements()
	if err != nil {
		t.Fatalf("ReadElements failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("got %d roots, want 2", len(first))
	}

	// Rewrite the container; the next read must see the new tree.
	if err := os.WriteFile(path, []byte("elements:\n  - {i: 9, r: btn, l: Solo}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := r.ReadElements()
	if err != nil {
		t.Fatalf("ReadElements after rewrite failed: %v", err)
	}
	if len(second) != 1 || second[0].ID != 9 {
		t.Errorf("after rewrite got %+v, want single element 9", second)
	}
}

func TestFileReader_Missing(t *testing.T) {
	r := &FileReader{Path: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := r.ReadElements(); err == nil {
		t.Error("expected error for missing snapshot file")
	}
}

func TestStreamReader_ParsesOnceAndCaches(t *testing.T) {
	r := &StreamReader{R: strings.NewReader(yamlSnapshot)}
	first, err := r.ReadElements()
	if err != nil {
		t.Fatalf("ReadElements failed: %v", err)
	}
	second, err := r.ReadElements()
	if err != nil {
		t.Fatalf("second ReadElements failed: %v", err)
	}
	if len(first) != len(second) {
		t.Error("cached read differs from first read")
	}
}
