package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmuldo/huecode/internal/errs"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// point the config at a file that does not exist so $HOME is never read
	args = append(args, "--config", filepath.Join(t.TempDir(), "none.yaml"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyJSON(t *testing.T) {
	out, err := run(t, "classify", "#0a0a0a", "C81E1E", "--format", "json", "--distances=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["code"] != "Bk" || rows[1]["code"] != "R" {
		t.Fatalf("unexpected codes: %v", rows)
	}
	if rows[1]["label"] != "C81E1E" || rows[1]["hex"] != "#c81e1e" {
		t.Fatalf("unexpected labels: %v", rows[1])
	}
	if rows[0]["url"] != "https://www.color-hex.com/color/0a0a0a" {
		t.Fatalf("unexpected url: %v", rows[0]["url"])
	}
}

func TestClassifyText(t *testing.T) {
	out, err := run(t, "classify", "#ffff00", "--format", "text", "--distances")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Yellow (Y)") || !strings.Contains(out, "Black") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestClassifyLookupURL(t *testing.T) {
	out, err := run(t, "classify", "#00ff00", "--format", "json", "--lookup-url", "https://example.test/{hex}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "https://example.test/00ff00") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	// restore for the other tests
	if _, err := run(t, "classify", "#00ff00", "--format", "json", "--lookup-url", "https://www.color-hex.com/color/{hex}"); err != nil {
		t.Fatal(err)
	}
}

func TestClassifyInvalidHex(t *testing.T) {
	_, err := run(t, "classify", "#zz0000", "--format", "text")
	if !errs.IsKind(err, errs.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestPaletteCommand(t *testing.T) {
	out, err := run(t, "palette", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(rows) != 6 || rows[0]["name"] != "Red" || rows[5]["name"] != "White" {
		t.Fatalf("unexpected palette: %v", rows)
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "#0a0a0a", "#000000", "--weight", "10", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var row map[string]interface{}
	if err := json.Unmarshal([]byte(out), &row); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	w, _ := row["weighted"].(float64)
	if w < 15.88 || w > 15.89 {
		t.Fatalf("unexpected weighted distance %v", row["weighted"])
	}
}

func TestCatalogCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `items:
  - name: Nero Marquina
    color: "#0a0a0a"
  - name: Calacatta
    color: "#fafafa"
  - name: Unknown Slab
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "catalog", path, "--format", "json", "--workers", "2", "--summary=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(rows) != 3 || rows[0]["code"] != "Bk" || rows[1]["code"] != "W" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	if rows[2]["error"] == nil {
		t.Fatalf("expected error for item without color: %v", rows[2])
	}

	out, err = run(t, "catalog", path, "--format", "json", "--summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"code": "Bk"`) || !strings.Contains(out, `"count": 1`) {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestCatalogCommandMissingFile(t *testing.T) {
	_, err := run(t, "catalog", filepath.Join(t.TempDir(), "nope.yaml"), "--format", "json")
	if !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestSheetCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	out, err := run(t, "sheet", "#0a0a0a", "#c81e1e", "-o", path, "--cell", "8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("unexpected output %q", out)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("expected png at %s: %v", path, err)
	}
}
