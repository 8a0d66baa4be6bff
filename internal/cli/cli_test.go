package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/bumpfile/internal/accessor"
	"github.com/indaco/bumpfile/internal/clix"
	"github.com/indaco/bumpfile/internal/core"
	"github.com/indaco/bumpfile/internal/printer"
)

const (
	actionYAML = "name: Tool\nruns:\n  using: docker\n  image: \"registry.example.com/tool:v1.2.3\"\n"
	cargoTOML  = "[package]\nname = \"x\"\nversion = \"0.4.0\" # keep\n"
)

// setup creates a project directory, makes it the working directory and
// captures printer output.
func setup(t *testing.T) (dir string, out, errOut *bytes.Buffer) {
	t.Helper()

	// Keep prompts and spinners out of the way.
	t.Setenv("CI", "true")
	t.Setenv("BUMPFILE_MANIFEST_MODE", "")

	dir = t.TempDir()
	writeFile(t, filepath.Join(dir, "action.yml"), actionYAML)
	writeFile(t, filepath.Join(dir, "Cargo.toml"), cargoTOML)

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	restore := printer.SetOutput(out, errOut)
	t.Cleanup(restore)
	printer.SetNoColor(true)

	return dir, out, errOut
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func run(args ...string) error {
	env := &clix.Env{FS: core.NewOSFileSystem()}
	return New(env).Run(context.Background(), append([]string{"bumpfile"}, args...))
}

func TestRead(t *testing.T) {
	_, out, _ := setup(t)

	if err := run("read", "action.yml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := run("read", "Cargo.toml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.String(); got != "1.2.3\n0.4.0\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRead_JSON(t *testing.T) {
	_, out, _ := setup(t)

	if err := run("read", "--json", "Cargo.toml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"path":"Cargo.toml","kind":"manifest","version":"0.4.0"}` + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRead_ExplicitKind(t *testing.T) {
	dir, out, _ := setup(t)
	writeFile(t, filepath.Join(dir, "descriptor"), actionYAML)

	if err := run("read", "--kind", "action", "descriptor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.String(); got != "1.2.3\n" {
		t.Errorf("output = %q", got)
	}

	if err := run("read", "--kind", "yaml", "descriptor"); err == nil {
		t.Error("expected error for invalid kind")
	}
}

func TestRead_Errors(t *testing.T) {
	dir, _, _ := setup(t)
	writeFile(t, filepath.Join(dir, "broken.toml"), "[package\n")

	if err := run("read"); err == nil {
		t.Error("expected error for missing file argument")
	}
	if err := run("read", "broken.toml"); !errors.Is(err, accessor.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
	if err := run("read", "missing.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWrite_Action(t *testing.T) {
	dir, out, _ := setup(t)

	if err := run("write", "action.yml", "1.3.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readFile(t, filepath.Join(dir, "action.yml")); !strings.Contains(got, "registry.example.com/tool:v1.3.0") {
		t.Errorf("action.yml not updated:\n%s", got)
	}
	if !strings.Contains(out.String(), "Updated action.yml from 1.2.3 to 1.3.0") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestWrite_ManifestEdit(t *testing.T) {
	dir, _, _ := setup(t)

	if err := run("write", "Cargo.toml", "0.5.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "[package]\nname = \"x\"\nversion = \"0.5.0\" # keep\n"
	if got := readFile(t, filepath.Join(dir, "Cargo.toml")); got != want {
		t.Errorf("Cargo.toml =\n%q\nwant\n%q", got, want)
	}
}

func TestWrite_DryRun(t *testing.T) {
	dir, out, _ := setup(t)

	if err := run("write", "--dry-run", "Cargo.toml", "0.5.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readFile(t, filepath.Join(dir, "Cargo.toml")); got != cargoTOML {
		t.Errorf("dry run modified the file:\n%s", got)
	}
	if !strings.Contains(out.String(), "version = \"0.5.0\"") {
		t.Errorf("dry run did not print contents: %q", out.String())
	}
}

func TestWrite_MissingVersionNonInteractive(t *testing.T) {
	setup(t)

	err := run("write", "Cargo.toml")
	if err == nil || !strings.Contains(err.Error(), "missing version") {
		t.Errorf("expected missing version error, got %v", err)
	}
}

func TestWrite_WarnsOnLowerVersion(t *testing.T) {
	_, out, _ := setup(t)

	if err := run("write", "Cargo.toml", "0.3.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "lower than current version") {
		t.Errorf("expected warning, got %q", out.String())
	}
}

func TestWrite_ManifestDelegate(t *testing.T) {
	dir, out, _ := setup(t)

	// The version is appended to the command and becomes $0 of the script.
	config := "manifest:\n" +
		"  mode: delegate\n" +
		"  command: [sh, -c, 'printf \"[package]\\nname = \\\"x\\\"\\nversion = \\\"%s\\\"\\n\" \"$0\" > Cargo.toml']\n" +
		"  timeout: 30s\n"
	writeFile(t, filepath.Join(dir, ".bumpfile.yaml"), config)

	if err := run("write", "Cargo.toml", "0.9.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "[package]\nname = \"x\"\nversion = \"0.9.0\"\n"
	if got := readFile(t, filepath.Join(dir, "Cargo.toml")); got != want {
		t.Errorf("Cargo.toml =\n%q\nwant\n%q", got, want)
	}
	if !strings.Contains(out.String(), "Updated Cargo.toml from 0.4.0 to 0.9.0") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestWrite_ManifestDelegateFailure(t *testing.T) {
	dir, _, errOut := setup(t)
	writeFile(t, filepath.Join(dir, "release.yaml"), "manifest:\n  command: [sh, -c, 'echo nope >&2; exit 3']\n")

	err := run("--config", "release.yaml", "write", "--mode", "delegate", "Cargo.toml", "0.9.0")
	if !errors.Is(err, accessor.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if got := readFile(t, filepath.Join(dir, "Cargo.toml")); got != cargoTOML {
		t.Errorf("file changed after failed delegate:\n%s", got)
	}
	if !strings.Contains(errOut.String(), "nope") {
		t.Errorf("tool failure not logged: %q", errOut.String())
	}
}

func TestWrite_InvalidMode(t *testing.T) {
	setup(t)

	if err := run("write", "--mode", "rewrite", "Cargo.toml", "1.0.0"); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		file  string
		label string
		want  string
	}{
		{"Cargo.toml", "minor", "version = \"0.5.0\""},
		{"Cargo.toml", "patch", "version = \"0.4.1\""},
		{"action.yml", "major", "tool:v2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.file+"/"+tt.label, func(t *testing.T) {
			dir, _, _ := setup(t)

			if err := run("bump", tt.file, tt.label); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readFile(t, filepath.Join(dir, tt.file)); !strings.Contains(got, tt.want) {
				t.Errorf("%s does not contain %q:\n%s", tt.file, tt.want, got)
			}
		})
	}
}

func TestBump_Errors(t *testing.T) {
	dir, _, _ := setup(t)
	writeFile(t, filepath.Join(dir, "odd.toml"), "[package]\nversion = \"nightly\"\n")

	if err := run("bump", "Cargo.toml"); err == nil {
		t.Error("expected error for missing label")
	}
	if err := run("bump", "Cargo.toml", "huge"); err == nil {
		t.Error("expected error for unknown label")
	}
	if err := run("bump", "odd.toml", "patch"); err == nil {
		t.Error("expected error for non-semver current version")
	}
}

func TestInvalidConfig(t *testing.T) {
	dir, _, _ := setup(t)
	writeFile(t, filepath.Join(dir, ".bumpfile.yaml"), "manifest:\n  mode: sometimes\n")

	err := run("read", "Cargo.toml")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("expected invalid configuration error, got %v", err)
	}
}
