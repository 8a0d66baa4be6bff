package config

import (
	"os"
	"path/filepath"
	"testing"
)

// runInTempDir runs fn with the working directory set to a fresh temp dir
// containing a .bumpfile.yaml with content, or none when content is empty.
func runInTempDir(t *testing.T, content string, fn func(dir string)) {
	t.Helper()

	dir := t.TempDir()
	if content != "" {
		writeFile(t, filepath.Join(dir, DefaultConfigFile), content)
	}

	origDir, err := os.Getwd()
	if err != nil {
		origDir = os.TempDir()
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() { _ = os.Chdir(origDir) }()

	fn(dir)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func checkError(t *testing.T, err error, wantErr bool) {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("expected err=%v, got err=%v", wantErr, err)
	}
}

func checkMode(t *testing.T, cfg *Config, want string) {
	t.Helper()
	if cfg == nil || cfg.Manifest == nil {
		t.Fatalf("expected manifest config, got %+v", cfg)
	}
	if cfg.Manifest.Mode != want {
		t.Errorf("manifest.mode = %q, want %q", cfg.Manifest.Mode, want)
	}
}
