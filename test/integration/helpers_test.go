//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HUGOPOST_HOME, holds config.yaml
	SiteDir string // A mock Hugo site root inside a vault
}

// setupTestEnv creates isolated temp directories and points HUGOPOST_HOME at
// one of them so no real user config is read or written.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		SiteDir: t.TempDir(),
	}
	t.Setenv("HUGOPOST_HOME", env.HomeDir)

	for _, sub := range []string{"content/post", "archetypes", "obs_scripts"} {
		if err := os.MkdirAll(filepath.Join(env.SiteDir, sub), 0755); err != nil {
			t.Fatalf("creating %s: %v", sub, err)
		}
	}
	return env
}

// setupDeployScript writes obs_scripts/deploy.sh with the given body.
func setupDeployScript(t *testing.T, siteDir, body string) string {
	t.Helper()
	path := filepath.Join(siteDir, "obs_scripts", "deploy.sh")
	writeFile(t, path, body)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	return path
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertDirEmpty fails if the directory has any entries.
func assertDirEmpty(t *testing.T, path string) {
	t.Helper()
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if len(entries) != 0 {
		t.Errorf("expected %s to be empty, found %d entries", path, len(entries))
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
