package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HUGOPOST_HOME", home)

	// Load reads .env from the working directory; run from an empty one.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestDirHonoursEnv(t *testing.T) {
	home := isolate(t)
	if got := Dir(); got != home {
		t.Errorf("Dir() = %q, want %q", got, home)
	}
	if got, want := FilePath(), filepath.Join(home, "config.yaml"); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestDefaults(t *testing.T) {
	isolate(t)
	Load()

	s, err := Current()
	if err != nil {
		t.Fatalf("Current() error: %v", err)
	}
	if s.VaultRoot != "." {
		t.Errorf("VaultRoot = %q, want %q", s.VaultRoot, ".")
	}
	if s.Template != "" {
		t.Errorf("Template = %q, want empty", s.Template)
	}
	if s.DeployScript != DefaultDeployScript {
		t.Errorf("DeployScript = %q, want %q", s.DeployScript, DefaultDeployScript)
	}
	if s.Shell != "bash" {
		t.Errorf("Shell = %q, want bash", s.Shell)
	}
	if s.Open != "none" {
		t.Errorf("Open = %q, want none", s.Open)
	}
	if s.OpenDelay != 0 {
		t.Errorf("OpenDelay = %v, want 0", s.OpenDelay)
	}
}

func TestSetPersists(t *testing.T) {
	home := isolate(t)
	Load()

	if err := Set(KeyVaultRoot, "/srv/blog"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	Load()
	if got := Get(KeyVaultRoot); got != "/srv/blog" {
		t.Errorf("Get(vault_root) after reload = %q, want %q", got, "/srv/blog")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	Load()
	if err := Set(KeyShell, "sh"); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HUGOPOST_SHELL", "zsh")
	Load()
	if got := Get(KeyShell); got != "zsh" {
		t.Errorf("Get(shell) = %q, want zsh", got)
	}
}

func TestDotEnvIsLoaded(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(".env", []byte("HUGOPOST_OPEN_DELAY=250ms\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("HUGOPOST_OPEN_DELAY") })

	Load()
	s, err := Current()
	if err != nil {
		t.Fatal(err)
	}
	if s.OpenDelay != 250*time.Millisecond {
		t.Errorf("OpenDelay = %v, want 250ms", s.OpenDelay)
	}
}

func TestCurrentRejectsBadDelay(t *testing.T) {
	isolate(t)
	t.Setenv("HUGOPOST_OPEN_DELAY", "soon")
	Load()
	if _, err := Current(); err == nil {
		t.Error("expected error for unparseable open_delay")
	}
}

func TestResolvePath(t *testing.T) {
	root := filepath.Join("srv", "blog")
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"obs_scripts/deploy.sh", filepath.Join(root, "obs_scripts", "deploy.sh")},
	}
	for _, tt := range tests {
		if got := ResolvePath(root, tt.in); got != tt.want {
			t.Errorf("ResolvePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	abs, err := filepath.Abs("deploy.sh")
	if err != nil {
		t.Fatal(err)
	}
	if got := ResolvePath(root, abs); got != abs {
		t.Errorf("ResolvePath(abs) = %q, want %q", got, abs)
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(KeyTemplate) {
		t.Error("template should be a known key")
	}
	if IsKnown("mirror_url") {
		t.Error("mirror_url should not be a known key")
	}
}
