package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "hugopost" {
		t.Errorf("CLIName() = %q, want %q", got, "hugopost")
	}
	if got := HomeDir(); got != ".hugopost" {
		t.Errorf("HomeDir() = %q, want %q", got, ".hugopost")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"vault_root", "HUGOPOST_VAULT_ROOT"},
		{"HOME", "HUGOPOST_HOME"},
		{"open", "HUGOPOST_OPEN"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
