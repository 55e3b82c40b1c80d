package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hugopost/hugopost/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
	dotEnv   = ".env"
)

// Config keys.
const (
	KeyVaultRoot      = "vault_root"
	KeyTemplate       = "template"
	KeyDeployScript   = "deploy_script"
	KeyShell          = "shell"
	KeyOpen           = "open"
	KeyObsidianVault  = "obsidian_vault"
	KeyOpenDelay      = "open_delay"
	KeyLogLevel       = "log_level"
	KeyHugoMinVersion = "hugo_min_version"
)

// Keys lists every recognised config key, in display order.
var Keys = []string{
	KeyVaultRoot,
	KeyTemplate,
	KeyDeployScript,
	KeyShell,
	KeyOpen,
	KeyObsidianVault,
	KeyOpenDelay,
	KeyLogLevel,
	KeyHugoMinVersion,
}

// DefaultDeployScript is resolved against the vault root.
const DefaultDeployScript = "obs_scripts/deploy.sh"

// Settings is the resolved view of every config key.
type Settings struct {
	VaultRoot      string
	Template       string
	DeployScript   string
	Shell          string
	Open           string
	ObsidianVault  string
	OpenDelay      time.Duration
	LogLevel       string
	HugoMinVersion string
}

// Dir returns the path to the config directory. HUGOPOST_HOME overrides the
// default of ~/.hugopost.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyVaultRoot, ".")
	viper.SetDefault(KeyTemplate, "")
	viper.SetDefault(KeyDeployScript, DefaultDeployScript)
	viper.SetDefault(KeyShell, "bash")
	viper.SetDefault(KeyOpen, "none")
	viper.SetDefault(KeyObsidianVault, "")
	viper.SetDefault(KeyOpenDelay, "0s")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHugoMinVersion, "0.110.0")
}

// Load initializes Viper from the .env file, the config file and the
// environment. Variables already set in the environment win over .env.
func Load() {
	_ = godotenv.Load(dotEnv)

	viper.Reset()
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the settings as currently loaded.
func Current() (*Settings, error) {
	delay, err := time.ParseDuration(viper.GetString(KeyOpenDelay))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", KeyOpenDelay, err)
	}
	return &Settings{
		VaultRoot:      viper.GetString(KeyVaultRoot),
		Template:       viper.GetString(KeyTemplate),
		DeployScript:   viper.GetString(KeyDeployScript),
		Shell:          viper.GetString(KeyShell),
		Open:           viper.GetString(KeyOpen),
		ObsidianVault:  viper.GetString(KeyObsidianVault),
		OpenDelay:      delay,
		LogLevel:       viper.GetString(KeyLogLevel),
		HugoMinVersion: viper.GetString(KeyHugoMinVersion),
	}, nil
}

// IsKnown reports whether key is a recognised config key.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePath joins p onto root unless p is already absolute.
func ResolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
