package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/ports"
)

// Setting keys. Each is also a flag name and, upper-cased with the
// PANICVALIDATE_ prefix, an environment variable.
const (
	KeyRoot     = "root"
	KeyClient   = "client"
	KeyServer   = "server"
	KeyConfig   = "config"
	KeyRules    = "rules"
	KeySettings = "settings"
	KeyVerbose  = "verbose"
)

var boundKeys = []string{KeyRoot, KeyClient, KeyServer, KeyConfig, KeyRules, KeySettings, KeyVerbose}

// Loader resolves settings from flags, PANICVALIDATE_* env vars and an optional
// YAML settings file. Precedence: flag > env > file > default.
type Loader struct {
	v *viper.Viper
}

// NewLoader builds a loader with defaults and environment lookups registered.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return &Loader{v: v}
}

// BindFlags wires any of the known flags present in flags.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range boundKeys {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}

// Load implements ports.SettingsProvider.
func (l *Loader) Load(context.Context) (domain.Settings, error) {
	if err := l.readSettingsFile(); err != nil {
		return domain.Settings{}, err
	}

	var settings domain.Settings
	if err := l.v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return settings.WithDefaults(), nil
}

// SettingsFile reports the settings file path that Load will consult.
func (l *Loader) SettingsFile() (path string, explicit bool) {
	if custom := l.v.GetString(KeySettings); custom != "" {
		return expandPath(custom), true
	}
	root := l.v.GetString(KeyRoot)
	if root == "" {
		root = "."
	}
	return filepath.Join(root, domain.SettingsFileName), false
}

func (l *Loader) readSettingsFile() error {
	path, explicit := l.SettingsFile()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("settings file: %w", err)
	}

	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read settings %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRoot, ".")
	v.SetDefault(KeyClient, domain.DefaultClientPath)
	v.SetDefault(KeyServer, domain.DefaultServerPath)
	v.SetDefault(KeyConfig, domain.DefaultConfigPath)
	v.SetDefault(KeyRules, "")
	v.SetDefault(KeySettings, "")
	v.SetDefault(KeyVerbose, false)
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return filepath.Clean(path)
}

var _ ports.SettingsProvider = (*Loader)(nil)

// Verbose reports the resolved --verbose / PANICVALIDATE_VERBOSE value.
func (l *Loader) Verbose() bool {
	return l.v.GetBool(KeyVerbose)
}
