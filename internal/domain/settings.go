package domain

import "path/filepath"

// Settings resolves where input files and rules live.
type Settings struct {
	Root       string `mapstructure:"root"`
	ClientPath string `mapstructure:"client"`
	ServerPath string `mapstructure:"server"`
	ConfigPath string `mapstructure:"config"`
	RulesFile  string `mapstructure:"rules"`
}

// Path returns the absolute-or-root-relative location of kind.
func (s Settings) Path(kind SourceKind) string {
	var rel string
	switch kind {
	case SourceClient:
		rel = s.ClientPath
	case SourceServer:
		rel = s.ServerPath
	case SourceConfig:
		rel = s.ConfigPath
	}
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.Root, rel)
}
