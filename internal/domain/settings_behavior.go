package domain

// WithDefaults fills empty fields with the default locations.
func (s Settings) WithDefaults() Settings {
	if s.Root == "" {
		s.Root = "."
	}
	if s.ClientPath == "" {
		s.ClientPath = DefaultClientPath
	}
	if s.ServerPath == "" {
		s.ServerPath = DefaultServerPath
	}
	if s.ConfigPath == "" {
		s.ConfigPath = DefaultConfigPath
	}
	return s
}

// Fields renders settings for structured logs.
func (s Settings) Fields() map[string]interface{} {
	return map[string]interface{}{
		"root":   s.Root,
		"client": s.Path(SourceClient),
		"server": s.Path(SourceServer),
		"config": s.Path(SourceConfig),
		"rules":  s.RulesFile,
	}
}
