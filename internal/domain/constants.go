package domain

// Default input locations, relative to the project root.
const (
	DefaultClientPath = "client/client.lua"
	DefaultServerPath = "server/server.lua"
	DefaultConfigPath = "config.lua"
)

// Settings file and environment constants
const (
	// SettingsFileName is looked up in the project root when --settings is not given
	SettingsFileName = ".panicvalidate.yaml"
	// EnvPrefix prefixes every environment override (PANICVALIDATE_ROOT, ...)
	EnvPrefix = "PANICVALIDATE"
	// DebugEnvVar enables verbose logging when set to 1 or true
	DebugEnvVar = "PANICVALIDATE_DEBUG"
)
