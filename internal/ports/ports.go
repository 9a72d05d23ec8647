// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The validate service depends only on these abstractions; the infrastructure
// layer supplies file, rule, settings and logging adapters.
package ports

import (
	"context"

	"github.com/doeshing/panicvalidate/internal/domain"
)

// SettingsProvider resolves the project root, input paths and rules file.
type SettingsProvider interface {
	Load(context.Context) (domain.Settings, error)
}

// SourceLoader reads every monitored file into memory.
// A missing or unreadable file must abort the whole load; no partial Sources are returned.
type SourceLoader interface {
	Load(context.Context, domain.Settings) (domain.Sources, error)
}

// RuleProvider supplies the ordered rule set for a run.
type RuleProvider interface {
	Rules(context.Context, domain.Settings) ([]domain.Rule, error)
}

// Evaluator runs an ordered rule set against loaded sources.
type Evaluator interface {
	Evaluate([]domain.Rule, domain.Sources) (domain.Report, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

// SettingsLocator reports which settings file the provider consults and
// whether it was requested explicitly.
type SettingsLocator interface {
	SettingsFile() (path string, explicit bool)
}
