package validate

import (
	"context"
	"fmt"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/ports"
)

// Service runs the rule checker: load, evaluate all, report.
type Service struct {
	SettingsProvider ports.SettingsProvider
	RuleProvider     ports.RuleProvider
	SourceLoader     ports.SourceLoader
	Evaluator        ports.Evaluator
	Logger           ports.Logger
}

// Run loads the three sources and evaluates every rule against them.
// Rule or source errors abort before any check result is produced.
func (s *Service) Run(ctx context.Context) (domain.Report, error) {
	settings, err := s.SettingsProvider.Load(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load settings: %w", err)
	}
	s.debug("settings resolved", settings.Fields())

	rules, err := s.RuleProvider.Rules(ctx, settings)
	if err != nil {
		return domain.Report{}, err
	}

	sources, err := s.SourceLoader.Load(ctx, settings)
	if err != nil {
		s.logError("source load failed", err)
		return domain.Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	report, err := s.Evaluator.Evaluate(rules, sources)
	if err != nil {
		return domain.Report{}, err
	}
	s.debug("validation finished", map[string]interface{}{
		"checks": len(report.Checks),
		"failed": len(report.Failed()),
	})
	return report, nil
}

// Rules returns the active rule set without reading any source.
func (s *Service) Rules(ctx context.Context) ([]domain.Rule, error) {
	settings, err := s.SettingsProvider.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return s.RuleProvider.Rules(ctx, settings)
}

func (s *Service) debug(msg string, fields map[string]interface{}) {
	if s.Logger != nil {
		s.Logger.Debug(msg, fields)
	}
}

func (s *Service) logError(msg string, err error) {
	if s.Logger != nil {
		s.Logger.Error(msg, err, nil)
	}
}
