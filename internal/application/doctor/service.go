package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/ports"
)

// ErrUnhealthy is returned when at least one diagnostic is an error.
var ErrUnhealthy = errors.New("setup has errors")

// Service runs setup diagnostics without evaluating any rule.
type Service struct {
	SettingsProvider ports.SettingsProvider
	SettingsLocator  ports.SettingsLocator
	RuleProvider     ports.RuleProvider
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	if s.SettingsLocator != nil {
		checks = append(checks, settingsFileCheck(s.SettingsLocator))
	}

	settings, err := s.SettingsProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Settings", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Settings", fmt.Sprintf("root %s", settings.Root)))

	if s.RuleProvider != nil {
		if rules, err := s.RuleProvider.Rules(ctx, settings); err != nil {
			checks = append(checks, fail("Rules", err.Error()))
		} else {
			checks = append(checks, ok("Rules", fmt.Sprintf("%d rules (%s)", len(rules), rulesOrigin(settings))))
		}
	} else {
		checks = append(checks, warn("Rules", "rule provider not initialized"))
	}

	for _, kind := range domain.SourceKinds {
		checks = append(checks, sourceCheck(kind, settings.Path(kind)))
	}

	report := domain.HealthReport{Checks: checks}
	if report.HasErrors() {
		return report, ErrUnhealthy
	}
	return report, nil
}

func settingsFileCheck(locator ports.SettingsLocator) domain.HealthCheck {
	path, explicit := locator.SettingsFile()
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fail("Settings file", fmt.Sprintf("missing at %s", path))
		}
		return warn("Settings file", fmt.Sprintf("not found at %s, using defaults", path))
	}
	return ok("Settings file", path)
}

func sourceCheck(kind domain.SourceKind, path string) domain.HealthCheck {
	name := fmt.Sprintf("%s source", titleCase(string(kind)))
	info, err := os.Stat(path)
	if err != nil {
		return fail(name, fmt.Sprintf("missing at %s", path))
	}
	if info.IsDir() {
		return fail(name, fmt.Sprintf("%s is a directory", path))
	}
	return ok(name, fmt.Sprintf("%s (%d bytes)", path, info.Size()))
}

func rulesOrigin(settings domain.Settings) string {
	if settings.RulesFile == "" {
		return "embedded defaults"
	}
	return settings.RulesFile
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
