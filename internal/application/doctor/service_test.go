package doctor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/infrastructure/rules"
	"github.com/doeshing/panicvalidate/internal/pkg/fixture"
)

type stubSettings struct {
	settings domain.Settings
}

func (s stubSettings) Load(context.Context) (domain.Settings, error) {
	return s.settings, nil
}

type stubLocator struct {
	path     string
	explicit bool
}

func (s stubLocator) SettingsFile() (string, bool) {
	return s.path, s.explicit
}

func statuses(report domain.HealthReport) map[string]domain.HealthStatus {
	out := make(map[string]domain.HealthStatus, len(report.Checks))
	for _, check := range report.Checks {
		out[check.Name] = check.Status
	}
	return out
}

func TestDoctorHealthyTree(t *testing.T) {
	root := fixture.Write(t)
	svc := &Service{
		SettingsProvider: stubSettings{settings: domain.Settings{Root: root}.WithDefaults()},
		SettingsLocator:  stubLocator{path: filepath.Join(root, domain.SettingsFileName)},
		RuleProvider:     rules.NewSet(nil),
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	got := statuses(report)
	assert.Equal(t, domain.HealthWarn, got["Settings file"])
	assert.Equal(t, domain.HealthOK, got["Rules"])
	assert.Equal(t, domain.HealthOK, got["Client source"])
	assert.Equal(t, domain.HealthOK, got["Server source"])
	assert.Equal(t, domain.HealthOK, got["Config source"])
}

func TestDoctorReportsMissingSource(t *testing.T) {
	root := fixture.Write(t, fixture.Remove("server/server.lua"))
	svc := &Service{
		SettingsProvider: stubSettings{settings: domain.Settings{Root: root}.WithDefaults()},
		RuleProvider:     rules.NewSet(nil),
	}

	report, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.Equal(t, domain.HealthError, statuses(report)["Server source"])
	assert.Equal(t, domain.HealthOK, statuses(report)["Config source"])
}

func TestDoctorExplicitSettingsFileMissing(t *testing.T) {
	root := fixture.Write(t)
	svc := &Service{
		SettingsProvider: stubSettings{settings: domain.Settings{Root: root}.WithDefaults()},
		SettingsLocator:  stubLocator{path: filepath.Join(root, "custom.yaml"), explicit: true},
		RuleProvider:     rules.NewSet(nil),
	}

	report, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.Equal(t, domain.HealthError, statuses(report)["Settings file"])
}
