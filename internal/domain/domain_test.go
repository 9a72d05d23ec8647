package domain_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/panicvalidate/internal/domain"
)

func TestReport_FailedKeepsDeclarationOrder(t *testing.T) {
	report := domain.Report{Checks: []domain.Check{
		{Name: "a", Passed: false},
		{Name: "b", Passed: true},
		{Name: "c", Passed: false},
	}}

	failed := report.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "a", failed[0].Name)
	assert.Equal(t, "c", failed[1].Name)
	assert.False(t, report.OK())
}

func TestReport_OKWhenEmpty(t *testing.T) {
	assert.True(t, domain.Report{}.OK())
}

func TestSettings_Path(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.Settings
		kind     domain.SourceKind
		want     string
	}{
		{
			name:     "defaults resolve under root",
			settings: domain.Settings{Root: "/srv/gps_tracker"}.WithDefaults(),
			kind:     domain.SourceClient,
			want:     filepath.Join("/srv/gps_tracker", "client", "client.lua"),
		},
		{
			name:     "config file sits in root",
			settings: domain.Settings{Root: "/srv/gps_tracker"}.WithDefaults(),
			kind:     domain.SourceConfig,
			want:     filepath.Join("/srv/gps_tracker", "config.lua"),
		},
		{
			name:     "absolute override ignores root",
			settings: domain.Settings{Root: "/srv/gps_tracker", ServerPath: "/tmp/server.lua"}.WithDefaults(),
			kind:     domain.SourceServer,
			want:     "/tmp/server.lua",
		},
		{
			name:     "empty root means working directory",
			settings: domain.Settings{}.WithDefaults(),
			kind:     domain.SourceServer,
			want:     filepath.Join("server", "server.lua"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.Path(tt.kind))
		})
	}
}

func TestParseSourceKind(t *testing.T) {
	kind, err := domain.ParseSourceKind("server")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceServer, kind)

	_, err = domain.ParseSourceKind("ui")
	assert.ErrorIs(t, err, domain.ErrInvalidRule)
}

func TestSourceError_Is(t *testing.T) {
	err := &domain.SourceError{Kind: domain.SourceConfig, Path: "config.lua", Err: fs.ErrNotExist}

	assert.True(t, errors.Is(err, domain.ErrSourceUnreadable))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "config source config.lua")
}

func TestSourceError_MessageNamesPathOnce(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  string
	}{
		{
			name:  "missing file",
			cause: &fs.PathError{Op: "open", Path: "/srv/config.lua", Err: fs.ErrNotExist},
			want:  "config source /srv/config.lua: file does not exist",
		},
		{
			name:  "permission denied",
			cause: &fs.PathError{Op: "open", Path: "/srv/config.lua", Err: fs.ErrPermission},
			want:  "config source /srv/config.lua: permission denied",
		},
		{
			name:  "unrelated path keeps full cause",
			cause: &fs.PathError{Op: "read", Path: "/elsewhere", Err: fs.ErrClosed},
			want:  "config source /srv/config.lua: read /elsewhere: file already closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &domain.SourceError{Kind: domain.SourceConfig, Path: "/srv/config.lua", Err: tt.cause}
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, domain.ErrSourceUnreadable)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}
