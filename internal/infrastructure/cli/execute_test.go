package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/panicvalidate/internal/pkg/fixture"
)

func TestExecuteExitCodesAndStreams(t *testing.T) {
	passing := fixture.Write(t)
	failing := fixture.Write(t, fixture.Replace("server/server.lua", "sender.panicLastAt", "sender.lastPanic"))
	missing := fixture.Write(t, fixture.Remove("config.lua"))

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "all checks pass",
			args:       []string{"--root", passing},
			wantCode:   0,
			wantStdout: "Validation passed (11 checks).\n",
		},
		{
			name:       "failed check prints report only on stdout",
			args:       []string{"--root", failing},
			wantCode:   1,
			wantStdout: "Validation failed:\n - server enforces cooldown\n",
		},
		{
			name:       "missing source reports on stderr only",
			args:       []string{"--root", missing},
			wantCode:   1,
			wantStderr: "error: config source ",
		},
		{
			name:       "unknown command",
			args:       []string{"--root", passing, "audit"},
			wantCode:   1,
			wantStderr: "error: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := Execute(context.Background(), Options{}, tt.args, &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestExecuteMissingSourceNamesPathOnce(t *testing.T) {
	root := fixture.Write(t, fixture.Remove("config.lua"))

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), Options{}, []string{"--root", root}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, bytes.Count(stderr.Bytes(), []byte("config.lua")), stderr.String())
}

func TestExecuteVerboseLogsToStderr(t *testing.T) {
	root := fixture.Write(t)

	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), Options{Verbose: true}, []string{"--root", root}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "[PASS] client registers panicSent event\n")
	assert.Contains(t, stdout.String(), "Validation passed (11 checks).\n")
	assert.Contains(t, stderr.String(), "source loaded")
	assert.Contains(t, stderr.String(), "validation finished")
}
