package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/panicvalidate/internal/domain"
)

func TestDefaultRulesOrder(t *testing.T) {
	rules, err := NewSet(nil).Rules(context.Background(), domain.Settings{})
	require.NoError(t, err)

	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		names = append(names, rule.Name)
	}
	assert.Equal(t, []string{
		"client registers panicSent event",
		"client registers panicDenied event",
		"client receive panic plays sound",
		"client UsePanic block found",
		"client does not optimistic panic_sent in UsePanic",
		"server denies panic when cuffed",
		"server enforces cooldown",
		"server sends panicSent ack",
		"server supports nearby audible radius",
		"config has panic_failed notification",
		"config has panic sound block",
	}, names)
}

func TestDefaultRulesResolveSharedBlock(t *testing.T) {
	rules, err := NewSet(nil).Rules(context.Background(), domain.Settings{})
	require.NoError(t, err)

	found, optimistic := rules[3].Predicates[0], rules[4].Predicates[0]
	assert.Equal(t, domain.PredicateCapture, found.Kind)
	assert.True(t, found.RequireMatch)
	assert.Equal(t, found.Pattern, optimistic.Pattern)
	assert.Equal(t, "body", optimistic.Group)
	require.Len(t, optimistic.Nested, 1)
	assert.Equal(t, domain.PredicateNotContains, optimistic.Nested[0].Kind)
	assert.Equal(t, "ShowNotification('panic_sent')", optimistic.Nested[0].Literal)
}

func TestRulesFileOverride(t *testing.T) {
	root := t.TempDir()
	content := `
rules:
  - name: config declares cooldown
    source: config
    predicates:
      - contains: panic_cooldown
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "custom.yaml"), []byte(content), 0o644))

	rules, err := NewSet(nil).Rules(context.Background(), domain.Settings{Root: root, RulesFile: "custom.yaml"})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, domain.SourceConfig, rules[0].Source)
}

func TestRulesFileMissing(t *testing.T) {
	_, err := NewSet(nil).Rules(context.Background(), domain.Settings{Root: t.TempDir(), RulesFile: "absent.yaml"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsInvalidRules(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no rules",
			yaml: "rules: []",
		},
		{
			name: "unknown source",
			yaml: `
rules:
  - name: ui
    source: ui
    predicates:
      - contains: x`,
		},
		{
			name: "two kinds in one predicate",
			yaml: `
rules:
  - name: both
    source: client
    predicates:
      - contains: x
        matches: y`,
		},
		{
			name: "bad regexp",
			yaml: `
rules:
  - name: broken
    source: server
    predicates:
      - matches: '(unclosed'`,
		},
		{
			name: "unknown block",
			yaml: `
rules:
  - name: block
    source: client
    predicates:
      - capture:
          block: missing
          require_match: true`,
		},
		{
			name: "missing group",
			yaml: `
rules:
  - name: group
    source: client
    predicates:
      - capture:
          pattern: 'function (\w+)'
          group: body
          require_match: true`,
		},
		{
			name: "duplicate names",
			yaml: `
rules:
  - name: same
    source: client
    predicates:
      - contains: x
  - name: same
    source: server
    predicates:
      - contains: y`,
		},
		{
			name: "no predicates",
			yaml: `
rules:
  - name: empty
    source: client`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, domain.ErrInvalidRule)
		})
	}
}
