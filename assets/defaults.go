package assets

import (
	_ "embed"
)

// DefaultRulesYAML contains the embedded default rule set.
//
//go:embed defaults/rules.yaml
var DefaultRulesYAML []byte
