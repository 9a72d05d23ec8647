package rules

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/panicvalidate/assets"
	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/ports"
)

// RulesFile is the YAML schema root.
type RulesFile struct {
	Blocks map[string]BlockSpec `yaml:"blocks"`
	Rules  []RuleSpec           `yaml:"rules"`
}

// BlockSpec names a capture that several rules can share.
type BlockSpec struct {
	Pattern string `yaml:"pattern"`
	Group   string `yaml:"group"`
}

// RuleSpec describes one named check.
type RuleSpec struct {
	Name       string          `yaml:"name"`
	Source     string          `yaml:"source"`
	Predicates []PredicateSpec `yaml:"predicates"`
}

// PredicateSpec holds exactly one predicate kind.
type PredicateSpec struct {
	Contains    *string      `yaml:"contains"`
	NotContains *string      `yaml:"not_contains"`
	Matches     *string      `yaml:"matches"`
	Capture     *CaptureSpec `yaml:"capture"`
}

// CaptureSpec extracts a group and runs nested predicates against it.
type CaptureSpec struct {
	Block        string          `yaml:"block"`
	Pattern      string          `yaml:"pattern"`
	Group        string          `yaml:"group"`
	RequireMatch bool            `yaml:"require_match"`
	Predicates   []PredicateSpec `yaml:"predicates"`
}

// Set implements ports.RuleProvider backed by the embedded defaults or a YAML override.
type Set struct {
	logger ports.Logger
}

// NewSet builds a rule provider. logger may be nil.
func NewSet(logger ports.Logger) *Set {
	return &Set{logger: logger}
}

// Rules implements ports.RuleProvider.
func (s *Set) Rules(_ context.Context, settings domain.Settings) ([]domain.Rule, error) {
	data := assets.DefaultRulesYAML
	origin := "embedded"
	if settings.RulesFile != "" {
		path := resolvePath(settings.Root, settings.RulesFile)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read rules file: %w", err)
		}
		data = raw
		origin = path
	}

	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules %s: %w", origin, err)
	}
	if s.logger != nil {
		s.logger.Debug("rules loaded", map[string]interface{}{"origin": origin, "count": len(rules)})
	}
	return rules, nil
}

// Parse decodes and validates a rule file. Every pattern is compiled so that
// a broken rule set fails before any source is read.
func Parse(data []byte) ([]domain.Rule, error) {
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRule, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules defined", domain.ErrInvalidRule)
	}

	seen := make(map[string]bool, len(file.Rules))
	rules := make([]domain.Rule, 0, len(file.Rules))
	for i, spec := range file.Rules {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", domain.ErrInvalidRule, i+1)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%w: duplicate rule %q", domain.ErrInvalidRule, spec.Name)
		}
		seen[spec.Name] = true

		source, err := domain.ParseSourceKind(spec.Source)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", spec.Name, err)
		}
		if len(spec.Predicates) == 0 {
			return nil, fmt.Errorf("%w: rule %q has no predicates", domain.ErrInvalidRule, spec.Name)
		}
		predicates, err := convertPredicates(spec.Predicates, file.Blocks)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", spec.Name, err)
		}
		rules = append(rules, domain.Rule{Name: spec.Name, Source: source, Predicates: predicates})
	}
	return rules, nil
}

func convertPredicates(specs []PredicateSpec, blocks map[string]BlockSpec) ([]domain.Predicate, error) {
	predicates := make([]domain.Predicate, 0, len(specs))
	for _, spec := range specs {
		predicate, err := convertPredicate(spec, blocks)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, predicate)
	}
	return predicates, nil
}

func convertPredicate(spec PredicateSpec, blocks map[string]BlockSpec) (domain.Predicate, error) {
	set := 0
	for _, present := range []bool{spec.Contains != nil, spec.NotContains != nil, spec.Matches != nil, spec.Capture != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return domain.Predicate{}, fmt.Errorf("%w: predicate must set exactly one of contains, not_contains, matches, capture", domain.ErrInvalidRule)
	}

	switch {
	case spec.Contains != nil:
		return domain.Predicate{Kind: domain.PredicateContains, Literal: *spec.Contains}, nil
	case spec.NotContains != nil:
		return domain.Predicate{Kind: domain.PredicateNotContains, Literal: *spec.NotContains}, nil
	case spec.Matches != nil:
		if _, err := Compile(*spec.Matches); err != nil {
			return domain.Predicate{}, err
		}
		return domain.Predicate{Kind: domain.PredicateMatches, Pattern: *spec.Matches}, nil
	default:
		return convertCapture(*spec.Capture, blocks)
	}
}

func convertCapture(spec CaptureSpec, blocks map[string]BlockSpec) (domain.Predicate, error) {
	pattern, group := spec.Pattern, spec.Group
	if spec.Block != "" {
		block, ok := blocks[spec.Block]
		if !ok {
			return domain.Predicate{}, fmt.Errorf("%w: unknown block %q", domain.ErrInvalidRule, spec.Block)
		}
		if pattern != "" {
			return domain.Predicate{}, fmt.Errorf("%w: capture sets both block and pattern", domain.ErrInvalidRule)
		}
		pattern, group = block.Pattern, block.Group
	}
	if pattern == "" {
		return domain.Predicate{}, fmt.Errorf("%w: capture has no pattern", domain.ErrInvalidRule)
	}

	re, err := Compile(pattern)
	if err != nil {
		return domain.Predicate{}, err
	}
	if group != "" && re.SubexpIndex(group) < 0 {
		return domain.Predicate{}, fmt.Errorf("%w: pattern has no group %q", domain.ErrInvalidRule, group)
	}

	nested, err := convertPredicates(spec.Predicates, blocks)
	if err != nil {
		return domain.Predicate{}, err
	}
	if !spec.RequireMatch && len(nested) == 0 {
		return domain.Predicate{}, fmt.Errorf("%w: capture needs require_match or nested predicates", domain.ErrInvalidRule)
	}

	return domain.Predicate{
		Kind:         domain.PredicateCapture,
		Pattern:      pattern,
		Group:        group,
		Block:        spec.Block,
		RequireMatch: spec.RequireMatch,
		Nested:       nested,
	}, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

var _ ports.RuleProvider = (*Set)(nil)
