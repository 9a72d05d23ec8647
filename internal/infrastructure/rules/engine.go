package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/doeshing/panicvalidate/internal/domain"
	"github.com/doeshing/panicvalidate/internal/ports"
)

// Compile builds a pattern in dot-all mode so constructs can span lines.
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?s)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRule, err)
	}
	return re, nil
}

// Engine implements ports.Evaluator.
type Engine struct {
	logger ports.Logger
}

// NewEngine builds an evaluator. logger may be nil.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Evaluate runs every rule in order. A failing rule never stops later rules.
func (e *Engine) Evaluate(rules []domain.Rule, sources domain.Sources) (domain.Report, error) {
	run := &evaluation{
		sources:  sources,
		patterns: make(map[string]*regexp.Regexp),
		captures: make(map[captureKey]capture),
	}

	checks := make([]domain.Check, 0, len(rules))
	for _, rule := range rules {
		passed, err := run.rule(rule)
		if err != nil {
			return domain.Report{}, fmt.Errorf("rule %q: %w", rule.Name, err)
		}
		checks = append(checks, domain.Check{Name: rule.Name, Passed: passed})
		if e.logger != nil {
			e.logger.Debug("check evaluated", map[string]interface{}{
				"name":   rule.Name,
				"source": rule.Source,
				"passed": passed,
			})
		}
	}
	return domain.Report{Checks: checks}, nil
}

type captureKey struct {
	source  domain.SourceKind
	pattern string
	group   string
}

type capture struct {
	text    string
	matched bool
}

// evaluation holds per-run caches; nothing survives between Evaluate calls.
type evaluation struct {
	sources  domain.Sources
	patterns map[string]*regexp.Regexp
	captures map[captureKey]capture
}

func (r *evaluation) rule(rule domain.Rule) (bool, error) {
	text := r.sources.Text(rule.Source)
	for _, predicate := range rule.Predicates {
		ok, err := r.predicate(rule.Source, predicate, text, true)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// predicate tests p against text. topLevel marks text as the whole source,
// the only input whose captures are shared across rules.
func (r *evaluation) predicate(source domain.SourceKind, p domain.Predicate, text string, topLevel bool) (bool, error) {
	switch p.Kind {
	case domain.PredicateContains:
		return strings.Contains(text, p.Literal), nil
	case domain.PredicateNotContains:
		return !strings.Contains(text, p.Literal), nil
	case domain.PredicateMatches:
		re, err := r.compile(p.Pattern)
		if err != nil {
			return false, err
		}
		return re.MatchString(text), nil
	case domain.PredicateCapture:
		return r.capture(source, p, text, topLevel)
	default:
		return false, fmt.Errorf("%w: unknown predicate %q", domain.ErrInvalidRule, p.Kind)
	}
}

func (r *evaluation) capture(source domain.SourceKind, p domain.Predicate, text string, topLevel bool) (bool, error) {
	block, err := r.extract(source, p, text, topLevel)
	if err != nil {
		return false, err
	}
	if !block.matched && p.RequireMatch {
		return false, nil
	}
	// Nested predicates see "" when nothing matched.
	for _, nested := range p.Nested {
		ok, err := r.predicate(source, nested, block.text, false)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (r *evaluation) extract(source domain.SourceKind, p domain.Predicate, text string, topLevel bool) (capture, error) {
	key := captureKey{source: source, pattern: p.Pattern, group: p.Group}
	if topLevel {
		if cached, ok := r.captures[key]; ok {
			return cached, nil
		}
	}

	re, err := r.compile(p.Pattern)
	if err != nil {
		return capture{}, err
	}
	result := capture{}
	if match := re.FindStringSubmatch(text); match != nil {
		result.matched = true
		result.text = groupText(re, match, p.Group)
	}
	if topLevel {
		r.captures[key] = result
	}
	return result, nil
}

func (r *evaluation) compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := r.patterns[pattern]; ok {
		return re, nil
	}
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	r.patterns[pattern] = re
	return re, nil
}

// groupText picks the named group, else the first group, else the whole match.
func groupText(re *regexp.Regexp, match []string, group string) string {
	if group != "" {
		if idx := re.SubexpIndex(group); idx >= 0 {
			return match[idx]
		}
	}
	if len(match) > 1 {
		return match[1]
	}
	return match[0]
}

var _ ports.Evaluator = (*Engine)(nil)
