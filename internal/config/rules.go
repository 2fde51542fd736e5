package config

import (
	"errors"
	"fmt"
	"regexp"
)

// Rules is an ordered list of module rules. The first match wins.
type Rules []*ModuleRule

// Match returns the first rule whose conditions all hold for the given
// resource path and query (query without the leading '?').
func (rs Rules) Match(resource, query string) (*ModuleRule, bool) {
	for _, r := range rs {
		if r.Matches(resource, query) {
			return r, true
		}
	}
	return nil, false
}

// Matches reports whether every condition set on the rule holds. A rule
// with no conditions matches everything.
func (r *ModuleRule) Matches(resource, query string) bool {
	if r.Test != nil && !r.Test.MatchString(resource) {
		return false
	}
	if r.Resource != nil && !r.Resource.MatchString(resource) {
		return false
	}
	if r.ResourceQuery != nil && !r.ResourceQuery.MatchString(query) {
		return false
	}
	return true
}

// LoaderChain returns the builtin loader names in the order they are
// applied, which is the reverse of the declared order.
func (r *ModuleRule) LoaderChain() []string {
	chain := make([]string, 0, len(r.Uses))
	for i := len(r.Uses) - 1; i >= 0; i-- {
		chain = append(chain, r.Uses[i].BuiltinLoader)
	}
	return chain
}

// RawRule is the string form of a ModuleRule as it appears in a config file.
type RawRule struct {
	Test          string
	Resource      string
	ResourceQuery string
	Type          string
	Uses          []RuleUse
}

// CompileRules turns raw rules into matchable ones. All invalid patterns
// are reported together.
func CompileRules(raw []RawRule) (Rules, error) {
	var errs []error
	rules := make(Rules, 0, len(raw))
	for i, rr := range raw {
		rule := &ModuleRule{Type: rr.Type, Uses: rr.Uses}
		var err error
		if rule.Test, err = compileOptional(rr.Test); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: test: %w", i, err))
		}
		if rule.Resource, err = compileOptional(rr.Resource); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: resource: %w", i, err))
		}
		if rule.ResourceQuery, err = compileOptional(rr.ResourceQuery); err != nil {
			errs = append(errs, fmt.Errorf("rule %d: resource_query: %w", i, err))
		}
		rules = append(rules, rule)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rules, nil
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}
