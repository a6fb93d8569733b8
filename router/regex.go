package router

import (
	"regexp"
	"sync"
)

// RegexEvaluator is the external collaborator regex matching is
// delegated to: regex evaluation is an optional capability the router
// delegates rather than implements. A nil evaluator makes stage 4
// (REGEX) report no match for every request.
type RegexEvaluator interface {
	// MatchFull reports whether pattern matches path as a full-string
	// match (the matcher does not anchor the pattern itself).
	MatchFull(pattern, path string) (bool, error)
}

// stdlibEvaluator backs RegexEvaluator with the standard library's
// regexp package. Compiled patterns are cached since the same entry is
// evaluated on every Match call that reaches stage 4.
type stdlibEvaluator struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

// NewStdlibRegexEvaluator returns the default RegexEvaluator, used
// automatically by New unless overridden with SetRegexEvaluator.
func NewStdlibRegexEvaluator() RegexEvaluator {
	return &stdlibEvaluator{cache: make(map[string]*regexp.Regexp)}
}

func (e *stdlibEvaluator) MatchFull(pattern, path string) (bool, error) {
	re, err := e.compiled(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(path), nil
}

// compiled returns pattern wrapped in ^(?:...)$ so MatchString tests for
// a full match directly, rather than anchoring after the fact by
// inspecting a single submatch location: regexp uses leftmost-first
// (not leftmost-longest) semantics, so for an alternation like "a|ab"
// FindStringIndex on "ab" returns the shorter "a" submatch and a
// post-hoc length check would wrongly report no full match.
func (e *stdlibEvaluator) compiled(pattern string) (*regexp.Regexp, error) {
	e.mu.RLock()
	re, ok := e.cache[pattern]
	e.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cache[pattern] = re
	e.mu.Unlock()
	return re, nil
}
