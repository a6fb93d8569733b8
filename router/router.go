// Package router implements an in-process HTTP request router: given a
// (host, path, method) triple it returns the identifier of the best
// matching previously-registered handler, plus any captured path
// parameters.
//
// Usage follows a build-once, serve-many lifecycle: register routes with
// Add, call Build once, then call Match concurrently from as many
// goroutines as needed. Add after Build marks the index stale; Match
// against a stale or never-built router simply reports no match (see
// Built).
package router

import "sort"

// Router aggregates the route registry and its built dispatch index. The
// zero value is not usable; construct with New.
type Router struct {
	registrations []*entry
	idx           *index
	built         bool
	evaluator     RegexEvaluator
	stats         *Stats
}

// New returns an empty, unbuilt router using the default regex evaluator
// (stdlib regexp, see RegexEvaluator). Call SetRegexEvaluator before the
// first Build to use a different one, or to disable stage 4 entirely by
// passing nil.
func New() *Router {
	return &Router{evaluator: NewStdlibRegexEvaluator()}
}

// SetRegexEvaluator replaces the evaluator used by REGEX-family routes.
// Passing nil makes stage 4 report no match for every request. Takes
// effect on the next Build.
func (r *Router) SetRegexEvaluator(e RegexEvaluator) {
	r.evaluator = e
}

// Add registers a route. It is deferred: no indexing happens until the
// next Build. Duplicate (host, path, family) registrations are accepted
// without dedup; build-time priority and insertion order resolve the
// tie.
func (r *Router) Add(host, path string, methods Method, family MatchFamily, priority int32, handler HandlerID) error {
	if path == "" {
		return ErrEmptyPath
	}
	if methods == 0 {
		return ErrNoMethods
	}
	r.registrations = append(r.registrations, newEntry(host, path, methods, family, priority, handler))
	r.built = false
	return nil
}

// AddRegex is a convenience wrapper for registering a FamilyRegex route,
// whose path doubles as the regex source forwarded unchanged to the
// evaluator.
func (r *Router) AddRegex(host, pattern string, methods Method, priority int32, handler HandlerID) error {
	return r.Add(host, pattern, methods, FamilyRegex, priority, handler)
}

// Build recomputes the dispatch index from the current registrations.
// It is idempotent: calling it twice in a row with no intervening Add
// produces an identical index.
//
// Build is the single-threaded phase of the build/match split: callers
// must not call Match concurrently with Build, but any number of Match
// calls may run concurrently with each other once Build has returned.
func (r *Router) Build() error {
	sorted := make([]*entry, len(r.registrations))
	copy(sorted, r.registrations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority > sorted[j].priority
	})

	idx := newIndex(r.evaluator)
	for _, e := range sorted {
		idx.insert(e)
	}
	idx.freeze()

	r.registrations = sorted
	r.idx = idx
	r.built = true
	return nil
}

// Clear frees every registered entry and resets the router to empty. The
// next Build restores the indices from a clean slate; Match reports no
// match until then. Go's garbage collector reclaims the discarded
// entries and index nodes; there is no separate manual-free step.
func (r *Router) Clear() {
	r.registrations = nil
	r.idx = nil
	r.built = false
}

// Count returns the number of registered entries.
func (r *Router) Count() int {
	return len(r.registrations)
}

// Match looks up the best matching route for (host, path, method). It
// returns ok == false both on an ordinary miss and when the router has
// never been, or is no longer, built — callers that want to distinguish
// the two should check Built first.
func (r *Router) Match(host, path string, method Method) (Result, bool) {
	if !r.built || r.idx == nil {
		return Result{}, false
	}
	res, ok := r.idx.match(host, path, method)
	r.stats.record(res.Family, ok)
	return res, ok
}

// Built reports whether the index reflects the current registrations.
func (r *Router) Built() bool {
	return r.built
}
