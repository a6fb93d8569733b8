package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterExactMatch(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/health", MethodGet, FamilyExact, 0, 1))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/health", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(1), res.Handler)
	assert.Equal(t, FamilyExact, res.Family)

	_, ok = r.Match("", "/health", MethodPost)
	assert.False(t, ok)
}

func TestRouterPrefixMatch(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/static/*", MethodGet, FamilyPrefix, 0, 2))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/static/js/app.js", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(2), res.Handler)

	_, ok = r.Match("", "/staticfoo", MethodGet)
	assert.False(t, ok, "prefix match must respect segment boundaries")
}

func TestRouterParamMatch(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/users/{id}", MethodGet, FamilyParam, 0, 3))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/users/42", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(3), res.Handler)
	require.Len(t, res.Params, 1)
	assert.Equal(t, Param{Name: "id", Value: "42"}, res.Params[0])
}

func TestRouterRegexMatch(t *testing.T) {
	r := New()
	require.NoError(t, r.AddRegex("", `/images/[a-z]+\.png`, MethodGet, 0, 4))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/images/logo.png", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(4), res.Handler)

	_, ok = r.Match("", "/images/LOGO.png", MethodGet)
	assert.False(t, ok)
}

// TestRouterStageOrder verifies the fixed EXACT > PREFIX > PARAM > REGEX
// stage precedence: an overlapping EXACT route always wins over a PARAM
// route on the same literal path, regardless of priority.
func TestRouterStageOrder(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/users/me", MethodGet, FamilyExact, 0, 10))
	require.NoError(t, r.Add("", "/users/{id}", MethodGet, FamilyParam, 100, 11))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/users/me", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(10), res.Handler)
	assert.Equal(t, FamilyExact, res.Family)

	res, ok = r.Match("", "/users/alice", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(11), res.Handler)
}

// TestRouterPriorityTieBreak verifies that within the same family,
// higher priority wins over insertion order: the later-added entry with
// the higher priority is chosen.
func TestRouterPriorityTieBreak(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/a/{x}", MethodGet, FamilyParam, 0, 1))
	require.NoError(t, r.Add("", "/a/{x}", MethodGet, FamilyParam, 5, 2))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/a/1", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(2), res.Handler, "higher priority entry must win")
}

// TestRouterHostFiltering verifies that a host-scoped route matches a
// request carrying its registered Host, with an unhosted route also
// registered on the same path.
func TestRouterHostFiltering(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("api.example.com", "/v1/ping", MethodGet, FamilyExact, 0, 1))
	require.NoError(t, r.Add("", "/v1/ping", MethodGet, FamilyExact, 0, 2))
	require.NoError(t, r.Build())

	res, ok := r.Match("api.example.com", "/v1/ping", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(1), res.Handler)
}

func TestRouterMatchWithinStageSkipsFilteredCandidate(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("other.example.com", "/v1/ping", MethodGet, FamilyExact, 10, 1))
	require.NoError(t, r.Add("", "/v1/ping", MethodGet, FamilyExact, 0, 2))
	require.NoError(t, r.Build())

	// The host-scoped EXACT entry occupies the key first (higher
	// priority, inserted first). EXACT holds at most one entry per key
	// (first-wins), so a host mismatch here falls through to later
	// stages entirely rather than a second EXACT candidate — the
	// "continue scanning within the stage" behavior only has candidates
	// to scan for PREFIX/PARAM's Seek-based buckets.
	_, ok := r.Match("another.example.com", "/v1/ping", MethodGet)
	assert.False(t, ok)
}

// TestRouterPrefixBacktracksPastFilteredCandidate pins the chosen
// behavior for the PREFIX stage's pinned ambiguity: a longer prefix
// candidate that fails the host filter must not end the stage outright;
// the scan continues backward to a shorter prefix candidate that does
// pass.
func TestRouterPrefixBacktracksPastFilteredCandidate(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("admin.example.com", "/api/v1/*", MethodGet, FamilyPrefix, 10, 1))
	require.NoError(t, r.Add("", "/api/*", MethodGet, FamilyPrefix, 0, 2))
	require.NoError(t, r.Build())

	// Seeking "/api/v1/users" finds the host-scoped "/api/v1" key first
	// (longest, highest priority). It fails the host filter here, so the
	// matcher must keep scanning backward to the unhosted "/api" key
	// rather than giving up on the PREFIX stage entirely.
	res, ok := r.Match("other.example.com", "/api/v1/users", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(2), res.Handler)
	assert.Equal(t, FamilyPrefix, res.Family)

	// The host that actually owns the longer prefix still gets it.
	res, ok = r.Match("admin.example.com", "/api/v1/users", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(1), res.Handler)
}

func TestRouterBuildIdempotent(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/ping", MethodGet, FamilyExact, 0, 1))
	require.NoError(t, r.Build())
	first := r.Count()
	require.NoError(t, r.Build())
	assert.Equal(t, first, r.Count())

	res, ok := r.Match("", "/ping", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(1), res.Handler)
}

func TestRouterMatchBeforeBuild(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/ping", MethodGet, FamilyExact, 0, 1))

	_, ok := r.Match("", "/ping", MethodGet)
	assert.False(t, ok)
	assert.False(t, r.Built())
}

func TestRouterClear(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/ping", MethodGet, FamilyExact, 0, 1))
	require.NoError(t, r.Build())

	r.Clear()
	assert.Equal(t, 0, r.Count())
	assert.False(t, r.Built())

	_, ok := r.Match("", "/ping", MethodGet)
	assert.False(t, ok)
}

func TestRouterAddRejectsEmptyPath(t *testing.T) {
	r := New()
	err := r.Add("", "", MethodGet, FamilyExact, 0, 1)
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestRouterAddRejectsNoMethods(t *testing.T) {
	r := New()
	err := r.Add("", "/ping", 0, FamilyExact, 0, 1)
	assert.ErrorIs(t, err, ErrNoMethods)
}

func TestRouterParamCaptureCap(t *testing.T) {
	r := New()
	pattern := ""
	for i := 0; i < MaxParams+4; i++ {
		pattern += "/{p}"
	}
	require.NoError(t, r.Add("", pattern, MethodGet, FamilyParam, 0, 1))
	require.NoError(t, r.Build())

	path := ""
	for i := 0; i < MaxParams+4; i++ {
		path += "/v"
	}
	res, ok := r.Match("", path, MethodGet)
	require.True(t, ok)
	assert.Len(t, res.Params, MaxParams, "captures beyond MaxParams must be silently dropped, not fail the match")
}

func TestRouterStats(t *testing.T) {
	r := New()
	require.NoError(t, r.Add("", "/ping", MethodGet, FamilyExact, 0, 1))
	require.NoError(t, r.Build())
	stats := r.EnableStats()

	r.Match("", "/ping", MethodGet)
	r.Match("", "/missing", MethodGet)

	snap := stats.Snapshot()
	assert.Equal(t, uint64(1), snap.Exact)
	assert.Equal(t, uint64(1), snap.Miss)
	assert.Equal(t, uint64(2), snap.Total)
}

func TestHotReload(t *testing.T) {
	r1 := New()
	require.NoError(t, r1.Add("", "/ping", MethodGet, FamilyExact, 0, 1))
	require.NoError(t, r1.Build())
	hot := NewHot(r1)

	res, ok := hot.Match("", "/ping", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(1), res.Handler)

	r2 := New()
	require.NoError(t, r2.Add("", "/ping", MethodGet, FamilyExact, 0, 2))
	require.NoError(t, r2.Build())
	hot.Reload(r2)

	res, ok = hot.Match("", "/ping", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(2), res.Handler)
}

func TestLoadManifestJSON(t *testing.T) {
	r := New()
	data := []byte(`[
		{"path": "/ping", "methods": ["GET"], "family": 1, "priority": 0, "handler": 7}
	]`)
	require.NoError(t, r.LoadManifestJSON(data))
	require.NoError(t, r.Build())

	res, ok := r.Match("", "/ping", MethodGet)
	require.True(t, ok)
	assert.Equal(t, HandlerID(7), res.Handler)
}
