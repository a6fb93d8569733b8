package router

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// Stats accumulates zero-overhead match counters, one bucket per family
// plus a miss counter: atomic counters updated lock-free on the hot
// Match path, read out through a JSON and a human-readable text
// accessor. A Router's Stats field is nil until EnableStats is called, so
// routers that never ask for stats pay nothing for them.
type Stats struct {
	exact  atomic.Uint64
	prefix atomic.Uint64
	param  atomic.Uint64
	regex  atomic.Uint64
	miss   atomic.Uint64
}

func (s *Stats) record(family MatchFamily, ok bool) {
	if s == nil {
		return
	}
	if !ok {
		s.miss.Add(1)
		return
	}
	switch family {
	case FamilyExact:
		s.exact.Add(1)
	case FamilyPrefix:
		s.prefix.Add(1)
	case FamilyParam:
		s.param.Add(1)
	case FamilyRegex:
		s.regex.Add(1)
	}
}

// Snapshot is a point-in-time, JSON-serializable copy of Stats.
type Snapshot struct {
	Exact  uint64 `json:"exact"`
	Prefix uint64 `json:"prefix"`
	Param  uint64 `json:"param"`
	Regex  uint64 `json:"regex"`
	Miss   uint64 `json:"miss"`
	Total  uint64 `json:"total"`
}

// Snapshot reads the current counters. Safe to call concurrently with
// Match.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		Exact:  s.exact.Load(),
		Prefix: s.prefix.Load(),
		Param:  s.param.Load(),
		Regex:  s.regex.Load(),
		Miss:   s.miss.Load(),
	}
	snap.Total = snap.Exact + snap.Prefix + snap.Param + snap.Regex + snap.Miss
	return snap
}

// JSON renders the current snapshot as indented JSON.
func (s *Stats) JSON() string {
	data, _ := json.MarshalIndent(s.Snapshot(), "", "  ")
	return string(data)
}

// Text renders the current snapshot as a human-readable report.
func (s *Stats) Text() string {
	snap := s.Snapshot()
	hitRate := 0.0
	if snap.Total > 0 {
		hitRate = float64(snap.Total-snap.Miss) / float64(snap.Total) * 100
	}
	return fmt.Sprintf(`Router Match Statistics
=======================

Exact:  %d
Prefix: %d
Param:  %d
Regex:  %d
Miss:   %d
Total:  %d

Hit Rate: %.2f%%
`,
		snap.Exact, snap.Prefix, snap.Param, snap.Regex, snap.Miss, snap.Total, hitRate,
	)
}

// EnableStats turns on match counters for r. It is safe to call at any
// point in the router's lifecycle; counting starts with the next Match.
func (r *Router) EnableStats() *Stats {
	if r.stats == nil {
		r.stats = &Stats{}
	}
	return r.stats
}

// Stats returns the router's stats collector, or nil if EnableStats was
// never called.
func (r *Router) Stats() *Stats {
	return r.stats
}
