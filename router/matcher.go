package router

import "bytes"

// Result is what a successful Match returns. On a miss the zero Result
// is returned alongside ok == false.
type Result struct {
	Handler HandlerID
	Params  []Param
	Family  MatchFamily
}

// match runs the four-stage matcher against a built index: exact, then
// longest-prefix, then parametric, then regex. The first stage to
// produce a candidate passing the host and method filters wins; a stage
// that finds a candidate failing those filters moves on to the next
// weaker candidate within the same stage before giving up on the stage
// entirely.
func (ix *index) match(host, path string, method Method) (Result, bool) {
	if r, ok := ix.matchExact(host, path, method); ok {
		return r, true
	}
	if r, ok := ix.matchPrefix(host, path, method); ok {
		return r, true
	}
	if r, ok := ix.matchParam(host, path, method); ok {
		return r, true
	}
	if r, ok := ix.matchRegex(host, path, method); ok {
		return r, true
	}
	return Result{}, false
}

func (ix *index) matchExact(host, path string, method Method) (Result, bool) {
	v, ok := ix.exact.Get([]byte(path))
	if !ok {
		return Result{}, false
	}
	e := v.(*entry)
	if !e.matchesHostAndMethod(host, method) {
		return Result{}, false
	}
	return Result{Handler: e.handler, Family: FamilyExact}, true
}

func (ix *index) matchPrefix(host, path string, method Method) (Result, bool) {
	pathB := []byte(path)
	c := ix.prefix.Seek(pathB)
	for c.Valid() {
		key := c.Key()
		if isPrefixBoundary(key, pathB) {
			e := c.Value().(*entry)
			if e.matchesHostAndMethod(host, method) {
				return Result{Handler: e.handler, Family: FamilyPrefix}, true
			}
		}
		if !c.Prev() {
			break
		}
	}
	return Result{}, false
}

// isPrefixBoundary reports whether key is a byte-prefix of path ending
// at a path-segment boundary: either path ends exactly at key, or the
// next byte of path is '/'.
func isPrefixBoundary(key, path []byte) bool {
	if !bytes.HasPrefix(path, key) {
		return false
	}
	return len(path) == len(key) || path[len(key)] == '/'
}

func (ix *index) matchParam(host, path string, method Method) (Result, bool) {
	pathB := []byte(path)
	c := ix.param.Seek(pathB)
	for c.Valid() {
		key := c.Key()
		if bytes.HasPrefix(pathB, key) {
			b := c.Value().(*bucket)
			for _, e := range b.entries {
				params, ok := matchPattern(string(e.path), path)
				if !ok {
					continue
				}
				if e.matchesHostAndMethod(host, method) {
					return Result{Handler: e.handler, Params: params, Family: FamilyParam}, true
				}
			}
		}
		if !c.Prev() {
			break
		}
	}
	return Result{}, false
}

func (ix *index) matchRegex(host, path string, method Method) (Result, bool) {
	if ix.evaluator == nil {
		return Result{}, false
	}
	for _, e := range ix.regex {
		ok, err := ix.evaluator.MatchFull(string(e.path), path)
		if err != nil || !ok {
			continue
		}
		if e.matchesHostAndMethod(host, method) {
			return Result{Handler: e.handler, Family: FamilyRegex}, true
		}
	}
	return Result{}, false
}
