package router

import (
	"strings"

	"github.com/searchktools/fast-router/radix"
)

// index is the built, immutable-until-next-Build dispatch structure: an
// exact and a prefix trie mapping a path to one entry, a parametric trie
// mapping a static prefix to a bucket of entries, and a priority-sorted
// regex list.
type index struct {
	exact     *radix.Tree
	prefix    *radix.Tree
	param     *radix.Tree
	regex     []*entry
	evaluator RegexEvaluator
}

func newIndex(evaluator RegexEvaluator) *index {
	return &index{
		exact:     radix.New(),
		prefix:    radix.New(),
		param:     radix.New(),
		regex:     nil,
		evaluator: evaluator,
	}
}

// insert places e into the structure for its family. Entries must be
// visited in global priority-descending, insertion-order tie-broken
// order (i.e. registrations already sorted by Build) so the "first
// inserted in sort order wins" collision policy for EXACT/PREFIX and the
// bucket ordering for PARAM fall out of plain append/insert.
func (ix *index) insert(e *entry) {
	switch e.family {
	case FamilyExact:
		insertFirstWins(ix.exact, e.path, e)

	case FamilyPrefix:
		insertFirstWins(ix.prefix, normalizePrefixKey(e.path), e)

	case FamilyParam:
		key := staticPrefix(e.path)
		v, ok := ix.param.Get(key)
		var b *bucket
		if ok {
			b = v.(*bucket)
		} else {
			b = newBucket()
			ix.param.Insert(key, b)
		}
		b.push(e)

	case FamilyRegex:
		ix.regex = append(ix.regex, e)
	}
}

// insertFirstWins implements the EXACT/PREFIX collision policy: the
// higher-priority entry was visited first (registrations are sorted
// before insertion), so a later insert to an already-occupied key is a
// no-op.
func insertFirstWins(t *radix.Tree, key []byte, e *entry) {
	if _, exists := t.Get(key); exists {
		return
	}
	t.Insert(key, e)
}

// freeze prepares exact/prefix/param for Seek-based lookups. Must run
// once after all inserts for a Build.
func (ix *index) freeze() {
	ix.exact.Freeze()
	ix.prefix.Freeze()
	ix.param.Freeze()
}

// normalizePrefixKey strips a trailing '*' and then a trailing '/' from
// a PREFIX pattern.
func normalizePrefixKey(path []byte) []byte {
	l := len(path)
	if l > 0 && path[l-1] == '*' {
		l--
	}
	if l > 0 && path[l-1] == '/' {
		l--
	}
	return path[:l]
}

// staticPrefix computes the static-prefix index key for a PARAM pattern:
// the text up to (and including) the '/' immediately before the first
// capture metacharacter. A pattern with no '/' before its first capture
// yields an empty key (the degenerate / "root bucket" case); the root
// bucket needs no special casing since the empty key indexes exactly as
// any other key would.
func staticPrefix(path []byte) []byte {
	idx := strings.IndexAny(string(path), "{*")
	if idx < 0 {
		return path
	}
	slash := strings.LastIndexByte(string(path[:idx]), '/')
	return path[:slash+1]
}
