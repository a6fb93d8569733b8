package router

import "sync/atomic"

// Hot wraps a Router with a double-buffered, atomic-swap reload path: a
// fresh Router is built off to the side and published with one
// atomic.Pointer store, so Match callers never observe a partially built
// index and never block on a mutex.
type Hot struct {
	current atomic.Pointer[Router]
}

// NewHot wraps an already-built Router for hot-reloadable serving. r must
// not be mutated by the caller after this call; Reload is the only
// supported way to change what Hot serves.
func NewHot(r *Router) *Hot {
	h := &Hot{}
	h.current.Store(r)
	return h
}

// Reload atomically publishes next, which must already be built, as the
// router future Match calls use. The previously published Router is left
// untouched (and unreferenced) for the garbage collector once in-flight
// Match calls on it finish.
func (h *Hot) Reload(next *Router) {
	h.current.Store(next)
}

// Match dispatches to whichever Router is currently published. A Reload
// racing with Match always resolves to one or the other in full; there is
// no window where Match observes a half-updated router.
func (h *Hot) Match(host, path string, method Method) (Result, bool) {
	return h.current.Load().Match(host, path, method)
}

// Router returns the currently published Router, e.g. to call Count or
// Stats on it. The returned pointer may be superseded by a concurrent
// Reload immediately after return; callers needing a consistent view
// across several calls should capture it once.
func (h *Hot) Router() *Router {
	return h.current.Load()
}
