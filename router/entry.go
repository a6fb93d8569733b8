package router

// HandlerID is an opaque identifier meaningful only to the caller; the
// router never dereferences it, only stores and returns it.
type HandlerID uint64

// MatchFamily identifies which of the four pattern families a route
// belongs to.
type MatchFamily int32

const (
	FamilyExact  MatchFamily = 1
	FamilyPrefix MatchFamily = 2
	FamilyParam  MatchFamily = 3
	FamilyRegex  MatchFamily = 4
)

func (f MatchFamily) String() string {
	switch f {
	case FamilyExact:
		return "exact"
	case FamilyPrefix:
		return "prefix"
	case FamilyParam:
		return "param"
	case FamilyRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// entry is one immutable registered route. The router is its exclusive
// owner: once accepted by Add, nothing but Clear removes it. Indices hold
// non-owning references (plain *entry pointers) into registrations.
type entry struct {
	host     []byte // nil means "any host"
	path     []byte
	methods  Method
	family   MatchFamily
	priority int32
	handler  HandlerID
}

func newEntry(host, path string, methods Method, family MatchFamily, priority int32, handler HandlerID) *entry {
	e := &entry{
		path:     []byte(path),
		methods:  methods,
		family:   family,
		priority: priority,
		handler:  handler,
	}
	if host != "" {
		e.host = []byte(host)
	}
	return e
}

func (e *entry) matchesHostAndMethod(host string, method Method) bool {
	if e.methods&method == 0 {
		return false
	}
	if e.host == nil {
		return true
	}
	return string(e.host) == host
}

// RouteSpec is the declarative, serializable form of one route
// registration, used by LoadManifest to populate a Router from JSON
// instead of hand-written Add calls (see config.RoutesFile).
type RouteSpec struct {
	Host     string      `json:"host,omitempty"`
	Path     string      `json:"path"`
	Methods  []string    `json:"methods"`
	Family   MatchFamily `json:"family"`
	Priority int32       `json:"priority"`
	Handler  HandlerID   `json:"handler"`
}

// MethodMask ORs together the bits named in Methods. An empty or
// unrecognized list yields 0, which Add rejects with ErrNoMethods.
func (s RouteSpec) MethodMask() Method {
	if len(s.Methods) == 0 {
		return 0
	}
	var m Method
	for _, name := range s.Methods {
		if name == "*" {
			return MethodAll
		}
		m |= MethodFromString(name)
	}
	return m
}
