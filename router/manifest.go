package router

import "encoding/json"

// LoadManifest registers every RouteSpec in specs via Add, stopping at
// the first invalid entry (empty path or empty/unrecognized method list).
// It does not call Build; callers combine it with manually-added routes
// and call Build once at the end.
func (r *Router) LoadManifest(specs []RouteSpec) error {
	for _, s := range specs {
		if err := r.Add(s.Host, s.Path, s.MethodMask(), s.Family, s.Priority, s.Handler); err != nil {
			return err
		}
	}
	return nil
}

// LoadManifestJSON decodes data as a JSON array of RouteSpec and loads it
// via LoadManifest. This is the format config.RoutesFile points at.
func (r *Router) LoadManifestJSON(data []byte) error {
	var specs []RouteSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return err
	}
	return r.LoadManifest(specs)
}
