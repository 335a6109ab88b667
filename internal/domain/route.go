package domain

// Route selects which collection backs the unfiltered list.
type Route string

const (
	RouteActive   Route = "active"
	RouteArchived Route = "archived"
)

// IsValid checks if the route is known.
func (r Route) IsValid() bool {
	switch r {
	case RouteActive, RouteArchived:
		return true
	default:
		return false
	}
}

// String returns the string representation of the route.
func (r Route) String() string {
	return string(r)
}

// Other returns the opposite route.
func (r Route) Other() Route {
	if r == RouteArchived {
		return RouteActive
	}
	return RouteArchived
}

// ForArchived returns the route whose base list holds notes with the given flag.
func ForArchived(archived bool) Route {
	if archived {
		return RouteArchived
	}
	return RouteActive
}
