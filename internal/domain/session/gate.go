package session

import "strings"

const (
	HomePath      = "/"
	DashboardPath = "/dashboard"
	LoginPath     = "/auth/login"
	authPrefix    = "/auth"
)

type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
	User     *User  `json:"user,omitempty"`
}

func redirect(to string) Decision {
	return Decision{Redirect: to}
}

// Gate decides where a page request may go given the result of the
// current-user lookup.
type Gate struct{}

func NewGate() Gate {
	return Gate{}
}

func IsAuthRoute(path string) bool {
	return strings.HasPrefix(path, authPrefix)
}

func IsAdminRoute(path string) bool {
	return strings.HasPrefix(path, DashboardPath)
}

// Resolve applies the redirect rules. user is ignored when lookupErr is set.
func (Gate) Resolve(path string, user *User, lookupErr error) Decision {
	authRoute := IsAuthRoute(path)

	if lookupErr != nil || user == nil {
		if authRoute {
			return Decision{Allow: true}
		}
		return redirect(LoginPath)
	}

	adminRoute := IsAdminRoute(path)
	switch {
	case authRoute:
		return redirect(HomePath)
	case adminRoute && !user.IsAdmin:
		return redirect(HomePath)
	case !adminRoute && user.IsAdmin:
		return redirect(DashboardPath)
	default:
		u := *user
		return Decision{Allow: true, User: &u}
	}
}
