package interfaces

import "net/http"

// Authorizer gates admin API requests. Authentication and session handling
// live in the host application; the platform only asks whether a request may
// perform a named action.
type Authorizer interface {
	Allow(r *http.Request, action string) bool
}

// AuthorizerFunc adapts a function to the Authorizer interface.
type AuthorizerFunc func(r *http.Request, action string) bool

// Allow satisfies Authorizer.
func (f AuthorizerFunc) Allow(r *http.Request, action string) bool {
	return f(r, action)
}

// AllowAll returns an Authorizer that approves every request. It is the
// default when the host does not install its own gate.
func AllowAll() Authorizer {
	return AuthorizerFunc(func(*http.Request, string) bool { return true })
}
