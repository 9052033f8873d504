package types

// ContextUserKey is the gin context key under which the authenticated
// principal is stored by the auth middleware.
const ContextUserKey = "user"

// Principal is the authenticated identity attached to a request after
// the session has been resolved. It is rebuilt from the database on
// every request, so a role change takes effect on the next request.
type Principal struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}
