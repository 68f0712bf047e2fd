package constants

// Context keys
const (
	ContextKeyUser = "user"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// AuthorizationScheme is the prefix expected in the Authorization header.
const AuthorizationScheme = "Bearer "
