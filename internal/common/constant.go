package common

const (
	// AccessTokenKey is the well-known key under which the bearer token is
	// persisted in local storage.
	AccessTokenKey = "access_token"

	// TokenTypeKey stores the token type returned alongside the bearer token
	// (normally "bearer").
	TokenTypeKey = "token_type"
)
