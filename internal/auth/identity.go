package auth

import "errors"

// GoogleIdentity is the verified content of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// ErrInvalidIDToken is returned by identity verifiers when a token is
// malformed, expired, wrongly signed or issued for another audience.
var ErrInvalidIDToken = errors.New("invalid id token")
