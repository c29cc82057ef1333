package auth

// TokenPair holds the credentials returned by every successful sign-in.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SignInResult is the outcome of a Google sign-in.
type SignInResult struct {
	Tokens *TokenPair
	// Created is true when the sign-in registered a new account.
	Created bool
}
