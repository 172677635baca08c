// Package identity wraps the external identity provider behind a small
// interface so controllers and middleware never talk to it directly.
package identity

import "context"

// Identity is the profile the provider vouches for after verifying a token.
type Identity struct {
	Subject string // stable external id, primary key for users
	Email   string
	Name    string
	Picture string
}

// Provider is the identity oracle. VerifyIDToken is called exactly once
// at login; LookupSubject is the cheaper liveness check protected routes
// run on every request.
type Provider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
	LookupSubject(ctx context.Context, subject string) error
}
