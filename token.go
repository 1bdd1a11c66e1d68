package multicast

import "github.com/google/uuid"

// Token identifies one subscription independently of its handler and priority.
// Two subscriptions of the same function value get distinct tokens.
type Token uuid.UUID

// NewToken returns a fresh subscription identity.
// Keep it to re-subscribe the same identity later with Resubscribe.
func NewToken() Token {
	return Token(uuid.New())
}

// IsZero reports whether t is the zero token, which never identifies a subscription.
func (t Token) IsZero() bool {
	return t == Token{}
}

// String returns the canonical UUID form of the token.
func (t Token) String() string {
	return uuid.UUID(t).String()
}
