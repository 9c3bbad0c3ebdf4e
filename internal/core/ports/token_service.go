package ports

// TokenService issues and validates the signed bearer tokens used for
// stateless authentication.
type TokenService interface {
	// Issue signs a token carrying subject and a fixed-TTL expiry.
	Issue(subject string) (string, error)
	// Subject extracts the subject from a signature-verified token. Expiry
	// is not checked here; callers combine it with IsValid.
	Subject(token string) (string, error)
	// IsValid reports whether the token's signature verifies and its
	// expiry has not passed. Malformed input yields false, never an error.
	IsValid(token string) bool
}
