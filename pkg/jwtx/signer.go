package jwtx

// Signer is our interface for anything that can sign session claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}
