// Package auth verifies operator credentials. There is a single operator
// role; its username and bcrypt password hash come from configuration, so
// no credentials live in the source.
package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Authenticator interface {
	Verify(user, secret string) error
}

type OperatorAuthenticator struct {
	user string
	hash []byte
}

func NewOperatorAuthenticator(user, passwordHash string) *OperatorAuthenticator {
	return &OperatorAuthenticator{user: user, hash: []byte(passwordHash)}
}

func (a *OperatorAuthenticator) Verify(user, secret string) error {
	if subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) != 1 {
		// Burn a comparison anyway so an unknown user costs the same as a
		// wrong password.
		_ = bcrypt.CompareHashAndPassword(a.hash, []byte(secret))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(secret)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword generates a bcrypt hash suitable for the operator
// configuration. Used by tests and provisioning scripts.
func HashPassword(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
