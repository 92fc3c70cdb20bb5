package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// SecretScheme encodes a secret for storage and checks a supplied secret
// against a stored one.
//
// PlainSecrets matches the legacy store: secrets are persisted verbatim and
// compared by equality. BcryptSecrets hashes on the way in; records written
// under one scheme cannot be verified under the other, so switching schemes
// on an existing store breaks every stored credential.
type SecretScheme interface {
	Encode(secret string) (string, error)
	Check(supplied, stored string) bool
}

// PlainSecrets stores secrets verbatim
type PlainSecrets struct{}

func (PlainSecrets) Encode(secret string) (string, error) {
	return secret, nil
}

func (PlainSecrets) Check(supplied, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(stored)) == 1
}

// BcryptSecrets stores bcrypt hashes
type BcryptSecrets struct{}

func (BcryptSecrets) Encode(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptSecrets) Check(supplied, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
