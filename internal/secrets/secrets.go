// Package secrets encrypts sensitive settings values at rest using
// fernet symmetric tokens.
package secrets

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Vault wraps a fernet key for encrypting and decrypting strings.
// A nil Vault passes values through unchanged, so deployments without a
// configured key keep working with plaintext storage.
type Vault struct {
	key *fernet.Key
}

// NewVault decodes a base64 fernet key. An empty key string returns a
// nil vault.
func NewVault(encodedKey string) (*Vault, error) {
	if encodedKey == "" {
		return nil, nil
	}
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &Vault{key: key}, nil
}

// EncryptString seals a plaintext value into a fernet token.
func (v *Vault) EncryptString(plaintext string) (string, error) {
	if v == nil || plaintext == "" {
		return plaintext, nil
	}
	token, err := fernet.EncryptAndSign([]byte(plaintext), v.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(token), nil
}

// DecryptString opens a fernet token back into plaintext. Tokens never
// expire; the stored value is the only copy.
func (v *Vault) DecryptString(token string) (string, error) {
	if v == nil || token == "" {
		return token, nil
	}
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{v.key})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt value: token invalid or wrong key")
	}
	return string(plaintext), nil
}
