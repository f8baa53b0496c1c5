package loader

import (
	"bytes"
	"errors"
	"fmt"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
)

// DecryptionGate decrypts vault content and passes everything else through.
type DecryptionGate struct {
	vault  ports.Vault
	secret []byte
}

// NewDecryptionGate creates a gate using vault and a private copy of secret.
func NewDecryptionGate(vault ports.Vault, secret []byte) *DecryptionGate {
	return &DecryptionGate{vault: vault, secret: bytes.Clone(secret)}
}

// MaybeDecrypt returns raw unchanged when it carries no vault marker.
// Otherwise it returns the plaintext and reports wasEncrypted.
// Every decryption failure matches domain.ErrCredential.
func (g *DecryptionGate) MaybeDecrypt(raw []byte) (plain []byte, wasEncrypted bool, err error) {
	if g.vault == nil || !g.vault.IsEncrypted(raw) {
		return raw, false, nil
	}

	plain, err = g.vault.Decrypt(raw, g.secret)
	if err != nil {
		if !errors.Is(err, domain.ErrCredential) {
			err = fmt.Errorf("%w: %w", domain.ErrCredential, err)
		}
		return nil, true, err
	}
	return plain, true, nil
}
