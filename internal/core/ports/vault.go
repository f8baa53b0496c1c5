package ports

// Vault is the decryption capability for encrypted-at-rest content.
//
//go:generate go run go.uber.org/mock/mockgen -source=vault.go -destination=mocks/mock_vault.go -package=mocks
type Vault interface {
	// IsEncrypted reports whether data carries the vault marker.
	// It must only inspect the prefix of data.
	IsEncrypted(data []byte) bool

	// Decrypt returns the plaintext of data using secret.
	// Failures match domain.ErrCredential.
	Decrypt(data, secret []byte) ([]byte, error)

	// Encrypt seals plaintext with secret. A non-empty label selects the labelled envelope.
	Encrypt(plaintext, secret []byte, label string) ([]byte, error)
}
