// Package vault reads and writes AES256 vault envelopes (format versions 1.1 and 1.2).
package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	cipherName  = "AES256"
	version11   = "1.1"
	version12   = "1.2"
	saltSize    = 32
	keySize     = 32
	iterations  = 10000
	lineWidth   = 80
	derivedSize = 2*keySize + aes.BlockSize
)

// Vault implements ports.Vault.
type Vault struct {
	random io.Reader
}

// New creates a Vault that draws salts from crypto/rand.
func New() *Vault {
	return &Vault{random: rand.Reader}
}

// NewWithRandom creates a Vault that draws salts from r.
func NewWithRandom(r io.Reader) *Vault {
	return &Vault{random: r}
}

// IsEncrypted reports whether data starts with the vault header marker.
func (v *Vault) IsEncrypted(data []byte) bool {
	return bytes.HasPrefix(data, []byte(domain.VaultHeaderPrefix))
}

// Decrypt opens a vault envelope with secret.
func (v *Vault) Decrypt(data, secret []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredential, domain.ErrVaultSecretMissing)
	}

	header, body, err := splitEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	salt, mac, ciphertext, err := decodePayload(body)
	if err != nil {
		return nil, err
	}

	cipherKey, hmacKey, iv, err := deriveKeys(secret, salt)
	if err != nil {
		return nil, formatError(err.Error())
	}

	h := hmac.New(sha256.New, hmacKey)
	h.Write(ciphertext)
	if !hmac.Equal(h.Sum(nil), mac) {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredential, domain.ErrVaultIntegrity)
	}

	block, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, formatError(err.Error())
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(padded, ciphertext)

	plaintext, err := unpad(padded)
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}

// Encrypt seals plaintext into a 1.1 envelope, or a 1.2 envelope when label is set.
func (v *Vault) Encrypt(plaintext, secret []byte, label string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrCredential, domain.ErrVaultSecretMissing)
	}
	if strings.ContainsAny(label, ";\n\r") {
		return nil, zerr.With(formatError("label must not contain ';' or line breaks"), "label", label)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(v.random, salt); err != nil {
		return nil, zerr.Wrap(err, "failed to generate vault salt")
	}

	cipherKey, hmacKey, iv, err := deriveKeys(secret, salt)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to derive vault keys")
	}
	block, err := aes.NewCipher(cipherKey)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create vault cipher")
	}

	padded := pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, padded)

	h := hmac.New(sha256.New, hmacKey)
	h.Write(ciphertext)

	payload := hex.EncodeToString(salt) + "\n" + hex.EncodeToString(h.Sum(nil)) + "\n" + hex.EncodeToString(ciphertext)
	encoded := hex.EncodeToString([]byte(payload))

	var out strings.Builder
	out.WriteString(domain.VaultHeaderPrefix)
	if label == "" {
		out.WriteString(";" + version11 + ";" + cipherName)
	} else {
		out.WriteString(";" + version12 + ";" + cipherName + ";" + label)
	}
	out.WriteByte('\n')
	for len(encoded) > lineWidth {
		out.WriteString(encoded[:lineWidth])
		out.WriteByte('\n')
		encoded = encoded[lineWidth:]
	}
	out.WriteString(encoded)
	out.WriteByte('\n')
	return []byte(out.String()), nil
}

func splitEnvelope(data []byte) (string, []byte, error) {
	text := strings.TrimSpace(string(data))
	header, body, ok := strings.Cut(text, "\n")
	if !ok {
		return "", nil, formatError("missing vault payload")
	}

	var compact bytes.Buffer
	for _, line := range strings.Split(body, "\n") {
		compact.WriteString(strings.TrimSpace(line))
	}
	return strings.TrimSpace(header), compact.Bytes(), nil
}

func checkHeader(header string) error {
	fields := strings.Split(header, ";")
	if len(fields) < 3 || fields[0] != domain.VaultHeaderPrefix {
		return zerr.With(formatError("invalid vault header"), "header", header)
	}
	switch fields[1] {
	case version11, version12:
	default:
		return zerr.With(formatError("unsupported vault version"), "version", fields[1])
	}
	if strings.TrimSpace(fields[2]) != cipherName {
		return zerr.With(formatError("unsupported vault cipher"), "cipher", fields[2])
	}
	return nil
}

func decodePayload(body []byte) (salt, mac, ciphertext []byte, err error) {
	raw := make([]byte, hex.DecodedLen(len(body)))
	if _, err := hex.Decode(raw, body); err != nil {
		return nil, nil, nil, formatError("vault payload is not hex encoded")
	}

	parts := strings.Split(string(raw), "\n")
	if len(parts) != 3 {
		return nil, nil, nil, formatError("vault payload must hold salt, hmac and ciphertext")
	}

	decoded := make([][]byte, len(parts))
	for i, part := range parts {
		b, err := hex.DecodeString(part)
		if err != nil {
			return nil, nil, nil, formatError("vault payload field is not hex encoded")
		}
		decoded[i] = b
	}
	if len(decoded[2]) == 0 || len(decoded[2])%aes.BlockSize != 0 {
		return nil, nil, nil, formatError("vault ciphertext has an invalid length")
	}
	return decoded[0], decoded[1], decoded[2], nil
}

// deriveKeys splits one PBKDF2 output into the cipher key, HMAC key and counter IV.
func deriveKeys(secret, salt []byte) (cipherKey, hmacKey, iv []byte, err error) {
	derived, err := pbkdf2.Key(sha256.New, string(secret), salt, iterations, derivedSize)
	if err != nil {
		return nil, nil, nil, err
	}
	return derived[:keySize], derived[keySize : 2*keySize], derived[2*keySize:], nil
}

func pad(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, formatError("empty plaintext")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, formatError("invalid plaintext padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, formatError("invalid plaintext padding")
		}
	}
	return data[:len(data)-n], nil
}

func formatError(detail string) error {
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrCredential, domain.ErrVaultFormat), "detail", detail)
}
