package vault_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dataloader/internal/adapters/vault"
	"go.trai.ch/dataloader/internal/core/domain"
)

var password = []byte("correct horse")

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func sequentialSalt(start byte) []byte {
	salt := make([]byte, 32)
	for i := range salt {
		salt[i] = start + byte(i)
	}
	return salt
}

func TestVault_IsEncrypted(t *testing.T) {
	v := vault.New()

	assert.True(t, v.IsEncrypted(readFixture(t, "secrets_v11.vault")))
	assert.True(t, v.IsEncrypted(readFixture(t, "token_v12.vault")))
	assert.False(t, v.IsEncrypted([]byte("name: web\n")))
	assert.False(t, v.IsEncrypted([]byte("  $ANSIBLE_VAULT;1.1;AES256\n")))
	assert.False(t, v.IsEncrypted(nil))
}

func TestVault_DecryptFixtures(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		want    string
	}{
		{name: "version 1.1", fixture: "secrets_v11.vault", want: "secret: hunter2\nport: 5432\n"},
		{name: "version 1.2 with label", fixture: "token_v12.vault", want: "token: abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, err := vault.New().Decrypt(readFixture(t, tt.fixture), password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(plain))
		})
	}
}

func TestVault_EncryptMatchesFixtures(t *testing.T) {
	v := vault.NewWithRandom(bytes.NewReader(sequentialSalt(0)))
	sealed, err := v.Encrypt([]byte("secret: hunter2\nport: 5432\n"), password, "")
	require.NoError(t, err)
	assert.Equal(t, string(readFixture(t, "secrets_v11.vault")), string(sealed))

	v = vault.NewWithRandom(bytes.NewReader(sequentialSalt(100)))
	sealed, err = v.Encrypt([]byte("token: abc\n"), password, "prod")
	require.NoError(t, err)
	assert.Equal(t, string(readFixture(t, "token_v12.vault")), string(sealed))
}

func TestVault_RoundTrip(t *testing.T) {
	v := vault.New()

	for _, plain := range []string{"", "x", "exactly sixteen!", strings.Repeat("long line ", 50)} {
		sealed, err := v.Encrypt([]byte(plain), password, "")
		require.NoError(t, err)
		require.True(t, v.IsEncrypted(sealed))

		for _, line := range strings.Split(strings.TrimSpace(string(sealed)), "\n")[1:] {
			assert.LessOrEqual(t, len(line), 80)
		}

		opened, err := v.Decrypt(sealed, password)
		require.NoError(t, err)
		assert.Equal(t, plain, string(opened))
	}
}

func TestVault_DecryptFailures(t *testing.T) {
	fixture := string(readFixture(t, "secrets_v11.vault"))

	tests := []struct {
		name   string
		data   string
		secret []byte
		kind   error
	}{
		{name: "wrong password", data: fixture, secret: []byte("wrong"), kind: domain.ErrVaultIntegrity},
		{name: "missing password", data: fixture, secret: nil, kind: domain.ErrVaultSecretMissing},
		{name: "header only", data: "$ANSIBLE_VAULT;1.1;AES256\n", secret: password, kind: domain.ErrVaultFormat},
		{name: "unknown cipher", data: strings.Replace(fixture, "AES256", "AES", 1), secret: password, kind: domain.ErrVaultFormat},
		{name: "unknown version", data: strings.Replace(fixture, "1.1", "9.9", 1), secret: password, kind: domain.ErrVaultFormat},
		{name: "not hex", data: "$ANSIBLE_VAULT;1.1;AES256\nzzzz\n", secret: password, kind: domain.ErrVaultFormat},
		{name: "tampered ciphertext", data: tamper(fixture), secret: password, kind: domain.ErrVaultIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vault.New().Decrypt([]byte(tt.data), tt.secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrCredential))
			assert.True(t, errors.Is(err, tt.kind))
		})
	}
}

func TestVault_EncryptRejectsBadInput(t *testing.T) {
	_, err := vault.New().Encrypt([]byte("x"), nil, "")
	assert.True(t, errors.Is(err, domain.ErrVaultSecretMissing))

	_, err = vault.New().Encrypt([]byte("x"), password, "bad;label")
	assert.True(t, errors.Is(err, domain.ErrVaultFormat))
}

// tamper flips the last hex digit of the envelope, which lands in the ciphertext.
func tamper(envelope string) string {
	trimmed := strings.TrimRight(envelope, "\n")
	last := trimmed[len(trimmed)-1]
	replacement := byte('0')
	if last == '0' {
		replacement = '1'
	}
	return trimmed[:len(trimmed)-1] + string(replacement) + "\n"
}
