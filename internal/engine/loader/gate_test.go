package loader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports/mocks"
	"go.trai.ch/dataloader/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

func TestDecryptionGate_PassesPlainContentThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mocks.NewMockVault(ctrl)

	raw := []byte("a: 1\n")
	v.EXPECT().IsEncrypted(raw).Return(false)

	plain, wasEncrypted, err := loader.NewDecryptionGate(v, []byte("pw")).MaybeDecrypt(raw)
	require.NoError(t, err)
	assert.False(t, wasEncrypted)
	assert.Equal(t, raw, plain)
}

func TestDecryptionGate_Decrypts(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mocks.NewMockVault(ctrl)

	raw := []byte("$ANSIBLE_VAULT;1.1;AES256\n00\n")
	v.EXPECT().IsEncrypted(raw).Return(true)
	v.EXPECT().Decrypt(raw, []byte("pw")).Return([]byte("a: 1\n"), nil)

	plain, wasEncrypted, err := loader.NewDecryptionGate(v, []byte("pw")).MaybeDecrypt(raw)
	require.NoError(t, err)
	assert.True(t, wasEncrypted)
	assert.Equal(t, "a: 1\n", string(plain))
}

func TestDecryptionGate_SecretIsCopied(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mocks.NewMockVault(ctrl)

	secret := []byte("pw")
	gate := loader.NewDecryptionGate(v, secret)
	secret[0] = 'x'

	v.EXPECT().IsEncrypted(gomock.Any()).Return(true)
	v.EXPECT().Decrypt(gomock.Any(), []byte("pw")).Return([]byte("ok"), nil)

	_, _, err := gate.MaybeDecrypt([]byte("$ANSIBLE_VAULT"))
	require.NoError(t, err)
}

func TestDecryptionGate_FailuresAreCredentialErrors(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		also  error
	}{
		{
			name:  "foreign error is wrapped",
			cause: errors.New("disk on fire"),
		},
		{
			name:  "credential error keeps its kind",
			cause: errors.Join(domain.ErrCredential, domain.ErrVaultIntegrity),
			also:  domain.ErrVaultIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			v := mocks.NewMockVault(ctrl)
			v.EXPECT().IsEncrypted(gomock.Any()).Return(true)
			v.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(nil, tt.cause)

			plain, wasEncrypted, err := loader.NewDecryptionGate(v, nil).MaybeDecrypt([]byte("$ANSIBLE_VAULT"))
			require.Error(t, err)
			assert.Nil(t, plain)
			assert.True(t, wasEncrypted)
			assert.True(t, errors.Is(err, domain.ErrCredential))
			assert.True(t, errors.Is(err, tt.cause))
			if tt.also != nil {
				assert.True(t, errors.Is(err, tt.also))
			}
		})
	}
}
