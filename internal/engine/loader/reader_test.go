package loader_test

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/dataloader/internal/adapters/fs"
	"go.trai.ch/dataloader/internal/adapters/vault"
	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports/mocks"
	"go.trai.ch/dataloader/internal/engine/loader"
	"go.uber.org/mock/gomock"
)

func newReader(t *testing.T, files fstest.MapFS, secret string) *loader.FileReader {
	t.Helper()
	fsys := fsadapter.NewMapFSAdapter("/", files)
	return loader.NewFileReader(fsys, loader.NewDecryptionGate(vault.New(), []byte(secret)))
}

func TestFileReader_PlainFile(t *testing.T) {
	r := newReader(t, fstest.MapFS{
		"srv/site.yml": {Data: []byte("hosts: all\n")},
	}, "")

	text, shownInClear, err := r.Read("/srv/site.yml")
	require.NoError(t, err)
	assert.Equal(t, "hosts: all\n", text)
	assert.True(t, shownInClear)
}

func TestFileReader_EncryptedFileIsNeverShownInClear(t *testing.T) {
	sealed := encrypt(t, "secret: hunter2\n", "pw")
	r := newReader(t, fstest.MapFS{
		"srv/secrets.yml": {Data: sealed},
	}, "pw")

	text, shownInClear, err := r.Read("/srv/secrets.yml")
	require.NoError(t, err)
	assert.Equal(t, "secret: hunter2\n", text)
	assert.False(t, shownInClear)
}

func TestFileReader_Errors(t *testing.T) {
	files := fstest.MapFS{
		"srv/site.yml":      {Data: []byte("a: 1\n")},
		"srv/roles/.keep":   {Data: nil},
		"srv/latin1.yml":    {Data: []byte("name: caf\xe9\n")},
		"srv/secrets.yml":   {Data: encrypt(t, "a: 1\n", "right")},
		"srv/bad_vault.yml": {Data: []byte("$ANSIBLE_VAULT;1.1;AES256\nzz\n")},
	}

	tests := []struct {
		name   string
		path   string
		secret string
		want   []error
	}{
		{name: "empty path", path: "", want: []error{domain.ErrInvalidFilename}},
		{name: "missing file", path: "/srv/nope.yml", want: []error{domain.ErrFileNotFound}},
		{name: "directory", path: "/srv/roles", want: []error{domain.ErrFileNotFound}},
		{name: "invalid utf-8", path: "/srv/latin1.yml", want: []error{domain.ErrInvalidEncoding}},
		{
			name: "no secret",
			path: "/srv/secrets.yml",
			want: []error{domain.ErrCredential, domain.ErrVaultSecretMissing},
		},
		{
			name:   "wrong secret",
			path:   "/srv/secrets.yml",
			secret: "wrong",
			want:   []error{domain.ErrCredential, domain.ErrVaultIntegrity},
		},
		{
			name:   "corrupt envelope",
			path:   "/srv/bad_vault.yml",
			secret: "right",
			want:   []error{domain.ErrCredential, domain.ErrVaultFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(t, files, tt.secret)

			text, shownInClear, err := r.Read(tt.path)
			require.Error(t, err)
			assert.Empty(t, text)
			assert.False(t, shownInClear)
			for _, want := range tt.want {
				assert.True(t, errors.Is(err, want), "expected %v in %v", want, err)
			}
		})
	}
}

func TestFileReader_ReadFailureKeepsCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)

	info, err := fs.Stat(fstest.MapFS{"f.yml": {Data: []byte("x")}}, "f.yml")
	require.NoError(t, err)

	fsys.EXPECT().Stat("/srv/f.yml").Return(info, nil)
	fsys.EXPECT().ReadFile("/srv/f.yml").Return(nil, fs.ErrPermission)

	r := loader.NewFileReader(fsys, loader.NewDecryptionGate(vault.New(), nil))
	_, _, err = r.Read("/srv/f.yml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileReadFailed))
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func encrypt(t *testing.T, plaintext, secret string) []byte {
	t.Helper()
	sealed, err := vault.New().Encrypt([]byte(plaintext), []byte(secret), "")
	require.NoError(t, err)
	return sealed
}
