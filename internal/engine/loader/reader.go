package loader

import (
	"fmt"
	"unicode/utf8"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/dataloader/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileReader reads whole files through the decryption gate and decodes them as UTF-8.
type FileReader struct {
	fs   ports.FileSystem
	gate *DecryptionGate
}

// NewFileReader creates a FileReader.
func NewFileReader(fs ports.FileSystem, gate *DecryptionGate) *FileReader {
	return &FileReader{fs: fs, gate: gate}
}

// Read returns the text of path. shownInClear is false when the content was decrypted,
// so callers must not echo it.
func (r *FileReader) Read(path string) (text string, shownInClear bool, err error) {
	if path == "" {
		return "", false, domain.ErrInvalidFilename
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		return "", false, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileNotFound, err), "path", path)
	}
	if !info.Mode().IsRegular() {
		return "", false, zerr.With(fmt.Errorf("%w", domain.ErrFileNotFound), "path", path)
	}

	raw, err := r.fs.ReadFile(path)
	if err != nil {
		return "", false, zerr.With(fmt.Errorf("%w: %w", domain.ErrFileReadFailed, err), "path", path)
	}

	plain, wasEncrypted, err := r.gate.MaybeDecrypt(raw)
	if err != nil {
		return "", false, zerr.With(err, "path", path)
	}

	if offset := invalidUTF8Offset(plain); offset >= 0 {
		return "", false, zerr.With(zerr.With(fmt.Errorf("%w", domain.ErrInvalidEncoding), "path", path), "offset", offset)
	}
	return string(plain), !wasEncrypted, nil
}

// invalidUTF8Offset returns the byte offset of the first invalid sequence, or -1.
func invalidUTF8Offset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
