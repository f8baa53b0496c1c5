package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidFilename is returned when a load is requested with an empty path.
	ErrInvalidFilename = zerr.New("invalid filename")

	// ErrFileNotFound is returned when a path does not exist or is not a regular file.
	ErrFileNotFound = zerr.New("file does not exist or is not a regular file")

	// ErrFileReadFailed is returned when the operating system fails to read a file.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrDirectoryReadFailed is returned when a directory listing fails.
	ErrDirectoryReadFailed = zerr.New("failed to list directory")

	// ErrCredential is the umbrella for every decryption failure.
	ErrCredential = zerr.New("failed to decrypt vault content")

	// ErrVaultSecretMissing is returned when encrypted content is found but no secret is configured.
	ErrVaultSecretMissing = zerr.New("a vault password must be specified to decrypt data")

	// ErrVaultIntegrity is returned when the vault HMAC does not match, usually a wrong password.
	ErrVaultIntegrity = zerr.New("vault HMAC verification failed")

	// ErrVaultFormat is returned when the vault envelope or payload is malformed.
	ErrVaultFormat = zerr.New("malformed vault payload")

	// ErrVaultSecretReadFailed is returned when the vault password file cannot be read.
	ErrVaultSecretReadFailed = zerr.New("failed to read vault password file")

	// ErrInvalidEncoding is returned when file content is not valid UTF-8.
	ErrInvalidEncoding = zerr.New("file content is not valid UTF-8")

	// ErrParseFailed is the sentinel every ParseError unwraps to.
	ErrParseFailed = zerr.New("syntax error while loading document")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidLogFormat is returned when a log format is not one of auto, pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrInvalidOutputFormat is returned when a render format is not json or yaml.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'json' or 'yaml'")

	// ErrRenderFailed is returned when a document cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render document")

	// ErrAlreadyEncrypted is returned when sealing content that already carries the vault marker.
	ErrAlreadyEncrypted = zerr.New("content is already vault encrypted")

	// ErrCandidateNotFound is returned when no search candidate exists on disk.
	ErrCandidateNotFound = zerr.New("no candidate path exists")
)

// ParseError reports malformed content with its source and 1-based position.
// ShowContent is false when the content came out of a vault and must not be echoed.
type ParseError struct {
	Source      string
	Line        int
	Column      int
	Detail      string
	ShowContent bool
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := ErrParseFailed.Error()
	if e.Source != "" {
		msg += " " + e.Source
	}
	if e.Line > 0 {
		msg += " (line " + strconv.Itoa(e.Line) + ", column " + strconv.Itoa(e.Column) + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns ErrParseFailed so callers can match with errors.Is.
func (e *ParseError) Unwrap() error {
	return ErrParseFailed
}

// Position returns the error location as a Position.
func (e *ParseError) Position() *Position {
	return NewPosition(e.Source, e.Line, e.Column)
}
