// Package config discovers and reads the dataloader settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/dataloader/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the settings file.
const (
	EnvBaseDir           = "DATALOADER_BASEDIR"
	EnvVaultPasswordFile = "DATALOADER_VAULT_PASSWORD_FILE"
	EnvVaultPassword     = "DATALOADER_VAULT_PASSWORD"
	EnvLogFormat         = "DATALOADER_LOG_FORMAT"
	EnvVerbose           = "DATALOADER_VERBOSE"
)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Loader implements ports.SettingsLoader using a YAML file and the environment.
type Loader struct {
	lookupEnv LookupEnvFunc
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{lookupEnv: os.LookupEnv}
}

// NewLoaderWithEnv creates a Loader reading overrides through lookup.
func NewLoaderWithEnv(lookup LookupEnvFunc) *Loader {
	return &Loader{lookupEnv: lookup}
}

// Load discovers the nearest settings file from cwd upwards and applies environment overrides.
// A missing settings file yields defaults.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	settings := &domain.Settings{LogFormat: domain.LogFormatAuto}

	if path, ok := findSettings(cwd); ok {
		var file Settingsfile
		if err := readAndUnmarshalYAML(path, &file); err != nil {
			return nil, err
		}
		settings.Path = path
		settings.BaseDir = resolveAgainst(filepath.Dir(path), file.BaseDir)
		settings.VaultPasswordFile = resolveAgainst(filepath.Dir(path), file.VaultPasswordFile)
		settings.Verbose = file.Verbose
		if file.LogFormat != "" {
			settings.LogFormat = domain.LogFormat(file.LogFormat)
		}
	}

	if err := l.applyEnv(cwd, settings); err != nil {
		return nil, err
	}

	if !settings.LogFormat.Valid() {
		return nil, zerr.With(fmt.Errorf("%w", domain.ErrInvalidLogFormat), "log_format", string(settings.LogFormat))
	}
	return settings, nil
}

// ReadVaultSecret returns the configured vault secret with one trailing line break trimmed.
// The environment password wins over the password file. It returns nil when neither is set.
func (l *Loader) ReadVaultSecret(settings *domain.Settings) ([]byte, error) {
	if settings == nil {
		return nil, nil
	}
	if settings.VaultPassword != "" {
		return []byte(settings.VaultPassword), nil
	}
	if settings.VaultPasswordFile == "" {
		return nil, nil
	}

	// #nosec G304 -- the password file is named by the operator
	data, err := os.ReadFile(settings.VaultPasswordFile)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrVaultSecretReadFailed, err), "path", settings.VaultPasswordFile)
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	return data, nil
}

func (l *Loader) applyEnv(cwd string, settings *domain.Settings) error {
	if v, ok := l.lookupEnv(EnvBaseDir); ok && v != "" {
		settings.BaseDir = resolveAgainst(cwd, v)
	}
	if v, ok := l.lookupEnv(EnvVaultPasswordFile); ok && v != "" {
		settings.VaultPasswordFile = resolveAgainst(cwd, v)
	}
	if v, ok := l.lookupEnv(EnvVaultPassword); ok {
		settings.VaultPassword = v
	}
	if v, ok := l.lookupEnv(EnvLogFormat); ok && v != "" {
		settings.LogFormat = domain.LogFormat(v)
	}
	if v, ok := l.lookupEnv(EnvVerbose); ok && v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "invalid boolean"), "env", EnvVerbose)
		}
		settings.Verbose = verbose
	}
	return nil
}

// findSettings walks from cwd to the filesystem root and returns the nearest settings file.
func findSettings(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func resolveAgainst(dir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(dir, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// An empty file leaves target untouched.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is discovered by findSettings
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrSettingsReadFailed, err), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrSettingsParseFailed, err), "path", path)
	}
	return nil
}
