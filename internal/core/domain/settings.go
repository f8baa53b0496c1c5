package domain

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogFormatAuto picks pretty output on a terminal and JSON elsewhere.
	LogFormatAuto LogFormat = "auto"
	// LogFormatPretty forces human readable output.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON forces JSON output.
	LogFormatJSON LogFormat = "json"
)

// Valid reports whether f is a known log format. The empty value counts as auto.
func (f LogFormat) Valid() bool {
	switch f {
	case "", LogFormatAuto, LogFormatPretty, LogFormatJSON:
		return true
	default:
		return false
	}
}

// Settings holds the loader configuration resolved from the settings file and environment.
type Settings struct {
	// Path is the settings file that was read, empty when defaults were used.
	Path string
	// BaseDir is the initial base directory for relative paths.
	BaseDir string
	// VaultPasswordFile points at a file holding the vault secret.
	VaultPasswordFile string
	// VaultPassword is the secret taken from the environment, if set.
	VaultPassword string
	LogFormat     LogFormat
	Verbose       bool
}

// VaultSecret is the password used to open and seal vault content. Nil means none is configured.
type VaultSecret []byte
