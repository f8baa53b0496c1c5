package domain

const (
	// SettingsFileName is the name of the optional settings file discovered from the working directory.
	SettingsFileName = "dataloader.yaml"

	// TasksDirName is the role subdirectory that holds task entrypoints.
	TasksDirName = "tasks"

	// DefaultSourceName names content that was not read from a file.
	DefaultSourceName = "<string>"

	// StdinSourceName names content read from standard input.
	StdinSourceName = "<stdin>"

	// VaultHeaderPrefix marks vault-encrypted content.
	VaultHeaderPrefix = "$ANSIBLE_VAULT"

	// PrivateFilePerm is the permission used for files that may hold secrets (rw-------).
	PrivateFilePerm = 0o600
)

// RoleEntrypoints lists the file names that mark a tasks directory as part of a role.
var RoleEntrypoints = []string{"main.yml", "main.yaml", "main.json"}
