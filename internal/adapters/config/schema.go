package config

// Settingsfile represents the structure of the dataloader.yaml settings file.
type Settingsfile struct {
	BaseDir           string `yaml:"base_dir"`
	VaultPasswordFile string `yaml:"vault_password_file"`
	LogFormat         string `yaml:"log_format"`
	Verbose           bool   `yaml:"verbose"`
}
