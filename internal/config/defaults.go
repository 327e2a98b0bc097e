package config

const (
	defaultConfigPath      = "~/.config/orgdir/config.toml"
	projectConfigName      = "orgdir.toml"
	defaultStateDirSetting = "~/.local/state/orgdir"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultHistoryEnabled  = true
)

// Default returns a Config populated with repository defaults. It carries no
// category overrides.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
	}
}
