package config

const (
	defaultConfigPath = "~/.config/extsort/config.toml"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultLogFile    = "extsort.log"
)

// Recognized log sinks.
const (
	SinkConsole = "console"
	SinkFile    = "file"
	SinkNone    = "none"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Organize: Organize{
			KeepTopLevel:     true,
			SkipLabelFolders: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Sinks:  []string{SinkConsole, SinkFile},
			File:   defaultLogFile,
		},
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
	}
}
