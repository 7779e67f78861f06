package config

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Reports: ReportsConfig{
			DefaultName: "system_info",
			Manifest:    true,
		},
		Commands: CommandsConfig{
			TimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		GPU: GPUConfig{
			PreferNVML: true,
		},
	}
}
