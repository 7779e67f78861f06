package config

// Config is the complete hwscan configuration.
type Config struct {
	Reports  ReportsConfig  `yaml:"reports"`
	Commands CommandsConfig `yaml:"commands"`
	Logging  LoggingConfig  `yaml:"logging"`
	GPU      GPUConfig      `yaml:"gpu"`
}

// ReportsConfig controls report output.
type ReportsConfig struct {
	// Dir overrides the reports directory. Empty means the reports
	// subdirectory next to the executable.
	Dir string `yaml:"dir"`
	// DefaultName is the base report name used when the prompt is left blank.
	DefaultName string `yaml:"default_name"`
	// Manifest toggles the scan manifest written alongside the reports.
	Manifest bool `yaml:"manifest"`
}

// CommandsConfig controls external command execution.
type CommandsConfig struct {
	// TimeoutSeconds bounds each external command; 0 disables the bound.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File redirects log events from stderr to a file when set.
	File string `yaml:"file"`
}

// GPUConfig controls GPU enumeration.
type GPUConfig struct {
	// PreferNVML tries the structured NVML probe before the text command
	// chain on Linux. Ignored in builds without the nvml tag.
	PreferNVML bool `yaml:"prefer_nvml"`
}

// ValidationError is one configuration validation failure.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
