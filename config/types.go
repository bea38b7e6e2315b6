package config

// Output naming modes.
const (
	NamingIndex = "index"
	NamingName  = "name"
)

// DefaultIndent is the number of spaces used to indent written GPX files.
const DefaultIndent = 2

// OutputConfig controls where and how split files are written
type OutputConfig struct {
	Dir       string `yaml:"dir"` // empty writes alongside the input
	Naming    string `yaml:"naming" validate:"required,oneof=index name"`
	Indent    int    `yaml:"indent" validate:"gte=0,lte=8"`
	Overwrite bool   `yaml:"overwrite"`
}

// IncludeConfig selects which top-level elements are copied next to each track
type IncludeConfig struct {
	Waypoints bool `yaml:"waypoints"`
}

// LoggingConfig contains diagnostic logging settings
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Output  OutputConfig  `yaml:"output"`
	Include IncludeConfig `yaml:"include"`
	Logging LoggingConfig `yaml:"logging"`
}
