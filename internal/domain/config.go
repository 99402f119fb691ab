package domain

// DefaultLineTemplate renders a receipt line as
// "2 Laptop @ $900.00 each (Original: $1000.00) = $1800.00".
const DefaultLineTemplate = "{{quantity}} {{name}} @ {{currency}}{{unit_price}} each (Original: {{currency}}{{original_price}}) = {{currency}}{{line_total}}"

// Config represents the shopcart configuration loaded from shopcart.yaml.
type Config struct {
	Currency string
	Receipt  ReceiptConfig
	Logging  LoggingConfig
	Paths    PathsConfig
}

type ReceiptConfig struct {
	Format       string
	LineTemplate string
}

type LoggingConfig struct {
	Debug bool
}

type PathsConfig struct {
	SessionsDir string
	LogsDir     string
}

// DefaultConfig provides sane defaults if shopcart.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Currency: "$",
		Receipt: ReceiptConfig{
			Format:       "pretty",
			LineTemplate: DefaultLineTemplate,
		},
		Paths: PathsConfig{
			SessionsDir: "sessions",
			LogsDir:     ".shopcart/logs",
		},
	}
}

// WorkspaceSpec describes where a workspace is scaffolded.
type WorkspaceSpec struct {
	Root string
}
