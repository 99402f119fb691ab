package config

// YAMLConfig mirrors shopcart.yaml. Pointers distinguish "absent" from the
// zero value so defaults survive partial files.
type YAMLConfig struct {
	Shopcart struct {
		Currency *string `yaml:"currency"`

		Receipt struct {
			Format       string `yaml:"format"`
			LineTemplate string `yaml:"line_template"`
		} `yaml:"receipt"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`

		Paths struct {
			SessionsDir string `yaml:"sessions_dir"`
			LogsDir     string `yaml:"logs_dir"`
		} `yaml:"paths"`
	} `yaml:"shopcart"`
}
