package caption

type Config struct {
	APIKey   string
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	Timeout  int64  `yaml:"timeout_in_ms"`
}
