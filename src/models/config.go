package models

// MConfig Structure
type MConfig struct {
	Name         string              `yaml:"name"`
	Host         string              `yaml:"host"`
	Port         int                 `yaml:"port"`
	LogLevel     string              `yaml:"log_level"`
	GrpcHost     string              `yaml:"grpc_host"`
	GrpcPort     int                 `yaml:"grpc_port"`
	Network      MNetworkConfig      `yaml:"network"`
	DataSource   MDataSourceConfig   `yaml:"data_source"`
	Presentation MPresentationConfig `yaml:"presentation"`
}

type MNetworkConfig struct {
	RequestTimeout int      `yaml:"timeout"`
	UserAgent      string   `yaml:"user_agent"`
	Proxies        []string `yaml:"proxies"`
}

type MDataSourceConfig struct {
	Endpoint              string `yaml:"endpoint"`
	APIKey                string `yaml:"api_key"`
	UpdateIntervalSeconds int    `yaml:"update_interval_seconds"`
}

type MPresentationConfig struct {
	Locale string `yaml:"locale"`
}
