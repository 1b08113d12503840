// Package config loads application configuration from YAML files,
// environment variables, and .env files using viper and godotenv, then
// validates the result.
//
//	type AppConfig struct {
//	    Connector connector.Config `yaml:"connector" mapstructure:"connector"`
//	    Logging   logger.Config    `yaml:"logging" mapstructure:"logging"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load("myapp", &cfg); err != nil {
//	    ...
//	}
package config
