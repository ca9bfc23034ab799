package config

import "github.com/spf13/viper"

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Catalog   CatalogConfig
	Mail      MailConfig
	Log       LogConfig
	AccessKey string
}

type ServerConfig struct {
	Port int
}

type StoreConfig struct {
	Path string
}

type CatalogConfig struct {
	Path string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", 3000)
	viper.SetDefault("STORE_PATH", "data/orders.xlsx")
	viper.SetDefault("CATALOG_PATH", "data/perfumes.json")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("PORT"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Mail: MailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("EMAIL_USER"),
			Password: viper.GetString("EMAIL_PASS"),
			To:       viper.GetString("EMAIL_TO"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		AccessKey: viper.GetString("ACCESS_KEY"),
	}

	if cfg.Mail.To == "" {
		cfg.Mail.To = cfg.Mail.User
	}

	return cfg, nil
}

// Enabled reports whether notification credentials were configured. With
// either value absent the notifier stays a no-op.
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}
