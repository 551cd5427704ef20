package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr      string `mapstructure:"addr"`
		Token     string `mapstructure:"token"`
		StaticDir string `mapstructure:"static_dir"`
		LogLevel  string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Watchdog struct {
		PollIntervalSeconds int `mapstructure:"poll_interval_seconds"`
		GracePeriodSeconds  int `mapstructure:"grace_period_seconds"`
	} `mapstructure:"watchdog"`
	Display struct {
		HideArtArtists []string `mapstructure:"hide_art_artists"`
		HideArtAlbums  []string `mapstructure:"hide_art_albums"`
	} `mapstructure:"display"`
}

func Load() *Config {
	viper.SetEnvPrefix("NOWPLAYING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.addr")
	viper.BindEnv("server.token")
	viper.BindEnv("server.static_dir")
	viper.BindEnv("server.log_level")
	viper.BindEnv("watchdog.poll_interval_seconds")
	viper.BindEnv("watchdog.grace_period_seconds")

	// Defaults
	viper.SetDefault("server.addr", ":3000")
	viper.SetDefault("server.static_dir", "./web")
	viper.SetDefault("server.log_level", "info")
	viper.SetDefault("watchdog.poll_interval_seconds", 5)
	viper.SetDefault("watchdog.grace_period_seconds", 10)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if cfg.Server.Token == "" {
		log.Fatal("Critical: publisher token is missing (NOWPLAYING_SERVER_TOKEN)")
	}

	return &cfg
}
