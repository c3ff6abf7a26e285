// Package config carries deployment settings for the report tool. Run
// parameters (filters, directories) stay on the CLI; the environment only
// holds what differs per installation, like the SFTP target.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log  LogConfig
	SFTP SFTPConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SFTPConfig describes the optional artifact upload target.
type SFTPConfig struct {
	Host                  string
	Port                  int
	User                  string
	Pass                  string
	RemoteDir             string
	InsecureIgnoreHostKey bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// a missing .env is fine, a broken one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		SFTP: SFTPConfig{
			Host:                  v.GetString("sftp.host"),
			Port:                  v.GetInt("sftp.port"),
			User:                  v.GetString("sftp.user"),
			Pass:                  v.GetString("sftp.pass"),
			RemoteDir:             v.GetString("sftp.dir"),
			InsecureIgnoreHostKey: v.GetBool("sftp.insecure.ignore.host.key"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("sftp.port", 22)
	v.SetDefault("sftp.dir", "/")
}
