// Package config registers every setting with viper and reads the seekbar.toml file.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/seekbar/constant"
	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a setting key into the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

const fileType = "toml"

// File returns the path of the settings file.
func File() string {
	return filepath.Join(where.Config(), constant.Seekbar+"."+fileType)
}

// Setup registers defaults and environment bindings, then reads the settings file if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Seekbar)
	viper.SetConfigType(fileType)
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Seekbar)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for _, f := range fields {
		viper.SetDefault(f.Key, f.Value)
		if err := viper.BindEnv(f.Key); err != nil {
			return fmt.Errorf("bind %s: %w", f.Env(), err)
		}
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read %s: %w", File(), err)
	}

	return nil
}

// Persist writes the current settings to File, creating it when missing.
func Persist() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
