// Package where resolves the directories the seek bar reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/seekbar/constant"
	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "SEEKBAR_CONFIG_PATH"

// mkdir creates path on the active filesystem and returns it.
func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// under joins elem onto the configuration directory.
func under(elem string) string {
	return filepath.Join(Config(), elem)
}

// Config is the configuration directory, created on first use.
// SEEKBAR_CONFIG_PATH takes precedence over the platform user config directory.
func Config() string {
	dir, ok := os.LookupEnv(EnvConfigPath)
	if !ok {
		dir = filepath.Join(lo.Must(os.UserConfigDir()), constant.Seekbar)
	}
	return mkdir(dir)
}

// Logs is where daily log files go.
func Logs() string { return mkdir(under("logs")) }

// Snapshots is the default output directory of the snapshot command.
func Snapshots() string { return mkdir(under("snapshots")) }

// Assets is searched for icon images when assets.path is unset. It is never created.
func Assets() string { return under("assets") }
