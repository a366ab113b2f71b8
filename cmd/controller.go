package cmd

import (
	"github.com/anisan-cli/seekbar/asset"
	"github.com/anisan-cli/seekbar/chapter"
	"github.com/anisan-cli/seekbar/config"
	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/log"
	"github.com/anisan-cli/seekbar/render"
	"github.com/anisan-cli/seekbar/seekbar"
	"github.com/anisan-cli/seekbar/where"
	"github.com/spf13/viper"
)

// assetProvider picks the icon source: assets.path, then the assets directory under the config path,
// then the built-in vector icons.
func assetProvider() asset.Provider {
	if dir := viper.GetString(key.AssetsPath); dir != "" {
		return asset.DirProvider{Dir: dir}
	}

	if exists, err := filesystem.API().DirExists(where.Assets()); err == nil && exists {
		log.Debugf("using icons from %s", where.Assets())
		return asset.DirProvider{Dir: where.Assets()}
	}

	return asset.Builtin{}
}

func chapters() ([]chapter.Chapter, error) {
	if path := viper.GetString(key.ChaptersFile); path != "" {
		return chapter.LoadFile(path)
	}

	return chapter.Defaults(), nil
}

// newController builds a controller from the current settings. A nil clock uses the system clock.
func newController(clock seekbar.Clock) (*seekbar.Controller, error) {
	opts, err := config.Seekbar()
	if err != nil {
		return nil, err
	}

	assets, err := asset.Load(assetProvider())
	if err != nil {
		return nil, err
	}

	list, err := chapters()
	if err != nil {
		return nil, err
	}

	return seekbar.New(opts, assets, list, clock)
}

func newRaster(opts seekbar.Options) (*render.Raster, error) {
	f, err := render.LoadFont(viper.GetString(key.SeekbarFontPath))
	if err != nil {
		return nil, err
	}

	return render.NewRaster(int(opts.Width), int(opts.Height), f), nil
}
