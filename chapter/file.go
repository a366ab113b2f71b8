package chapter

import (
	"fmt"

	"github.com/anisan-cli/seekbar/filesystem"
	"github.com/spf13/viper"
)

// fileKey is the table holding the chapter entries inside a chapters file.
const fileKey = "chapters"

// LoadFile reads a chapters file and validates the result.
// The format follows the file extension (toml, json, yaml) and lists entries under a "chapters" array:
//
//	[[chapters]]
//	label = "Intro"
//	start = 0.0
//	end = 0.2
func LoadFile(path string) ([]Chapter, error) {
	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read chapters file %s: %w", path, err)
	}

	var chapters []Chapter
	if err := v.UnmarshalKey(fileKey, &chapters); err != nil {
		return nil, fmt.Errorf("decode chapters file %s: %w", path, err)
	}

	if err := Validate(chapters); err != nil {
		return nil, fmt.Errorf("chapters file %s: %w", path, err)
	}

	return chapters, nil
}
