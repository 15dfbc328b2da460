package config

import (
	"errors"
	"os"
)

// Ensure loads the config at path, materializing the defaults there first
// when the file does not exist yet so users have something to edit.
func Ensure(path string) (Config, error) {
	_, err := os.Stat(path)
	if err == nil {
		return Load(path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Default(), err
	}
	cfg := Default()
	if err := SaveAtomic(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
