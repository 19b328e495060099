package options

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrConfigFile       = errors.New("unable to load config file")
	ErrConfigFileFormat = errors.New("unsupported config file format")
)
