package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/robbyt/go-shibe/execution/normalize"
	"github.com/robbyt/go-shibe/machines/types"
)

// File is the on-disk form of the configuration. Unset keys leave the
// corresponding setting alone.
type File struct {
	Dialect         string `yaml:"dialect" hcl:"dialect,optional"`
	ContinueOnError *bool  `yaml:"continue_on_error" hcl:"continue_on_error,optional"`
	BOMMode         string `yaml:"bom_mode" hcl:"bom_mode,optional"`
	LogLevel        string `yaml:"log_level" hcl:"log_level,optional"`
	MaxSteps        *int   `yaml:"max_steps" hcl:"max_steps,optional"`
}

// LoadFile reads and decodes the config file at path.
func LoadFile(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrConfigFile)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	return DecodeFile(path, src)
}

// DecodeFile decodes src, choosing the syntax from the extension of name:
// .yaml and .yml are YAML, .hcl is HCL.
func DecodeFile(name string, src []byte) (*File, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return decodeYAML(name, src)
	case ".hcl":
		return decodeHCL(name, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrConfigFileFormat, name)
	}
}

func decodeYAML(name string, src []byte) (*File, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(src))
	decoder.KnownFields(true)

	var f File
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: parse %s: %w", ErrConfigFile, name, err)
	}
	return &f, nil
}

func decodeHCL(name string, src []byte) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %s", ErrConfigFile, name, diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %s", ErrConfigFile, name, diags.Error())
	}
	return &f, nil
}

// Options converts the settings present in f into Options.
func (f *File) Options() []Option {
	var opts []Option
	if f.Dialect != "" {
		opts = append(opts, WithDialect(types.Type(f.Dialect)))
	}
	if f.ContinueOnError != nil {
		opts = append(opts, WithContinueOnError(*f.ContinueOnError))
	}
	if f.BOMMode != "" {
		opts = append(opts, WithBOMMode(normalize.BOMMode(f.BOMMode)))
	}
	if f.LogLevel != "" {
		opts = append(opts, WithLogLevel(f.LogLevel))
	}
	if f.MaxSteps != nil {
		opts = append(opts, WithMaxSteps(*f.MaxSteps))
	}
	return opts
}
