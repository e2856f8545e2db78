// Package config provides compiler option loading for vtc-go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options represents the complete compiler configuration
type Options struct {
	// Package is the package name of the generated Go files
	Package string `yaml:"package"`
	// RuntimeImport is the import path of the virtual-tree runtime
	RuntimeImport string `yaml:"runtime_import"`
	// RuntimeAlias is the import alias the emitted code uses for the
	// runtime package
	RuntimeAlias string `yaml:"runtime_alias"`
	// Imports lists extra import paths the generated files need for
	// the component packages referenced by emitted code
	Imports []string `yaml:"imports"`
	// Manifests lists the component schema manifest files
	Manifests []string `yaml:"manifests"`
	// OutDir is the directory generated files are written to; empty
	// writes next to the source
	OutDir string `yaml:"out_dir"`
}

// DefaultOptions returns Options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		Package:       "views",
		RuntimeImport: "vtc-go/vtree",
		RuntimeAlias:  "vtree",
		Manifests:     nil,
		OutDir:        "",
	}
}

// LoadOptions reads options from a YAML file, applying defaults for
// everything the file leaves unset
func LoadOptions(path string) (*Options, error) {
	options := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return options, nil
}

// Validate checks that the configuration is usable
func (o *Options) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package is required")
	}
	if o.RuntimeImport == "" {
		return fmt.Errorf("runtime_import is required")
	}
	if o.RuntimeAlias == "" {
		return fmt.Errorf("runtime_alias is required")
	}
	return nil
}
