// Package config reads yala's configuration file and resolves the effective
// options of each linter.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Linters  []string                  `json:"linters,omitempty" jsonschema:"description=Linters to run. By default all supported linters run and missing ones are skipped silently"`
	Jobs     int                       `json:"jobs,omitempty" jsonschema:"description=The number of linters run in parallel. By default the number of CPUs,minimum=0"`
	Timeout  string                    `json:"timeout,omitempty" jsonschema:"description=Default timeout of each linter (e.g. 5m). By default there is no timeout"`
	Settings map[string]*LinterSetting `json:"settings,omitempty" jsonschema:"description=Settings per linter. Keys are linter names"`
	timeout  time.Duration
}

type LinterSetting struct {
	Args    *string `json:"args,omitempty" jsonschema:"description=Command line arguments. They replace the default arguments"`
	Timeout string  `json:"timeout,omitempty" jsonschema:"description=Timeout of the linter (e.g. 1m). This overrides the global timeout and 0s disables it"`
	timeout time.Duration
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse a timeout as a duration: %w", err)
	}
	if d < 0 {
		return 0, errors.New("timeout must not be negative")
	}
	return d, nil
}

func validateLinterName(name string) error {
	if linter.Get(name) == nil {
		return fmt.Errorf("unknown linter %q (supported: %v)", name, linter.Names())
	}
	return nil
}

// Init validates the configuration and parses durations.
// It can be called again after fields are overridden by command line flags.
func (c *Config) Init() error {
	if c.Jobs < 0 {
		return errors.New("jobs must not be negative")
	}
	for _, name := range c.Linters {
		if err := validateLinterName(name); err != nil {
			return fmt.Errorf("validate linters: %w", err)
		}
	}
	d, err := parseTimeout(c.Timeout)
	if err != nil {
		return err
	}
	c.timeout = d
	for name, s := range c.Settings {
		if err := validateLinterName(name); err != nil {
			return fmt.Errorf("validate settings: %w", err)
		}
		if s == nil {
			continue
		}
		d, err := parseTimeout(s.Timeout)
		if err != nil {
			return fmt.Errorf("validate settings of %s: %w", name, err)
		}
		s.timeout = d
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".yala.yaml", ".yala.yml", ".github/yala.yaml", ".github/yala.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}

// Provider resolves the linters to run and their effective options.
// It is read-only once created.
type Provider struct {
	cfg *Config
}

func NewProvider(cfg *Config) *Provider {
	return &Provider{cfg: cfg}
}

// LinterConfig returns the adapter's defaults merged with the user's settings.
func (p *Provider) LinterConfig(name string) linter.Options {
	var opts linter.Options
	if l := linter.Get(name); l != nil {
		opts = l.Defaults()
	}
	opts.Timeout = p.cfg.timeout
	s := p.cfg.Settings[name]
	if s == nil {
		return opts
	}
	if s.Args != nil {
		opts.Args = *s.Args
	}
	if s.Timeout != "" {
		// 0s disables the global timeout
		opts.Timeout = s.timeout
	}
	return opts
}

// ActiveLinters returns the linters selected by the user, or all linters
// if the user selected none. The order follows the registry.
func (p *Provider) ActiveLinters() []linter.Linter {
	all := linter.All()
	if len(p.cfg.Linters) == 0 {
		return all
	}
	return slices.DeleteFunc(all, func(l linter.Linter) bool {
		return !p.IsUserChoice(l.Name())
	})
}

// IsUserChoice reports whether the user selected the linter explicitly.
func (p *Provider) IsUserChoice(name string) bool {
	return slices.Contains(p.cfg.Linters, name)
}

// Jobs returns the size of the worker pool. 0 means the number of CPUs.
func (p *Provider) Jobs() int {
	return p.cfg.Jobs
}
