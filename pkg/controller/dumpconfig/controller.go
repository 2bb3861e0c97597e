// Package dumpconfig implements `yala dump-config`.
// It prints the effective configuration of every supported linter,
// merging the adapters' defaults with the configuration file.
package dumpconfig

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

type ConfigProvider interface {
	LinterConfig(name string) linter.Options
	ActiveLinters() []linter.Linter
	IsUserChoice(name string) bool
	Jobs() int
}

type Controller struct {
	provider ConfigProvider
	stdout   io.Writer
}

func New(provider ConfigProvider, stdout io.Writer) *Controller {
	return &Controller{
		provider: provider,
		stdout:   stdout,
	}
}

type Dump struct {
	Jobs    int           `yaml:"jobs"`
	Linters []*LinterDump `yaml:"linters"`
}

type LinterDump struct {
	Name       string `yaml:"name"`
	Active     bool   `yaml:"active"`
	UserChoice bool   `yaml:"user_choice"`
	Command    string `yaml:"command"`
	Timeout    string `yaml:"timeout,omitempty"`
}

func (c *Controller) Dump() *Dump {
	active := map[string]struct{}{}
	for _, l := range c.provider.ActiveLinters() {
		active[l.Name()] = struct{}{}
	}
	all := linter.All()
	dump := &Dump{
		Jobs:    c.provider.Jobs(),
		Linters: make([]*LinterDump, len(all)),
	}
	for i, l := range all {
		name := l.Name()
		opts := c.provider.LinterConfig(name)
		_, ok := active[name]
		d := &LinterDump{
			Name:       name,
			Active:     ok,
			UserChoice: c.provider.IsUserChoice(name),
			Command:    l.CommandWithOptions(opts),
		}
		if opts.Timeout > 0 {
			d.Timeout = opts.Timeout.String()
		}
		dump.Linters[i] = d
	}
	return dump
}

// DumpConfig outputs the effective configuration as YAML.
func (c *Controller) DumpConfig() error {
	b, err := yaml.Marshal(c.Dump())
	if err != nil {
		return fmt.Errorf("marshal the configuration as YAML: %w", err)
	}
	if _, err := c.stdout.Write(b); err != nil {
		return fmt.Errorf("output the configuration: %w", err)
	}
	return nil
}
