// Package initcmd implements `yala init`.
package initcmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/go-stdutil"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/yala/refs/heads/main/json-schema/yala.json
# yala - https://github.com/suzuki-shunsuke/yala
# If linters is empty, all supported linters run and missing ones are skipped.
# linters:
#   - pylint
#   - mypy
# jobs: 4
# timeout: 5m
# settings:
#   pylint:
#     args: --disable=C0111
#     timeout: 1m
`
	DefaultConfigPath = ".yala.yaml"
)

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init creates a configuration file if it doesn't exist.
// An existing file is left as is.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	if configFilePath == "" {
		configFilePath = DefaultConfigPath
	}
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), stdutil.DefaultFilePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config", configFilePath).Info("created a configuration file")
	return nil
}
