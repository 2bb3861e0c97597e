// Package log creates the logrus entry shared by all yala commands.
package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"version": version,
		"program": "yala",
	})
}

// SetLevel changes the level of the logger behind logE.
// An empty level keeps the current one.
func SetLevel(level string, logE *logrus.Entry) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse the log level: %w", err)
	}
	logE.Logger.SetLevel(lvl)
	return nil
}
