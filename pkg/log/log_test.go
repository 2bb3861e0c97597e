package log_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/yala/pkg/log"
)

func TestSetLevel(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		level   string
		exp     logrus.Level
		wantErr bool
	}{
		{name: "empty keeps the level", level: "", exp: logrus.InfoLevel},
		{name: "debug", level: "debug", exp: logrus.DebugLevel},
		{name: "warn", level: "warn", exp: logrus.WarnLevel},
		{name: "invalid", level: "loud", exp: logrus.InfoLevel, wantErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			logger := logrus.New()
			logger.SetLevel(logrus.InfoLevel)
			logE := logrus.NewEntry(logger)
			err := log.SetLevel(d.level, logE)
			if d.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			} else if err != nil {
				t.Fatal(err)
			}
			if got := logger.GetLevel(); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}
