package di

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/yala/pkg/cli/flag"
	"github.com/suzuki-shunsuke/yala/pkg/config"
)

func Test_isNoColor(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		mode     string
		env      map[string]string
		terminal bool
		exp      bool
		isErr    bool
	}{
		{name: "auto on a terminal", terminal: true, exp: false},
		{name: "auto not on a terminal", mode: ColorAuto, exp: true},
		{name: "NO_COLOR", env: map[string]string{"NO_COLOR": "1"}, terminal: true, exp: true},
		{name: "always", mode: ColorAlways, env: map[string]string{"NO_COLOR": "1"}, exp: false},
		{name: "never", mode: ColorNever, terminal: true, exp: true},
		{name: "invalid", mode: "sometimes", isErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got, err := isNoColor(d.mode, stdutil.NewMock(d.env).Getenv, d.terminal)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Errorf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func Test_validateFormat(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"", "text", "sarif"} {
		if err := validateFormat(format); err != nil {
			t.Errorf("%q must be valid: %v", format, err)
		}
	}
	if err := validateFormat("json"); err == nil {
		t.Error("json must be invalid")
	}
}

func Test_readConfig(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		files   map[string]string
		flags   *Flags
		linters []string
		jobs    int
		timeout string
		isErr   bool
	}{
		{
			name:  "no configuration file",
			flags: &Flags{GlobalFlags: &flag.GlobalFlags{}},
		},
		{
			name: "configuration file",
			files: map[string]string{
				".yala.yaml": "linters: [pylint, mypy]\njobs: 2\n",
			},
			flags:   &Flags{GlobalFlags: &flag.GlobalFlags{}},
			linters: []string{"pylint", "mypy"},
			jobs:    2,
		},
		{
			name: "flags override the configuration file",
			files: map[string]string{
				".yala.yaml": "linters: [pylint, mypy]\njobs: 2\n",
			},
			flags:   &Flags{GlobalFlags: &flag.GlobalFlags{}, Linters: []string{"isort"}, Jobs: 4, Timeout: "30s"},
			linters: []string{"isort"},
			jobs:    4,
			timeout: "30s",
		},
		{
			name: "--config",
			files: map[string]string{
				"ci/yala.yaml": "timeout: 1m\n",
			},
			flags:   &Flags{GlobalFlags: &flag.GlobalFlags{Config: "ci/yala.yaml"}},
			timeout: "1m",
		},
		{
			name:  "unknown linter",
			flags: &Flags{GlobalFlags: &flag.GlobalFlags{}, Linters: []string{"flake9"}},
			isErr: true,
		},
		{
			name:  "invalid timeout",
			flags: &Flags{GlobalFlags: &flag.GlobalFlags{}, Timeout: "soon"},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for name, body := range d.files {
				if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			cfg, err := readConfig(fs, d.flags)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			exp := &config.Config{Linters: d.linters, Jobs: d.jobs, Timeout: d.timeout}
			if diff := cmp.Diff(exp, cfg, cmpopts.IgnoreUnexported(config.Config{})); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
