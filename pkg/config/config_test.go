package config_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/yala/pkg/config"
	"github.com/suzuki-shunsuke/yala/pkg/linter"
)

func readConfig(t *testing.T, content string) (*config.Config, error) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".yala.yaml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	return cfg, config.NewReader(fs).Read(cfg, ".yala.yaml") //nolint:wrapcheck
}

func TestReader_Read(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid",
			content: `linters: [pylint, "radon cc"]
jobs: 2
timeout: 1m
settings:
  pylint:
    args: --disable=C0114
    timeout: 10s
`,
		},
		{name: "empty", content: ""},
		{name: "unknown linter", content: "linters: [flake9]", wantErr: true},
		{name: "unknown setting", content: "settings:\n  flake9:\n    args: -v\n", wantErr: true},
		{name: "invalid timeout", content: "timeout: soon", wantErr: true},
		{name: "negative jobs", content: "jobs: -1", wantErr: true},
		{name: "invalid yaml", content: "linters: [", wantErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			_, err := readConfig(t, d.content)
			if d.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestReader_Read_noFile(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	if err := config.NewReader(afero.NewMemMapFs()).Read(cfg, ""); err != nil {
		t.Fatal(err)
	}
	if err := config.NewReader(afero.NewMemMapFs()).Read(cfg, "missing.yaml"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestProvider_LinterConfig(t *testing.T) {
	t.Parallel()
	cfg, err := readConfig(t, `timeout: 1m
settings:
  pylint:
    args: --disable=C0114
    timeout: 10s
  mypy:
    args: ""
  isort:
    timeout: 0s
`)
	if err != nil {
		t.Fatal(err)
	}
	p := config.NewProvider(cfg)
	data := []struct {
		name string
		exp  linter.Options
	}{
		{name: "pylint", exp: linter.Options{Args: "--disable=C0114", Timeout: 10 * time.Second}},
		{name: "mypy", exp: linter.Options{Args: "", Timeout: time.Minute}},
		{name: "radon cc", exp: linter.Options{Args: "--min D", Timeout: time.Minute}},
		{name: "isort", exp: linter.Options{Args: "--check-only"}},
	}
	for _, d := range data {
		if diff := cmp.Diff(d.exp, p.LinterConfig(d.name)); diff != "" {
			t.Errorf("%s: %s", d.name, diff)
		}
	}
}

func names(linters []linter.Linter) []string {
	s := make([]string, len(linters))
	for i, l := range linters {
		s[i] = l.Name()
	}
	return s
}

func TestProvider_ActiveLinters(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		cfg        *config.Config
		exp        []string
		userChoice map[string]bool
	}{
		{
			name:       "defaults",
			cfg:        &config.Config{},
			exp:        linter.Names(),
			userChoice: map[string]bool{"pylint": false, "mypy": false},
		},
		{
			name:       "user selection in registry order",
			cfg:        &config.Config{Linters: []string{"pylint", "mypy", "pylint"}},
			exp:        []string{"mypy", "pylint"},
			userChoice: map[string]bool{"pylint": true, "mypy": true, "isort": false},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			p := config.NewProvider(d.cfg)
			if diff := cmp.Diff(d.exp, names(p.ActiveLinters())); diff != "" {
				t.Fatal(diff)
			}
			for name, exp := range d.userChoice {
				if got := p.IsUserChoice(name); got != exp {
					t.Errorf("IsUserChoice(%s): wanted %v, got %v", name, exp, got)
				}
			}
		})
	}
}
