package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
)

// Executor runs a command and captures its output.
// A non-zero exit status isn't an error because linters exit with non-zero
// when they report issues.
type Executor interface {
	Exec(ctx context.Context, args []string) (*ExecResult, error)
}

// IsNotInstalled reports whether err means the executable wasn't found.
// A command given as a path fails with fs.ErrNotExist instead of exec.ErrNotFound.
func IsNotInstalled(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

type CommandExecutor struct{}

func NewExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

func (e *CommandExecutor) Exec(ctx context.Context, args []string) (*ExecResult, error) {
	if len(args) == 0 {
		return nil, errors.New("command is empty")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result := &ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return result, err //nolint:wrapcheck
	}
	result.ExitCode = exitErr.ExitCode()
	if result.ExitCode < 0 {
		// killed by a signal
		return result, fmt.Errorf("the process was terminated: %w", err)
	}
	return result, nil
}
