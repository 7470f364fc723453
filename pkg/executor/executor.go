// Package executor launches menu commands through the shell.
//
// Detach is fire-and-forget: the command runs in its own process group with
// no stdio attached and rofi-keys never observes its exit status. Await runs
// the same command and waits for it.
package executor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/lvim-tech/rofi-keys/internal/logging"
)

// Shell is the interpreter used to run commands.
var Shell = "/bin/sh"

// ErrSpawn is returned when the shell process cannot be created.
var ErrSpawn = errors.New("failed to start command")

// ExitError reports a command that finished with a non-zero status under Await.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

func shellCommand(command string) *exec.Cmd {
	cmd := exec.Command(Shell, "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Env = os.Environ()
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}
	return cmd
}

// Detach starts command and returns as soon as the process exists.
func Detach(command string) error {
	cmd := shellCommand(command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	logging.Debugf("detached pid %d: %s", cmd.Process.Pid, command)
	return cmd.Process.Release()
}

// Await runs command and waits for it to finish.
func Await(command string) error {
	cmd := shellCommand(command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	logging.Debugf("waiting for pid %d: %s", cmd.Process.Pid, command)
	err := cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: command, Code: exitErr.ExitCode()}
	}
	return err
}
