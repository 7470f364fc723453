package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// runner стартира selector процес, подава input на stdin и връща exit code
// и stdout. Ненулев exit code не е грешка.
type runner func(name string, args []string, input string, stderr io.Writer) (int, []byte, error)

func runProcess(name string, args []string, input string, stderr io.Writer) (int, []byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s stdin: %w", ErrPipe, name, err)
	}

	if err := cmd.Start(); err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %w", ErrSpawn, name, err)
	}

	_, writeErr := io.WriteString(stdin, input)
	closeErr := stdin.Close()

	waitErr := cmd.Wait()
	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return 0, nil, fmt.Errorf("%s exited with error: %w", name, waitErr)
	}

	if writeErr != nil {
		return 0, nil, fmt.Errorf("%w: %s stdin: %w", ErrPipe, name, writeErr)
	}
	if closeErr != nil {
		return 0, nil, fmt.Errorf("%w: %s stdin: %w", ErrPipe, name, closeErr)
	}

	return cmd.ProcessState.ExitCode(), stdout.Bytes(), nil
}
