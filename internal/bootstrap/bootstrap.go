// Package bootstrap prepares a local git checkout for deployment: a
// first commit on a fresh directory, a timestamped commit on an
// existing one. Failures are returned to the caller and are expected
// to end the process; this is a convenience step, not a resilient
// subsystem.
package bootstrap

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const initialCommitMessage = "Initial commit - AI Text Analytics API"

// Runner executes an external command. The indirection exists so the
// step can be exercised in tests without a git binary.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands in a fixed directory with output passed
// through to the controlling terminal.
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Prepare initializes the checkout at dir if needed and commits the
// current tree. It reports whether a fresh repository was created.
func Prepare(dir string, r Runner) (initialized bool, err error) {
	if _, statErr := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(statErr) {
		steps := [][]string{
			{"git", "init"},
			{"git", "add", "."},
			{"git", "commit", "-m", initialCommitMessage},
			{"git", "branch", "-M", "main"},
		}
		for _, step := range steps {
			if err := r.Run(step[0], step[1:]...); err != nil {
				return false, fmt.Errorf("%s: %w", step[0]+" "+step[1], err)
			}
		}
		return true, nil
	}

	if err := r.Run("git", "add", "."); err != nil {
		return false, fmt.Errorf("git add: %w", err)
	}
	msg := "Update " + time.Now().Format(time.RFC3339)
	if err := r.Run("git", "commit", "-m", msg); err != nil {
		return false, fmt.Errorf("git commit: %w", err)
	}
	return false, nil
}
