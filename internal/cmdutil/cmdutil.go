// Package cmdutil runs external build commands with the orchestrator's
// process-exit semantics: a failed command terminates the whole build with
// a non-zero status after printing the command and its captured output.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Run executes cmd with inherited output streams and terminates the
// process with status 1 if it fails.
func Run(w io.Writer, cmd *exec.Cmd) {
	if !TryRun(w, cmd) {
		os.Exit(1)
	}
}

// TryRun executes cmd with inherited output streams and reports whether
// it succeeded, printing the command and its exit status when it did not.
func TryRun(w io.Writer, cmd *exec.Cmd) bool {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return true
	}
	if _, ok := err.(*exec.ExitError); !ok {
		fmt.Fprintf(w, "\n\nfailed to execute command: %s\nerror: %v\n\n", describe(cmd), err)
		return false
	}
	fmt.Fprintf(w, "\n\ncommand did not execute successfully: %s\nexpected success, got: %v\n\n", describe(cmd), err)
	return false
}

// RunSuppressed executes cmd, keeping its output captured unless it
// fails, and terminates the process with status 1 on failure.
func RunSuppressed(w io.Writer, cmd *exec.Cmd) {
	if !TryRunSuppressed(w, cmd) {
		os.Exit(1)
	}
}

// TryRunSuppressed executes cmd with captured output and reports whether
// it succeeded. The captured stdout and stderr are only printed when the
// command fails.
func TryRunSuppressed(w io.Writer, cmd *exec.Cmd) bool {
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return true
	}
	if _, ok := err.(*exec.ExitError); !ok {
		fmt.Fprintf(w, "\n\nfailed to execute command: %s\nerror: %v\n\n", describe(cmd), err)
		return false
	}
	fmt.Fprintf(w,
		"\n\ncommand did not execute successfully: %s\nexpected success, got: %v\n\nstdout ----\n%s\nstderr ----\n%s\n\n",
		describe(cmd), err, stdout.String(), stderr.String())
	return false
}

// Output returns the stdout of a command that is expected to succeed,
// with stderr passed through to the process's own stderr.
func Output(cmd *exec.Cmd) (string, error) {
	var stdout strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command did not execute successfully: %s: %w", describe(cmd), err)
	}
	return stdout.String(), nil
}

// describe renders a command the way it was invoked.
func describe(cmd *exec.Cmd) string {
	return strings.Join(cmd.Args, " ")
}
