package harness

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	pollInterval   = 20 * time.Millisecond
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles lurker into a temp directory once per test run.
// Call it from TestMain; CleanupBinary removes the directory afterwards.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}

		dir, err := os.MkdirTemp("", "lurker-bin-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(dir, "lurker")

		build := exec.Command("go", "build", "-o", binaryPath, ".")
		build.Dir = root
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		buildErr = build.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the directory BuildBinary compiled into
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to remove %s: %v", filepath.Dir(binaryPath), err)
	}
}

// RunCommand runs lurker with args to completion using the default timeout
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return RunCommandWithTimeout(tb, env, defaultTimeout, args...)
}

// RunCommandWithTimeout runs lurker with args, killing it after timeout.
// A killed or unstartable process reports exit code -1.
func RunCommandWithTimeout(tb testing.TB, env *TestEnvironment, timeout time.Duration, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := newCommand(ctx, env, &stdout, &stderr, args)
	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		tb.Logf("lurker %v killed after %v", args, timeout)
		return CommandResult{ExitCode: -1, Stdout: stdout.String(), Stderr: stderr.String()}
	}
	return CommandResult{ExitCode: exitCode(tb, err), Stdout: stdout.String(), Stderr: stderr.String()}
}

// RunningCommand is a lurker process started by StartCommand
type RunningCommand struct {
	args   []string
	cancel context.CancelFunc
	cmd    *exec.Cmd
	stderr *lockedBuffer
	stdout *lockedBuffer
	tb     testing.TB
}

// StartCommand launches lurker with args and returns without waiting.
// The process is killed at test cleanup if it is still running.
func StartCommand(tb testing.TB, env *TestEnvironment, args ...string) *RunningCommand {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	r := &RunningCommand{
		args:   args,
		cancel: cancel,
		stderr: &lockedBuffer{},
		stdout: &lockedBuffer{},
		tb:     tb,
	}
	r.cmd = newCommand(ctx, env, r.stdout, r.stderr, args)

	if err := r.cmd.Start(); err != nil {
		cancel()
		tb.Fatalf("Failed to start lurker %v: %v", args, err)
	}
	tb.Cleanup(cancel)
	return r
}

// WaitForStdout blocks until marker has been printed, failing the test
// after timeout
func (r *RunningCommand) WaitForStdout(marker string, timeout time.Duration) {
	r.tb.Helper()

	deadline := time.Now().Add(timeout)
	for !strings.Contains(r.stdout.String(), marker) {
		if time.Now().After(deadline) {
			r.tb.Fatalf("lurker %v did not print %q within %v\nstdout:\n%s\nstderr:\n%s",
				r.args, marker, timeout, r.stdout.String(), r.stderr.String())
		}
		time.Sleep(pollInterval)
	}
}

// Interrupt sends SIGINT and waits up to timeout for the process to exit
func (r *RunningCommand) Interrupt(timeout time.Duration) CommandResult {
	r.tb.Helper()

	if err := r.cmd.Process.Signal(os.Interrupt); err != nil {
		r.tb.Fatalf("Failed to interrupt lurker %v: %v", r.args, err)
	}

	done := make(chan error, 1)
	go func() { done <- r.cmd.Wait() }()

	select {
	case err := <-done:
		return CommandResult{ExitCode: exitCode(r.tb, err), Stdout: r.stdout.String(), Stderr: r.stderr.String()}
	case <-time.After(timeout):
		r.cancel()
		<-done
		r.tb.Logf("lurker %v ignored SIGINT for %v", r.args, timeout)
		return CommandResult{ExitCode: -1, Stdout: r.stdout.String(), Stderr: r.stderr.String()}
	}
}

func newCommand(ctx context.Context, env *TestEnvironment, stdout, stderr io.Writer, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd
}

func exitCode(tb testing.TB, err error) int {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		tb.Logf("lurker execution error: %v", err)
		return -1
	}
}

// lockedBuffer lets the test read output while the process is still writing it
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// moduleRoot walks up from this file to the directory holding go.mod
func moduleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot locate harness source file")
	}
	for dir := filepath.Dir(file); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			return "", errors.New("go.mod not found above " + file)
		}
	}
}
