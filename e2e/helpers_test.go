// ABOUTME: E2E harness: builds the tedit binary and drives it inside a pseudo-terminal
// ABOUTME: Output is accumulated by a reader goroutine; helpers wait for substrings and exit

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const (
	ptyRows = 24
	ptyCols = 80
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildLog  []byte
)

// buildBinary compiles cmd/tedit once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "tedit-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "tedit")
		cmd := exec.Command("go", "build", "-o", binPath, "../cmd/tedit")
		buildLog, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("building tedit: %v\n%s", buildErr, buildLog)
	}
	return binPath
}

type session struct {
	cmd  *exec.Cmd
	pty  *os.File
	mu   sync.Mutex
	out  bytes.Buffer
	done chan struct{}
	exit chan error
}

// startTedit launches the binary with args in a 24x80 pty. HOME points at
// an empty directory so no user config leaks into the test.
func startTedit(t *testing.T, args ...string) *session {
	t.Helper()
	return startIn(t, t.TempDir(), args...)
}

// startTeditWithConfig writes yaml as the project config of a fresh working
// directory and starts tedit there.
func startTeditWithConfig(t *testing.T, yaml string, args ...string) *session {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".tedit"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".tedit", "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	return startIn(t, dir, args...)
}

func startIn(t *testing.T, dir string, args ...string) *session {
	t.Helper()
	bin := buildBinary(t)

	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "TERM=xterm")

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: ptyRows, Cols: ptyCols})
	if err != nil {
		t.Fatalf("starting tedit in pty: %v", err)
	}

	s := &session{
		cmd:  cmd,
		pty:  f,
		done: make(chan struct{}),
		exit: make(chan error, 1),
	}
	go s.readLoop()
	go func() { s.exit <- cmd.Wait() }()
	return s
}

func (s *session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *session) output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

func (s *session) expectStringTimeout(t *testing.T, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(s.output(), want) {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output so far:\n%q", want, s.output())
}

func (s *session) send(t *testing.T, keys string) {
	t.Helper()
	if _, err := s.pty.Write([]byte(keys)); err != nil {
		t.Fatalf("writing to pty: %v", err)
	}
}

// waitExit waits for the process to exit and returns its exit code.
func (s *session) waitExit(t *testing.T, timeout time.Duration) int {
	t.Helper()
	select {
	case err := <-s.exit:
		if err == nil {
			return 0
		}
		if ee, ok := err.(*exec.ExitError); ok {
			return ee.ExitCode()
		}
		t.Fatalf("waiting for tedit: %v", err)
	case <-time.After(timeout):
		t.Fatalf("tedit did not exit within %v; output:\n%q", timeout, s.output())
	}
	return -1
}

// close kills the process if it is still running and releases the pty.
func (s *session) close() {
	_ = s.cmd.Process.Kill()
	_ = s.pty.Close()
	<-s.done
}
