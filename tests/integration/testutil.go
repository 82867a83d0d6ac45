// Package integration provides CLI integration tests for setcalc.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// setcalcBin is the path to the built setcalc binary.
	setcalcBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetSetcalcBin sets the path to the setcalc binary (called from TestMain).
func SetSetcalcBin(path string) {
	setcalcBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build setcalc: %v", buildErr)
	}
	if setcalcBin == "" {
		t.Fatal("setcalc binary not built (setcalcBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
	}
}

// WriteConfig places a config.yaml with the given content in the config
// directory.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// CmdResult holds the result of a setcalc command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunSetcalc executes the setcalc CLI with the given arguments.
func (e *TestEnv) RunSetcalc(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(setcalcBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run setcalc: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunSetcalc executes the setcalc CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunSetcalc(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunSetcalc(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("setcalc %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// SetOutput mirrors the CLI's JSON rendering of a set.
type SetOutput struct {
	Universe int   `json:"universe"`
	Members  []int `json:"members"`
}

// LawsOutput mirrors the CLI's JSON rendering of a laws run.
type LawsOutput struct {
	Universe   int `json:"universe"`
	SampleSize int `json:"sample_size"`
	Results    []struct {
		Law    string `json:"law"`
		Status string `json:"status"`
		Detail string `json:"detail"`
	} `json:"results"`
}
