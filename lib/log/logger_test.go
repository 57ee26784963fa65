package log

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// Helper to capture output from os.Stdout and os.Stderr
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	f()

	wOut.Close()
	wErr.Close()

	stdout = <-outCh
	stderr = <-errCh

	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return stdout, stderr
}

func TestDebugf_VerboseOff(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(false)

	stdout, stderr := captureOutput(func() {
		Debugf("test debug message")
	})

	if stdout != "" {
		t.Errorf("Expected no stdout output when verbose is off, got: %s", stdout)
	}

	if stderr != "" {
		t.Errorf("Expected no stderr output when verbose is off, got: %s", stderr)
	}
}

func TestDebugf_VerboseOn(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)

	stdout, _ := captureOutput(func() {
		Debugf("test debug message")
	})

	if !strings.Contains(stdout, "[DBG]") {
		t.Errorf("Expected debug message in stdout, got: %s", stdout)
	}

	if !strings.Contains(stdout, "test debug message") {
		t.Errorf("Expected message content in stdout, got: %s", stdout)
	}
}

func TestErrorf_GoesToStderr(t *testing.T) {
	stdout, stderr := captureOutput(func() {
		Errorf("test error message")
	})

	if stdout != "" {
		t.Errorf("Expected no stdout output for error, got: %s", stdout)
	}

	if !strings.Contains(stderr, "[ERR]") {
		t.Errorf("Expected error message in stderr, got: %s", stderr)
	}
}

func TestForceStdErr(t *testing.T) {
	originalForceStdErr := forceStdErr
	defer func() { forceStdErr = originalForceStdErr }()

	SetForceStdErr(true)

	stdout, stderr := captureOutput(func() {
		Infof("test info to stderr")
	})

	if stdout != "" {
		t.Errorf("Expected no stdout output when forceStdErr is true, got: %s", stdout)
	}

	if !strings.Contains(stderr, "[INF]") {
		t.Errorf("Expected info message in stderr when forceStdErr is true, got: %s", stderr)
	}
}

func TestLogPrefixes(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)

	tests := []struct {
		name     string
		logFunc  func(string, ...interface{})
		expected string
	}{
		{"Debug", Debugf, "[DBG]"},
		{"Info", Infof, "[INF]"},
		{"Warn", Warnf, "[WRN]"},
		{"Error", Errorf, "[ERR]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := captureOutput(func() {
				tt.logFunc("test message")
			})

			output := stdout + stderr
			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected prefix %s in output, got: %s", tt.expected, output)
			}
		})
	}
}
