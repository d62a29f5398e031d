package commands_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "runway-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "runway")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/runway")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runRunway(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runRunwayStdout returns stdout only, for output that is parsed.
func runRunwayStdout(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		t.Logf("stderr: %s", stderr.String())
	}
	return stdout.String(), err
}

// initProject runs `runway init` in a temp dir and returns the --config
// argument pair for later commands.
func initProject(t *testing.T) (dir string, cfgArgs []string) {
	t.Helper()
	dir = t.TempDir()
	_, err := runRunway(t, "init", dir)
	require.NoError(t, err)
	return dir, []string{"--config", filepath.Join(dir, "runway.yaml")}
}

func TestVersion(t *testing.T) {
	out, err := runRunway(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none")
}

func TestUnknownCommand(t *testing.T) {
	_, err := runRunway(t, "reconcile")
	require.Error(t, err)
}
