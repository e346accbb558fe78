package runner

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEcho(t *testing.T) {
	res, err := Run(context.Background(), []string{"echo", "hi"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "hi\n", res.Stdout)
	assert.Equal(t, "", res.Stderr)
	require.NotNil(t, res.Status)
	assert.Equal(t, 0, *res.Status)
}

func TestRunNonZeroExitIsNotAnError(t *testing.T) {
	res, err := Run(context.Background(), []string{"sh", "-c", "exit 3"}, Options{})
	require.NoError(t, err)

	require.NotNil(t, res.Status)
	assert.Equal(t, 3, *res.Status)
}

func TestRunCapturesStderr(t *testing.T) {
	res, err := Run(context.Background(), []string{"sh", "-c", "echo oops >&2"}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
}

func TestRunStdin(t *testing.T) {
	res, err := Run(context.Background(), []string{"cat"}, Options{Stdin: "piped"})
	require.NoError(t, err)

	assert.Equal(t, "piped", res.Stdout)
}

func TestRunWorkingDir(t *testing.T) {
	dir := t.TempDir()
	res, err := Run(context.Background(), []string{"pwd"}, Options{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, dir, strings.TrimSpace(res.Stdout))
}

func TestRunEnv(t *testing.T) {
	res, err := Run(context.Background(), []string{"sh", "-c", "echo $FNSH_TEST_VAR"}, Options{
		Env: map[string]string{"FNSH_TEST_VAR": "val"},
	})
	require.NoError(t, err)

	assert.Equal(t, "val\n", res.Stdout)
}

func TestRunEmptyArgv(t *testing.T) {
	_, err := Run(context.Background(), nil, Options{})
	assert.Error(t, err)
}

func TestRunSpawnFailure(t *testing.T) {
	_, err := Run(context.Background(), []string{"/no/such/binary"}, Options{})
	assert.Error(t, err)
}

func TestRunSignalTermination(t *testing.T) {
	res, err := Run(context.Background(), []string{"sh", "-c", "kill -TERM $$"}, Options{})
	require.NoError(t, err)

	assert.Nil(t, res.Status, "signal-terminated processes report no status")
}

func TestRunPTY(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no pty support on windows")
	}

	res, err := RunPTY(context.Background(), []string{"echo", "hi"}, Options{})
	require.NoError(t, err)

	assert.Contains(t, res.Stdout, "hi")
	require.NotNil(t, res.Status)
	assert.Equal(t, 0, *res.Status)
}
