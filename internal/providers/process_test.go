package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/kivkovic/fnsh/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessRun(t *testing.T) {
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{
		"argv": []interface{}{"echo", "hi"},
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "hi\n", res.Data["stdout"])
	assert.Equal(t, "", res.Data["stderr"])
	assert.Equal(t, 0, res.Data["status"])
}

func TestProcessRunNonZeroStatus(t *testing.T) {
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{
		"argv": []interface{}{"sh", "-c", "exit 7"},
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success, "non-zero exit is data, not failure")

	assert.Equal(t, 7, res.Data["status"])
}

func TestProcessRunSignalTermination(t *testing.T) {
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{
		"argv": []interface{}{"sh", "-c", "kill -TERM $$"},
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Nil(t, res.Data["status"])
}

func TestProcessRunStdinAndEnv(t *testing.T) {
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{
		"argv":  []interface{}{"sh", "-c", "cat; echo $FNSH_PROVIDER_TEST"},
		"stdin": "in:",
		"env":   map[string]interface{}{"FNSH_PROVIDER_TEST": "envval"},
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "in:envval\n", res.Data["stdout"])
}

func TestProcessRunUsesContextWorkingDir(t *testing.T) {
	dir := t.TempDir()
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{
		"argv": []interface{}{"pwd"},
	}, &types.Context{WorkingDir: &dir})
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, dir, strings.TrimSpace(res.Data["stdout"].(string)))
}

func TestProcessRunMissingArgv(t *testing.T) {
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{}, nil)
	require.NoError(t, err)

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "argv parameter required")
}

func TestProcessRunSpawnFailureIsFailure(t *testing.T) {
	p := NewProcess(nil)
	res, err := p.Execute(context.Background(), "proc.run", map[string]interface{}{
		"argv": []interface{}{"/no/such/binary"},
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Success)
}

func TestProcessDefinition(t *testing.T) {
	def := NewProcess(nil).Definition()

	assert.Equal(t, "proc", def.ID)
	require.Len(t, def.Tools, 2)
	assert.Equal(t, "proc.run", def.Tools[0].ID)
	assert.Equal(t, "proc.run_pty", def.Tools[1].ID)
}
