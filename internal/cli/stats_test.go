package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/numlist/internal/model"
)

// executeRoot runs a fresh root command with args and captures its output.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeNumbers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStats_Text(t *testing.T) {
	path := writeNumbers(t, "5\n3\n8\n")

	out, errOut, err := executeRoot(t, "stats", path)
	require.NoError(t, err)
	assert.Empty(t, errOut)

	assert.Contains(t, out, "count    3\n")
	assert.Contains(t, out, "total    16\n")
	assert.Contains(t, out, "product  120\n")
	assert.Contains(t, out, "mean     5.333333333333333\n")
	assert.Contains(t, out, "median   5\n")
	assert.Contains(t, out, "stddev   2.05")
	assert.Contains(t, out, "min      3\n")
	assert.Contains(t, out, "max      8\n")
	assert.Contains(t, out, "range    5\n")
}

func TestStats_JSON(t *testing.T) {
	path := writeNumbers(t, "5\n3\n8\n")

	out, _, err := executeRoot(t, "stats", "--json", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, path, got["path"])
	assert.Equal(t, 3.0, got["count"])
	assert.Equal(t, 16.0, got["sum"])
	assert.Equal(t, 8.0, got["max"])
	assert.Equal(t, 5.0, got["range"])
}

// TestStats_JSONNonFinite verifies infinities are emitted as strings rather
// than failing to encode.
func TestStats_JSONNonFinite(t *testing.T) {
	path := writeNumbers(t, "1\ninf\n")

	out, _, err := executeRoot(t, "stats", "--json", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "inf", got["sum"])
	assert.Equal(t, "inf", got["max"])
	assert.Equal(t, 1.0, got["min"])
}

func TestStats_WarningsOnStderr(t *testing.T) {
	path := writeNumbers(t, "1\noops\n2\n")

	out, errOut, err := executeRoot(t, "stats", path)
	require.NoError(t, err)
	assert.Equal(t, "Invalid numeric value found in line 2: oops\n", errOut)
	assert.Contains(t, out, "count    2\n")
}

func TestStats_NaNReject(t *testing.T) {
	path := writeNumbers(t, "1\nNaN\n")

	out, errOut, err := executeRoot(t, "stats", "--nan", "reject", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "line 2: NaN")
	assert.Contains(t, out, "count    1\n")
}

func TestStats_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		code model.ExitCode
	}{
		{
			name: "empty file",
			args: func(t *testing.T) []string { return []string{"stats", writeNumbers(t, "\n\n")} },
			code: model.ExitEmptyList,
		},
		{
			name: "only malformed lines",
			args: func(t *testing.T) []string { return []string{"stats", writeNumbers(t, "x\ny\n")} },
			code: model.ExitEmptyList,
		},
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"stats", filepath.Join(t.TempDir(), "missing.txt")}
			},
			code: model.ExitFileError,
		},
		{
			name: "invalid nan flag",
			args: func(t *testing.T) []string { return []string{"stats", "--nan", "maybe", writeNumbers(t, "1\n")} },
			code: model.ExitConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeRoot(t, tt.args(t)...)
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, tt.code, cliErr.Code)
		})
	}
}

func TestStats_RequiresOneArg(t *testing.T) {
	_, _, err := executeRoot(t, "stats")
	assert.Error(t, err)
}
