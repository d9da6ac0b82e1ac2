package numfile

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/numlist/internal/model"
)

// scriptedPrompter answers prompts from a fixed list and records questions.
type scriptedPrompter struct {
	answers   []string
	err       error
	questions []string
}

func (p *scriptedPrompter) Prompt(question string) (string, error) {
	p.questions = append(p.questions, question)
	if p.err != nil {
		return "", p.err
	}
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"yes", true},
		{"Y", true},
		{" YES ", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"yep", false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAffirmative(tt.answer))
		})
	}
}

func TestExport_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	prompter := &scriptedPrompter{}

	res, err := NewExporter(prompter, nil).Export(path, []float64{5, 3.5, -8})
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.True(t, filepath.IsAbs(res.Path))
	assert.Empty(t, prompter.questions, "no prompt for a new file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5\n3.5\n-8\n", string(data))
}

func TestExport_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	res, err := NewExporter(&scriptedPrompter{}, nil).Export(path, nil)
	require.NoError(t, err)
	assert.True(t, res.Written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestExport_ExistingFile(t *testing.T) {
	tests := []struct {
		name        string
		prompter    *scriptedPrompter
		wantWritten bool
	}{
		{"yes overwrites", &scriptedPrompter{answers: []string{"yes"}}, true},
		{"Y overwrites", &scriptedPrompter{answers: []string{"Y"}}, true},
		{"no cancels", &scriptedPrompter{answers: []string{"n"}}, false},
		{"anything else cancels", &scriptedPrompter{answers: []string{"sure"}}, false},
		{"end of input cancels", &scriptedPrompter{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.txt")
			require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

			res, err := NewExporter(tt.prompter, nil).Export(path, []float64{1, 2})
			require.NoError(t, err)
			assert.Equal(t, tt.wantWritten, res.Written)
			require.Len(t, tt.prompter.questions, 1)
			assert.Contains(t, tt.prompter.questions[0], "already exists")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.wantWritten {
				assert.Equal(t, "1\n2\n", string(data))
			} else {
				assert.Equal(t, "old\n", string(data))
			}
		})
	}
}

func TestExport_PromptError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
	boom := errors.New("terminal gone")

	_, err := NewExporter(&scriptedPrompter{err: boom}, nil).Export(path, []float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestExport_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	res, err := NewExporter(&scriptedPrompter{}, nil).Export(path, []float64{1})
	assert.Error(t, err)
	assert.False(t, res.Written)
}

// TestExportImport_RoundTrip verifies that exporting and re-importing a
// list reproduces the exact sequence of values.
func TestExportImport_RoundTrip(t *testing.T) {
	values := []float64{5, 3, 8, 0.1, -2.75, 1.0 / 3, 1e21, 5e-324, math.Inf(1), math.Inf(-1), 3}
	path := filepath.Join(t.TempDir(), "roundtrip.txt")

	_, err := NewExporter(&scriptedPrompter{}, nil).Export(path, values)
	require.NoError(t, err)

	res, err := NewImporter(model.NaNAllow, nil).Import(path)
	require.NoError(t, err)
	assert.Equal(t, values, res.Values)
	assert.Empty(t, res.Warnings)
}
