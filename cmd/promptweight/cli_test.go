package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/promptweight"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PROMPTWEIGHT_CONFIG", "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeAdjust(t *testing.T, out string) adjustOutput {
	t.Helper()
	var got adjustOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got), "output: %s", out)
	return got
}

func TestAdjustCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want adjustOutput
	}{
		{
			name: "caret up",
			args: []string{"--text", "red hair, blue eyes", "--start", "2", "--up"},
			want: adjustOutput{Text: "(red:1.1) hair, blue eyes", Caret: 0, Changed: true},
		},
		{
			name: "selection with explicit delta",
			args: []string{"--text", "a, sun, moon, b", "--start", "3", "--end", "12", "--delta", "0.2"},
			want: adjustOutput{Text: "a, (sun, moon:1.2), b", Caret: 3, Changed: true},
		},
		{
			name: "shift down",
			args: []string{"--text", "(tag:1.5)", "--start", "4", "--down", "--shift"},
			want: adjustOutput{Text: "(tag:1.3)", Caret: 0, Changed: true},
		},
		{
			name: "utf16 offsets",
			args: []string{"--text", "😀 red", "--start", "4", "--up", "--utf16"},
			want: adjustOutput{Text: "😀 (red:1.1)", Caret: 3, Changed: true},
		},
		{
			name: "clamped no-op",
			args: []string{"--text", "(tag:3)", "--start", "1", "--up"},
			want: adjustOutput{Text: "(tag:3)", Caret: 1, Changed: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, "", append([]string{"adjust"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, decodeAdjust(t, out))
		})
	}
}

func TestAdjustCmd_ReadsStdin(t *testing.T) {
	out, err := runCLI(t, "blue eyes\n", "adjust", "--text", "-", "--start", "0", "--up")
	require.NoError(t, err)
	assert.Equal(t, "(blue:1.1) eyes", decodeAdjust(t, out).Text)
}

func TestAdjustCmd_UsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promptweight.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weight:\n  step: 0.5\n"), 0o644))

	out, err := runCLI(t, "", "--config", path, "adjust", "--text", "red", "--start", "0", "--up")
	require.NoError(t, err)
	assert.Equal(t, "(red:1.5)", decodeAdjust(t, out).Text)
}

func TestAdjustCmd_Errors(t *testing.T) {
	_, err := runCLI(t, "", "adjust", "--text", "red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--up, --down or --delta")

	_, err = runCLI(t, "", "adjust", "--text", "red", "--up", "--down")
	require.Error(t, err)

	_, err = runCLI(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "adjust", "--text", "red", "--up")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestScanCmd(t *testing.T) {
	out, err := runCLI(t, "", "scan", "--text", "1girl, (cat, dog:1.3)")
	require.NoError(t, err)

	var got []segmentOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "tag", got[0].Kind)
	assert.Nil(t, got[0].Weight)

	group := got[1]
	assert.Equal(t, "group", group.Kind)
	assert.Equal(t, 7, group.Start)
	assert.Equal(t, 21, group.End)
	assert.Equal(t, "cat, dog", group.Core)
	require.NotNil(t, group.Weight)
	assert.InDelta(t, 1.3, *group.Weight, 1e-9)
	require.Len(t, group.Children, 2)
	assert.Equal(t, "dog", group.Children[1].Core)
}

func TestKeysCmd_Plain(t *testing.T) {
	out, err := runCLI(t, "", "keys", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "| `ctrl+up`, `alt+up` | weight up |")
	assert.Contains(t, out, "Fast variants move 2 steps at once.")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "promptweight "+promptweight.VersionTag()), "got %q", out)
}
