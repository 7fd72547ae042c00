package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneYAML = `
elements:
  - id: hero
    left: 8
    top: 16
    width: 120
    height: 40
    editable: true
  - id: footer
    left: 0
    top: 100
    width: 200
    height: 24
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCmd(t *testing.T) {
	type tc struct {
		args     []string
		expected string
	}

	path := writeScene(t)
	hero := "#hero {\n  left: 8px;\n  top: 16px;\n  width: 120px;\n  height: 40px;\n}\n\n"
	footer := "#footer {\n  left: 0px;\n  top: 100px;\n  width: 200px;\n  height: 24px;\n}\n\n"

	tests := map[string]tc{
		"editable only": {args: []string{"report", path}, expected: hero},
		"all":           {args: []string{"report", "--all", path}, expected: hero + footer},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestReportCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "report", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "webedit version "+version+"\n", out)
}

func TestEditCmd_RejectsBadFlags(t *testing.T) {
	type tc struct {
		args     []string
		expected string
	}

	path := writeScene(t)
	tests := map[string]tc{
		"modifier":     {args: []string{"edit", "--multi-select", "hyper", path}, expected: "invalid --multi-select"},
		"fps":          {args: []string{"edit", "--fps", "0", path}, expected: "invalid --fps"},
		"idle timeout": {args: []string{"edit", "--idle-timeout", "-1s", path}, expected: "invalid --idle-timeout"},
		"no scene":     {args: []string{"edit"}, expected: "accepts 1 arg"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestReportCmd_Demo(t *testing.T) {
	out, err := execute(t, "report", filepath.Join("..", "..", "examples", "demo.yaml"))
	require.NoError(t, err)
	for _, id := range []string{"header", "nav-home", "nav-docs", "nav-about", "nav-blog", "card"} {
		assert.Contains(t, out, "#"+id+" {")
	}
	assert.NotContains(t, out, "#sidebar {")
	assert.NotContains(t, out, "#caption {")
}
