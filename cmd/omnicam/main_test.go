package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--fake", "--config", filepath.Join(t.TempDir(), "missing.toml")}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func lineContaining(t *testing.T, out, substr string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", substr, out)
	return ""
}

func TestList(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)

	line := lineContaining(t, out, "VideoTest")
	assert.Contains(t, line, "Simulated webcam")
	assert.Contains(t, line, "yes")
}

func TestFormats(t *testing.T) {
	out, err := runCLI(t, "formats")
	require.NoError(t, err)

	assert.Contains(t, out, "1920")
	selected := lineContaining(t, out, "*")
	assert.Contains(t, selected, "mjpeg")
	assert.Contains(t, selected, "640")
	assert.Contains(t, selected, "1.333")
}

func TestFormatsUnknownCamera(t *testing.T) {
	_, err := runCLI(t, "formats", "--camera", "Nonexistent")
	assert.Error(t, err)

	_, err = runCLI(t, "formats", "--camera", "3")
	assert.Error(t, err)

	_, err = runCLI(t, "formats", "--camera", "VideoTest")
	assert.NoError(t, err)
}

func TestControlsAndSet(t *testing.T) {
	out, err := runCLI(t, "controls")
	require.NoError(t, err)
	assert.Contains(t, lineContaining(t, out, "Brightness"), "range(-63, 65, 1)")
	assert.Contains(t, lineContaining(t, out, "WhiteBalance"), "range(2810, 6501, 10)")

	out, err = runCLI(t, "set", "Brightness", "1", "--fraction")
	require.NoError(t, err)
	assert.Equal(t, "Brightness = 64\n", out)

	out, err = runCLI(t, "set", "Brightness", "3")
	require.NoError(t, err)
	assert.Equal(t, "Brightness = 3\n", out)

	out, err = runCLI(t, "set", "Brightness", "--reset")
	require.NoError(t, err)
	assert.Equal(t, "Brightness = 0\n", out)

	_, err = runCLI(t, "set", "WhiteBalance", "4605")
	assert.Error(t, err)

	_, err = runCLI(t, "set", "Brightness", "1.5", "--fraction")
	assert.Error(t, err)

	_, err = runCLI(t, "set", "Brightness")
	assert.Error(t, err)

	_, err = runCLI(t, "set", "Zoom", "1")
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	target := filepath.Join(t.TempDir(), "frame.png")
	out, err := runCLI(t, "snapshot", "-o", target, "--width", "64")
	require.NoError(t, err)
	assert.Contains(t, out, "Selected format: mjpeg 640x480@30fps")
	assert.Contains(t, out, "Saved 64x48 snapshot")

	img, err := imaging.Open(target)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "omnicam", "config.toml")
	out, err := runCLI(t, "config", "init", "--path", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote sample configuration")

	_, err = os.Stat(target)
	require.NoError(t, err)

	_, err = runCLI(t, "config", "init", "--path", target)
	assert.Error(t, err)

	_, err = runCLI(t, "config", "init", "--path", target, "--overwrite")
	assert.NoError(t, err)
}
