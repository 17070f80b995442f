package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarioDefaults(t *testing.T) {
	sc, err := ParseScenario(nil)
	require.NoError(t, err)
	assert.Equal(t, Scenario{Baud: defaultBaud}, sc)
}

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte("button: true\nimage: app.hex\nport: /dev/ttyACM0\nbaud: 9600\necho_limit: 4\n"))
	require.NoError(t, err)
	assert.True(t, sc.Button)
	assert.Equal(t, "app.hex", sc.Image)
	assert.Equal(t, "/dev/ttyACM0", sc.Port)
	assert.Equal(t, 9600, sc.Baud)
	assert.Equal(t, 4, sc.EchoLimit)
}

func TestParseScenarioRejects(t *testing.T) {
	for _, doc := range []string{
		"buton: true\n",
		"baud: -1\n",
		"echo_limit: -2\n",
	} {
		_, err := ParseScenario([]byte(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRunJumpsToHexImage(t *testing.T) {
	dir := t.TempDir()
	hex := filepath.Join(dir, "app.hex")
	require.NoError(t, os.WriteFile(hex, []byte(
		":020000040800F2\n:0828000000500020012A00082D\n:00000001FF\n"), 0o644))

	require.NoError(t, run(context.Background(), Scenario{Image: hex, Baud: defaultBaud}))
}

func TestRunStaysWhenButtonHeld(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, run(ctx, Scenario{Button: true, Baud: defaultBaud}))
}
