package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenikar/road_obstacles/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI выполняет команду в изолированном окружении и возвращает stdout
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func setupSQLiteEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "cli.db"))
	t.Setenv("LOG_LEVEL", "error")
}

func TestCLI_ObstacleLifecycle(t *testing.T) {
	setupSQLiteEnv(t)

	out, err := runCLI(t, "obstacles", "add", "-t", "Feux tricolores", "-d", "Carrefour RN7", "--lat", "45.75", "--lon", "4.85")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	_, err = runCLI(t, "obstacles", "add", "-t", "Ligne basse", "-d", "Câble à 4m")
	require.NoError(t, err)

	out, err = runCLI(t, "obstacles", "list", "--json")
	require.NoError(t, err)
	var obstacles []*models.Obstacle
	require.NoError(t, json.Unmarshal([]byte(out), &obstacles))
	require.Len(t, obstacles, 2)
	assert.Equal(t, id, obstacles[0].ID)
	assert.True(t, obstacles[0].HasLocation())
	assert.False(t, obstacles[1].HasLocation())

	_, err = runCLI(t, "obstacles", "delete", id)
	require.NoError(t, err)

	out, err = runCLI(t, "obstacles", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, id)
	assert.Contains(t, out, "Ligne basse")
}

func TestCLI_AddRejectsInvalidInput(t *testing.T) {
	setupSQLiteEnv(t)

	_, err := runCLI(t, "obstacles", "add", "-t", "   ", "-d", "x")
	assert.ErrorContains(t, err, "'Title' failed on the 'required' tag")

	_, err = runCLI(t, "obstacles", "add", "-t", "t", "-d", "d", "--lat", "12")
	assert.ErrorContains(t, err, "'Longitude' failed on the 'required_with' tag")

	_, err = runCLI(t, "obstacles", "add", "-t", "t", "-d", "d", "--lat", "95", "--lon", "0")
	assert.ErrorContains(t, err, "'Latitude' failed on the 'latitude' tag")
}

func TestCLI_ContactsSeedAndReset(t *testing.T) {
	setupSQLiteEnv(t)

	out, err := runCLI(t, "contacts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Concessionnaire Autoroute")
	assert.Equal(t, 16, strings.Count(out, "\n")) // заголовок и 15 контактов

	_, err = runCLI(t, "contacts", "reset")
	require.NoError(t, err)

	out, err = runCLI(t, "contacts", "list", "--json")
	require.NoError(t, err)
	var contacts []*models.Contact
	require.NoError(t, json.Unmarshal([]byte(out), &contacts))
	assert.Len(t, contacts, 15)
	assert.Equal(t, "Pompiers", contacts[4].Name)
}

func TestCLI_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "floppy")

	_, err := runCLI(t, "contacts", "list")

	assert.ErrorContains(t, err, "unknown STORAGE_DRIVER")
}
