package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
game:
  fog_of_war: false
  num_players: 4
board:
  width: 40
  height: 30
sim:
  max_turns: 100
logging:
  level: "debug"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err = Init(configFile)
	require.NoError(t, err)

	// Test loaded values
	c := Get()
	assert.False(t, c.Game.FogOfWar)
	assert.Equal(t, 4, c.Game.NumPlayers)
	assert.Equal(t, 40, c.Board.Width)
	assert.Equal(t, 30, c.Board.Height)
	assert.Equal(t, 100, c.Sim.MaxTurns)
	assert.Equal(t, "debug", c.Logging.Level)

	// Defaults fill in the rest
	assert.True(t, c.Game.ClimaticEffects)
	assert.Equal(t, 0.3, c.Board.SeaLevel)
	assert.Equal(t, "console", c.Logging.Format)
}

func TestInitWithDefaults(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize with non-existent config (should use defaults)
	err := Init("/non/existent/path/config.yaml")
	require.NoError(t, err)

	c := Get()
	assert.True(t, c.Game.FogOfWar)
	assert.Equal(t, 14, c.Game.NumPlayers)
	assert.Equal(t, 100, c.Board.Width)
	assert.Equal(t, 90, c.Board.Height)
	assert.Equal(t, 500, c.Sim.MaxTurns)
}

func TestEnvironmentVariables(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Set environment variables
	os.Setenv("QRL_GAME_NUM_PLAYERS", "6")
	os.Setenv("QRL_SIM_MAX_TURNS", "250")
	defer os.Unsetenv("QRL_GAME_NUM_PLAYERS")
	defer os.Unsetenv("QRL_SIM_MAX_TURNS")

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Environment variables should override
	c := Get()
	assert.Equal(t, 6, c.Game.NumPlayers)
	assert.Equal(t, 250, c.Sim.MaxTurns)
}

func TestSet(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Set values
	Set("game.num_players", 8)
	Set("board.width", 50)

	// Check updated values
	c := Get()
	assert.Equal(t, 8, c.Game.NumPlayers)
	assert.Equal(t, 50, c.Board.Width)
}

func TestGetHelpers(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	// Initialize config
	err := Init("")
	require.NoError(t, err)

	// Set some values
	Set("test.string", "hello")
	Set("test.int", 42)
	Set("test.bool", true)
	Set("test.float", 3.14)

	// Test getters
	assert.Equal(t, "hello", GetString("test.string"))
	assert.Equal(t, 42, GetInt("test.int"))
	assert.Equal(t, true, GetBool("test.bool"))
	assert.Equal(t, 3.14, GetFloat64("test.float"))
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too many players", func(c *Config) { c.Game.NumPlayers = 15 }},
		{"sea above mountains", func(c *Config) { c.Board.SeaLevel = 0.8 }},
		{"zero max turns", func(c *Config) { c.Sim.MaxTurns = 0 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"stats without path", func(c *Config) { c.Stats.DBPath = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg = nil
			v = nil
			require.NoError(t, Init("/non/existent/path/config.yaml"))

			c := *Get()
			tc.mutate(&c)
			assert.Error(t, Validate(&c))
		})
	}
}
