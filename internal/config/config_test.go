package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mctiers")
	t.Setenv("PORT", "")
	t.Setenv("OWNER_DISCORD_ID", "")
	t.Setenv("AVATAR_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "axolotal1212", cfg.OwnerDiscordID)
	assert.Empty(t, cfg.AvatarBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mctiers")
	t.Setenv("PORT", "9090")
	t.Setenv("OWNER_DISCORD_ID", "someoneelse")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "someoneelse", cfg.OwnerDiscordID)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}
